package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// EnvPrefix prefixes environment overrides, e.g. ANSWERNORM_HTTP_ADDR.
const EnvPrefix = "ANSWERNORM"

// ---- Root ----

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Grading GradingConfig `mapstructure:"grading"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Warmup  WarmupConfig  `mapstructure:"warmup"`
	Log     LogConfig     `mapstructure:"log"`
}

// ---- Leaf structs ----

type HTTPConfig struct {
	Addr           string        `mapstructure:"addr"             validate:"required"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	MaxRequestSize int           `mapstructure:"max_request_size" validate:"gt=0"`
	Concurrency    int           `mapstructure:"concurrency"      validate:"gte=0"`
}

type GradingConfig struct {
	Policy string `mapstructure:"policy" validate:"oneof=lenient strict"`
}

type CacheConfig struct {
	// Size 0 disables the cache.
	Size int `mapstructure:"size" validate:"gte=0"`
}

type WarmupConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Concurrency int           `mapstructure:"concurrency" validate:"gte=0"`
	Iterations  int           `mapstructure:"iterations"  validate:"gte=0"`
	Duration    time.Duration `mapstructure:"duration"    validate:"gte=0"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
	JSON bool   `mapstructure:"json"`
}

// Load reads embedded defaults, merges user YAML (if provided), and applies
// env overrides (ANSWERNORM_*). The result is validated.
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, fmt.Errorf("read defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
