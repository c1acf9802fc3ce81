// Package answer canonicalizes dictation answers and grades them against
// reference answers.
package answer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/baditaflorin/go_answer_normalization/internal/adapters/cache"
	"github.com/baditaflorin/go_answer_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_answer_normalization/internal/adapters/normalizer"
	"github.com/baditaflorin/go_answer_normalization/internal/core/dispatch"
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/core/grading"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	"github.com/baditaflorin/go_answer_normalization/internal/warmup"
	"github.com/baditaflorin/l"
)

type (
	// Category selects the normalization strategy.
	Category = domain.Category
	// Value is a canonical answer.
	Value = domain.Value
	// Kind tags the variant of a Value.
	Kind = domain.Kind
	// Verdict is the outcome of grading one answer.
	Verdict = grading.Verdict
	// Policy decides how unparsed answers are graded.
	Policy = grading.Policy
	// Dispatcher routes answers to category normalizers.
	Dispatcher = ports.Dispatcher
	// WarmupConfig configures warm-up.
	WarmupConfig = warmup.WarmupConfig
)

const (
	Date        = domain.CategoryDate
	Time        = domain.CategoryTime
	Phone       = domain.CategoryPhone
	Price       = domain.CategoryPrice
	LargeNumber = domain.CategoryLargeNumber
	Decimal     = domain.CategoryDecimal
	Percentage  = domain.CategoryPercentage
	Measurement = domain.CategoryMeasurement
	Mixed       = domain.CategoryMixed

	KindText    = domain.KindText
	KindNumber  = domain.KindNumber
	KindMinutes = domain.KindMinutes

	Lenient = grading.PolicyLenient
	Strict  = grading.PolicyStrict
)

// ParseCategory resolves a category wire name such as "large_number".
func ParseCategory(name string) Category {
	return domain.ParseCategory(name)
}

// ParsePolicy resolves "lenient" or "strict".
func ParsePolicy(name string) (Policy, error) {
	return grading.ParsePolicy(name)
}

// DefaultWarmupConfig returns the default warm-up configuration.
func DefaultWarmupConfig() WarmupConfig {
	return warmup.DefaultWarmupConfig()
}

// Normalizer canonicalizes and grades answers. It is safe for concurrent use.
type Normalizer struct {
	dispatcher ports.Dispatcher
	core       ports.Dispatcher // dispatcher without middleware, for warm-up
	cache      *cache.Dispatcher
	grader     *grading.Grader
	logger     ports.Logger
	policy     Policy
	warmed     atomic.Bool
}

// Option defines a functional option for configuring a Normalizer.
type Option func(*normalizerConfig)

type normalizerConfig struct {
	Logger       ports.Logger
	Policy       Policy
	CacheSize    int
	Middleware   []func(Dispatcher) Dispatcher
	WarmUp       bool
	WarmUpConfig WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *normalizerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithoutLogging discards all log output.
func WithoutLogging() Option {
	return func(cfg *normalizerConfig) {
		cfg.Logger = logger.NewNop()
	}
}

// WithPolicy sets the grading policy used by Grade.
func WithPolicy(p Policy) Option {
	return func(cfg *normalizerConfig) {
		cfg.Policy = p
	}
}

// WithCacheSize memoizes up to size normalizations. 0 disables the cache.
func WithCacheSize(size int) Option {
	return func(cfg *normalizerConfig) {
		cfg.CacheSize = size
	}
}

// WithMiddleware wraps the dispatcher, outermost last. Middleware sees every
// call, cached or not, except warm-up.
func WithMiddleware(mw func(Dispatcher) Dispatcher) Option {
	return func(cfg *normalizerConfig) {
		cfg.Middleware = append(cfg.Middleware, mw)
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *normalizerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config WarmupConfig) Option {
	return func(cfg *normalizerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer.
func New(opts ...Option) (*Normalizer, error) {
	config := &normalizerConfig{
		Policy:       grading.DefaultConfig().Policy,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.CacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", config.CacheSize)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	n := &Normalizer{
		logger: config.Logger,
		policy: config.Policy,
	}

	var d ports.Dispatcher = dispatch.NewDispatcher(config.Logger, normalizer.NewNormalizerFactory())
	if config.CacheSize > 0 {
		c, err := cache.New(d, config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		n.cache = c
		d = c
	}
	n.core = d
	for _, mw := range config.Middleware {
		d = mw(d)
	}
	n.dispatcher = d

	grader, err := grading.NewGrader(grading.Config{Policy: config.Policy}, config.Logger, d)
	if err != nil {
		return nil, err
	}
	n.grader = grader

	if config.WarmUp {
		n.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return n, nil
}

// Normalize canonicalizes input for category. It never fails: unknown
// categories pass the input through and unparseable numbers or times come
// back with Parsed() == false.
func (n *Normalizer) Normalize(category Category, input string) Value {
	return n.dispatcher.Normalize(category, input)
}

// NormalizeName is Normalize with the category given by wire name.
func (n *Normalizer) NormalizeName(category, input string) Value {
	return n.dispatcher.Normalize(domain.ParseCategory(category), input)
}

// Grade compares answer with reference under the configured policy.
func (n *Normalizer) Grade(ctx context.Context, category Category, answer, reference string) Verdict {
	return n.grader.Grade(ctx, category, answer, reference)
}

// GradeWith compares answer with reference under an explicit policy.
func (n *Normalizer) GradeWith(ctx context.Context, policy Policy, category Category, answer, reference string) Verdict {
	return n.grader.GradeWith(ctx, policy, category, answer, reference)
}

// Policy returns the configured grading policy.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// CacheStats returns cache hits and misses. Both are 0 without a cache.
func (n *Normalizer) CacheStats() (hits, misses uint64) {
	if n.cache == nil {
		return 0, 0
	}
	return n.cache.Stats()
}

// WarmUp primes the normalizers and the cache with typical answers. Warm-up
// traffic bypasses middleware, so it is not counted as real requests.
func (n *Normalizer) WarmUp(ctx context.Context, config WarmupConfig) {
	if !n.warmed.CompareAndSwap(false, true) {
		n.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(n.logger, config)
	warmupMgr.RegisterDispatcher(n.core)
	warmupMgr.WarmUp(ctx)
}

// Close releases the logger.
func (n *Normalizer) Close() error {
	return n.logger.Close()
}
