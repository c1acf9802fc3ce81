package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 1048576, cfg.HTTP.MaxRequestSize)
	assert.Equal(t, "lenient", cfg.Grading.Policy)
	assert.Equal(t, 4096, cfg.Cache.Size)
	assert.True(t, cfg.Warmup.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Warmup.Duration)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
grading:
  policy: strict
cache:
  size: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.Grading.Policy)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANSWERNORM_HTTP_ADDR", ":9090")
	t.Setenv("ANSWERNORM_WARMUP_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.False(t, cfg.Warmup.Enabled)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "grading:\n  policy: fuzzy\n")
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, "cache:\n  size: -1\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
