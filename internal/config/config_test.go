package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, "30s", cfg.API.Timeout)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)

	d, err := cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
api:
  base_url: http://predictions.internal:9000
  timeout: 10s
ui:
  theme: dark
logging:
  level: debug
  file: /tmp/riskdash.log
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://predictions.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/riskdash.log", cfg.Logging.File)

	d, err := cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RISKDASH_API_BASE_URL", "http://10.0.0.5:8000")
	t.Setenv("RISKDASH_API_TIMEOUT", "5s")
	t.Setenv("RISKDASH_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.API.BaseURL)
	assert.Equal(t, "5s", cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("RISKDASH_API_TIMEOUT", "forever")
	_, err := Load("")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:9999"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BaseURL, loaded.API.BaseURL)
}
