package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"riskdash/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewForTUIWithoutFileIsSilent(t *testing.T) {
	logger, err := NewForTUI(config.LoggingConfig{Level: "info"})
	require.NoError(t, err)
	// Must not panic and must not touch stderr.
	logger.Info("hidden")
}

func TestNewForTUIWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riskdash.log")
	logger, err := NewForTUI(config.LoggingConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Info("dashboard started")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dashboard started")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "shout"})
	assert.Error(t, err)
}
