package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Empty(t, cfg.ExtraFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ISO3166_OUTPUT", "JSON")
	t.Setenv("ISO3166_LOG_LEVEL", "debug")
	t.Setenv("ISO3166_CONCURRENCY", "8")
	t.Setenv("ISO3166_EXTRA_FILE", "/tmp/extra.txt")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, "/tmp/extra.txt", cfg.ExtraFile)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoadKeepsDefaultsWhenUnset(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("ISO3166_CONCURRENCY", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		concurrency int
		hasError    bool
	}{
		{"yaml", Config{Output: "yaml", LogLevel: "info", Concurrency: 2}, 2, false},
		{"clamps low", Config{Output: "text", LogLevel: "info", Concurrency: 0}, 1, false},
		{"clamps high", Config{Output: "text", LogLevel: "info", Concurrency: 1000}, MaxConcurrency, false},
		{"bad output", Config{Output: "xml", LogLevel: "info", Concurrency: 1}, 1, true},
		{"bad level", Config{Output: "text", LogLevel: "loud", Concurrency: 1}, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.concurrency, tc.cfg.Concurrency)
		})
	}
}
