package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := fromLookup(lookupFrom(nil))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, DefaultLimits(), cfg.Limits)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := fromLookup(lookupFrom(map[string]string{
			"RUTKIT_ADDR":             "127.0.0.1:9000",
			"RUTKIT_LOG_LEVEL":        "DEBUG",
			"RUTKIT_LOG_FORMAT":       "text",
			"RUTKIT_MAX_GENERATE":     "25",
			"RUTKIT_MAX_BATCH":        "10",
			"RUTKIT_SHUTDOWN_TIMEOUT": "3s",
		}))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, Limits{MaxGenerate: 25, MaxBatch: 10}, cfg.Limits)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("invalid values fall back and are reported", func(t *testing.T) {
		cfg := fromLookup(lookupFrom(map[string]string{
			"RUTKIT_LOG_LEVEL":        "loud",
			"RUTKIT_MAX_GENERATE":     "-1",
			"RUTKIT_MAX_BATCH":        "many",
			"RUTKIT_SHUTDOWN_TIMEOUT": "soon",
		}))
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RUTKIT_LOG_LEVEL")
		assert.Contains(t, err.Error(), "RUTKIT_MAX_GENERATE")
		assert.Contains(t, err.Error(), "RUTKIT_MAX_BATCH")
		assert.Contains(t, err.Error(), "RUTKIT_SHUTDOWN_TIMEOUT")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultLimits(), cfg.Limits)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})
}
