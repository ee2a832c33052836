package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when a variable is unset or unparsable.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultMaxGenerate     = 1000
	DefaultMaxBatch        = 500
	DefaultShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	Limits          Limits

	// problems collects variables that were set but rejected.
	problems []error
}

// Limits bound the work a single request may ask for.
type Limits struct {
	MaxGenerate int
	MaxBatch    int
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{MaxGenerate: DefaultMaxGenerate, MaxBatch: DefaultMaxBatch}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Server {
	cfg := Server{
		Addr:            DefaultAddr,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		ShutdownTimeout: DefaultShutdownTimeout,
		Limits:          DefaultLimits(),
	}

	if v, ok := lookup("RUTKIT_ADDR"); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := lookup("RUTKIT_LOG_LEVEL"); ok && v != "" {
		v = strings.ToLower(v)
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			cfg.problems = append(cfg.problems, fmt.Errorf("RUTKIT_LOG_LEVEL: unknown level %q", v))
		}
	}

	if v, ok := lookup("RUTKIT_LOG_FORMAT"); ok && v != "" {
		v = strings.ToLower(v)
		switch v {
		case "json", "text":
			cfg.LogFormat = v
		default:
			cfg.problems = append(cfg.problems, fmt.Errorf("RUTKIT_LOG_FORMAT: unknown format %q", v))
		}
	}

	cfg.Limits.MaxGenerate = cfg.positiveInt(lookup, "RUTKIT_MAX_GENERATE", cfg.Limits.MaxGenerate)
	cfg.Limits.MaxBatch = cfg.positiveInt(lookup, "RUTKIT_MAX_BATCH", cfg.Limits.MaxBatch)

	if v, ok := lookup("RUTKIT_SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			cfg.problems = append(cfg.problems, fmt.Errorf("RUTKIT_SHUTDOWN_TIMEOUT: invalid duration %q", v))
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	return cfg
}

func (c *Server) positiveInt(lookup func(string) (string, bool), key string, fallback int) int {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.problems = append(c.problems, fmt.Errorf("%s: must be a positive integer, got %q", key, v))
		return fallback
	}
	return n
}

// Validate reports every variable that was set but ignored in favour of its
// default.
func (c Server) Validate() error {
	return errors.Join(c.problems...)
}
