// Package config provides configuration defaults and environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	// AppName is the application name.
	AppName = "iso3166"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "ISO3166_"

	// OutputText prints tab-separated lines.
	OutputText = "text"

	// OutputJSON prints JSON.
	OutputJSON = "json"

	// OutputYAML prints YAML.
	OutputYAML = "yaml"

	// DefaultOutput is the default output format.
	DefaultOutput = OutputText

	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultConcurrency is the default number of batch lookup workers.
	DefaultConcurrency = 4

	// MaxConcurrency caps batch lookup workers.
	MaxConcurrency = 32
)

// Config holds runtime configuration. Fields can be set from the
// environment, e.g. ISO3166_OUTPUT=json.
type Config struct {
	Output      string `env:"OUTPUT"`
	LogLevel    string `env:"LOG_LEVEL"`
	Concurrency int    `env:"CONCURRENCY"`
	ExtraFile   string `env:"EXTRA_FILE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:      DefaultOutput,
		LogLevel:    DefaultLogLevel,
		Concurrency: DefaultConcurrency,
	}
}

// Load returns the default configuration with environment overrides applied.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate normalizes the configuration and rejects unknown values.
// Concurrency is clamped to [1, MaxConcurrency].
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format: %s (use text, json, or yaml)", c.Output)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	if c.Concurrency > MaxConcurrency {
		c.Concurrency = MaxConcurrency
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}
