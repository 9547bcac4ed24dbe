// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime options. Game rules are constants and do not live here.
type Config struct {
	// Seed for level generation. 0 means a fresh random seed per run.
	Seed uint32 `env:"GREENCHAPEL_SEED" envDefault:"0"`

	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// LoggingConfig controls the diagnostic log. The terminal belongs to the UI,
// so logs go to a file; an empty File disables logging.
type LoggingConfig struct {
	Level  string `env:"GREENCHAPEL_LOG_LEVEL" envDefault:"info"`
	Format string `env:"GREENCHAPEL_LOG_FORMAT" envDefault:"json"`
	File   string `env:"GREENCHAPEL_LOG_FILE"`
}

// TelemetryConfig controls trace export to Honeycomb.
type TelemetryConfig struct {
	Enabled bool   `env:"GREENCHAPEL_TELEMETRY" envDefault:"false"`
	APIKey  string `env:"HONEYCOMB_GREENCHAPEL_API_KEY"`
	Dataset string `env:"HONEYCOMB_GREENCHAPEL_DATASET" envDefault:"greenchapel"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	return nil
}
