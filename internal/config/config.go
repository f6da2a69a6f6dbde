package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by Load
const (
	// EnvLogLevel sets the minimum log level (DEBUG, INFO, WARN, ERROR)
	EnvLogLevel = "GUESS_LOG_LEVEL"

	// EnvSeed fixes the random seed used to draw the secret number
	EnvSeed = "GUESS_SEED"
)

// Config represents the game configuration
type Config struct {
	// LogLevel is the minimum level written to stderr
	LogLevel slog.Level `env:"GUESS_LOG_LEVEL"`

	// Seed for the secret number generator (0 means seed randomly)
	Seed uint64 `env:"GUESS_SEED"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
		Seed:     0,
	}
}

// Load parses environ (KEY=value pairs, as from os.Environ) on top of the defaults
func Load(environ []string) (*Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
