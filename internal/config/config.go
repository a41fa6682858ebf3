// Package config loads generator settings from the environment. Command-line
// flags take precedence over every value here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// OutputDir receives one JSON document per generated suite.
	OutputDir string `env:"PARSEC_TESTGEN_OUTPUT_DIR" envDefault:"testdata"`
	LogLevel  string `env:"PARSEC_TESTGEN_LOG_LEVEL" envDefault:"info"`
	// Workers bounds how many suites are built at once.
	Workers int `env:"PARSEC_TESTGEN_WORKERS" envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
