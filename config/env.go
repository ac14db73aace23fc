package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration of the simulator CLI.
// Command line flags take precedence over these values.
type Config struct {
	Scenario   string `env:"KINGDOM_SCENARIO" envDefault:"experiments/scenarios/siege.yaml"`
	Games      int    `env:"KINGDOM_GAMES" envDefault:"100"`
	Goroutines int    `env:"KINGDOM_GOROUTINES" envDefault:"4"`
	Seed       uint64 `env:"KINGDOM_SEED"` // 0 draws a seed from crypto/rand
	OutDir     string `env:"KINGDOM_OUT_DIR" envDefault:"experiments/results"`
	LogLevel   string `env:"KINGDOM_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment without range checks. Call
// Validate once command line flags have been applied.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	return nil
}
