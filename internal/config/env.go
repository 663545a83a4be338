package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may come from the environment.
// Command-line flags that were set explicitly take precedence.
type Env struct {
	DBPath     string `env:"LADDERS_DB"`
	ConfigPath string `env:"LADDERS_CONFIG"`
	Seed       int64  `env:"LADDERS_SEED"`
	TickRate   int    `env:"LADDERS_FPS"`
	LogLevel   string `env:"LADDERS_LOG_LEVEL"`
}

// LoadEnv reads the LADDERS_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
