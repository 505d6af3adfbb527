package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings that may come from the environment.
// The CLI uses these as flag defaults, so explicit flags still win.
type Env struct {
	FPS        int    `env:"FLAPFISH_FPS" envDefault:"60"`
	Seed       int64  `env:"FLAPFISH_SEED" envDefault:"0"`
	DBPath     string `env:"FLAPFISH_DB" envDefault:"~/.flapfish/scores.db"`
	ConfigPath string `env:"FLAPFISH_CONFIG"`
	LogLevel   string `env:"FLAPFISH_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"FLAPFISH_LOG_FILE"`
	SSHAddr    string `env:"FLAPFISH_SSH_ADDR" envDefault:":23234"`
	HostKey    string `env:"FLAPFISH_HOST_KEY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return e, err
	}
	return e, nil
}
