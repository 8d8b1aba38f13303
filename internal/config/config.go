package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port              string `env:"PORT" envDefault:"8080"`
	ThemesFile        string `env:"THEMES_FILE"`
	ThemesLocale      string `env:"THEMES_LOCALE" envDefault:"ja"`
	RevealIntervalMs  int    `env:"REVEAL_INTERVAL_MS" envDefault:"1000"`
	DiscussionSeconds int    `env:"DISCUSSION_SECONDS" envDefault:"180"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func (c Config) RevealInterval() time.Duration {
	return time.Duration(c.RevealIntervalMs) * time.Millisecond
}
