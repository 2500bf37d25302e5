// pkg/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Service  string `env:"STEEZE_SERVICE" envDefault:"steeze-lite"`
	LogLevel string `env:"STEEZE_LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"STEEZE_LOG_DIR"`
	Manifest string `env:"STEEZE_MANIFEST" envDefault:"routes.toml"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
