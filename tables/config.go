package tables

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config selects the database backing a Store.
type Config struct {
	DSN string `env:"THERMO_TABLE_DSN" envDefault:"file:thermo?mode=memory&cache=shared"`
}

// LoadConfigFromEnv reads the store configuration from the environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
