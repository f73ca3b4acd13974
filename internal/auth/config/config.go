package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the auth module.
type Config struct {
	// MongoDB Configuration
	DatabaseName string `env:"DATABASE_NAME" envDefault:"fincore"`

	// Password hashing cost for bcrypt. The default matches bcrypt.DefaultCost.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load auth configuration from environment: " + err.Error())
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "fincore"
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("bcrypt_cost must be between 4 and 31")
	}

	return cfg, nil
}
