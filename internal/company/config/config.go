package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the company module.
type Config struct {
	// Directory uploaded logo files are written to. Created on startup if absent.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"static/uploads"`

	// Upper bound on an uploaded request body, enforced at the HTTP layer.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"8388608"`

	// Allowed logo file extensions (lowercase, without dot). Empty means any
	// extension is accepted.
	AllowedLogoExtensions []string `env:"ALLOWED_LOGO_EXTENSIONS" envSeparator:","`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load company configuration from environment: " + err.Error())
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/uploads"
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, errors.New("max_upload_bytes must be positive")
	}
	for i, ext := range cfg.AllowedLogoExtensions {
		cfg.AllowedLogoExtensions[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	}

	return cfg, nil
}
