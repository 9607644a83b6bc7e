package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration, parsed from the environment
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"secret_manager.db"`
	UseHTTPS     bool   `env:"USE_HTTPS"`

	OIDC     OIDCConfig
	Platform PlatformConfig
}

// OIDCConfig holds identity provider settings
type OIDCConfig struct {
	IssuerURL    string   `env:"OIDC_ISSUER_URL"`
	ClientID     string   `env:"OIDC_CLIENT_ID"`
	ClientSecret string   `env:"OIDC_CLIENT_SECRET"`
	CallbackURL  string   `env:"OIDC_CALLBACK_URL"`
	Scopes       []string `env:"OIDC_SCOPES" envSeparator:","`
}

// PlatformConfig holds managed auth service settings
type PlatformConfig struct {
	BaseURL string `env:"AUTH_PLATFORM_URL"`
	APIKey  string `env:"AUTH_PLATFORM_API_KEY"`
}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	// A missing .env file is fine in production
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
