// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full configuration for the account service. All values come
// from the environment and are read once at startup; nothing re-reads env
// vars after that.
//
// JWT_SECRET has no default on purpose — the process must not start with a
// guessable signing key. Validate() enforces it.
type Config struct {
	HTTPPort int    `env:"PORT" envDefault:"3000"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`
	DBPath   string `env:"DB_PATH" envDefault:"data/accounts.db"`

	JWTSecret string `env:"JWT_SECRET"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"profile-image"`
	S3BaseURL   string `env:"S3_PUBLIC_BASE_URL"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have no safe default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.S3BaseURL == "" {
		return fmt.Errorf("config: S3_PUBLIC_BASE_URL is required")
	}
	return nil
}
