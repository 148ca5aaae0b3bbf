package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultSecretKey   = "change-me-secret-key"
	defaultDatabaseURL = "marketplace.db"
	defaultHTTPAddr    = ":8080"
	defaultTokenTTL    = "24h"
)

// Config carries the process configuration. Every value falls back to a
// development default when the environment variable is unset.
type Config struct {
	AppEnv      string
	SecretKey   string
	DatabaseURL string
	HTTPAddr    string
	TokenTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		SecretKey:   strings.TrimSpace(getEnv("SECRET_KEY", defaultSecretKey)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		HTTPAddr:    strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr)),
	}

	ttlRaw := strings.TrimSpace(getEnv("TOKEN_TTL", defaultTokenTTL))
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL value %q: %w", ttlRaw, err)
	}
	cfg.TokenTTL = ttl

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}
	if isProdLike(c.AppEnv) && (c.SecretKey == "" || c.SecretKey == defaultSecretKey) {
		return fmt.Errorf("in prod/release SECRET_KEY must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
