package config

import (
	"fmt"
	"os"
)

// Defaults mirror the original deployment and are insecure.
// Production refuses to start without explicit values.
const (
	DefaultDSN       = "root:@tcp(localhost:3306)/daily_planner?parseTime=true"
	DefaultJWTSecret = "your-secret-key-change-this"
	DefaultPort      = "3000"
)

type Config struct {
	DSN       string
	JWTSecret string
	Port      string
	Env       string
}

func Load() (*Config, error) {
	cfg := &Config{
		DSN:       getenv("DSN", DefaultDSN),
		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		Port:      getenv("PORT", DefaultPort),
		Env:       getenv("APP_ENV", "development"),
	}

	if cfg.Env == "production" {
		if os.Getenv("DSN") == "" {
			return nil, fmt.Errorf("DSN must be set in production")
		}
		if os.Getenv("JWT_SECRET") == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
