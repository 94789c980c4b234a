// Package config loads runtime configuration from environment variables.
package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// devSecret is the fixed signing secret used when JWT_SECRET_KEY is not set
// in a non-production environment. It must never reach production.
const devSecret = "DEV_SECRET_KEY_CHANGE_IN_PRODUCTION_MIN_32_CHARS"

// ErrMissingSecret is returned when no signing secret is configured in a
// production environment.
var ErrMissingSecret = errors.New("JWT_SECRET_KEY environment variable must be set in production")

// Config holds all configuration parameters for the application.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// DatabaseURL selects PostgreSQL when set; the app falls back to a
	// local SQLite file otherwise.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"tuneeng.db"`

	JWTSecret       string `env:"JWT_SECRET_KEY"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8000,http://localhost:5000,http://localhost:5173,http://localhost:3000,http://127.0.0.1:8000,http://127.0.0.1:5000,http://127.0.0.1:5173,http://127.0.0.1:3000"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
//
// Secret policy: if JWT_SECRET_KEY is unset, Load fails in production and
// substitutes a fixed development secret (with a loud warning) otherwise.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.TokenTTLMinutes <= 0 {
		cfg.TokenTTLMinutes = 60
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSecret
		}
		cfg.JWTSecret = devSecret
		slog.Warn("JWT_SECRET_KEY is not set, using default development secret")
		slog.Warn("set JWT_SECRET_KEY environment variable in production")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in a production posture.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TokenTTL returns the access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// RedisAddr returns the host:port pair of the Redis server, or an empty
// string when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
