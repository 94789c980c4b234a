package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis address is configured.
var ErrNotConfigured = errors.New("redis is not configured")

// NewClient connects to Redis and verifies the connection with a ping.
// The caller decides whether a failure is fatal; the app runs without a
// cache when it is not.
func NewClient(addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
