// Package redis holds the Redis-backed coordination used by the directory:
// the per-freelancer deletion marker and the client used by the readiness check.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// NewClient builds a Redis client without dialing. Connections are opened on
// first use and re-established after an outage.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeoutOf(cfg),
	})
}

// Ping checks connectivity within the configured timeout.
func Ping(ctx context.Context, client *redis.Client, cfg Config) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeoutOf(cfg))
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := NewClient(cfg)
	if err := Ping(ctx, client, cfg); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func timeoutOf(cfg Config) time.Duration {
	if cfg.Timeout <= 0 {
		return defaultTimeout
	}
	return cfg.Timeout
}
