// Package config loads the service configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/freelance-directory/api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=production"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Deletion DeletionConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig

	DispatchWorkers int `env:"DISPATCH_WORKERS, default=4"`
}

type AuthConfig struct {
	JWTPrivateKey string `env:"JWT_PRIVATE_KEY"`
	// TokenTTL of zero issues tokens without an expiry.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=0s"`
}

type DeletionConfig struct {
	// Timeout bounds the two concurrent deletes of a cascade; zero means the
	// per-call store timeout alone applies.
	Timeout time.Duration `env:"DELETE_TIMEOUT, default=0s"`
	LockTTL time.Duration `env:"DELETE_LOCK_TTL, default=30s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fl_db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type RabbitMQConfig struct {
	// URL empty disables publishing to the broker.
	URL string `env:"RABBITMQ_URL"`
}

// IsDevelopment reports whether the service runs in a local environment.
// Only an explicit ENV=development enables it.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if c.Auth.JWTPrivateKey == "" {
		return domain.ErrMissingSigningSecret
	}
	return nil
}

// Load reads a .env file when one exists, then the environment, and
// validates the result. A missing signing secret yields an error wrapping
// domain.ErrConfiguration.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
