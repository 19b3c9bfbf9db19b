package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/api"
	"github.com/freelance-directory/api/internal/api/handler"
	"github.com/freelance-directory/api/internal/core/ports"
	"github.com/freelance-directory/api/internal/core/service"
	"github.com/freelance-directory/api/internal/infrastructure/db/mongo"
	"github.com/freelance-directory/api/internal/infrastructure/db/redis"
	"github.com/freelance-directory/api/internal/infrastructure/messaging/rabbitmq"
	"github.com/freelance-directory/api/internal/infrastructure/queue"
	"github.com/freelance-directory/api/internal/pkg/config"
	"github.com/freelance-directory/api/pkg/logger"
)

const (
	serviceName     = "freelance-directory"
	shutdownTimeout = 15 * time.Second
)

// httpServer is the part of *echo.Echo that Serve drives.
type httpServer interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
	Close() error
}

// Serve runs srv until a signal arrives or the server fails, then shuts it
// down gracefully. It returns the process exit code.
func Serve(srv httpServer, addr string, sigCh <-chan os.Signal, log zerolog.Logger) int {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server crashed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}

	log.Info().Msg("shutdown complete")
	return 0
}

// connectRedis never fails: the deletion lock only guards against concurrent
// cascades, and the cascade already proceeds unguarded while Redis is down.
// The client reconnects on its own once Redis is back.
func connectRedis(ctx context.Context, cfg redis.Config, log zerolog.Logger) *goredis.Client {
	client := redis.NewClient(cfg)
	if err := redis.Ping(ctx, client, cfg); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unavailable at startup, deletions run unguarded until it recovers")
		return client
	}
	log.Info().Str("addr", cfg.Addr).Msg("connected to Redis")
	return client
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The signing secret is checked here, before anything listens.
		log := logger.Init(logger.Options{Service: serviceName})
		log.Error().Err(err).Msg("FATAL ERROR: invalid configuration")
		return 1
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	tokens, err := service.NewTokenService(cfg.Auth.JWTPrivateKey, cfg.Auth.TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("FATAL ERROR: token service")
		return 1
	}

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Error().Err(err).Msg("could not connect to MongoDB")
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	users := mongo.NewUserRepository(db)
	freelancers := mongo.NewFreelancerRepository(db)
	skills := mongo.NewSkillRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, freelancers, skills); err != nil {
		log.Error().Err(err).Msg("could not create indexes")
		return 1
	}

	// --- Redis ---
	rdb := connectRedis(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log)
	defer rdb.Close()

	// --- Directory events ---
	var publisher ports.EventPublisher = queue.NewLogPublisher(log)
	if cfg.RabbitMQ.URL != "" {
		conn, ch, err := rabbitmq.Connect(cfg.RabbitMQ.URL)
		if err != nil {
			log.Error().Err(err).Msg("could not connect to RabbitMQ")
			return 1
		}
		defer conn.Close()
		defer ch.Close()
		publisher = rabbitmq.NewPublisher(ch)
		log.Info().Str("exchange", rabbitmq.Exchange).Msg("publishing directory events")
	}

	dispatcher := queue.NewDispatcher(cfg.DispatchWorkers, publisher, log)
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	dispatcher.Start(dispatchCtx)
	defer func() {
		stopDispatch()
		dispatcher.Wait()
	}()

	// --- Services ---
	lock := redis.NewDeletionLock(rdb, cfg.Deletion.LockTTL)
	cascade := service.NewCascadeDeleter(freelancers, users, lock, dispatcher, cfg.Deletion.Timeout, log)

	e := api.NewRouter(api.Dependencies{
		Users:       service.NewUserService(users, freelancers, tokens, cascade, dispatcher, log),
		Freelancers: service.NewFreelancerService(freelancers, users, cascade, log),
		Skills:      service.NewSkillService(skills, log),
		Tokens:      tokens,
		Readiness: map[string]handler.ReadinessCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Log: log,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	return Serve(e, ":"+cfg.Port, sigCh, log)
}
