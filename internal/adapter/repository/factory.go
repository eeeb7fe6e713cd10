// Package repository selects and builds the snapshot store backend.
package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/gobudget/internal/adapter/repository/memory"
	postgresrepo "github.com/iho/gobudget/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/gobudget/internal/adapter/repository/redis"
	"github.com/iho/gobudget/internal/infrastructure/config"
	"github.com/iho/gobudget/internal/infrastructure/postgres"
	"github.com/iho/gobudget/internal/infrastructure/redis"
	"github.com/iho/gobudget/internal/usecase"
)

// NewSnapshotStore builds the store named by cfg.StoreBackend. The returned
// cleanup closes any underlying connections; it is non-nil for every
// backend.
func NewSnapshotStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (usecase.SnapshotStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		logger.Info().Msg("using in-memory snapshot store")
		return memory.NewStore(), func() {}, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info().Msg("using redis snapshot store")
		return redisrepo.NewStore(client), func() { client.Close() }, nil

	case config.StorePostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
			URL:            cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		logger.Info().Msg("using postgres snapshot store")
		return postgresrepo.NewStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
