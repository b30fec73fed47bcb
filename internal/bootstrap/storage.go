package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/database"
	"github.com/osse101/KissClicker_Go/internal/database/memory"
	"github.com/osse101/KissClicker_Go/internal/database/postgres"
	"github.com/osse101/KissClicker_Go/internal/repository"
)

// Storage is the save store selected by configuration plus its cleanup
type Storage struct {
	Store repository.SaveStore
	close func()
}

// Close releases the underlying connections, if any
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStorage opens the configured save store. For postgres it
// connects the pool and applies the embedded migrations.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		slog.Warn(LogMsgStorageMemory)
		return &Storage{Store: memory.NewSaveStore()}, nil

	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		slog.Info(LogMsgStoragePostgres, "host", cfg.DBHost, "db", cfg.DBName)

		return &Storage{
			Store: postgres.NewSaveStore(pool),
			close: func() {
				slog.Info(LogMsgClosingDatabasePool)
				pool.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedStorage, cfg.StorageBackend)
	}
}
