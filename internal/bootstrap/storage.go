package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/database"
	"github.com/osse101/BrandishPet_Go/internal/storage"
	"github.com/osse101/BrandishPet_Go/internal/storage/postgres"
	"github.com/osse101/BrandishPet_Go/internal/storage/redis"
	"github.com/osse101/BrandishPet_Go/internal/storage/sqlite"
)

// Backend is an opened storage backend plus its lifecycle hooks
type Backend struct {
	Name  string
	Store storage.Storage
	ping  func(ctx context.Context) error
	close func() error
}

// Ping checks that the backend is reachable
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

// Close releases the backend's connections
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenStorage opens the backend selected by cfg.StorageBackend
func OpenStorage(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtOpenStorage, cfg.StorageBackend, err)
	}
	slog.Info(LogMsgStorageOpened, "backend", b.Name)
	return b, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return &Backend{Name: config.BackendMemory, Store: storage.NewMemory()}, nil

	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCreateDataDir, err)
		}
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Name: config.BackendSQLite, Store: store, ping: store.Ping, close: store.Close}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		store, err := redis.New(client)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, StoragePingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return &Backend{Name: config.BackendRedis, Store: store, ping: store.Ping, close: store.Close}, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns: cfg.DBMaxConns,
			MaxIdle:  cfg.DBMaxConnIdleTime,
			MaxLife:  cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, err
		}
		store, err := postgres.New(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Name:  config.BackendPostgres,
			Store: store,
			ping:  store.Ping,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf(ErrFmtUnknownBackend, cfg.StorageBackend)
	}
}
