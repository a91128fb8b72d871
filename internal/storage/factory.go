package storage

import (
	"context"
	"fmt"
)

// Backend names accepted by OpenStore.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config selects and configures a Store backend.
type Config struct {
	Backend     string
	Path        string
	RedisURL    string
	RedisPrefix string
}

// OpenStore opens the configured backend. SQLite databases are migrated
// before they are returned.
func OpenStore(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		store, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil

	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPrefix)

	case BackendMemory:
		return NewMemoryStore(nil), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
