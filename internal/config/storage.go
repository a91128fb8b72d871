package config

import (
	"fmt"
	"path/filepath"

	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/storage"
	"github.com/spf13/viper"
)

// Viper keys read by this package.
const (
	KeyStorageBackend     = "storage.backend"
	KeyStoragePath        = "storage.path"
	KeyStorageRedisURL    = "storage.redis_url"
	KeyStorageRedisPrefix = "storage.redis_prefix"
	KeyTUILogFile         = "tui.log_file"
)

// DefaultRedisURL points at a local Redis on database 0.
const DefaultRedisURL = "redis://localhost:6379/0"

// SetDefaults registers the default value of every key above.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStorageBackend, storage.BackendSQLite)
	v.SetDefault(KeyStoragePath, filepath.Join(DataDir(), "unibudget.db"))
	v.SetDefault(KeyStorageRedisURL, DefaultRedisURL)
	v.SetDefault(KeyStorageRedisPrefix, storage.DefaultRedisPrefix)
	v.SetDefault(KeyTUILogFile, filepath.Join(DataDir(), "unibudget.log"))
}

// LoadStorageConfig builds the storage configuration from v. Paths have ~
// and environment variables expanded.
func LoadStorageConfig(v *viper.Viper) (storage.Config, error) {
	cfg := storage.Config{
		Backend:     v.GetString(KeyStorageBackend),
		Path:        ExpandPath(v.GetString(KeyStoragePath)),
		RedisURL:    v.GetString(KeyStorageRedisURL),
		RedisPrefix: v.GetString(KeyStorageRedisPrefix),
	}

	switch cfg.Backend {
	case "", storage.BackendSQLite:
		cfg.Backend = storage.BackendSQLite
		if cfg.Path == "" {
			return cfg, fmt.Errorf("%w: %s is empty", common.ErrMissingConfig, KeyStoragePath)
		}
	case storage.BackendRedis:
		if cfg.RedisURL == "" {
			return cfg, fmt.Errorf("%w: %s is empty", common.ErrMissingConfig, KeyStorageRedisURL)
		}
	case storage.BackendMemory:
	default:
		return cfg, fmt.Errorf("%w: %s %q", common.ErrInvalidConfig, KeyStorageBackend, cfg.Backend)
	}

	return cfg, nil
}

// TUILogFile returns the expanded log file path used while the terminal UI
// owns the screen.
func TUILogFile(v *viper.Viper) string {
	return ExpandPath(v.GetString(KeyTUILogFile))
}
