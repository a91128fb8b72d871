package storage

import (
	"context"
	"errors"
)

// Keys of the four persisted slots. The names match the keys the tracker
// has always written, so an existing store keeps loading.
const (
	KeyExpenses    = "uni_expenses"
	KeyNotes       = "uni_notes"
	KeyTheme       = "uni_theme"
	KeyWeeklyLimit = "uni_weekly_limit"
)

// Storage errors.
var (
	ErrCorruptSlot    = errors.New("corrupt slot value")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrStoreClosed    = errors.New("store is closed")
)

// Store is an opaque string key-value store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Close releases the store's resources.
	Close() error
}
