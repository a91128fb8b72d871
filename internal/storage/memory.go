package storage

import (
	"context"
	"maps"
)

// MemoryStore implements Store on a map. Nothing survives the process.
type MemoryStore struct {
	values map[string]string
	closed bool
}

// NewMemoryStore returns an empty store, optionally seeded with values.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	maps.Copy(values, seed)
	return &MemoryStore{values: values}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(ctx, key); err != nil {
		return "", false, err
	}
	if s.closed {
		return "", false, ErrStoreClosed
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := validateKey(ctx, key); err != nil {
		return err
	}
	if s.closed {
		return ErrStoreClosed
	}
	s.values[key] = value
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.closed = true
	return nil
}

// Values returns a copy of the stored values.
func (s *MemoryStore) Values() map[string]string {
	return maps.Clone(s.values)
}
