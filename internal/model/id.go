package model

import "github.com/oklog/ulid/v2"

// IDGenerator produces identifiers for new entities.
type IDGenerator interface {
	NewID() string
}

// ULIDGenerator generates ULID-based IDs.
type ULIDGenerator struct{}

// NewID returns a new ULID string.
func (ULIDGenerator) NewID() string {
	return ulid.Make().String()
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string {
	return f()
}
