package model

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator(t *testing.T) {
	gen := ULIDGenerator{}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := gen.NewID()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
