package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("UNIBUDGET_TEST_DIR", "/srv/budget")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "memory", input: ":memory:", want: ":memory:"},
		{name: "tilde", input: "~", want: home},
		{name: "tilde prefix", input: "~/data/u.db", want: filepath.Join(home, "data/u.db")},
		{name: "env var", input: "$UNIBUDGET_TEST_DIR/u.db", want: "/srv/budget/u.db"},
		{name: "absolute", input: "/tmp/u.db", want: "/tmp/u.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDirs_RespectXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, "/xdg/data/unibudget", DataDir())
	assert.Equal(t, "/xdg/config/unibudget", ConfigDir())
}
