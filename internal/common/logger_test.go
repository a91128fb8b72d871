package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("Added expense", "amount", 1000.0)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Added expense", entry["msg"])
	assert.InDelta(t, 1000.0, entry["amount"], 0.001)
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug, "console")

	logger.Debug("Loaded tracker state", "notes", 2)
	assert.Contains(t, buf.String(), "msg=\"Loaded tracker state\"")
	assert.Contains(t, buf.String(), "notes=2")
}

func TestSetupFileLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "unibudget.log")
	f, err := SetupFileLogger(path, slog.LevelInfo, "text")
	require.NoError(t, err)

	LogError(assert.AnError, "Failed to persist slot", Fields{"key": "uni_notes"})
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed to persist slot")
	assert.Contains(t, string(data), "key=uni_notes")

	_, err = SetupFileLogger(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo, "text")
	assert.Error(t, err)
}
