// Package config resolves application settings from viper into the types the
// rest of the application consumes.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// Special SQLite names such as ":memory:" pass through untouched.
func ExpandPath(path string) string {
	if path == "" || strings.HasPrefix(path, ":") {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir returns the directory holding the database and log file.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "unibudget")
	}
	return ExpandPath("~/.local/share/unibudget")
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "unibudget")
	}
	return ExpandPath("~/.config/unibudget")
}
