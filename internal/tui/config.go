package tui

import (
	"io"
	"time"

	"github.com/Veraticus/unibudget/internal/tracker"
)

// Config holds TUI configuration.
type Config struct {
	Input     io.Reader
	Output    io.Writer
	Tracker   *tracker.Tracker
	Location  *time.Location
	Width     int
	Height    int
	AltScreen bool
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Width:     80,
		Height:    24,
		AltScreen: true,
		ShowHelp:  true,
		Location:  time.Local,
	}
}

// WithTracker sets the state container the UI drives.
func WithTracker(t *tracker.Tracker) Option {
	return func(c *Config) {
		c.Tracker = t
	}
}

// WithSize sets the initial terminal size, used until the first resize.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithLocation sets the time zone used to display timestamps.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) {
		if loc != nil {
			c.Location = loc
		}
	}
}

// WithIO replaces the terminal input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
