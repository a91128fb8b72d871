package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoTracker is returned by Run when no tracker was configured.
var ErrNoTracker = errors.New("tui: tracker is required")

// Run starts the interactive UI and blocks until the user quits or ctx is
// canceled. The tracker is flushed once more on the way out.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Tracker == nil {
		return ErrNoTracker
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		programOpts = append(programOpts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(cfg.Output))
	}

	program := tea.NewProgram(newModel(ctx, cfg), programOpts...)
	_, runErr := program.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}

	// The caller's context may already be canceled; the final write must still happen.
	flushErr := cfg.Tracker.Flush(context.WithoutCancel(ctx))
	if flushErr != nil {
		slog.Error("Failed to flush state on exit", "error", flushErr)
	}

	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return flushErr
}
