package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/config"
	"github.com/Veraticus/unibudget/internal/storage"
	"github.com/Veraticus/unibudget/internal/tracker"
)

// openTracker opens the configured store and loads the tracker from it. The
// returned cleanup closes the store.
func (a *app) openTracker(ctx context.Context) (*tracker.Tracker, func(), error) {
	cfg, err := config.LoadStorageConfig(a.v)
	if err != nil {
		return nil, nil, common.NewUserError("Invalid storage configuration", err)
	}

	store, err := storage.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("Could not open %s storage", cfg.Backend), err)
	}

	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close store", "error", closeErr)
		}
	}

	return tracker.Load(ctx, storage.NewSlots(store)), cleanup, nil
}

// checkPersist turns a failed write-through into a command error.
func checkPersist(tr *tracker.Tracker) error {
	if err := tr.LastPersistError(); err != nil {
		return common.NewUserError("The change could not be saved", fmt.Errorf("%w: %w", common.ErrPersistFailed, err))
	}
	return nil
}

// writeLine writes a line and logs, rather than fails on, write errors.
func writeLine(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}
