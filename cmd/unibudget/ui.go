package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/config"
	"github.com/Veraticus/unibudget/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Long: `Open the full-screen tracker. Tab switches between the Tracker, Stats,
Notepad and Themes views; press ? for every shortcut.`,
		Args: cobra.NoArgs,
		RunE: a.runUI,
	}
}

func (a *app) runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Log lines on stderr would draw over the UI, so they go to a file.
	logPath := config.TUILogFile(a.v)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	format, err := a.logFormat()
	if err != nil {
		return err
	}
	logFile, err := common.SetupFileLogger(logPath, common.ParseLevel(a.v.GetString("logging.level")), format)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			fmt.Fprintln(os.Stderr, "failed to close log file:", closeErr)
		}
	}()

	tr, cleanup, err := a.openTracker(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	slog.Info("Starting terminal UI", "log_file", logPath)
	return tui.Run(ctx, tui.WithTracker(tr))
}
