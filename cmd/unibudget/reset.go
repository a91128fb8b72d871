package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/tracker"
	"github.com/spf13/cobra"
)

func (a *app) resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every expense and start the balance over",
		Long: `Reset removes every recorded expense so the full weekly limit is available again.

This is a destructive operation. Notes, the theme and the weekly limit are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			count := len(tr.Snapshot().Expenses)
			if count == 0 {
				writeLine(out, cli.FormatInfo("No expenses found. Nothing to reset."))
				return nil
			}

			var confirm tracker.Confirmer = cli.NewPrompter(cmd.InOrStdin(), out)
			if force {
				confirm = tracker.ConfirmFunc(func(_ context.Context, _ string) bool { return true })
			} else {
				writeLine(out, fmt.Sprintf("This will delete %d expenses.", count))
			}

			cleared, ok := tr.ResetBalance(ctx, confirm)
			if !ok {
				writeLine(out, "Reset canceled.")
				return nil
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Cleared %d expenses", cleared)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
