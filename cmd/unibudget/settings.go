package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) limitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limit [amount]",
		Short: "Show or set the weekly limit",
		Long:  `Without an argument, print the weekly limit. With one, replace it; the new limit must be a whole number above zero.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				writeLine(out, strconv.Itoa(tr.Snapshot().Limit))
				return nil
			}

			if !tr.UpdateWeeklyLimit(ctx, args[0]) {
				return common.NewUserError("Weekly limit must be a whole number above zero", model.ErrInvalidLimit)
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(out, cli.FormatSuccess("Weekly limit set to "+cli.FormatAmount(float64(tr.Snapshot().Limit))))
			return nil
		},
	}
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [id]",
		Short: "List themes or select one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				current := tr.Snapshot().Theme
				writeLine(out, cli.FormatHeading(cli.ThemeIcon, "Themes"))
				for _, id := range model.ThemeIDs() {
					marker := " "
					if id == current {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %-8s %s\n", marker, id, id.MustTheme().Name)
				}
				return nil
			}

			id, err := model.ParseThemeID(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown theme %q; run 'unibudget theme' to list them", args[0]), err)
			}
			tr.SelectTheme(ctx, id)
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(out, cli.FormatSuccess("Theme set to "+id.MustTheme().Name))
			return nil
		},
	}
}
