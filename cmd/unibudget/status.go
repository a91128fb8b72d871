package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/spf13/cobra"
)

// statsBarWidth is the widest bar drawn by `unibudget stats`.
const statsBarWidth = 30

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the remaining balance for the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, cleanup, err := a.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			d := tr.Derived()
			out := cmd.OutOrStdout()

			writeLine(out, cli.RenderBox("Weekly Budget",
				"Remaining: "+cli.FormatAmount(d.Remaining),
				fmt.Sprintf("Spent:     %s of %s (%.0f%%)",
					cli.FormatAmount(d.TotalSpent), cli.FormatAmount(float64(d.Limit)), d.Percentage)))

			if err := cli.RenderUtilization(out, d.TotalSpent, d.Limit); err != nil {
				return err
			}
			if d.IsOverBudget {
				writeLine(out, cli.FormatWarning("Limit Reached"))
			}
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the last seven days and the category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, cleanup, err := a.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			renderStats(cmd.OutOrStdout(), tr.Derived())
			return nil
		},
	}
}

func renderStats(out io.Writer, d ledger.Derived) {
	writeLine(out, cli.FormatHeading(cli.ChartIcon, "Last 7 Days"))
	for _, day := range d.DailySeries {
		width := 0
		if d.MaxForScale > 0 {
			width = int(day.Amount / d.MaxForScale * statsBarWidth)
		}
		marker := " "
		if day.IsToday {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-3s %-*s %s\n",
			marker, day.Label, statsBarWidth, strings.Repeat("█", width), cli.FormatAmount(day.Amount))
	}

	writeLine(out)
	fmt.Fprintf(out, "Weekly total:  %s\n", cli.FormatAmount(d.WeeklyTotal))
	if top, ok := ledger.HighestDay(d.DailySeries); ok {
		fmt.Fprintf(out, "Highest spend: %s on %s\n", cli.FormatAmount(top.Amount), top.Label)
	}

	shares := ledger.NonZero(d.CategoryBreakdown)
	if len(shares) == 0 {
		return
	}

	writeLine(out)
	writeLine(out, cli.FormatHeading(cli.ChartIcon, "By Category"))
	for _, s := range shares {
		fmt.Fprintf(out, "  %s  %s  %d%%\n", cli.FormatCategory(s.Category), cli.FormatAmount(s.Amount), s.Percent)
	}
}
