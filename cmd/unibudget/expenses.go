package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/unibudget/internal/cli"
	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/spf13/cobra"
)

// listTimeLayout formats expense times in `unibudget list`.
const listTimeLayout = "Mon 02 Jan 15:04"

func (a *app) addCmd() *cobra.Command {
	var (
		categoryName string
		allowOver    bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Long: `Record an expense of <amount> against a category. Once this week's spending
has reached the weekly limit, add refuses unless --allow-over is given.`,
		Example: `  unibudget add 120 --category lunch
  unibudget add 45.50 -c breakfast`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := model.ParseCategory(categoryName)
			if err != nil {
				return common.NewUserError("Unknown category; choose one of "+categoryNames(), err)
			}

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if tr.Derived().IsOverBudget && !allowOver {
				return common.NewUserError("Weekly limit reached; pass --allow-over to record it anyway", common.ErrLimitReached)
			}

			expense, ok := tr.AddExpense(ctx, args[0], category)
			if !ok {
				return common.NewUserError(fmt.Sprintf("%q is not an amount greater than zero", args[0]), common.ErrInvalidInput)
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			d := tr.Derived()
			out := cmd.OutOrStdout()
			writeLine(out, cli.FormatSuccess(fmt.Sprintf("Added %s %s", cli.FormatCategory(expense.Category), cli.FormatAmount(expense.Amount))))
			writeLine(out, cli.FormatInfo("Remaining this week: "+cli.FormatAmount(d.Remaining)))
			if d.IsOverBudget {
				writeLine(out, cli.FormatWarning("Limit Reached"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryName, "category", "c", string(model.CategoryOther), "expense category ("+categoryNames()+")")
	cmd.Flags().BoolVar(&allowOver, "allow-over", false, "record the expense even when the weekly limit is reached")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, cleanup, err := a.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := tr.Snapshot().Expenses
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				writeLine(out, cli.FormatInfo("No expenses recorded. Use 'unibudget add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "ID", "CATEGORY", "AMOUNT", "WHEN")
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.ID,
					e.Category.Icon()+" "+string(e.Category),
					cli.FormatAmount(e.Amount),
					e.Time().Local().Format(listTimeLayout))
			}
			return w.Flush()
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, cleanup, err := a.openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !tr.DeleteExpense(ctx, args[0]) {
				return common.NewUserError(fmt.Sprintf("No expense with id %q", args[0]), common.ErrNotFound)
			}
			if err := checkPersist(tr); err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess("Deleted expense "+args[0]))
			return nil
		},
	}
}

func categoryNames() string {
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, strings.ToLower(string(c)))
	}
	return strings.Join(names, ", ")
}
