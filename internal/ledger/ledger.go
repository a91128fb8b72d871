// Package ledger computes the derived state shown to the user (balance,
// utilization, daily series and category breakdown) from a snapshot of
// expenses. Every function is pure: the same inputs always give the same
// outputs and nothing is mutated.
package ledger

import (
	"math"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/shopspring/decimal"
)

// Derived bundles every value the presentation layer renders.
type Derived struct {
	DailySeries       []DayBucket
	CategoryBreakdown []CategoryShare
	TotalSpent        float64
	Remaining         float64
	Percentage        float64
	WeeklyTotal       float64
	MaxForScale       float64
	Limit             int
	IsOverBudget      bool
}

// Derive computes the full derived state for the given expenses and limit.
// now fixes both "today" and the time zone used for day boundaries. Totals
// stay in decimal until they are rendered, so no sum of valid amounts can
// overflow into an infinity.
func Derive(expenses []model.Expense, limit int, now time.Time) Derived {
	total := sum(expenses, func(model.Expense) bool { return true })
	series := DailySeries(expenses, now)

	return Derived{
		TotalSpent:        total.InexactFloat64(),
		Remaining:         remaining(total, limit),
		Percentage:        percentage(total, limit),
		IsOverBudget:      total.GreaterThanOrEqual(decimal.NewFromInt(int64(limit))),
		DailySeries:       series,
		WeeklyTotal:       WeeklyTotal(series),
		MaxForScale:       MaxForScale(series),
		CategoryBreakdown: CategoryBreakdown(expenses),
		Limit:             limit,
	}
}

// TotalSpent sums the amount of every expense.
func TotalSpent(expenses []model.Expense) float64 {
	return sum(expenses, func(model.Expense) bool { return true }).InexactFloat64()
}

// Remaining is the unspent part of the limit, never negative.
func Remaining(totalSpent float64, limit int) float64 {
	total, ok := fromFloat(totalSpent)
	if !ok {
		return 0
	}
	return remaining(total, limit)
}

// Percentage is the share of the limit already spent, clamped to [0, 100].
// A non-positive limit cannot be stored, but if one shows up the budget is
// treated as fully used.
func Percentage(totalSpent float64, limit int) float64 {
	total, ok := fromFloat(totalSpent)
	if !ok {
		return 100
	}
	return percentage(total, limit)
}

// IsOverBudget reports whether spending has reached the limit.
func IsOverBudget(totalSpent float64, limit int) bool {
	return totalSpent >= float64(limit)
}

func remaining(total decimal.Decimal, limit int) float64 {
	left := decimal.NewFromInt(int64(limit)).Sub(total)
	if left.IsNegative() {
		return 0
	}
	return left.InexactFloat64()
}

func percentage(total decimal.Decimal, limit int) float64 {
	if limit <= 0 {
		return 100
	}
	pct := total.Div(decimal.NewFromInt(int64(limit))).Mul(decimal.NewFromInt(100))
	return min(max(pct.InexactFloat64(), 0), 100)
}

// fromFloat converts a rendered total back to decimal. NaN and infinities
// have no decimal form; ok is false for them.
func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// sum adds the amounts of the expenses accepted by keep, in decimal so
// repeated additions of values like 0.1 do not drift.
func sum(expenses []model.Expense, keep func(model.Expense) bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if keep(e) {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return total
}
