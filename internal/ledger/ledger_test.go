package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id string, amount float64, cat model.Category, at time.Time) model.Expense {
	return model.Expense{ID: id, Amount: amount, Category: cat, Timestamp: at.UnixMilli()}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		limit int
		want  float64
	}{
		{name: "nothing spent", total: 0, limit: 3500, want: 3500},
		{name: "partly spent", total: 1000, limit: 3500, want: 2500},
		{name: "exactly spent", total: 3500, limit: 3500, want: 0},
		{name: "overspent clamps to zero", total: 4000, limit: 3500, want: 0},
		{name: "fractional", total: 0.3, limit: 1, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(tt.total, tt.limit)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		limit int
		want  float64
	}{
		{name: "zero", total: 0, limit: 3500, want: 0},
		{name: "one lunch", total: 1000, limit: 3500, want: 1000.0 / 3500 * 100},
		{name: "full", total: 3500, limit: 3500, want: 100},
		{name: "far over budget", total: 1e9, limit: 3500, want: 100},
		{name: "zero limit treated as used up", total: 0, limit: 0, want: 100},
		{name: "negative limit treated as used up", total: 10, limit: -5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.total, tt.limit)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestDerive_SingleLunch(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)
	expenses := []model.Expense{expense("a", 1000, model.CategoryLunch, now)}

	d := Derive(expenses, 3500, now)

	assert.Equal(t, 1000.0, d.TotalSpent)
	assert.Equal(t, 2500.0, d.Remaining)
	assert.InDelta(t, 28.57, d.Percentage, 0.01)
	assert.Equal(t, 29.0, math.Round(d.Percentage))
	assert.False(t, d.IsOverBudget)
	assert.Equal(t, 3500, d.Limit)
}

func TestDerive_OverBudget(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		expense("a", 2500, model.CategoryDinner, now),
		expense("b", 1500, model.CategoryLoan, now.Add(-time.Hour)),
	}

	d := Derive(expenses, 3500, now)

	assert.Equal(t, 4000.0, d.TotalSpent)
	assert.Equal(t, 0.0, d.Remaining)
	assert.Equal(t, 100.0, d.Percentage)
	assert.True(t, d.IsOverBudget)
}

func TestDerive_TotalBeyondFloatRange(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expense("a", 1e308, model.CategoryLunch, now),
		expense("b", 1e308, model.CategoryDinner, now),
	}

	var d Derived
	require.NotPanics(t, func() { d = Derive(expenses, 3500, now) })
	assert.True(t, math.IsInf(d.TotalSpent, 1))
	assert.Equal(t, 0.0, d.Remaining)
	assert.Equal(t, 100.0, d.Percentage)
	assert.True(t, d.IsOverBudget)

	for _, s := range NonZero(d.CategoryBreakdown) {
		assert.False(t, math.IsNaN(s.Share))
		assert.InDelta(t, 0.5, s.Share, 1e-12)
	}
}

func TestRemainingAndPercentage_NonFiniteTotal(t *testing.T) {
	for _, total := range []float64{math.Inf(1), math.NaN()} {
		assert.NotPanics(t, func() { Remaining(total, 3500) })
		assert.Equal(t, 0.0, Remaining(total, 3500))
		assert.Equal(t, 100.0, Percentage(total, 3500))
	}
}

func TestIsOverBudget(t *testing.T) {
	assert.False(t, IsOverBudget(3499.99, 3500))
	assert.True(t, IsOverBudget(3500, 3500))
	assert.True(t, IsOverBudget(3600, 3500))
}

func TestTotalSpent_NoFloatDrift(t *testing.T) {
	now := time.Now()
	var expenses []model.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, expense("x", 0.1, model.CategoryOther, now))
	}
	assert.Equal(t, 1.0, TotalSpent(expenses))
	assert.Equal(t, 0.0, TotalSpent(nil))
}

func TestDerive_Empty(t *testing.T) {
	d := Derive(nil, model.DefaultWeeklyLimit, time.Now())

	assert.Equal(t, 0.0, d.TotalSpent)
	assert.Equal(t, float64(model.DefaultWeeklyLimit), d.Remaining)
	assert.Equal(t, 0.0, d.Percentage)
	assert.False(t, d.IsOverBudget)
	require.Len(t, d.DailySeries, SeriesDays)
	assert.Equal(t, ScaleFloor, d.MaxForScale)
	require.Len(t, d.CategoryBreakdown, len(model.Categories()))
	for _, s := range d.CategoryBreakdown {
		assert.Equal(t, 0.0, s.Share)
	}
}
