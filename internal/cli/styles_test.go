package cli

import (
	"testing"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{"0.00", 0},
		{"5.50", 5.5},
		{"999.99", 999.99},
		{"1,000.00", 1000},
		{"12,345.67", 12345.67},
		{"1,234,567.00", 1234567},
		{"-2,500.00", -2500},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFormatCategory(t *testing.T) {
	assert.Contains(t, FormatCategory(model.CategoryLunch), "🍱 Lunch")
	assert.Equal(t, "Rent", FormatCategory(model.Category("Rent")))
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("Saved"), SuccessIcon+" Saved")
	assert.Contains(t, FormatError("Failed"), ErrorIcon+" Failed")
	assert.Contains(t, FormatWarning("Careful"), "Careful")
	assert.Contains(t, FormatHeading(ChartIcon, "Stats"), ChartIcon+" Stats")
	assert.Contains(t, FormatPrompt("Reset balance?"), "Reset balance? [y/N] → ")

	box := RenderBox("Weekly Budget", "Remaining: 10.00", "Spent: 5.00")
	assert.Contains(t, box, WalletIcon+" Weekly Budget")
	assert.Contains(t, box, "Remaining: 10.00")
	assert.Contains(t, box, "Spent: 5.00")
}
