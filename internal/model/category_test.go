package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryLoan,
		CategoryOther,
	}, Categories())
}

func TestCategory_Info(t *testing.T) {
	for _, c := range Categories() {
		info, err := c.Info()
		require.NoError(t, err, c)
		assert.NotEmpty(t, info.Icon)
		assert.NotEmpty(t, info.Color)
		assert.Equal(t, info.Icon, c.Icon())
	}

	_, err := Category("Rent").Info()
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Empty(t, Category("Rent").Icon())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "Lunch", want: CategoryLunch},
		{input: "lunch", want: CategoryLunch},
		{input: " DINNER ", want: CategoryDinner},
		{input: "Loan to other", want: CategoryLoan},
		{input: "loan", want: CategoryLoan},
		{input: "other", want: CategoryOther},
		{input: "Rent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
