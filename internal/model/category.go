package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of spending categories.
type Category string

const (
	// CategoryBreakfast covers morning meals.
	CategoryBreakfast Category = "Breakfast"
	// CategoryLunch covers midday meals.
	CategoryLunch Category = "Lunch"
	// CategoryDinner covers evening meals.
	CategoryDinner Category = "Dinner"
	// CategoryLoan covers money lent to someone else.
	CategoryLoan Category = "Loan to other"
	// CategoryOther is everything else.
	CategoryOther Category = "Other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryLoan,
		CategoryOther,
	}
}

// CategoryInfo holds the presentation metadata of a category.
type CategoryInfo struct {
	Icon  string
	Color string
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryBreakfast: {Icon: "🍳", Color: "#d97706"},
	CategoryLunch:     {Icon: "🍱", Color: "#059669"},
	CategoryDinner:    {Icon: "🍲", Color: "#4f46e5"},
	CategoryLoan:      {Icon: "💸", Color: "#7c3aed"},
	CategoryOther:     {Icon: "🛍️", Color: "#475569"},
}

func init() {
	// Every category must carry metadata; a gap here is a programming error.
	for _, c := range Categories() {
		if _, ok := categoryInfo[c]; !ok {
			panic(fmt.Sprintf("model: category %q has no metadata", c))
		}
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns the icon and color of the category.
func (c Category) Info() (CategoryInfo, error) {
	info, ok := categoryInfo[c]
	if !ok {
		return CategoryInfo{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return info, nil
}

// Icon returns the category icon, or an empty string for unknown categories.
func (c Category) Icon() string {
	return categoryInfo[c].Icon
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a category by its exact name, falling back to a
// case-insensitive match so CLI users can type "lunch".
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if c := Category(s); c.Valid() {
		return c, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	// "loan" is what people type for "Loan to other".
	if strings.EqualFold(s, "loan") {
		return CategoryLoan, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
