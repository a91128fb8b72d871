package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Expense is a single recorded spending event.
type Expense struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Amount    float64  `json:"amount"`
	Timestamp int64    `json:"timestamp"` // milliseconds since epoch
}

// NewExpense validates the amount and category and stamps a fresh id and
// creation time.
func NewExpense(amount float64, category Category, now time.Time, ids IDGenerator) (Expense, error) {
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}
	if !category.Valid() {
		return Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}

	return Expense{
		ID:        ids.NewID(),
		Amount:    amount,
		Category:  category,
		Timestamp: now.UnixMilli(),
	}, nil
}

// Time returns the creation instant in the local time zone.
func (e Expense) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Validate checks a decoded expense record.
func (e Expense) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidExpense)
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return fmt.Errorf("expense %s: %w", e.ID, err)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("expense %s: %w: %q", e.ID, ErrUnknownCategory, string(e.Category))
	}
	return nil
}

// MaxAmount is the largest amount a single expense may carry. Any realistic
// number of expenses at this size still sums to a finite total.
const MaxAmount = 1e12

// ValidateAmount rejects NaN, infinities, zero, negative amounts and amounts
// above MaxAmount.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > MaxAmount {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}

// ParseAmount parses user input such as "1,250.50" into a positive amount.
// Commas are read as thousands separators, so "1,250" is 1250. Decimal and
// exponent forms are accepted; hexadecimal floats are not.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	if strings.ContainsAny(text, "xX") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimals and thousands separators,
// e.g. 1234.5 as "1,234.50".
func FormatAmount(amount float64) string {
	whole := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	intPart, frac := whole[:len(whole)-3], whole[len(whole)-3:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + b.String() + frac
}
