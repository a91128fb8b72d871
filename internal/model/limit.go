package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWeeklyLimit is the spending ceiling used until the user sets one.
const DefaultWeeklyLimit = 3500

// ParseWeeklyLimit parses a decimal integer limit. Anything that is not a
// whole number greater than zero is rejected.
func ParseWeeklyLimit(text string) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, text)
	}
	if err := ValidateWeeklyLimit(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateWeeklyLimit rejects non-positive limits.
func ValidateWeeklyLimit(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	return nil
}
