// Package model defines the domain entities of the tracker and the rules
// they must satisfy at creation time.
package model

import "errors"

// Validation errors.
var (
	ErrInvalidAmount   = errors.New("amount must be a positive number within range")
	ErrInvalidLimit    = errors.New("weekly limit must be a positive integer")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrInvalidNote     = errors.New("invalid note")
)
