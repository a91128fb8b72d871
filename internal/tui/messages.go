package tui

import "time"

// statusTTL is how long a status line stays visible.
const statusTTL = 4 * time.Second

// Status severities.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// clearStatusMsg removes the status line if it is still the one with id.
type clearStatusMsg struct {
	id int
}
