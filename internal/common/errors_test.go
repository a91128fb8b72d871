package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		err         error
		name        string
		wantText    string
		wantMessage string
		wantIs      error
	}{
		{
			name:        "with cause",
			err:         NewUserError("Could not save expense", cause),
			wantText:    "Could not save expense: disk full",
			wantMessage: "Could not save expense",
			wantIs:      cause,
		},
		{
			name:        "without cause",
			err:         NewUserError("Nothing to export", nil),
			wantText:    "Nothing to export",
			wantMessage: "Nothing to export",
		},
		{
			name:        "wrapped",
			err:         fmt.Errorf("add: %w", NewUserError("Weekly limit reached", ErrLimitReached)),
			wantText:    "add: Weekly limit reached: weekly limit reached",
			wantMessage: "Weekly limit reached",
			wantIs:      ErrLimitReached,
		},
		{
			name:        "plain error",
			err:         cause,
			wantText:    "disk full",
			wantMessage: "disk full",
			wantIs:      cause,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantText, tt.err.Error())
			assert.Equal(t, tt.wantMessage, UserMessage(tt.err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, tt.err, tt.wantIs)
			}
		})
	}

	assert.Empty(t, UserMessage(nil))
}
