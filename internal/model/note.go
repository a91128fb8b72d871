package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultNoteTitle is used when a note is saved without a title.
const DefaultNoteTitle = "Untitled Note"

// Note is a free-form memo. Notes are never edited after creation.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
}

// NewNote trims both fields and substitutes DefaultNoteTitle for an empty
// title. Deciding whether an all-blank note should exist at all is up to the
// caller.
func NewNote(title, content string, now time.Time, ids IDGenerator) Note {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultNoteTitle
	}

	return Note{
		ID:        ids.NewID(),
		Title:     title,
		Content:   strings.TrimSpace(content),
		Timestamp: now.UnixMilli(),
	}
}

// IsBlankNote reports whether both fields are empty after trimming.
func IsBlankNote(title, content string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(content) == ""
}

// Time returns the creation instant in the local time zone.
func (n Note) Time() time.Time {
	return time.UnixMilli(n.Timestamp)
}

// Validate checks a decoded note record.
func (n Note) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidNote)
	}
	return nil
}
