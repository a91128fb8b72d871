package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Veraticus/unibudget/internal/model"
)

// Slots encodes the tracker state into the four keys of a Store. Each slot
// loads on its own: a Load method always returns a usable value, falling
// back to the slot's default when the stored value is missing or corrupt,
// and reports why through the error.
type Slots struct {
	store Store
}

// NewSlots wraps a store.
func NewSlots(store Store) *Slots {
	return &Slots{store: store}
}

// Store returns the underlying store.
func (s *Slots) Store() Store {
	return s.store
}

// LoadExpenses returns the stored expense list, most recent first. A single
// invalid record invalidates the whole slot.
func (s *Slots) LoadExpenses(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := s.loadJSON(ctx, KeyExpenses, &expenses); err != nil {
		return []model.Expense{}, err
	}
	for i, e := range expenses {
		if err := e.Validate(); err != nil {
			return []model.Expense{}, fmt.Errorf("%w: %s record %d: %w", ErrCorruptSlot, KeyExpenses, i, err)
		}
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}

// SaveExpenses stores the expense list.
func (s *Slots) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return s.saveJSON(ctx, KeyExpenses, expenses)
}

// LoadNotes returns the stored notes, most recent first.
func (s *Slots) LoadNotes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := s.loadJSON(ctx, KeyNotes, &notes); err != nil {
		return []model.Note{}, err
	}
	for i, n := range notes {
		if err := n.Validate(); err != nil {
			return []model.Note{}, fmt.Errorf("%w: %s record %d: %w", ErrCorruptSlot, KeyNotes, i, err)
		}
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// SaveNotes stores the notes.
func (s *Slots) SaveNotes(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	return s.saveJSON(ctx, KeyNotes, notes)
}

// LoadTheme returns the stored theme id, or model.DefaultTheme.
func (s *Slots) LoadTheme(ctx context.Context) (model.ThemeID, error) {
	raw, found, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		return model.DefaultTheme, err
	}
	if !found || raw == "" {
		return model.DefaultTheme, nil
	}
	id := model.ThemeID(raw)
	if !id.Valid() {
		return model.DefaultTheme, fmt.Errorf("%w: %s: %w: %q", ErrCorruptSlot, KeyTheme, model.ErrUnknownTheme, raw)
	}
	return id, nil
}

// SaveTheme stores the theme id as its raw string.
func (s *Slots) SaveTheme(ctx context.Context, id model.ThemeID) error {
	return s.store.Set(ctx, KeyTheme, string(id))
}

// LoadLimit returns the stored weekly limit, or model.DefaultWeeklyLimit.
func (s *Slots) LoadLimit(ctx context.Context) (int, error) {
	raw, found, err := s.store.Get(ctx, KeyWeeklyLimit)
	if err != nil {
		return model.DefaultWeeklyLimit, err
	}
	if !found || raw == "" {
		return model.DefaultWeeklyLimit, nil
	}
	limit, err := model.ParseWeeklyLimit(raw)
	if err != nil {
		return model.DefaultWeeklyLimit, fmt.Errorf("%w: %s: %w", ErrCorruptSlot, KeyWeeklyLimit, err)
	}
	return limit, nil
}

// SaveLimit stores the weekly limit as a decimal integer string.
func (s *Slots) SaveLimit(ctx context.Context, limit int) error {
	return s.store.Set(ctx, KeyWeeklyLimit, strconv.Itoa(limit))
}

func (s *Slots) loadJSON(ctx context.Context, key string, v any) error {
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptSlot, key, err)
	}
	return nil
}

func (s *Slots) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.store.Set(ctx, key, string(data))
}
