// Package tracker owns the in-memory state of the expense tracker and the
// operations that change it. Every mutation updates memory first and then
// writes the affected slot through to storage.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/storage"
)

// ResetPrompt is the question put to the Confirmer before expenses are cleared.
const ResetPrompt = "Reset balance? This permanently deletes every expense."

// State is a point-in-time copy of the tracker's data.
type State struct {
	Expenses []model.Expense
	Notes    []model.Note
	Theme    model.ThemeID
	Limit    int
}

// Confirmer gates destructive operations.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Clock returns the current instant.
type Clock func() time.Time

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides time.Now.
func WithClock(clock Clock) Option {
	return func(t *Tracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithIDGenerator overrides the ULID generator.
func WithIDGenerator(ids model.IDGenerator) Option {
	return func(t *Tracker) {
		if ids != nil {
			t.ids = ids
		}
	}
}

// Tracker is the single state container of a session. It is not safe for
// concurrent use; callers drive it from one event loop.
type Tracker struct {
	slots          *storage.Slots
	clock          Clock
	ids            model.IDGenerator
	lastPersistErr error
	loadErrs       []error
	state          State
}

// New returns a tracker holding the default state. Nothing is read from
// slots until Load is called.
func New(slots *storage.Slots, opts ...Option) *Tracker {
	t := &Tracker{
		slots: slots,
		clock: time.Now,
		ids:   model.ULIDGenerator{},
		state: State{
			Expenses: []model.Expense{},
			Notes:    []model.Note{},
			Theme:    model.DefaultTheme,
			Limit:    model.DefaultWeeklyLimit,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load builds a tracker from the persisted slots. Each slot loads on its own
// and falls back to its default on error; the errors are logged and kept for
// LoadErrors.
func Load(ctx context.Context, slots *storage.Slots, opts ...Option) *Tracker {
	t := New(slots, opts...)

	expenses, err := slots.LoadExpenses(ctx)
	t.recordLoad(storage.KeyExpenses, err)
	t.state.Expenses = expenses

	notes, err := slots.LoadNotes(ctx)
	t.recordLoad(storage.KeyNotes, err)
	t.state.Notes = notes

	theme, err := slots.LoadTheme(ctx)
	t.recordLoad(storage.KeyTheme, err)
	t.state.Theme = theme

	limit, err := slots.LoadLimit(ctx)
	t.recordLoad(storage.KeyWeeklyLimit, err)
	t.state.Limit = limit

	slog.Debug("Loaded tracker state",
		"expenses", len(t.state.Expenses),
		"notes", len(t.state.Notes),
		"theme", t.state.Theme,
		"limit", t.state.Limit)

	return t
}

func (t *Tracker) recordLoad(key string, err error) {
	if err == nil {
		return
	}
	slog.Warn("Falling back to default for stored slot", "key", key, "error", err)
	t.loadErrs = append(t.loadErrs, fmt.Errorf("load %s: %w", key, err))
}

// LoadErrors returns the faults hit while loading, one per affected slot.
func (t *Tracker) LoadErrors() []error {
	return slices.Clone(t.loadErrs)
}

// LastPersistError returns the error of the most recent failed write, or nil
// if the most recent write succeeded.
func (t *Tracker) LastPersistError() error {
	return t.lastPersistErr
}

// Now samples the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.clock()
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() State {
	return State{
		Expenses: slices.Clone(t.state.Expenses),
		Notes:    slices.Clone(t.state.Notes),
		Theme:    t.state.Theme,
		Limit:    t.state.Limit,
	}
}

// Derived computes the balance, series and breakdown for the current state.
func (t *Tracker) Derived() ledger.Derived {
	return ledger.Derive(t.state.Expenses, t.state.Limit, t.clock())
}

// AddExpense parses amountText and prepends a new expense. Invalid input
// leaves the state unchanged and returns false.
func (t *Tracker) AddExpense(ctx context.Context, amountText string, category model.Category) (model.Expense, bool) {
	amount, err := model.ParseAmount(amountText)
	if err != nil {
		slog.Debug("Rejected expense", "input", amountText, "error", err)
		return model.Expense{}, false
	}

	expense, err := model.NewExpense(amount, category, t.clock(), t.ids)
	if err != nil {
		slog.Debug("Rejected expense", "category", category, "error", err)
		return model.Expense{}, false
	}

	t.state.Expenses = slices.Insert(t.state.Expenses, 0, expense)
	t.persist(storage.KeyExpenses, t.slots.SaveExpenses(ctx, t.state.Expenses))

	slog.Info("Added expense", "id", expense.ID, "amount", expense.Amount, "category", expense.Category)
	return expense, true
}

// DeleteExpense removes the expense with the given id. An unknown id is a
// no-op and nothing is written.
func (t *Tracker) DeleteExpense(ctx context.Context, id string) bool {
	i := slices.IndexFunc(t.state.Expenses, func(e model.Expense) bool { return e.ID == id })
	if i < 0 {
		return false
	}

	t.state.Expenses = slices.Delete(slices.Clone(t.state.Expenses), i, i+1)
	t.persist(storage.KeyExpenses, t.slots.SaveExpenses(ctx, t.state.Expenses))

	slog.Info("Deleted expense", "id", id)
	return true
}

// AddNote prepends a note. A note whose title and content are both blank is
// not created.
func (t *Tracker) AddNote(ctx context.Context, title, content string) (model.Note, bool) {
	if model.IsBlankNote(title, content) {
		return model.Note{}, false
	}

	note := model.NewNote(title, content, t.clock(), t.ids)
	t.state.Notes = slices.Insert(t.state.Notes, 0, note)
	t.persist(storage.KeyNotes, t.slots.SaveNotes(ctx, t.state.Notes))

	slog.Info("Added note", "id", note.ID, "title", note.Title)
	return note, true
}

// DeleteNote removes the note with the given id.
func (t *Tracker) DeleteNote(ctx context.Context, id string) bool {
	i := slices.IndexFunc(t.state.Notes, func(n model.Note) bool { return n.ID == id })
	if i < 0 {
		return false
	}

	t.state.Notes = slices.Delete(slices.Clone(t.state.Notes), i, i+1)
	t.persist(storage.KeyNotes, t.slots.SaveNotes(ctx, t.state.Notes))

	slog.Info("Deleted note", "id", id)
	return true
}

// ResetBalance clears every expense once confirm agrees. It returns the
// number of expenses removed. Notes, theme and limit are untouched.
func (t *Tracker) ResetBalance(ctx context.Context, confirm Confirmer) (int, bool) {
	if confirm == nil || !confirm.Confirm(ctx, ResetPrompt) {
		return 0, false
	}

	cleared := len(t.state.Expenses)
	t.state.Expenses = []model.Expense{}
	t.persist(storage.KeyExpenses, t.slots.SaveExpenses(ctx, t.state.Expenses))

	slog.Info("Reset balance", "cleared", cleared)
	return cleared, true
}

// UpdateWeeklyLimit replaces the limit when text is a positive integer.
func (t *Tracker) UpdateWeeklyLimit(ctx context.Context, text string) bool {
	limit, err := model.ParseWeeklyLimit(text)
	if err != nil {
		slog.Debug("Rejected weekly limit", "input", text, "error", err)
		return false
	}

	t.state.Limit = limit
	t.persist(storage.KeyWeeklyLimit, t.slots.SaveLimit(ctx, limit))

	slog.Info("Updated weekly limit", "limit", limit)
	return true
}

// SelectTheme switches to theme id. Ids outside the closed set are ignored.
func (t *Tracker) SelectTheme(ctx context.Context, id model.ThemeID) bool {
	if !id.Valid() {
		return false
	}

	t.state.Theme = id
	t.persist(storage.KeyTheme, t.slots.SaveTheme(ctx, id))

	slog.Info("Selected theme", "theme", id)
	return true
}

// Flush writes all four slots. It is called once more on exit so the stored
// state matches memory even after an earlier write failed.
func (t *Tracker) Flush(ctx context.Context) error {
	err := errors.Join(
		t.slots.SaveExpenses(ctx, t.state.Expenses),
		t.slots.SaveNotes(ctx, t.state.Notes),
		t.slots.SaveTheme(ctx, t.state.Theme),
		t.slots.SaveLimit(ctx, t.state.Limit),
	)
	t.lastPersistErr = err
	if err != nil {
		return fmt.Errorf("failed to flush tracker state: %w", err)
	}
	return nil
}

func (t *Tracker) persist(key string, err error) {
	t.lastPersistErr = err
	if err != nil {
		slog.Error("Failed to persist slot; keeping in-memory state", "key", key, "error", err)
	}
}
