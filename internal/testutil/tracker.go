// Package testutil provides shared fixtures for tests that need a fully
// wired tracker.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/storage"
	"github.com/Veraticus/unibudget/internal/tracker"
)

// FixedNow is the instant every test tracker reports as "now": a Wednesday
// afternoon, UTC.
var FixedNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

// TestTracker bundles a tracker with the store behind it.
type TestTracker struct {
	*tracker.Tracker
	Store *storage.SQLiteStore
	t     *testing.T
}

// SetupTestTracker creates a tracker over a migrated in-memory SQLite store
// with a fixed clock and sequential ids ("id-1", "id-2", ...).
//
// Example:
//
//	tt := testutil.SetupTestTracker(t)
//	tt.MustAddExpense("1000", model.CategoryLunch)
func SetupTestTracker(t *testing.T, opts ...tracker.Option) *TestTracker {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	n := 0
	defaults := []tracker.Option{
		tracker.WithClock(func() time.Time { return FixedNow }),
		tracker.WithIDGenerator(model.IDFunc(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		})),
	}

	return &TestTracker{
		Tracker: tracker.Load(ctx, storage.NewSlots(store), append(defaults, opts...)...),
		Store:   store,
		t:       t,
	}
}

// MustAddExpense adds an expense or fails the test.
func (tt *TestTracker) MustAddExpense(amount string, category model.Category) model.Expense {
	tt.t.Helper()
	expense, ok := tt.AddExpense(context.Background(), amount, category)
	if !ok {
		tt.t.Fatalf("failed to add expense %q (%s)", amount, category)
	}
	return expense
}

// MustAddNote adds a note or fails the test.
func (tt *TestTracker) MustAddNote(title, content string) model.Note {
	tt.t.Helper()
	note, ok := tt.AddNote(context.Background(), title, content)
	if !ok {
		tt.t.Fatalf("failed to add note %q", title)
	}
	return note
}
