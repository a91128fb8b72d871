package tui

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/testutil"
	"github.com/Veraticus/unibudget/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *testutil.TestTracker) {
	t.Helper()
	tt := testutil.SetupTestTracker(t)

	cfg := defaultConfig()
	WithTracker(tt.Tracker)(&cfg)
	WithLocation(time.UTC)(&cfg)
	WithSize(100, 40)(&cfg)

	return newModel(context.Background(), cfg), tt
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelViewCycling(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, ViewTracker, m.view)

	for _, want := range []View{ViewStats, ViewNotepad, ViewThemes, ViewTracker} {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, m.view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, ViewThemes, m.view)
}

func TestModelAddExpense(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantState State
		wantCount int
	}{
		{name: "valid amount", amount: "1200", wantState: StateBrowse, wantCount: 1},
		{name: "decimal amount", amount: "12.5", wantState: StateBrowse, wantCount: 1},
		{name: "zero keeps the form open", amount: "0", wantState: StateAddExpense, wantCount: 0},
		{name: "garbage keeps the form open", amount: "abc", wantState: StateAddExpense, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tr := newTestModel(t)

			m = update(t, m, runes("a"))
			require.Equal(t, StateAddExpense, m.state)

			m = update(t, m, components.ExpenseSubmittedMsg{Amount: tt.amount, Category: model.CategoryLunch})
			assert.Equal(t, tt.wantState, m.state)
			assert.Len(t, tr.Snapshot().Expenses, tt.wantCount)
			assert.Equal(t, tt.wantCount, m.history.Len())
		})
	}
}

func TestModelSubmitIgnoredOutsideForm(t *testing.T) {
	m, tr := newTestModel(t)

	m = update(t, m, components.ExpenseSubmittedMsg{Amount: "100", Category: model.CategoryOther})
	m = update(t, m, components.NoteSubmittedMsg{Title: "x"})

	assert.Equal(t, StateBrowse, m.state)
	assert.Empty(t, tr.Snapshot().Expenses)
	assert.Empty(t, tr.Snapshot().Notes)
}

func TestModelLimitReachedBlocksAdd(t *testing.T) {
	m, tr := newTestModel(t)
	require.True(t, tr.UpdateWeeklyLimit(context.Background(), "100"))
	tr.MustAddExpense("150", model.CategoryDinner)
	m.refresh()

	m = update(t, m, runes("a"))
	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, components.LimitReachedLabel, m.status)
	assert.Contains(t, m.View(), components.LimitReachedLabel)
}

func TestModelDeleteExpense(t *testing.T) {
	m, tr := newTestModel(t)
	tr.MustAddExpense("100", model.CategoryBreakfast)
	newest := tr.MustAddExpense("200", model.CategoryLunch)
	m.refresh()

	m = update(t, m, runes("d"))

	expenses := tr.Snapshot().Expenses
	require.Len(t, expenses, 1)
	assert.NotEqual(t, newest.ID, expenses[0].ID)
	assert.Equal(t, statusSuccess, m.statusKind)
}

func TestModelResetConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		answer    tea.KeyMsg
		wantCount int
	}{
		{name: "y clears expenses", answer: runes("y"), wantCount: 0},
		{name: "n cancels", answer: runes("n"), wantCount: 2},
		{name: "esc cancels", answer: tea.KeyMsg{Type: tea.KeyEsc}, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tr := newTestModel(t)
			tr.MustAddExpense("100", model.CategoryBreakfast)
			tr.MustAddExpense("200", model.CategoryLunch)
			tr.MustAddNote("keep", "me")
			m.refresh()

			m = update(t, m, runes("R"))
			require.Equal(t, StateConfirmReset, m.state)
			assert.Contains(t, m.View(), "Reset balance?")

			m = update(t, m, tt.answer)
			assert.Equal(t, StateBrowse, m.state)
			assert.Len(t, tr.Snapshot().Expenses, tt.wantCount)
			assert.Len(t, tr.Snapshot().Notes, 1)
		})
	}
}

func TestModelResetWithNothingToClear(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("R"))
	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, "Nothing to reset", m.status)
}

func TestModelNotes(t *testing.T) {
	m, tr := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, ViewNotepad, m.view)

	m = update(t, m, runes("a"))
	require.Equal(t, StateAddNote, m.state)
	m = update(t, m, components.NoteSubmittedMsg{Title: "Groceries", Content: "milk"})
	assert.Equal(t, StateBrowse, m.state)
	require.Len(t, tr.Snapshot().Notes, 1)

	m = update(t, m, runes("a"))
	m = update(t, m, components.NoteSubmittedMsg{Title: "  ", Content: "\n"})
	assert.Equal(t, StateBrowse, m.state)
	assert.Len(t, tr.Snapshot().Notes, 1)
	assert.Equal(t, "Empty note discarded", m.status)

	m = update(t, m, runes("d"))
	assert.Empty(t, tr.Snapshot().Notes)
}

func TestModelFormCancel(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("a"))
	require.Equal(t, StateAddExpense, m.state)

	m = update(t, m, components.FormCanceledMsg{})
	assert.Equal(t, StateBrowse, m.state)
}

func TestModelSelectTheme(t *testing.T) {
	m, tr := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, ViewThemes, m.view)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	want := model.ThemeIDs()[1]
	assert.Equal(t, want, tr.Snapshot().Theme)
	assert.Equal(t, want, m.theme.ID)

	// Cursor stops at the ends of the list.
	for range model.ThemeIDs() {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.themeCursor)
}

func TestModelEditLimit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantState State
		wantLimit int
	}{
		{name: "positive integer", input: "5000", wantState: StateBrowse, wantLimit: 5000},
		{name: "zero rejected", input: "0", wantState: StateEditLimit, wantLimit: model.DefaultWeeklyLimit},
		{name: "decimal rejected", input: "12.5", wantState: StateEditLimit, wantLimit: model.DefaultWeeklyLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tr := newTestModel(t)

			m = update(t, m, runes("l"))
			require.Equal(t, StateEditLimit, m.state)
			assert.Equal(t, "3500", m.limitInput.Value())

			m.limitInput.SetValue(tt.input)
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.wantState, m.state)
			assert.Equal(t, tt.wantLimit, tr.Snapshot().Limit)
		})
	}
}

func TestModelStatusClearing(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.withStatus("first", statusInfo)
	stale := m.statusID
	m, _ = m.withStatus("second", statusInfo)

	m = update(t, m, clearStatusMsg{id: stale})
	assert.Equal(t, "second", m.status)

	m = update(t, m, clearStatusMsg{id: m.statusID})
	assert.Empty(t, m.status)
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t)

		next, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(Model).quitting)
		assert.Empty(t, next.View())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("?"))
	require.Equal(t, StateHelp, m.state)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = update(t, m, runes("x"))
	assert.Equal(t, StateBrowse, m.state)
}

func TestModelViewRendersTabs(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()

	for v := ViewTracker; v < viewCount; v++ {
		assert.Contains(t, out, v.String())
	}
}

func TestRunRequiresTracker(t *testing.T) {
	err := Run(context.Background())
	assert.ErrorIs(t, err, ErrNoTracker)
}
