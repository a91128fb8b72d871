package components

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func expenseAt(id string, amount float64, c model.Category, at time.Time) model.Expense {
	return model.Expense{ID: id, Amount: amount, Category: c, Timestamp: at.UnixMilli()}
}

func TestExpenseForm_Submit(t *testing.T) {
	form := NewExpenseFormModel(themes.Default)
	form.Focus()

	form, _ = form.Update(runes("250"))
	form, _ = form.Update(key(tea.KeyTab))
	assert.Equal(t, model.CategoryLunch, form.Category())

	form, _ = form.Update(key(tea.KeyShiftTab))
	form, _ = form.Update(key(tea.KeyShiftTab))
	assert.Equal(t, model.CategoryOther, form.Category(), "category selection wraps")

	_, cmd := form.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, ExpenseSubmittedMsg{Amount: "250", Category: model.CategoryOther}, cmd())
}

func TestExpenseForm_CancelAndReset(t *testing.T) {
	form := NewExpenseFormModel(themes.Default)
	form.Focus()
	form, _ = form.Update(runes("12"))
	form.SetError("Enter a positive amount")
	assert.Contains(t, form.View(), "Enter a positive amount")

	_, cmd := form.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, FormCanceledMsg{}, cmd())

	form.Focus()
	assert.NotContains(t, form.View(), "Enter a positive amount")
	_, cmd = form.Update(key(tea.KeyEnter))
	assert.Equal(t, "", cmd().(ExpenseSubmittedMsg).Amount)
}

func TestNoteForm_Submit(t *testing.T) {
	form := NewNoteFormModel(themes.Default)
	form.Resize(60)
	form.Focus()

	form, _ = form.Update(runes("Groceries"))
	form, _ = form.Update(key(tea.KeyEnter))
	form, _ = form.Update(runes("Buy milk"))

	_, cmd := form.Update(key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.Equal(t, NoteSubmittedMsg{Title: "Groceries", Content: "Buy milk"}, cmd())

	_, cmd = form.Update(key(tea.KeyEsc))
	assert.Equal(t, FormCanceledMsg{}, cmd())
}

func TestNoteForm_TabSwitchesField(t *testing.T) {
	form := NewNoteFormModel(themes.Default)
	form.Focus()

	form, _ = form.Update(key(tea.KeyTab))
	form, _ = form.Update(runes("body"))
	form, _ = form.Update(key(tea.KeyTab))
	form, _ = form.Update(runes("head"))

	_, cmd := form.Update(key(tea.KeyCtrlS))
	assert.Equal(t, NoteSubmittedMsg{Title: "head", Content: "body"}, cmd())
}

func TestBalance_View(t *testing.T) {
	balance := NewBalanceModel(themes.Default)
	balance.Resize(60)

	balance.SetDerived(ledger.Derive([]model.Expense{
		expenseAt("a", 1000, model.CategoryLunch, testNow),
	}, 3500, testNow))
	view := balance.View()
	assert.Contains(t, view, "2,500.00")
	assert.NotContains(t, view, LimitReachedLabel)

	balance.SetDerived(ledger.Derive([]model.Expense{
		expenseAt("a", 4000, model.CategoryLunch, testNow),
	}, 3500, testNow))
	assert.Contains(t, balance.View(), LimitReachedLabel)
}

func TestChart_BarHeights(t *testing.T) {
	chart := NewChartModel(themes.Default)
	chart.Resize(80, 10)

	chart.SetDerived(ledger.Derive([]model.Expense{
		expenseAt("a", 1000, model.CategoryLunch, testNow),
		expenseAt("b", 1, model.CategoryOther, testNow.AddDate(0, 0, -1)),
	}, 3500, testNow))

	heights := chart.barHeights()
	require.Len(t, heights, ledger.SeriesDays)
	assert.Equal(t, 10, heights[6], "largest day fills the chart")
	assert.Equal(t, 1, heights[5], "non-zero days stay visible")
	assert.Zero(t, heights[0])
}

func TestChart_View(t *testing.T) {
	chart := NewChartModel(themes.Default)
	chart.SetDerived(ledger.Derive([]model.Expense{
		expenseAt("a", 300, model.CategoryBreakfast, testNow),
		expenseAt("b", 100, model.CategoryLoan, testNow),
	}, 3500, testNow))

	view := chart.View()
	for _, label := range []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "400.00")
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "25%")
	assert.NotContains(t, view, string(model.CategoryDinner), "zero categories are hidden")

	chart.SetDerived(ledger.Derive(nil, 3500, testNow))
	assert.Contains(t, chart.View(), "No spending yet")
}

func TestHistory(t *testing.T) {
	history := NewHistoryModel(themes.Default, time.UTC)
	assert.Contains(t, history.View(), "No expenses yet")
	_, ok := history.SelectedID()
	assert.False(t, ok)

	history.SetExpenses([]model.Expense{
		expenseAt("b", 20, model.CategoryDinner, testNow),
		expenseAt("a", 10, model.CategoryLunch, testNow.Add(-time.Hour)),
	})
	assert.Equal(t, 2, history.Len())

	id, ok := history.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "b", id)

	history, _ = history.Update(key(tea.KeyDown))
	id, _ = history.SelectedID()
	assert.Equal(t, "a", id)

	history.SetExpenses([]model.Expense{expenseAt("b", 20, model.CategoryDinner, testNow)})
	id, ok = history.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "b", id, "cursor is clamped after rows shrink")
	assert.Contains(t, history.View(), "20.00")
}

func TestNoteList(t *testing.T) {
	list := NewNoteListModel(themes.Default, time.UTC)
	assert.Contains(t, list.View(), "No notes yet")

	list.SetNotes([]model.Note{
		{ID: "n2", Title: "Second", Content: "line one\nline two", Timestamp: testNow.UnixMilli()},
		{ID: "n1", Title: "First", Timestamp: testNow.UnixMilli()},
	})

	list.MoveUp()
	assert.Equal(t, 0, list.Cursor())
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 1, list.Cursor())

	id, ok := list.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "n1", id)

	view := list.View()
	assert.Contains(t, view, "line one")
	assert.NotContains(t, view, "line two")

	list.SetNotes(nil)
	_, ok = list.SelectedID()
	assert.False(t, ok)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "abcd…", preview("abcdefgh", 5))
	assert.Equal(t, "first", preview("first\nsecond", 10))
	assert.True(t, strings.HasSuffix(preview(strings.Repeat("é", 20), 8), "…"))
}
