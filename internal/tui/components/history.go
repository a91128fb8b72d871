package components

import (
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryTimeLayout formats expense times in the history table.
const HistoryTimeLayout = "Mon 02 Jan 15:04"

// HistoryModel lists expenses, most recent first, in a scrollable table.
type HistoryModel struct {
	theme    themes.Theme
	location *time.Location
	ids      []string
	table    table.Model
}

// NewHistoryModel creates an empty history table. Times are shown in loc.
func NewHistoryModel(theme themes.Theme, loc *time.Location) HistoryModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Category", Width: 14},
			{Title: "Amount", Width: 12},
			{Title: "When", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	if loc == nil {
		loc = time.Local
	}
	m := HistoryModel{table: t, location: loc}
	m.SetTheme(theme)
	return m
}

// SetTheme restyles the table.
func (m *HistoryModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Shadow).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	m.table.SetStyles(styles)
}

// SetExpenses replaces the rows, keeping the cursor in range.
func (m *HistoryModel) SetExpenses(expenses []model.Expense) {
	rows := make([]table.Row, len(expenses))
	m.ids = make([]string, len(expenses))
	for i, e := range expenses {
		m.ids[i] = e.ID
		rows[i] = table.Row{
			e.Category.Icon(),
			string(e.Category),
			model.FormatAmount(e.Amount),
			e.Time().In(m.location).Format(HistoryTimeLayout),
		}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Resize sets the table height in rows.
func (m *HistoryModel) Resize(height int) {
	m.table.SetHeight(max(height, 3))
}

// Len returns the number of rows.
func (m HistoryModel) Len() int {
	return len(m.ids)
}

// SelectedID returns the id of the highlighted expense.
func (m HistoryModel) SelectedID() (string, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.ids) {
		return "", false
	}
	return m.ids[c], true
}

// Update handles navigation keys.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or a placeholder when there is nothing to show.
func (m HistoryModel) View() string {
	title := m.theme.Subtitle.Render("History")
	if len(m.ids) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Faint.Render("No expenses yet"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View())
}
