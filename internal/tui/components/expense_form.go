package components

import (
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExpenseFormModel collects an amount and a category.
type ExpenseFormModel struct {
	theme       themes.Theme
	amountInput textinput.Model
	errMsg      string
	categories  []model.Category
	cursor      int
	width       int
}

// NewExpenseFormModel creates an empty form with the first category selected.
func NewExpenseFormModel(theme themes.Theme) ExpenseFormModel {
	input := textinput.New()
	input.Placeholder = "0.00"
	input.Prompt = "Amount: "
	input.CharLimit = 16
	input.Width = 20

	return ExpenseFormModel{
		theme:       theme,
		amountInput: input,
		categories:  model.Categories(),
		width:       40,
	}
}

// Focus resets the form and focuses the amount field.
func (m *ExpenseFormModel) Focus() tea.Cmd {
	m.amountInput.Reset()
	m.errMsg = ""
	return m.amountInput.Focus()
}

// SetError shows a validation message under the form.
func (m *ExpenseFormModel) SetError(msg string) {
	m.errMsg = msg
}

// SetTheme restyles the form.
func (m *ExpenseFormModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize sets the form width.
func (m *ExpenseFormModel) Resize(width int) {
	m.width = width
}

// Category returns the selected category.
func (m ExpenseFormModel) Category() model.Category {
	return m.categories[m.cursor]
}

// Update handles messages.
func (m ExpenseFormModel) Update(msg tea.Msg) (ExpenseFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.amountInput.Blur()
			return m, func() tea.Msg { return FormCanceledMsg{} }

		case "enter":
			submitted := ExpenseSubmittedMsg{
				Amount:   m.amountInput.Value(),
				Category: m.Category(),
			}
			return m, func() tea.Msg { return submitted }

		case "tab", "down":
			m.cursor = (m.cursor + 1) % len(m.categories)
			return m, nil

		case "shift+tab", "up":
			m.cursor = (m.cursor - 1 + len(m.categories)) % len(m.categories)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

// View renders the form.
func (m ExpenseFormModel) View() string {
	chips := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := c.Icon() + " " + string(c)
		if i == m.cursor {
			chips = append(chips, m.theme.Selected.Padding(0, 1).Render(label))
		} else {
			chips = append(chips, themes.CategoryStyle(c).Padding(0, 1).Render(label))
		}
	}

	lines := []string{
		m.theme.Title.Render("Add Expense"),
		m.amountInput.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	}
	if m.errMsg != "" {
		lines = append(lines, "", m.theme.StatusError.Render(m.errMsg))
	}
	lines = append(lines, "", m.theme.Faint.Render("Tab/↑↓ category • Enter save • Esc cancel"))

	return m.theme.RoundedBox.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
