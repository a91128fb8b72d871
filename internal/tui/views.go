package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/components"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case StateHelp:
		body = m.renderHelp()
	case StateAddExpense:
		body = m.expenseForm.View()
	case StateAddNote:
		body = m.noteForm.View()
	default:
		body = m.renderBody()
	}

	sections := []string{m.renderTabs(), body}
	if prompt := m.renderPrompt(); prompt != "" {
		sections = append(sections, prompt)
	}
	sections = append(sections, m.renderStatusBar())
	if m.config.ShowHelp && m.state == StateBrowse {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := ViewTracker; v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, m.theme.ActiveTab.Render(v.String()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewStats:
		return m.chart.View()
	case ViewNotepad:
		return m.renderNotepad()
	case ViewThemes:
		return m.renderThemes()
	default:
		return m.renderTracker()
	}
}

func (m Model) renderTracker() string {
	action := m.theme.Faint.Render("a add expense • d delete • R reset")
	if m.tracker.Derived().IsOverBudget {
		action = m.theme.StatusError.Render(components.LimitReachedLabel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.balance.View(),
		action,
		"",
		m.theme.Title.Render("History"),
		m.history.View(),
	)
}

func (m Model) renderNotepad() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Notes"),
		m.notes.View(),
	)
}

func (m Model) renderThemes() string {
	lines := []string{m.theme.Title.Render("Themes")}
	current := m.tracker.Snapshot().Theme

	for i, id := range model.ThemeIDs() {
		palette := themes.GetTheme(id)
		swatch := lipgloss.NewStyle().Foreground(palette.Primary).Render("■■")

		label := palette.Name
		if id == current {
			label += " ✓"
		}

		cursor := "  "
		style := m.theme.Normal
		if i == m.themeCursor {
			cursor = "▸ "
			style = m.theme.Highlighted
		}
		lines = append(lines, cursor+swatch+" "+style.Render(label))
	}

	lines = append(lines, "", m.theme.Faint.Render(fmt.Sprintf("Weekly limit: %s (l to change)",
		model.FormatAmount(float64(m.tracker.Snapshot().Limit)))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderPrompt renders the inline prompt for limit editing and reset.
func (m Model) renderPrompt() string {
	switch m.state {
	case StateEditLimit:
		return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.limitInput.View(),
			m.theme.Faint.Render("Enter save • Esc cancel"),
		))
	case StateConfirmReset:
		return m.theme.RoundedBox.BorderForeground(m.theme.Error).Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.StatusError.Render("Reset balance?"),
			m.theme.Normal.Render("This permanently deletes every expense."),
			m.theme.Faint.Render("y confirm • any other key cancels"),
		))
	}
	return ""
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.Bold.Width(10).Render(h.Key),
				m.theme.Normal.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Faint.Render("Press any key to return"))

	return b.String()
}

func (m Model) renderStatusBar() string {
	var left string
	switch m.state {
	case StateAddExpense:
		left = "Add expense"
	case StateAddNote:
		left = "Add note"
	case StateEditLimit:
		left = "Weekly limit"
	case StateConfirmReset:
		left = "Confirm"
	case StateHelp:
		left = "Help"
	default:
		left = m.view.String()
	}

	var center string
	switch m.statusKind {
	case statusError:
		center = m.theme.StatusError.Render(m.status)
	case statusWarning:
		center = m.theme.StatusWarning.Render(m.status)
	case statusSuccess:
		center = m.theme.StatusSuccess.Render(m.status)
	default:
		center = m.theme.StatusInfo.Render(m.status)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.StatusInfo.Render(left),
		"  ",
		center,
	)
}
