package components

import (
	"fmt"

	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// LimitReachedLabel replaces the add action once the budget is spent.
const LimitReachedLabel = "Limit Reached"

// BalanceModel renders the remaining balance card.
type BalanceModel struct {
	theme       themes.Theme
	progressBar progress.Model
	derived     ledger.Derived
	width       int
}

// NewBalanceModel creates a balance card.
func NewBalanceModel(theme themes.Theme) BalanceModel {
	m := BalanceModel{width: 40}
	m.SetTheme(theme)
	return m
}

// SetTheme restyles the card.
func (m *BalanceModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	prog := progress.New(progress.WithSolidFill(string(theme.Primary)))
	prog.ShowPercentage = false
	prog.EmptyColor = string(theme.Shadow)
	prog.Width = m.barWidth()
	m.progressBar = prog
}

// SetDerived updates the figures shown.
func (m *BalanceModel) SetDerived(d ledger.Derived) {
	m.derived = d
}

// Resize sets the card width.
func (m *BalanceModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = m.barWidth()
}

func (m BalanceModel) barWidth() int {
	return max(min(m.width-4, 50), 10)
}

// View renders the card.
func (m BalanceModel) View() string {
	d := m.derived

	remainingStyle := m.theme.Bold
	if d.IsOverBudget {
		remainingStyle = m.theme.StatusError
	}

	lines := []string{
		m.theme.Faint.Render("Remaining Balance"),
		remainingStyle.Render(model.FormatAmount(d.Remaining)),
		m.progressBar.ViewAs(d.Percentage / 100),
		m.theme.Faint.Render(fmt.Sprintf("Used %s of %s (%.0f%%)",
			model.FormatAmount(d.TotalSpent), model.FormatAmount(float64(d.Limit)), d.Percentage)),
	}
	if d.IsOverBudget {
		lines = append(lines, m.theme.StatusError.Render("⚠️ "+LimitReachedLabel))
	}

	return m.theme.RoundedBox.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
