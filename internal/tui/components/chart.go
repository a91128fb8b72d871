package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// ChartModel renders the stats view: a 7-day bar chart, the weekly total,
// the highest day and the category breakdown.
type ChartModel struct {
	theme   themes.Theme
	derived ledger.Derived
	height  int
	width   int
}

// NewChartModel creates a chart.
func NewChartModel(theme themes.Theme) ChartModel {
	return ChartModel{theme: theme, height: 8, width: 60}
}

// SetTheme restyles the chart.
func (m *ChartModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetDerived updates the data shown.
func (m *ChartModel) SetDerived(d ledger.Derived) {
	m.derived = d
}

// Resize sets the available area.
func (m *ChartModel) Resize(width, barHeight int) {
	m.width = width
	m.height = max(barHeight, 3)
}

// View renders the chart.
func (m ChartModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("📊 Last 7 Days"),
		m.renderBars(),
		"",
		m.renderSummary(),
		"",
		m.renderBreakdown(),
	)
}

// barHeights scales each day to the chart height against MaxForScale.
func (m ChartModel) barHeights() []int {
	heights := make([]int, len(m.derived.DailySeries))
	scale := m.derived.MaxForScale
	if scale <= 0 {
		scale = ledger.ScaleFloor
	}
	for i, b := range m.derived.DailySeries {
		h := int(b.Amount / scale * float64(m.height))
		if b.Amount > 0 && h == 0 {
			h = 1
		}
		heights[i] = min(h, m.height)
	}
	return heights
}

func (m ChartModel) renderBars() string {
	const colWidth = 5
	heights := m.barHeights()

	rows := make([]string, 0, m.height+1)
	for level := m.height; level >= 1; level-- {
		var row strings.Builder
		for i, b := range m.derived.DailySeries {
			cell := strings.Repeat(" ", colWidth)
			if heights[i] >= level {
				style := m.theme.Bar
				if b.IsToday {
					style = m.theme.BarToday
				}
				cell = " " + style.Render("███") + " "
			}
			row.WriteString(cell)
		}
		rows = append(rows, row.String())
	}

	var labels strings.Builder
	for _, b := range m.derived.DailySeries {
		label := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).Render(b.Label)
		if b.IsToday {
			label = m.theme.StatusInfo.Width(colWidth).Align(lipgloss.Center).Render(b.Label)
		}
		labels.WriteString(label)
	}
	rows = append(rows, labels.String())

	return strings.Join(rows, "\n")
}

func (m ChartModel) renderSummary() string {
	highestText := "-"
	if highest, ok := ledger.HighestDay(m.derived.DailySeries); ok && highest.Amount > 0 {
		highestText = fmt.Sprintf("%s (%s)", model.FormatAmount(highest.Amount), highest.Label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s", m.theme.Faint.Render("Weekly total:  "), m.theme.Bold.Render(model.FormatAmount(m.derived.WeeklyTotal))),
		fmt.Sprintf("%s %s", m.theme.Faint.Render("Highest spend: "), m.theme.Bold.Render(highestText)),
	)
}

func (m ChartModel) renderBreakdown() string {
	shares := ledger.NonZero(m.derived.CategoryBreakdown)
	if len(shares) == 0 {
		return m.theme.Faint.Render("No spending yet")
	}

	barWidth := max(min(m.width-40, 30), 5)
	lines := []string{m.theme.Subtitle.Render("By Category")}
	for _, s := range shares {
		filled := int(s.Share * float64(barWidth))
		bar := themes.CategoryStyle(s.Category).Render(strings.Repeat("█", filled)) +
			m.theme.Faint.Render(strings.Repeat("░", barWidth-filled))
		lines = append(lines, fmt.Sprintf("%s %-14s %s %3d%%  %s",
			s.Icon, string(s.Category), bar, s.Percent, model.FormatAmount(s.Amount)))
	}
	return strings.Join(lines, "\n")
}
