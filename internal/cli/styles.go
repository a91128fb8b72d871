// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every command. It follows the default blue theme so the
// command line and the UI look alike.
var (
	PrimaryColor = lipgloss.Color("#2563EB")
	SuccessColor = lipgloss.Color("#059669")
	WarningColor = lipgloss.Color("#F59E0B")
	ErrorColor   = lipgloss.Color("#F43F5E")
	InfoColor    = lipgloss.Color("#7C3AED")
	SubtleColor  = lipgloss.Color("#666666")
)

var (
	// TitleStyle is used for section headings.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)

	// PromptStyle renders the question part of a confirmation.
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	// BoxStyle frames the balance summary.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	WalletIcon  = "👛"
	ChartIcon   = "📊"
	NoteIcon    = "📝"
	ThemeIcon   = "🎨"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatHeading renders a section heading prefixed with icon.
func FormatHeading(icon, title string) string {
	return TitleStyle.Render(icon + " " + title)
}

// FormatPrompt renders a yes/no question, defaulting to no.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt) + " " + SubtleStyle.Render("[y/N]") + " → "
}

// FormatAmount renders an amount with two decimals and thousands separators.
func FormatAmount(amount float64) string {
	return model.FormatAmount(amount)
}

// FormatCategory renders a category with its icon, colored with the
// category's own color.
func FormatCategory(c model.Category) string {
	info, err := c.Info()
	if err != nil {
		return string(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render(info.Icon + " " + string(c))
}

// RenderBox renders lines in a rounded box under a wallet heading.
func RenderBox(title string, lines ...string) string {
	content := append([]string{FormatHeading(WalletIcon, title)}, lines...)
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}
