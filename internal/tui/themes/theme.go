package themes

import (
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	ProgressBar   lipgloss.Style
	Selected      lipgloss.Style
	CategoryIcon  lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	RoundedBox    lipgloss.Style
	Highlighted   lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Bar           lipgloss.Style
	BarToday      lipgloss.Style
	Name          string
	ID            model.ThemeID
	Primary       lipgloss.Color
	Shadow        lipgloss.Color
	Muted         lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Fixed status colors shared by every palette.
const (
	errorColor   = lipgloss.Color("#ef4444")
	warningColor = lipgloss.Color("#f59e0b")
	successColor = lipgloss.Color("#10b981")
	mutedColor   = lipgloss.Color("#737373")
)

// New builds the lipgloss palette for a theme descriptor.
func New(t model.Theme) Theme {
	primary := lipgloss.Color(t.Primary)
	shadow := lipgloss.Color(t.Shadow)
	text := lipgloss.Color(t.Text)
	bg := lipgloss.Color(t.Bg)

	return Theme{
		ID:         t.ID,
		Name:       t.Name,
		Primary:    primary,
		Shadow:     shadow,
		Muted:      mutedColor,
		Foreground: text,
		Background: bg,
		Error:      errorColor,
		Warning:    warningColor,
		Success:    successColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1),
		Normal: lipgloss.NewStyle(),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Faint: lipgloss.NewStyle().
			Foreground(mutedColor),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(bg).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(shadow).
			Foreground(text),

		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(shadow).
			Padding(0, 1),
		ProgressBar: lipgloss.NewStyle().
			Foreground(primary),
		Tab: lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Background(primary).
			Foreground(bg).
			Bold(true).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().
			Foreground(shadow),
		BarToday: lipgloss.NewStyle().
			Foreground(primary),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		CategoryIcon: lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center),
	}
}

// GetTheme returns the palette for id, falling back to the default theme.
func GetTheme(id model.ThemeID) Theme {
	return New(id.MustTheme())
}

// Default is the palette of model.DefaultTheme.
var Default = GetTheme(model.DefaultTheme)

// CategoryStyle colors text with a category's own color.
func CategoryStyle(c model.Category) lipgloss.Style {
	info, err := c.Info()
	if err != nil {
		return lipgloss.NewStyle().Foreground(mutedColor)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color))
}
