package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// NoteListModel shows notes, most recent first, with a cursor.
type NoteListModel struct {
	theme    themes.Theme
	location *time.Location
	notes    []model.Note
	cursor   int
	width    int
}

// NewNoteListModel creates an empty list. Dates are shown in loc.
func NewNoteListModel(theme themes.Theme, loc *time.Location) NoteListModel {
	if loc == nil {
		loc = time.Local
	}
	return NoteListModel{theme: theme, location: loc, width: 60}
}

// SetTheme restyles the list.
func (m *NoteListModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetNotes replaces the notes, keeping the cursor in range.
func (m *NoteListModel) SetNotes(notes []model.Note) {
	m.notes = notes
	m.cursor = min(m.cursor, max(len(notes)-1, 0))
}

// Resize sets the list width.
func (m *NoteListModel) Resize(width int) {
	m.width = width
}

// MoveUp moves the cursor to the previous note.
func (m *NoteListModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor to the next note.
func (m *NoteListModel) MoveDown() {
	if m.cursor < len(m.notes)-1 {
		m.cursor++
	}
}

// Cursor returns the highlighted index.
func (m NoteListModel) Cursor() int {
	return m.cursor
}

// SelectedID returns the id of the highlighted note.
func (m NoteListModel) SelectedID() (string, bool) {
	if m.cursor >= len(m.notes) {
		return "", false
	}
	return m.notes[m.cursor].ID, true
}

// View renders the list.
func (m NoteListModel) View() string {
	title := m.theme.Title.Render("📝 Notepad")
	if len(m.notes) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Faint.Render("No notes yet. Press a to write one."))
	}

	cards := make([]string, 0, len(m.notes))
	for i, n := range m.notes {
		header := fmt.Sprintf("%s  %s", n.Title, m.theme.Faint.Render(n.Time().In(m.location).Format("02 Jan 2006")))
		body := preview(n.Content, max(m.width-8, 10))

		style := m.theme.RoundedBox.Width(max(m.width-2, 20))
		if i == m.cursor {
			style = style.BorderForeground(m.theme.Primary)
			header = m.theme.StatusInfo.Render(n.Title) + "  " + m.theme.Faint.Render(n.Time().In(m.location).Format("02 Jan 2006"))
		}

		content := header
		if body != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, header, m.theme.Normal.Render(body))
		}
		cards = append(cards, style.Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, cards...)...)
}

// preview returns the first line of s, shortened to width runes.
func preview(s string, width int) string {
	line, _, _ := strings.Cut(s, "\n")
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}
