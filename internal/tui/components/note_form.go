package components

import (
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NoteFormModel collects a title and free-form content.
type NoteFormModel struct {
	theme        themes.Theme
	titleInput   textinput.Model
	contentInput textarea.Model
	width        int
	onContent    bool
}

// NewNoteFormModel creates an empty note form.
func NewNoteFormModel(theme themes.Theme) NoteFormModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 120

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.ShowLineNumbers = false
	content.SetHeight(6)

	return NoteFormModel{
		theme:        theme,
		titleInput:   title,
		contentInput: content,
		width:        40,
	}
}

// Focus clears the form and focuses the title.
func (m *NoteFormModel) Focus() tea.Cmd {
	m.titleInput.Reset()
	m.contentInput.Reset()
	m.onContent = false
	m.contentInput.Blur()
	return m.titleInput.Focus()
}

// SetTheme restyles the form.
func (m *NoteFormModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize sets the form width.
func (m *NoteFormModel) Resize(width int) {
	m.width = width
	m.titleInput.Width = max(width-6, 10)
	m.contentInput.SetWidth(max(width-6, 10))
}

func (m *NoteFormModel) toggleFocus() tea.Cmd {
	m.onContent = !m.onContent
	if m.onContent {
		m.titleInput.Blur()
		return m.contentInput.Focus()
	}
	m.contentInput.Blur()
	return m.titleInput.Focus()
}

// Update handles messages.
func (m NoteFormModel) Update(msg tea.Msg) (NoteFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.titleInput.Blur()
			m.contentInput.Blur()
			return m, func() tea.Msg { return FormCanceledMsg{} }

		case "ctrl+s":
			submitted := NoteSubmittedMsg{
				Title:   m.titleInput.Value(),
				Content: m.contentInput.Value(),
			}
			return m, func() tea.Msg { return submitted }

		case "tab", "shift+tab":
			cmd := m.toggleFocus()
			return m, cmd

		case "enter":
			if !m.onContent {
				cmd := m.toggleFocus()
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	if m.onContent {
		m.contentInput, cmd = m.contentInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

// View renders the form.
func (m NoteFormModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("New Note"),
		m.titleInput.View(),
		"",
		m.contentInput.View(),
		"",
		m.theme.Faint.Render("Tab switch field • Ctrl+S save • Esc cancel"),
	)
	return m.theme.RoundedBox.Width(m.width - 2).Render(content)
}
