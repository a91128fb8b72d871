package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/Veraticus/unibudget/internal/tracker"
	"github.com/Veraticus/unibudget/internal/tui/components"
	"github.com/Veraticus/unibudget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current interaction mode of the TUI.
type State int

const (
	StateBrowse State = iota
	StateAddExpense
	StateAddNote
	StateEditLimit
	StateConfirmReset
	StateHelp
)

// View represents the current tab.
type View int

const (
	ViewTracker View = iota
	ViewStats
	ViewNotepad
	ViewThemes
	viewCount
)

// String returns the tab label.
func (v View) String() string {
	switch v {
	case ViewTracker:
		return "Tracker"
	case ViewStats:
		return "Stats"
	case ViewNotepad:
		return "Notepad"
	case ViewThemes:
		return "Themes"
	default:
		return "Unknown"
	}
}

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	tracker     *tracker.Tracker
	theme       themes.Theme
	keymap      KeyMap
	help        help.Model
	balance     components.BalanceModel
	history     components.HistoryModel
	chart       components.ChartModel
	notes       components.NoteListModel
	expenseForm components.ExpenseFormModel
	noteForm    components.NoteFormModel
	limitInput  textinput.Model
	config      Config
	status      string
	statusKind  statusKind
	statusID    int
	themeCursor int
	width       int
	height      int
	state       State
	view        View
	quitting    bool
}

// newModel creates a model over the configured tracker.
func newModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	snap := cfg.Tracker.Snapshot()
	theme := themes.GetTheme(snap.Theme)

	limit := textinput.New()
	limit.Prompt = "Weekly limit: "
	limit.Placeholder = strconv.Itoa(model.DefaultWeeklyLimit)
	limit.CharLimit = 9
	limit.Width = 12

	m := Model{
		ctx:         ctx,
		tracker:     cfg.Tracker,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		theme:       theme,
		balance:     components.NewBalanceModel(theme),
		history:     components.NewHistoryModel(theme, cfg.Location),
		chart:       components.NewChartModel(theme),
		notes:       components.NewNoteListModel(theme, cfg.Location),
		expenseForm: components.NewExpenseFormModel(theme),
		noteForm:    components.NewNoteFormModel(theme),
		limitInput:  limit,
		width:       cfg.Width,
		height:      cfg.Height,
		state:       StateBrowse,
		view:        ViewTracker,
	}
	m.themeCursor = themeIndex(snap.Theme)
	m.handleResize()
	m.refresh()

	if errs := cfg.Tracker.LoadErrors(); len(errs) > 0 {
		m.status = fmt.Sprintf("Some saved data was unreadable and has been reset (%d)", len(errs))
		m.statusKind = statusWarning
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case components.ExpenseSubmittedMsg:
		return m.submitExpense(msg)

	case components.NoteSubmittedMsg:
		return m.submitNote(msg)

	case components.FormCanceledMsg:
		m.state = StateBrowse
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddExpense, StateAddNote:
		return m.updateActive(msg)

	case StateEditLimit:
		return m.handleLimitKey(msg)

	case StateConfirmReset:
		return m.handleResetKey(msg)

	case StateHelp:
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.state = StateBrowse
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextView):
		m.view = (m.view + 1) % viewCount
		return m, nil

	case key.Matches(msg, m.keymap.PrevView):
		m.view = (m.view - 1 + viewCount) % viewCount
		return m, nil

	case key.Matches(msg, m.keymap.EditLimit):
		m.state = StateEditLimit
		m.limitInput.SetValue(strconv.Itoa(m.tracker.Snapshot().Limit))
		m.limitInput.CursorEnd()
		cmd := m.limitInput.Focus()
		return m, cmd
	}

	switch m.view {
	case ViewTracker:
		return m.handleTrackerKey(msg)
	case ViewNotepad:
		return m.handleNotepadKey(msg)
	case ViewThemes:
		return m.handleThemesKey(msg)
	}
	return m, nil
}

func (m Model) handleTrackerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Add):
		if m.tracker.Derived().IsOverBudget {
			return m.withStatus(components.LimitReachedLabel, statusWarning)
		}
		m.state = StateAddExpense
		cmd := m.expenseForm.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.Delete):
		id, ok := m.history.SelectedID()
		if !ok {
			return m, nil
		}
		m.tracker.DeleteExpense(m.ctx, id)
		m.refresh()
		return m.withPersistStatus("Expense deleted")

	case key.Matches(msg, m.keymap.Reset):
		if m.history.Len() == 0 {
			return m.withStatus("Nothing to reset", statusInfo)
		}
		m.state = StateConfirmReset
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) handleNotepadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Add):
		m.state = StateAddNote
		cmd := m.noteForm.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.Delete):
		id, ok := m.notes.SelectedID()
		if !ok {
			return m, nil
		}
		m.tracker.DeleteNote(m.ctx, id)
		m.refresh()
		return m.withPersistStatus("Note deleted")

	case key.Matches(msg, m.keymap.Up):
		m.notes.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.notes.MoveDown()
	}
	return m, nil
}

func (m Model) handleThemesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := model.ThemeIDs()

	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.themeCursor < len(ids)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keymap.Select):
		id := ids[m.themeCursor]
		if !m.tracker.SelectTheme(m.ctx, id) {
			return m, nil
		}
		m.applyTheme(id)
		return m.withPersistStatus("Theme set to " + m.theme.Name)
	}
	return m, nil
}

func (m Model) handleLimitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.limitInput.Blur()
		m.state = StateBrowse
		return m, nil

	case "enter":
		if !m.tracker.UpdateWeeklyLimit(m.ctx, m.limitInput.Value()) {
			return m.withStatus("Weekly limit must be a whole number above zero", statusError)
		}
		m.limitInput.Blur()
		m.state = StateBrowse
		m.refresh()
		return m.withPersistStatus("Weekly limit updated")
	}

	var cmd tea.Cmd
	m.limitInput, cmd = m.limitInput.Update(msg)
	return m, cmd
}

func (m Model) handleResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = StateBrowse
	if !key.Matches(msg, m.keymap.ConfirmYes) {
		return m.withStatus("Reset canceled", statusInfo)
	}

	confirmed := tracker.ConfirmFunc(func(context.Context, string) bool { return true })
	cleared, ok := m.tracker.ResetBalance(m.ctx, confirmed)
	if !ok {
		return m, nil
	}
	m.refresh()
	return m.withPersistStatus(fmt.Sprintf("Cleared %d expenses", cleared))
}

func (m Model) submitExpense(msg components.ExpenseSubmittedMsg) (tea.Model, tea.Cmd) {
	if m.state != StateAddExpense {
		return m, nil
	}

	expense, ok := m.tracker.AddExpense(m.ctx, msg.Amount, msg.Category)
	if !ok {
		m.expenseForm.SetError("Enter an amount greater than zero")
		return m, nil
	}

	m.state = StateBrowse
	m.refresh()
	return m.withPersistStatus(fmt.Sprintf("Added %s %s", expense.Category, model.FormatAmount(expense.Amount)))
}

func (m Model) submitNote(msg components.NoteSubmittedMsg) (tea.Model, tea.Cmd) {
	if m.state != StateAddNote {
		return m, nil
	}

	m.state = StateBrowse
	if _, ok := m.tracker.AddNote(m.ctx, msg.Title, msg.Content); !ok {
		return m.withStatus("Empty note discarded", statusInfo)
	}
	m.refresh()
	return m.withPersistStatus("Note saved")
}

// updateActive forwards msg to whichever component has focus.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateAddExpense:
		m.expenseForm, cmd = m.expenseForm.Update(msg)
	case StateAddNote:
		m.noteForm, cmd = m.noteForm.Update(msg)
	case StateEditLimit:
		m.limitInput, cmd = m.limitInput.Update(msg)
	}
	return m, cmd
}

// refresh pushes the tracker state into every component.
func (m *Model) refresh() {
	snap := m.tracker.Snapshot()
	derived := m.tracker.Derived()

	m.balance.SetDerived(derived)
	m.chart.SetDerived(derived)
	m.history.SetExpenses(snap.Expenses)
	m.notes.SetNotes(snap.Notes)
}

func (m *Model) applyTheme(id model.ThemeID) {
	m.theme = themes.GetTheme(id)
	m.balance.SetTheme(m.theme)
	m.history.SetTheme(m.theme)
	m.chart.SetTheme(m.theme)
	m.notes.SetTheme(m.theme)
	m.expenseForm.SetTheme(m.theme)
	m.noteForm.SetTheme(m.theme)
}

func (m *Model) handleResize() {
	contentWidth := max(m.width-2, 30)
	bodyHeight := max(m.height-8, 6)

	m.help.Width = m.width
	m.balance.Resize(contentWidth)
	m.expenseForm.Resize(contentWidth)
	m.noteForm.Resize(contentWidth)
	m.notes.Resize(contentWidth)
	m.history.Resize(max(bodyHeight-8, 3))
	m.chart.Resize(contentWidth, max(bodyHeight/2, 4))
}

// withPersistStatus shows success, or the write error if the last save failed.
func (m Model) withPersistStatus(success string) (Model, tea.Cmd) {
	if err := m.tracker.LastPersistError(); err != nil {
		return m.withStatus("Saved in memory only: "+err.Error(), statusError)
	}
	return m.withStatus(success, statusSuccess)
}

// withStatus sets the status line and schedules its removal.
func (m Model) withStatus(text string, kind statusKind) (Model, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusKind = kind

	id := m.statusID
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func themeIndex(id model.ThemeID) int {
	for i, candidate := range model.ThemeIDs() {
		if candidate == id {
			return i
		}
	}
	return 0
}
