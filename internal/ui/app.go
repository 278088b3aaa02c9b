package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skyboard/internal/diag"
	"github.com/five82/skyboard/internal/state"
)

// FetchStartedMsg reports that a poll cycle has begun its request.
type FetchStartedMsg struct{}

// PollResultMsg carries the outcome of one poll cycle.
type PollResultMsg state.PollResult

type diagnosticsMsg struct {
	entries []diag.Entry
	err     error
}

// Options configures the UI.
type Options struct {
	ThemeName string
	LogPath   string // diagnostics log shown by the overlay
	PrefsPath string // empty disables saving the theme choice
}

// Model is the root application state for Bubble Tea.
type Model struct {
	logPath   string
	prefsPath string
	keys      keyMap

	// Presentation state
	view state.View

	// Widgets
	filter    textinput.Model
	filtering bool
	spinner   spinner.Model
	table     viewport.Model
	help      help.Model

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Diagnostics overlay
	showDiagnostics bool
	diagnostics     []diag.Entry
	diagErr         error
	diagView        viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	keys := DefaultKeyMap()

	filter := textinput.New()
	filter.Prompt = "Country: "
	filter.Placeholder = "press / to filter by origin country"
	filter.CharLimit = FilterCharLimit

	table := viewport.New(0, 0)
	table.KeyMap = viewport.KeyMap{
		Up:       keys.Up,
		Down:     keys.Down,
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}
	diagView := viewport.New(0, 0)
	diagView.KeyMap = table.KeyMap

	m := Model{
		logPath:   opts.LogPath,
		prefsPath: opts.PrefsPath,
		keys:      keys,
		filter:    filter,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		table:     table,
		help:      help.New(),
		theme:     GetTheme(opts.ThemeName),
		diagView:  diagView,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case FetchStartedMsg:
		wasLoading := m.view.IsLoading()
		m.view.OnFetchStart()
		if !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is in flight.
		if !m.view.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PollResultMsg:
		m.view.OnPollResult(state.PollResult(msg))
		m.layout()
		return m, nil

	case diagnosticsMsg:
		m.diagnostics = msg.entries
		m.diagErr = msg.err
		m.syncDiagnostics()
		m.diagView.GotoBottom()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showDiagnostics {
		return m.renderDiagnostics()
	}
	return m.renderMain()
}

// applyTheme pushes the current theme into the bubbles widgets.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.spinner.Style = styles.AccentText
	m.filter.PromptStyle = styles.AccentText.Bold(true)
	m.filter.TextStyle = styles.Text
	m.filter.PlaceholderStyle = styles.FaintText
	m.filter.Cursor.Style = styles.AccentText

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}
