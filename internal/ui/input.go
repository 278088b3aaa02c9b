package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skyboard/internal/diag"
	"github.com/five82/skyboard/internal/prefs"
)

// handleKey routes keyboard input to the focused surface.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.showDiagnostics {
		return m.handleDiagnosticsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		cmd := m.filter.Focus()
		m.layout()
		return m, cmd

	case key.Matches(msg, m.keys.ClearFilter):
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.applyFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.layout()
		return m, savePrefsCmd(m.prefsPath, m.theme.Name)

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		m.layout()
		return m, loadDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleFilterKey feeds the focused filter input. Every edit reaches the view
// immediately; enter and esc only give focus back to the table.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.filter.Blur()
		m.layout()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Diagnostics), key.Matches(msg, m.keys.Cancel), msg.String() == "q":
		m.showDiagnostics = false
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.diagView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.diagView.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.diagView, cmd = m.diagView.Update(msg)
	return m, cmd
}

// applyFilter hands the input's text to the view and redraws the table.
func (m *Model) applyFilter() {
	m.view.OnFilterTextChange(m.filter.Value())
	m.layout()
	m.table.GotoTop()
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := diag.Tail(path, DiagnosticsTailLimit)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

// savePrefsCmd remembers the theme off the event loop.
func savePrefsCmd(path, theme string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		if err := prefs.Save(path, prefs.Prefs{Theme: theme}); err != nil {
			log.Printf("save prefs failed: %v", err)
		}
		return nil
	}
}
