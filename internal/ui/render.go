package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the dashboard.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		m.renderBody(),
		m.renderFooter(),
	)
}

func (m Model) renderFilterBar() string {
	return " " + m.filter.View()
}

// renderBody shows exactly one of the loading indicator, the error banner,
// or the results table.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := m.table.Height + tableChromeHeight

	switch {
	case m.view.IsLoading():
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+styles.MutedText.Render(loadingText))

	case m.view.LastError() != "":
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			styles.Banner.Render(m.view.LastError()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCountLine(),
		m.renderColumnHeader(),
		m.table.View(),
	)
}

// renderCountLine is blank unless a filter is active.
func (m Model) renderCountLine() string {
	filter := m.view.FilterText()
	if filter == "" {
		return ""
	}
	n := len(m.view.VisibleRecords())
	return m.theme.Styles().Notice.Render(filterCountLine(n, filter))
}

func (m Model) renderFooter() string {
	if m.filtering {
		return " " + m.help.ShortHelpView(m.keys.filterHelp())
	}
	return " " + m.help.View(m.keys)
}
