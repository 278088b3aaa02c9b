package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the banner is hidden.
	LayoutCompactWidth = 80
)

// Table geometry.
const (
	colCallsignWidth = 10
	colLongWidth     = 11
	colLatWidth      = 10
	colVelocityWidth = 14
	colCountryMin    = 12
	colGap           = 2

	// filterBarHeight is the filter input line.
	filterBarHeight = 1
	// tableChromeHeight is the count line plus the column header.
	tableChromeHeight = 2
)

// Input and diagnostics limits.
const (
	// FilterCharLimit caps the filter input.
	FilterCharLimit = 64

	// DiagnosticsTailLimit is how many log entries the overlay loads.
	DiagnosticsTailLimit = 500
)

// layout sizes every widget from the terminal size and refreshes the table.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	m.help.Width = m.width
	m.filter.Width = max(m.width-lipgloss.Width(m.filter.Prompt)-3, 10)

	chrome := lipgloss.Height(m.renderHeader()) +
		filterBarHeight +
		tableChromeHeight +
		lipgloss.Height(m.renderFooter())
	m.table.Width = m.width
	m.table.Height = max(m.height-chrome, 1)
	m.table.SetContent(m.renderRows())

	// Border plus padding horizontally; border, title and hint vertically.
	m.diagView.Width = max(m.width-4, 1)
	m.diagView.Height = max(m.height-4, 1)
}
