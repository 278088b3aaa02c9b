package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableColumn defines a column in the flights table.
type tableColumn struct {
	label      string
	width      int
	alignRight bool
}

// columns lays out the five flight columns; country takes the spare width.
func (m Model) columns() []tableColumn {
	fixed := colCallsignWidth + colLongWidth + colLatWidth + colVelocityWidth + 5*colGap
	return []tableColumn{
		{label: "Callsign", width: colCallsignWidth},
		{label: "Origin Country", width: max(m.width-fixed, colCountryMin)},
		{label: "Longitude", width: colLongWidth, alignRight: true},
		{label: "Latitude", width: colLatWidth, alignRight: true},
		{label: "Velocity", width: colVelocityWidth, alignRight: true},
	}
}

func (m Model) renderColumnHeader() string {
	cols := m.columns()
	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.label
	}
	return m.theme.Styles().TableHeader.Render(joinCells(cols, labels))
}

// renderRows builds the scrollable table body from the visible records.
func (m Model) renderRows() string {
	styles := m.theme.Styles()
	visible := m.view.VisibleRecords()
	if len(visible) == 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.MutedText.Render(noFlightsText))
	}

	cols := m.columns()
	lines := make([]string, len(visible))
	for i, rec := range visible {
		cells := flightCells(rec)
		lines[i] = styles.Text.Render(joinCells(cols, cells[:]))
	}
	return strings.Join(lines, "\n")
}

// joinCells fits each value to its column and joins them with a gap.
func joinCells(cols []tableColumn, values []string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", colGap))
	for i, col := range cols {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		v := truncate(values[i], col.width)
		if col.alignRight {
			b.WriteString(padLeft(v, col.width))
		} else {
			b.WriteString(padRight(v, col.width))
		}
	}
	return b.String()
}
