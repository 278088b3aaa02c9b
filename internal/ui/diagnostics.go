package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDiagnostics renders the diagnostics log overlay.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Diagnostics")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(truncateMiddle(m.logPath, max(m.width/2, 10)))
	}
	hint := styles.FaintText.Render("L/esc close  j/k scroll  g/G top/bottom")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Width(max(m.width-2, 1))

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.diagView.View(), hint))
}

func (m *Model) syncDiagnostics() {
	m.diagView.SetContent(m.diagnosticsContent())
}

func (m Model) diagnosticsContent() string {
	styles := m.theme.Styles()
	switch {
	case m.diagErr != nil:
		return styles.DangerText.Render("Could not read diagnostics log: " + m.diagErr.Error())
	case len(m.diagnostics) == 0:
		return styles.MutedText.Render("No diagnostics recorded.")
	}

	lines := make([]string, len(m.diagnostics))
	for i, entry := range m.diagnostics {
		if entry.At.IsZero() {
			lines[i] = styles.Text.Render(entry.Text)
			continue
		}
		lines[i] = styles.FaintText.Render(entry.At.Format("15:04:05")) + "  " + styles.Text.Render(entry.Text)
	}
	return strings.Join(lines, "\n")
}
