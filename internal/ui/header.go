package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title, banner and feed status.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	title := bg.Render("Live Flights", styles.Text.Bold(true))

	parts := []string{
		bg.Render("Flights:", styles.MutedText) + bg.Space() +
			bg.Render(strconv.Itoa(len(m.view.Snapshot())), styles.Text),
	}
	if updated := m.view.LastUpdated(); updated.IsZero() {
		parts = append(parts, bg.Render("Waiting for first update", styles.WarningText))
	} else {
		parts = append(parts,
			bg.Render("Updated", styles.MutedText)+bg.Space()+
				bg.Render(updated.Format("15:04:05"), styles.Text))
	}
	if m.view.Offline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	}

	info := lipgloss.JoinVertical(lipgloss.Left, title, bg.Join(parts, "  "))
	content := info
	if m.width >= LayoutCompactWidth {
		content = lipgloss.JoinHorizontal(lipgloss.Center, renderLogo(styles.Logo), bg.Spaces(3), info)
	}

	return styles.Header.Width(m.width).Render(content)
}
