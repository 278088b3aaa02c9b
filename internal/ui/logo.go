package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// airplaneBanner is the decorative header art. Lines share one width.
var airplaneBanner = []string{
	`       __|__       `,
	`--o--o--(_)--o--o--`,
}

// renderLogo styles each banner line on its own so the background stays
// unbroken across the block.
func renderLogo(style lipgloss.Style) string {
	lines := make([]string, len(airplaneBanner))
	for i, line := range airplaneBanner {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
