// Package input provides the URL entry box.
package input

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the input component.
type Props struct {
	View   string
	Width  int
	Active bool
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Render renders the input component.
func Render(p Props) string {
	border := p.Muted
	if p.Active {
		border = p.Accent
	}
	// Width excludes the border.
	width := max(p.Width-2, 1)
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(p.View)
}
