// Package header provides the application title bar.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title    string
	Subtitle string
	Width    int
	Accent   lipgloss.Color
	Muted    lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Render(p.Title)
	if p.Subtitle != "" {
		title += lipgloss.NewStyle().
			Foreground(p.Muted).
			Render("  " + p.Subtitle)
	}
	return lipgloss.NewStyle().
		Width(p.Width).
		MaxHeight(1).
		PaddingLeft(1).
		Render(title)
}
