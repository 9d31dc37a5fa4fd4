// Package sidebar provides the entry list pane.
package sidebar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props describes the entry list pane. Count is shown next to Title when set.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	Count  int
	Active bool
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Render draws the pane with a right-hand border that lights up while the
// list has focus.
func Render(p Props) string {
	border := p.Muted
	if p.Active {
		border = p.Accent
	}

	title := lipgloss.NewStyle().Foreground(p.Accent).Bold(p.Active).Render(p.Title)
	if p.Count > 0 {
		title += lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf(" (%d)", p.Count))
	}

	pane := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border)

	heading := lipgloss.NewStyle().PaddingLeft(2).PaddingBottom(1).Render(title)
	return pane.Render(heading + "\n" + p.View)
}
