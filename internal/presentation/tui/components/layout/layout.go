// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header  string
	Input   string
	Sidebar string
	Main    string
	Status  string
	Footer  string
}

// Render stacks the header, input, the list and detail panes side by side,
// the status line and the footer.
func Render(p Props) string {
	content := lipgloss.JoinHorizontal(lipgloss.Top, p.Sidebar, p.Main)
	return lipgloss.JoinVertical(lipgloss.Left, p.Header, p.Input, content, p.Status, p.Footer)
}
