// Package mainview provides the entry detail pane.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Props describes the detail pane. Header stays fixed above the scrolling Body.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
}

// Render stacks the non-empty sections and clips them to the pane.
func Render(p Props) string {
	content := strings.Join(lo.Compact([]string{p.Header, p.Body}), "\n")
	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		PaddingLeft(1).
		Render(content)
}
