// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/eaterss/internal/presentation/tui/metrics"
	"github.com/tesso57/eaterss/internal/presentation/tui/textutil"
)

// EntryItem is what EntryDelegate knows how to draw.
type EntryItem interface {
	list.Item
	Title() string
	Date() string
}

// EntryDelegate draws an entry as two lines: its title, then its date.
type EntryDelegate struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Date     lipgloss.Color
}

// NewEntryDelegate builds the delegate from the theme colours.
func NewEntryDelegate(accent, muted lipgloss.Color) *EntryDelegate {
	defaults := list.NewDefaultItemStyles()
	return &EntryDelegate{
		Normal: defaults.NormalTitle.PaddingRight(metrics.ItemRightPadding),
		Selected: defaults.SelectedTitle.
			PaddingRight(metrics.ItemRightPadding).
			Foreground(accent).
			BorderForeground(accent),
		Date: muted,
	}
}

func (d *EntryDelegate) Height() int  { return 2 }
func (d *EntryDelegate) Spacing() int { return 0 }

func (d *EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render writes the item at index. Items of other types render nothing.
func (d *EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(EntryItem)
	if !ok {
		return
	}

	style := d.Normal
	if index == m.Index() {
		style = d.Selected
	}
	// Room left once the selection border and padding are drawn.
	width := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding

	_, _ = io.WriteString(w, style.Render(textutil.Fit(entry.Title(), width))+"\n"+
		style.Foreground(d.Date).Render(textutil.Fit(entry.Date(), width)))
}
