package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/eaterss/internal/presentation/tui/metrics"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
)

// Layout is the computed size of each pane.
type Layout struct {
	ContentHeight  int
	ListWidth      int
	ListHeight     int
	DetailWidth    int
	DetailHeader   int
	ViewportHeight int
}

func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := BuildLayout(s)
	s.EntryList.SetSize(layout.ListWidth, layout.ListHeight)
	s.Viewport.Width = layout.DetailWidth
	s.Viewport.Height = layout.ViewportHeight
	s.Input.Width = clampMin(s.Width-2-lipgloss.Width(s.Input.Prompt)-1, 1)
}

// BuildLayout splits the terminal between the header, input, panes, status
// line and footer.
func BuildLayout(s *state.ModelState) Layout {
	fixed := metrics.HeaderLines + metrics.InputLines + metrics.StatusLines + footerHeight(s)
	contentHeight := clampMin(s.Height-fixed, 1)

	listWidth := clampMin(s.Width*metrics.ListWidthPercent/100, 1)
	// The detail pane has one column of left padding.
	detailWidth := clampMin(s.Width-listWidth-metrics.PaneBorderWidth-1, 1)

	listHeight := clampMin(contentHeight-metrics.PaneTitleLines, 1)

	header := detailHeaderHeight(s.Detail)
	return Layout{
		ContentHeight:  contentHeight,
		ListWidth:      listWidth,
		ListHeight:     listHeight,
		DetailWidth:    detailWidth,
		DetailHeader:   header,
		ViewportHeight: clampMin(contentHeight-header, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(s.Help.View(&s.Keys))
}

func clampMin(value, minValue int) int {
	if value < minValue {
		return minValue
	}
	return value
}
