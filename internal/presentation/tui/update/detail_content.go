package update

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	"github.com/tesso57/eaterss/internal/presentation/tui/textutil"
)

const detailSectionDivider = "----------------------------------------"

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true)
	detailMetaStyle  = lipgloss.NewStyle().Faint(true)
)

// DetailHeader renders the fixed part of the detail pane: title, link and
// date, each on one line and omitted when empty, followed by a divider.
// It returns "" when no entry is shown.
func DetailHeader(d state.Detail, width int) string {
	lines := detailHeaderLines(d)
	if len(lines) == 0 {
		return ""
	}

	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		line = textutil.Fit(line, width)
		if i == 0 && strings.TrimSpace(d.Title) != "" {
			out = append(out, detailTitleStyle.Render(line))
			continue
		}
		out = append(out, detailMetaStyle.Render(line))
	}
	out = append(out, textutil.Fit(detailSectionDivider, width))
	return strings.Join(out, "\n")
}

func detailHeaderLines(d state.Detail) []string {
	var lines []string
	for _, field := range []string{d.Title, d.Link, d.Date} {
		if strings.TrimSpace(field) != "" {
			lines = append(lines, field)
		}
	}
	return lines
}

func detailHeaderHeight(d state.Detail) int {
	n := len(detailHeaderLines(d))
	if n == 0 {
		return 0
	}
	return n + 1
}

func refreshDetailViewport(s *state.ModelState, deps Deps) {
	if s == nil {
		return
	}
	body := s.Detail.Body
	if deps.Renderer != nil {
		body = deps.Renderer.Render(body, detailWrapWidth(s))
	}
	s.Viewport.SetContent(body)
	s.Viewport.GotoTop()
}

func detailWrapWidth(s *state.ModelState) int {
	if s == nil {
		return 0
	}
	viewportContentWidth := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if viewportContentWidth > 0 {
		return viewportContentWidth
	}
	// Fallback for early calls before first resize.
	return 80
}
