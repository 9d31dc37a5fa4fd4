// Package markdown renders entry summaries for the detail pane.
//
// Summaries are usually HTML fragments. They are converted to markdown and
// then rendered for the terminal with glamour.
package markdown

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

const autoStyle = "auto"

// Renderer converts and renders entry bodies. It is not safe for concurrent
// use; the TUI calls it from Update only.
type Renderer struct {
	style     string
	converter *md.Converter

	term  *glamour.TermRenderer
	width int
}

// NewRenderer creates a Renderer using the named glamour style
// (dark, light, notty, ascii, dracula, ... or auto).
func NewRenderer(style string) *Renderer {
	style = strings.TrimSpace(style)
	if style == "" {
		style = autoStyle
	}
	return &Renderer{
		style:     style,
		converter: md.NewConverter("", true, nil),
	}
}

// Render returns body formatted for a pane width columns wide. An empty body
// renders as "". If conversion or rendering fails the body is returned
// wrapped but otherwise untouched.
func (r *Renderer) Render(body string, width int) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	width = max(width, 1)

	text := body
	if looksLikeHTML(body) {
		if converted, err := r.converter.ConvertString(body); err == nil {
			text = converted
		}
	}

	term, err := r.renderer(width)
	if err != nil {
		return ansi.Wrap(text, width, "")
	}
	out, err := term.Render(text)
	if err != nil {
		return ansi.Wrap(text, width, "")
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	if r.term != nil && r.width == width {
		return r.term, nil
	}

	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == autoStyle {
		styleOpt = glamour.WithAutoStyle()
	}
	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	r.term = term
	r.width = width
	return term, nil
}

func looksLikeHTML(s string) bool {
	return (strings.Contains(s, "<") && strings.Contains(s, ">")) || strings.Contains(s, "&")
}
