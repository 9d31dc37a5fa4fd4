// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/header"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/input"
	mainview "github.com/tesso57/eaterss/internal/presentation/tui/components/main"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/modal"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	"github.com/tesso57/eaterss/internal/presentation/tui/textutil"
	"github.com/tesso57/eaterss/internal/presentation/tui/update"
	"github.com/tesso57/eaterss/internal/presentation/tui/view"
)

const (
	appTitle        = "EateRSS"
	appSubtitle     = "RSS Feed Reader"
	emptyListTitle  = "Entries"
	helpModalHeader = "Keys"
)

func (m *Model) buildProps() view.Props {
	layout := update.BuildLayout(m.state)
	return view.Props{
		Header:  m.buildHeaderProps(),
		Input:   m.buildInputProps(),
		Sidebar: m.buildSidebarProps(layout),
		Main:    m.buildMainProps(layout),
		Modal:   m.buildModalProps(),
		Status:  m.buildStatus(),
		Footer:  m.state.Help.View(&m.state.Keys),
	}
}

func (m *Model) accent() lipgloss.Color { return lipgloss.Color(m.settings.Theme.Accent) }
func (m *Model) muted() lipgloss.Color  { return lipgloss.Color(m.settings.Theme.Muted) }

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Title:    appTitle,
		Subtitle: appSubtitle,
		Width:    m.state.Width,
		Accent:   m.accent(),
		Muted:    m.muted(),
	}
}

func (m *Model) buildInputProps() input.Props {
	return input.Props{
		View:   m.state.Input.View(),
		Width:  m.state.Width,
		Active: m.state.Focus == state.FocusInput,
		Accent: m.accent(),
		Muted:  m.muted(),
	}
}

func (m *Model) buildSidebarProps(layout update.Layout) sidebar.Props {
	title := emptyListTitle
	if m.state.FeedTitle != "" {
		title = m.state.FeedTitle
	}
	return sidebar.Props{
		View:   m.state.EntryList.View(),
		Width:  layout.ListWidth,
		Height: layout.ContentHeight,
		Title:  textutil.Fit(title, layout.ListWidth-8),
		Count:  len(m.state.EntryList.Items()),
		Active: m.state.Focus == state.FocusList,
		Accent: m.accent(),
		Muted:  m.muted(),
	}
}

func (m *Model) buildMainProps(layout update.Layout) mainview.Props {
	var body string
	if !m.state.Detail.IsZero() {
		body = m.state.Viewport.View()
	}
	return mainview.Props{
		Width:  layout.DetailWidth + 1,
		Height: layout.ContentHeight,
		Header: update.DetailHeader(m.state.Detail, layout.DetailWidth),
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if !m.state.Help.ShowAll {
		return modal.Props{Visible: false}
	}
	return modal.Props{
		Visible: true,
		Title:   helpModalHeader,
		Body:    m.state.Help.View(&m.state.Keys),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Accent:  m.accent(),
	}
}

func (m *Model) buildStatus() string {
	text := state.StatusText(m.state.Status, m.state.Loading, m.state.Spinner.View())
	return lipgloss.NewStyle().
		Foreground(m.muted()).
		PaddingLeft(1).
		Render(textutil.Fit(text, m.state.Width-1))
}
