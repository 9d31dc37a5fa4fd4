package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/eaterss/internal/presentation/tui/presenter"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	"github.com/tesso57/eaterss/internal/presentation/tui/viewsync"
)

// views adapts ModelState to the viewsync view interfaces for one Apply.
// The flags record what changed so Dispatch only re-lays out when needed.
type views struct {
	list   *listView
	status *statusView
	detail *detailView
	input  *inputView
}

func newViews(s *state.ModelState) *views {
	return &views{
		list:   &listView{s: s},
		status: &statusView{s: s},
		detail: &detailView{s: s},
		input:  &inputView{s: s},
	}
}

func (v *views) bundle() viewsync.Views {
	return viewsync.Views{List: v.list, Status: v.status, Detail: v.detail, Input: v.input}
}

type listView struct {
	s       *state.ModelState
	changed bool
}

func (l *listView) Clear() {
	l.s.EntryList.ResetSelected()
	l.s.EntryList.SetItems(nil)
	l.changed = true
}

func (l *listView) Append(h viewsync.EntryHandle) {
	l.s.EntryList.InsertItem(len(l.s.EntryList.Items()), presenter.NewItem(h))
	l.changed = true
}

func (l *listView) Focus() {
	focusList(l.s)
}

type statusView struct{ s *state.ModelState }

func (v *statusView) SetText(text string) { v.s.Status = text }

type detailView struct {
	s       *state.ModelState
	changed bool
}

func (d *detailView) SetTitle(title string) { d.s.Detail.Title = title; d.changed = true }
func (d *detailView) SetLink(link string)   { d.s.Detail.Link = link; d.changed = true }
func (d *detailView) SetDate(date string)   { d.s.Detail.Date = date; d.changed = true }
func (d *detailView) SetBody(body string)   { d.s.Detail.Body = body; d.changed = true }

type inputView struct {
	s   *state.ModelState
	cmd tea.Cmd
}

func (i *inputView) Focus() {
	i.s.Focus = state.FocusInput
	i.cmd = i.s.Input.Focus()
}
