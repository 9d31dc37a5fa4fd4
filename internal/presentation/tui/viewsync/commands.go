package viewsync

import "github.com/tesso57/eaterss/internal/domain/reading"

// EntryHandle identifies one entry in the list by its position.
type EntryHandle struct {
	Index int
	Entry reading.Entry
}

// ListView is the entry list.
type ListView interface {
	Clear()
	Append(h EntryHandle)
	Focus()
}

// StatusBar is the one-line status display.
type StatusBar interface {
	SetText(text string)
}

// DetailView shows one entry.
type DetailView interface {
	SetTitle(title string)
	SetLink(link string)
	SetDate(date string)
	SetBody(body string)
}

// InputField is the URL entry field.
type InputField interface {
	Focus()
}

// Views bundles the view collaborators.
type Views struct {
	List   ListView
	Status StatusBar
	Detail DetailView
	Input  InputField
}

// Command is one view update.
type Command interface {
	apply(v Views)
}

// Request is a Command the host executes instead of a view.
type Request interface {
	Command
	request()
}

// ClearList empties the list.
type ClearList struct{}

// AppendEntry adds an entry to the list.
type AppendEntry struct{ Handle EntryHandle }

// FocusList focuses the list.
type FocusList struct{}

// SetStatus replaces the status text.
type SetStatus struct{ Text string }

// ShowEntry fills the detail pane.
type ShowEntry struct{ Entry reading.Entry }

// ClearDetail blanks the detail pane.
type ClearDetail struct{}

// FocusField focuses the URL field.
type FocusField struct{}

// StartLoad asks the host to run FeedModel.Load for URL and report back
// with LoadFinished.
type StartLoad struct{ URL string }

func (ClearList) apply(v Views)     { v.List.Clear() }
func (c AppendEntry) apply(v Views) { v.List.Append(c.Handle) }
func (FocusList) apply(v Views)     { v.List.Focus() }
func (c SetStatus) apply(v Views)   { v.Status.SetText(c.Text) }
func (FocusField) apply(v Views)    { v.Input.Focus() }
func (StartLoad) apply(Views)       {}
func (StartLoad) request()          {}

func (c ShowEntry) apply(v Views) {
	v.Detail.SetTitle(c.Entry.Title)
	v.Detail.SetLink(c.Entry.Link)
	v.Detail.SetDate(c.Entry.Published)
	v.Detail.SetBody(c.Entry.Summary)
}

func (ClearDetail) apply(v Views) {
	v.Detail.SetTitle("")
	v.Detail.SetLink("")
	v.Detail.SetDate("")
	v.Detail.SetBody("")
}

// Apply runs cmds against views in order and returns the requests the host
// must execute.
func Apply(v Views, cmds []Command) []Request {
	var reqs []Request
	for _, c := range cmds {
		if r, ok := c.(Request); ok {
			reqs = append(reqs, r)
			continue
		}
		c.apply(v)
	}
	return reqs
}
