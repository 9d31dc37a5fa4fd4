package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Detail is the entry shown in the detail pane. Empty fields are not shown.
type Detail struct {
	Title string
	Link  string
	Date  string
	Body  string
}

// IsZero reports whether no entry is shown.
func (d Detail) IsZero() bool {
	return d == Detail{}
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Focus     Focus
	Input     textinput.Model
	EntryList list.Model
	Viewport  viewport.Model
	Help      help.Model
	Spinner   spinner.Model
	Keys      KeyMap
	Loading   bool
	Status    string
	Detail    Detail
	FeedTitle string
	Width     int
	Height    int
}
