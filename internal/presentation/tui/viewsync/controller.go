// Package viewsync keeps the entry list, detail pane and status line
// consistent with the feed model.
//
// Controller.Handle is a pure transition function: it takes one Event,
// updates the phase and returns the complete list of view Commands for that
// transition. The host applies the list in one step with Apply.
package viewsync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/eaterss/internal/application/usecase"
	"github.com/tesso57/eaterss/internal/domain/reading"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	Empty Phase = iota
	Loading
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// IdleStatus is shown before the first load.
const IdleStatus = "Enter an RSS feed URL to get started"

// Model is the part of usecase.FeedModel the controller reads.
type Model interface {
	Select(index int) (reading.Entry, error)
	CurrentEntries() []reading.Entry
	Current() (*reading.ParsedFeed, bool)
	LastURL() string
}

// Event is an input to the controller.
type Event interface{ isEvent() }

// SubmitURL is sent when the user submits the URL field.
type SubmitURL struct{ URL string }

// LoadFinished carries the result of a StartLoad request.
type LoadFinished struct {
	URL  string
	Feed *reading.ParsedFeed
	Err  error
}

// Highlight is sent when the list cursor moves onto an entry.
type Highlight struct{ Index int }

// Activate is sent when an entry is explicitly chosen.
type Activate struct{ Index int }

// Refresh reloads the current feed.
type Refresh struct{}

// FocusInput moves focus back to the URL field.
type FocusInput struct{}

func (SubmitURL) isEvent()    {}
func (LoadFinished) isEvent() {}
func (Highlight) isEvent()    {}
func (Activate) isEvent()     {}
func (Refresh) isEvent()      {}
func (FocusInput) isEvent()   {}

// Controller reacts to events and produces view commands.
type Controller struct {
	model  Model
	logger logrus.FieldLogger
	phase  Phase
}

// NewController creates a controller in the Empty phase.
func NewController(model Model, logger logrus.FieldLogger) *Controller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Controller{model: model, logger: logger, phase: Empty}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Initial returns the commands that set up the views at startup.
func (c *Controller) Initial() []Command {
	return []Command{
		SetStatus{Text: IdleStatus},
		ClearDetail{},
		FocusField{},
	}
}

// Handle applies ev and returns the view commands for the transition.
func (c *Controller) Handle(ev Event) []Command {
	switch ev := ev.(type) {
	case SubmitURL:
		return c.submit(ev.URL)
	case Refresh:
		return c.submit(c.model.LastURL())
	case LoadFinished:
		return c.finish(ev)
	case Highlight:
		return c.show(ev.Index)
	case Activate:
		return c.show(ev.Index)
	case FocusInput:
		return []Command{FocusField{}}
	default:
		return nil
	}
}

func (c *Controller) submit(url string) []Command {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	c.phase = Loading
	return []Command{
		SetStatus{Text: fmt.Sprintf("Loading feed: %s...", url)},
		StartLoad{URL: url},
	}
}

func (c *Controller) finish(ev LoadFinished) []Command {
	if errors.Is(ev.Err, usecase.ErrSuperseded) {
		return nil
	}
	if ev.Err != nil {
		if _, ok := c.model.Current(); ok {
			c.phase = Loaded
		} else {
			c.phase = Empty
		}
		return []Command{SetStatus{Text: fmt.Sprintf("Error: %v", ev.Err)}}
	}

	c.phase = Loaded
	entries := c.model.CurrentEntries()
	title := reading.UnknownFeed
	if ev.Feed != nil {
		title = ev.Feed.Title
	}

	cmds := make([]Command, 0, len(entries)+4)
	cmds = append(cmds, ClearList{})
	for i, e := range entries {
		cmds = append(cmds, AppendEntry{Handle: EntryHandle{Index: i, Entry: e}})
	}
	cmds = append(cmds,
		ClearDetail{},
		SetStatus{Text: fmt.Sprintf("Loaded: %s (%d items)", title, len(entries))},
		FocusList{},
	)
	return cmds
}

func (c *Controller) show(index int) []Command {
	entry, err := c.model.Select(index)
	if err != nil {
		c.logger.WithError(err).WithField("index", index).Error("entry selection failed")
		return nil
	}
	return []Command{ShowEntry{Entry: entry}}
}
