// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/eaterss/internal/application/usecase"
	"github.com/tesso57/eaterss/internal/domain/reading"
	"github.com/tesso57/eaterss/internal/presentation/tui/intent"
	"github.com/tesso57/eaterss/internal/presentation/tui/markdown"
	"github.com/tesso57/eaterss/internal/presentation/tui/presenter"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	"github.com/tesso57/eaterss/internal/presentation/tui/viewsync"
)

// Feeds is the feed model as seen by the TUI. Begin is called on the update
// goroutine and Run inside the load command.
type Feeds interface {
	viewsync.Model
	Begin(url string) usecase.Ticket
	Run(ctx context.Context, t usecase.Ticket) (*reading.ParsedFeed, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Context     context.Context
	Feeds       Feeds
	Controller  *viewsync.Controller
	Renderer    *markdown.Renderer
	OpenBrowser func(string) error
}

// FeedLoadedMsg is emitted when a Load started by LoadFeedCmd returns.
type FeedLoadedMsg struct {
	URL  string
	Feed *reading.ParsedFeed
	Err  error
}

// LoadFeedCmd reserves a load of url and returns the command that runs it.
// The reservation happens now, so commands created later supersede this one
// regardless of the order their goroutines run in.
func LoadFeedCmd(ctx context.Context, feeds Feeds, url string) tea.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	ticket := feeds.Begin(url)
	return func() tea.Msg {
		f, err := feeds.Run(ctx, ticket)
		return FeedLoadedMsg{URL: ticket.URL, Feed: f, Err: err}
	}
}

// Start applies the controller's initial view state.
func Start(s *state.ModelState, deps Deps) tea.Cmd {
	return apply(s, deps.Controller.Initial(), deps)
}

// Dispatch runs ev through the controller and applies the result.
func Dispatch(s *state.ModelState, ev viewsync.Event, deps Deps) tea.Cmd {
	return apply(s, deps.Controller.Handle(ev), deps)
}

// apply runs cmds against the state in one step and turns the controller's
// requests into tea commands.
func apply(s *state.ModelState, cmds []viewsync.Command, deps Deps) tea.Cmd {
	views := newViews(s)
	reqs := viewsync.Apply(views.bundle(), cmds)

	wasLoading := s.Loading
	s.Loading = deps.Controller.Phase() == viewsync.Loading
	if views.detail.changed || views.list.changed {
		UpdateListSizes(s)
		refreshDetailViewport(s, deps)
	}

	var out []tea.Cmd
	for _, r := range reqs {
		if load, ok := r.(viewsync.StartLoad); ok {
			out = append(out, LoadFeedCmd(deps.Context, deps.Feeds, load.URL))
		}
	}
	if s.Loading && !wasLoading {
		out = append(out, s.Spinner.Tick)
	}
	if views.input.cmd != nil {
		out = append(out, views.input.cmd)
	}
	return tea.Batch(out...)
}

// HandleFeedLoadedMsg reports a finished load to the controller.
func HandleFeedLoadedMsg(s *state.ModelState, msg FeedLoadedMsg, deps Deps) tea.Cmd {
	if msg.Err == nil && msg.Feed != nil {
		s.FeedTitle = msg.Feed.Title
	}
	return Dispatch(s, viewsync.LoadFinished{URL: msg.URL, Feed: msg.Feed, Err: msg.Err}, deps)
}

// HandleKeyMsg handles key input. It reports false when the key should be
// passed on to the entry list.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Interrupt {
		return tea.Interrupt, true
	}
	if s.Help.ShowAll {
		return handleHelpOverlay(s, parsed), true
	}

	switch s.Focus {
	case state.FocusInput:
		return handleInputKey(s, msg, parsed, deps)
	case state.FocusList:
		return handleListIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleListMsg passes msg to the entry list and reports a cursor move to the
// controller as a highlight. While the detail pane is blank, an up or down
// key that cannot move the cursor highlights the entry under it instead.
func HandleListMsg(s *state.ModelState, msg tea.Msg, deps Deps) tea.Cmd {
	prev, hadPrev := presenter.EntryIndex(s.EntryList)

	var cmd tea.Cmd
	s.EntryList, cmd = s.EntryList.Update(msg)

	idx, ok := presenter.EntryIndex(s.EntryList)
	if !ok {
		return cmd
	}
	if hadPrev && idx == prev && !(s.Detail.IsZero() && isCursorKey(s, msg)) {
		return cmd
	}
	return tea.Batch(cmd, Dispatch(s, viewsync.Highlight{Index: idx}, deps))
}

func isCursorKey(s *state.ModelState, msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && key.Matches(k, s.Keys.Up, s.Keys.Down)
}

// HandleWindowSize records the terminal size and re-lays out the panes.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	s.Width = msg.Width
	s.Height = msg.Height

	offset := s.Viewport.YOffset
	UpdateListSizes(s)
	refreshDetailViewport(s, deps)
	s.Viewport.SetYOffset(offset)
}

func handleHelpOverlay(s *state.ModelState, in intent.Intent) tea.Cmd {
	switch in.Type {
	case intent.ToggleHelp, intent.FocusInput, intent.Quit:
		s.Help.ShowAll = false
	}
	return nil
}

// In the input only submit and focus keys are intercepted; everything else
// is typed.
func handleInputKey(s *state.ModelState, msg tea.KeyMsg, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyEnter {
		return Dispatch(s, viewsync.SubmitURL{URL: s.Input.Value()}, deps), true
	}
	switch in.Type {
	case intent.ToggleFocus:
		if len(s.EntryList.Items()) > 0 {
			focusList(s)
		}
		return nil, true
	case intent.FocusInput:
		return nil, true
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd, true
}

func handleListIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit:
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Refresh:
		return Dispatch(s, viewsync.Refresh{}, deps), true
	case intent.FocusInput, intent.ToggleFocus:
		return Dispatch(s, viewsync.FocusInput{}, deps), true
	case intent.Activate:
		if idx, ok := presenter.EntryIndex(s.EntryList); ok {
			return Dispatch(s, viewsync.Activate{Index: idx}, deps), true
		}
		return nil, true
	case intent.OpenBrowser:
		openSelectedLink(s, deps)
		return nil, true
	}
	return nil, false
}

func openSelectedLink(s *state.ModelState, deps Deps) {
	link := strings.TrimSpace(s.Detail.Link)
	if link == "" || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(link); err != nil {
		s.Status = fmt.Sprintf("Error: could not open browser - %v", err)
	}
}

func focusList(s *state.ModelState) {
	s.Focus = state.FocusList
	s.Input.Blur()
}
