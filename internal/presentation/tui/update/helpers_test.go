package update

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tesso57/eaterss/internal/application/settings"
	"github.com/tesso57/eaterss/internal/application/usecase"
	"github.com/tesso57/eaterss/internal/domain/reading"
	"github.com/tesso57/eaterss/internal/presentation/tui/markdown"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	listview "github.com/tesso57/eaterss/internal/presentation/tui/view/list"
	"github.com/tesso57/eaterss/internal/presentation/tui/viewsync"
)

// fakeFeeds is an in-memory feed model keyed by URL.
type fakeFeeds struct {
	feeds      map[string]reading.ParsedFeed
	errs       map[string]error
	current    *reading.ParsedFeed
	loads      []string
	generation uint64
}

func (f *fakeFeeds) Begin(url string) usecase.Ticket {
	f.generation++
	return usecase.Ticket{URL: strings.TrimSpace(url), Generation: f.generation}
}

func (f *fakeFeeds) Run(_ context.Context, t usecase.Ticket) (*reading.ParsedFeed, error) {
	url := t.URL
	f.loads = append(f.loads, url)
	if t.Generation != f.generation {
		return nil, usecase.ErrSuperseded
	}
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	feed := f.feeds[url]
	feed.URL = url
	f.current = &feed
	return &feed, nil
}

func (f *fakeFeeds) Select(index int) (reading.Entry, error) {
	e, ok := f.current.Entry(index)
	if !ok {
		return reading.Entry{}, &usecase.IndexError{Index: index, Len: f.current.Len()}
	}
	return e, nil
}

func (f *fakeFeeds) CurrentEntries() []reading.Entry {
	if f.current == nil {
		return []reading.Entry{}
	}
	return append([]reading.Entry(nil), f.current.Entries...)
}

func (f *fakeFeeds) Current() (*reading.ParsedFeed, bool) {
	return f.current, f.current != nil
}

func (f *fakeFeeds) LastURL() string {
	if f.current == nil {
		return ""
	}
	return f.current.URL
}

const goBlogURL = "https://go.dev/blog/feed.atom"

func goBlogFeeds() *fakeFeeds {
	return &fakeFeeds{
		feeds: map[string]reading.ParsedFeed{
			goBlogURL: {
				Title: "The Go Blog",
				Entries: []reading.Entry{
					{Title: "Go 1.26 is released", Link: "https://go.dev/blog/go1.26", Summary: "<p>Faster <b>builds</b>.</p>", Published: "2026-02-10"},
					{Title: "Type inference", Link: "https://go.dev/blog/inference", Summary: "How inference works."},
					{Title: "No title", Summary: ""},
				},
			},
		},
		errs: map[string]error{},
	}
}

func newTestDeps(feeds Feeds) Deps {
	logger, _ := test.NewNullLogger()
	return Deps{
		Context:     context.Background(),
		Feeds:       feeds,
		Controller:  viewsync.NewController(feeds, logger),
		Renderer:    markdown.NewRenderer("notty"),
		OpenBrowser: func(string) error { return nil },
	}
}

func newTestState() *state.ModelState {
	keys := state.NewKeyMap(settingsKeyMap())
	ti := textinput.New()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	l := list.New(nil, listview.NewEntryDelegate(lipgloss.Color("205"), lipgloss.Color("244")), 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = keys.Up
	l.KeyMap.CursorDown = keys.Down

	s := &state.ModelState{
		Focus:     state.FocusInput,
		Input:     ti,
		EntryList: l,
		Viewport:  viewport.New(0, 0),
		Help:      help.New(),
		Spinner:   spinner.New(),
		Keys:      keys,
		Width:     100,
		Height:    40,
	}
	UpdateListSizes(s)
	return s
}

// runCmd executes cmd and any batched children, returning every message
// produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func loadedMsgs(cmd tea.Cmd) []FeedLoadedMsg {
	var out []FeedLoadedMsg
	for _, msg := range runCmd(cmd) {
		if m, ok := msg.(FeedLoadedMsg); ok {
			out = append(out, m)
		}
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func settingsKeyMap() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up: "k,up", Down: "j,down", Activate: "enter", FocusInput: "esc",
		ToggleFocus: "tab", Refresh: "r", OpenBrowser: "o", Help: "?", Quit: "q",
	}
}
