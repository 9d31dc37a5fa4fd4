package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/eaterss/internal/application/settings"
	"github.com/tesso57/eaterss/internal/presentation/tui/markdown"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
	"github.com/tesso57/eaterss/internal/presentation/tui/update"
	"github.com/tesso57/eaterss/internal/presentation/tui/view"
	listview "github.com/tesso57/eaterss/internal/presentation/tui/view/list"
	"github.com/tesso57/eaterss/internal/presentation/tui/viewsync"
)

const inputPlaceholder = "Enter RSS feed URL and press Enter..."

// Model represents the main application state.
type Model struct {
	ctx        context.Context
	settings   settings.Settings
	feeds      update.Feeds
	controller *viewsync.Controller
	renderer   *markdown.Renderer
	initialURL string
	state      *state.ModelState
}

// Option configures a Model.
type Option func(*Model)

// WithInitialURL submits url as soon as the program starts.
func WithInitialURL(url string) Option {
	return func(m *Model) { m.initialURL = url }
}

// WithContext sets the context feed loads run under.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, feeds update.Feeds, logger logrus.FieldLogger, opts ...Option) *Model {
	m := &Model{
		ctx:        context.Background(),
		settings:   cfg,
		feeds:      feeds,
		controller: viewsync.NewController(feeds, logger),
		renderer:   markdown.NewRenderer(cfg.Theme.MarkdownStyle),
		state:      newModelState(cfg),
	}
	for _, opt := range opts {
		opt(m)
	}
	// The blink command is returned again from Init.
	_ = update.Start(m.state, m.deps())
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialURL != "" {
		m.state.Input.SetValue(m.initialURL)
		cmds = append(cmds, update.Dispatch(m.state, viewsync.SubmitURL{URL: m.initialURL}, m.deps()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	deps := m.deps()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := update.HandleKeyMsg(m.state, msg, deps); handled {
			return m, cmd
		}
		listCmd := update.HandleListMsg(m.state, msg, deps)
		var vpCmd tea.Cmd
		m.state.Viewport, vpCmd = m.state.Viewport.Update(msg)
		return m, tea.Batch(listCmd, vpCmd)
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, deps)
		return m, nil
	case update.FeedLoadedMsg:
		return m, update.HandleFeedLoadedMsg(m.state, msg, deps)
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Context:     m.ctx,
		Feeds:       m.feeds,
		Controller:  m.controller,
		Renderer:    m.renderer,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	keys := state.NewKeyMap(cfg.KeyMap)
	return &state.ModelState{
		Focus:     state.FocusInput,
		Input:     newTextInput(),
		EntryList: newEntryList(cfg, keys),
		Viewport:  newViewport(keys),
		Help:      help.New(),
		Spinner:   newSpinner(cfg),
		Keys:      keys,
	}
}

func newEntryList(cfg settings.Settings, keys state.KeyMap) list.Model {
	delegate := listview.NewEntryDelegate(lipgloss.Color(cfg.Theme.Accent), lipgloss.Color(cfg.Theme.Muted))
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap.CursorUp = keys.Up
	l.KeyMap.CursorDown = keys.Down
	return l
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 40
	return ti
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport(keys state.KeyMap) viewport.Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		HalfPageUp:   keys.ScrollUp,
		HalfPageDown: keys.ScrollDown,
	}
	return vp
}
