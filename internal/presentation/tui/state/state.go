// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/eaterss/internal/application/settings"
)

// Focus identifies the widget that receives key input.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Activate    key.Binding
	FocusInput  key.Binding
	ToggleFocus key.Binding
	Refresh     key.Binding
	OpenBrowser key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Help        key.Binding
	Quit        key.Binding
	Interrupt   key.Binding
}

// ShortHelp returns a subset of keybindings for the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Refresh, k.FocusInput, k.ToggleFocus, k.Help}
}

// FullHelp returns all keybindings for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate, k.OpenBrowser},
		{k.ScrollUp, k.ScrollDown},
		{k.FocusInput, k.ToggleFocus, k.Refresh},
		{k.Help, k.Quit, k.Interrupt},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Activate)...),
			key.WithHelp(cfg.Activate, "show entry"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys(splitKeys(cfg.FocusInput)...),
			key.WithHelp(cfg.FocusInput, "focus input"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ToggleFocus)...),
			key.WithHelp(cfg.ToggleFocus, "switch pane"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refresh"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys(splitKeys(cfg.OpenBrowser)...),
			key.WithHelp(cfg.OpenBrowser, "open link"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "scroll entry up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "scroll entry down"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "interrupt"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
