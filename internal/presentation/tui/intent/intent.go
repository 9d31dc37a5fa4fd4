// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Interrupt
	Quit
	ToggleHelp
	Activate
	FocusInput
	ToggleFocus
	Refresh
	OpenBrowser
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
// Cursor movement is left to the list and maps to None.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Interrupt):
		return Intent{Type: Interrupt}
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Activate):
		return Intent{Type: Activate}
	case key.Matches(msg, keys.FocusInput):
		return Intent{Type: FocusInput}
	case key.Matches(msg, keys.ToggleFocus):
		return Intent{Type: ToggleFocus}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.OpenBrowser):
		return Intent{Type: OpenBrowser}
	default:
		return Intent{Type: None}
	}
}
