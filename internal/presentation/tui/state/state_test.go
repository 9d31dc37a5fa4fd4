package state

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/eaterss/internal/application/settings"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		loading bool
		spinner string
		want    string
	}{
		{name: "idle", status: "Enter an RSS feed URL to get started", spinner: "*", want: "Enter an RSS feed URL to get started"},
		{name: "loading prefixes spinner", status: "Loading feed: u...", loading: true, spinner: "*", want: "* Loading feed: u..."},
		{name: "loading without status", loading: true, spinner: "*", want: "*"},
		{name: "loading without spinner frame", status: "s", loading: true, want: "s"},
		{name: "trims", status: "  Loaded: Go (2 items) ", want: "Loaded: Go (2 items)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusText(tt.status, tt.loading, tt.spinner); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewKeyMap(t *testing.T) {
	km := NewKeyMap(settings.KeyMapConfig{
		Up:          "k, up",
		Down:        "j,pgdn",
		Activate:    "enter",
		FocusInput:  "esc",
		ToggleFocus: "tab",
		Refresh:     "r",
		OpenBrowser: "o",
		Help:        "?",
		Quit:        "q",
	})

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "trimmed alias", msg: tea.KeyMsg{Type: tea.KeyUp}, binding: km.Up},
		{name: "rune key", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, binding: km.Up},
		{name: "pgdn alias", msg: tea.KeyMsg{Type: tea.KeyPgDown}, binding: km.Down},
		{name: "refresh", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, binding: km.Refresh},
		{name: "interrupt is fixed", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, binding: km.Interrupt},
		{name: "scroll down", msg: tea.KeyMsg{Type: tea.KeyCtrlD}, binding: km.ScrollDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(km.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}

func TestDetail_IsZero(t *testing.T) {
	if !(Detail{}).IsZero() {
		t.Error("empty detail should be zero")
	}
	if (Detail{Title: "No title"}).IsZero() {
		t.Error("detail with a title should not be zero")
	}
}
