package view

import (
	"strings"
	"testing"

	"github.com/tesso57/eaterss/internal/presentation/tui/components/header"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/input"
	mainview "github.com/tesso57/eaterss/internal/presentation/tui/components/main"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/modal"
	"github.com/tesso57/eaterss/internal/presentation/tui/components/sidebar"
)

func TestRender(t *testing.T) {
	props := Props{
		Header:  header.Props{Title: "EateRSS", Width: 80},
		Input:   input.Props{View: "> url", Width: 80},
		Sidebar: sidebar.Props{View: "entry list", Width: 30, Height: 5, Title: "Entries"},
		Main:    mainview.Props{Width: 48, Height: 5, Header: "Entry title", Body: "entry body"},
		Status:  "Loaded: Go (2 items)",
		Footer:  "q quit",
	}

	got := Render(props)
	for _, want := range []string{"EateRSS", "> url", "entry list", "Entry title", "entry body", "Loaded: Go (2 items)", "q quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_ModalReplacesLayout(t *testing.T) {
	props := Props{
		Header: header.Props{Title: "EateRSS", Width: 80},
		Modal:  modal.Props{Visible: true, Title: "Keys", Body: "r refresh", Width: 80, Height: 20},
	}

	got := Render(props)
	if !strings.Contains(got, "r refresh") {
		t.Error("modal body missing")
	}
	if strings.Contains(got, "EateRSS") {
		t.Error("layout should not render under the modal")
	}
}
