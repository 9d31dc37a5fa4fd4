package update

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/eaterss/internal/presentation/tui/state"
)

func TestDetailHeader(t *testing.T) {
	tests := []struct {
		name      string
		detail    state.Detail
		want      []string
		wantLines int
	}{
		{name: "nothing selected", detail: state.Detail{}, wantLines: 0},
		{
			name:      "all fields",
			detail:    state.Detail{Title: "Go 1.26", Link: "https://go.dev/blog/go1.26", Date: "2026-02-10"},
			want:      []string{"Go 1.26", "https://go.dev/blog/go1.26", "2026-02-10", detailSectionDivider},
			wantLines: 4,
		},
		{
			name:      "date omitted when empty",
			detail:    state.Detail{Title: "No title", Link: "https://example.com/x"},
			want:      []string{"No title", "https://example.com/x"},
			wantLines: 3,
		},
		{
			name:      "body alone has no header",
			detail:    state.Detail{Body: "text"},
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetailHeader(tt.detail, 80)
			if tt.wantLines == 0 {
				if got != "" {
					t.Fatalf("DetailHeader() = %q, want empty", got)
				}
				return
			}
			if h := lipgloss.Height(got); h != tt.wantLines {
				t.Errorf("height = %d, want %d", h, tt.wantLines)
			}
			if h := detailHeaderHeight(tt.detail); h != tt.wantLines {
				t.Errorf("detailHeaderHeight = %d, want %d", h, tt.wantLines)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("DetailHeader() missing %q", w)
				}
			}
		})
	}
}

func TestDetailHeader_TruncatesToWidth(t *testing.T) {
	got := DetailHeader(state.Detail{Title: strings.Repeat("very long title ", 10)}, 20)
	for _, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line %q is %d wide", line, w)
		}
	}
}

func TestRefreshDetailViewport_WithoutRenderer(t *testing.T) {
	s := newTestState()
	s.Detail.Body = "raw body"

	refreshDetailViewport(s, Deps{})
	if !strings.Contains(s.Viewport.View(), "raw body") {
		t.Errorf("viewport = %q", s.Viewport.View())
	}
}
