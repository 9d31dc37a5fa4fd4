package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got := Render(Props{
		Header:  "HEADER",
		Input:   "INPUT",
		Sidebar: "SIDEBAR",
		Main:    "MAIN",
		Status:  "STATUS",
		Footer:  "FOOTER",
	})

	order := []string{"HEADER", "INPUT", "SIDEBAR", "STATUS", "FOOTER"}
	last := -1
	for _, part := range order {
		idx := strings.Index(got, part)
		if idx < 0 {
			t.Fatalf("missing %s", part)
		}
		if idx < last {
			t.Errorf("%s rendered out of order", part)
		}
		last = idx
	}

	lines := strings.Split(got, "\n")
	for _, line := range lines {
		if strings.Contains(line, "SIDEBAR") && !strings.Contains(line, "MAIN") {
			t.Error("sidebar and main should share a line")
		}
	}
}
