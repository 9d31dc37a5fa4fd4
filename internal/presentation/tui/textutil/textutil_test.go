package textutil

import "testing"

func TestFlatten(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"plain":                   "plain",
		"  Go 1.26\n\tis out ":    "Go 1.26 is out",
		"bell\aand\x1b[31mcolour": "bell and [31mcolour",
	}
	for in, want := range tests {
		if got := Flatten(in); got != want {
			t.Errorf("Flatten(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "hello world", width: 0, want: ""},
		{text: "short", width: 10, want: "short"},
		{text: "hello world", width: 8, want: "hello..."},
		{text: "two\nlines", width: 20, want: "two lines"},
	}
	for _, tt := range tests {
		if got := Fit(tt.text, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
