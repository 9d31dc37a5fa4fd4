// Package textutil shapes feed text for single terminal lines.
package textutil

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// Flatten joins the words of text with single spaces. Line breaks and
// control characters (escape sequences from hostile feeds included) are
// treated as separators.
func Flatten(text string) string {
	return strings.Join(strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}), " ")
}

// Fit flattens text and cuts it to width terminal cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(Flatten(text), width, ellipsis)
}
