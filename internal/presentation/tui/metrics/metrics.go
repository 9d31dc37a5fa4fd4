// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines      = 1
	InputLines       = 3
	StatusLines      = 1
	PaneTitleLines   = 2
	PaneBorderWidth  = 1
	ListWidthPercent = 40

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
