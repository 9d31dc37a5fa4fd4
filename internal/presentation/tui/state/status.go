package state

import "strings"

// StatusText returns the status line. While loading the spinner frame is
// prepended so the user sees progress without a separate widget.
func StatusText(status string, loading bool, spinnerView string) string {
	status = strings.TrimSpace(status)
	if !loading || spinnerView == "" {
		return status
	}
	if status == "" {
		return spinnerView
	}
	return spinnerView + " " + status
}
