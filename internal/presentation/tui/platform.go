package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// browserCommand builds the command that opens link. Tests replace it.
var browserCommand = func(link string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", link) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link) //nolint:gosec
	case "darwin":
		return exec.Command("open", link) //nolint:gosec
	default:
		return nil
	}
}

// openBrowser opens an entry link. Feed content is untrusted, so only
// absolute http(s) URLs are handed to the OS.
func openBrowser(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", link)
	}
	cmd := browserCommand(u.String())
	if cmd == nil {
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
