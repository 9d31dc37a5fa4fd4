package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestRun_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{flag}, strings.NewReader(""), &stdout, &stderr)

			assert.Equal(t, exitOK, code)
			assert.Equal(t, "eaterss 0.1.0\n", stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "Usage: eaterss")
	assert.Contains(t, stdout.String(), "--log-level")
}

func TestRun_UsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-such-flag"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "Error: "), stderr.String())
}

func TestRun_InvalidLogLevel(t *testing.T) {
	dir := isolateHome(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--log-file", filepath.Join(dir, "e.log"),
		"--log-level", "loud",
	}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), `Error: invalid log level "loud"`)
}

func TestRun_CorruptConfig(t *testing.T) {
	dir := isolateHome(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("keymap: [unclosed"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", path}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "Error: load config:")
}
