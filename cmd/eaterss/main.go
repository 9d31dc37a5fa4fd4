// Command eaterss is a terminal RSS/Atom feed reader.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/eaterss/internal/application/usecase"
	"github.com/tesso57/eaterss/internal/infrastructure/config"
	"github.com/tesso57/eaterss/internal/infrastructure/feed"
	"github.com/tesso57/eaterss/internal/infrastructure/httpcache"
	"github.com/tesso57/eaterss/internal/infrastructure/logging"
	"github.com/tesso57/eaterss/internal/presentation/tui"
)

const (
	appName = "eaterss"
	version = "0.1.0"

	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

type cli struct {
	FeedURL  string           `kong:"arg,optional,name='feed_url',help='Feed URL to load on start.'"`
	Config   string           `kong:"help='Config file (default ~/.config/eaterss/config.yaml).',type='path',placeholder='PATH'"`
	LogFile  string           `kong:"name='log-file',help='Log file, overrides the config.',type='path',placeholder='PATH'"`
	LogLevel string           `kong:"name='log-level',help='Log level, overrides the config.',placeholder='LEVEL'"`
	Version  kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

// exitSignal carries an exit code out of kong's Exit hook.
type exitSignal int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	parsed, code, exited, err := parseArgs(args, stdout, stderr)
	if exited {
		return code
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program, cleanup, err := setup(ctx, parsed, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer cleanup()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return exitInterrupted
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func parseArgs(args []string, stdout, stderr io.Writer) (c cli, code int, exited bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code, exited = int(sig), true
		}
	}()

	parser, err := kong.New(&c,
		kong.Name(appName),
		kong.Description("A terminal RSS/Atom feed reader."),
		kong.Vars{"version": appName + " " + version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitSignal(code)) }),
	)
	if err != nil {
		return c, 0, false, err
	}
	_, err = parser.Parse(args)
	return c, 0, false, err
}

// setup wires configuration, logging, the response cache and the feed model
// into a ready-to-run program. cleanup releases what setup opened.
func setup(ctx context.Context, c cli, stdin io.Reader, stdout io.Writer) (*tea.Program, func(), error) {
	store, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = feed.DefaultUserAgent + "/" + version
	}

	logger, logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	closers := []io.Closer{logCloser}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}

	var cache feed.ResponseCache
	if cfg.Cache.Enabled {
		responses, err := httpcache.Open(ctx, cfg.Cache.File)
		if err != nil {
			logger.WithError(err).WithField("path", cfg.Cache.File).Warn("response cache disabled")
		} else {
			closers = append(closers, responses)
			cache = responses
		}
	}

	logger.WithField("config", store.Path()).Info("starting")

	fetcher := feed.NewFetcher(cfg.Fetch, cache, logger)
	feeds := usecase.NewFeedModel(fetcher, feed.NewParser(), logger)
	model := tui.NewModel(cfg, feeds, logger,
		tui.WithContext(ctx),
		tui.WithInitialURL(c.FeedURL),
	)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)
	return program, cleanup, nil
}
