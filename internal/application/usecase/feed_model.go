// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/eaterss/internal/domain/reading"
)

// FeedFetcher abstracts raw feed retrieval.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FeedParser abstracts feed parsing. Parse never fails; problems are
// reported on the returned feed.
type FeedParser interface {
	Parse(data []byte) reading.ParsedFeed
}

// ErrSuperseded is returned by Load when a newer Load started before it finished.
var ErrSuperseded = errors.New("load superseded by a newer request")

// LoadErrorKind classifies load failures.
type LoadErrorKind int

const (
	NetworkFailure LoadErrorKind = iota + 1
	ParseFailure
)

func (k LoadErrorKind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ParseFailure:
		return "parse failure"
	default:
		return "unknown failure"
	}
}

// LoadError is returned when a feed could not be fetched or parsed.
type LoadError struct {
	Kind LoadErrorKind
	URL  string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Kind == ParseFailure {
		return fmt.Sprintf("Failed to parse feed - %v", e.Err)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// IndexError is returned when selecting an entry that does not exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("entry index %d out of range (%d entries)", e.Index, e.Len)
}

// FeedModel owns the session's current feed and selection.
type FeedModel struct {
	fetcher FeedFetcher
	parser  FeedParser
	logger  logrus.FieldLogger

	mu           sync.Mutex
	generation   uint64
	current      *reading.ParsedFeed
	selected     int
	hasSelection bool
}

// NewFeedModel creates an empty FeedModel.
func NewFeedModel(fetcher FeedFetcher, parser FeedParser, logger logrus.FieldLogger) *FeedModel {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &FeedModel{
		fetcher: fetcher,
		parser:  parser,
		logger:  logger,
	}
}

// Ticket is a reserved place in load order. A load run with an older ticket
// than the newest one handed out is superseded.
type Ticket struct {
	URL        string
	Generation uint64
}

// Begin reserves the next place in load order for url. Callers that run
// loads asynchronously take the ticket when the load is requested so that
// the last request wins however the goroutines are scheduled.
func (m *FeedModel) Begin(url string) Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	return Ticket{URL: strings.TrimSpace(url), Generation: m.generation}
}

// Load fetches and parses url. On success the result replaces the current
// feed and clears the selection. Failed or superseded loads leave the state
// untouched.
func (m *FeedModel) Load(ctx context.Context, url string) (*reading.ParsedFeed, error) {
	return m.Run(ctx, m.Begin(url))
}

// Run performs the load reserved by t.
func (m *FeedModel) Run(ctx context.Context, t Ticket) (*reading.ParsedFeed, error) {
	url, gen := t.URL, t.Generation
	log := m.logger.WithFields(logrus.Fields{"url": url, "generation": gen})
	log.Info("loading feed")

	data, err := m.fetcher.Fetch(ctx, url)
	if err != nil {
		if m.stale(gen) {
			log.WithError(err).Debug("dropping superseded load")
			return nil, ErrSuperseded
		}
		log.WithError(err).Warn("feed fetch failed")
		return nil, &LoadError{Kind: NetworkFailure, URL: url, Err: err}
	}

	parsed := m.parser.Parse(data)
	parsed.URL = url
	if parsed.HasParseError() {
		if m.stale(gen) {
			log.Debug("dropping superseded load")
			return nil, ErrSuperseded
		}
		log.WithField("parse_error", parsed.ParseError).Warn("feed parse failed")
		return nil, &LoadError{Kind: ParseFailure, URL: url, Err: errors.New(parsed.ParseError)}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		log.Debug("dropping superseded load")
		return nil, ErrSuperseded
	}
	m.current = &parsed
	m.selected = 0
	m.hasSelection = false

	log.WithFields(logrus.Fields{
		"entries":   len(parsed.Entries),
		"malformed": parsed.Malformed,
	}).Info("feed loaded")
	return cloneFeed(m.current), nil
}

// Select marks entry index as selected and returns it.
func (m *FeedModel) Select(index int) (reading.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.current.Entry(index)
	if !ok {
		return reading.Entry{}, &IndexError{Index: index, Len: m.current.Len()}
	}
	m.selected = index
	m.hasSelection = true
	return entry, nil
}

// CurrentEntries returns a copy of the current feed's entries.
func (m *FeedModel) CurrentEntries() []reading.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return []reading.Entry{}
	}
	return slices.Clone(m.current.Entries)
}

// Current returns a copy of the current feed.
func (m *FeedModel) Current() (*reading.ParsedFeed, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, false
	}
	return cloneFeed(m.current), true
}

// Selected returns the selected index.
func (m *FeedModel) Selected() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected, m.hasSelection
}

// LastURL returns the URL of the current feed, or "" when nothing is loaded.
func (m *FeedModel) LastURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.URL
}

func (m *FeedModel) stale(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return gen != m.generation
}

func cloneFeed(f *reading.ParsedFeed) *reading.ParsedFeed {
	out := *f
	out.Entries = slices.Clone(f.Entries)
	return &out
}
