package feed

import (
	"bytes"
	"errors"
	"sort"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	jsonfeed "github.com/mmcdole/gofeed/json"
	"github.com/mmcdole/gofeed/rss"
	"github.com/tesso57/eaterss/internal/domain/reading"
)

var (
	errEmptyDocument     = errors.New("document is empty")
	errUnsupportedFormat = errors.New("document is not an RSS, Atom or JSON feed")
)

// document is the parsed, not yet normalized, form of a feed.
type document struct {
	title   string
	entries []RawEntry
}

type decodeFunc func(data []byte) (document, error)

// Parser converts raw feed bytes into a ParsedFeed.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse never fails; problems are reported through Malformed and ParseError.
func (p *Parser) Parse(data []byte) reading.ParsedFeed {
	if len(bytes.TrimSpace(data)) == 0 {
		return failedFeed(errEmptyDocument)
	}

	switch gofeed.DetectFeedType(bytes.NewReader(data)) {
	case gofeed.FeedTypeRSS:
		closer := "</channel></rss>"
		if bytes.Contains(data, []byte("<rdf:RDF")) {
			closer = "</rdf:RDF>"
		}
		return parseRecovering(data, decodeRSS, "</item>", closer)
	case gofeed.FeedTypeAtom:
		return parseRecovering(data, decodeAtom, "</entry>", "</feed>")
	case gofeed.FeedTypeJSON:
		doc, err := decodeJSON(data)
		if err != nil {
			return failedFeed(err)
		}
		return buildFeed(doc, false)
	default:
		return failedFeed(errUnsupportedFormat)
	}
}

// parseRecovering decodes data. On failure it keeps the longest run of
// complete entries that still decodes once the root element is closed.
func parseRecovering(data []byte, decode decodeFunc, entryEnd, rootEnd string) reading.ParsedFeed {
	doc, err := decode(data)
	if err == nil {
		return buildFeed(doc, false)
	}

	ends := entryEnds(data, []byte(entryEnd))
	// A prefix that decodes means every shorter one does too, so the first
	// failing prefix bounds what can be kept.
	n := sort.Search(len(ends), func(i int) bool {
		_, rerr := decode(closeAt(data, ends[i], rootEnd))
		return rerr != nil
	})
	if n == 0 {
		return failedFeed(err)
	}
	recovered, rerr := decode(closeAt(data, ends[n-1], rootEnd))
	if rerr != nil || len(recovered.entries) == 0 {
		return failedFeed(err)
	}
	return buildFeed(recovered, true)
}

// entryEnds lists the offsets just past each occurrence of end.
func entryEnds(data, end []byte) []int {
	var offsets []int
	for pos := 0; ; {
		idx := bytes.Index(data[pos:], end)
		if idx < 0 {
			return offsets
		}
		pos += idx + len(end)
		offsets = append(offsets, pos)
	}
}

// closeAt returns data cut at offset with rootEnd appended.
func closeAt(data []byte, offset int, rootEnd string) []byte {
	out := make([]byte, 0, offset+len(rootEnd))
	out = append(out, data[:offset]...)
	return append(out, rootEnd...)
}

func buildFeed(doc document, malformed bool) reading.ParsedFeed {
	return reading.ParsedFeed{
		Title:     firstNonBlank(doc.title, reading.UnknownFeed),
		Entries:   normalizeAll(doc.entries),
		Malformed: malformed,
	}
}

func failedFeed(err error) reading.ParsedFeed {
	return reading.ParsedFeed{
		Title:      reading.UnknownFeed,
		Entries:    []reading.Entry{},
		Malformed:  true,
		ParseError: err.Error(),
	}
}

func decodeRSS(data []byte) (document, error) {
	f, err := (&rss.Parser{}).Parse(bytes.NewReader(data))
	if err != nil {
		return document{}, err
	}
	doc := document{title: f.Title, entries: make([]RawEntry, 0, len(f.Items))}
	for _, item := range f.Items {
		doc.entries = append(doc.entries, rawFromRSS(item))
	}
	return doc, nil
}

func decodeAtom(data []byte) (document, error) {
	f, err := (&atom.Parser{}).Parse(bytes.NewReader(data))
	if err != nil {
		return document{}, err
	}
	doc := document{title: f.Title, entries: make([]RawEntry, 0, len(f.Entries))}
	for _, entry := range f.Entries {
		doc.entries = append(doc.entries, rawFromAtom(entry))
	}
	return doc, nil
}

func decodeJSON(data []byte) (document, error) {
	f, err := (&jsonfeed.Parser{}).Parse(bytes.NewReader(data))
	if err != nil {
		return document{}, err
	}
	doc := document{title: f.Title, entries: make([]RawEntry, 0, len(f.Items))}
	for _, item := range f.Items {
		doc.entries = append(doc.entries, rawFromJSON(item))
	}
	return doc, nil
}
