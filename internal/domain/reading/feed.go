// Package reading defines core reading models.
package reading

// NoTitle is shown for entries without a usable title.
const NoTitle = "No title"

// UnknownFeed is the title of a feed that does not declare one.
const UnknownFeed = "Unknown Feed"

// Entry represents a single normalized feed entry.
// Every field is a plain string; empty means absent.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published string
}

// ParsedFeed is the result of parsing one feed document.
type ParsedFeed struct {
	Title     string
	URL       string
	Entries   []Entry
	Malformed bool
	// ParseError is set only when the document was malformed and no
	// entries could be recovered.
	ParseError string
}

// HasParseError reports whether parsing failed without recovering any entries.
func (f *ParsedFeed) HasParseError() bool {
	return f != nil && f.ParseError != ""
}

// Len returns the number of entries.
func (f *ParsedFeed) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Entries)
}

// Entry returns the entry at index i.
func (f *ParsedFeed) Entry(i int) (Entry, bool) {
	if f == nil || i < 0 || i >= len(f.Entries) {
		return Entry{}, false
	}
	return f.Entries[i], true
}
