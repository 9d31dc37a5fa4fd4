package feed

import (
	"strings"

	"github.com/mmcdole/gofeed/atom"
	jsonfeed "github.com/mmcdole/gofeed/json"
	"github.com/mmcdole/gofeed/rss"
	"github.com/samber/lo"
	"github.com/tesso57/eaterss/internal/domain/reading"
)

// RawEntry holds the format-independent candidate fields of one entry
// before fallbacks are applied.
type RawEntry struct {
	Title       string
	Link        string
	Summary     string
	Description string
	Published   string
	Updated     string
}

// Normalize applies the field fallbacks and returns a complete Entry.
//
//	title:     Title -> "No title"
//	summary:   Summary -> Description -> ""
//	published: Published -> Updated -> ""
func (r RawEntry) Normalize() reading.Entry {
	return reading.Entry{
		Title:     firstNonBlank(r.Title, reading.NoTitle),
		Link:      firstNonBlank(r.Link),
		Summary:   firstNonBlank(r.Summary, r.Description),
		Published: firstNonBlank(r.Published, r.Updated),
	}
}

func firstNonBlank(values ...string) string {
	v := lo.FindOrElse(values, "", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	return strings.TrimSpace(v)
}

func normalizeAll(raw []RawEntry) []reading.Entry {
	return lo.Map(raw, func(r RawEntry, _ int) reading.Entry {
		return r.Normalize()
	})
}

func rawFromRSS(item *rss.Item) RawEntry {
	if item == nil {
		return RawEntry{}
	}
	raw := RawEntry{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Published:   item.PubDate,
	}
	if raw.Link == "" {
		raw.Link = firstNonBlank(item.Links...)
	}
	if raw.Link == "" && item.GUID != nil && item.GUID.IsPermalink != "false" && isWebURL(item.GUID.Value) {
		raw.Link = item.GUID.Value
	}
	if item.ITunesExt != nil {
		raw.Summary = item.ITunesExt.Summary
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
		raw.Updated = item.DublinCoreExt.Date[0]
	}
	return raw
}

func rawFromAtom(entry *atom.Entry) RawEntry {
	if entry == nil {
		return RawEntry{}
	}
	raw := RawEntry{
		Title:     entry.Title,
		Link:      atomLink(entry.Links),
		Summary:   entry.Summary,
		Published: entry.Published,
		Updated:   entry.Updated,
	}
	if entry.Content != nil {
		raw.Description = entry.Content.Value
	}
	return raw
}

func atomLink(links []*atom.Link) string {
	var first string
	for _, l := range links {
		if l == nil || l.Href == "" {
			continue
		}
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
		if first == "" {
			first = l.Href
		}
	}
	return first
}

func rawFromJSON(item *jsonfeed.Item) RawEntry {
	if item == nil {
		return RawEntry{}
	}
	return RawEntry{
		Title:       item.Title,
		Link:        firstNonBlank(item.URL, item.ExternalURL),
		Summary:     item.Summary,
		Description: firstNonBlank(item.ContentHTML, item.ContentText),
		Published:   item.DatePublished,
		Updated:     item.DateModified,
	}
}

func isWebURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
