// Package presenter builds view models for the TUI.
package presenter

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/eaterss/internal/presentation/tui/textutil"
	"github.com/tesso57/eaterss/internal/presentation/tui/viewsync"
)

// Item is a view model for one entry in the list.
type Item struct {
	Index     int
	TitleText string
	Link      string
	Published string
}

// NewItem builds a list item from an entry handle.
func NewItem(h viewsync.EntryHandle) *Item {
	return &Item{
		Index:     h.Index,
		TitleText: textutil.Flatten(h.Entry.Title),
		Link:      h.Entry.Link,
		Published: textutil.Flatten(h.Entry.Published),
	}
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// Date returns the publication date, empty when unknown.
func (i *Item) Date() string { return i.Published }

// Description implements list.DefaultItem.
func (i *Item) Description() string { return i.Published }

// EntryIndex returns the FeedModel index of the item under the cursor.
func EntryIndex(model list.Model) (int, bool) {
	i, ok := model.SelectedItem().(*Item)
	if !ok || i == nil {
		return 0, false
	}
	return i.Index, true
}
