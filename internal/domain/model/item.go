package model

import "time"

// FeedItem is an entry read from a syndication feed, ready to be announced.
type FeedItem struct {
	GUID       string
	Title      string
	Link       string
	Summary    string
	Author     string
	ImageURL   string
	Categories []string
	Published  time.Time
	// Source is the human-readable feed title and SourceLink its home page.
	Source     string
	SourceLink string
}

// Key identifies the item for de-duplication: the GUID when present,
// otherwise the link, otherwise the title.
func (i FeedItem) Key() string {
	switch {
	case i.GUID != "":
		return i.GUID
	case i.Link != "":
		return i.Link
	}
	return i.Title
}
