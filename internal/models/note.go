// Package models defines the domain types for fsk.
package models

// Note is a Markdown file in the database, addressed by its title.
type Note struct {
	Title string `json:"title"` // slash-delimited, without extension
	Path  string `json:"path"`  // absolute file path
}

// MatchKind classifies how a note satisfied a search query.
// Title matches rank before content matches.
type MatchKind int

const (
	TitleMatch MatchKind = iota
	ContentMatch
)

func (k MatchKind) String() string {
	switch k {
	case TitleMatch:
		return "title"
	case ContentMatch:
		return "content"
	default:
		return "unknown"
	}
}

// Match is a single search result.
type Match struct {
	Title   string    `json:"title"`
	Kind    MatchKind `json:"kind"`
	Preview string    `json:"preview,omitempty"` // first matching line, content matches only
}
