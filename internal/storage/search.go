package storage

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/starford/fsk/internal/models"
	"github.com/starford/fsk/internal/parser"
)

// Search yields notes matching query, case-insensitively, in discovery order.
// A note whose title contains the query is yielded as a title match without
// its file being opened. Only the remaining notes have their content read.
// An empty query yields nothing.
func (f *FS) Search(query string) iter.Seq[models.Match] {
	return func(yield func(models.Match) bool) {
		if query == "" {
			return
		}
		needle := strings.ToLower(query)

		for note := range f.Notes() {
			if strings.Contains(strings.ToLower(note.Title), needle) {
				if !yield(models.Match{Title: note.Title, Kind: models.TitleMatch}) {
					return
				}
				continue
			}

			data, err := f.readFile(note.Path)
			if err != nil {
				f.logger.Debug("search: skip unreadable note", slog.String("title", note.Title), slog.String("error", err.Error()))
				continue
			}
			if !utf8.Valid(data) {
				f.logger.Debug("search: skip non-UTF-8 note", slog.String("title", note.Title))
				continue
			}
			if !strings.Contains(strings.ToLower(string(data)), needle) {
				continue
			}
			m := models.Match{
				Title:   note.Title,
				Kind:    models.ContentMatch,
				Preview: preview(data, needle),
			}
			if !yield(m) {
				return
			}
		}
	}
}

// SearchSorted collects Search results and orders them: title matches before
// content matches, each group by title.
func (f *FS) SearchSorted(query string) []models.Match {
	results := slices.Collect(f.Search(query))
	slices.SortFunc(results, func(a, b models.Match) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(a.Title, b.Title)
	})
	return results
}

// preview returns the first line containing needle, body lines first.
func preview(data []byte, needle string) string {
	for _, line := range parser.Parse(data).Lines() {
		if strings.Contains(strings.ToLower(line), needle) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
