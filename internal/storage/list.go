package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/starford/fsk/internal/apperr"
	"github.com/starford/fsk/internal/models"
)

// List builds the sorted listing tree of every note. A missing root yields an
// empty tree. Directories holding no notes do not appear.
func (f *FS) List() (*models.Tree, error) {
	tree := models.NewTree()

	info, err := os.Stat(f.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tree, nil
		}
		return nil, fmt.Errorf("storage: stat root: %w: %w", apperr.ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s: %w", f.root, apperr.ErrIO)
	}

	for note := range f.Notes() {
		tree.Insert(note.Title)
	}
	tree.Sort()
	return tree, nil
}
