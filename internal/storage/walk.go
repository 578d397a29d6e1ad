package storage

import (
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/fsk/internal/models"
)

type frame struct {
	dir    string // absolute directory path
	prefix string // title prefix of entries in dir, "" at the root
}

// Notes yields every note under the root. The walk keeps an explicit stack of
// pending directories and reads one directory at a time, so notes are
// produced as they are discovered. Hidden entries and files without the note
// extension are ignored. Symlinks are followed to regular files only.
// Entries that cannot be read are logged and skipped.
func (f *FS) Notes() iter.Seq[models.Note] {
	return func(yield func(models.Note) bool) {
		stack := []frame{{dir: f.root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := f.readDir(top.dir)
			if err != nil {
				if top.prefix != "" || !os.IsNotExist(err) {
					f.logger.Debug("walk: skip dir", slog.String("path", top.dir), slog.String("error", err.Error()))
				}
				continue
			}

			var subdirs []frame
			for _, e := range entries {
				name := e.Name()
				if strings.HasPrefix(name, ".") {
					continue
				}
				full := filepath.Join(top.dir, name)

				typ := e.Type()
				if typ&fs.ModeSymlink != 0 {
					info, err := os.Stat(full)
					if err != nil {
						f.logger.Debug("walk: skip link", slog.String("path", full), slog.String("error", err.Error()))
						continue
					}
					if !info.Mode().IsRegular() {
						continue
					}
					typ = 0
				}

				switch {
				case typ.IsDir():
					subdirs = append(subdirs, frame{dir: full, prefix: joinTitle(top.prefix, name)})
				case typ.IsRegular() && strings.HasSuffix(name, NoteExt):
					note := models.Note{
						Title: joinTitle(top.prefix, strings.TrimSuffix(name, NoteExt)),
						Path:  full,
					}
					if !yield(note) {
						return
					}
				}
			}

			// Push in reverse so directories are visited in name order.
			for i := len(subdirs) - 1; i >= 0; i-- {
				stack = append(stack, subdirs[i])
			}
		}
	}
}

func joinTitle(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
