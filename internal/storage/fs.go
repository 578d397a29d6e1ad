// Package storage maps note titles onto Markdown files under a database root
// and provides traversal, lazy search and listing over them.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/starford/fsk/internal/apperr"
)

// NoteExt is the file extension of every note.
const NoteExt = ".md"

// FS is the file-system backed note database.
type FS struct {
	root     string // absolute path to the database root
	logger   *slog.Logger
	readFile func(name string) ([]byte, error)
	readDir  func(name string) ([]os.DirEntry, error)
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger used to report skipped entries.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FS) {
		f.logger = logger
	}
}

// NewFS creates a new FS rooted at the given directory.
// The directory does not have to exist yet.
func NewFS(root string, opts ...Option) (*FS, error) {
	if root == "" {
		return nil, errors.New("storage: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	f := &FS{
		root:     abs,
		logger:   slog.Default(),
		readFile: os.ReadFile,
		readDir:  os.ReadDir,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Root returns the absolute database root.
func (f *FS) Root() string {
	return f.root
}

// Resolve maps a title to its file path. Titles are split on "/" and every
// segment must be non-empty, must not be "." or "..", and must not start with
// a dot (hidden entries are never visited by traversal).
func (f *FS) Resolve(title string) (string, error) {
	segs, err := splitTitle(title)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{f.root}, segs...)...) + NoteExt, nil
}

func splitTitle(title string) ([]string, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty", apperr.ErrInvalidTitle)
	}
	if strings.ContainsRune(title, 0) {
		return nil, fmt.Errorf("%w: %q contains a NUL byte", apperr.ErrInvalidTitle, title)
	}
	if filepath.Separator != '/' && strings.ContainsRune(title, filepath.Separator) {
		return nil, fmt.Errorf("%w: %q contains %q", apperr.ErrInvalidTitle, title, filepath.Separator)
	}
	segs := strings.Split(title, "/")
	for _, seg := range segs {
		switch {
		case seg == "":
			return nil, fmt.Errorf("%w: %q has an empty segment", apperr.ErrInvalidTitle, title)
		case seg == "." || seg == "..":
			return nil, fmt.Errorf("%w: %q contains %q", apperr.ErrInvalidTitle, title, seg)
		case strings.HasPrefix(seg, "."):
			return nil, fmt.Errorf("%w: %q has a hidden segment %q", apperr.ErrInvalidTitle, title, seg)
		}
	}
	return segs, nil
}

// Read returns the full content of a note.
func (f *FS) Read(title string) (string, error) {
	path, err := f.Resolve(title)
	if err != nil {
		return "", err
	}
	data, err := f.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", fmt.Errorf("storage: read %s: %w", title, apperr.ErrNotFound)
		}
		return "", fmt.Errorf("storage: read %s: %w: %w", title, apperr.ErrIO, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("storage: read %s: %w: content is not valid UTF-8", title, apperr.ErrIO)
	}
	return string(data), nil
}

// EnsureParent creates every missing ancestor directory of the note's file,
// including the database root itself.
func (f *FS) EnsureParent(title string) error {
	path, err := f.Resolve(title)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir for %s: %w: %w", title, apperr.ErrIO, err)
	}
	return nil
}
