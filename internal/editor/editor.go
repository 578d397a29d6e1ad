// Package editor opens notes in an external text editor.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/starford/fsk/internal/apperr"
	"github.com/starford/fsk/internal/storage"
)

// Fallbacks are tried in order when neither the config nor $EDITOR names an
// editor. The first one is used even when none is installed, so the spawn
// error names a real editor.
var Fallbacks = []string{"nano", "vi"}

var lookPath = exec.LookPath

// ResolveCommand picks the editor command.
// Priority: configured -> $EDITOR (env) -> first installed fallback.
func ResolveCommand(configured, env string) string {
	if c := strings.TrimSpace(configured); c != "" {
		return c
	}
	if c := strings.TrimSpace(env); c != "" {
		return c
	}
	for _, name := range Fallbacks {
		if _, err := lookPath(name); err == nil {
			return name
		}
	}
	return Fallbacks[0]
}

// ExitError reports an editor that ran but exited with a non-zero status.
// The note may have been saved regardless.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor: %s exited with status %d", e.Command, e.Code)
}

// Unwrap makes errors.Is(err, apperr.ErrEditorExit) hold.
func (e *ExitError) Unwrap() error {
	return apperr.ErrEditorExit
}

// Result describes a finished edit.
type Result struct {
	Path  string
	Saved bool // the note file exists after the editor exited
}

// Launcher opens notes of a store in an editor.
type Launcher struct {
	store   *storage.FS
	command string
	runner  Runner
	logger  *slog.Logger
}

// New creates a Launcher. command may carry arguments ("code --wait"); the
// note path is appended as the final argument.
func New(store *storage.FS, command string, runner Runner, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{store: store, command: command, runner: runner, logger: logger}
}

// Edit resolves title, creates its parent directories, and blocks while the
// editor runs on the note file.
func (l *Launcher) Edit(ctx context.Context, title string) (*Result, error) {
	path, err := l.store.Resolve(title)
	if err != nil {
		return nil, err
	}
	if err := l.store.EnsureParent(title); err != nil {
		return nil, err
	}

	fields := strings.Fields(l.command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor: no editor command configured: %w", apperr.ErrEditorSpawn)
	}
	name, args := fields[0], append(fields[1:], path)

	l.logger.Debug("editor: launching", slog.String("command", name), slog.String("path", path))

	code, err := l.runner.Run(ctx, name, args)
	if err != nil {
		return nil, fmt.Errorf("editor: launch %q: %w: %w", name, apperr.ErrEditorSpawn, err)
	}

	_, statErr := os.Stat(path)
	res := &Result{Path: path, Saved: statErr == nil}

	if code != 0 {
		return res, &ExitError{Command: name, Code: code}
	}
	return res, nil
}
