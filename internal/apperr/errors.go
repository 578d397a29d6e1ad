// Package apperr defines the error kinds surfaced by fsk commands and their exit codes.
package apperr

import "errors"

var (
	ErrInvalidTitle = errors.New("invalid title")
	ErrNotFound     = errors.New("not found")
	ErrIO           = errors.New("i/o error")
	ErrEditorSpawn  = errors.New("editor could not be launched")
	ErrEditorExit   = errors.New("editor exited with non-zero status")
)

// Exit codes, stable per error kind.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidTitle = 2
	ExitNotFound     = 3
	ExitIO           = 4
	ExitEditorSpawn  = 5
	ExitEditorExit   = 6
)

// ExitCode maps err to the process exit code for its kind.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidTitle):
		return ExitInvalidTitle
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrIO):
		return ExitIO
	case errors.Is(err, ErrEditorSpawn):
		return ExitEditorSpawn
	case errors.Is(err, ErrEditorExit):
		return ExitEditorExit
	default:
		return ExitFailure
	}
}
