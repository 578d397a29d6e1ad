package internal

import (
	"io"

	"github.com/starford/fsk/internal/editor"
)

// Option is a functional option for configuring the application.
type Option func(*App)

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithOutput sets the writers for command output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithRunner replaces the process runner used to spawn the editor.
func WithRunner(r editor.Runner) Option {
	return func(a *App) {
		a.runner = r
	}
}

// WithEditorEnv passes the value of $EDITOR.
func WithEditorEnv(value string) Option {
	return func(a *App) {
		a.editorEnv = value
	}
}
