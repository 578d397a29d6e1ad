// Package internal provides the application initialization and the fsk commands.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/starford/fsk/internal/editor"
	"github.com/starford/fsk/internal/storage"
)

// App runs fsk commands against one note database.
type App struct {
	config    *Config
	stdout    io.Writer
	stderr    io.Writer
	runner    editor.Runner
	editorEnv string

	logger   *slog.Logger
	store    *storage.FS
	launcher *editor.Launcher
}

// New builds an App from the given options. WithConfig is required.
func New(opts ...Option) (*App, error) {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := app.config

	// Diagnostics go to stderr, stdout carries command output.
	logger := slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	app.logger = logger

	store, err := storage.NewFS(cfg.DB.Path, storage.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	app.store = store

	if app.runner == nil {
		app.runner = editor.ExecRunner{}
	}
	command := editor.ResolveCommand(cfg.Editor.Command, app.editorEnv)
	app.launcher = editor.New(store, command, app.runner, logger)

	logger.Debug("Configuration loaded",
		slog.String("db_path", store.Root()),
		slog.String("editor", command),
		slog.String("log_level", cfg.App.LogLevel.String()))

	return app, nil
}

// Write opens the note in the editor, creating its directories first.
func (a *App) Write(ctx context.Context, title string) error {
	res, err := a.launcher.Edit(ctx, title)
	if err != nil {
		var exitErr *editor.ExitError
		if errors.As(err, &exitErr) && res != nil && res.Saved {
			a.logger.Warn("editor failed, the note may have been saved anyway",
				slog.String("title", title), slog.Int("status", exitErr.Code))
		}
		return err
	}

	if res.Saved {
		a.logger.Info("Note saved", slog.String("title", title), slog.String("path", res.Path))
	} else {
		a.logger.Info("Note not created, editor exited without saving", slog.String("title", title))
	}
	return nil
}

// Get prints the raw content of a note.
func (a *App) Get(_ context.Context, title string) error {
	content, err := a.store.Read(title)
	if err != nil {
		return err
	}
	return renderNote(a.stdout, content)
}

// Search prints notes matching query, title matches first.
func (a *App) Search(_ context.Context, query string) error {
	return renderSearch(a.stdout, query, a.store.SearchSorted(query))
}

// List prints every note as a sorted tree.
func (a *App) List(_ context.Context) error {
	tree, err := a.store.List()
	if err != nil {
		return err
	}
	return renderTree(a.stdout, tree)
}
