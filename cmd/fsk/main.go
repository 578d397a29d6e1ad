package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	fcolor "github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/fsk/internal"
	"github.com/starford/fsk/internal/apperr"
	pkgconfig "github.com/starford/fsk/pkg/config"
)

const version = "0.1.0"

// homeDir returns the user's home directory, or "" with a warning when it
// cannot be determined and notes fall back to ./db.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("home directory unknown, using ./db as database root",
			slog.String("error", err.Error()))
		return ""
	}
	return home
}

// newApp builds the application from the global flags and the environment.
func newApp(cmd *cli.Command, opts []internal.Option) (*internal.App, error) {
	home := ""
	if cmd.String("db") == "" {
		home = homeDir()
	}

	cfg := internal.NewDefaultConfig(home)
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if db := cmd.String("db"); db != "" {
		cfg.DB.Path = db
	}
	if cmd.Bool("verbose") {
		cfg.App.LogLevel = slog.LevelDebug
	}

	all := append([]internal.Option{
		internal.WithConfig(cfg),
		internal.WithEditorEnv(os.Getenv("EDITOR")),
	}, opts...)
	return internal.New(all...)
}

// withArgs wraps a command action that takes exactly n positional arguments.
func withArgs(name string, n int, opts []internal.Option, fn func(ctx context.Context, app *internal.App, args []string) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() != n {
			return fmt.Errorf("%s: expected %d argument(s), got %d", name, n, cmd.NArg())
		}
		app, err := newApp(cmd, opts)
		if err != nil {
			return err
		}
		return fn(ctx, app, cmd.Args().Slice())
	}
}

// newCommand builds the fsk command tree. opts are applied after the
// defaults derived from flags and the environment.
func newCommand(opts ...internal.Option) *cli.Command {
	// The built-in version flag claims -v, which belongs to --verbose here.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	return &cli.Command{
		Name:    "fsk",
		Usage:   "Manage your markdown notes with speed and simplicity",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (optional)",
				Value:   defaultConfigPath(),
				Sources: cli.EnvVars("FSK_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "Database root directory (default $HOME/.fsk/db)",
				Sources: cli.EnvVars("FSK_DB"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging for debugging purposes",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "write",
				Aliases:   []string{"new", "edit"},
				Usage:     "Create or edit a note. Supports nested paths (e.g., 'linux/kernel')",
				ArgsUsage: "<title>",
				Action: withArgs("write", 1, opts, func(ctx context.Context, app *internal.App, args []string) error {
					return app.Write(ctx, args[0])
				}),
			},
			{
				Name:      "get",
				Aliases:   []string{"cat"},
				Usage:     "Display the content of a specific note",
				ArgsUsage: "<title>",
				Action: withArgs("get", 1, opts, func(ctx context.Context, app *internal.App, args []string) error {
					return app.Get(ctx, args[0])
				}),
			},
			{
				Name:      "search",
				Aliases:   []string{"find"},
				Usage:     "Search for a keyword in titles and note contents",
				ArgsUsage: "<keyword>",
				Action: withArgs("search", 1, opts, func(ctx context.Context, app *internal.App, args []string) error {
					return app.Search(ctx, args[0])
				}),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all notes stored in the knowledge base",
				Action: withArgs("list", 0, opts, func(ctx context.Context, app *internal.App, _ []string) error {
					return app.List(ctx)
				}),
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fcolor.New(fcolor.FgRed).Fprintf(os.Stderr, "✗ %s\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}

func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".fsk", "config.yaml")
	}
	return ""
}
