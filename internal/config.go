package internal

import (
	"log/slog"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	DB     DBConfig          `yaml:"db"`
	Editor EditorConfig      `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.DB.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
	)
}

// DBConfig holds the path to the note database root.
type DBConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the database configuration.
func (c *DBConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// EditorConfig holds the editor command. Empty means $EDITOR, then a
// built-in fallback.
type EditorConfig struct {
	Command string `yaml:"command"`
}

// DefaultDBPath returns $HOME/.fsk/db, or ./db when home is unknown.
func DefaultDBPath(home string) string {
	if home == "" {
		return "db"
	}
	return filepath.Join(home, ".fsk", "db")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig(home string) *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		DB: DBConfig{
			Path: DefaultDBPath(home),
		},
	}
}
