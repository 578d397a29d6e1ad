package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Level int    `yaml:"level"`
}

func (s *sample) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnvAndKeepsDefaults(t *testing.T) {
	t.Setenv("FSK_TEST_HOME", "/home/test")
	path := writeFile(t, "name: notes\npath: ${FSK_TEST_HOME}/.fsk/db\n")

	cfg := sample{Level: 4}
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "/home/test/.fsk/db" {
		t.Errorf("path = %q", cfg.Path)
	}
	if cfg.Level != 4 {
		t.Errorf("level default lost: %d", cfg.Level)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeFile(t, "path: /x\n")
	err := Load(path, &sample{})
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("error = %v, want validation failure", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "name: [unclosed\n")
	if err := Load(path, &sample{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &sample{}); err == nil {
		t.Fatal("expected read error")
	}
}

func TestLoadOptional_MissingFileValidatesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg := sample{Name: "default"}
	if err := LoadOptional(missing, &cfg); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Name != "default" {
		t.Errorf("name = %q", cfg.Name)
	}

	if err := LoadOptional("", &sample{}); err == nil {
		t.Fatal("invalid defaults should still fail validation")
	}
}

func TestLoadOptional_ExistingFile(t *testing.T) {
	path := writeFile(t, "name: from-file\n")
	cfg := sample{Name: "default"}
	if err := LoadOptional(path, &cfg); err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Name != "from-file" {
		t.Errorf("name = %q, want from-file", cfg.Name)
	}
}
