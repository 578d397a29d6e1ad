// Package testutil provides shared test helpers for setting up note databases.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/fsk/internal/storage"
)

// TestDB creates a temporary database root with a storage.FS. The root
// directory is not created, mirroring a first run.
func TestDB(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "db")
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteNote writes content directly to the file of title.
func WriteNote(t *testing.T, store *storage.FS, title, content string) string {
	t.Helper()
	if err := store.EnsureParent(title); err != nil {
		t.Fatal(err)
	}
	path, err := store.Resolve(title)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Call is one recorded FakeRunner invocation.
type Call struct {
	Name string
	Args []string
}

// FakeRunner records invocations instead of spawning processes.
// OnRun, when set, runs before the call returns (e.g. to save a file the way
// an editor would).
type FakeRunner struct {
	Calls    []Call
	ExitCode int
	Err      error
	OnRun    func(name string, args []string)
}

// Run implements editor.Runner.
func (r *FakeRunner) Run(_ context.Context, name string, args []string) (int, error) {
	r.Calls = append(r.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if r.Err != nil {
		return -1, r.Err
	}
	if r.OnRun != nil {
		r.OnRun(name, args)
	}
	return r.ExitCode, nil
}
