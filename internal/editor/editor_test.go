package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/fsk/internal/apperr"
	"github.com/starford/fsk/internal/testutil"
)

func TestEdit_SpawnsEditorWithPath(t *testing.T) {
	root, store := testutil.TestDB(t)
	runner := &testutil.FakeRunner{
		OnRun: func(_ string, args []string) {
			_ = os.WriteFile(args[len(args)-1], []byte("saved"), 0o644)
		},
	}
	l := New(store, "vim", runner, nil)

	res, err := l.Edit(context.Background(), "linux/kernel")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	want := filepath.Join(root, "linux", "kernel.md")
	if diff := cmp.Diff([]testutil.Call{{Name: "vim", Args: []string{want}}}, runner.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if res.Path != want || !res.Saved {
		t.Errorf("result = %+v, want saved %s", res, want)
	}
}

func TestEdit_CreatesParentBeforeSpawn(t *testing.T) {
	root, store := testutil.TestDB(t)
	var parentExisted bool
	runner := &testutil.FakeRunner{
		OnRun: func(_ string, args []string) {
			info, err := os.Stat(filepath.Dir(args[0]))
			parentExisted = err == nil && info.IsDir()
		},
	}
	l := New(store, "ed", runner, nil)

	res, err := l.Edit(context.Background(), "a/b/c")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !parentExisted {
		t.Errorf("parent of %s did not exist when the editor ran", filepath.Join(root, "a", "b"))
	}
	if res.Saved {
		t.Error("note was never written, Saved should be false")
	}
}

func TestEdit_CommandWithArguments(t *testing.T) {
	root, store := testutil.TestDB(t)
	runner := &testutil.FakeRunner{}
	l := New(store, "code  --wait -n", runner, nil)

	if _, err := l.Edit(context.Background(), "x"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	want := []testutil.Call{{Name: "code", Args: []string{"--wait", "-n", filepath.Join(root, "x.md")}}}
	if diff := cmp.Diff(want, runner.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestEdit_InvalidTitleDoesNotSpawn(t *testing.T) {
	root, store := testutil.TestDB(t)
	runner := &testutil.FakeRunner{}
	l := New(store, "vim", runner, nil)

	_, err := l.Edit(context.Background(), "../escape")
	if !errors.Is(err, apperr.ErrInvalidTitle) {
		t.Fatalf("error = %v, want ErrInvalidTitle", err)
	}
	if len(runner.Calls) != 0 {
		t.Errorf("runner called %d times", len(runner.Calls))
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("root should not be created, stat err = %v", err)
	}
}

func TestEdit_SpawnError(t *testing.T) {
	_, store := testutil.TestDB(t)
	runner := &testutil.FakeRunner{Err: exec.ErrNotFound}
	l := New(store, "no-such-editor", runner, nil)

	_, err := l.Edit(context.Background(), "note")
	if !errors.Is(err, apperr.ErrEditorSpawn) {
		t.Fatalf("error = %v, want ErrEditorSpawn", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("error = %v, should wrap exec.ErrNotFound", err)
	}
}

func TestEdit_EmptyCommand(t *testing.T) {
	_, store := testutil.TestDB(t)
	l := New(store, "   ", &testutil.FakeRunner{}, nil)
	if _, err := l.Edit(context.Background(), "note"); !errors.Is(err, apperr.ErrEditorSpawn) {
		t.Errorf("error = %v, want ErrEditorSpawn", err)
	}
}

func TestEdit_NonZeroExit(t *testing.T) {
	_, store := testutil.TestDB(t)
	runner := &testutil.FakeRunner{
		ExitCode: 3,
		OnRun: func(_ string, args []string) {
			_ = os.WriteFile(args[0], []byte("partial"), 0o644)
		},
	}
	l := New(store, "vim", runner, nil)

	res, err := l.Edit(context.Background(), "note")
	if !errors.Is(err, apperr.ErrEditorExit) {
		t.Fatalf("error = %v, want ErrEditorExit", err)
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 3 || exitErr.Command != "vim" {
		t.Errorf("error = %#v, want ExitError{vim 3}", err)
	}
	if res == nil || !res.Saved {
		t.Errorf("result = %+v, file was saved before the failure", res)
	}
}

func TestResolveCommand(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	installed := map[string]bool{"vi": true}
	lookPath = func(name string) (string, error) {
		if installed[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}

	cases := []struct {
		name       string
		configured string
		env        string
		want       string
	}{
		{"config wins", "hx", "vim", "hx"},
		{"env used when config empty", "", "vim", "vim"},
		{"whitespace ignored", "  ", " ", "vi"},
		{"first installed fallback", "", "", "vi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveCommand(tc.configured, tc.env); got != tc.want {
				t.Errorf("ResolveCommand(%q, %q) = %q, want %q", tc.configured, tc.env, got, tc.want)
			}
		})
	}

	installed = map[string]bool{}
	if got := ResolveCommand("", ""); got != Fallbacks[0] {
		t.Errorf("nothing installed: got %q, want %q", got, Fallbacks[0])
	}
}

// createMockEditor writes a shell script that records its arguments and exits
// with the given status.
func createMockEditor(t *testing.T, status string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	script := filepath.Join(dir, "mock-editor")
	invoked := filepath.Join(dir, "invoked.txt")
	body := "#!/bin/sh\necho \"$@\" > \"" + invoked + "\"\nexit " + status + "\n"
	if err := os.WriteFile(script, []byte(body), 0o700); err != nil {
		t.Fatalf("failed to create mock editor: %v", err)
	}
	return script, invoked
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	script, invoked := createMockEditor(t, "0")
	code, err := ExecRunner{}.Run(context.Background(), script, []string{"/tmp/note.md"})
	if err != nil || code != 0 {
		t.Fatalf("Run = (%d, %v), want (0, nil)", code, err)
	}
	got, err := os.ReadFile(invoked)
	if err != nil {
		t.Fatalf("mock editor was not called: %v", err)
	}
	if string(got) != "/tmp/note.md\n" {
		t.Errorf("args = %q", got)
	}

	failing, _ := createMockEditor(t, "7")
	code, err = ExecRunner{}.Run(context.Background(), failing, nil)
	if err != nil || code != 7 {
		t.Errorf("Run = (%d, %v), want (7, nil)", code, err)
	}

	if _, err := (ExecRunner{}).Run(context.Background(), filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("expected spawn error for missing executable")
	}
}
