package editor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner spawns a process and waits for it to exit.
// err is non-nil only when the process could not be started; a process that
// ran and failed reports its status through exitCode.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (exitCode int, err error)
}

// ExecRunner runs commands with os/exec, attached to the given streams.
// Nil streams default to the process's own standard streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
