// Package shell runs external tools as child processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor attached to the process's standard streams.
func NewExecutor() *Executor {
	return &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams replaces the streams inherited by child processes.
// This is primarily used for testing.
func (e *Executor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Run executes inv with inherited standard streams and waits for it to exit.
// Interrupts are left to the child while it runs; the caller sees them
// through the returned *domain.ExitError.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	cmd := command(ctx, inv)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	release := holdInterrupts()
	defer release()

	return wait(inv.Name, cmd.Run())
}

// holdInterrupts keeps SIGINT and SIGTERM from terminating this process until
// release is called. Handled signals are reset to their defaults in children.
func holdInterrupts() (release func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	return func() { signal.Stop(sigs) }
}

// Output executes inv and returns its standard output.
func (e *Executor) Output(ctx context.Context, inv domain.Invocation) (string, error) {
	var stdout bytes.Buffer

	cmd := command(ctx, inv)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := wait(inv.Name, cmd.Run()); err != nil {
		return stdout.String(), err
	}
	return stdout.String(), nil
}

func command(ctx context.Context, inv domain.Invocation) *exec.Cmd {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...) //nolint:gosec // tool paths come from discovery or the user
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	return cmd
}

// wait maps the result of exec.Cmd.Run to the domain error model.
func wait(name string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return zerr.With(zerr.Wrap(err, "failed to start "+name), "command", name)
	}

	result := &domain.ExitError{Name: name, Code: exitErr.ExitCode()}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && signaled(status) {
		result.Signal = signalOf(status)
		result.Code = -1
	}
	return result
}
