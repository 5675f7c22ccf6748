//go:build unix

package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmake-node/internal/adapters/shell"
	"go.trai.ch/cmake-node/internal/core/domain"
)

func newExecutor() (*shell.Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return shell.NewExecutor().WithStreams(strings.NewReader(""), &stdout, &stderr), &stdout, &stderr
}

func TestExecutor_Run_InheritsStreams(t *testing.T) {
	executor, stdout, stderr := newExecutor()

	err := executor.Run(context.Background(), domain.Invocation{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Run_WorkingDirAndEnv(t *testing.T) {
	executor, stdout, _ := newExecutor()
	dir := t.TempDir()

	err := executor.Run(context.Background(), domain.Invocation{
		Name: "sh",
		Args: []string{"-c", "pwd; echo $CMAKE_NODE_TEST"},
		Dir:  dir,
		Env:  []string{"CMAKE_NODE_TEST=value-123"},
	})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), resolved)
	assert.Contains(t, stdout.String(), "value-123")
}

func TestExecutor_Run_ExitCode(t *testing.T) {
	executor, _, _ := newExecutor()

	err := executor.Run(context.Background(), domain.Invocation{Name: "sh", Args: []string{"-c", "exit 7"}})
	require.Error(t, err)

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 7, exitErr.Code)
	assert.False(t, exitErr.Signaled())
	assert.Equal(t, "sh", exitErr.Name)
}

func TestExecutor_Run_Signal(t *testing.T) {
	executor, _, _ := newExecutor()

	err := executor.Run(context.Background(), domain.Invocation{Name: "sh", Args: []string{"-c", "kill -TERM $$"}})
	require.Error(t, err)

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.True(t, exitErr.Signaled())
	assert.Equal(t, syscall.SIGTERM, exitErr.Signal)
}

func TestExecutor_Run_OutlivesInterruptDuringChild(t *testing.T) {
	executor, stdout, _ := newExecutor()

	err := executor.Run(context.Background(), domain.Invocation{
		Name: "sh",
		Args: []string{"-c", "kill -INT $PPID; kill -TERM $PPID; sleep 0.2; echo done"},
	})
	require.NoError(t, err)
	assert.Equal(t, "done\n", stdout.String())
}

func TestExecutor_Run_MissingBinary(t *testing.T) {
	executor, _, _ := newExecutor()

	err := executor.Run(context.Background(), domain.Invocation{Name: "definitely-not-a-real-binary-xyz"})
	require.Error(t, err)

	var exitErr *domain.ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "failed to start definitely-not-a-real-binary-xyz")
}

func TestExecutor_Output(t *testing.T) {
	executor, stdout, _ := newExecutor()

	out, err := executor.Output(context.Background(), domain.Invocation{
		Name: "sh",
		Args: []string{"-c", "echo captured; echo hidden >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "captured\n", out)
	assert.Empty(t, stdout.String())
}

func TestExecutor_Output_Failure(t *testing.T) {
	executor, _, _ := newExecutor()

	out, err := executor.Output(context.Background(), domain.Invocation{
		Name: "sh",
		Args: []string{"-c", "echo partial; exit 3"},
	})
	require.Error(t, err)
	assert.Equal(t, "partial\n", out)
}
