package domain

import (
	"fmt"
	"syscall"

	"go.trai.ch/zerr"
)

var (
	// ErrParse is returned when the command line cannot be parsed.
	ErrParse = zerr.New("invalid command line")

	// ErrUnknownOption is returned when an option is not recognized.
	ErrUnknownOption = zerr.Wrap(ErrParse, "unknown option")

	// ErrMissingValue is returned when an option that takes a value has none.
	ErrMissingValue = zerr.Wrap(ErrParse, "missing option value")

	// ErrMultipleCommands is returned when more than one command is given.
	ErrMultipleCommands = zerr.Wrap(ErrParse, "multiple commands")

	// ErrConfig is returned when the resolved configuration is inconsistent.
	ErrConfig = zerr.New("invalid configuration")

	// ErrInvalidArch is returned when an architecture is not valid for the target platform.
	ErrInvalidArch = zerr.Wrap(ErrConfig, "invalid architecture")

	// ErrInvalidBuildType is returned when a build type is not one of the known types.
	ErrInvalidBuildType = zerr.Wrap(ErrConfig, "invalid build type")

	// ErrNotSupported is returned for targets that are recognized but not implemented.
	ErrNotSupported = zerr.Wrap(ErrConfig, "not yet supported")

	// ErrFileNotFound is returned when a path supplied by the user does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrToolNotFound is returned when a required external tool cannot be located.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrInvalidRoot is returned when the project root has no CMakeLists.txt.
	ErrInvalidRoot = zerr.New("invalid cmake root")

	// ErrNotConfigured is returned when an operation requires a configured build tree.
	ErrNotConfigured = zerr.New("build tree not configured")

	// ErrUnknownCommand is returned when the selected command does not exist.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrSynthesisFailed is returned when the import library cannot be generated.
	ErrSynthesisFailed = zerr.New("could not create import library")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrProjectFileParseFailed is returned when cmake-node.yaml cannot be parsed.
	ErrProjectFileParseFailed = zerr.New("failed to parse project file")

	// ErrProjectFileReadFailed is returned when cmake-node.yaml cannot be read.
	ErrProjectFileReadFailed = zerr.New("failed to read project file")
)

// ExitError reports an external process that did not exit cleanly.
// It is passed through unwrapped so the caller can mirror the child's status.
type ExitError struct {
	Name   string
	Code   int
	Signal syscall.Signal
}

func (e *ExitError) Error() string {
	if e.Signal != 0 {
		return fmt.Sprintf("%s terminated by signal %d", e.Name, int(e.Signal))
	}
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// Signaled reports whether the process was terminated by a signal.
func (e *ExitError) Signaled() bool {
	return e.Signal != 0
}
