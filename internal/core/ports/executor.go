// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cmake-node/internal/core/domain"
)

// Executor defines the interface for running external tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the invocation with the terminal's stdin, stdout and stderr and
	// waits for it to finish. A non-zero exit or a terminating signal is
	// reported as a *domain.ExitError.
	Run(ctx context.Context, inv domain.Invocation) error

	// Output runs the invocation and returns what it wrote to stdout.
	// Stderr is discarded.
	Output(ctx context.Context, inv domain.Invocation) (string, error)
}
