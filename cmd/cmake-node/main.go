// Package main is the entry point for cmake-node.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/cmd/cmake-node/commands"
	"go.trai.ch/cmake-node/internal/app"
	"go.trai.ch/cmake-node/internal/core/domain"
	_ "go.trai.ch/cmake-node/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}, reraise))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	raise func(syscall.Signal),
	opts ...func(*app.App),
) int {
	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, app.Commands())
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	if err == nil {
		return 0
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Signaled() {
			if raise != nil {
				raise(exitErr.Signal)
			}
			return 128 + int(exitErr.Signal)
		}
		return exitErr.Code
	}

	components.Logger.Error(err)
	return 1
}
