// Package app implements the lifecycle commands of cmake-node.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/cmake-node/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	executor  ports.Executor
	fs        ports.FileSystem
	artifacts ports.ImportLibraryResolver
	modules   ports.ModuleProvider
	loader    ports.ConfigLoader
	logger    ports.Logger
	resolver  *resolver.Resolver
	host      domain.Host

	stdout      io.Writer
	interactive func() bool
}

// New creates a new App instance.
func New(
	executor ports.Executor,
	fs ports.FileSystem,
	artifacts ports.ImportLibraryResolver,
	modules ports.ModuleProvider,
	loader ports.ConfigLoader,
	logger ports.Logger,
	res *resolver.Resolver,
	host domain.Host,
) *App {
	return &App{
		executor:    executor,
		fs:          fs,
		artifacts:   artifacts,
		modules:     modules,
		loader:      loader,
		logger:      logger,
		resolver:    res,
		host:        host,
		stdout:      os.Stdout,
		interactive: func() bool { return true },
	}
}

// WithStdout sets where listings and paths are printed.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithInteractive sets the terminal check used by the ui command.
func (a *App) WithInteractive(fn func() bool) *App {
	a.interactive = fn
	return a
}

// Run resolves the configuration for opts and executes the selected command.
func (a *App) Run(ctx context.Context, opts *domain.Options) error {
	cmd, ok := lookup(opts.Command)
	if !ok {
		return zerr.With(
			zerr.Wrap(domain.ErrUnknownCommand, "Unknown command: "+opts.Command),
			"command", opts.Command,
		)
	}

	root := opts.Root
	if root == "" {
		root = a.host.Cwd
	}
	defaults, err := a.loader.Load(root)
	if err != nil {
		return err
	}

	cfg, err := a.resolver.Resolve(ctx, opts, defaults)
	if err != nil {
		return err
	}

	return cmd(a, ctx, cfg)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.stdout, format, args...)
}
