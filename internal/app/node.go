package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/adapters/artifact" //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/modules"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
	"go.trai.ch/cmake-node/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			artifact.NodeID,
			modules.NodeID,
			config.NodeID,
			logger.NodeID,
			resolver.NodeID,
			detector.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	filesystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	artifacts, err := graft.Dep[ports.ImportLibraryResolver](ctx)
	if err != nil {
		return nil, err
	}
	mods, err := graft.Dep[ports.ModuleProvider](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	host, err := graft.Dep[domain.Host](ctx)
	if err != nil {
		return nil, err
	}

	return New(executor, filesystem, artifacts, mods, loader, log, res, host).
		WithInteractive(detector.IsInteractive), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
