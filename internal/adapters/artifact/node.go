package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/adapters/detector"
	"go.trai.ch/cmake-node/internal/adapters/fs"
	"go.trai.ch/cmake-node/internal/adapters/logger"
	"go.trai.ch/cmake-node/internal/adapters/modules"
	"go.trai.ch/cmake-node/internal/adapters/shell"
	"go.trai.ch/cmake-node/internal/adapters/toolchain"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
)

// NodeID is the unique identifier for the import library Graft node.
const NodeID graft.ID = "adapter.artifact"

func init() {
	graft.Register(graft.Node[ports.ImportLibraryResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			toolchain.NodeID,
			modules.NodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: func(ctx context.Context) (ports.ImportLibraryResolver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			mods, err := graft.Dep[ports.ModuleProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			host, err := graft.Dep[domain.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(executor, filesystem, tc, mods, log, host.CacheRoot), nil
		},
	})
}
