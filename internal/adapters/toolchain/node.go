package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/adapters/detector"
	"go.trai.ch/cmake-node/internal/adapters/fs"
	"go.trai.ch/cmake-node/internal/adapters/shell"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.NodeID, detector.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			host, err := graft.Dep[domain.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(executor, filesystem, host), nil
		},
	})
}
