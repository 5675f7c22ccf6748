package modules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/adapters/detector"
	"go.trai.ch/cmake-node/internal/adapters/fs"
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
)

// NodeID is the unique identifier for the bundled modules Graft node.
const NodeID graft.ID = "adapter.modules"

func init() {
	graft.Register(graft.Node[ports.ModuleProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, detector.NodeID},
		Run: func(ctx context.Context) (ports.ModuleProvider, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			host, err := graft.Dep[domain.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(filesystem, host.CacheRoot), nil
		},
	})
}
