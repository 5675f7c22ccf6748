package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/adapters/detector"  //nolint:depguard // Wired in engine layer
	"go.trai.ch/cmake-node/internal/adapters/toolchain" //nolint:depguard // Wired in engine layer
	"go.trai.ch/cmake-node/internal/core/domain"
	"go.trai.ch/cmake-node/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID, toolchain.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			host, err := graft.Dep[domain.Host](ctx)
			if err != nil {
				return nil, err
			}
			tc, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			return New(host, tc), nil
		},
	})
}
