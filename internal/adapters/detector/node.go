package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmake-node/internal/core/domain"
)

// NodeID is the unique identifier for the host detection Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[domain.Host]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Host, error) {
			return DetectHost(SystemProbe())
		},
	})
}
