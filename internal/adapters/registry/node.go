package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidplan/internal/core/ports"
)

// NodeID is the unique identifier for the platform registry Graft node.
const NodeID graft.ID = "adapter.platform_registry"

func init() {
	graft.Register(graft.Node[ports.PlatformRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformRegistry, error) {
			return New(DefaultCacheSize)
		},
	})
}
