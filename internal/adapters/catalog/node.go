package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidplan/internal/core/ports"
)

// NodeID is the unique identifier for the tooling catalog Graft node.
const NodeID graft.ID = "adapter.tooling_catalog"

func init() {
	graft.Register(graft.Node[ports.ToolingCatalogProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolingCatalogProvider, error) {
			return NewProvider(Defaults), nil
		},
	})
}
