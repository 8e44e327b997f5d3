package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidplan/internal/core/ports"
)

// NodeID is the unique identifier for the version catalog Graft node.
const NodeID graft.ID = "adapter.version_catalog"

func init() {
	graft.Register(graft.Node[ports.VersionCatalogReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionCatalogReader, error) {
			return NewReader(), nil
		},
	})
}
