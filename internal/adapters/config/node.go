package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidplan/internal/adapters/catalog"
	"go.trai.ch/droidplan/internal/adapters/logger"
	"go.trai.ch/droidplan/internal/adapters/versions"
	"go.trai.ch/droidplan/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, catalog.NodeID, versions.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tooling, err := graft.Dep[ports.ToolingCatalogProvider](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.VersionCatalogReader](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(log, tooling, reader), nil
		},
	})
}
