package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidplan/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/droidplan/internal/core/ports"
	"go.trai.ch/droidplan/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			lockfile.NodeID,
			render.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[ports.PlatformRegistry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
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

	return New(loader, reg, store, renderer, tracer, log, res), nil
}
