// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/droidplan/internal/adapters/catalog"
	_ "go.trai.ch/droidplan/internal/adapters/config"
	_ "go.trai.ch/droidplan/internal/adapters/lockfile"
	_ "go.trai.ch/droidplan/internal/adapters/logger"
	_ "go.trai.ch/droidplan/internal/adapters/registry"
	_ "go.trai.ch/droidplan/internal/adapters/render"
	_ "go.trai.ch/droidplan/internal/adapters/telemetry"
	_ "go.trai.ch/droidplan/internal/adapters/versions"
	// Register app and engine nodes.
	_ "go.trai.ch/droidplan/internal/app"
	_ "go.trai.ch/droidplan/internal/engine/resolver"
)
