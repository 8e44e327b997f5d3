package ports

import (
	"context"

	"go.trai.ch/droidplan/internal/core/domain"
)

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers droidplan.yaml from cwd upwards and returns the loaded project.
	// Overrides take precedence over every other tooling catalog source.
	Load(ctx context.Context, cwd string, overrides map[string]string) (*domain.Project, error)
}
