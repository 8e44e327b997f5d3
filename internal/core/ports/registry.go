package ports

import (
	"context"

	"go.trai.ch/droidplan/internal/core/domain"
)

// PlatformRegistry looks up the manifests of platform imports.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PlatformRegistry interface {
	// Manifest returns the manifest of a platform stored under dir.
	// It returns false when the registry does not know the platform.
	Manifest(ctx context.Context, dir string, platform domain.Coordinate) (domain.PlatformManifest, bool, error)
}
