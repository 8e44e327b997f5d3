package ports

import "go.trai.ch/droidplan/internal/core/domain"

// ToolingCatalogProvider supplies the values the Flutter tool injects into the build.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type ToolingCatalogProvider interface {
	// Catalog returns the built-in defaults, overlaid by local.properties in root,
	// overlaid by overrides.
	Catalog(root string, overrides map[string]string) (*domain.ToolingCatalog, error)
}

// VersionCatalogReader reads a Gradle version catalog.
type VersionCatalogReader interface {
	// Read parses the catalog at path. A missing file yields an empty catalog.
	Read(path string) (*domain.VersionCatalog, error)
}
