// Package catalog provides the tooling catalog injected by the Flutter tool.
package catalog

import (
	"errors"
	"io/fs"
	"maps"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Defaults are the values the Flutter tool provides when local.properties does not.
var Defaults = map[string]string{
	domain.CatalogCompileSdk:  "35",
	domain.CatalogMinSdk:      "21",
	domain.CatalogTargetSdk:   "35",
	domain.CatalogVersionCode: "1",
	domain.CatalogVersionName: "1.0.0",
	domain.CatalogNdkVersion:  "26.3.11579264",
}

// Provider implements ports.ToolingCatalogProvider on top of local.properties files.
type Provider struct {
	defaults map[string]string
}

// NewProvider creates a Provider seeded with defaults.
func NewProvider(defaults map[string]string) *Provider {
	return &Provider{defaults: maps.Clone(defaults)}
}

// Catalog layers defaults, root/local.properties and overrides, in that order.
func (p *Provider) Catalog(root string, overrides map[string]string) (*domain.ToolingCatalog, error) {
	values := maps.Clone(p.defaults)
	if values == nil {
		values = make(map[string]string)
	}

	path := filepath.Join(root, domain.LocalPropertiesFileName)
	local, err := godotenv.Read(path)
	switch {
	case err == nil:
		maps.Copy(values, local)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrToolingCatalogReadFailed, err.Error()), "path", path)
	}

	maps.Copy(values, overrides)
	return domain.NewToolingCatalog(values), nil
}

// ParseOverrides parses "key=value" pairs given on the command line.
func ParseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	for _, pair := range pairs {
		if !strings.Contains(pair, "=") {
			err := zerr.Wrap(domain.ErrConfiguration, "override must have the form key=value")
			return nil, zerr.With(err, "override", pair)
		}
	}

	values, err := godotenv.Unmarshal(strings.Join(pairs, "\n"))
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConfiguration, err.Error())
	}
	return values, nil
}
