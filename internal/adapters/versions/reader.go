// Package versions reads Gradle version catalogs.
package versions

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// catalogFile matches the top-level tables of libs.versions.toml.
type catalogFile struct {
	Versions  map[string]any `toml:"versions"`
	Libraries map[string]any `toml:"libraries"`
	Plugins   map[string]any `toml:"plugins"`
}

// Reader implements ports.VersionCatalogReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the version catalog at path. A missing file yields an empty catalog.
func (r *Reader) Read(path string) (*domain.VersionCatalog, error) {
	// #nosec G304 -- path is derived from the project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewVersionCatalog(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogInvalid, err.Error()), "path", path)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return catalog, nil
}

// Parse decodes the content of a version catalog.
func Parse(data []byte) (*domain.VersionCatalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(domain.ErrCatalogInvalid, err.Error())
	}

	catalog := domain.NewVersionCatalog()
	for alias, raw := range file.Versions {
		v, err := richVersion(raw)
		if err != nil {
			return nil, zerr.With(err, "version", alias)
		}
		catalog.Versions[domain.NormalizeAlias(alias)] = v
	}

	for alias, raw := range file.Libraries {
		c, err := library(raw, catalog.Versions)
		if err != nil {
			return nil, zerr.With(err, "library", alias)
		}
		catalog.Libraries[domain.NormalizeAlias(alias)] = c
	}

	for alias, raw := range file.Plugins {
		p, err := plugin(raw, catalog.Versions)
		if err != nil {
			return nil, zerr.With(err, "plugin", alias)
		}
		catalog.Plugins[domain.NormalizeAlias(alias)] = p
	}

	return catalog, nil
}

func library(raw any, versions map[string]string) (domain.Coordinate, error) {
	switch v := raw.(type) {
	case string:
		return domain.ParseCoordinate(v)
	case map[string]any:
		var c domain.Coordinate
		if module, ok := v["module"].(string); ok {
			group, artifact, found := strings.Cut(module, ":")
			if !found || group == "" || artifact == "" || strings.Contains(artifact, ":") {
				return c, zerr.With(zerr.Wrap(domain.ErrCatalogInvalid, "module must be group:artifact"), "module", module)
			}
			c.Group, c.Artifact = group, artifact
		} else {
			c.Group, _ = v["group"].(string)
			c.Artifact, _ = v["name"].(string)
		}
		if c.Group == "" || c.Artifact == "" {
			return c, zerr.Wrap(domain.ErrCatalogInvalid, "library needs module or group and name")
		}

		version, err := versionOf(v, versions)
		if err != nil {
			return c, err
		}
		c.Version = version
		return c, nil
	default:
		return domain.Coordinate{}, zerr.Wrap(domain.ErrCatalogInvalid, "library must be a string or a table")
	}
}

func plugin(raw any, versions map[string]string) (domain.PluginRef, error) {
	switch v := raw.(type) {
	case string:
		id, version, _ := strings.Cut(v, ":")
		return domain.PluginRef{ID: id, Version: version, Apply: true}, nil
	case map[string]any:
		id, _ := v["id"].(string)
		if id == "" {
			return domain.PluginRef{}, zerr.Wrap(domain.ErrCatalogInvalid, "plugin needs an id")
		}
		version, err := versionOf(v, versions)
		if err != nil {
			return domain.PluginRef{}, err
		}
		return domain.PluginRef{ID: id, Version: version, Apply: true}, nil
	default:
		return domain.PluginRef{}, zerr.Wrap(domain.ErrCatalogInvalid, "plugin must be a string or a table")
	}
}

// versionOf reads the version of a library or plugin table: a plain string,
// a version.ref into the versions table, or a rich version.
func versionOf(entry map[string]any, versions map[string]string) (string, error) {
	raw, ok := entry["version"]
	if !ok {
		return "", nil
	}
	if table, ok := raw.(map[string]any); ok {
		if ref, ok := table["ref"].(string); ok {
			v, found := versions[domain.NormalizeAlias(ref)]
			if !found {
				return "", zerr.With(zerr.Wrap(domain.ErrCatalogInvalid, "unknown version.ref"), "ref", ref)
			}
			return v, nil
		}
	}
	return richVersion(raw)
}

// richVersion accepts "1.0" or {strictly, require, prefer}, in that precedence.
func richVersion(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		for _, key := range []string{"strictly", "require", "prefer"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, nil
			}
		}
	}
	return "", zerr.Wrap(domain.ErrCatalogInvalid, "unsupported version declaration")
}
