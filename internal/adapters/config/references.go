package config

import (
	"strconv"
	"strings"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	libsPrefix        = "libs."
	libsPluginsPrefix = "libs.plugins."
)

// references substitutes tooling catalog and version catalog references.
type references struct {
	tooling  *domain.ToolingCatalog
	versions *domain.VersionCatalog
}

// value returns raw, or the catalog value it references. An empty raw value
// falls back to fallbackKey, like the Flutter project template.
func (r *references) value(field, raw, fallbackKey string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallbackKey
	}
	if !strings.HasPrefix(raw, domain.CatalogPrefix) {
		return raw, nil
	}

	v, ok := r.tooling.Lookup(raw)
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownCatalogKey, "reference is not provided by the tooling catalog")
		err = zerr.With(err, "key", raw)
		return "", zerr.With(err, "field", field)
	}
	return v, nil
}

func (r *references) apiLevel(field, raw, fallbackKey string) (int, error) {
	v, err := r.value(field, raw, fallbackKey)
	if err != nil {
		return 0, err
	}
	level, err := domain.ParseAPILevel(v)
	if err != nil {
		return 0, zerr.With(err, "field", field)
	}
	return level, nil
}

func (r *references) versionCode(raw string) (int, error) {
	v, err := r.value("versionCode", raw, domain.CatalogVersionCode)
	if err != nil {
		return 0, err
	}
	code, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || code < 1 {
		err := zerr.Wrap(domain.ErrConfiguration, "versionCode must be a positive integer")
		return 0, zerr.With(err, "value", v)
	}
	return code, nil
}

func (r *references) plugins(dtos []PluginDTO) (domain.PluginDeclaration, error) {
	decl := domain.PluginDeclaration{Plugins: make([]domain.PluginRef, 0, len(dtos))}
	for _, dto := range dtos {
		ref := domain.PluginRef{ID: dto.ID, Version: dto.Version, Apply: true}
		if dto.Apply != nil {
			ref.Apply = *dto.Apply
		}

		if alias, ok := strings.CutPrefix(dto.ID, libsPluginsPrefix); ok {
			catalogRef, found := r.versions.Plugin(alias)
			if !found {
				return decl, aliasNotFound(dto.ID)
			}
			ref.ID = catalogRef.ID
			if ref.Version == "" {
				ref.Version = catalogRef.Version
			}
		}

		if ref.ID == "" {
			return decl, zerr.Wrap(domain.ErrConfiguration, "plugin entry without an id")
		}
		decl.Plugins = append(decl.Plugins, ref)
	}
	return decl, nil
}

func (r *references) dependencies(entries []map[string]string) ([]domain.Coordinate, error) {
	coords := make([]domain.Coordinate, 0, len(entries))
	for i, entry := range entries {
		if len(entry) != 1 {
			err := zerr.Wrap(domain.ErrConfiguration, "dependency entry must have exactly one configuration key")
			return nil, zerr.With(err, "index", i)
		}

		for configuration, notation := range entry {
			if !configurationRegex.MatchString(configuration) {
				err := zerr.Wrap(domain.ErrConfiguration, "invalid dependency configuration")
				return nil, zerr.With(err, "configuration", configuration)
			}

			c, err := r.coordinate(notation)
			if err != nil {
				return nil, zerr.With(err, "index", i)
			}
			c.Configuration = configuration
			coords = append(coords, c)
		}
	}
	return coords, nil
}

// coordinate parses a notation, substituting version catalog aliases.
func (r *references) coordinate(notation string) (domain.Coordinate, error) {
	raw := strings.TrimSpace(notation)

	platform := false
	if inner, ok := strings.CutPrefix(raw, "platform("); ok && strings.HasSuffix(inner, ")") {
		inner = strings.TrimSpace(strings.TrimSuffix(inner, ")"))
		if strings.HasPrefix(inner, libsPrefix) {
			platform = true
			raw = inner
		}
	}

	alias, ok := strings.CutPrefix(raw, libsPrefix)
	if !ok {
		return domain.ParseCoordinate(raw)
	}

	c, found := r.versions.Library(alias)
	if !found {
		return domain.Coordinate{}, aliasNotFound(raw)
	}
	c.Platform = platform
	if platform && !c.Versioned() {
		err := zerr.Wrap(domain.ErrInvalidCoordinate, "platform imports require an explicit version")
		return domain.Coordinate{}, zerr.With(err, "notation", notation)
	}
	return c, nil
}

func aliasNotFound(reference string) error {
	err := zerr.Wrap(domain.ErrCatalogAliasNotFound, "reference is not declared in the version catalog")
	return zerr.With(err, "alias", reference)
}
