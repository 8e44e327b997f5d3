// Package registry provides a file-based registry of platform manifests.
//
// Manifests live at <dir>/<group>/<artifact>/<version>.yaml:
//
//	pins:
//	  com.google.firebase:firebase-analytics: 21.5.0
//	  com.google.firebase:firebase-crashlytics: 18.6.0
package registry

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultCacheSize is the number of manifests kept in memory.
const DefaultCacheSize = 256

// manifestFile is the on-disk manifest format.
type manifestFile struct {
	Platform string            `yaml:"platform"`
	Pins     map[string]string `yaml:"pins"`
}

type entry struct {
	manifest domain.PlatformManifest
	found    bool
}

// Registry implements ports.PlatformRegistry.
type Registry struct {
	cache *lru.Cache[string, entry]
}

// New creates a Registry caching up to size manifests.
func New(size int) (*Registry, error) {
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create manifest cache")
	}
	return &Registry{cache: cache}, nil
}

// Manifest returns the manifest of platform stored under dir.
// An empty dir or a missing manifest file report the platform as unknown.
func (r *Registry) Manifest(
	ctx context.Context,
	dir string,
	platform domain.Coordinate,
) (domain.PlatformManifest, bool, error) {
	if dir == "" {
		return domain.PlatformManifest{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.PlatformManifest{}, false, err
	}

	key := dir + "|" + platform.Key()
	if cached, ok := r.cache.Get(key); ok {
		return cached.manifest, cached.found, nil
	}

	path, err := manifestPath(dir, platform)
	if err != nil {
		return domain.PlatformManifest{}, false, err
	}

	manifest, found, err := load(path, platform)
	if err != nil {
		return domain.PlatformManifest{}, false, zerr.With(err, "path", path)
	}

	r.cache.Add(key, entry{manifest: manifest, found: found})
	return manifest, found, nil
}

func manifestPath(dir string, platform domain.Coordinate) (string, error) {
	for _, segment := range []string{platform.Group, platform.Artifact, platform.Version} {
		if segment == "" || segment == "." || segment == ".." || strings.ContainsAny(segment, `/\`) {
			err := zerr.Wrap(domain.ErrInvalidCoordinate, "segment cannot be used as a registry path")
			return "", zerr.With(err, "coordinate", platform.String())
		}
	}
	return filepath.Join(dir, platform.Group, platform.Artifact, platform.Version+".yaml"), nil
}

func load(path string, platform domain.Coordinate) (domain.PlatformManifest, bool, error) {
	// #nosec G304 -- path is built from validated coordinate segments
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.PlatformManifest{}, false, nil
		}
		return domain.PlatformManifest{}, false, zerr.Wrap(domain.ErrRegistryReadFailed, err.Error())
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.PlatformManifest{}, false, zerr.Wrap(domain.ErrRegistryParseFailed, err.Error())
	}

	if err := validate(&file, platform); err != nil {
		return domain.PlatformManifest{}, false, err
	}

	pins := make(map[string]string, len(file.Pins))
	for module, version := range file.Pins {
		pins[module] = version
	}
	return domain.PlatformManifest{Platform: platform, Pins: pins}, true, nil
}

func validate(file *manifestFile, platform domain.Coordinate) error {
	if file.Platform != "" && file.Platform != platform.Key() {
		err := zerr.Wrap(domain.ErrRegistryParseFailed, "manifest belongs to another platform")
		return zerr.With(err, "platform", file.Platform)
	}

	if _, err := semver.NewVersion(platform.Version); err != nil {
		err := zerr.Wrap(domain.ErrRegistryParseFailed, "platform version is not a semantic version")
		return zerr.With(err, "version", platform.Version)
	}

	for module, version := range file.Pins {
		group, artifact, ok := strings.Cut(module, ":")
		if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
			return zerr.With(zerr.Wrap(domain.ErrRegistryParseFailed, "pin key must be group:artifact"), "module", module)
		}
		if _, err := semver.NewVersion(version); err != nil {
			err := zerr.Wrap(domain.ErrRegistryParseFailed, "pinned version is not a semantic version")
			err = zerr.With(err, "module", module)
			return zerr.With(err, "version", version)
		}
	}
	return nil
}
