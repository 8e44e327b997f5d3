package resolver

import (
	"slices"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// candidate is a version a platform import offers for a coordinate.
type candidate struct {
	platform string
	version  string
}

// ResolveDependencies pins every unversioned coordinate to the version supplied by
// exactly one platform import among coords.
//
// A platform applies to a coordinate when its configuration is inherited by the
// coordinate's configuration and its manifest lists the module. Without a manifest,
// a platform applies to coordinates of its own group and pins its own version.
// The same platform imported under several configurations is one candidate.
// Explicit versions are kept as declared.
func ResolveDependencies(coords []domain.Coordinate, manifests domain.Manifests) (*domain.DependencyGraph, error) {
	graph := &domain.DependencyGraph{}

	for _, c := range coords {
		if c.Platform {
			if !c.Versioned() {
				err := zerr.Wrap(domain.ErrConfiguration, "platform import without a version")
				return nil, zerr.With(err, "coordinate", c.String())
			}
			graph.Platforms = append(graph.Platforms, withConfiguration(c))
		}
	}

	for _, c := range coords {
		if c.Platform {
			continue
		}
		c = withConfiguration(c)
		candidates := platformsFor(c, graph.Platforms, manifests)

		if c.Versioned() {
			dep := domain.ResolvedDependency{Coordinate: c}
			if len(candidates) == 1 && candidates[0].version != c.Version {
				dep.Overrides = candidates[0].version
			}
			graph.Dependencies = append(graph.Dependencies, dep)
			continue
		}

		switch len(candidates) {
		case 0:
			err := zerr.Wrap(domain.ErrUnresolvedVersion, "no platform import pins this dependency")
			return nil, zerr.With(err, "coordinate", c.String())
		case 1:
			c.Version = candidates[0].version
			graph.Dependencies = append(graph.Dependencies, domain.ResolvedDependency{
				Coordinate: c,
				PinnedBy:   candidates[0].platform,
			})
		default:
			keys := make([]string, 0, len(candidates))
			for _, cand := range candidates {
				keys = append(keys, cand.platform)
			}
			err := zerr.Wrap(domain.ErrUnresolvedVersion, "more than one platform import pins this dependency")
			err = zerr.With(err, "coordinate", c.String())
			return nil, zerr.With(err, "candidates", keys)
		}
	}

	return graph, nil
}

func platformsFor(c domain.Coordinate, platforms []domain.Coordinate, manifests domain.Manifests) []candidate {
	var out []candidate
	for _, p := range platforms {
		if !domain.ConfigurationInherits(c.Configuration, p.Configuration) {
			continue
		}
		cand, ok := pin(c, p, manifests)
		if ok && !slices.Contains(out, cand) {
			out = append(out, cand)
		}
	}
	return out
}

func pin(c, platform domain.Coordinate, manifests domain.Manifests) (candidate, bool) {
	if manifest, ok := manifests.Lookup(platform); ok {
		v, found := manifest.Pin(c.Module())
		return candidate{platform: platform.Key(), version: v}, found
	}
	if platform.Group == c.Group {
		return candidate{platform: platform.Key(), version: platform.Version}, true
	}
	return candidate{}, false
}

func withConfiguration(c domain.Coordinate) domain.Coordinate {
	if c.Configuration == "" {
		c.Configuration = domain.DefaultConfiguration
	}
	return c
}

// compareVersions describes how explicit relates to pinned.
func compareVersions(explicit, pinned string) string {
	ev, err := semver.NewVersion(explicit)
	if err != nil {
		return "differs from"
	}
	pv, err := semver.NewVersion(pinned)
	if err != nil {
		return "differs from"
	}
	switch ev.Compare(pv) {
	case -1:
		return "downgrades"
	case 1:
		return "upgrades"
	default:
		return "differs from"
	}
}
