package domain

import "iter"

// ResolvedDependency is a coordinate with its final version.
// PinnedBy holds the platform key that supplied the version, if any.
// Overrides holds the version a platform would have pinned when an explicit
// version differs from it.
type ResolvedDependency struct {
	Coordinate Coordinate `json:"coordinate" yaml:"coordinate"`
	PinnedBy   string     `json:"pinnedBy,omitempty" yaml:"pinnedBy,omitempty"`
	Overrides  string     `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// DependencyGraph holds the platform imports and the dependencies they pin,
// in declaration order.
type DependencyGraph struct {
	Platforms    []Coordinate         `json:"platforms" yaml:"platforms"`
	Dependencies []ResolvedDependency `json:"dependencies" yaml:"dependencies"`
}

// Walk yields the resolved dependencies in declaration order.
func (g *DependencyGraph) Walk() iter.Seq[ResolvedDependency] {
	return func(yield func(ResolvedDependency) bool) {
		if g == nil {
			return
		}
		for _, d := range g.Dependencies {
			if !yield(d) {
				return
			}
		}
	}
}

// PinnedBy yields the dependencies whose version was supplied by the given platform.
func (g *DependencyGraph) PinnedBy(platform Coordinate) iter.Seq[ResolvedDependency] {
	key := platform.Key()
	return func(yield func(ResolvedDependency) bool) {
		for d := range g.Walk() {
			if d.PinnedBy == key && !yield(d) {
				return
			}
		}
	}
}

// BuildPlan is the resolved, immutable output handed to the build engine.
type BuildPlan struct {
	Plugins       []ResolvedPlugin `json:"plugins" yaml:"plugins"`
	Dependencies  *DependencyGraph `json:"dependencies" yaml:"dependencies"`
	Target        BuildTarget      `json:"target" yaml:"target"`
	Variant       BuildVariant     `json:"variant" yaml:"variant"`
	FlutterSource string           `json:"flutterSource,omitempty" yaml:"flutterSource,omitempty"`
	Warnings      []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Fingerprint   string           `json:"fingerprint" yaml:"fingerprint"`
}
