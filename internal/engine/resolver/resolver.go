// Package resolver implements the build configuration resolver.
//
// Resolution is a single synchronous pass over immutable inputs: plugin ordering,
// SDK bounds, platform pinned dependency versions and build variant selection.
// Identical inputs always produce an identical plan and fingerprint.
package resolver

import (
	"fmt"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver resolves loaded projects into build plans.
type Resolver struct {
	rules []domain.OrderingRule
}

// New creates a Resolver enforcing the default ordering rules plus extra.
func New(extra ...domain.OrderingRule) *Resolver {
	rules := domain.DefaultOrderingRules()
	rules = append(rules, extra...)
	return &Resolver{rules: rules}
}

// Resolve runs every resolution step against project for the named variant.
// Manifests holds the platform manifests known to the registry and may be nil.
func (r *Resolver) Resolve(
	project *domain.Project,
	variant string,
	manifests domain.Manifests,
) (*domain.BuildPlan, error) {
	plugins, err := r.ResolvePlugins(project.Plugins, project.Rules...)
	if err != nil {
		return nil, err
	}

	if err := ValidateSdkBounds(project.Target); err != nil {
		return nil, err
	}
	if err := validateVersion(project.Target); err != nil {
		return nil, err
	}

	graph, err := ResolveDependencies(project.Dependencies, manifests)
	if err != nil {
		return nil, err
	}

	selected, err := SelectVariant(project.Variants, variant)
	if err != nil {
		return nil, err
	}

	plan := &domain.BuildPlan{
		Plugins:       plugins,
		Dependencies:  graph,
		Target:        project.Target,
		Variant:       selected,
		FlutterSource: project.FlutterSource,
	}
	plan.Warnings = collectWarnings(plan)
	plan.Fingerprint = domain.ComputeFingerprint(plan)

	return plan, nil
}

func validateVersion(target domain.BuildTarget) error {
	if target.VersionCode < 1 {
		err := zerr.Wrap(domain.ErrConfiguration, "versionCode must be positive")
		return zerr.With(err, "version_code", target.VersionCode)
	}
	if target.VersionName == "" {
		return zerr.Wrap(domain.ErrConfiguration, "versionName must not be empty")
	}
	return nil
}

func collectWarnings(plan *domain.BuildPlan) []string {
	var warnings []string

	for d := range plan.Dependencies.Walk() {
		if d.Overrides != "" {
			warnings = append(warnings, fmt.Sprintf(
				"%s: explicit version %s %s the platform pin %s",
				d.Coordinate.Module(), d.Coordinate.Version,
				compareVersions(d.Coordinate.Version, d.Overrides), d.Overrides,
			))
		}
	}

	if !plan.Variant.Debuggable && plan.Variant.Signing.UsesDebugKeys() {
		warnings = append(warnings, fmt.Sprintf(
			"build type %q is signed with the debug signing config", plan.Variant.Name,
		))
	}

	if w := jvmTargetWarning(plan.Target); w != "" {
		warnings = append(warnings, w)
	}

	return warnings
}
