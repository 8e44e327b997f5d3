package resolver

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolvePlugins checks the declared plugin order against the resolver's rules and extra.
// Only applied plugins are checked, and only applied plugins satisfy a requirement.
func (r *Resolver) ResolvePlugins(
	decl domain.PluginDeclaration,
	extra ...domain.OrderingRule,
) ([]domain.ResolvedPlugin, error) {
	rules := append(append([]domain.OrderingRule{}, r.rules...), extra...)
	rs, err := domain.NewRuleSet(rules...)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]int, len(decl.Plugins))
	declared := make(map[string]int, len(decl.Plugins))
	for i, ref := range decl.Plugins {
		id := domain.CanonicalPluginID(ref.ID)
		if id == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "plugin without an id"), "position", i)
		}
		if first, dup := declared[id]; dup {
			err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "plugin declared twice"), "plugin", id)
			return nil, zerr.With(err, "positions", []int{first, i})
		}
		declared[id] = i
		if ref.Apply {
			applied[id] = i
		}
	}

	resolved := make([]domain.ResolvedPlugin, 0, len(decl.Plugins))
	for i, ref := range decl.Plugins {
		id := domain.CanonicalPluginID(ref.ID)
		plugin := domain.ResolvedPlugin{ID: id, Version: ref.Version, Apply: ref.Apply, Position: i}

		if rule, ok := rs.Rule(id); ok && ref.Apply {
			for _, req := range rule.Requires {
				matched, err := satisfy(id, i, req, applied, declared)
				if err != nil {
					return nil, err
				}
				if err := checkConstraint(matched, req.Constraint, decl.Plugins[applied[matched]]); err != nil {
					return nil, err
				}
				plugin.After = append(plugin.After, matched)
			}
		}

		resolved = append(resolved, plugin)
	}

	return resolved, nil
}

// satisfy returns the first plugin of req applied before position.
func satisfy(id string, position int, req domain.Requirement, applied, declared map[string]int) (string, error) {
	for _, candidate := range req.AnyOf {
		if pos, ok := applied[candidate]; ok && pos < position {
			return candidate, nil
		}
	}

	requires := strings.Join(req.AnyOf, " or ")
	for _, candidate := range req.AnyOf {
		if pos, ok := declared[candidate]; ok && pos > position {
			err := zerr.Wrap(domain.ErrConfiguration, "plugin declared before a plugin it requires")
			err = zerr.With(err, "plugin", id)
			return "", zerr.With(err, "requires", requires)
		}
	}

	err := zerr.Wrap(domain.ErrConfiguration, "required plugin is not applied")
	err = zerr.With(err, "plugin", id)
	return "", zerr.With(err, "requires", requires)
}

// checkConstraint verifies a matched plugin's declared version. Unversioned plugins
// are resolved by the build's plugin management and are not checked.
func checkConstraint(id, constraint string, ref domain.PluginRef) error {
	if constraint == "" || ref.Version == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfiguration, "invalid version constraint"), "constraint", constraint)
	}
	v, err := semver.NewVersion(ref.Version)
	if err != nil {
		err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "invalid plugin version"), "plugin", id)
		return zerr.With(err, "version", ref.Version)
	}
	if !c.Check(v) {
		err := zerr.Wrap(domain.ErrConfiguration, "plugin version does not satisfy constraint")
		err = zerr.With(err, "plugin", id)
		err = zerr.With(err, "version", ref.Version)
		return zerr.With(err, "constraint", constraint)
	}
	return nil
}
