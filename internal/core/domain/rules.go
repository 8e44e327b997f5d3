package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// RuleSet is the validated graph of plugin ordering rules.
type RuleSet struct {
	rules map[string]OrderingRule
}

// NewRuleSet merges rules by canonical plugin ID and checks the result for cycles.
func NewRuleSet(rules ...OrderingRule) (*RuleSet, error) {
	rs := &RuleSet{rules: make(map[string]OrderingRule, len(rules))}
	for _, r := range rules {
		id := CanonicalPluginID(r.Plugin)
		if id == "" {
			return nil, zerr.Wrap(ErrConfiguration, "ordering rule without a plugin id")
		}
		merged := rs.rules[id]
		merged.Plugin = id
		for _, req := range r.Requires {
			canonical := Requirement{Constraint: req.Constraint}
			for _, candidate := range req.AnyOf {
				canonical.AnyOf = append(canonical.AnyOf, CanonicalPluginID(candidate))
			}
			if len(canonical.AnyOf) == 0 {
				return nil, zerr.With(zerr.Wrap(ErrConfiguration, "empty requirement"), "plugin", id)
			}
			merged.Requires = append(merged.Requires, canonical)
		}
		rs.rules[id] = merged
	}

	if err := rs.validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Rule returns the merged rule for a plugin.
func (rs *RuleSet) Rule(id string) (OrderingRule, bool) {
	r, ok := rs.rules[CanonicalPluginID(id)]
	return r, ok
}

// validate runs a depth-first visit over the rule graph in sorted order and fails on a cycle.
func (rs *RuleSet) validate() error {
	ids := make([]string, 0, len(rs.rules))
	for id := range rs.rules {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	state := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		state[u] = 1
		path = append(path, u)

		for _, dep := range rs.edges(u) {
			switch state[dep] {
			case 1:
				return buildCycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range ids {
		if state[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// edges returns every plugin a rule can depend on, sorted.
func (rs *RuleSet) edges(id string) []string {
	r, ok := rs.rules[id]
	if !ok {
		return nil
	}
	var out []string
	for _, req := range r.Requires {
		out = append(out, req.AnyOf...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func buildCycleError(path []string, dep string) error {
	startIdx := slices.Index(path, dep)
	cyclePath := ""
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(zerr.Wrap(ErrRuleCycle, "rule graph is not acyclic"), "cycle", cyclePath)
}
