package domain

import (
	"fmt"
	"slices"
)

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile persists the resolved state of each locked build variant.
type Lockfile struct {
	// Version allows for future schema migrations.
	Version int `json:"version"`

	// Variants maps build type names to their locked plan.
	Variants map[string]LockedPlan `json:"variants"`
}

// LockedPlan is the reproducible snapshot of one resolved plan.
// Dependencies are keyed by Coordinate.Slot.
type LockedPlan struct {
	Fingerprint  string            `json:"fingerprint"`
	Plugins      []string          `json:"plugins"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewLockfile returns an empty lockfile at the current version.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Version:  LockfileVersion,
		Variants: make(map[string]LockedPlan),
	}
}

// LockPlan snapshots a resolved plan.
func LockPlan(plan *BuildPlan) LockedPlan {
	locked := LockedPlan{
		Fingerprint:  plan.Fingerprint,
		Plugins:      make([]string, 0, len(plan.Plugins)),
		Dependencies: make(map[string]string),
	}
	for _, p := range plan.Plugins {
		entry := p.ID
		if p.Version != "" {
			entry += "@" + p.Version
		}
		locked.Plugins = append(locked.Plugins, entry)
	}
	if plan.Dependencies != nil {
		for _, c := range plan.Dependencies.Platforms {
			locked.Dependencies[c.Slot()] = c.Version
		}
		for d := range plan.Dependencies.Walk() {
			locked.Dependencies[d.Coordinate.Slot()] = d.Coordinate.Version
		}
	}
	return locked
}

// Diff describes how the plan differs from the locked snapshot, in sorted order.
func (l LockedPlan) Diff(current LockedPlan) []string {
	var diffs []string
	for slot, locked := range l.Dependencies {
		now, ok := current.Dependencies[slot]
		switch {
		case !ok:
			diffs = append(diffs, fmt.Sprintf("- %s %s", slot, locked))
		case now != locked:
			diffs = append(diffs, fmt.Sprintf("~ %s: %s -> %s", slot, locked, now))
		}
	}
	for slot, now := range current.Dependencies {
		if _, ok := l.Dependencies[slot]; !ok {
			diffs = append(diffs, fmt.Sprintf("+ %s %s", slot, now))
		}
	}
	slices.Sort(diffs)

	if !slices.Equal(l.Plugins, current.Plugins) {
		diffs = append(diffs, fmt.Sprintf("~ plugins: %v -> %v", l.Plugins, current.Plugins))
	}
	return diffs
}
