package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a deterministic hash of the dependency graph.
// Declaration order does not affect the result.
func (g *DependencyGraph) Fingerprint() string {
	lines := make([]string, 0, len(g.Platforms)+len(g.Dependencies))
	for _, p := range g.Platforms {
		lines = append(lines, "platform="+p.Key()+"|"+p.Configuration)
	}
	for d := range g.Walk() {
		lines = append(lines, "dep="+d.Coordinate.Key()+"|"+d.Coordinate.Configuration+"|"+d.PinnedBy)
	}
	slices.Sort(lines)
	return hashLines(lines)
}

// ComputeFingerprint hashes every field of the plan that affects the build.
// Warnings are not part of the fingerprint.
func ComputeFingerprint(plan *BuildPlan) string {
	var lines []string
	for _, p := range plan.Plugins {
		lines = append(lines, "plugin="+strconv.Itoa(p.Position)+"|"+p.ID+"|"+p.Version+"|"+strconv.FormatBool(p.Apply))
	}

	t := plan.Target
	lines = append(lines,
		"namespace="+t.Namespace,
		"applicationId="+t.ApplicationID,
		"sdk="+strconv.Itoa(t.SDK.Min)+"|"+strconv.Itoa(t.SDK.Target)+"|"+strconv.Itoa(t.SDK.Compile),
		"version="+strconv.Itoa(t.VersionCode)+"|"+t.VersionName,
		"ndk="+t.NDKVersion,
		"java="+t.Compile.SourceCompatibility+"|"+t.Compile.TargetCompatibility,
		"kotlin="+t.Kotlin.JVMTarget+"|"+strings.Join(t.Kotlin.FreeCompilerArgs, " "),
	)

	v := plan.Variant
	lines = append(lines, "variant="+v.Name+"|"+v.Signing.SigningConfig+"|"+
		strconv.FormatBool(v.Debuggable)+"|"+strconv.FormatBool(v.MinifyEnabled)+"|"+strconv.FormatBool(v.ShrinkResources))

	if plan.Dependencies != nil {
		lines = append(lines, "graph="+plan.Dependencies.Fingerprint())
	}
	return hashLines(lines)
}

func hashLines(lines []string) string {
	hasher := xxhash.New()
	for _, line := range lines {
		_, _ = hasher.WriteString(line)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
