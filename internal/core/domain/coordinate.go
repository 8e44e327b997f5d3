package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultConfiguration is the dependency configuration used when none is given.
const DefaultConfiguration = "implementation"

// Coordinate is a (group, artifact, version) triple as declared by the build.
// A platform coordinate imports a bill of materials that pins versions for
// other coordinates declared without one.
type Coordinate struct {
	Group         string `json:"group" yaml:"group"`
	Artifact      string `json:"artifact" yaml:"artifact"`
	Version       string `json:"version,omitempty" yaml:"version,omitempty"`
	Platform      bool   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Configuration string `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// Module returns the "group:artifact" part of the coordinate.
func (c Coordinate) Module() string {
	return c.Group + ":" + c.Artifact
}

// String returns the Gradle notation of the coordinate.
func (c Coordinate) String() string {
	s := c.Module()
	if c.Version != "" {
		s += ":" + c.Version
	}
	if c.Platform {
		return "platform(" + s + ")"
	}
	return s
}

// Versioned reports whether the coordinate carries an explicit version.
func (c Coordinate) Versioned() bool {
	return c.Version != ""
}

// ParseCoordinate parses "group:artifact[:version]" or "platform(group:artifact:version)".
func ParseCoordinate(notation string) (Coordinate, error) {
	raw := strings.TrimSpace(notation)

	var c Coordinate
	if inner, ok := unwrapPlatform(raw); ok {
		c.Platform = true
		raw = inner
	}
	raw = unquote(raw)

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Coordinate{}, invalidCoordinate(notation, "expected group:artifact[:version]")
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" || strings.ContainsAny(p, " \t\"'") {
			return Coordinate{}, invalidCoordinate(notation, "empty or malformed segment")
		}
	}

	c.Group = parts[0]
	c.Artifact = parts[1]
	if len(parts) == 3 {
		c.Version = parts[2]
	}

	if c.Platform && !c.Versioned() {
		return Coordinate{}, invalidCoordinate(notation, "platform imports require an explicit version")
	}

	return c, nil
}

// unwrapPlatform strips a platform(...) wrapper.
func unwrapPlatform(s string) (string, bool) {
	if !strings.HasPrefix(s, "platform(") || !strings.HasSuffix(s, ")") {
		return s, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "platform("), ")")
	return strings.TrimSpace(inner), true
}

// unquote removes one pair of matching Gradle string quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func invalidCoordinate(notation, reason string) error {
	err := zerr.Wrap(ErrInvalidCoordinate, reason)
	return zerr.With(err, "notation", notation)
}

// Key returns "group:artifact:version" regardless of the platform flag.
func (c Coordinate) Key() string {
	return c.Module() + ":" + c.Version
}

// Slot returns the versionless Gradle declaration of the coordinate, such as
// "implementation(platform(group:artifact))". Two coordinates with the same slot
// cannot be on the same classpath at different versions.
func (c Coordinate) Slot() string {
	s := c.Module()
	if c.Platform {
		s = "platform(" + s + ")"
	}
	if c.Configuration == "" {
		return s
	}
	return c.Configuration + "(" + s + ")"
}

// configurationBases are the Gradle configurations a dependency can be declared in.
// Source sets and variants prefix them: "androidTestImplementation", "releaseApi".
var configurationBases = []string{"implementation", "api", "compileOnly", "runtimeOnly"}

// splitConfiguration returns the scope prefix and base of a configuration name.
// Unknown configurations are their own scope with no base.
func splitConfiguration(name string) (scope, base string) {
	for _, b := range configurationBases {
		if name == b {
			return "", b
		}
		if prefix, ok := strings.CutSuffix(name, strings.ToUpper(b[:1])+b[1:]); ok && prefix != "" {
			return prefix, b
		}
	}
	return name, ""
}

// ConfigurationInherits reports whether declarations made in parent are visible to
// dependencies declared in child. Main implementation and api declarations reach every
// classpath. Scoped ones only reach their own scope.
func ConfigurationInherits(child, parent string) bool {
	if child == parent {
		return true
	}
	parentScope, parentBase := splitConfiguration(parent)
	if parentBase != "implementation" && parentBase != "api" {
		return false
	}
	if parentScope == "" {
		return true
	}
	childScope, _ := splitConfiguration(child)
	return childScope == parentScope
}
