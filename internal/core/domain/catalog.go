package domain

import (
	"slices"
	"strings"
)

// Tooling catalog keys provided by the Flutter tool.
const (
	CatalogCompileSdk  = "flutter.compileSdkVersion"
	CatalogMinSdk      = "flutter.minSdkVersion"
	CatalogTargetSdk   = "flutter.targetSdkVersion"
	CatalogVersionCode = "flutter.versionCode"
	CatalogVersionName = "flutter.versionName"
	CatalogNdkVersion  = "flutter.ndkVersion"
	CatalogSdkPath     = "flutter.sdk"

	// CatalogPrefix marks a value that must be looked up in the tooling catalog.
	CatalogPrefix = "flutter."
)

// ToolingCatalog holds the read-only values injected by the host tooling.
type ToolingCatalog struct {
	values map[string]string
}

// NewToolingCatalog copies values into a new catalog.
func NewToolingCatalog(values map[string]string) *ToolingCatalog {
	c := &ToolingCatalog{values: make(map[string]string, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// Lookup returns the value stored under key.
func (c *ToolingCatalog) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the sorted catalog keys.
func (c *ToolingCatalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// VersionCatalog is the parsed content of gradle/libs.versions.toml.
// Aliases are stored normalized.
type VersionCatalog struct {
	Versions  map[string]string
	Libraries map[string]Coordinate
	Plugins   map[string]PluginRef
}

// NewVersionCatalog returns an empty catalog.
func NewVersionCatalog() *VersionCatalog {
	return &VersionCatalog{
		Versions:  make(map[string]string),
		Libraries: make(map[string]Coordinate),
		Plugins:   make(map[string]PluginRef),
	}
}

// NormalizeAlias maps the equivalent separators '-', '_' and '.' onto '.'.
func NormalizeAlias(alias string) string {
	return strings.NewReplacer("-", ".", "_", ".").Replace(strings.TrimSpace(alias))
}

// Library looks up a library alias.
func (c *VersionCatalog) Library(alias string) (Coordinate, bool) {
	if c == nil {
		return Coordinate{}, false
	}
	coord, ok := c.Libraries[NormalizeAlias(alias)]
	return coord, ok
}

// Plugin looks up a plugin alias.
func (c *VersionCatalog) Plugin(alias string) (PluginRef, bool) {
	if c == nil {
		return PluginRef{}, false
	}
	ref, ok := c.Plugins[NormalizeAlias(alias)]
	return ref, ok
}
