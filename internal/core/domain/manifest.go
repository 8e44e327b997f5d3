package domain

// PlatformManifest is the module to version table a platform import pins.
type PlatformManifest struct {
	Platform Coordinate        `json:"platform" yaml:"platform"`
	Pins     map[string]string `json:"pins" yaml:"pins"`
}

// Pin returns the version the manifest pins for a "group:artifact" module.
func (m PlatformManifest) Pin(module string) (string, bool) {
	v, ok := m.Pins[module]
	return v, ok
}

// Manifests indexes known platform manifests by platform key.
type Manifests map[string]PlatformManifest

// Lookup returns the manifest for a platform coordinate.
func (m Manifests) Lookup(platform Coordinate) (PlatformManifest, bool) {
	manifest, ok := m[platform.Key()]
	return manifest, ok
}
