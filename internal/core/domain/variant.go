package domain

// Implicit names declared by the Android plugin.
const (
	DebugBuildType     = "debug"
	ReleaseBuildType   = "release"
	DebugSigningConfig = "debug"
)

// SigningConfig names a keystore. Credentials are never read.
type SigningConfig struct {
	Name      string `json:"name" yaml:"name"`
	StoreFile string `json:"storeFile,omitempty" yaml:"storeFile,omitempty"`
	KeyAlias  string `json:"keyAlias,omitempty" yaml:"keyAlias,omitempty"`
}

// SigningPolicy is the signing configuration a build variant is bound to.
type SigningPolicy struct {
	SigningConfig string `json:"signingConfig" yaml:"signingConfig"`
}

// UsesDebugKeys reports whether the policy signs with the debug keystore.
func (p SigningPolicy) UsesDebugKeys() bool {
	return p.SigningConfig == DebugSigningConfig
}

// BuildVariant is a build type selected at invocation time.
type BuildVariant struct {
	Name            string        `json:"name" yaml:"name"`
	Signing         SigningPolicy `json:"signing" yaml:"signing"`
	Debuggable      bool          `json:"debuggable" yaml:"debuggable"`
	MinifyEnabled   bool          `json:"minifyEnabled" yaml:"minifyEnabled"`
	ShrinkResources bool          `json:"shrinkResources" yaml:"shrinkResources"`
}

// DebugVariant returns the debug build type the Android plugin always declares.
func DebugVariant() BuildVariant {
	return BuildVariant{
		Name:       DebugBuildType,
		Signing:    SigningPolicy{SigningConfig: DebugSigningConfig},
		Debuggable: true,
	}
}
