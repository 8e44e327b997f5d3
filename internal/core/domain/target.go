package domain

// SDKVersions is the (minimum, target, compile) set of Android API levels a build declares.
type SDKVersions struct {
	Min     int `json:"min" yaml:"min"`
	Target  int `json:"target" yaml:"target"`
	Compile int `json:"compile" yaml:"compile"`
}

// Ordered reports whether the triple satisfies min <= target <= compile with every level positive.
func (s SDKVersions) Ordered() bool {
	return s.Min >= 1 && s.Min <= s.Target && s.Target <= s.Compile
}

// CompileOptions holds the Java language levels for the build.
type CompileOptions struct {
	SourceCompatibility string `json:"sourceCompatibility,omitempty" yaml:"sourceCompatibility,omitempty"`
	TargetCompatibility string `json:"targetCompatibility,omitempty" yaml:"targetCompatibility,omitempty"`
}

// KotlinOptions holds the Kotlin compiler settings for the build.
type KotlinOptions struct {
	JVMTarget        string   `json:"jvmTarget,omitempty" yaml:"jvmTarget,omitempty"`
	FreeCompilerArgs []string `json:"freeCompilerArgs,omitempty" yaml:"freeCompilerArgs,omitempty"`
}

// BuildTarget identifies the application and the platform levels it is compiled against.
// It is created once per invocation and passed by value so resolution cannot mutate it.
type BuildTarget struct {
	Namespace     string         `json:"namespace" yaml:"namespace"`
	ApplicationID string         `json:"applicationId" yaml:"applicationId"`
	SDK           SDKVersions    `json:"sdk" yaml:"sdk"`
	VersionCode   int            `json:"versionCode" yaml:"versionCode"`
	VersionName   string         `json:"versionName" yaml:"versionName"`
	NDKVersion    string         `json:"ndkVersion,omitempty" yaml:"ndkVersion,omitempty"`
	Compile       CompileOptions `json:"compileOptions" yaml:"compileOptions"`
	Kotlin        KotlinOptions  `json:"kotlinOptions" yaml:"kotlinOptions"`
}
