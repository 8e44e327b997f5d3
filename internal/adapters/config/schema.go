package config

// Planfile represents the structure of the droidplan.yaml configuration file.
type Planfile struct {
	Version        string              `yaml:"version"`
	Name           string              `yaml:"name"`
	VersionCatalog string              `yaml:"versionCatalog"`
	Plugins        []PluginDTO         `yaml:"plugins"`
	Rules          []RuleDTO           `yaml:"rules"`
	Android        AndroidDTO          `yaml:"android"`
	Flutter        FlutterDTO          `yaml:"flutter"`
	Registry       RegistryDTO         `yaml:"registry"`
	Dependencies   []map[string]string `yaml:"dependencies"`
}

// PluginDTO represents an entry of the plugins block.
type PluginDTO struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version"`
	Apply   *bool  `yaml:"apply"`
}

// RuleDTO represents a project-specific plugin ordering rule.
type RuleDTO struct {
	Plugin   string           `yaml:"plugin"`
	Requires []RequirementDTO `yaml:"requires"`
}

// RequirementDTO represents one requirement of an ordering rule.
type RequirementDTO struct {
	AnyOf      []string `yaml:"anyOf"`
	Constraint string   `yaml:"constraint"`
}

// AndroidDTO represents the android block.
type AndroidDTO struct {
	Namespace      string                      `yaml:"namespace"`
	CompileSdk     string                      `yaml:"compileSdk"`
	NdkVersion     string                      `yaml:"ndkVersion"`
	CompileOptions CompileOptionsDTO           `yaml:"compileOptions"`
	KotlinOptions  KotlinOptionsDTO            `yaml:"kotlinOptions"`
	DefaultConfig  DefaultConfigDTO            `yaml:"defaultConfig"`
	SigningConfigs map[string]SigningConfigDTO `yaml:"signingConfigs"`
	BuildTypes     map[string]BuildTypeDTO     `yaml:"buildTypes"`
}

// CompileOptionsDTO represents android.compileOptions.
type CompileOptionsDTO struct {
	SourceCompatibility string `yaml:"sourceCompatibility"`
	TargetCompatibility string `yaml:"targetCompatibility"`
}

// KotlinOptionsDTO represents android.kotlinOptions.
type KotlinOptionsDTO struct {
	JvmTarget        string   `yaml:"jvmTarget"`
	FreeCompilerArgs []string `yaml:"freeCompilerArgs"`
}

// DefaultConfigDTO represents android.defaultConfig.
type DefaultConfigDTO struct {
	ApplicationID string `yaml:"applicationId"`
	MinSdk        string `yaml:"minSdk"`
	TargetSdk     string `yaml:"targetSdk"`
	VersionCode   string `yaml:"versionCode"`
	VersionName   string `yaml:"versionName"`
}

// SigningConfigDTO represents an entry of android.signingConfigs.
type SigningConfigDTO struct {
	StoreFile string `yaml:"storeFile"`
	KeyAlias  string `yaml:"keyAlias"`
}

// BuildTypeDTO represents an entry of android.buildTypes.
type BuildTypeDTO struct {
	SigningConfig   *string `yaml:"signingConfig"`
	Debuggable      *bool   `yaml:"debuggable"`
	MinifyEnabled   bool    `yaml:"minifyEnabled"`
	ShrinkResources bool    `yaml:"shrinkResources"`
}

// FlutterDTO represents the flutter block.
type FlutterDTO struct {
	Source string `yaml:"source"`
}

// RegistryDTO configures the platform manifest registry.
type RegistryDTO struct {
	Dir string `yaml:"dir"`
}
