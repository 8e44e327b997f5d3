package domain

import "strings"

// Well-known plugin identifiers.
const (
	PluginAndroidApplication = "com.android.application"
	PluginAndroidLibrary     = "com.android.library"
	PluginKotlinAndroid      = "org.jetbrains.kotlin.android"
	PluginFlutter            = "dev.flutter.flutter-gradle-plugin"
	PluginGoogleServices     = "com.google.gms.google-services"
	PluginCrashlytics        = "com.google.firebase.crashlytics"
)

var pluginAliases = map[string]string{
	"kotlin-android":  PluginKotlinAndroid,
	"android":         PluginAndroidApplication,
	"android-library": PluginAndroidLibrary,
}

// CanonicalPluginID maps short plugin names to their fully qualified identifier.
func CanonicalPluginID(id string) string {
	id = strings.TrimSpace(id)
	if canonical, ok := pluginAliases[id]; ok {
		return canonical
	}
	return id
}

// PluginRef is a single entry of the plugins block.
type PluginRef struct {
	ID      string `json:"id" yaml:"id"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Apply   bool   `json:"apply" yaml:"apply"`
}

// PluginDeclaration is the ordered plugins block of a build script.
type PluginDeclaration struct {
	Plugins []PluginRef
}

// ResolvedPlugin is a plugin whose ordering requirements have been checked.
type ResolvedPlugin struct {
	ID       string   `json:"id" yaml:"id"`
	Version  string   `json:"version,omitempty" yaml:"version,omitempty"`
	Apply    bool     `json:"apply" yaml:"apply"`
	Position int      `json:"position" yaml:"position"`
	After    []string `json:"after,omitempty" yaml:"after,omitempty"`
}

// Requirement is satisfied by any one of its plugins being declared earlier.
// Constraint, when set, is a semver constraint the matched plugin's version must meet.
type Requirement struct {
	AnyOf      []string `json:"anyOf" yaml:"anyOf"`
	Constraint string   `json:"constraint,omitempty" yaml:"constraint,omitempty"`
}

// OrderingRule lists the requirements a plugin has on the plugins declared before it.
type OrderingRule struct {
	Plugin   string        `json:"plugin" yaml:"plugin"`
	Requires []Requirement `json:"requires" yaml:"requires"`
}

// DefaultOrderingRules returns the ordering contract of the Flutter and Firebase Gradle plugins.
func DefaultOrderingRules() []OrderingRule {
	android := Requirement{AnyOf: []string{PluginAndroidApplication, PluginAndroidLibrary}}
	kotlin := Requirement{AnyOf: []string{PluginKotlinAndroid}}

	return []OrderingRule{
		{Plugin: PluginFlutter, Requires: []Requirement{android, kotlin}},
		{Plugin: PluginGoogleServices, Requires: []Requirement{android}},
		{Plugin: PluginCrashlytics, Requires: []Requirement{android}},
	}
}
