package resolver_test

import (
	"testing"

	"go.trai.ch/droidplan/internal/core/domain"
)

const firebase = "com.google.firebase"

func bom(version string) domain.Coordinate {
	return domain.Coordinate{Group: firebase, Artifact: "firebase-bom", Version: version, Platform: true}
}

func lib(group, artifact, version string) domain.Coordinate {
	return domain.Coordinate{Group: group, Artifact: artifact, Version: version}
}

// in returns c declared in configuration.
func in(c domain.Coordinate, configuration string) domain.Coordinate {
	c.Configuration = configuration
	return c
}

func find(t *testing.T, graph *domain.DependencyGraph, module string) domain.ResolvedDependency {
	t.Helper()
	for d := range graph.Walk() {
		if d.Coordinate.Module() == module {
			return d
		}
	}
	t.Fatalf("dependency %s was not resolved", module)
	return domain.ResolvedDependency{}
}

func applied(ids ...string) domain.PluginDeclaration {
	decl := domain.PluginDeclaration{}
	for _, id := range ids {
		decl.Plugins = append(decl.Plugins, domain.PluginRef{ID: id, Apply: true})
	}
	return decl
}

func flutterProject() *domain.Project {
	return &domain.Project{
		Name: "app",
		Plugins: applied(
			domain.PluginAndroidApplication,
			"kotlin-android",
			domain.PluginFlutter,
			domain.PluginGoogleServices,
			domain.PluginCrashlytics,
		),
		Target: domain.BuildTarget{
			Namespace:     "com.example.app",
			ApplicationID: "com.example.app",
			SDK:           domain.SDKVersions{Min: 21, Target: 34, Compile: 34},
			VersionCode:   1,
			VersionName:   "1.0.0",
			Compile:       domain.CompileOptions{SourceCompatibility: "1.8", TargetCompatibility: "1.8"},
			Kotlin:        domain.KotlinOptions{JVMTarget: "1.8"},
		},
		Dependencies: []domain.Coordinate{
			bom("32.7.0"),
			lib(firebase, "firebase-analytics", ""),
			lib(firebase, "firebase-crashlytics", ""),
		},
		Variants: []domain.BuildVariant{
			domain.DebugVariant(),
			{Name: domain.ReleaseBuildType, Signing: domain.SigningPolicy{SigningConfig: "upload"}, MinifyEnabled: true},
		},
	}
}
