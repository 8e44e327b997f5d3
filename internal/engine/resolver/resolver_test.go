package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/engine/resolver"
)

func TestResolve(t *testing.T) {
	plan, err := resolver.New().Resolve(flutterProject(), "release", nil)
	require.NoError(t, err)

	assert.Len(t, plan.Plugins, 5)
	assert.Equal(t, "release", plan.Variant.Name)
	assert.Equal(t, 34, plan.Target.SDK.Target)
	assert.Empty(t, plan.Warnings)
	assert.Equal(t, domain.ComputeFingerprint(plan), plan.Fingerprint)

	for d := range plan.Dependencies.Walk() {
		assert.Equal(t, "32.7.0", d.Coordinate.Version)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := resolver.New()

	first, err := r.Resolve(flutterProject(), "debug", nil)
	require.NoError(t, err)
	second, err := r.Resolve(flutterProject(), "debug", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	release, err := r.Resolve(flutterProject(), "release", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, release.Fingerprint)
}

func TestResolve_DoesNotMutateProject(t *testing.T) {
	project := flutterProject()

	_, err := resolver.New().Resolve(project, "debug", nil)
	require.NoError(t, err)

	assert.Equal(t, flutterProject(), project)
}

func TestResolve_Warnings(t *testing.T) {
	project := flutterProject()
	project.Variants[1].Signing = domain.SigningPolicy{SigningConfig: domain.DebugSigningConfig}
	project.Target.Kotlin.JVMTarget = "17"
	project.Dependencies[1].Version = "21.0.0"

	plan, err := resolver.New().Resolve(project, "release", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"com.google.firebase:firebase-analytics: explicit version 21.0.0 downgrades the platform pin 32.7.0",
		`build type "release" is signed with the debug signing config`,
		"kotlin jvmTarget 17 differs from java targetCompatibility 1.8",
	}, plan.Warnings)
}

func TestResolve_JavaVersionNotations(t *testing.T) {
	project := flutterProject()
	project.Target.Compile.TargetCompatibility = "JavaVersion.VERSION_1_8"
	project.Target.Kotlin.JVMTarget = "8"

	plan, err := resolver.New().Resolve(project, "debug", nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Warnings)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Project)
		variant string
		want    error
	}{
		{
			name: "plugin order",
			mutate: func(p *domain.Project) {
				p.Plugins = applied(domain.PluginFlutter, domain.PluginAndroidApplication, domain.PluginKotlinAndroid)
			},
			variant: "debug",
			want:    domain.ErrConfiguration,
		},
		{
			name:    "sdk bounds",
			mutate:  func(p *domain.Project) { p.Target.SDK.Min = 35 },
			variant: "debug",
			want:    domain.ErrBounds,
		},
		{
			name:    "version code",
			mutate:  func(p *domain.Project) { p.Target.VersionCode = 0 },
			variant: "debug",
			want:    domain.ErrConfiguration,
		},
		{
			name:    "unpinned dependency",
			mutate:  func(p *domain.Project) { p.Dependencies = p.Dependencies[1:] },
			variant: "debug",
			want:    domain.ErrUnresolvedVersion,
		},
		{
			name:    "unknown variant",
			mutate:  func(*domain.Project) {},
			variant: "profile",
			want:    domain.ErrUnknownVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := flutterProject()
			tt.mutate(project)

			plan, err := resolver.New().Resolve(project, tt.variant, nil)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
