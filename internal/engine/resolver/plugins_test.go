package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

func TestResolvePlugins_FlutterAfterAndroid(t *testing.T) {
	r := resolver.New()

	plugins, err := r.ResolvePlugins(applied(
		domain.PluginAndroidApplication,
		"kotlin-android",
		domain.PluginFlutter,
	))
	require.NoError(t, err)
	require.Len(t, plugins, 3)

	assert.Equal(t, domain.PluginKotlinAndroid, plugins[1].ID)
	assert.Equal(t, domain.PluginFlutter, plugins[2].ID)
	assert.Equal(t, 2, plugins[2].Position)
	assert.Equal(t, []string{domain.PluginAndroidApplication, domain.PluginKotlinAndroid}, plugins[2].After)
}

func TestResolvePlugins_FirebaseBetweenAndroidAndKotlin(t *testing.T) {
	plugins, err := resolver.New().ResolvePlugins(applied(
		domain.PluginAndroidApplication,
		domain.PluginGoogleServices,
		domain.PluginCrashlytics,
		"kotlin-android",
		domain.PluginFlutter,
	))
	require.NoError(t, err)
	require.Len(t, plugins, 5)

	assert.Equal(t, []string{domain.PluginAndroidApplication}, plugins[1].After)
	assert.Equal(t, []string{domain.PluginAndroidApplication}, plugins[2].After)
	assert.Equal(t, domain.PluginKotlinAndroid, plugins[3].ID)
	assert.Empty(t, plugins[3].After)
	assert.Equal(t, 4, plugins[4].Position)
	assert.Equal(t, []string{domain.PluginAndroidApplication, domain.PluginKotlinAndroid}, plugins[4].After)
}

func TestResolvePlugins_LibraryPluginSatisfiesAndroid(t *testing.T) {
	_, err := resolver.New().ResolvePlugins(applied(
		domain.PluginAndroidLibrary,
		domain.PluginKotlinAndroid,
		domain.PluginFlutter,
	))
	assert.NoError(t, err)
}

func TestResolvePlugins_OrderingViolations(t *testing.T) {
	tests := []struct {
		name    string
		decl    domain.PluginDeclaration
		message string
	}{
		{
			name:    "flutter before android",
			decl:    applied(domain.PluginFlutter, domain.PluginAndroidApplication, "kotlin-android"),
			message: "plugin declared before a plugin it requires",
		},
		{
			name:    "kotlin missing",
			decl:    applied(domain.PluginAndroidApplication, domain.PluginFlutter),
			message: "required plugin is not applied",
		},
		{
			name:    "firebase without android",
			decl:    applied(domain.PluginGoogleServices),
			message: "required plugin is not applied",
		},
		{
			name:    "duplicate",
			decl:    applied(domain.PluginAndroidApplication, "kotlin-android", domain.PluginKotlinAndroid),
			message: "plugin declared twice",
		},
		{
			name: "android not applied",
			decl: domain.PluginDeclaration{Plugins: []domain.PluginRef{
				{ID: domain.PluginAndroidApplication, Apply: false},
				{ID: domain.PluginKotlinAndroid, Apply: true},
				{ID: domain.PluginFlutter, Apply: true},
			}},
			message: "required plugin is not applied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.New().ResolvePlugins(tt.decl)
			require.ErrorIs(t, err, domain.ErrConfiguration)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.message, zErr.Message())
		})
	}
}

func TestResolvePlugins_UnappliedPluginIsNotChecked(t *testing.T) {
	decl := domain.PluginDeclaration{Plugins: []domain.PluginRef{
		{ID: domain.PluginFlutter, Apply: false},
	}}

	plugins, err := resolver.New().ResolvePlugins(decl)
	require.NoError(t, err)
	assert.Empty(t, plugins[0].After)
}

func TestResolvePlugins_CustomRules(t *testing.T) {
	rule := domain.OrderingRule{
		Plugin:   "com.example.codegen",
		Requires: []domain.Requirement{{AnyOf: []string{domain.PluginFlutter}}},
	}
	decl := applied(domain.PluginAndroidApplication, "kotlin-android", "com.example.codegen", domain.PluginFlutter)

	_, err := resolver.New().ResolvePlugins(decl)
	require.NoError(t, err, "without the rule the order is accepted")

	_, err = resolver.New(rule).ResolvePlugins(decl)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestResolvePlugins_CyclicRules(t *testing.T) {
	cyclic := []domain.OrderingRule{
		{Plugin: domain.PluginAndroidApplication, Requires: []domain.Requirement{{AnyOf: []string{domain.PluginFlutter}}}},
	}

	_, err := resolver.New().ResolvePlugins(applied(domain.PluginAndroidApplication), cyclic...)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.ErrorIs(t, err, domain.ErrRuleCycle)
}

func TestResolvePlugins_VersionConstraint(t *testing.T) {
	rule := domain.OrderingRule{
		Plugin: domain.PluginCrashlytics,
		Requires: []domain.Requirement{
			{AnyOf: []string{domain.PluginGoogleServices}, Constraint: ">= 4.3.0"},
		},
	}
	decl := func(version string) domain.PluginDeclaration {
		return domain.PluginDeclaration{Plugins: []domain.PluginRef{
			{ID: domain.PluginAndroidApplication, Apply: true},
			{ID: domain.PluginGoogleServices, Version: version, Apply: true},
			{ID: domain.PluginCrashlytics, Apply: true},
		}}
	}

	r := resolver.New(rule)

	_, err := r.ResolvePlugins(decl("4.4.0"))
	require.NoError(t, err)

	_, err = r.ResolvePlugins(decl(""))
	require.NoError(t, err, "unversioned plugins are not checked")

	_, err = r.ResolvePlugins(decl("4.2.0"))
	require.ErrorIs(t, err, domain.ErrConfiguration)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, ">= 4.3.0", zErr.Metadata()["constraint"])

	_, err = r.ResolvePlugins(decl("latest"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
