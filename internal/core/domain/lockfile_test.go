package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/droidplan/internal/core/domain"
)

func TestLockPlan(t *testing.T) {
	plan := samplePlan()
	plan.Plugins[1].Version = "1.0.0"
	plan.Fingerprint = "abc"

	locked := domain.LockPlan(plan)

	assert.Equal(t, "abc", locked.Fingerprint)
	assert.Equal(t, []string{domain.PluginAndroidApplication, domain.PluginFlutter + "@1.0.0"}, locked.Plugins)
	assert.Equal(t, map[string]string{
		"platform(com.google.firebase:firebase-bom)": "32.7.0",
		"com.google.firebase:firebase-analytics":     "32.7.0",
		"com.google.firebase:firebase-crashlytics":   "32.7.0",
	}, locked.Dependencies)
}

func TestLockedPlan_Diff(t *testing.T) {
	locked := domain.LockPlan(samplePlan())
	assert.Empty(t, locked.Diff(locked))

	plan := samplePlan()
	plan.Dependencies.Dependencies[0].Coordinate.Version = "21.5.0"
	plan.Dependencies.Dependencies = plan.Dependencies.Dependencies[:1]
	current := domain.LockPlan(plan)

	assert.Equal(t, []string{
		"- com.google.firebase:firebase-crashlytics 32.7.0",
		"~ com.google.firebase:firebase-analytics: 32.7.0 -> 21.5.0",
	}, locked.Diff(current))
}

func TestLockedPlan_DiffKeepsConfigurationsApart(t *testing.T) {
	analytics := func(configuration, version string) domain.ResolvedDependency {
		return domain.ResolvedDependency{Coordinate: domain.Coordinate{
			Group: "com.google.firebase", Artifact: "firebase-analytics", Version: version, Configuration: configuration,
		}}
	}

	plan := samplePlan()
	plan.Dependencies.Dependencies = []domain.ResolvedDependency{
		analytics("implementation", "21.5.0"),
		analytics("androidTestImplementation", "21.5.0"),
	}
	locked := domain.LockPlan(plan)
	assert.Len(t, locked.Dependencies, 3)

	plan.Dependencies.Dependencies[1] = analytics("androidTestImplementation", "22.0.0")
	current := domain.LockPlan(plan)

	assert.Equal(t, []string{
		"~ androidTestImplementation(com.google.firebase:firebase-analytics): 21.5.0 -> 22.0.0",
	}, locked.Diff(current))
}
