package versions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/adapters/versions"
	"go.trai.ch/droidplan/internal/core/domain"
)

const catalogTOML = `
[versions]
firebaseBom = "32.7.0"
agp = { strictly = "8.3.0" }
kotlin = "1.9.22"

[libraries]
firebase-bom = { group = "com.google.firebase", name = "firebase-bom", version.ref = "firebaseBom" }
firebase_analytics = { module = "com.google.firebase:firebase-analytics" }
core-ktx = "androidx.core:core-ktx:1.13.1"
junit = { module = "junit:junit", version = "4.13.2" }

[plugins]
android-application = { id = "com.android.application", version.ref = "agp" }
kotlin-android = { id = "org.jetbrains.kotlin.android", version.ref = "kotlin" }
crashlytics = "com.google.firebase.crashlytics:2.9.9"
`

func TestParse(t *testing.T) {
	catalog, err := versions.Parse([]byte(catalogTOML))
	require.NoError(t, err)

	assert.Equal(t, "8.3.0", catalog.Versions["agp"])

	bom, ok := catalog.Library("firebase.bom")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate{Group: "com.google.firebase", Artifact: "firebase-bom", Version: "32.7.0"}, bom)

	analytics, ok := catalog.Library("firebase-analytics")
	require.True(t, ok)
	assert.False(t, analytics.Versioned())

	core, ok := catalog.Library("core_ktx")
	require.True(t, ok)
	assert.Equal(t, "1.13.1", core.Version)

	junit, ok := catalog.Library("junit")
	require.True(t, ok)
	assert.Equal(t, "4.13.2", junit.Version)

	agp, ok := catalog.Plugin("android.application")
	require.True(t, ok)
	assert.Equal(t, domain.PluginRef{ID: domain.PluginAndroidApplication, Version: "8.3.0", Apply: true}, agp)

	crashlytics, ok := catalog.Plugin("crashlytics")
	require.True(t, ok)
	assert.Equal(t, "2.9.9", crashlytics.Version)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":          "[versions\n",
		"unknown ref":     "[libraries]\na = { module = \"g:a\", version.ref = \"missing\" }\n",
		"bad module":      "[libraries]\na = { module = \"ga\" }\n",
		"missing name":    "[libraries]\na = { group = \"g\" }\n",
		"plugin id":       "[plugins]\na = { version = \"1.0\" }\n",
		"library type":    "[libraries]\na = 3\n",
		"version type":    "[versions]\na = 3\n",
		"bad string form": "[libraries]\na = \"nocolon\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := versions.Parse([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libs.versions.toml")
	require.NoError(t, os.WriteFile(path, []byte(catalogTOML), domain.FilePerm))

	catalog, err := versions.NewReader().Read(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Libraries, 4)
	assert.Len(t, catalog.Plugins, 3)
}

func TestReader_ReadMissing(t *testing.T) {
	catalog, err := versions.NewReader().Read(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, catalog.Libraries)
}

func TestReader_ReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libs.versions.toml")
	require.NoError(t, os.WriteFile(path, []byte("[versions\n"), domain.FilePerm))

	_, err := versions.NewReader().Read(path)
	assert.ErrorIs(t, err, domain.ErrCatalogInvalid)
}
