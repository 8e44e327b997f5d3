package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "droidplan.yaml"

	// LockFileName is the name of the resolved plan lockfile.
	LockFileName = "droidplan.lock"

	// LocalPropertiesFileName is the name of the host tooling properties file.
	LocalPropertiesFileName = "local.properties"

	// VersionCatalogDirName is the directory holding the Gradle version catalog.
	VersionCatalogDirName = "gradle"

	// VersionCatalogFileName is the name of the Gradle version catalog.
	VersionCatalogFileName = "libs.versions.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultVersionCatalogPath returns the version catalog path relative to the project root.
func DefaultVersionCatalogPath() string {
	return filepath.Join(VersionCatalogDirName, VersionCatalogFileName)
}
