package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned for malformed or mis-ordered declarations.
	ErrConfiguration = zerr.New("configuration error")

	// ErrUnresolvedVersion is returned when a dependency coordinate cannot be pinned to a version.
	ErrUnresolvedVersion = zerr.New("unresolved dependency version")

	// ErrBounds is returned when the SDK version triple violates min <= target <= compile.
	ErrBounds = zerr.New("sdk version bounds violated")

	// ErrUnknownVariant is returned when a variant selection references an undeclared build type.
	ErrUnknownVariant = zerr.New("unknown build variant")

	// ErrRuleCycle is returned when plugin ordering rules depend on each other.
	ErrRuleCycle = zerr.Wrap(ErrConfiguration, "plugin ordering rules form a cycle")

	// ErrInvalidCoordinate is returned when a dependency notation cannot be parsed.
	ErrInvalidCoordinate = zerr.Wrap(ErrConfiguration, "invalid dependency coordinate")

	// ErrInvalidAPILevel is returned when an SDK version value is neither a number nor a known codename.
	ErrInvalidAPILevel = zerr.Wrap(ErrConfiguration, "invalid api level")

	// ErrConfigNotFound is returned when no configuration file is found.
	ErrConfigNotFound = zerr.New("could not find droidplan.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownCatalogKey is returned when a flutter.* reference is not provided by the tooling catalog.
	ErrUnknownCatalogKey = zerr.New("unknown tooling catalog key")

	// ErrToolingCatalogReadFailed is returned when local.properties cannot be read.
	ErrToolingCatalogReadFailed = zerr.New("failed to read tooling catalog")

	// ErrCatalogInvalid is returned when the version catalog is malformed.
	ErrCatalogInvalid = zerr.New("invalid version catalog")

	// ErrCatalogAliasNotFound is returned when a libs.* alias is not in the version catalog.
	ErrCatalogAliasNotFound = zerr.New("version catalog alias not found")

	// ErrRegistryReadFailed is returned when a platform manifest cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read platform manifest")

	// ErrRegistryParseFailed is returned when a platform manifest cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse platform manifest")

	// ErrLockReadFailed is returned when the lockfile cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lockfile")

	// ErrLockUnmarshalFailed is returned when the lockfile cannot be unmarshaled.
	ErrLockUnmarshalFailed = zerr.New("failed to unmarshal lockfile")

	// ErrLockMarshalFailed is returned when the lockfile cannot be marshaled.
	ErrLockMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockWriteFailed is returned when the lockfile cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lockfile")

	// ErrLockMissing is returned when a lock check is requested but no lockfile exists.
	ErrLockMissing = zerr.New("lockfile not found")

	// ErrLockMismatch is returned when the resolved plan no longer matches the lockfile.
	ErrLockMismatch = zerr.New("resolved plan does not match lockfile")

	// ErrUnsupportedFormat is returned when an output format is not known.
	ErrUnsupportedFormat = zerr.New("unsupported output format")
)
