// Package constants defines shared constants used across the engine.
package constants

// File system permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Persistence formats.
const (
	// StateVersion tags the persisted favorites and usage documents.
	StateVersion = "1.0"

	// AppDirName is the per-user application-data directory name.
	AppDirName = "lucide-gallery"

	// FavoritesFileName is the default favorites file name.
	FavoritesFileName = "favorites.json"

	// UsageFileName is the default usage data file name.
	UsageFileName = "usage.json"
)

// Engine limits.
const (
	// DefaultMaxSuggestions caps autocomplete results when the caller
	// does not specify a limit.
	DefaultMaxSuggestions = 10

	// ReporterHistorySize bounds the error reporter's in-memory history.
	ReporterHistorySize = 100
)
