package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./kelimeci.db"

	// DefaultBackupDir is where backup documents are written
	DefaultBackupDir = "./backups"

	// DefaultImageCacheDir is where background image bytes are cached
	DefaultImageCacheDir = "./image-cache"
)
