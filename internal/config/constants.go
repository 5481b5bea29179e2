package config

// Default locations
const (
	// DefaultDatabasePath is the default path for the corpus database
	DefaultDatabasePath = "./pothi.db"

	// DefaultOutputDir is the default directory for compiled artifacts
	DefaultOutputDir = "./build"
)
