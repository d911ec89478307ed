package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./paperread.db"

	// DefaultImportPattern is the file glob used when importing a directory of articles
	DefaultImportPattern = "*.txt"
)
