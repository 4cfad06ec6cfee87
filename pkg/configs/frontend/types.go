package frontend

// FrontendConfig configures the zbi-db API server.
type FrontendConfig struct {
	// DBURI is the postgres connection string.
	DBURI string `yaml:"dburi"`

	// ServerPort is the port the API listens on.
	ServerPort string `yaml:"port"`

	// SchemaRepository is the directory holding versioned schema
	// definitions. Empty disables schema management.
	SchemaRepository string `yaml:"schemaRepository"`

	// SeedDirectory holds the catalog bootstrap files (policy.yaml,
	// per-blockchain entries). Empty skips seeding.
	SeedDirectory string `yaml:"seedDirectory"`

	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `yaml:"loglevel"`
}
