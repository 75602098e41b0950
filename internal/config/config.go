// Package config defines service configuration structures and loading hooks.
package config

// Storage backend names accepted by the loader.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. "127.0.0.1:9180".
	Addr string `koanf:"addr"`

	// StorageBackend selects the snapshot store: "file" or "sqlite".
	StorageBackend string `koanf:"storage_backend"`

	// DataDir holds the snapshot files for the file backend.
	DataDir string `koanf:"data_dir"`

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `koanf:"sqlite_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           "127.0.0.1:9180",
		StorageBackend: BackendFile,
		DataDir:        "./data",
		SQLitePath:     "./data/appello.db",
	}
}
