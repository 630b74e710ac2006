package model

// PresetConfig holds army generation settings.
type PresetConfig struct {
	// MaxPoints is the default budget for generated armies
	MaxPoints int `ini:"max_points"`
}

// BattleConfig holds simulation settings.
type BattleConfig struct {
	// MaxRounds stops a simulation that has not finished (0 means unlimited)
	MaxRounds int `ini:"max_rounds"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "bolt" or "sqlite"
	Backend string `ini:"backend"`

	// Path is the database file; empty means the application directory
	Path string `ini:"path"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `ini:"level"`

	// Format is text or json
	Format string `ini:"format"`
}

// CatalogConfig points at a custom unit catalog.
type CatalogConfig struct {
	// Path is a YAML catalog; empty means the built-in one
	Path string `ini:"path"`
}

// Config holds the application configuration
type Config struct {
	Preset  PresetConfig  `ini:"preset"`
	Battle  BattleConfig  `ini:"battle"`
	Storage StorageConfig `ini:"storage"`
	Log     LogConfig     `ini:"log"`
	Catalog CatalogConfig `ini:"catalog"`
}

const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Preset:  PresetConfig{MaxPoints: 1500},
		Battle:  BattleConfig{MaxRounds: 500},
		Storage: StorageConfig{Backend: BackendBolt},
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}
