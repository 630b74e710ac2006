package store

import (
	"fmt"
	"path/filepath"

	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/store/sqlite"
)

// Store defines the database operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// Preset operations
	SavePreset(p *model.Preset) error
	GetPreset(id string) (*model.Preset, error)
	ListPresets() ([]model.Preset, error)
	DeletePreset(id string) error

	// Battle history
	SaveBattle(b *model.BattleRecord) error
	GetBattle(id string) (*model.BattleRecord, error)
	ListBattles() ([]model.BattleRecord, error)
}

var (
	_ Store = (*Bolt)(nil)
	_ Store = (*sqlite.Store)(nil)
)

// Open creates the store selected by cfg. Relative or empty paths are
// resolved inside dir.
func Open(cfg model.StorageConfig, dir string) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = model.BackendBolt
	}

	path := cfg.Path

	switch backend {
	case model.BackendBolt:
		if path == "" {
			path = "heroes.bolt"
		}

		path = resolve(dir, path)

		db, err := NewBolt(path)
		if err != nil {
			return nil, fmt.Errorf("opening bolt store %s: %w", path, err)
		}

		return db, nil

	case model.BackendSQLite:
		if path == "" {
			path = "heroes.db"
		}

		path = resolve(dir, path)

		db, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store %s: %w", path, err)
		}

		return db, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", backend, model.BackendBolt, model.BackendSQLite)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
