// Package store provides the storage abstraction layer for heroes.
//
// The package defines the [Store] interface which abstracts all database
// operations. Two backends are available and selected at runtime through
// the storage section of heroes.ini:
//   - bolt (default): BoltDB, an embedded key-value store
//   - sqlite: SQLite via the pure Go modernc.org/sqlite driver
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Preset CRUD operations (SavePreset, GetPreset, ListPresets, DeletePreset)
//   - Battle history (SaveBattle, GetBattle, ListBattles)
//
// Lookups of unknown IDs return an error wrapping [model.ErrNotFound].
// Lists are ordered oldest first.
//
//	db, err := store.Open(cfg.Storage, appDir)
//	presets, err := db.ListPresets()
package store
