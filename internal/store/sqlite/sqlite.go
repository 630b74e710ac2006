// Package sqlite provides SQLite database storage for heroes.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/heroes/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store keeps presets and battles in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := NewMigrator(db).MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// ============================================================================
// Presets
// ============================================================================

func (s *Store) SavePreset(p *model.Preset) error {
	if p == nil || p.Army == nil {
		return errors.New("preset with an army is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	army, err := json.Marshal(p.Army)
	if err != nil {
		return fmt.Errorf("encoding army: %w", err)
	}

	ctx, cancel := newContext()
	defer cancel()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO presets (id, name, max_points, points, army_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			max_points = excluded.max_points,
			points = excluded.points,
			army_json = excluded.army_json
	`, p.ID, p.Name, p.MaxPoints, p.Army.Points, string(army), formatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}

	return nil
}

func (s *Store) GetPreset(id string) (*model.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := newContext()
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, max_points, army_json, created_at FROM presets WHERE id = ?
	`, id)

	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("preset %s: %w", id, model.ErrNotFound)
	}

	return p, err
}

func (s *Store) ListPresets() ([]model.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := newContext()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, max_points, army_json, created_at FROM presets ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var out []model.Preset

	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *p)
	}

	return out, rows.Err()
}

func (s *Store) DeletePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := newContext()
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("preset %s: %w", id, model.ErrNotFound)
	}

	return nil
}

// ============================================================================
// Battles
// ============================================================================

func (s *Store) SaveBattle(b *model.BattleRecord) error {
	if b == nil {
		return errors.New("battle record is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	if b.FoughtAt.IsZero() {
		b.FoughtAt = time.Now()
	}

	log, err := json.Marshal(b.Log)
	if err != nil {
		return fmt.Errorf("encoding battle log: %w", err)
	}

	ctx, cancel := newContext()
	defer cancel()

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO battles
			(id, player_preset_id, computer_preset_id, winner, rounds, attacks, outcome, log_json, fought_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.PlayerPresetID, b.ComputerPresetID, string(b.Winner), b.Rounds, b.Attacks, b.Outcome,
		string(log), formatTime(b.FoughtAt))
	if err != nil {
		return fmt.Errorf("saving battle: %w", err)
	}

	return nil
}

func (s *Store) GetBattle(id string) (*model.BattleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := newContext()
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, player_preset_id, computer_preset_id, winner, rounds, attacks, outcome, log_json, fought_at
		FROM battles WHERE id = ?
	`, id)

	b, err := scanBattle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("battle %s: %w", id, model.ErrNotFound)
	}

	return b, err
}

func (s *Store) ListBattles() ([]model.BattleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := newContext()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player_preset_id, computer_preset_id, winner, rounds, attacks, outcome, log_json, fought_at
		FROM battles ORDER BY fought_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing battles: %w", err)
	}
	defer rows.Close()

	var out []model.BattleRecord

	for rows.Next() {
		b, err := scanBattle(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, *b)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (*model.Preset, error) {
	var (
		p         model.Preset
		army      string
		createdAt string
	)

	if err := row.Scan(&p.ID, &p.Name, &p.MaxPoints, &army, &createdAt); err != nil {
		return nil, err
	}

	p.Army = &model.Army{}
	if err := json.Unmarshal([]byte(army), p.Army); err != nil {
		return nil, fmt.Errorf("decoding army of preset %s: %w", p.ID, err)
	}

	p.CreatedAt = parseTime(createdAt)

	return &p, nil
}

func scanBattle(row scanner) (*model.BattleRecord, error) {
	var (
		b        model.BattleRecord
		winner   string
		log      string
		foughtAt string
	)

	err := row.Scan(&b.ID, &b.PlayerPresetID, &b.ComputerPresetID, &winner, &b.Rounds, &b.Attacks,
		&b.Outcome, &log, &foughtAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(log), &b.Log); err != nil {
		return nil, fmt.Errorf("decoding log of battle %s: %w", b.ID, err)
	}

	b.Winner = model.Side(winner)
	b.FoughtAt = parseTime(foughtAt)

	return &b, nil
}

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
