package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/heroes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "nested", "heroes.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return s
}

func sampleArmy() *model.Army {
	return &model.Army{
		Points: 50,
		Units: []*model.Unit{
			{Name: "Archer 1", UnitType: "Archer", Health: 30, BaseAttack: 25, Cost: 30, AttackType: model.AttackRanged, Alive: true},
			{Name: "Swordsman 1", UnitType: "Swordsman", Health: 50, BaseAttack: 20, Cost: 20, AttackType: model.AttackMelee, X: 1, Alive: true},
		},
	}
}

func TestStore_Ping(t *testing.T) {
	require.NoError(t, setupTestStore(t).Ping())
}

func TestMigrator_Versions(t *testing.T) {
	s := setupTestStore(t)
	m := NewMigrator(s.db)

	version, err := m.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	applied, err := m.AppliedMigrations()
	require.NoError(t, err)
	require.Len(t, applied, 2)
	assert.Equal(t, "presets", applied[0].Description)
	assert.Equal(t, "battles", applied[1].Description)

	// running again is a no-op
	require.NoError(t, m.MigrateUp())

	require.NoError(t, m.MigrateDown())
	version, err = m.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	require.NoError(t, m.MigrateUp())
	version, err = m.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestStore_PresetLifecycle(t *testing.T) {
	s := setupTestStore(t)

	p := &model.Preset{Name: "first", MaxPoints: 100, Army: sampleArmy()}
	require.NoError(t, s.SavePreset(p))
	require.NotEmpty(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())

	got, err := s.GetPreset(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, 100, got.MaxPoints)
	assert.Equal(t, 50, got.Army.Points)
	require.Len(t, got.Army.Units, 2)
	assert.Equal(t, "Swordsman 1", got.Army.Units[1].Name)
	assert.Equal(t, 1, got.Army.Units[1].X)
	assert.WithinDuration(t, p.CreatedAt, got.CreatedAt, time.Microsecond)

	p.Name = "renamed"
	require.NoError(t, s.SavePreset(p))

	list, err := s.ListPresets()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "renamed", list[0].Name)

	require.NoError(t, s.DeletePreset(p.ID))

	_, err = s.GetPreset(p.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, s.DeletePreset(p.ID), model.ErrNotFound)
}

func TestStore_ListPresetsOrdered(t *testing.T) {
	s := setupTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.SavePreset(&model.Preset{ID: "b", Army: sampleArmy(), CreatedAt: base.Add(time.Second)}))
	require.NoError(t, s.SavePreset(&model.Preset{ID: "a", Army: sampleArmy(), CreatedAt: base.Add(500 * time.Millisecond)}))
	require.NoError(t, s.SavePreset(&model.Preset{ID: "c", Army: sampleArmy(), CreatedAt: base}))

	list, err := s.ListPresets()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
}

func TestStore_SavePresetRequiresArmy(t *testing.T) {
	s := setupTestStore(t)

	require.Error(t, s.SavePreset(nil))
	require.Error(t, s.SavePreset(&model.Preset{Name: "empty"}))
}

func TestStore_Battles(t *testing.T) {
	s := setupTestStore(t)

	b := &model.BattleRecord{
		PlayerPresetID:   "p",
		ComputerPresetID: "c",
		Winner:           model.SidePlayer,
		Rounds:           3,
		Attacks:          2,
		Outcome:          "finished",
		Log: []model.LogEntry{
			{Round: 1, Attacker: "Archer 1", AttackerSide: model.SidePlayer, Target: "Knight 1", TargetHealth: 10, TargetAlive: true},
			{Round: 2, Attacker: "Knight 1", AttackerSide: model.SideComputer},
		},
	}

	require.NoError(t, s.SaveBattle(b))
	require.NotEmpty(t, b.ID)

	got, err := s.GetBattle(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SidePlayer, got.Winner)
	assert.Equal(t, 3, got.Rounds)
	assert.Equal(t, "finished", got.Outcome)
	assert.Equal(t, b.Log, got.Log)

	list, err := s.ListBattles()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, err = s.GetBattle("missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}
