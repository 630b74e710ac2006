package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/heroes/internal/catalog"
	"github.com/inovacc/heroes/internal/encoding"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) store.Store {
	t.Helper()

	db, err := store.NewBolt(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func defaultCatalog(t *testing.T) []model.Unit {
	t.Helper()

	units, err := catalog.Default()
	require.NoError(t, err)

	return units
}

func TestGeneratePreset(t *testing.T) {
	db := setupTestStore(t)

	p, err := GeneratePreset(db, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 500, Name: "test", Save: true})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "test", p.Name)
	assert.LessOrEqual(t, p.Army.Points, 500)
	assert.NotEmpty(t, p.Army.Units)

	stored, err := db.GetPreset(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Army.Points, stored.Army.Points)
	assert.Len(t, stored.Army.Units, len(p.Army.Units))
}

func TestGeneratePreset_NotSaved(t *testing.T) {
	db := setupTestStore(t)

	p, err := GeneratePreset(db, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 100})
	require.NoError(t, err)

	_, err = db.GetPreset(p.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGeneratePreset_Errors(t *testing.T) {
	var invalid *InvalidPointsError

	_, err := GeneratePreset(nil, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 0})
	require.ErrorAs(t, err, &invalid)

	_, err = GeneratePreset(nil, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 5})
	require.ErrorIs(t, err, ErrEmptyArmy)
}

func TestResolveArmy(t *testing.T) {
	db := setupTestStore(t)

	p, err := GeneratePreset(db, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 200, Save: true})
	require.NoError(t, err)

	army, id, err := ResolveArmy(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
	assert.Equal(t, p.Army.Points, army.Points)

	path := filepath.Join(t.TempDir(), "army.yaml")
	require.NoError(t, encoding.SaveFile(path, p.Army))

	army, id, err = ResolveArmy(db, path)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Len(t, army.Units, len(p.Army.Units))

	_, _, err = ResolveArmy(db, "does-not-exist")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, _, err = ResolveArmy(nil, "does-not-exist")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func writeArmy(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "army.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestResolveArmy_HandWrittenFile(t *testing.T) {
	path := writeArmy(t, `units:
  - name: Knight 1
    unit_type: Knight
    health: 120
    base_attack: 45
    cost: 40
    attack_type: Melee
    x: 0
    y: 10
  - name: Fallen 1
    unit_type: Archer
    health: 0
    base_attack: 10
    cost: 10
    attack_type: Ranged
    x: 1
    y: 10
`)

	army, _, err := ResolveArmy(nil, path)
	require.NoError(t, err)
	require.Len(t, army.Units, 2)
	assert.True(t, army.Units[0].Alive)
	assert.False(t, army.Units[1].Alive)

	computer, err := GeneratePreset(nil, GenerateOptions{Catalog: defaultCatalog(t), MaxPoints: 200})
	require.NoError(t, err)

	rec, err := RunBattle(context.Background(), BattleOptions{
		Player:    army,
		Computer:  computer.Army,
		MaxRounds: 1000,
		Logger:    quiet,
	})
	require.NoError(t, err)
	assert.Positive(t, rec.Rounds)
	assert.Positive(t, rec.Attacks)
}

func TestResolveArmy_RejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		unit   string
		reason string
	}{
		{
			name: "outside the field",
			body: `units:
  - {name: Knight 1, unit_type: Knight, health: 120, base_attack: 45, cost: 40, x: 30, y: 0}
`,
			unit:   "Knight 1",
			reason: "outside",
		},
		{
			name: "duplicate names",
			body: `units:
  - {name: Knight 1, unit_type: Knight, health: 120, base_attack: 45, cost: 40, x: 0, y: 0}
  - {name: Knight 1, unit_type: Knight, health: 120, base_attack: 45, cost: 40, x: 1, y: 0}
`,
			unit:   "Knight 1",
			reason: "duplicate name",
		},
		{
			name: "shared cell",
			body: `units:
  - {name: Knight 1, unit_type: Knight, health: 120, base_attack: 45, cost: 40, x: 0, y: 0}
  - {name: Knight 2, unit_type: Knight, health: 120, base_attack: 45, cost: 40, x: 0, y: 0}
`,
			unit:   "Knight 2",
			reason: "already taken",
		},
		{
			name: "nobody alive",
			body: `units:
  - {name: Knight 1, unit_type: Knight, health: 0, base_attack: 45, cost: 40, x: 0, y: 0}
`,
			reason: "no living units",
		},
		{
			name:   "no units",
			body:   "points: 0\n",
			reason: "no living units",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolveArmy(nil, writeArmy(t, tt.body))

			var invalid *InvalidArmyError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.unit, invalid.Unit)
			assert.Contains(t, invalid.Reason, tt.reason)
		})
	}
}
