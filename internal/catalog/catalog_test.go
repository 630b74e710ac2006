package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/heroes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	units, err := Default()
	require.NoError(t, err)
	require.Len(t, units, 4)

	types := make([]string, 0, len(units))
	for _, u := range units {
		types = append(types, u.UnitType)
		assert.True(t, u.AttackType.Valid(), u.UnitType)
	}

	assert.Equal(t, []string{"Swordsman", "Pikeman", "Archer", "Knight"}, types)
	assert.Equal(t, 2.0, units[1].AttackBonuses["Knight"])
	assert.Equal(t, model.AttackRanged, units[2].AttackType)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	units, err := Load("")
	require.NoError(t, err)
	assert.Len(t, units, 4)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	data := []byte(`units:
  - unit_type: Mage
    health: 20
    base_attack: 40
    cost: 50
    attack_type: Ranged
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	units, err := Load(path)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "Mage", units[0].UnitType)
	assert.Equal(t, 40, units[0].BaseAttack)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		reason string
	}{
		{"no type", "units:\n  - health: 1\n    base_attack: 1\n    cost: 1\n    attack_type: Melee\n", "unit_type is required"},
		{"zero cost", "units:\n  - unit_type: A\n    health: 1\n    base_attack: 1\n    cost: 0\n    attack_type: Melee\n", "cost must be positive"},
		{"bad attack type", "units:\n  - unit_type: A\n    health: 1\n    base_attack: 1\n    cost: 1\n    attack_type: Magic\n", `unknown attack_type "Magic"`},
		{"duplicate", "units:\n  - {unit_type: A, health: 1, base_attack: 1, cost: 1, attack_type: Melee}\n  - {unit_type: A, health: 1, base_attack: 1, cost: 1, attack_type: Melee}\n", "duplicate unit type"},
		{"negative bonus", "units:\n  - {unit_type: A, health: 1, base_attack: 1, cost: 1, attack_type: Melee, attack_bonuses: {B: -1}}\n", "negative attack bonus for B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var invalid *InvalidTemplateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("units: []\n"))
	require.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = Parse([]byte("units: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
