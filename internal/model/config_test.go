package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1500, cfg.Preset.MaxPoints)
	assert.Equal(t, 500, cfg.Battle.MaxRounds)
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestUnit_TakeDamage(t *testing.T) {
	u := NewUnit(Unit{UnitType: "Knight", Health: 10, BaseAttack: 3, Cost: 5, AttackType: AttackMelee}, "Knight 1", 1, 2)
	assert.True(t, u.Alive)

	u.TakeDamage(4)
	assert.Equal(t, 6, u.Health)
	assert.True(t, u.Alive)

	u.TakeDamage(9)
	assert.Equal(t, 0, u.Health)
	assert.False(t, u.Alive)
}

func TestUnit_Bonuses(t *testing.T) {
	u := &Unit{
		AttackBonuses:  map[string]float64{"Knight": 1.5},
		DefenceBonuses: map[string]float64{"Ranged": 0.5},
	}

	assert.Equal(t, 1.5, u.AttackBonus("Knight"))
	assert.Equal(t, 1.0, u.AttackBonus("Archer"))
	assert.Equal(t, 0.5, u.DefenceBonus(AttackRanged))
	assert.Equal(t, 1.0, u.DefenceBonus(AttackMelee))
}

func TestUnit_CloneIsDeep(t *testing.T) {
	u := NewUnit(Unit{UnitType: "Archer", AttackBonuses: map[string]float64{"Knight": 2}}, "Archer 1", 0, 0)
	c := u.Clone()

	c.AttackBonuses["Knight"] = 3
	c.Health = 99

	assert.Equal(t, 2.0, u.AttackBonuses["Knight"])
	assert.NotEqual(t, u.Health, c.Health)
}

func TestArmy_AliveUnits(t *testing.T) {
	var nilArmy *Army
	assert.False(t, nilArmy.HasAliveUnits())
	assert.Nil(t, nilArmy.AliveUnits())

	a := &Army{Units: []*Unit{
		{Name: "a", UnitType: "Archer", Alive: true},
		{Name: "b", UnitType: "Archer", Alive: false},
		nil,
		{Name: "c", UnitType: "Knight", Alive: true},
	}}

	assert.True(t, a.HasAliveUnits())

	alive := a.AliveUnits()
	if assert.Len(t, alive, 2) {
		assert.Equal(t, "a", alive[0].Name)
		assert.Equal(t, "c", alive[1].Name)
	}

	assert.Equal(t, map[string]int{"Archer": 2, "Knight": 1}, a.CountByType())
}

func TestEdge_InField(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want bool
	}{
		{"origin", Edge{0, 0}, true},
		{"far corner", Edge{FieldWidth - 1, FieldHeight - 1}, true},
		{"negative x", Edge{-1, 0}, false},
		{"too wide", Edge{FieldWidth, 0}, false},
		{"too high", Edge{0, FieldHeight}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edge.InField())
		})
	}
}
