package preset

import (
	"testing"

	"github.com/inovacc/heroes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templates() []model.Unit {
	return []model.Unit{
		{UnitType: "Swordsman", Health: 50, BaseAttack: 20, Cost: 20, AttackType: model.AttackMelee},
		{UnitType: "Archer", Health: 30, BaseAttack: 25, Cost: 20, AttackType: model.AttackRanged},
		{UnitType: "Knight", Health: 100, BaseAttack: 60, Cost: 80, AttackType: model.AttackMelee},
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		templates []model.Unit
		maxPoints int
	}{
		{"nil templates", nil, 100},
		{"empty templates", []model.Unit{}, 100},
		{"zero points", templates(), 0},
		{"negative points", templates(), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			army := Generate(tt.templates, tt.maxPoints)
			require.NotNil(t, army)
			assert.Empty(t, army.Units)
			assert.Zero(t, army.Points)
		})
	}
}

func TestGenerate_PrefersAttackPerCost(t *testing.T) {
	army := Generate(templates(), 60)

	require.Len(t, army.Units, 3)
	assert.Equal(t, 60, army.Points)

	for i, u := range army.Units {
		assert.Equal(t, "Archer", u.UnitType)
		assert.Equal(t, i%model.ArmyWidth, u.X)
		assert.Equal(t, i/model.ArmyWidth, u.Y)
		assert.True(t, u.Alive)
	}

	assert.Equal(t, "Archer 1", army.Units[0].Name)
	assert.Equal(t, "Archer 3", army.Units[2].Name)
}

func TestGenerate_HealthBreaksTies(t *testing.T) {
	tpls := []model.Unit{
		{UnitType: "Thin", Health: 10, BaseAttack: 10, Cost: 10},
		{UnitType: "Thick", Health: 40, BaseAttack: 10, Cost: 10},
	}

	army := Generate(tpls, 10)
	require.Len(t, army.Units, 1)
	assert.Equal(t, "Thick", army.Units[0].UnitType)
}

func TestGenerate_RespectsTypeCap(t *testing.T) {
	army := Generate(templates(), 100000)

	counts := army.CountByType()
	for typ, n := range counts {
		assert.LessOrEqual(t, n, MaxUnitsPerType, typ)
	}

	assert.Equal(t, MaxUnitsPerType, counts["Archer"])
	assert.Equal(t, MaxUnitsPerType, counts["Swordsman"])
	assert.Equal(t, MaxUnitsPerType, counts["Knight"])
	assert.Equal(t, 11*20+11*20+11*80, army.Points)

	last := army.Units[len(army.Units)-1]
	assert.Equal(t, "Knight 11", last.Name)
	assert.Equal(t, (len(army.Units)-1)%model.ArmyWidth, last.X)
	assert.Equal(t, (len(army.Units)-1)/model.ArmyWidth, last.Y)
}

func TestGenerate_StopsWhenColumnsAreFull(t *testing.T) {
	var tpls []model.Unit
	for _, typ := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		tpls = append(tpls, model.Unit{UnitType: typ, Health: 10, BaseAttack: 5, Cost: 1})
	}

	army := Generate(tpls, 1000)

	capacity := model.ArmyWidth * model.FieldHeight
	require.Len(t, army.Units, capacity)
	assert.Equal(t, capacity, army.Points)

	last := army.Units[len(army.Units)-1]
	assert.Equal(t, model.ArmyWidth-1, last.X)
	assert.Equal(t, model.FieldHeight-1, last.Y)

	for _, u := range army.Units {
		assert.True(t, u.Cell().InField(), u.Name)
	}
}

func TestGenerate_FillsRemainderWithCheaperUnits(t *testing.T) {
	tpls := []model.Unit{
		{UnitType: "Elite", Health: 10, BaseAttack: 100, Cost: 50},
		{UnitType: "Scout", Health: 10, BaseAttack: 1, Cost: 7},
	}

	army := Generate(tpls, 120)

	assert.Equal(t, map[string]int{"Elite": 2, "Scout": 2}, army.CountByType())
	assert.Equal(t, 114, army.Points)
	assert.LessOrEqual(t, army.Points, 120)
}

func TestGenerate_SkipsFreeTemplates(t *testing.T) {
	tpls := []model.Unit{
		{UnitType: "Ghost", Health: 1, BaseAttack: 1, Cost: 0},
		{UnitType: "Archer", Health: 30, BaseAttack: 25, Cost: 20},
	}

	army := Generate(tpls, 40)
	assert.Equal(t, map[string]int{"Archer": 2}, army.CountByType())
}

func TestGenerate_CopiesBonuses(t *testing.T) {
	tpls := []model.Unit{{UnitType: "Pikeman", Health: 1, BaseAttack: 1, Cost: 1, AttackBonuses: map[string]float64{"Knight": 2}}}

	army := Generate(tpls, 2)
	require.Len(t, army.Units, 2)

	army.Units[0].AttackBonuses["Knight"] = 5
	assert.Equal(t, 2.0, army.Units[1].AttackBonuses["Knight"])
	assert.Equal(t, 2.0, tpls[0].AttackBonuses["Knight"])
}

func TestMirror(t *testing.T) {
	army := Generate(templates(), 100)
	mirrored := Mirror(army)

	require.Len(t, mirrored.Units, len(army.Units))
	assert.Equal(t, army.Points, mirrored.Points)

	for i, u := range mirrored.Units {
		assert.Equal(t, model.FieldWidth-1-army.Units[i].X, u.X)
		assert.Equal(t, army.Units[i].Y, u.Y)
		assert.Equal(t, army.Units[i].Name, u.Name)
		assert.NotSame(t, army.Units[i], u)
	}

	assert.Empty(t, Mirror(nil).Units)
}
