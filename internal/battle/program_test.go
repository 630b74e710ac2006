package battle

import (
	"testing"

	"github.com/inovacc/heroes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamage(t *testing.T) {
	tests := []struct {
		name     string
		attacker model.Unit
		target   model.Unit
		want     int
	}{
		{
			name:     "no bonuses",
			attacker: model.Unit{BaseAttack: 20, AttackType: model.AttackMelee},
			target:   model.Unit{UnitType: "Archer"},
			want:     20,
		},
		{
			name:     "attack bonus against type",
			attacker: model.Unit{BaseAttack: 20, AttackType: model.AttackMelee, AttackBonuses: map[string]float64{"Knight": 1.5}},
			target:   model.Unit{UnitType: "Knight"},
			want:     30,
		},
		{
			name:     "defence against attack type",
			attacker: model.Unit{BaseAttack: 25, AttackType: model.AttackRanged},
			target:   model.Unit{UnitType: "Knight", DefenceBonuses: map[string]float64{"Ranged": 0.5}},
			want:     13,
		},
		{
			name:     "minimum one point",
			attacker: model.Unit{BaseAttack: 1, AttackType: model.AttackRanged},
			target:   model.Unit{DefenceBonuses: map[string]float64{"Ranged": 0.1}},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Damage(&tt.attacker, &tt.target))
		})
	}
}

func TestUnitProgram_RangedHitsClosestExposed(t *testing.T) {
	archer := &model.Unit{Name: "Archer 1", UnitType: "Archer", Health: 30, BaseAttack: 10, AttackType: model.AttackRanged, X: 25, Y: 4, Alive: true}
	player := &model.Army{Units: []*model.Unit{archer}}

	near := &model.Unit{Name: "near", Health: 50, X: 2, Y: 4, Alive: true}
	far := &model.Unit{Name: "far", Health: 5, X: 1, Y: 0, Alive: true}
	hidden := &model.Unit{Name: "hidden", Health: 1, X: 2, Y: 6, Alive: true}
	computer := &model.Army{Units: []*model.Unit{near, far, hidden}}

	Arm(player, computer)

	target, err := archer.Program.Attack()
	require.NoError(t, err)
	require.Same(t, near, target)
	assert.Equal(t, 40, near.Health)
	assert.Equal(t, 1, hidden.Health)
}

func TestUnitProgram_TiesBrokenByHealth(t *testing.T) {
	archer := &model.Unit{Name: "a", BaseAttack: 10, AttackType: model.AttackRanged, X: 24, Y: 0, Alive: true}

	healthy := &model.Unit{Name: "healthy", Health: 50, X: 1, Y: 0, Alive: true}
	wounded := &model.Unit{Name: "wounded", Health: 20, X: 2, Y: 0, Alive: true}

	player := &model.Army{Units: []*model.Unit{archer}}
	computer := &model.Army{Units: []*model.Unit{healthy, wounded}}

	Arm(player, computer)

	// distances 23 and 22, so the closer one wins regardless of health
	target, err := archer.Program.Attack()
	require.NoError(t, err)
	assert.Same(t, wounded, target)

	// both on the same cell: same column edge, same distance
	healthy.X = 2

	target, err = archer.Program.Attack()
	require.NoError(t, err)
	assert.Same(t, wounded, target, "equal distance prefers lower health")
}

func TestUnitProgram_MeleeNeedsPath(t *testing.T) {
	knight := &model.Unit{Name: "Knight 1", BaseAttack: 10, AttackType: model.AttackMelee, X: 0, Y: 0, Alive: true}
	guards := []*model.Unit{
		{Name: "g1", X: 1, Y: 0, Alive: true},
		{Name: "g2", X: 0, Y: 1, Alive: true},
		{Name: "g3", X: 1, Y: 1, Alive: true},
	}

	computer := &model.Army{Units: append([]*model.Unit{knight}, guards...)}
	enemy := &model.Unit{Name: "enemy", Health: 30, X: 24, Y: 0, Alive: true}
	player := &model.Army{Units: []*model.Unit{enemy}}

	Arm(player, computer)

	target, err := knight.Program.Attack()
	require.NoError(t, err)
	assert.Nil(t, target)
	assert.Equal(t, 30, enemy.Health)

	guards[0].Alive = false

	target, err = knight.Program.Attack()
	require.NoError(t, err)
	assert.Same(t, enemy, target)
	assert.Equal(t, 20, enemy.Health)
}

func TestUnitProgram_DeadUnitDoesNothing(t *testing.T) {
	u := &model.Unit{Name: "ghost", BaseAttack: 10, Alive: false}
	enemy := &model.Unit{Name: "e", Health: 10, X: 24, Alive: true}

	Arm(&model.Army{Units: []*model.Unit{u}}, &model.Army{Units: []*model.Unit{enemy}})

	target, err := u.Program.Attack()
	require.NoError(t, err)
	assert.Nil(t, target)
	assert.Equal(t, 10, enemy.Health)
}

func TestUnitProgram_KillsTarget(t *testing.T) {
	u := &model.Unit{Name: "u", BaseAttack: 100, AttackType: model.AttackRanged, X: 25, Alive: true}
	enemy := &model.Unit{Name: "e", Health: 10, X: 0, Alive: true}

	Arm(&model.Army{Units: []*model.Unit{u}}, &model.Army{Units: []*model.Unit{enemy}})

	target, err := u.Program.Attack()
	require.NoError(t, err)
	require.Same(t, enemy, target)
	assert.False(t, enemy.Alive)

	target, err = u.Program.Attack()
	require.NoError(t, err)
	assert.Nil(t, target)
}
