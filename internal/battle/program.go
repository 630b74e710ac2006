package battle

import (
	"math"

	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/pathfind"
	"github.com/inovacc/heroes/internal/targeting"
)

// UnitProgram is the default attack behaviour. The unit picks an exposed
// enemy and hits it without moving. Melee units need a free path to the
// target; ranged units shoot over everything.
type UnitProgram struct {
	unit    *model.Unit
	friends *model.Army
	enemies *model.Army
}

// NewUnitProgram binds a program to unit fighting for friends against enemies.
func NewUnitProgram(unit *model.Unit, friends, enemies *model.Army) *UnitProgram {
	return &UnitProgram{unit: unit, friends: friends, enemies: enemies}
}

// Arm installs a default program on every unit of both armies.
func Arm(player, computer *model.Army) {
	for _, u := range player.Units {
		if u != nil {
			u.Program = NewUnitProgram(u, player, computer)
		}
	}

	for _, u := range computer.Units {
		if u != nil {
			u.Program = NewUnitProgram(u, computer, player)
		}
	}
}

// Attack hits the closest exposed enemy and returns it, or nil when nothing
// can be attacked.
func (p *UnitProgram) Attack() (*model.Unit, error) {
	if !p.unit.Alive {
		return nil, nil
	}

	target := p.chooseTarget()
	if target == nil {
		return nil, nil
	}

	target.TakeDamage(Damage(p.unit, target))

	return target, nil
}

func (p *UnitProgram) chooseTarget() *model.Unit {
	enemies := p.enemies.AliveUnits()
	candidates := targeting.SuitableUnits(targeting.GroupByColumn(enemies), targeting.IsLeftArmy(p.enemies))

	var obstacles []*model.Unit
	if p.unit.AttackType != model.AttackRanged {
		obstacles = append(p.friends.AliveUnits(), enemies...)
	}

	var (
		best     *model.Unit
		bestDist int
	)

	for _, c := range candidates {
		var dist int

		if p.unit.AttackType == model.AttackRanged {
			dist = chebyshev(p.unit.Cell(), c.Cell())
		} else {
			dist = pathfind.Distance(pathfind.FindPath(p.unit, c, obstacles))
			if dist < 0 {
				continue
			}
		}

		if best == nil || preferred(c, dist, best, bestDist) {
			best, bestDist = c, dist
		}
	}

	return best
}

// preferred orders candidates by distance, then remaining health, then name.
func preferred(c *model.Unit, dist int, best *model.Unit, bestDist int) bool {
	if dist != bestDist {
		return dist < bestDist
	}

	if c.Health != best.Health {
		return c.Health < best.Health
	}

	return c.Name < best.Name
}

// Damage is the attacker's base attack scaled by its bonus against the
// target type and the target's bonus against the attack type. Every hit
// deals at least one point.
func Damage(attacker, target *model.Unit) int {
	raw := float64(attacker.BaseAttack) *
		attacker.AttackBonus(target.UnitType) *
		target.DefenceBonus(attacker.AttackType)

	return max(1, int(math.Round(raw)))
}

func chebyshev(a, b model.Edge) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}

	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return max(dx, dy)
}
