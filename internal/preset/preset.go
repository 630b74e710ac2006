// Package preset builds computer army presets from unit templates.
package preset

import (
	"fmt"
	"sort"

	"github.com/inovacc/heroes/internal/model"
)

// MaxUnitsPerType caps how many units of one template an army may hold.
const MaxUnitsPerType = 11

// Generate greedily fills an army within maxPoints. Templates are ranked by
// attack per point, then health per point; every iteration adds one unit of
// the best template that is still under its cap and affordable.
//
// Units are laid out row by row in the computer columns: the n-th unit goes
// to x = n % ArmyWidth, y = n / ArmyWidth.
func Generate(templates []model.Unit, maxPoints int) *model.Army {
	army := &model.Army{Units: []*model.Unit{}}

	if len(templates) == 0 || maxPoints <= 0 {
		return army
	}

	ranked := rank(templates)
	counts := make(map[string]int, len(ranked))

	points := 0
	index := 0
	added := true

	for added && points < maxPoints {
		added = false

		for _, tpl := range ranked {
			count := counts[tpl.UnitType]
			if count >= MaxUnitsPerType {
				continue
			}

			if points+tpl.Cost > maxPoints {
				continue
			}

			x := index % model.ArmyWidth
			y := index / model.ArmyWidth

			if y >= model.FieldHeight {
				break
			}

			name := fmt.Sprintf("%s %d", tpl.UnitType, count+1)
			army.Units = append(army.Units, model.NewUnit(tpl, name, x, y))

			points += tpl.Cost
			counts[tpl.UnitType] = count + 1
			index++
			added = true

			// restart from the best template
			break
		}
	}

	army.Points = points

	return army
}

func rank(templates []model.Unit) []model.Unit {
	ranked := make([]model.Unit, 0, len(templates))

	for _, t := range templates {
		if t.Cost > 0 {
			ranked = append(ranked, t)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		atkA := float64(a.BaseAttack) / float64(a.Cost)
		atkB := float64(b.BaseAttack) / float64(b.Cost)

		if atkA != atkB {
			return atkA > atkB
		}

		return float64(a.Health)/float64(a.Cost) > float64(b.Health)/float64(b.Cost)
	})

	return ranked
}

// Mirror returns a copy of army placed on the player side of the field.
// Columns are reflected, rows and names are kept.
func Mirror(army *model.Army) *model.Army {
	if army == nil {
		return &model.Army{Units: []*model.Unit{}}
	}

	out := army.Clone()

	for _, u := range out.Units {
		u.X = model.FieldWidth - 1 - u.X
	}

	return out
}
