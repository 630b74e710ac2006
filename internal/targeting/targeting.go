// Package targeting decides which enemy units are exposed to attack.
//
// A unit is exposed when no other living unit of its own army covers it
// inside its row. Rows are scanned independently; within a row the edge is
// the smallest Y when the left army is the target and the largest Y when the
// right army is.
package targeting

import (
	"sort"

	"github.com/inovacc/heroes/internal/model"
)

// SuitableUnits returns every living unit standing on the exposed edge of
// its row. Ties on the edge are all returned, rows are visited in order.
func SuitableUnits(unitsByRow [][]*model.Unit, leftArmyTarget bool) []*model.Unit {
	result := make([]*model.Unit, 0)

	for _, row := range unitsByRow {
		edge, ok := edgeY(row, leftArmyTarget)
		if !ok {
			continue
		}

		for _, u := range row {
			if u != nil && u.Alive && u.Y == edge {
				result = append(result, u)
			}
		}
	}

	return result
}

func edgeY(row []*model.Unit, leftArmyTarget bool) (int, bool) {
	var (
		edge  int
		found bool
	)

	for _, u := range row {
		if u == nil || !u.Alive {
			continue
		}

		switch {
		case !found:
			edge, found = u.Y, true
		case leftArmyTarget && u.Y < edge:
			edge = u.Y
		case !leftArmyTarget && u.Y > edge:
			edge = u.Y
		}
	}

	return edge, found
}

// GroupByColumn splits units into rows of equal X, ordered by X. Input order
// is kept inside each row.
func GroupByColumn(units []*model.Unit) [][]*model.Unit {
	byX := make(map[int][]*model.Unit)

	for _, u := range units {
		if u != nil {
			byX[u.X] = append(byX[u.X], u)
		}
	}

	xs := make([]int, 0, len(byX))
	for x := range byX {
		xs = append(xs, x)
	}

	sort.Ints(xs)

	rows := make([][]*model.Unit, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, byX[x])
	}

	return rows
}

// IsLeftArmy reports whether the army stands on the computer (left) side.
// An army with no units counts as left.
func IsLeftArmy(army *model.Army) bool {
	if army == nil {
		return true
	}

	for _, u := range army.Units {
		if u != nil {
			return u.X < model.FieldWidth/2
		}
	}

	return true
}
