package model

// Army is an ordered set of units and the points spent on them.
type Army struct {
	Units  []*Unit `json:"units" yaml:"units"`
	Points int     `json:"points" yaml:"points"`
}

// HasAliveUnits reports whether at least one unit is still alive.
// A nil army has none.
func (a *Army) HasAliveUnits() bool {
	if a == nil {
		return false
	}

	for _, u := range a.Units {
		if u != nil && u.Alive {
			return true
		}
	}

	return false
}

// AliveUnits returns the living units in army order.
func (a *Army) AliveUnits() []*Unit {
	if a == nil {
		return nil
	}

	out := make([]*Unit, 0, len(a.Units))

	for _, u := range a.Units {
		if u != nil && u.Alive {
			out = append(out, u)
		}
	}

	return out
}

// Clone returns a deep copy of the army. Programs are not copied.
func (a *Army) Clone() *Army {
	if a == nil {
		return nil
	}

	c := &Army{Points: a.Points, Units: make([]*Unit, 0, len(a.Units))}

	for _, u := range a.Units {
		if u != nil {
			c.Units = append(c.Units, u.Clone())
		}
	}

	return c
}

// CountByType returns how many units of each type the army holds.
func (a *Army) CountByType() map[string]int {
	counts := make(map[string]int)

	if a == nil {
		return counts
	}

	for _, u := range a.Units {
		if u != nil {
			counts[u.UnitType]++
		}
	}

	return counts
}
