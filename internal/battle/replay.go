package battle

import "github.com/inovacc/heroes/internal/model"

// Replay applies recorded attacks to the armies in order. The target of an
// entry is looked up by name in the army opposing the attacker. Entries
// without a target or naming an unknown unit are ignored.
func Replay(player, computer *model.Army, entries []model.LogEntry) {
	byName := func(army *model.Army) map[string]*model.Unit {
		m := make(map[string]*model.Unit)

		if army == nil {
			return m
		}

		for _, u := range army.Units {
			if u != nil {
				m[u.Name] = u
			}
		}

		return m
	}

	players := byName(player)
	computers := byName(computer)

	for _, e := range entries {
		if e.Target == "" {
			continue
		}

		var target *model.Unit

		switch e.AttackerSide {
		case model.SidePlayer:
			target = computers[e.Target]
		case model.SideComputer:
			target = players[e.Target]
		}

		if target == nil {
			continue
		}

		target.Health = e.TargetHealth
		target.Alive = e.TargetAlive
	}
}
