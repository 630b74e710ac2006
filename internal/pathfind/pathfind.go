// Package pathfind finds shortest routes between cells of the battlefield.
//
// Movement is 8-directional and every step costs the same, so a breadth-first
// search gives the shortest path. Directions are expanded in a fixed order,
// which makes the chosen path deterministic when several are equally short.
package pathfind

import (
	"github.com/inovacc/heroes/internal/model"
)

var directions = [8]model.Edge{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// FindPath returns the cells from attacker to target, both included.
// Living units in existing act as obstacles, except the attacker and the
// target themselves. An empty path means the target cannot be reached.
func FindPath(attacker, target *model.Unit, existing []*model.Unit) []model.Edge {
	if attacker == nil || target == nil {
		return []model.Edge{}
	}

	blocked := make(map[model.Edge]struct{}, len(existing))

	for _, u := range existing {
		if u == nil || u == attacker || u == target || !u.Alive {
			continue
		}

		blocked[u.Cell()] = struct{}{}
	}

	return search(attacker.Cell(), target.Cell(), blocked)
}

// FindPathBetween runs the same search on raw cells.
func FindPathBetween(from, to model.Edge, obstacles []model.Edge) []model.Edge {
	blocked := make(map[model.Edge]struct{}, len(obstacles))

	for _, e := range obstacles {
		if e != from && e != to {
			blocked[e] = struct{}{}
		}
	}

	return search(from, to, blocked)
}

func search(start, end model.Edge, blocked map[model.Edge]struct{}) []model.Edge {
	if start == end {
		return []model.Edge{start}
	}

	parent := map[model.Edge]model.Edge{}
	visited := map[model.Edge]bool{start: true}
	queue := []model.Edge{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			return reconstruct(parent, start, end)
		}

		for _, d := range directions {
			next := model.Edge{X: curr.X + d.X, Y: curr.Y + d.Y}

			if !next.InField() || visited[next] {
				continue
			}

			if _, ok := blocked[next]; ok {
				continue
			}

			visited[next] = true
			parent[next] = curr
			queue = append(queue, next)
		}
	}

	return []model.Edge{}
}

func reconstruct(parent map[model.Edge]model.Edge, start, end model.Edge) []model.Edge {
	path := []model.Edge{end}

	for curr := end; curr != start; {
		curr = parent[curr]
		path = append(path, curr)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distance is the number of steps of a path, or -1 if it is empty.
func Distance(path []model.Edge) int {
	return len(path) - 1
}
