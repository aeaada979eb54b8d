package grid

import "math"

// InfDistance marks a cell with no reachable seed.
const InfDistance = math.MaxInt32

// DistanceMap holds, for every cell, the Manhattan distance to the nearest
// seed cell used to build it (InfDistance if no seed is reachable).
// Immutable once built.
type DistanceMap struct {
	Width, Height int
	dist          []int32
}

// At returns the distance stored for c, or InfDistance if c is out of
// bounds (defensive default; callers are expected to pass in-bounds cells).
func (d *DistanceMap) At(c Cell) int32 {
	if c.X < 0 || c.X >= d.Width || c.Y < 0 || c.Y >= d.Height {
		return InfDistance
	}

	return d.dist[c.Y*d.Width+c.X]
}

// bfsDistance runs a multi-source BFS from seeds over every cell in the
// grid (4-connectivity), including blocked cells: the distance transform
// answers "how far is this cell from the nearest wall/tray", not "is there
// a path to it", so passability is deliberately not consulted here.
//
// Complexity: O(width*height).
func bfsDistance(g *Grid, seeds []Cell) *DistanceMap {
	n := g.Width * g.Height
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = InfDistance
	}

	queue := make([]Cell, 0, len(seeds))
	for _, s := range seeds {
		idx := s.Y*g.Width + s.X
		if dist[idx] != InfDistance {
			continue // duplicate seed
		}
		dist[idx] = 0
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		ud := dist[u.Y*g.Width+u.X]
		for _, v := range g.Neighbors4(u) {
			vi := v.Y*g.Width + v.X
			if dist[vi] != InfDistance {
				continue
			}
			dist[vi] = ud + 1
			queue = append(queue, v)
		}
	}

	return &DistanceMap{Width: g.Width, Height: g.Height, dist: dist}
}
