package steiner

import (
	"sort"

	"github.com/trayweave/cableroute/grid"
)

// maxCandidateGroups bounds how many terminal neighborhoods local search
// considers per pass, keeping pass cost roughly linear in terminal count
// even on large networks.
const maxCandidateGroups = 50

// fullComponent is one candidate local restructuring: a small set of
// terminals reconnected through one or two new junction cells instead of
// through however the tree currently joins them.
type fullComponent struct {
	terminals     []grid.Cell
	steinerPoints []grid.Cell
}

// manhattan is the straight-line Manhattan distance, used only to rank
// candidate neighborhoods before any shortest-path search runs.
func manhattan(a, b grid.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// nearestOthers returns the k terminals (excluding t itself) closest to t
// by Manhattan distance, in increasing distance order.
func nearestOthers(t grid.Cell, all []grid.Cell, k int) []grid.Cell {
	type scored struct {
		c grid.Cell
		d int
	}
	cand := make([]scored, 0, len(all))
	for _, o := range all {
		if o == t {
			continue
		}
		cand = append(cand, scored{o, manhattan(t, o)})
	}
	sort.Slice(cand, func(i, j int) bool {
		if cand[i].d != cand[j].d {
			return cand[i].d < cand[j].d
		}
		if cand[i].c.X != cand[j].c.X {
			return cand[i].c.X < cand[j].c.X
		}

		return cand[i].c.Y < cand[j].c.Y
	})
	if k > len(cand) {
		k = len(cand)
	}
	out := make([]grid.Cell, k)
	for i := 0; i < k; i++ {
		out[i] = cand[i].c
	}

	return out
}

// groupKey produces a stable dedup key for a terminal group regardless of
// the order its members were discovered in.
func groupKey(group []grid.Cell) string {
	sorted := append([]grid.Cell(nil), group...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})
	key := make([]byte, 0, len(sorted)*8)
	for _, c := range sorted {
		key = append(key, byte(c.X), byte(c.X>>8), byte(c.Y), byte(c.Y>>8))
	}

	return string(key)
}

// isLShape is a cheap filter on a 3-terminal group {t1, t2, t3}, taken in
// the order generateCandidates builds it (the anchor terminal first, then
// its two nearest neighbors). It keeps the group when the L-path
// |t1.X-t2.X| + |t2.Y-t3.Y| is shorter than |t1.X-t3.X| + |t2.Y-t1.Y|.
// The result depends on member order; it is a heuristic pre-filter, not a
// colinearity test.
func isLShape(group []grid.Cell) bool {
	if len(group) != 3 {
		return false
	}
	t1, t2, t3 := group[0], group[1], group[2]

	return absInt(t1.X-t2.X)+absInt(t2.Y-t3.Y) < absInt(t1.X-t3.X)+absInt(t2.Y-t1.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// isOrthogonalDominant reports whether a 4-terminal group's bounding box is
// clearly elongated along one axis rather than roughly square: a near-square
// spread has no single dominant axis for a two-Steiner-point topology to
// follow.
func isOrthogonalDominant(group []grid.Cell) bool {
	if len(group) != 4 {
		return false
	}
	minX, maxX := group[0].X, group[0].X
	minY, maxY := group[0].Y, group[0].Y
	for _, c := range group[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	width, height := maxX-minX, maxY-minY
	if width == 0 || height == 0 {
		return false
	}
	ratio := float64(width) / float64(height)
	if ratio < 1 {
		ratio = 1 / ratio
	}

	return ratio >= 1.5
}

// generateCandidates builds network-grouped nearest-neighbor terminal
// sets: for every terminal, its two nearest neighbors form a 3-terminal
// group (kept only if isLShape accepts it) and its three nearest form a
// 4-terminal group (kept only if isOrthogonalDominant accepts it).
// Duplicate groups (the same terminal set discovered from a different
// anchor) are collapsed, and the total is capped at maxCandidateGroups so
// a dense network doesn't blow up pass cost.
func generateCandidates(terminals []grid.Cell) []fullComponent {
	if len(terminals) < 3 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []fullComponent

	add := func(group []grid.Cell) {
		if len(out) >= maxCandidateGroups {
			return
		}
		k := groupKey(group)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, fullComponent{terminals: group})
	}

	for _, t := range terminals {
		if nb := nearestOthers(t, terminals, 2); len(nb) == 2 {
			group := []grid.Cell{t, nb[0], nb[1]}
			if isLShape(group) {
				add(group)
			}
		}
		if nb := nearestOthers(t, terminals, 3); len(nb) == 3 {
			group := []grid.Cell{t, nb[0], nb[1], nb[2]}
			if isOrthogonalDominant(group) {
				add(group)
			}
		}
		if len(out) >= maxCandidateGroups {
			break
		}
	}

	return out
}

// medianCell returns the coordinate-wise median of group's cells, the
// natural meeting point for a 3-terminal star. 4-terminal groups use
// cornerCells instead.
func medianCell(group []grid.Cell) grid.Cell {
	xs := make([]int, len(group))
	ys := make([]int, len(group))
	for i, c := range group {
		xs[i], ys[i] = c.X, c.Y
	}
	sort.Ints(xs)
	sort.Ints(ys)

	return grid.Cell{X: xs[len(xs)/2], Y: ys[len(ys)/2]}
}

// cornerCells returns the two L-shaped corner points {X: a.X, Y: b.Y} and
// {X: b.X, Y: a.Y} joining a and b. A 4-terminal candidate takes the first
// corner of each of its two terminal pairs as its two junction points.
func cornerCells(a, b grid.Cell) (grid.Cell, grid.Cell) {
	return grid.Cell{X: a.X, Y: b.Y}, grid.Cell{X: b.X, Y: a.Y}
}

// nearestPassable finds a passable cell at or near want, spiraling
// outward up to maxRadius cells. Median/corner points computed from
// terminal coordinates can themselves land on a wall.
func nearestPassable(want grid.Cell, passable func(grid.Cell) bool, maxRadius int) (grid.Cell, bool) {
	if passable(want) {
		return want, true
	}
	for r := 1; r <= maxRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for _, dy := range []int{-r, r} {
				c := grid.Cell{X: want.X + dx, Y: want.Y + dy}
				if passable(c) {
					return c, true
				}
			}
		}
		for dy := -r + 1; dy <= r-1; dy++ {
			for _, dx := range []int{-r, r} {
				c := grid.Cell{X: want.X + dx, Y: want.Y + dy}
				if passable(c) {
					return c, true
				}
			}
		}
	}

	return grid.Cell{}, false
}
