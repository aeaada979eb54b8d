package sections

import "github.com/trayweave/cableroute/grid"

// buildDegree returns, for every cell touched by any route, the set of
// distinct neighbor cells it connects to across the whole route set
// (treated as undirected), by unioning each route's consecutive steps. A
// cell's degree is the size of its set.
func buildDegree(routes []MSTEdgeRoute) map[grid.Cell]map[grid.Cell]struct{} {
	adj := make(map[grid.Cell]map[grid.Cell]struct{})
	link := func(a, b grid.Cell) {
		if adj[a] == nil {
			adj[a] = make(map[grid.Cell]struct{})
		}
		adj[a][b] = struct{}{}
	}
	for _, r := range routes {
		for i := 1; i < len(r.Cells); i++ {
			a, b := r.Cells[i-1], r.Cells[i]
			link(a, b)
			link(b, a)
		}
	}

	return adj
}

// NaturalSteinerPoints returns every cell whose adjacency degree in the
// union of routes is three or more — a T-junction the tree passes
// through without it having been explicitly adopted as a Steiner point.
func NaturalSteinerPoints(routes []MSTEdgeRoute) []grid.Cell {
	adj := buildDegree(routes)
	var out []grid.Cell
	for c, neighbors := range adj {
		if len(neighbors) >= 3 {
			out = append(out, c)
		}
	}

	return out
}
