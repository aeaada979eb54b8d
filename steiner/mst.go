package steiner

import (
	"sort"

	"github.com/trayweave/cableroute/core"
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/pathfind"
	"github.com/trayweave/cableroute/weightgraph"
)

// BuildMST grows a rectilinear Steiner tree approximation over terminals
// using lazy-Prim growth: starting from the first terminal, repeatedly
// find the nearest not-yet-connected terminal to the whole tree built so
// far (not merely to the other terminals), and fold in the shortest path
// to it.
//
// Steps:
//  1. Reject fewer than two terminals.
//  2. Seed the tree with the first terminal.
//  3. While unconnected terminals remain, sweep from every cell currently
//     in the tree to every unconnected terminal in one multi-source,
//     multi-target search, and adopt the cheapest result.
//  4. If a sweep finds nothing reachable, the terminals are not all
//     mutually connected: ErrDisconnected.
//
// Complexity: O(k) sweeps, each O((V+E) log V), where k is the terminal
// count — this is "lazy" Prim because the distance from the tree to every
// unconnected terminal is recomputed by a single sweep per step rather
// than maintained incrementally.
func BuildMST(wg *weightgraph.Graph, terminals []grid.Cell) (*MST, error) {
	if len(terminals) < 2 {
		return nil, ErrTooFewTerminals
	}

	routes, err := growTree(wg.Core(), terminals)
	if err != nil {
		return nil, err
	}

	return &MST{Terminals: append([]grid.Cell(nil), terminals...), Routes: routes}, nil
}

// growTree runs lazy-Prim growth over points against g, generalized so
// local search can reuse it both for the full terminal set (BuildMST) and
// for the smaller terminal subsets a candidate full component locally
// reconnects (the removed length in scoreCandidate).
func growTree(g *core.Graph, points []grid.Cell) ([]Route, error) {
	var routes []Route
	connected := map[grid.Cell]struct{}{points[0]: {}}
	pending := make(map[grid.Cell]struct{}, len(points)-1)
	for _, t := range points[1:] {
		pending[t] = struct{}{}
	}

	for len(pending) > 0 {
		sources := cellIDs(keys(connected))
		targets := cellIDs(keys(pending))

		bestID, cost, path, ok, err := pathfind.Nearest(g, sources, targets)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDisconnected
		}

		cells := make([]grid.Cell, len(path))
		for i, id := range path {
			cells[i] = weightgraph.ParseCellID(id)
		}
		routes = append(routes, Route{To: weightgraph.ParseCellID(bestID), Cells: cells, Cost: cost})
		for _, c := range cells {
			connected[c] = struct{}{}
		}
		delete(pending, weightgraph.ParseCellID(bestID))
	}

	return routes, nil
}

// keys returns m's cells in ascending (X,Y) order, not map iteration order:
// pathfind.Nearest's deterministic seq tie-break is assigned in the order
// sources/targets are pushed, so an unsorted slice here would make the
// chosen route (and everything downstream of it) vary run-to-run.
func keys(m map[grid.Cell]struct{}) []grid.Cell {
	out := make([]grid.Cell, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}

		return out[i].Y < out[j].Y
	})

	return out
}

func cellIDs(cells []grid.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = weightgraph.CellID(c)
	}

	return out
}

// edgeWeightLookup returns a stepWeight closure over g's directed edges,
// used by MST.weightedLength.
func edgeWeightLookup(g *core.Graph) func(from, to grid.Cell) float64 {
	return func(from, to grid.Cell) float64 {
		neighbors, err := g.Neighbors(weightgraph.CellID(from))
		if err != nil {
			return 0
		}
		toID := weightgraph.CellID(to)
		for _, e := range neighbors {
			if e.To == toID {
				return e.Weight
			}
		}

		return 0
	}
}
