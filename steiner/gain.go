package steiner

import (
	"github.com/trayweave/cableroute/core"
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/pathfind"
	"github.com/trayweave/cableroute/weightgraph"
)

// candidateSnapRadius bounds how far a median or corner point may be
// nudged to land on a passable cell before the candidate is abandoned.
const candidateSnapRadius = 5

// buildCandidateRoutes materializes cand's junction cell(s) and the legs
// connecting them to cand's terminals. ok is false if no passable cell
// could be found near a proposed junction.
func buildCandidateRoutes(wg *weightgraph.Graph, cand fullComponent) (steinerPoints []grid.Cell, routes []Route, ok bool, err error) {
	g := wg.Core()

	leg := func(from, to grid.Cell) (Route, bool, error) {
		cost, path, reached, lerr := pathfind.ShortestPath(g, weightgraph.CellID(from), weightgraph.CellID(to))
		if lerr != nil || !reached {
			return Route{}, false, lerr
		}
		cells := make([]grid.Cell, len(path))
		for i, id := range path {
			cells[i] = weightgraph.ParseCellID(id)
		}

		return Route{To: to, Cells: cells, Cost: cost}, true, nil
	}

	switch len(cand.terminals) {
	case 3:
		sp, snapped := nearestPassable(medianCell(cand.terminals), wg.HasCell, candidateSnapRadius)
		if !snapped {
			return nil, nil, false, nil
		}
		for _, t := range cand.terminals {
			r, reached, lerr := leg(sp, t)
			if lerr != nil {
				return nil, nil, false, lerr
			}
			if !reached {
				return nil, nil, false, nil
			}
			routes = append(routes, r)
		}

		return []grid.Cell{sp}, routes, true, nil

	case 4:
		c1, _ := cornerCells(cand.terminals[0], cand.terminals[1])
		c2, _ := cornerCells(cand.terminals[2], cand.terminals[3])
		sp1, ok1 := nearestPassable(c1, wg.HasCell, candidateSnapRadius)
		sp2, ok2 := nearestPassable(c2, wg.HasCell, candidateSnapRadius)
		if !ok1 || !ok2 {
			return nil, nil, false, nil
		}
		legsWanted := [][2]grid.Cell{
			{sp1, cand.terminals[0]},
			{sp1, cand.terminals[1]},
			{sp2, cand.terminals[2]},
			{sp2, cand.terminals[3]},
			{sp1, sp2},
		}
		for _, lw := range legsWanted {
			r, reached, lerr := leg(lw[0], lw[1])
			if lerr != nil {
				return nil, nil, false, lerr
			}
			if !reached {
				return nil, nil, false, nil
			}
			routes = append(routes, r)
		}

		return []grid.Cell{sp1, sp2}, routes, true, nil

	default:
		return nil, nil, false, nil
	}
}

// buildTreeGraph materializes m's current cells and routes as a
// standalone core.Graph, so growTree can compute the length of the
// sub-tree spanning an arbitrary terminal subset without touching the
// full weightgraph.
func buildTreeGraph(m *MST, stepWeight func(from, to grid.Cell) float64) *core.Graph {
	g := core.NewGraph()
	seen := make(map[edgeKey]struct{})
	for _, r := range m.Routes {
		for i := 1; i < len(r.Cells); i++ {
			from, to := r.Cells[i-1], r.Cells[i]
			for _, k := range [2]edgeKey{{from, to}, {to, from}} {
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				_, _ = g.AddEdge(weightgraph.CellID(k.from), weightgraph.CellID(k.to), stepWeight(k.from, k.to))
			}
		}
	}

	return g
}

// scoreCandidate builds cand's junction cell(s) and legs, then computes
// its gain: the weighted length the current tree spends connecting
// cand's terminals to each other, minus the weighted length cand would
// newly add (cells it can reuse from the existing tree are free).
func scoreCandidate(wg *weightgraph.Graph, m *MST, cand fullComponent) (gain float64, steinerPoints []grid.Cell, routes []Route, ok bool, err error) {
	steinerPoints, routes, ok, err = buildCandidateRoutes(wg, cand)
	if err != nil || !ok {
		return 0, nil, nil, false, err
	}

	stepWeight := edgeWeightLookup(wg.Core())

	treeG := buildTreeGraph(m, stepWeight)
	removedRoutes, rerr := growTree(treeG, cand.terminals)
	if rerr != nil {
		return 0, nil, nil, false, nil
	}
	removed := (&MST{Routes: removedRoutes}).weightedLength(stepWeight)

	added := (&MST{Routes: routes}).weightedLengthExcluding(stepWeight, m.cellSet())

	return removed - added, steinerPoints, routes, true, nil
}
