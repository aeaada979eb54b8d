package steiner

import (
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/weightgraph"
)

// Route is one shortest-path leg of the tree: the cells from a point
// already in the tree to a newly-connected terminal, inclusive of both
// endpoints.
type Route struct {
	To    grid.Cell
	Cells []grid.Cell
	Cost  float64
}

// MST is the accumulated rectilinear Steiner tree approximation: the
// terminals it spans, the routes grown to connect them, and any
// additional junction cells adopted by local search.
type MST struct {
	Terminals     []grid.Cell
	Routes        []Route
	SteinerPoints []grid.Cell
}

// Cells returns every cell occupied by the tree, each listed once
// regardless of how many routes pass through it.
func (m *MST) Cells() []grid.Cell {
	seen := make(map[grid.Cell]struct{})
	out := make([]grid.Cell, 0, len(m.Routes)*4)
	for _, r := range m.Routes {
		for _, c := range r.Cells {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

// TotalLength is the tree's deduplicated weighted length against wg,
// suitable for debug_info.initial_mst_length / final_length.
func (m *MST) TotalLength(wg *weightgraph.Graph) float64 {
	return m.weightedLength(edgeWeightLookup(wg.Core()))
}

// cellSet is the same information as Cells but as a lookup set, used
// internally by gain scoring to test membership without a linear scan.
func (m *MST) cellSet() map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{})
	for _, r := range m.Routes {
		for _, c := range r.Cells {
			set[c] = struct{}{}
		}
	}

	return set
}

// edgeKey identifies one directed traversal step, used to deduplicate
// weighted length across overlapping routes.
type edgeKey struct {
	from, to grid.Cell
}

// weightedLength sums the entering weight of every unique directed step
// across all routes, counting a step shared by two routes once. This is
// the tray-aware notion of "length": if two cables run through the same
// physical cells, that stretch of tray is built once.
func (m *MST) weightedLength(stepWeight func(from, to grid.Cell) float64) float64 {
	return m.weightedLengthExcluding(stepWeight, nil)
}

// weightedLengthExcluding is weightedLength, but any step landing on a
// cell already present in skip is free — it reuses tray that exists
// elsewhere in the network rather than adding new length.
func (m *MST) weightedLengthExcluding(stepWeight func(from, to grid.Cell) float64, skip map[grid.Cell]struct{}) float64 {
	seen := make(map[edgeKey]struct{})
	var total float64
	for _, r := range m.Routes {
		for i := 1; i < len(r.Cells); i++ {
			k := edgeKey{from: r.Cells[i-1], to: r.Cells[i]}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if skip != nil {
				if _, reused := skip[k.to]; reused {
					continue
				}
			}
			total += stepWeight(k.from, k.to)
		}
	}

	return total
}
