package steiner

import (
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/pathfind"
	"github.com/trayweave/cableroute/weightgraph"
)

// CablePath returns the route between from and to within m's finished
// tree, rather than a fresh shortest path over the whole weightgraph —
// every cable sharing a network ends up routed along the same shared
// backbone, which is what makes section sharing meaningful downstream.
func CablePath(m *MST, wg *weightgraph.Graph, from, to grid.Cell) (cost float64, path []grid.Cell, ok bool, err error) {
	treeG := buildTreeGraph(m, edgeWeightLookup(wg.Core()))
	c, ids, reached, perr := pathfind.ShortestPath(treeG, weightgraph.CellID(from), weightgraph.CellID(to))
	if perr != nil || !reached {
		return 0, nil, false, perr
	}
	cells := make([]grid.Cell, len(ids))
	for i, id := range ids {
		cells[i] = weightgraph.ParseCellID(id)
	}

	return c, cells, true, nil
}
