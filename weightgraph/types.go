package weightgraph

import (
	"strconv"
	"strings"

	"github.com/trayweave/cableroute/core"
	"github.com/trayweave/cableroute/grid"
)

// Graph is a weighted grid graph: a *core.Graph whose vertex IDs are
// "x,y"-encoded passable cells of some grid.Grid, with directed edge
// weights computed for a fixed redCable.
type Graph struct {
	RedCable float64

	g *core.Graph
}

// CellID formats the core.Graph vertex ID for c. Kept in one place, as
// gridgraph.vertexID does, so every caller — including pathfind and
// steiner, which operate on the bare *core.Graph — agrees on the
// encoding.
func CellID(c grid.Cell) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.Y))

	return b.String()
}

// ParseCellID reverses CellID. It does not validate its input, since IDs
// in this domain are only ever produced by CellID itself: an ID without a
// comma panics, and a non-numeric coordinate parses as 0.
func ParseCellID(id string) grid.Cell {
	comma := strings.IndexByte(id, ',')
	x, _ := strconv.Atoi(id[:comma])
	y, _ := strconv.Atoi(id[comma+1:])

	return grid.Cell{X: x, Y: y}
}

// HasCell reports whether c is a vertex of the graph (i.e. was passable in
// the source grid).
func (w *Graph) HasCell(c grid.Cell) bool {
	return w.g.HasVertex(CellID(c))
}

// Core exposes the underlying *core.Graph for packages (pathfind, steiner)
// that traverse it directly; Graph itself owns no traversal logic.
func (w *Graph) Core() *core.Graph {
	return w.g
}
