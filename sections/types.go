package sections

import "github.com/trayweave/cableroute/grid"

// MSTEdgeRoute is one edge of a finished Steiner tree: the cells of its
// realised shortest path, in order. Extract treats the union of many
// edges' steps as a single graph to find natural Steiner points.
type MSTEdgeRoute struct {
	Cells []grid.Cell
}

// CableRoute is one cable's own end-to-end routed path, used by Extract to
// decide section membership.
type CableRoute struct {
	ID        string
	NetworkID string
	Cells     []grid.Cell
}

// Section is a consecutive sub-path of a network's tree plus the set of
// cables whose routes both touch at least two of its cells.
type Section struct {
	NetworkID   string
	Points      []grid.Cell
	Cables      []string
	StrokeWidth float64
}

// strokeWidth implements the width-from-cable-count hint: a 4-unit base
// stroke that thickens with cable count, capped at +15 so a section with
// dozens of cables doesn't balloon off the canvas.
func strokeWidth(cableCount int) float64 {
	extra := float64(cableCount) * 0.75
	if extra > 15 {
		extra = 15
	}

	return 4 + extra
}
