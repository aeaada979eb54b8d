package weightgraph

import (
	"github.com/trayweave/cableroute/core"
	"github.com/trayweave/cableroute/grid"
)

// Build constructs the weighted traversal graph for g at the given
// redCable strength. redCable must be in (0,1]; values outside that range
// return ErrBadRedCable. Only passable cells become vertices.
//
// Steps:
//  1. Validate inputs.
//  2. Add one vertex per passable cell.
//  3. For every passable cell and each in-bounds, passable 4-neighbour,
//     add a directed edge into the neighbour weighted by edgeWeight
//     evaluated on the neighbour's own distance-transform values (the cost
//     of a move is a property of the cell being entered, not left).
//
// Complexity: O(W*H). Concurrency: none; Build runs once per (grid,
// redCable) pair and the result is read-only thereafter.
func Build(g *grid.Grid, redCable float64) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if redCable <= 0 || redCable > 1 {
		return nil, ErrBadRedCable
	}

	cg := core.NewGraph()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if !g.Passable(c) {
				continue
			}
			_ = cg.AddVertex(CellID(c))
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if !g.Passable(c) {
				continue
			}
			for _, n := range g.Neighbors4(c) {
				if !g.Passable(n) {
					continue
				}
				w := edgeWeight(g.DistWall.At(n), g.DistTray.At(n), redCable)
				if _, err := cg.AddEdge(CellID(c), CellID(n), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Graph{RedCable: redCable, g: cg}, nil
}

// edgeWeight is the cost of moving into a cell whose distance to the
// nearest wall is dw and whose distance to the nearest tray is dt, at the
// given redCable strength.
//
// A cell already inside a tray (dt==0) at full redCable strength is free
// to traverse, reflecting that running alongside an existing tray carries
// no additional cost once the cable-bundling discount is fully applied.
func edgeWeight(dw, dt int32, redCable float64) float64 {
	switch {
	case dt == 0 && redCable == 1.0:
		return 0
	case dw == grid.InfDistance:
		return 10
	case dw == 0:
		return 100
	case dw == 1:
		return 3.5
	case dw == 2:
		return 5.5 * redCable
	case dw == 3:
		factor := redCable
		if redCable != 1.0 {
			factor = redCable / 2
		}

		return 7.0 * factor
	default:
		return 10 * redCable
	}
}
