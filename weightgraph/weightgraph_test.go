package weightgraph_test

import (
	"testing"

	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/weightgraph"
)

func TestBuild_RejectsBadRedCable(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if _, err := weightgraph.Build(g, 0); err != weightgraph.ErrBadRedCable {
		t.Fatalf("expected ErrBadRedCable for 0, got %v", err)
	}
	if _, err := weightgraph.Build(g, 1.5); err != weightgraph.ErrBadRedCable {
		t.Fatalf("expected ErrBadRedCable for 1.5, got %v", err)
	}
}

func TestBuild_RejectsNilGrid(t *testing.T) {
	if _, err := weightgraph.Build(nil, 1); err != weightgraph.ErrNilGrid {
		t.Fatalf("expected ErrNilGrid, got %v", err)
	}
}

func TestBuild_EveryPassableCellIsAVertex(t *testing.T) {
	g, err := grid.NewGrid(4, 4, []grid.Cell{{X: 1, Y: 1}}, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	wg, err := weightgraph.Build(g, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := grid.Cell{X: x, Y: y}
			want := g.Passable(c)
			got := wg.HasCell(c)
			if got != want {
				t.Fatalf("cell %+v: HasCell=%v, Passable=%v", c, got, want)
			}
		}
	}
}

func TestBuild_DirectedEdgesCanDiffer(t *testing.T) {
	// A tray cell next to a non-tray cell: entering the tray cell at full
	// redCable is free, entering the plain cell back out is not, so the
	// two directions of the same adjacency must carry different weights.
	g, err := grid.NewGrid(2, 1, nil, nil, []grid.Cell{{X: 0, Y: 0}}, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	wg, err := weightgraph.Build(g, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cg := wg.Core()

	into0, err := cg.Neighbors("1,0")
	if err != nil {
		t.Fatalf("Neighbors(1,0): %v", err)
	}
	into1, err := cg.Neighbors("0,0")
	if err != nil {
		t.Fatalf("Neighbors(0,0): %v", err)
	}
	if len(into0) != 1 || len(into1) != 1 {
		t.Fatalf("expected exactly one outgoing edge each way, got %d and %d", len(into0), len(into1))
	}
	if into0[0].Weight == into1[0].Weight {
		t.Fatalf("expected asymmetric weights entering the tray vs leaving it, both were %v", into0[0].Weight)
	}
}

func TestBuild_AllWallsYieldsEmptyGraph(t *testing.T) {
	walls := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	g, err := grid.NewGrid(2, 1, walls, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	wg, err := weightgraph.Build(g, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if wg.Core().VertexCount() != 0 {
		t.Fatalf("expected 0 vertices, got %d", wg.Core().VertexCount())
	}
}

func TestCache_ReturnsSameGraphInstanceForSameRedCable(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	c := weightgraph.NewCache(g)
	a, err := c.GetOrBuild(0.75)
	if err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	b, err := c.GetOrBuild(0.75)
	if err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	if a != b {
		t.Fatal("expected cached Graph to be reused for the same redCable")
	}
	d, err := c.GetOrBuild(0.5)
	if err != nil {
		t.Fatalf("GetOrBuild: %v", err)
	}
	if d == a {
		t.Fatal("expected a distinct Graph for a different redCable")
	}
}
