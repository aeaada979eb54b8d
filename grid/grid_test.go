package grid_test

import (
	"testing"

	"github.com/trayweave/cableroute/grid"
)

func TestNewGrid_PerforationOverridesWall(t *testing.T) {
	walls := []grid.Cell{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}}
	perforations := []grid.Cell{{X: 2, Y: 2}}
	g, err := grid.NewGrid(5, 5, walls, perforations, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if !g.Passable(grid.Cell{X: 2, Y: 2}) {
		t.Fatal("perforated cell should be passable")
	}
	if g.Passable(grid.Cell{X: 0, Y: 2}) {
		t.Fatal("non-perforated wall cell should be blocked")
	}
}

func TestNewGrid_RejectsBadDimensions(t *testing.T) {
	if _, err := grid.NewGrid(0, 5, nil, nil, nil, 0.1); err != grid.ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewGrid_DefaultResolution(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil, nil, nil, 0)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.GridResolution != grid.DefaultResolution {
		t.Fatalf("expected default resolution %v, got %v", grid.DefaultResolution, g.GridResolution)
	}
}

func TestDistanceMap_NoWalls(t *testing.T) {
	g, err := grid.NewGrid(4, 4, nil, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.DistWall.At(grid.Cell{X: 0, Y: 0}) != grid.InfDistance {
		t.Fatal("expected InfDistance with no walls present")
	}
}

func TestDistanceMap_BlockedCellsStillMeasured(t *testing.T) {
	walls := []grid.Cell{{X: 2, Y: 2}}
	g, err := grid.NewGrid(5, 5, walls, nil, nil, 0.1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	// The wall cell itself is distance 0 from itself, even though it is blocked.
	if d := g.DistWall.At(grid.Cell{X: 2, Y: 2}); d != 0 {
		t.Fatalf("expected distance 0 at the wall cell itself, got %d", d)
	}
	if d := g.DistWall.At(grid.Cell{X: 0, Y: 2}); d != 2 {
		t.Fatalf("expected Manhattan distance 2, got %d", d)
	}
}

func TestGrid_Neighbors4Order(t *testing.T) {
	g, _ := grid.NewGrid(5, 5, nil, nil, nil, 0.1)
	got := g.Neighbors4(grid.Cell{X: 2, Y: 2})
	want := []grid.Cell{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors4 order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestGrid_BoundaryIsNotAWall(t *testing.T) {
	g, _ := grid.NewGrid(3, 3, nil, nil, nil, 0.1)
	corner := grid.Cell{X: 0, Y: 0}
	if len(g.Neighbors4(corner)) != 2 {
		t.Fatalf("corner cell should have 2 in-bounds neighbors, got %d", len(g.Neighbors4(corner)))
	}
	if !g.Passable(corner) {
		t.Fatal("boundary cells must be passable absent an explicit wall")
	}
}
