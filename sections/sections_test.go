package sections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/sections"
	"github.com/trayweave/cableroute/weightgraph"
)

func cellsOf(coords ...[2]int) []grid.Cell {
	out := make([]grid.Cell, len(coords))
	for i, c := range coords {
		out[i] = grid.Cell{X: c[0], Y: c[1]}
	}

	return out
}

func TestNaturalSteinerPoints_DetectsTJunction(t *testing.T) {
	// Three routes meeting at (2,2): a plain T-junction.
	routes := []sections.MSTEdgeRoute{
		{Cells: cellsOf([2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})},
		{Cells: cellsOf([2]int{2, 2}, [2]int{3, 2}, [2]int{4, 2})},
		{Cells: cellsOf([2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4})},
	}
	got := sections.NaturalSteinerPoints(routes)
	require.Len(t, got, 1)
	assert.Equal(t, grid.Cell{X: 2, Y: 2}, got[0])
}

func TestExtract_SplitsAtNaturalPointAndAssignsCables(t *testing.T) {
	routes := []sections.MSTEdgeRoute{
		{Cells: cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})},
		{Cells: cellsOf([2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0})},
		{Cells: cellsOf([2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})},
	}
	cables := []sections.CableRoute{
		{ID: "c1", NetworkID: "power", Cells: cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0})},
		{ID: "c2", NetworkID: "power", Cells: cellsOf([2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})},
	}
	got := sections.Extract(routes, cables, "default")
	require.NotEmpty(t, got)

	totalCables := make(map[string]bool)
	for _, s := range got {
		for _, c := range s.Cables {
			totalCables[c] = true
		}
	}
	assert.True(t, totalCables["c1"])
	assert.True(t, totalCables["c2"])
}

func TestExtract_UnmatchedCableGetsFallbackSection(t *testing.T) {
	cables := []sections.CableRoute{
		{ID: "lonely", NetworkID: "", Cells: cellsOf([2]int{5, 5}, [2]int{5, 6})},
	}
	got := sections.Extract(nil, cables, "default-net")
	require.Len(t, got, 1)
	assert.Equal(t, "default-net", got[0].NetworkID)
	assert.Equal(t, []string{"lonely"}, got[0].Cables)
}

func TestReroute_NoCeilingReturnsOriginal(t *testing.T) {
	g, err := grid.NewGrid(5, 5, nil, nil, nil, 0.1)
	require.NoError(t, err)

	cache := weightgraph.NewCache(g)
	route := cellsOf([2]int{0, 0}, [2]int{1, 0})
	got, problem, err := sections.Reroute(cache, route, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0}, 0, 0.1, "c1")
	require.NoError(t, err)
	assert.Nil(t, problem)
	assert.Len(t, got, len(route))
}

func TestReroute_ReportsProblematicWhenUnfixable(t *testing.T) {
	// A wall forces a long detour that no redCable relaxation can shorten
	// below an impossibly tight ceiling.
	walls := make([]grid.Cell, 0, 8)
	for y := 0; y < 8; y++ {
		walls = append(walls, grid.Cell{X: 4, Y: y})
	}
	g, err := grid.NewGrid(10, 10, walls, nil, nil, 0.1)
	require.NoError(t, err)

	cache := weightgraph.NewCache(g)
	route := cellsOf([2]int{0, 0}, [2]int{0, 9}, [2]int{9, 9}, [2]int{9, 0})
	got, problem, err := sections.Reroute(cache, route, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 0}, 0.01, 0.1, "tight")
	require.NoError(t, err)
	require.NotNil(t, problem)
	assert.Equal(t, "tight", problem.CableID)
	assert.Greater(t, problem.ExcessLength, 0.0)
	assert.Len(t, got, len(route), "expected the original route to be kept when every reroute attempt fails")
}
