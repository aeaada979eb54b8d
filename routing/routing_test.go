package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/internal/fixtures"
	"github.com/trayweave/cableroute/routing"
)

func TestRouteGrid_SingleMachineNoCables(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  3,
		Height: 3,
		Machines: map[string]routing.Machine{
			"M1": {X: 0, Y: 0},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, resp.Sections)
	assert.Empty(t, resp.CableRoutes)
}

func TestRouteGrid_TwoMachinesStraightCorridor(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  5,
		Height: 1,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 0},
			"B": {X: 4, Y: 0},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "B", CableFunction: "power"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	route, ok := resp.CableRoutes["C1"]
	require.True(t, ok, "expected a route for C1")
	assert.Len(t, route, 5, "expected a straight 5-cell route")
	assert.Len(t, resp.Sections, 1)
	assert.NotEmpty(t, resp.DebugInfo.RequestID)
}

func TestRouteGrid_UnknownMachineDropsCableWithWarning(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  3,
		Height: 3,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 0},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "GHOST"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	_, ok := resp.CableRoutes["C1"]
	assert.False(t, ok, "expected C1 to be dropped, not routed")
	assert.NotEmpty(t, resp.Warnings)
}

func TestRouteGrid_OriginalEndpointFallback(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  3,
		Height: 1,
		Machines: map[string]routing.Machine{
			"A":     {X: 0, Y: 0},
			"B_NEW": {X: 2, Y: 0},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "B_OLD", OriginalTarget: "B_NEW"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	_, ok := resp.CableRoutes["C1"]
	assert.True(t, ok, "expected C1 to resolve via OriginalTarget fallback")
}

func TestRouteGrid_UnlabeledCableGetsDeterministicFallbackLabel(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  3,
		Height: 1,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 0},
			"B": {X: 2, Y: 0},
		},
		Cables: []routing.Cable{
			{Source: "A", Target: "B"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))

	first, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := first.CableRoutes["A->B"]
	assert.True(t, ok, "expected the unlabeled cable to route under its source->target fallback label")

	second, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, first.CableRoutes, second.CableRoutes, "identical input must yield identical cable labels across runs")
}

func TestRouteGrid_UnreachableEndpointIsland(t *testing.T) {
	var walls []grid.Cell
	for x := 0; x < 3; x++ {
		walls = append(walls, grid.Cell{X: x, Y: 1})
	}
	cfg := routing.GridConfig{
		Width:  3,
		Height: 3,
		Walls:  walls,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 0},
			"B": {X: 0, Y: 2},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "B"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	_, ok := resp.CableRoutes["C1"]
	assert.False(t, ok, "expected C1 to be unroutable across a sealed wall")
}

func TestRouteGrid_LengthCeilingReportsProblematicCable(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  10,
		Height: 1,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 0},
			"B": {X: 9, Y: 0},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "B", Length: "0,05m"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, resp.ProblematicCables, 1)
	assert.Equal(t, "C1", resp.ProblematicCables[0].CableLabel)
	assert.Greater(t, resp.ProblematicCables[0].ExcessLength, 0.0)
}

func TestRouteGrid_ThreeTerminalsGrowSteinerPoint(t *testing.T) {
	cfg := routing.GridConfig{
		Width:  5,
		Height: 5,
		Machines: map[string]routing.Machine{
			"A": {X: 0, Y: 2},
			"B": {X: 4, Y: 0},
			"C": {X: 4, Y: 4},
		},
		Cables: []routing.Cable{
			{Label: "C1", Source: "A", Target: "B"},
			{Label: "C2", Source: "A", Target: "C"},
		},
	}
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	assert.Len(t, resp.CableRoutes, 2)
	assert.Greater(t, resp.DebugInfo.InitialMSTLength, 0.0)
	assert.GreaterOrEqual(t, resp.DebugInfo.PassesUsed, 1)
	assert.GreaterOrEqual(t, resp.DebugInfo.NumComponentsTried, 1)
}

func TestRouteGrid_PerforatedWallReopensCorridor(t *testing.T) {
	cfg := fixtures.Build(
		fixtures.WithDimensions(5, 5, 0.1),
		fixtures.WithMachine("A", 0, 2),
		fixtures.WithMachine("B", 4, 2),
		fixtures.WithWallRow(2, 2, 2),
		fixtures.WithPerforation(2, 2),
		fixtures.WithCable("C1", "A", "B", "power", ""),
	)
	e := routing.NewEngine(zaptest.NewLogger(t))
	resp, err := e.RouteGrid(context.Background(), cfg)
	require.NoError(t, err)

	route, ok := resp.CableRoutes["C1"]
	require.True(t, ok, "expected the perforation to keep the corridor passable")
	assert.Len(t, route, 5)
}
