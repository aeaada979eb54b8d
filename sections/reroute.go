package sections

import (
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/pathfind"
	"github.com/trayweave/cableroute/weightgraph"
)

// rerouteAttempts bounds how many progressively relaxed redCable values
// Reroute tries before giving up and reporting the cable as problematic.
const rerouteAttempts = 5

// rerouteStartRedCable and rerouteStep set the relaxation schedule:
// 0.55, 0.45, 0.35, 0.25, 0.15.
const (
	rerouteStartRedCable = 0.55
	rerouteStep          = 0.1
)

// ProblematicCable reports a cable whose route still exceeded its
// declared length ceiling after every reroute attempt.
type ProblematicCable struct {
	CableID              string
	SpecifiedLength      float64
	RouteLength          float64
	TheoreticalMinLength float64
	ExcessLength         float64
	ExcessPercentage     float64
}

// Reroute re-derives a cable's path through progressively weaker
// congestion weighting when its original route exceeds declaredLength
// (metres). declaredLength <= 0 means no ceiling: the original route is
// returned unchanged. If every attempt still exceeds the ceiling, the
// original route is kept and a ProblematicCable is returned describing
// the shortfall.
//
// Steps:
//  1. Compute the original route's length; if within ceiling (or there is
//     no ceiling), return it as-is.
//  2. Try up to rerouteAttempts values of redCable, shrinking from 0.55 by
//     0.1 each time, rebuilding (or reusing, via cache) the weightgraph
//     for that redCable and re-running the shortest path.
//  3. Return the first attempt that fits; otherwise keep the original
//     route and report it as problematic.
func Reroute(
	cache *weightgraph.Cache,
	originalRoute []grid.Cell,
	from, to grid.Cell,
	declaredLength, gridResolution float64,
	cableID string,
) ([]grid.Cell, *ProblematicCable, error) {
	actual := routeLength(originalRoute, gridResolution)
	if declaredLength <= 0 || actual <= declaredLength {
		return originalRoute, nil, nil
	}

	for attempt := 0; attempt < rerouteAttempts; attempt++ {
		redCable := rerouteStartRedCable - rerouteStep*float64(attempt)
		if redCable <= 0 {
			break
		}
		wg, err := cache.GetOrBuild(redCable)
		if err != nil {
			continue
		}
		_, path, ok, err := pathfind.ShortestPath(wg.Core(), weightgraph.CellID(from), weightgraph.CellID(to))
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		cells := make([]grid.Cell, len(path))
		for i, id := range path {
			cells[i] = weightgraph.ParseCellID(id)
		}
		length := routeLength(cells, gridResolution)
		if length <= declaredLength {
			return cells, nil, nil
		}
	}

	excess := actual - declaredLength
	excessPct := 0.0
	if declaredLength > 0 {
		excessPct = excess / declaredLength * 100
	}

	return originalRoute, &ProblematicCable{
		CableID:              cableID,
		SpecifiedLength:      declaredLength,
		RouteLength:          actual,
		TheoreticalMinLength: float64(manhattan(from, to)) * gridResolution,
		ExcessLength:         excess,
		ExcessPercentage:     excessPct,
	}, nil
}

// routeLength converts a cell path to metres: (|route|-1) steps at
// gridResolution metres per step.
func routeLength(route []grid.Cell, gridResolution float64) float64 {
	if len(route) == 0 {
		return 0
	}

	return float64(len(route)-1) * gridResolution
}

func manhattan(a, b grid.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
