package routing

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/sections"
	"github.com/trayweave/cableroute/steiner"
	"github.com/trayweave/cableroute/weightgraph"
)

// Engine runs the routing pipeline for a single request. It holds no
// mutable state between calls; every cache and tree it builds lives only
// for the duration of one RouteGrid call.
type Engine struct {
	logger *zap.Logger
}

// NewEngine constructs an Engine. A nil logger is replaced with a no-op
// one rather than panicking, since a caller that doesn't care about logs
// shouldn't have to construct one.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{logger: logger}
}

// resolvedCable is a cable whose endpoints have already been resolved to
// grid cells and assigned to a network.
type resolvedCable struct {
	cable   Cable
	source  grid.Cell
	target  grid.Cell
	network string
}

// RouteGrid runs the full pipeline: build the grid, resolve cable
// endpoints, grow and improve a Steiner tree per network, reroute cables
// over their length ceiling, and extract sections.
//
// Steps:
//  1. Build the Grid and its distance transforms.
//  2. Resolve every cable's endpoints (with the OriginalSource/Target
//     fallback); unresolved cables are dropped with a warning.
//  3. Group resolved cables by network.
//  4. Per network: grow a Steiner tree over its terminals, improve it,
//     derive each cable's own route from the tree, reroute any cable
//     over its declared length ceiling, and extract sections.
//  5. Assemble the response: sections, routes, Hanan grid, Steiner
//     points, debug info, and problematic cables.
func (e *Engine) RouteGrid(ctx context.Context, cfg GridConfig) (*RoutingResponse, error) {
	requestID := uuid.New().String()
	log := e.logger.With(zap.String("request_id", requestID), zap.Int("cable_count", len(cfg.Cables)))

	resolution := cfg.GridResolution
	if resolution <= 0 {
		resolution = grid.DefaultResolution
	}
	g, err := grid.NewGrid(cfg.Width, cfg.Height, cfg.Walls, cfg.Perforations, cfg.Trays, resolution)
	if err != nil {
		return nil, fmt.Errorf("routing: building grid: %w", err)
	}

	networks := cfg.Networks
	if len(networks) == 0 {
		networks = DefaultNetworks()
	}

	var warnings []string
	var stats steiner.Stats
	byNetwork := make(map[string][]resolvedCable)
	for _, c := range cfg.Cables {
		src, tgt, usedFallback, outcome := ResolveCable(cfg.Machines, c)
		label := cableLabel(c)
		if outcome == Skipped {
			log.Warn("dropping cable with unresolved endpoint", zap.String("cable", label), zap.Stringer("outcome", outcome))
			warnings = append(warnings, fmt.Sprintf("cable %q dropped: unknown machine endpoint", label))
			continue
		}
		if usedFallback {
			warnings = append(warnings, fmt.Sprintf("cable %q resolved via its original endpoint after a machine merge", label))
		}
		net := networkFor(c, networks)
		byNetwork[net] = append(byNetwork[net], resolvedCable{cable: c, source: src, target: tgt, network: net})
	}

	cache := weightgraph.NewCache(g)

	resp := &RoutingResponse{CableRoutes: make(map[string][]Point)}
	var allTerminals, allSteinerPoints []grid.Cell
	var totalInitial, totalFinal float64

	for _, netName := range sortedKeys(byNetwork) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cables := byNetwork[netName]
		initial, final, netSections, problematic, terminals, steinerPts, netStats, err := e.routeNetwork(log, cache, resolution, netName, cables, resp.CableRoutes)
		if err != nil {
			return nil, err
		}
		totalInitial += initial
		totalFinal += final
		resp.Sections = append(resp.Sections, netSections...)
		resp.ProblematicCables = append(resp.ProblematicCables, problematic...)
		allTerminals = append(allTerminals, terminals...)
		allSteinerPoints = append(allSteinerPoints, steinerPts...)
		stats.PassesUsed += netStats.PassesUsed
		stats.ComponentsTried += netStats.ComponentsTried
		stats.ComponentsUsed += netStats.ComponentsUsed
	}

	resp.Warnings = warnings
	resp.SteinerPoints = pointsOf(dedupCells(allSteinerPoints))
	resp.HananGrid = hananGridOf(allTerminals, allSteinerPoints)

	improvement := 0.0
	if totalInitial > 0 {
		improvement = 100 * (totalInitial - totalFinal) / totalInitial
	}
	resp.DebugInfo = DebugInfo{
		RequestID:          requestID,
		InitialMSTLength:   totalInitial,
		FinalLength:        totalFinal,
		ImprovementPercent: improvement,
		NumSteinerPoints:   len(resp.SteinerPoints),
		NumSections:        len(resp.Sections),
		NumComponentsTried: stats.ComponentsTried,
		NumComponentsUsed:  stats.ComponentsUsed,
		PassesUsed:         stats.PassesUsed,
	}

	return resp, nil
}

// routeNetwork grows, improves, and extracts sections for a single
// network's terminal set, writing each cable's resolved route into
// cableRoutes as it goes.
func (e *Engine) routeNetwork(
	log *zap.Logger,
	cache *weightgraph.Cache,
	resolution float64,
	netName string,
	cables []resolvedCable,
	cableRoutes map[string][]Point,
) (initial, final float64, netSections []SectionView, problematic []ProblematicCableView, terminals, steinerPts []grid.Cell, stats steiner.Stats, err error) {
	terminalSet := make(map[grid.Cell]struct{})
	for _, rc := range cables {
		terminalSet[rc.source] = struct{}{}
		terminalSet[rc.target] = struct{}{}
	}
	terminals = sortedCells(terminalSet)

	wgGraph, err := cache.GetOrBuild(1.0)
	if err != nil {
		logOutcome(log, InternalError, netName, "building weighted graph", err)

		return 0, 0, nil, nil, nil, nil, steiner.Stats{}, fmt.Errorf("routing: %w", err)
	}

	var mst *steiner.MST
	if len(terminals) >= 2 {
		mst, err = steiner.BuildMST(wgGraph, terminals)
		if err != nil {
			logOutcome(log, UnreachableEndpoint, netName, "network has a disconnected terminal set", err)

			return 0, 0, nil, nil, terminals, nil, steiner.Stats{}, nil
		}
		initial = mst.TotalLength(wgGraph)
		mst, stats, err = steiner.Improve(wgGraph, mst)
		if err != nil {
			logOutcome(log, InternalError, netName, "improving tree", err)

			return 0, 0, nil, nil, nil, nil, steiner.Stats{}, fmt.Errorf("routing: improving tree for network %q: %w", netName, err)
		}
		final = mst.TotalLength(wgGraph)
		steinerPts = append(steinerPts, mst.SteinerPoints...)
	}

	var mstRoutes []sections.MSTEdgeRoute
	if mst != nil {
		for _, r := range mst.Routes {
			mstRoutes = append(mstRoutes, sections.MSTEdgeRoute{Cells: r.Cells})
		}
	}
	steinerPts = append(steinerPts, sections.NaturalSteinerPoints(mstRoutes)...)

	var cableRouteCells []sections.CableRoute
	for _, rc := range cables {
		label := cableLabel(rc.cable)
		if mst == nil || len(mst.Routes) == 0 {
			logOutcome(log, UnreachableEndpoint, netName, "cable endpoints unreachable", nil, zap.String("cable", label))

			continue
		}
		_, path, ok, perr := steiner.CablePath(mst, wgGraph, rc.source, rc.target)
		if perr != nil {
			logOutcome(log, InternalError, netName, "deriving cable path", perr, zap.String("cable", label))

			return 0, 0, nil, nil, nil, nil, steiner.Stats{}, fmt.Errorf("routing: %w", perr)
		}
		if !ok {
			logOutcome(log, UnreachableEndpoint, netName, "cable endpoints unreachable", nil, zap.String("cable", label))

			continue
		}

		if declared, hasCeiling := parseLength(rc.cable.Length); hasCeiling {
			reroutedPath, prob, rerr := sections.Reroute(cache, path, rc.source, rc.target, declared, resolution, label)
			if rerr != nil {
				logOutcome(log, InternalError, netName, "rerouting cable", rerr, zap.String("cable", label))

				return 0, 0, nil, nil, nil, nil, steiner.Stats{}, fmt.Errorf("routing: rerouting cable %q: %w", label, rerr)
			}
			path = reroutedPath
			if prob != nil {
				log.Warn("cable exceeds declared length after every reroute attempt", zap.String("cable", label))
				problematic = append(problematic, ProblematicCableView{
					CableLabel:           prob.CableID,
					SpecifiedLength:      prob.SpecifiedLength,
					RouteLength:          prob.RouteLength,
					TheoreticalMinLength: prob.TheoreticalMinLength,
					ExcessLength:         prob.ExcessLength,
					ExcessPercentage:     prob.ExcessPercentage,
				})
			}
		}

		cableRoutes[label] = pointsOf(path)
		cableRouteCells = append(cableRouteCells, sections.CableRoute{ID: label, NetworkID: netName, Cells: path})
	}

	for _, s := range sections.Extract(mstRoutes, cableRouteCells, netName) {
		details := make(map[string]CableDetail, len(s.Cables))
		for _, cid := range s.Cables {
			if rc := findResolvedCable(cables, cid); rc != nil {
				details[cid] = CableDetail{Label: cid, Diameter: rc.cable.Diameter, CableFunction: rc.cable.CableFunction, CableType: rc.cable.CableType}
			}
		}
		netSections = append(netSections, SectionView{
			Points:      pointsOf(s.Points),
			Cables:      s.Cables,
			Network:     s.NetworkID,
			Details:     details,
			StrokeWidth: s.StrokeWidth,
		})
	}

	return initial, final, netSections, problematic, terminals, steinerPts, stats, nil
}

// logOutcome records a non-OK Outcome against a network (and optionally a
// cable within it). InternalError logs at Error level, since it escalates
// past RouteGrid as a returned error; every other outcome logs at Warn
// level, since it's folded into the response's warnings or problematic
// cables instead of failing the request.
func logOutcome(log *zap.Logger, outcome Outcome, netName, msg string, err error, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("network", netName), zap.Stringer("outcome", outcome)}, fields...)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if outcome == InternalError {
		log.Error(msg, fields...)

		return
	}
	log.Warn(msg, fields...)
}

func cableLabel(c Cable) string {
	if c.Label != "" {
		return c.Label
	}

	return c.Source + "->" + c.Target
}

func findResolvedCable(cables []resolvedCable, label string) *resolvedCable {
	for i := range cables {
		if cableLabel(cables[i].cable) == label {
			return &cables[i]
		}
	}

	return nil
}

func sortedKeys(m map[string][]resolvedCable) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func sortedCells(set map[grid.Cell]struct{}) []grid.Cell {
	out := make([]grid.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}

		return out[i].Y < out[j].Y
	})

	return out
}

func dedupCells(cells []grid.Cell) []grid.Cell {
	seen := make(map[grid.Cell]struct{}, len(cells))
	out := make([]grid.Cell, 0, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}

		return out[i].Y < out[j].Y
	})

	return out
}

func hananGridOf(terminals, steinerPts []grid.Cell) HananGrid {
	xs := make(map[int]struct{})
	ys := make(map[int]struct{})
	for _, c := range terminals {
		xs[c.X] = struct{}{}
		ys[c.Y] = struct{}{}
	}
	for _, c := range steinerPts {
		xs[c.X] = struct{}{}
		ys[c.Y] = struct{}{}
	}

	return HananGrid{XCoords: sortedInts(xs), YCoords: sortedInts(ys)}
}

func sortedInts(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
