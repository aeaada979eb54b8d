package api

import (
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/routing"
)

// point, machine, cable, network, and gridRequest mirror routing's types
// with JSON tags; they exist so the wire format can diverge from Go field
// naming (snake_case) without leaking that concern into routing.

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func pointOf(p routing.Point) point { return point{X: p.X, Y: p.Y} }

func pointsOf(pts []routing.Point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[i] = pointOf(p)
	}

	return out
}

type machine struct {
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Description   string   `json:"description,omitempty"`
	MergedHistory []string `json:"merged_history,omitempty"`
}

type cable struct {
	Label          string  `json:"label"`
	Source         string  `json:"source"`
	Target         string  `json:"target"`
	OriginalSource string  `json:"original_source,omitempty"`
	OriginalTarget string  `json:"original_target,omitempty"`
	Diameter       float64 `json:"diameter,omitempty"`
	CableFunction  string  `json:"cable_function,omitempty"`
	Network        string  `json:"network,omitempty"`
	CableType      string  `json:"cable_type,omitempty"`
	Length         string  `json:"length,omitempty"`
}

type network struct {
	Name      string   `json:"name"`
	Functions []string `json:"functions"`
}

type gridRequest struct {
	Width          int                `json:"width" binding:"required"`
	Height         int                `json:"height" binding:"required"`
	GridResolution float64            `json:"grid_resolution,omitempty"`
	Walls          []point            `json:"walls,omitempty"`
	Perforations   []point            `json:"perforations,omitempty"`
	Trays          []point            `json:"trays,omitempty"`
	Machines       map[string]machine `json:"machines"`
	Cables         []cable            `json:"cables,omitempty"`
	Networks       []network          `json:"networks,omitempty"`
}

func (r gridRequest) toDomain() routing.GridConfig {
	machines := make(map[string]routing.Machine, len(r.Machines))
	for id, m := range r.Machines {
		machines[id] = routing.Machine{X: m.X, Y: m.Y, Description: m.Description, MergedHistory: m.MergedHistory}
	}

	cables := make([]routing.Cable, len(r.Cables))
	for i, c := range r.Cables {
		cables[i] = routing.Cable{
			Label:          c.Label,
			Source:         c.Source,
			Target:         c.Target,
			OriginalSource: c.OriginalSource,
			OriginalTarget: c.OriginalTarget,
			Diameter:       c.Diameter,
			CableFunction:  c.CableFunction,
			Network:        c.Network,
			CableType:      c.CableType,
			Length:         c.Length,
		}
	}

	networks := make([]routing.Network, len(r.Networks))
	for i, n := range r.Networks {
		networks[i] = routing.Network{Name: n.Name, Functions: n.Functions}
	}

	return routing.GridConfig{
		Width:          r.Width,
		Height:         r.Height,
		GridResolution: r.GridResolution,
		Walls:          cellsOf(r.Walls),
		Perforations:   cellsOf(r.Perforations),
		Trays:          cellsOf(r.Trays),
		Machines:       machines,
		Cables:         cables,
		Networks:       networks,
	}
}

func cellsOf(pts []point) []grid.Cell {
	out := make([]grid.Cell, len(pts))
	for i, p := range pts {
		out[i] = grid.Cell{X: p.X, Y: p.Y}
	}

	return out
}

type cableDetail struct {
	Label         string  `json:"label"`
	Diameter      float64 `json:"diameter,omitempty"`
	CableFunction string  `json:"cable_function,omitempty"`
	CableType     string  `json:"cable_type,omitempty"`
}

type sectionView struct {
	Points      []point                `json:"points"`
	Cables      []string               `json:"cables"`
	Network     string                 `json:"network"`
	Details     map[string]cableDetail `json:"details,omitempty"`
	StrokeWidth float64                `json:"stroke_width"`
}

type hananGrid struct {
	XCoords []int `json:"x_coords"`
	YCoords []int `json:"y_coords"`
}

type debugInfo struct {
	RequestID          string  `json:"request_id"`
	InitialMSTLength   float64 `json:"initial_mst_length"`
	FinalLength        float64 `json:"final_length"`
	ImprovementPercent float64 `json:"improvement_percent"`
	NumSteinerPoints   int     `json:"num_steiner_points"`
	NumSections        int     `json:"num_sections"`
	NumComponentsTried int     `json:"num_components_tried,omitempty"`
	NumComponentsUsed  int     `json:"num_components_used,omitempty"`
	PassesUsed         int     `json:"passes_used,omitempty"`
}

type problematicCable struct {
	CableLabel           string  `json:"cable_label"`
	SpecifiedLength      float64 `json:"specified_length"`
	RouteLength          float64 `json:"route_length"`
	TheoreticalMinLength float64 `json:"theoretical_min_length"`
	ExcessLength         float64 `json:"excess_length"`
	ExcessPercentage     float64 `json:"excess_percentage"`
}

type routingResponse struct {
	Sections          []sectionView       `json:"sections"`
	CableRoutes       map[string][]point  `json:"cable_routes"`
	HananGrid         hananGrid           `json:"hanan_grid"`
	SteinerPoints     []point             `json:"steiner_points"`
	DebugInfo         debugInfo           `json:"debug_info"`
	ProblematicCables []problematicCable  `json:"problematic_cables,omitempty"`
	Warnings          []string            `json:"warnings,omitempty"`
}

func responseOf(r *routing.RoutingResponse) routingResponse {
	sections := make([]sectionView, len(r.Sections))
	for i, s := range r.Sections {
		details := make(map[string]cableDetail, len(s.Details))
		for k, d := range s.Details {
			details[k] = cableDetail{Label: d.Label, Diameter: d.Diameter, CableFunction: d.CableFunction, CableType: d.CableType}
		}
		sections[i] = sectionView{
			Points:      pointsOf(s.Points),
			Cables:      s.Cables,
			Network:     s.Network,
			Details:     details,
			StrokeWidth: s.StrokeWidth,
		}
	}

	cableRoutes := make(map[string][]point, len(r.CableRoutes))
	for k, pts := range r.CableRoutes {
		cableRoutes[k] = pointsOf(pts)
	}

	problematic := make([]problematicCable, len(r.ProblematicCables))
	for i, p := range r.ProblematicCables {
		problematic[i] = problematicCable{
			CableLabel:           p.CableLabel,
			SpecifiedLength:      p.SpecifiedLength,
			RouteLength:          p.RouteLength,
			TheoreticalMinLength: p.TheoreticalMinLength,
			ExcessLength:         p.ExcessLength,
			ExcessPercentage:     p.ExcessPercentage,
		}
	}

	return routingResponse{
		Sections:      sections,
		CableRoutes:   cableRoutes,
		HananGrid:     hananGrid{XCoords: r.HananGrid.XCoords, YCoords: r.HananGrid.YCoords},
		SteinerPoints: pointsOf(r.SteinerPoints),
		DebugInfo: debugInfo{
			RequestID:          r.DebugInfo.RequestID,
			InitialMSTLength:   r.DebugInfo.InitialMSTLength,
			FinalLength:        r.DebugInfo.FinalLength,
			ImprovementPercent: r.DebugInfo.ImprovementPercent,
			NumSteinerPoints:   r.DebugInfo.NumSteinerPoints,
			NumSections:        r.DebugInfo.NumSections,
			NumComponentsTried: r.DebugInfo.NumComponentsTried,
			NumComponentsUsed:  r.DebugInfo.NumComponentsUsed,
			PassesUsed:         r.DebugInfo.PassesUsed,
		},
		ProblematicCables: problematic,
		Warnings:          r.Warnings,
	}
}
