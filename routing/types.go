package routing

import "github.com/trayweave/cableroute/grid"

// Outcome classifies how a single cable or terminal set fared during
// routing. Only InternalError escalates past RouteGrid as a non-nil
// error; the rest are recorded in the response.
type Outcome int

const (
	// OK means the cable was routed normally.
	OK Outcome = iota
	// Skipped means the cable referenced an unresolvable machine and was
	// dropped with a warning.
	Skipped
	// UnreachableEndpoint means both endpoints resolved but no path
	// connects them.
	UnreachableEndpoint
	// InternalError means an invariant was violated; surfaces as a 500.
	InternalError
)

// String renders an Outcome for logging.
func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Skipped:
		return "skipped"
	case UnreachableEndpoint:
		return "unreachable_endpoint"
	case InternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Point is the wire representation of a grid.Cell.
type Point struct {
	X, Y int
}

func pointOf(c grid.Cell) Point { return Point{X: c.X, Y: c.Y} }

func pointsOf(cells []grid.Cell) []Point {
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = pointOf(c)
	}

	return out
}

// Machine is one addressable grid position a cable may connect to.
type Machine struct {
	X, Y          int
	Description   string
	MergedHistory []string
}

// Cable is one requested connection between two machines.
type Cable struct {
	Label           string
	Source          string
	Target          string
	OriginalSource  string
	OriginalTarget  string
	Diameter        float64
	CableFunction   string
	Network         string
	CableType       string
	Length          string // optional, "m"-suffixed, comma-or-dot decimal; empty = no ceiling
}

// Network groups cables by the machine functions they connect.
type Network struct {
	Name      string
	Functions []string
}

// GridConfig is the routing request.
type GridConfig struct {
	Width, Height  int
	GridResolution float64
	Walls          []grid.Cell
	Perforations   []grid.Cell
	Trays          []grid.Cell
	Machines       map[string]Machine
	Cables         []Cable
	Networks       []Network
}

// CableDetail echoes a cable's declared metadata back in its section.
type CableDetail struct {
	Label         string
	Diameter      float64
	CableFunction string
	CableType     string
}

// SectionView is the wire representation of one extracted section.
type SectionView struct {
	Points      []Point
	Cables      []string
	Network     string
	Details     map[string]CableDetail
	StrokeWidth float64
}

// HananGrid is the axis-parallel line arrangement induced by every
// terminal and Steiner point coordinate.
type HananGrid struct {
	XCoords []int
	YCoords []int
}

// DebugInfo summarizes the optimization run.
type DebugInfo struct {
	RequestID          string
	InitialMSTLength   float64
	FinalLength        float64
	ImprovementPercent float64
	NumSteinerPoints   int
	NumSections        int
	NumComponentsTried int
	NumComponentsUsed  int
	PassesUsed         int
}

// ProblematicCableView is the wire representation of a reroute failure.
type ProblematicCableView struct {
	CableLabel           string
	SpecifiedLength      float64
	RouteLength          float64
	TheoreticalMinLength float64
	ExcessLength         float64
	ExcessPercentage     float64
}

// RoutingResponse is the result of RouteGrid.
type RoutingResponse struct {
	Sections          []SectionView
	CableRoutes       map[string][]Point
	HananGrid         HananGrid
	SteinerPoints     []Point
	DebugInfo         DebugInfo
	ProblematicCables []ProblematicCableView
	Warnings          []string
}
