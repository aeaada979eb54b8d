package grid

// Cell is an integer grid coordinate in [0,Width) x [0,Height).
type Cell struct {
	X, Y int
}

// neighborOffsets is the fixed 4-connectivity neighborhood: N, E, S, W.
// Order matters for determinism: it fixes the iteration order of every
// BFS/Dijkstra frontier expansion built on top of it.
var neighborOffsets = [4]Cell{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// DefaultResolution is the metres-per-cell-edge used when a GridConfig
// omits gridResolution.
const DefaultResolution = 0.1

// Grid is an immutable rectangular cell surface with a blocked-cell set
// (walls minus perforations) and a tray-cell set.
type Grid struct {
	Width, Height  int
	GridResolution float64

	blocked map[Cell]struct{}
	trays   map[Cell]struct{}

	// DistWall[c] / DistTray[c] hold the precomputed Manhattan distance
	// transform from c to the nearest wall / tray cell (math.MaxInt32 if
	// no seed of that kind exists). Computed once at construction and
	// never recomputed afterwards.
	DistWall *DistanceMap
	DistTray *DistanceMap
}

// NewGrid builds a Grid from wall, perforation, and tray cell lists.
// A cell is blocked iff it is a wall and not also a perforation; a cell
// outside [0,width)x[0,height) in any of the three lists is ignored rather
// than rejected, since upstream callers may pass stale machine/obstacle
// coordinates after a resize. Only width and height are validated
// strictly; a non-positive resolution falls back to DefaultResolution.
func NewGrid(width, height int, walls, perforations, trays []Cell, resolution float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	g := &Grid{
		Width:          width,
		Height:         height,
		GridResolution: resolution,
		blocked:        make(map[Cell]struct{}, len(walls)),
		trays:          make(map[Cell]struct{}, len(trays)),
	}

	perforated := make(map[Cell]struct{}, len(perforations))
	for _, c := range perforations {
		perforated[c] = struct{}{}
	}
	for _, c := range walls {
		if !g.InBounds(c) {
			continue
		}
		if _, ok := perforated[c]; ok {
			continue // perforation overrides the wall: the cell stays passable.
		}
		g.blocked[c] = struct{}{}
	}
	for _, c := range trays {
		if !g.InBounds(c) {
			continue
		}
		g.trays[c] = struct{}{}
	}

	g.DistWall = bfsDistance(g, seedSlice(g.blocked))
	g.DistTray = bfsDistance(g, seedSlice(g.trays))

	return g, nil
}

func seedSlice(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}

	return out
}

// InBounds reports whether c lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blocked reports whether c is a wall cell without an overriding perforation.
func (g *Grid) Blocked(c Cell) bool {
	_, ok := g.blocked[c]

	return ok
}

// Passable reports whether c is in-bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.Blocked(c)
}

// Tray reports whether c carries a routing bonus as existing cable tray.
func (g *Grid) Tray(c Cell) bool {
	_, ok := g.trays[c]

	return ok
}

// Neighbors4 returns the in-bounds 4-neighbors of c, in the fixed N,E,S,W
// order, regardless of passability — callers filter passability themselves.
func (g *Grid) Neighbors4(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}
