package fixtures

import (
	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/routing"
)

// Option customizes a GridConfig under construction by Build. Unlike a
// builder option that mutates a resolved config consumed by later
// constructor calls, an Option here mutates the GridConfig directly —
// there is no separate "resolved config" stage because nothing here is
// stochastic.
type Option func(*routing.GridConfig)

// WithDimensions sets the grid's width, height, and resolution. Panics if
// width or height is not positive: a structurally meaningless argument
// is a programmer error, not a recoverable request-level condition.
func WithDimensions(width, height int, resolution float64) Option {
	if width <= 0 || height <= 0 {
		panic("fixtures: WithDimensions(width<=0 || height<=0)")
	}

	return func(cfg *routing.GridConfig) {
		cfg.Width = width
		cfg.Height = height
		cfg.GridResolution = resolution
	}
}

// WithMachine places a named machine at (x, y).
func WithMachine(id string, x, y int) Option {
	if id == "" {
		panic("fixtures: WithMachine(id==\"\")")
	}

	return func(cfg *routing.GridConfig) {
		if cfg.Machines == nil {
			cfg.Machines = make(map[string]routing.Machine)
		}
		cfg.Machines[id] = routing.Machine{X: x, Y: y}
	}
}

// WithWallRow adds a horizontal run of wall cells at row y from x0 to x1
// inclusive.
func WithWallRow(y, x0, x1 int) Option {
	return func(cfg *routing.GridConfig) {
		for x := x0; x <= x1; x++ {
			cfg.Walls = append(cfg.Walls, grid.Cell{X: x, Y: y})
		}
	}
}

// WithPerforation reopens a single wall cell, mirroring the perforated-wall
// case in the grid's passability rule.
func WithPerforation(x, y int) Option {
	return func(cfg *routing.GridConfig) {
		cfg.Perforations = append(cfg.Perforations, grid.Cell{X: x, Y: y})
	}
}

// WithTrayRow marks a horizontal run of cells as an existing tray, from x0
// to x1 inclusive.
func WithTrayRow(y, x0, x1 int) Option {
	return func(cfg *routing.GridConfig) {
		for x := x0; x <= x1; x++ {
			cfg.Trays = append(cfg.Trays, grid.Cell{X: x, Y: y})
		}
	}
}

// WithCable adds a cable between two named machines, function-tagged and
// with an optional declared length ("" means no ceiling).
func WithCable(label, source, target, cableFunction, length string) Option {
	if label == "" || source == "" || target == "" {
		panic("fixtures: WithCable with an empty label, source, or target")
	}

	return func(cfg *routing.GridConfig) {
		cfg.Cables = append(cfg.Cables, routing.Cable{
			Label:         label,
			Source:        source,
			Target:        target,
			CableFunction: cableFunction,
			Length:        length,
		})
	}
}

// Build assembles a GridConfig by applying every Option in order, the way
// BuildGraph applies its Constructors in order over a fresh core.Graph.
func Build(opts ...Option) routing.GridConfig {
	var cfg routing.GridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

