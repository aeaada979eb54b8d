package routing

import "github.com/trayweave/cableroute/grid"

// ResolveCable resolves a cable's two endpoints to machine cells. If
// Source or Target doesn't name a known machine, it falls back to
// OriginalSource/OriginalTarget — the original router's behavior for a
// cable whose endpoints were renamed after a machine merge — rather than
// dropping the cable outright. outcome is Skipped, with both cells left
// at their zero value, only once both the declared and original endpoint
// names have failed to resolve; otherwise it is OK.
func ResolveCable(machines map[string]Machine, c Cable) (source, target grid.Cell, usedFallback bool, outcome Outcome) {
	s, sOK := machines[c.Source]
	t, tOK := machines[c.Target]
	if sOK && tOK {
		return cellOf(s), cellOf(t), false, OK
	}

	if !sOK && c.OriginalSource != "" {
		if alt, altOK := machines[c.OriginalSource]; altOK {
			s, sOK = alt, true
			usedFallback = true
		}
	}
	if !tOK && c.OriginalTarget != "" {
		if alt, altOK := machines[c.OriginalTarget]; altOK {
			t, tOK = alt, true
			usedFallback = true
		}
	}

	if !sOK || !tOK {
		return grid.Cell{}, grid.Cell{}, usedFallback, Skipped
	}

	return cellOf(s), cellOf(t), usedFallback, OK
}

func cellOf(m Machine) grid.Cell {
	return grid.Cell{X: m.X, Y: m.Y}
}

// DefaultNetworks reproduces the built-in function -> network table used
// when a request omits `networks` entirely, so cables still group by
// function instead of every one becoming its own singleton section.
func DefaultNetworks() []Network {
	return []Network{
		{Name: "power", Functions: []string{"power"}},
		{Name: "data", Functions: []string{"data", "signal"}},
		{Name: "control", Functions: []string{"control"}},
	}
}

// networkFor resolves a cable to a network name: its own declared
// Network if set, else whichever configured (or default) network lists
// its CableFunction, else "default".
func networkFor(c Cable, networks []Network) string {
	if c.Network != "" {
		return c.Network
	}
	for _, n := range networks {
		for _, fn := range n.Functions {
			if fn == c.CableFunction {
				return n.Name
			}
		}
	}

	return "default"
}
