package sections

import "github.com/trayweave/cableroute/grid"

// Extract splits routes at their interior natural Steiner points and
// assigns each resulting sub-path the cables whose own routed path shares
// at least two cells with it. Cables matching no sub-path (their network
// was not connected by any of the supplied routes, or they belong to no
// network at all) get a single-cable fallback Section instead, carrying
// the cable's own NetworkID, or defaultNetwork when that is empty.
//
// Steps:
//  1. Detect natural Steiner points: degree ≥ 3 in the union adjacency of
//     every route.
//  2. Split each route into sub-paths at its interior natural points.
//  3. For each sub-path, collect cables overlapping it in ≥ 2 cells.
//  4. Emit a Section per non-empty (sub-path, cable-set); any cable left
//     unmatched becomes a fallback single-cable Section.
func Extract(routes []MSTEdgeRoute, cables []CableRoute, defaultNetwork string) []Section {
	natural := make(map[grid.Cell]struct{})
	for _, c := range NaturalSteinerPoints(routes) {
		natural[c] = struct{}{}
	}

	var subpaths [][]grid.Cell
	for _, r := range routes {
		subpaths = append(subpaths, splitAtNaturalPoints(r.Cells, natural)...)
	}

	matched := make(map[string]bool, len(cables))
	var out []Section
	for _, sp := range subpaths {
		spSet := cellSet(sp)
		var members []string
		for _, c := range cables {
			if overlapCount(spSet, c.Cells) >= 2 {
				members = append(members, c.ID)
				matched[c.ID] = true
			}
		}
		if len(members) == 0 {
			continue
		}
		out = append(out, Section{
			NetworkID:   networkOf(cables, members[0], defaultNetwork),
			Points:      sp,
			Cables:      members,
			StrokeWidth: strokeWidth(len(members)),
		})
	}

	for _, c := range cables {
		if matched[c.ID] {
			continue
		}
		out = append(out, Section{
			NetworkID:   networkOr(c.NetworkID, defaultNetwork),
			Points:      append([]grid.Cell(nil), c.Cells...),
			Cables:      []string{c.ID},
			StrokeWidth: strokeWidth(1),
		})
	}

	return out
}

// splitAtNaturalPoints breaks cells into contiguous sub-paths at each
// interior cell present in natural, sharing the split cell as the last
// element of one sub-path and the first of the next so adjacency is
// preserved across the cut.
func splitAtNaturalPoints(cells []grid.Cell, natural map[grid.Cell]struct{}) [][]grid.Cell {
	if len(cells) < 2 {
		return nil
	}

	var out [][]grid.Cell
	start := 0
	for i := 1; i < len(cells)-1; i++ {
		if _, ok := natural[cells[i]]; ok {
			out = append(out, append([]grid.Cell(nil), cells[start:i+1]...))
			start = i
		}
	}
	out = append(out, append([]grid.Cell(nil), cells[start:]...))

	return out
}

func cellSet(cells []grid.Cell) map[grid.Cell]struct{} {
	set := make(map[grid.Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}

	return set
}

func overlapCount(set map[grid.Cell]struct{}, cells []grid.Cell) int {
	n := 0
	for _, c := range cells {
		if _, ok := set[c]; ok {
			n++
		}
	}

	return n
}

func networkOf(cables []CableRoute, cableID, fallback string) string {
	for _, c := range cables {
		if c.ID == cableID {
			return networkOr(c.NetworkID, fallback)
		}
	}

	return fallback
}

func networkOr(id, fallback string) string {
	if id == "" {
		return fallback
	}

	return id
}
