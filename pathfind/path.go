package pathfind

import "github.com/trayweave/cableroute/core"

// ReconstructPath walks prev backwards from target until it reaches a
// vertex with no predecessor (a search source, since sources are seeded
// at distance zero and never relaxed), returning the vertex IDs from that
// source to target inclusive. Callers must check the corresponding dist
// entry first: an unreached target also has no prev entry, and would
// otherwise be indistinguishable from a one-vertex path.
func ReconstructPath(prev map[string]string, target string) ([]string, bool) {
	rev := []string{target}
	cur := target
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		rev = append(rev, p)
		cur = p
		if len(rev) > len(prev)+1 {
			// prev cannot legitimately form a cycle; this bounds a
			// malformed map instead of looping forever.
			return nil, false
		}
	}

	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out, true
}

// ShortestPath is a convenience wrapper around Dijkstra for the common
// single-source, single-target case. It returns the path's total weight
// and the vertex IDs along it, or ok=false if target is unreachable.
func ShortestPath(g *core.Graph, source, target string) (dist float64, path []string, ok bool, err error) {
	d, prev, err := Dijkstra(g, WithSource(source), WithTargets(target), WithReturnPath())
	if err != nil {
		return 0, nil, false, err
	}
	cost, reached := d[target]
	if !reached || cost >= infDistance {
		return 0, nil, false, nil
	}
	p, found := ReconstructPath(prev, target)

	return cost, p, found, nil
}

// Nearest runs a multi-source sweep from sources and returns the target
// vertex with the lowest cost (on a tie, the one listed first in targets),
// together with the cost and path to it. ok is false if
// no target is reachable. This is the shape steiner's lazy-Prim growth
// needs: grow the tree towards the closest still-unconnected terminal
// from the whole partial tree in a single sweep, rather than one sweep
// per tree vertex.
func Nearest(g *core.Graph, sources, targets []string) (best string, dist float64, path []string, ok bool, err error) {
	d, prev, err := Dijkstra(g, WithSources(sources...), WithTargets(targets...), WithReturnPath())
	if err != nil {
		return "", 0, nil, false, err
	}

	best = ""
	bestDist := infDistance
	for _, t := range targets {
		c, reached := d[t]
		if !reached || c >= infDistance {
			continue
		}
		if best == "" || c < bestDist {
			best, bestDist = t, c
		}
	}
	if best == "" {
		return "", 0, nil, false, nil
	}
	p, found := ReconstructPath(prev, best)

	return best, bestDist, p, found, nil
}
