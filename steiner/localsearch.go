package steiner

import (
	"sync"

	"github.com/trayweave/cableroute/grid"
	"github.com/trayweave/cableroute/weightgraph"
)

// maxPasses bounds local search to five rounds: in practice gains shrink
// fast and a network rarely benefits from more than a couple of rounds of
// Steiner-point adoption.
const maxPasses = 5

// scoredResult is one candidate's outcome from a single pass, computed
// concurrently with its siblings and reduced serially afterwards.
type scoredResult struct {
	gain          float64
	steinerPoints []grid.Cell
	ok            bool
	err           error
}

// Stats reports how much work a call to Improve actually did, for
// inclusion in a response's debug info.
type Stats struct {
	PassesUsed      int
	ComponentsTried int
	ComponentsUsed  int
}

// Improve runs up to maxPasses local-search passes over m, the MST
// BuildMST produced for terminals. Each pass generates candidate full
// components from the terminal network, scores them concurrently against
// the tree as it currently stands, and adopts at most one
// strictly-positive-gain candidate: its junction cell(s) are added to a
// running set of required points and the whole tree is regrown through
// terminals plus every adopted point so far. The regrown tree replaces the
// current one only if its weighted length is strictly smaller; otherwise,
// or when a pass finds no improving candidate, the search ends early.
//
// Complexity: each pass is O(min(len(terminals), maxCandidateGroups))
// candidate scores, each itself an O((V+E) log V) shortest-path search,
// run concurrently; the per-pass tree regrowth is one more growTree call.
//
// Concurrency: candidate scoring is parallelized across goroutines
// reading the same read-only weightgraph.Graph and MST snapshot; the
// single best-gain reduction afterwards is serial and allocation-free
// beyond the result slice.
func Improve(wg *weightgraph.Graph, m *MST) (*MST, Stats, error) {
	points := append([]grid.Cell(nil), m.Terminals...)
	adopted := append([]grid.Cell(nil), m.SteinerPoints...)
	current := m
	var stats Stats

	for pass := 0; pass < maxPasses; pass++ {
		// Newly adopted Steiner points become terminals for subsequent
		// passes, so later candidates can bend around a junction this
		// pass just introduced instead of only ever reconsidering the
		// original terminal set.
		candidates := generateCandidates(points)
		if len(candidates) == 0 {
			break
		}
		stats.PassesUsed++
		stats.ComponentsTried += len(candidates)

		results := make([]scoredResult, len(candidates))
		var wait sync.WaitGroup
		for i, c := range candidates {
			wait.Add(1)
			go func(i int, c fullComponent) {
				defer wait.Done()
				gain, sp, _, ok, err := scoreCandidate(wg, current, c)
				results[i] = scoredResult{gain: gain, steinerPoints: sp, ok: ok, err: err}
			}(i, c)
		}
		wait.Wait()

		bestIdx := -1
		var bestGain float64
		for i, r := range results {
			if r.err != nil || !r.ok || r.gain <= 0 {
				continue
			}
			if bestIdx == -1 || r.gain > bestGain {
				bestIdx, bestGain = i, r.gain
			}
		}
		if bestIdx == -1 {
			break
		}

		for _, sp := range results[bestIdx].steinerPoints {
			if !containsCell(points, sp) {
				points = append(points, sp)
				adopted = append(adopted, sp)
			}
		}

		routes, err := growTree(wg.Core(), points)
		if err != nil {
			break
		}
		next := &MST{Terminals: m.Terminals, Routes: routes, SteinerPoints: adopted}
		// The gain is an estimate; keep the regrown tree only if it is
		// actually shorter than the current one.
		if next.TotalLength(wg) >= current.TotalLength(wg) {
			break
		}
		stats.ComponentsUsed++
		current = next
	}

	return current, stats, nil
}

func containsCell(cells []grid.Cell, c grid.Cell) bool {
	for _, existing := range cells {
		if existing == c {
			return true
		}
	}

	return false
}
