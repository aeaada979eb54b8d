package pathfind

import "math"

// Options configures a single Dijkstra call.
//
// Sources    – starting vertex IDs, each at distance zero (must be
//
//	non-empty and present in the graph). A single-element slice is
//	the ordinary single-source case; steiner's lazy-Prim growth uses
//	multiple sources to find the nearest unconnected terminal from
//	the whole partial tree in one sweep.
//
// Targets    – if non-empty, the search stops as soon as every target has
//
//	been finalized, rather than exhausting all reachable vertices.
//	Used by steiner's multi-target sweeps.
//
// ReturnPath – if true, Dijkstra also returns a predecessor map for path
//
//	reconstruction; otherwise the second return value is nil.
type Options struct {
	Sources    []string
	Targets    map[string]struct{}
	ReturnPath bool
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithSource sets the search's single starting vertex.
func WithSource(id string) Option {
	return func(o *Options) { o.Sources = []string{id} }
}

// WithSources sets multiple starting vertices, each at distance zero, for
// a multi-source sweep.
func WithSources(ids ...string) Option {
	return func(o *Options) { o.Sources = ids }
}

// WithTargets restricts Dijkstra to stop once every vertex in ids has been
// finalized. Passing no IDs leaves the default unbounded behavior (explore
// every reachable vertex).
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		if len(ids) == 0 {
			o.Targets = nil

			return
		}
		o.Targets = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			o.Targets[id] = struct{}{}
		}
	}
}

// WithReturnPath enables predecessor tracking for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// defaultOptions returns the zero-value baseline before functional options
// are applied.
func defaultOptions() Options {
	return Options{}
}

// infDistance is the sentinel value for an unreached vertex.
const infDistance = math.MaxFloat64
