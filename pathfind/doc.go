// Package pathfind computes shortest paths over a weightgraph.Graph's
// underlying core.Graph.
//
// Dijkstra computes distances from one or more sources to every reachable
// vertex, optionally stopping early once a supplied set of targets have
// all been finalized — the shape steiner's lazy-Prim growth needs when it
// sweeps from every cell of the partial tree towards the unconnected
// terminals.
//
// Complexity: O((V+E) log V) per call, the same bound as a textbook
// heap-based Dijkstra. Path results are not cached between calls.
//
// Determinism: the min-heap breaks distance ties by insertion order (a
// monotonic counter stamped onto every heap push), so two runs over the
// same graph and source visit vertices in the same order and, when
// several shortest paths of equal length exist, reconstruct the same one.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, and
// ErrNegativeWeight are returned for invalid input; weightgraph.Build
// never produces negative weights, so the last of these should not occur
// in practice but is still checked defensively.
//
// Concurrency: Dijkstra holds no shared mutable state; steiner's parallel
// candidate simulation calls it concurrently from multiple goroutines
// against the same read-only core.Graph, which is safe because core.Graph
// only takes locks on its own maps.
package pathfind
