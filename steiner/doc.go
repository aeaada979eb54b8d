// Package steiner approximates a rectilinear Steiner minimum tree over a
// set of terminal cells on a weightgraph.Graph.
//
// The approximation is built in two stages, the same shape prim_kruskal's
// Prim grows a classical MST in, generalized to a grid where the "edges"
// between terminals are themselves shortest paths rather than direct
// links:
//
//  1. BuildMST grows a lazy-Prim minimum spanning tree over the terminals,
//     using a single multi-source-to-multi-target shortest-path sweep per
//     step to find the nearest unconnected terminal from the whole
//     partial tree, rather than relaxing one candidate terminal pair at a
//     time.
//  2. Improve runs up to five local-search passes. Each pass generates
//     candidate Steiner full components — small subtrees joining three or
//     four nearby terminals through one or two new junction points — scores
//     each by the weighted cell length it would remove from the MST minus
//     the length it would add, and adopts at most one strictly
//     gain-positive candidate before re-deriving the tree's cell set and
//     starting the next pass. Adoption never rolls back: once a candidate
//     is folded in, its Steiner points are permanent for the rest of the
//     request.
//
// Concurrency: within a single pass, candidate full components are scored
// concurrently (candidate count can be large; scoring runs a bounded
// shortest-path search per component) and reduced serially to find the
// single best gain, mirroring the read-many/reduce-once shape of a
// parallel map over a shared read-only weightgraph.Graph.
//
// Errors: BuildMST returns ErrTooFewTerminals for 0 or 1 terminals and
// ErrDisconnected if some terminal is unreachable from the others,
// matching prim_kruskal's ErrDisconnected semantics for a graph that
// cannot span.
package steiner
