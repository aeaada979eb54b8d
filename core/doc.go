// Package core provides a minimal, thread-safe, in-memory graph used as the
// shared substrate for the grid, pathfind, and steiner packages.
//
// Unlike a general-purpose graph library, this Graph is deliberately
// narrowed to the one shape the routing engine ever needs: directed,
// weighted, no self-loops, no parallel edges per ordered pair. Vertices
// are addressed by an opaque string ID (the weightgraph package encodes
// cell coordinates as "x,y"); the graph itself has no notion of
// coordinates. Symmetric adjacency (cell u next to cell v) is expressed as
// two directed edges, u->v and v->u, because the routing engine's edge
// cost depends on the cell being entered and the two directions can carry
// different weights.
//
// Concurrency: two separate sync.RWMutex locks (muVert for the vertex
// catalog, muEdge for edges and adjacency) bound lock contention the same
// way a busier general-purpose graph would, even though a single
// routing request never mutates a Graph concurrently with itself today —
// the steiner package's parallel candidate simulation reads committed
// graphs from multiple goroutines, so read-path safety still matters.
//
// Determinism: Vertices() and Neighbors() return results sorted by ID, so
// two runs over the same input visit edges in the same order.
package core
