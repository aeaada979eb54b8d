// Package routing orchestrates the grid, weightgraph, pathfind, steiner,
// and sections packages into a single per-request pipeline, and defines
// the request/response shapes the HTTP surface (package api) marshals.
//
// Engine.RouteGrid builds the grid and its distance transforms once,
// resolves cable endpoints to machine cells, and then, per network found
// among the request's cables: grows and improves a Steiner tree over that
// network's terminals, reroutes any cable whose route exceeds its declared
// length ceiling, and extracts shareable sections from the finished tree. Every
// stage is request-scoped: the Grid, its weightgraph.Cache, and the
// evolving trees are all owned by a single RouteGrid call and discarded
// afterwards, never shared across requests.
//
// Errors: recoverable per-cable conditions (unknown machine, unreachable
// endpoint, length ceiling unmet, a disconnected terminal set) are
// classified as Outcome values and logged rather than failing the whole
// request. An unknown machine adds an entry to the response's warnings and
// an unmet length ceiling adds a problematicCables entry; an unreachable
// cable or a disconnected network is only logged, and its cables are left
// out of cableRoutes and sections. Only a genuine internal invariant
// violation returns a non-nil error from RouteGrid.
package routing
