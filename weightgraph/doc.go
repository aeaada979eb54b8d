// Package weightgraph builds the weighted grid graph the pathfind and
// steiner packages route over: a 4-neighbour adjacency on passable cells,
// with edge weight into a cell driven by its distance to the nearest wall
// and nearest tray, relaxed by a redCable factor.
//
// Multiple graphs may exist for one Grid, one per distinct redCable value;
// Cache amortizes that across a single routing request the way the
// engine's "WeightedGraph cache (keyed by redCable)" lifecycle requires —
// the cache is owned by the caller (normally routing.Engine), never a
// package global.
//
// Grounded on gridgraph.ToCoreGraph's cell-to-core.Graph conversion
// ("x,y" vertex IDs, one AddEdge per in-bounds 4-neighbour pair"), with the
// constant edge weight of 1 replaced by the wall/tray-distance formula
// below.
package weightgraph
