// Package grid models the two-dimensional routing surface: cell
// passability, and the two Manhattan distance transforms (nearest wall,
// nearest tray) the weightgraph package turns into edge weights.
//
// A Grid is immutable once constructed — width, height, the blocked-cell
// set, and the tray-cell set never change afterwards — matching the
// "Lifecycles" contract of the routing engine: Grid, DistWall, and DistTray
// are created once at request start and read by every later stage.
//
// Boundary convention: the grid boundary is not itself a wall. BFS simply
// never steps outside [0,width)×[0,height); a cell one step from the edge
// of the grid is not penalized for "being near a wall" unless an actual
// wall cell is present.
package grid
