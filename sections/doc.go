// Package sections turns a network's finished Steiner tree into shareable
// physical tray segments, and retries individual cables whose route ran
// too long under lighter congestion weighting.
//
// Extract builds an undirected adjacency by unioning every cell-to-cell
// step of every tree edge's route. Any cell with adjacency degree three
// or more is a natural Steiner point — a T-junction the tree passes
// through even though local search never explicitly adopted it as one.
// Each tree edge's route is split at its interior natural Steiner points
// into sub-paths, and each sub-path becomes a Section listing every cable
// whose own end-to-end route shares at least two cells with it. A cable
// that maps to no section (an isolated network, or one this package was
// not given the tree for) still gets a single-cable fallback section.
//
// Reroute re-runs a single cable's shortest path through progressively
// weaker congestion weighting (redCable stepped down from 0.55) when its
// first route exceeds a declared length ceiling, reporting a
// ProblematicCable if even the most relaxed attempt still does not fit.
//
// This package defines its own minimal CableRoute/Section types rather
// than importing steiner or routing, to keep the dependency graph
// one-directional: routing composes steiner and sections, not the other
// way around.
package sections
