// Package fixtures builds deterministic routing.GridConfig values for
// tests by composing an ordered list of Option values over a zero-value
// config, the way a graph-builder package composes a graph from an
// ordered list of constructors over a resolved config. There is no
// stochastic path here (the routing domain has no random-topology
// analogue), so Option mutates a plain struct rather than threading a
// seeded *rand.Rand.
package fixtures
