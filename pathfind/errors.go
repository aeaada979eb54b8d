package pathfind

import "errors"

var (
	// ErrEmptySource indicates that no source vertex was supplied.
	ErrEmptySource = errors.New("pathfind: source vertex ID is empty")

	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrVertexNotFound indicates the source vertex does not exist in the
	// graph.
	ErrVertexNotFound = errors.New("pathfind: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was encountered.
	// weightgraph never produces one; this guards against misuse by a
	// future caller that builds a core.Graph some other way.
	ErrNegativeWeight = errors.New("pathfind: negative edge weight encountered")
)
