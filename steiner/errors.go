package steiner

import "errors"

var (
	// ErrTooFewTerminals indicates fewer than two terminals were supplied;
	// a tree needs at least two endpoints to connect.
	ErrTooFewTerminals = errors.New("steiner: at least two terminals are required")

	// ErrDisconnected indicates some terminal is unreachable from the
	// others under the current weightgraph.Graph.
	ErrDisconnected = errors.New("steiner: terminals are not all mutually reachable")
)
