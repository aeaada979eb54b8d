package weightgraph

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied to Build.
	ErrNilGrid = errors.New("weightgraph: grid is nil")

	// ErrBadRedCable indicates redCable is outside the valid (0,1] range.
	ErrBadRedCable = errors.New("weightgraph: redCable must be in (0,1]")
)
