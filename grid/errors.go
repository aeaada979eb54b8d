package grid

import "errors"

// ErrInvalidDimensions indicates width or height is not positive.
var ErrInvalidDimensions = errors.New("grid: width and height must be positive")
