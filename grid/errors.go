package grid

import "errors"

var (
	// ErrInvalidDimension indicates a requested width or height below one.
	ErrInvalidDimension = errors.New("grid: width and height must each be at least 1")
	// ErrNoNeighbor indicates a wall-pair operation pointing outside the grid.
	ErrNoNeighbor = errors.New("grid: no neighbor in that direction")
)
