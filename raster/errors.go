// SPDX-License-Identifier: MIT

package raster

import "errors"

// Every message is prefixed with "raster: " so it can be grepped in logs.
// Match with errors.Is; callers may wrap with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrInvalidDimensions is returned when rows or cols are not positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")

	// ErrBadResolution indicates a non-positive or non-finite cell resolution.
	ErrBadResolution = errors.New("raster: resolution must be finite and > 0")

	// ErrOutOfRange is carried by the panic Set raises outside the grid.
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrShapeMismatch indicates two grids that must agree in shape do not.
	ErrShapeMismatch = errors.New("raster: shape mismatch")
)
