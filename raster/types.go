// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"math"
)

// DefaultNoData is the missing-data sentinel used when a format does not
// declare one.
const DefaultNoData = -9999.0

// Header describes the shape and georeferencing of a grid.
//
//   - Rows, Cols: grid dimensions, both > 0.
//   - NoData: missing-data sentinel; preserved from input to output.
//   - ResX, ResY: horizontal and vertical cell resolution in ground units.
//   - XLLCorner, YLLCorner: lower-left corner of the grid in ground units.
type Header struct {
	Rows, Cols           int
	NoData               float64
	ResX, ResY           float64
	XLLCorner, YLLCorner float64
}

// Validate checks the header's shape and resolution. Rows×Cols must fit in an int.
// Returns ErrInvalidDimensions or ErrBadResolution wrapped with the offending values.
func (h Header) Validate() error {
	if h.Rows <= 0 || h.Cols <= 0 {
		return fmt.Errorf("%dx%d: %w", h.Rows, h.Cols, ErrInvalidDimensions)
	}
	if h.Rows > math.MaxInt/h.Cols {
		return fmt.Errorf("%dx%d overflows the cell count: %w", h.Rows, h.Cols, ErrInvalidDimensions)
	}
	if !validResolution(h.ResX) || !validResolution(h.ResY) {
		return fmt.Errorf("res=(%g,%g): %w", h.ResX, h.ResY, ErrBadResolution)
	}

	return nil
}

// CellSize returns the average of the horizontal and vertical resolution,
// the factor converting a cell-count distance into ground units.
func (h Header) CellSize() float64 {
	return (h.ResX + h.ResY) / 2
}

func validResolution(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

// Source is the read side of a grid: shape, resolution, sentinel and a
// bounded accessor. At must return NoData() outside [0,Rows())×[0,Cols()).
type Source interface {
	Rows() int
	Cols() int
	NoData() float64
	ResolutionX() float64
	ResolutionY() float64
	At(row, col int) float64
}

// Sink is the write side of a grid. Set outside the grid is a programming error.
type Sink interface {
	Rows() int
	Cols() int
	Set(row, col int, v float64)
}

// IsNoData reports whether v equals the sentinel. A NaN sentinel matches NaN values.
func IsNoData(v, nodata float64) bool {
	return v == nodata || (math.IsNaN(nodata) && math.IsNaN(v))
}

// IsTarget reports whether v marks a target cell: neither 0 nor the sentinel.
func IsTarget(v, nodata float64) bool {
	return v != 0 && !IsNoData(v, nodata)
}
