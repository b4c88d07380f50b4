// SPDX-License-Identifier: MIT

// Package raster - Grid storage (row-major) & bounded accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Make reads total: At outside the grid returns the NoData sentinel instead of failing.
//   - Make writes strict: Set outside the grid is a programming error and panics.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) zero-init; At/Set: O(1); Clone/Values: O(r*c).

package raster

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a concrete row-major raster.
//   - hdr holds shape, sentinel, resolution and corner.
//   - data is a flat buffer of length Rows*Cols (offset = r*Cols + c).
//   - Metadata holds free-form provenance lines ("Created by ...", "Input file: ...").
type Grid struct {
	hdr      Header
	data     []float64
	Metadata []string
}

// Compile-time assertions for the grid contracts.
var (
	_ Source       = (*Grid)(nil)
	_ Sink         = (*Grid)(nil)
	_ fmt.Stringer = (*Grid)(nil)
)

// NewGrid creates a zero-filled grid described by h.
//
// Implementation:
//   - Stage 1: validate h (shape > 0, finite positive resolution).
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadResolution (wrapped with the offending values).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid(h Header) (*Grid, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	return &Grid{hdr: h, data: make([]float64, h.Rows*h.Cols)}, nil
}

// NewGridFilled creates a grid described by h with every cell set to v.
func NewGridFilled(h Header, v float64) (*Grid, error) {
	g, err := NewGrid(h)
	if err != nil {
		return nil, err
	}
	g.Fill(v)

	return g, nil
}

// NewLike creates a zero-filled grid with the shape, sentinel and resolution of src.
// When src is a *Grid its corner coordinates are copied as well.
func NewLike(src Source) (*Grid, error) {
	h := Header{
		Rows:   src.Rows(),
		Cols:   src.Cols(),
		NoData: src.NoData(),
		ResX:   src.ResolutionX(),
		ResY:   src.ResolutionY(),
	}
	if g, ok := src.(*Grid); ok {
		h.XLLCorner, h.YLLCorner = g.hdr.XLLCorner, g.hdr.YLLCorner
	}

	return NewGrid(h)
}

// FromRows builds a unit-resolution grid from a rectangular [][]float64.
// The input is deep-copied.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or its first row is empty.
//   - ErrNonRectangular if any row length differs.
func FromRows(rows [][]float64, nodata float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(Header{Rows: len(rows), Cols: cols, NoData: nodata, ResX: 1, ResY: 1})
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.data[r*cols:(r+1)*cols], row)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.hdr.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.hdr.Cols }

// NoData returns the missing-data sentinel.
func (g *Grid) NoData() float64 { return g.hdr.NoData }

// ResolutionX returns the horizontal cell resolution.
func (g *Grid) ResolutionX() float64 { return g.hdr.ResX }

// ResolutionY returns the vertical cell resolution.
func (g *Grid) ResolutionY() float64 { return g.hdr.ResY }

// Header returns a copy of the grid header.
func (g *Grid) Header() Header { return g.hdr }

// CellSize returns the average of the two resolutions.
func (g *Grid) CellSize() float64 { return g.hdr.CellSize() }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.hdr.Rows && col >= 0 && col < g.hdr.Cols
}

// At returns the value at (row, col), or NoData() when the coordinates fall
// outside the grid. It never panics.
// Complexity: O(1).
func (g *Grid) At(row, col int) float64 {
	if !g.InBounds(row, col) {
		return g.hdr.NoData
	}

	return g.data[row*g.hdr.Cols+col]
}

// Set assigns v at (row, col).
// Writing outside the grid is a programming error: Set panics with an error
// wrapping ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v float64) {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("Grid.Set(%d,%d) on %dx%d: %w", row, col, g.hdr.Rows, g.hdr.Cols, ErrOutOfRange))
	}
	g.data[row*g.hdr.Cols+col] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// SameShape reports whether src has the same number of rows and columns as g.
func (g *Grid) SameShape(src Source) bool {
	return src != nil && src.Rows() == g.hdr.Rows && src.Cols() == g.hdr.Cols
}

// AddMetadata appends a provenance line.
func (g *Grid) AddMetadata(entry string) {
	g.Metadata = append(g.Metadata, entry)
}

// Values returns a row-major copy of the cell values.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)

	return out
}

// SetValues replaces all cells from a row-major slice of length Rows*Cols.
// Returns ErrShapeMismatch when the length differs.
func (g *Grid) SetValues(values []float64) error {
	if len(values) != len(g.data) {
		return fmt.Errorf("got %d values for %dx%d: %w", len(values), g.hdr.Rows, g.hdr.Cols, ErrShapeMismatch)
	}
	copy(g.data, values)

	return nil
}

// Clone returns a deep copy of the grid, metadata included.
// Complexity: O(r*c) time and memory.
func (g *Grid) Clone() *Grid {
	out := &Grid{hdr: g.hdr, data: g.Values()}
	if len(g.Metadata) > 0 {
		out.Metadata = append([]string(nil), g.Metadata...)
	}

	return out
}

// String renders the grid one bracketed row per line, for debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.hdr.Rows; r++ {
		sb.WriteString(_fmtRowOpen)
		for c := 0; c < g.hdr.Cols; c++ {
			v := g.data[r*g.hdr.Cols+c]
			if math.IsInf(v, 1) {
				sb.WriteString("+Inf")
			} else {
				fmt.Fprintf(&sb, "%g", v)
			}
			if c < g.hdr.Cols-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
