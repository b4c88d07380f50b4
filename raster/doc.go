// SPDX-License-Identifier: MIT

// Package raster provides the bounded 2D grid used by every other package in
// rasterdist: a row-major float64 buffer with a header (shape, resolution,
// lower-left corner) and a missing-data sentinel.
//
// What:
//
//   - Grid stores rows×cols float64 cells in a flat row-major slice.
//   - At(row, col) never fails: coordinates outside [0,rows)×[0,cols) read
//     the grid's NoData sentinel, so neighbor probes past any edge behave as
//     "nothing reachable in that direction".
//   - Set(row, col, v) outside the grid is a programming error and panics.
//   - Source and Sink describe the minimal contract a transform needs from a
//     grid producer and consumer.
//
// Complexity:
//
//   - NewGrid, Clone, Values, Summarize: O(rows×cols) time and memory.
//   - At, Set, InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols are not positive.
//   - ErrNonRectangular: FromRows received rows of differing lengths.
//   - ErrBadResolution: a resolution is zero, negative, NaN or infinite.
//   - ErrOutOfRange: wrapped in the panic raised by Set outside the grid.
//   - ErrShapeMismatch: two grids that must share a shape do not.
package raster
