// SPDX-License-Identifier: MIT

package edt

import (
	"math"

	"github.com/katalvlaran/rasterdist/raster"
)

// initialize fills the squared-distance grid: 0 for targets, +Inf for every
// other cell. Offsets keep their zero allocation.
// Complexity: O(rows·cols).
func (ws *workspace) initialize(src raster.Source, rep *reporter) {
	rows, cols := src.Rows(), src.Cols()
	nodata := src.NoData()
	inf := math.Inf(1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if raster.IsTarget(src.At(r, c), nodata) {
				ws.sq.Set(r, c, 0)
			} else {
				ws.sq.Set(r, c, inf)
			}
		}
		rep.rowDone(r+1, rows)
	}
}

// direction is one neighbour of a scan.
//   - dRow, dCol: neighbour position relative to the scanned cell.
//   - stepX, stepY: unit step added to the neighbour's offsets when it wins.
type direction struct {
	dRow, dCol   int
	stepX, stepY float64
}

// cost is the growth of the squared distance when extending a path whose
// offsets are (ox, oy) by one step in d.
func (d direction) cost(ox, oy float64) float64 {
	switch {
	case d.stepX != 0 && d.stepY != 0:
		return 2 * (ox + oy + 1)
	case d.stepX != 0:
		return 2*ox + 1
	default:
		return 2*oy + 1
	}
}

// scan describes one raster pass: its stage, traversal order and the ordered
// neighbours already visited under that order. Order matters for ties: the
// first minimum wins.
type scan struct {
	stage   Stage
	reverse bool
	dirs    []direction
}

var (
	forwardScan = scan{
		stage: StageForward,
		dirs: []direction{
			{dRow: 0, dCol: -1, stepX: 1, stepY: 0},  // W
			{dRow: -1, dCol: -1, stepX: 1, stepY: 1}, // NW
			{dRow: -1, dCol: 0, stepX: 0, stepY: 1},  // N
			{dRow: -1, dCol: 1, stepX: 1, stepY: 1},  // NE
		},
	}
	backwardScan = scan{
		stage:   StageBackward,
		reverse: true,
		dirs: []direction{
			{dRow: 0, dCol: 1, stepX: 1, stepY: 0},  // E
			{dRow: 1, dCol: 1, stepX: 1, stepY: 1},  // SE
			{dRow: 1, dCol: 0, stepX: 0, stepY: 1},  // S
			{dRow: 1, dCol: -1, stepX: 1, stepY: 1}, // SW
		},
	}
)

// pass runs one scan over the whole workspace.
//
// Implementation:
//   - Stage 1: walk rows (and within a row, columns) in the scan's order.
//   - Stage 2: relax each cell against the scan's neighbours.
//
// Cells depend on neighbours updated earlier in the same pass, so the walk is
// strictly sequential.
// Complexity: O(rows·cols·len(dirs)).
func (ws *workspace) pass(sc scan, rep *reporter) {
	rows, cols := ws.sq.Rows(), ws.sq.Cols()
	for i := 0; i < rows; i++ {
		row := i
		if sc.reverse {
			row = rows - 1 - i
		}
		for j := 0; j < cols; j++ {
			col := j
			if sc.reverse {
				col = cols - 1 - j
			}
			ws.relax(row, col, sc.dirs)
		}
		rep.rowDone(i+1, rows)
	}
}

// relax lowers sq(row, col) to the best neighbour candidate when it is
// strictly smaller, and moves the offsets along with it.
func (ws *workspace) relax(row, col int, dirs []direction) {
	z := ws.sq.At(row, col)
	if z == 0 {
		return
	}

	best, win := math.Inf(1), -1
	for i, d := range dirs {
		nr, nc := row+d.dRow, col+d.dCol
		nz := ws.sq.At(nr, nc)
		if nz == outside {
			continue
		}
		cand := nz + d.cost(ws.ox.At(nr, nc), ws.oy.At(nr, nc))
		if cand < best {
			best, win = cand, i
		}
	}
	if win < 0 || !(best < z) {
		return
	}

	d := dirs[win]
	nr, nc := row+d.dRow, col+d.dCol
	ws.sq.Set(row, col, best)
	ws.ox.Set(row, col, ws.ox.At(nr, nc)+d.stepX)
	ws.oy.Set(row, col, ws.oy.At(nr, nc)+d.stepY)
}

// finalize writes sqrt(sq)·cellSize into out, or the source sentinel where
// the input is missing. +Inf stays +Inf.
// Complexity: O(rows·cols).
func (ws *workspace) finalize(src raster.Source, out raster.Sink, cellSize float64, rep *reporter) {
	rows, cols := src.Rows(), src.Cols()
	nodata := src.NoData()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if raster.IsNoData(src.At(r, c), nodata) {
				out.Set(r, c, nodata)
				continue
			}
			out.Set(r, c, math.Sqrt(ws.sq.At(r, c))*cellSize)
		}
		rep.rowDone(r+1, rows)
	}
}
