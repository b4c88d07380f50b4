// SPDX-License-Identifier: MIT

package edt

import (
	"time"

	"github.com/katalvlaran/rasterdist/raster"
)

// Transform computes the Euclidean distance from every cell of src to the
// nearest target cell (non-zero, non-NoData), in ground units.
//
// Implementation:
//   - Stage 1: validate src (non-nil, positive shape, finite positive resolution).
//   - Stage 2: allocate the squared-distance and offset working grids.
//   - Stage 3: initialize → forward scan → backward scan → finalize, each
//     completing before the next starts.
//
// Behavior highlights:
//   - The output shares src's shape, sentinel and resolution.
//   - NoData input cells are NoData in the output.
//   - Without any target every valid output cell is +Inf.
//   - src is only read; nothing is shared between calls.
//
// Errors:
//   - ErrNilSource, raster.ErrInvalidDimensions, raster.ErrBadResolution.
//
// Complexity:
//   - Time O(rows·cols), Space O(rows·cols).
func Transform(src raster.Source, opts ...Option) (*raster.Grid, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	out, err := raster.NewLike(src)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	cellSize := o.cellSize
	if cellSize == 0 {
		cellSize = out.CellSize()
	}

	ws := newWorkspace(src)
	ws.mustMatch(src)
	rep := newReporter(o.progress)

	run := func(stage Stage, fn func()) {
		start := time.Now()
		rep.begin(stage)
		fn()
		o.logger.Debug("edt: pass complete", "stage", stage.String(), "elapsed", time.Since(start))
	}
	run(StageInit, func() { ws.initialize(src, rep) })
	run(StageForward, func() { ws.pass(forwardScan, rep) })
	run(StageBackward, func() { ws.pass(backwardScan, rep) })
	run(StageFinalize, func() { ws.finalize(src, out, cellSize, rep) })

	return out, nil
}
