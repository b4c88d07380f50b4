// SPDX-License-Identifier: MIT

package edt

import (
	"fmt"

	"github.com/katalvlaran/rasterdist/raster"
)

// outside is the sentinel of the working grids. Squared distances and
// offsets are never negative, so it cannot collide with a stored value
// whatever the input's NoData is.
const outside = -1.0

// workspace owns the three working grids of one Transform call.
//   - sq: best known squared distance (cell units), 0 for targets, +Inf if none yet.
//   - ox, oy: accumulated |steps| toward the best known target along X (columns) and Y (rows).
type workspace struct {
	sq, ox, oy *raster.Grid
}

// newWorkspace allocates working grids shaped like src. src must already be
// validated; an allocation failure here is a programming error.
func newWorkspace(src raster.Source) *workspace {
	h := raster.Header{Rows: src.Rows(), Cols: src.Cols(), NoData: outside, ResX: 1, ResY: 1}

	return &workspace{sq: mustGrid(h), ox: mustGrid(h), oy: mustGrid(h)}
}

func mustGrid(h raster.Header) *raster.Grid {
	g, err := raster.NewGrid(h)
	if err != nil {
		panic(fmt.Errorf("edt: working grid: %w", err))
	}

	return g
}

// mustMatch panics when the working grids do not share src's shape.
func (ws *workspace) mustMatch(src raster.Source) {
	for _, g := range []*raster.Grid{ws.sq, ws.ox, ws.oy} {
		if !g.SameShape(src) {
			panic(fmt.Errorf("edt: working grid %dx%d vs source %dx%d: %w",
				g.Rows(), g.Cols(), src.Rows(), src.Cols(), raster.ErrShapeMismatch))
		}
	}
}
