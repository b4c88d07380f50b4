// SPDX-License-Identifier: MIT

package edt_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rasterdist/edt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanTables_VisitOrder: every forward neighbour precedes the cell in
// row-major order and every backward neighbour follows it.
func TestScanTables_VisitOrder(t *testing.T) {
	for _, d := range edt.ForwardDirections() {
		visited := d.DRow < 0 || (d.DRow == 0 && d.DCol < 0)
		assert.True(t, visited, "forward neighbour %+v is not yet visited", d)
	}
	for _, d := range edt.BackwardDirections() {
		visited := d.DRow > 0 || (d.DRow == 0 && d.DCol > 0)
		assert.True(t, visited, "backward neighbour %+v is not yet visited", d)
	}
}

// TestScanTables_Mirror: the backward table is the forward table rotated by
// 180°, entry by entry, with identical unit steps.
func TestScanTables_Mirror(t *testing.T) {
	fwd, bwd := edt.ForwardDirections(), edt.BackwardDirections()
	require.Len(t, bwd, len(fwd))
	for i := range fwd {
		assert.Equal(t, -fwd[i].DRow, bwd[i].DRow, "entry %d", i)
		assert.Equal(t, -fwd[i].DCol, bwd[i].DCol, "entry %d", i)
		assert.Equal(t, fwd[i].StepX, bwd[i].StepX, "entry %d", i)
		assert.Equal(t, fwd[i].StepY, bwd[i].StepY, "entry %d", i)
	}
}

// TestScanTables_StepsMatchGeometry: a direction steps along X iff it moves
// across columns and along Y iff it moves across rows.
func TestScanTables_StepsMatchGeometry(t *testing.T) {
	for _, d := range append(edt.ForwardDirections(), edt.BackwardDirections()...) {
		assert.Equal(t, math.Abs(float64(d.DCol)), d.StepX, "%+v", d)
		assert.Equal(t, math.Abs(float64(d.DRow)), d.StepY, "%+v", d)
	}
}

// TestStepCost_ReconstructsSquaredDistance: for every table entry and offset,
// cost equals (ox+sx)² + (oy+sy)² − ox² − oy², so one diagonal formula serves
// all four diagonal neighbours.
func TestStepCost_ReconstructsSquaredDistance(t *testing.T) {
	for _, d := range append(edt.ForwardDirections(), edt.BackwardDirections()...) {
		for ox := 0.0; ox < 6; ox++ {
			for oy := 0.0; oy < 6; oy++ {
				want := (ox+d.StepX)*(ox+d.StepX) + (oy+d.StepY)*(oy+d.StepY) - ox*ox - oy*oy
				assert.Equal(t, want, edt.StepCost(d, ox, oy), "%+v ox=%g oy=%g", d, ox, oy)
			}
		}
	}
}

// TestScans_MonotonicCorrection: the backward scan never raises a squared
// distance left by the forward scan.
func TestScans_MonotonicCorrection(t *testing.T) {
	fixtures := [][2][][2]int{
		{{{1, 1}, {3, 5}}, nil},
		{{{0, 6}}, {{2, 2}}},
		{{{4, 0}, {0, 3}, {2, 6}}, {{1, 1}, {3, 4}}},
	}
	for i, fx := range fixtures {
		src := mkGrid(t, 5, 7, fx[0], fx[1])
		fwd, bwd := edt.SquaredScans(src)
		for r := 0; r < src.Rows(); r++ {
			for c := 0; c < src.Cols(); c++ {
				assert.LessOrEqual(t, bwd.At(r, c), fwd.At(r, c), "fixture %d cell (%d,%d)", i, r, c)
			}
		}
	}
}

// TestScans_ForwardAndBackwardSquared pins both snapshots for two targets.
func TestScans_ForwardAndBackwardSquared(t *testing.T) {
	src := mkGrid(t, 5, 7, [][2]int{{1, 1}, {3, 5}}, nil)
	fwd, bwd := edt.SquaredScans(src)

	wantFwd := []float64{
		inf, inf, inf, inf, inf, inf, inf,
		inf, 0, 1, 4, 9, 16, 25,
		2, 1, 2, 5, 10, 17, 26,
		5, 4, 5, 8, 13, 0, 1,
		10, 9, 10, 13, 2, 1, 2,
	}
	wantBwd := []float64{
		2, 1, 2, 5, 10, 9, 10,
		1, 0, 1, 4, 5, 4, 5,
		2, 1, 2, 5, 2, 1, 2,
		5, 4, 5, 4, 1, 0, 1,
		10, 9, 10, 5, 2, 1, 2,
	}
	assert.Equal(t, wantFwd, fwd.Values())
	assert.Equal(t, wantBwd, bwd.Values())
}
