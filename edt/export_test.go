// SPDX-License-Identifier: MIT

package edt

import "github.com/katalvlaran/rasterdist/raster"

// Direction mirrors the unexported neighbour table entries for edt_test.
type Direction struct {
	DRow, DCol   int
	StepX, StepY float64
}

func exportDirs(sc scan) []Direction {
	out := make([]Direction, len(sc.dirs))
	for i, d := range sc.dirs {
		out[i] = Direction{DRow: d.dRow, DCol: d.dCol, StepX: d.stepX, StepY: d.stepY}
	}

	return out
}

// ForwardDirections returns the forward scan's neighbour table in evaluation order.
func ForwardDirections() []Direction { return exportDirs(forwardScan) }

// BackwardDirections returns the backward scan's neighbour table in evaluation order.
func BackwardDirections() []Direction { return exportDirs(backwardScan) }

// StepCost exposes direction.cost.
func StepCost(d Direction, ox, oy float64) float64 {
	return direction{dRow: d.DRow, dCol: d.DCol, stepX: d.StepX, stepY: d.StepY}.cost(ox, oy)
}

// SquaredScans runs the first three passes on src and returns snapshots of the
// squared-distance grid after the forward and after the backward scan.
func SquaredScans(src raster.Source) (afterForward, afterBackward *raster.Grid) {
	ws := newWorkspace(src)
	rep := newReporter(nil)
	ws.initialize(src, rep)
	ws.pass(forwardScan, rep)
	afterForward = ws.sq.Clone()
	ws.pass(backwardScan, rep)

	return afterForward, ws.sq.Clone()
}
