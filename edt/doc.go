// SPDX-License-Identifier: MIT

// Package edt computes the Euclidean distance transform of a raster: for every
// cell, the straight-line distance to the nearest target cell, in ground units.
//
// 🚀 What is a two-scan distance transform?
//
//	Instead of searching for the nearest target from every cell, the
//	transform of Shih & Wu (2004) propagates squared distances through the
//	3×3 neighbourhood in two raster scans. Each cell carries an offset vector
//	(ox, oy), the step counts toward its best known target, so the growth of
//	the squared distance when stepping one more cell is known exactly:
//	  • along X:   (ox+1)² − ox² = 2·ox + 1
//	  • along Y:   (oy+1)² − oy² = 2·oy + 1
//	  • diagonal:  (ox+1)² + (oy+1)² − ox² − oy² = 2·(ox + oy + 1)
//
// ✨ Passes (strictly sequential):
//  1. initializing: 0 for targets (non-zero, non-NoData), +Inf otherwise.
//  2. pass 1 of 3: top-left → bottom-right over W, NW, N, NE neighbours.
//  3. pass 2 of 3: bottom-right → top-left over E, SE, S, SW neighbours.
//  4. pass 3 of 3: sqrt(squared) × cell size; NoData input stays NoData.
//
// Cells that never reach a target (an input without targets) end at +Inf;
// this is a defined output, not an error.
//
// ⚙️ Usage:
//
//	out, err := edt.Transform(src,
//	  edt.WithProgress(func(s edt.Stage, pct int) { log.Println(s, pct) }),
//	)
//
// Performance:
//
//   - Time:   O(rows·cols), four passes, four neighbours per scanned cell.
//   - Memory: three working grids plus the output, O(rows·cols).
//
// Reference: Shih FY and Wu Y-T (2004), Fast Euclidean distance transformation
// in two scans using a 3×3 neighborhood, Computer Vision and Image
// Understanding, 93: 195–205.
package edt
