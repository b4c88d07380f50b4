// SPDX-License-Identifier: MIT

// Package rasterdist computes Euclidean distance transforms of rasters.
//
// Every non-zero, non-NoData cell of an input grid is a target; the
// transform assigns each cell the straight-line distance, in map units, to
// its nearest target. The computation is the Shih and Wu (2004) two-scan
// algorithm: a forward and a backward raster scan propagate nearest-target
// offsets through squared-distance and offset grids, and a final pass takes
// square roots and scales by the cell size.
//
// Everything is organized under these packages:
//
//	raster/    Grid, Header, the Source and Sink interfaces, Summarize
//	edt/       Transform and its options (progress, logger, cell size)
//	rasterio/  ESRI ASCII grid codec and a SQLite grid archive
//	render/    heat map images of a grid (gonum/plot)
//	config/    HCL job files
//
// The euclidean-distance command in cmd/ wires them together:
//
//	euclidean-distance -v --wd=/data -i=streams.asc -o=distance.asc
package rasterdist
