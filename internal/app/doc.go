// SPDX-License-Identifier: MIT

// Package app runs one distance-transform job: it reads the input raster,
// applies the transform, writes the result and the optional heat map and
// archive, and logs a summary. It is decoupled from the CLI that builds the
// job.
package app
