// SPDX-License-Identifier: MIT

// Package rasterio loads and persists raster.Grid values.
//
// What:
//
//   - ESRI ASCII grids (.asc, .txt): ReadASCII / WriteASCII and file helpers.
//     The file helpers keep Grid.Metadata in a "<path>.meta" sidecar, one
//     entry per line, since the format has no place for it.
//   - Open / Save pick a codec from the file extension.
//   - Store archives grids in a SQLite database (modernc.org/sqlite, no cgo),
//     keyed by a UUID, with header, provenance metadata and a gob+gzip blob.
//
// Values are written with the shortest round-tripping representation, so
// +Inf distances and NaN sentinels survive a write/read cycle unchanged.
//
// Errors:
//
//   - ErrBadHeader: missing or malformed ASCII header entry.
//   - ErrShortData / ErrExtraData: cell count differs from nrows×ncols.
//   - ErrUnsupportedFormat: no codec for the file extension.
//   - ErrNotFound: Store.Load on an unknown id.
package rasterio
