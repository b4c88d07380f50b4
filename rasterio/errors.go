// SPDX-License-Identifier: MIT

package rasterio

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed ASCII grid header entry.
	ErrBadHeader = errors.New("rasterio: bad grid header")

	// ErrShortData indicates fewer cell values than nrows×ncols.
	ErrShortData = errors.New("rasterio: not enough cell values")

	// ErrExtraData indicates more cell values than nrows×ncols.
	ErrExtraData = errors.New("rasterio: unexpected trailing cell values")

	// ErrUnsupportedFormat indicates no codec handles the file extension.
	ErrUnsupportedFormat = errors.New("rasterio: unsupported grid format")

	// ErrNotFound indicates no archived grid has the requested id.
	ErrNotFound = errors.New("rasterio: grid not found")
)
