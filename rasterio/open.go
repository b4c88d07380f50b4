// SPDX-License-Identifier: MIT

package rasterio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/rasterdist/raster"
)

// Open reads the grid at path using the codec chosen by its extension.
func Open(path string) (*raster.Grid, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".asc", ".txt":
		return ReadASCIIFile(path)
	default:
		return nil, fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedFormat)
	}
}

// Save writes g to path using the codec chosen by its extension.
func Save(path string, g *raster.Grid) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".asc", ".txt":
		return WriteASCIIFile(path, g)
	default:
		return fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedFormat)
	}
}
