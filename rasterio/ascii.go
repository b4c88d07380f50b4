// SPDX-License-Identifier: MIT

package rasterio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rasterdist/raster"
)

// ESRI ASCII header keys (case-insensitive on read).
const (
	keyNCols     = "ncols"
	keyNRows     = "nrows"
	keyXLLCorner = "xllcorner"
	keyYLLCorner = "yllcorner"
	keyXLLCenter = "xllcenter"
	keyYLLCenter = "yllcenter"
	keyCellSize  = "cellsize"
	keyDX        = "dx"
	keyDY        = "dy"
	keyNoData    = "nodata_value"
)

// MaxCells bounds nrows×ncols accepted by ReadASCII, about 2 GiB of float64
// cells. Larger headers are rejected before any cell is allocated.
const MaxCells = 1 << 28

// initialCells caps the up-front capacity of the cell buffer.
const initialCells = 1 << 16

func isHeaderKey(tok string) bool {
	switch tok {
	case keyNCols, keyNRows, keyXLLCorner, keyYLLCorner, keyXLLCenter,
		keyYLLCenter, keyCellSize, keyDX, keyDY, keyNoData:
		return true
	}

	return false
}

// ReadASCII decodes an ESRI ASCII grid.
//
// Implementation:
//   - Stage 1: read "key value" pairs until the first token that is not a header key.
//   - Stage 2: build and validate the raster.Header (cellsize or dx/dy; center
//     coordinates are shifted to corners; NODATA_value defaults to raster.DefaultNoData).
//   - Stage 3: read exactly nrows×ncols values in row-major order.
//
// Errors:
//   - ErrBadHeader (including shapes above MaxCells), ErrShortData,
//     ErrExtraData, raster header errors, and any
//     error of r, wrapped with context.
func ReadASCII(r io.Reader) (*raster.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	hdr := map[string]float64{}
	var pending string // first data token, consumed while scanning the header
	for sc.Scan() {
		key := strings.ToLower(sc.Text())
		if !isHeaderKey(key) {
			pending = sc.Text()
			break
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%s without value: %w", key, ErrBadHeader)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", key, sc.Text(), ErrBadHeader)
		}
		hdr[key] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rasterio: read header: %w", err)
	}

	h, err := headerFromKeys(hdr)
	if err != nil {
		return nil, err
	}

	n := h.Rows * h.Cols
	values := make([]float64, 0, min(n, initialCells))
	parse := func(tok string) error {
		if len(values) == n {
			return ErrExtraData
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("cell %d %q: %w", len(values), tok, err)
		}
		values = append(values, v)

		return nil
	}
	if pending != "" {
		if err := parse(pending); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		if err := parse(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rasterio: read cells: %w", err)
	}
	if len(values) < n {
		return nil, fmt.Errorf("got %d of %d: %w", len(values), n, ErrShortData)
	}
	g, err := raster.NewGrid(h)
	if err != nil {
		return nil, err
	}
	if err := g.SetValues(values); err != nil {
		return nil, err
	}

	return g, nil
}

func headerFromKeys(kv map[string]float64) (raster.Header, error) {
	var h raster.Header
	ncols, okC := kv[keyNCols]
	nrows, okR := kv[keyNRows]
	if !okC || !okR {
		return h, fmt.Errorf("ncols/nrows required: %w", ErrBadHeader)
	}
	if ncols <= 0 || nrows <= 0 {
		return h, fmt.Errorf("%gx%g: %w", nrows, ncols, raster.ErrInvalidDimensions)
	}
	if ncols > MaxCells || nrows > MaxCells || ncols*nrows > MaxCells {
		return h, fmt.Errorf("%gx%g exceeds %d cells: %w", nrows, ncols, MaxCells, ErrBadHeader)
	}
	h.Cols, h.Rows = int(ncols), int(nrows)
	if float64(h.Cols) != ncols || float64(h.Rows) != nrows {
		return h, fmt.Errorf("ncols=%g nrows=%g not integral: %w", ncols, nrows, ErrBadHeader)
	}

	if cs, ok := kv[keyCellSize]; ok {
		h.ResX, h.ResY = cs, cs
	} else {
		dx, okX := kv[keyDX]
		dy, okY := kv[keyDY]
		if !okX || !okY {
			return h, fmt.Errorf("cellsize or dx/dy required: %w", ErrBadHeader)
		}
		h.ResX, h.ResY = dx, dy
	}

	h.XLLCorner = kv[keyXLLCorner]
	if x, ok := kv[keyXLLCenter]; ok {
		h.XLLCorner = x - h.ResX/2
	}
	h.YLLCorner = kv[keyYLLCorner]
	if y, ok := kv[keyYLLCenter]; ok {
		h.YLLCorner = y - h.ResY/2
	}

	h.NoData = raster.DefaultNoData
	if nd, ok := kv[keyNoData]; ok {
		h.NoData = nd
	}

	return h, h.Validate()
}

// WriteASCII encodes g as an ESRI ASCII grid. Square cells are written with
// "cellsize", rectangular ones with "dx"/"dy". Values use the shortest
// representation that round-trips, including +Inf and NaN.
func WriteASCII(w io.Writer, g *raster.Grid) error {
	bw := bufio.NewWriter(w)
	h := g.Header()

	fmt.Fprintf(bw, "%-13s %d\n", keyNCols, h.Cols)
	fmt.Fprintf(bw, "%-13s %d\n", keyNRows, h.Rows)
	fmt.Fprintf(bw, "%-13s %s\n", keyXLLCorner, formatValue(h.XLLCorner))
	fmt.Fprintf(bw, "%-13s %s\n", keyYLLCorner, formatValue(h.YLLCorner))
	if h.ResX == h.ResY {
		fmt.Fprintf(bw, "%-13s %s\n", keyCellSize, formatValue(h.ResX))
	} else {
		fmt.Fprintf(bw, "%-13s %s\n", keyDX, formatValue(h.ResX))
		fmt.Fprintf(bw, "%-13s %s\n", keyDY, formatValue(h.ResY))
	}
	fmt.Fprintf(bw, "%-13s %s\n", "NODATA_value", formatValue(h.NoData))

	buf := make([]byte, 0, 32)
	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			if c > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, g.At(r, c), 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("rasterio: write row %d: %w", r, err)
		}
		buf = buf[:0]
	}

	return bw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// MetadataPath returns the sidecar file holding the metadata of the grid
// stored at path, one entry per line.
func MetadataPath(path string) string {
	return path + ".meta"
}

// ReadASCIIFile opens path and decodes it with ReadASCII. Entries of the
// MetadataPath sidecar, when present, become the grid's Metadata.
func ReadASCIIFile(path string) (*raster.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadASCII(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if g.Metadata, err = readMetadata(MetadataPath(path)); err != nil {
		return nil, err
	}

	return g, nil
}

func readMetadata(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			entries = append(entries, line)
		}
	}

	return entries, nil
}

// writeMetadata writes entries to the sidecar at path, or removes a stale
// sidecar when there are none.
func writeMetadata(path string, entries []string) error {
	if len(entries) == 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strings.ReplaceAll(e, "\n", " "))
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// WriteASCIIFile creates (or truncates) path and encodes g into it. The
// grid's Metadata goes to the MetadataPath sidecar.
func WriteASCIIFile(path string, g *raster.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteASCII(f, g); err != nil {
		f.Close()

		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return writeMetadata(MetadataPath(path), g.Metadata)
}
