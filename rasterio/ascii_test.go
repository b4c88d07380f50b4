// SPDX-License-Identifier: MIT

package rasterio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/rasterdist/raster"
	"github.com/katalvlaran/rasterdist/rasterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleASC = `ncols         4
nrows         3
xllcorner     100.5
yllcorner     200
cellsize      2
NODATA_value  -9999
0 0 1 0
0 -9999 0 0
3.25 0 0 0
`

func TestReadASCII(t *testing.T) {
	g, err := rasterio.ReadASCII(strings.NewReader(sampleASC))
	require.NoError(t, err)

	want := raster.Header{Rows: 3, Cols: 4, NoData: -9999, ResX: 2, ResY: 2, XLLCorner: 100.5, YLLCorner: 200}
	assert.Equal(t, want, g.Header())
	assert.Equal(t, []float64{0, 0, 1, 0, 0, -9999, 0, 0, 3.25, 0, 0, 0}, g.Values())
}

func TestReadASCII_CenterAndDxDy(t *testing.T) {
	in := "NCOLS 2\nNROWS 1\nXLLCENTER 1\nYLLCENTER 2\nDX 2\nDY 4\n5 6\n"
	g, err := rasterio.ReadASCII(strings.NewReader(in))
	require.NoError(t, err)

	h := g.Header()
	assert.Equal(t, 0.0, h.XLLCorner, "center shifted by half a cell")
	assert.Equal(t, 0.0, h.YLLCorner)
	assert.Equal(t, 2.0, h.ResX)
	assert.Equal(t, 4.0, h.ResY)
	assert.Equal(t, raster.DefaultNoData, h.NoData, "missing NODATA_value uses the default")
	assert.Equal(t, []float64{5, 6}, g.Values())
}

func TestReadASCII_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no-shape", "cellsize 1\n0\n", rasterio.ErrBadHeader},
		{"no-cellsize", "ncols 1\nnrows 1\n0\n", rasterio.ErrBadHeader},
		{"bad-value", "ncols x\nnrows 1\ncellsize 1\n0\n", rasterio.ErrBadHeader},
		{"fractional-shape", "ncols 1.5\nnrows 1\ncellsize 1\n0\n", rasterio.ErrBadHeader},
		{"short", "ncols 2\nnrows 2\ncellsize 1\n0 0 0\n", rasterio.ErrShortData},
		{"extra", "ncols 1\nnrows 1\ncellsize 1\n0 0\n", rasterio.ErrExtraData},
		{"zero-rows", "ncols 1\nnrows 0\ncellsize 1\n", raster.ErrInvalidDimensions},
		{"bad-cellsize", "ncols 1\nnrows 1\ncellsize -1\n0\n", raster.ErrBadResolution},
		{"overflow", "ncols 3037000500\nnrows 3037000500\ncellsize 1\n0\n", rasterio.ErrBadHeader},
		{"too-many-cells", "ncols 100000\nnrows 100000\ncellsize 1\n0\n", rasterio.ErrBadHeader},
		{"huge-single-axis", "ncols 1e300\nnrows 1\ncellsize 1\n0\n", rasterio.ErrBadHeader},
		{"nan-shape", "ncols NaN\nnrows 1\ncellsize 1\n0\n", rasterio.ErrBadHeader},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rasterio.ReadASCII(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestASCII_RoundTrip keeps +Inf distances and a NaN sentinel intact.
func TestASCII_RoundTrip(t *testing.T) {
	h := raster.Header{Rows: 2, Cols: 3, NoData: math.NaN(), ResX: 1.5, ResY: 2.5, XLLCorner: -3, YLLCorner: 7}
	g, err := raster.NewGrid(h)
	require.NoError(t, err)
	require.NoError(t, g.SetValues([]float64{0, 1.25, math.Inf(1), math.NaN(), 1e-7, 123456.789}))

	var buf bytes.Buffer
	require.NoError(t, rasterio.WriteASCII(&buf, g))
	assert.Contains(t, buf.String(), "dx ")
	assert.Contains(t, buf.String(), "+Inf")

	back, err := rasterio.ReadASCII(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Values(), back.Values(), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, math.IsNaN(back.NoData()))
	assert.Equal(t, h.ResX, back.ResolutionX())
	assert.Equal(t, h.ResY, back.ResolutionY())
	assert.Equal(t, h.XLLCorner, back.Header().XLLCorner)
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	g, err := rasterio.ReadASCII(strings.NewReader(sampleASC))
	require.NoError(t, err)

	path := filepath.Join(dir, "out.ASC")
	require.NoError(t, rasterio.Save(path, g))
	back, err := rasterio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, g.Header(), back.Header())
	assert.Equal(t, g.Values(), back.Values())

	assert.ErrorIs(t, rasterio.Save(filepath.Join(dir, "out.tif"), g), rasterio.ErrUnsupportedFormat)
	_, err = rasterio.Open(filepath.Join(dir, "in.tif"))
	assert.ErrorIs(t, err, rasterio.ErrUnsupportedFormat)

	_, err = rasterio.Open(filepath.Join(dir, "missing.asc"))
	assert.ErrorIs(t, err, os.ErrNotExist, "I/O errors surface unchanged")
}

func TestASCIIFile_MetadataSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dist.asc")
	g, err := raster.FromRows([][]float64{{0, 1}}, -9999)
	require.NoError(t, err)
	g.AddMetadata("Created by test")
	g.AddMetadata("Input file: in.asc")

	require.NoError(t, rasterio.Save(path, g))
	side, err := os.ReadFile(rasterio.MetadataPath(path))
	require.NoError(t, err)
	assert.Equal(t, "Created by test\nInput file: in.asc\n", string(side))

	back, err := rasterio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, g.Metadata, back.Metadata)

	// Rewriting without metadata removes the stale sidecar.
	g.Metadata = nil
	require.NoError(t, rasterio.Save(path, g))
	_, err = os.Stat(rasterio.MetadataPath(path))
	assert.True(t, os.IsNotExist(err))

	back, err = rasterio.Open(path)
	require.NoError(t, err)
	assert.Nil(t, back.Metadata)
}
