// SPDX-License-Identifier: MIT

// Package render draws a raster.Grid as a heat map image with gonum/plot.
// NoData and infinite cells are drawn in a neutral colour so unreachable or
// missing areas stay visible next to finite distances.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/rasterdist/raster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Options controls the rendered image.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	Colors int         // palette size, >= 2
	NaN    color.Color // colour of NoData and ±Inf cells
}

// DefaultOptions returns a 15×15 cm image with a 255-colour palette.
func DefaultOptions() Options {
	return Options{
		Width:  15 * vg.Centimeter,
		Height: 15 * vg.Centimeter,
		Colors: 255,
		NaN:    color.Gray{Y: 200},
	}
}

// gridXYZ adapts a raster.Grid to plotter.GridXYZ. Heat map rows grow
// northward while raster rows grow southward, so rows are flipped.
type gridXYZ struct {
	g *raster.Grid
}

var _ plotter.GridXYZ = gridXYZ{}

func (x gridXYZ) Dims() (c, r int) { return x.g.Cols(), x.g.Rows() }

func (x gridXYZ) Z(c, r int) float64 {
	v := x.g.At(x.g.Rows()-1-r, c)
	if raster.IsNoData(v, x.g.NoData()) || math.IsInf(v, 0) {
		return math.NaN()
	}

	return v
}

func (x gridXYZ) X(c int) float64 {
	h := x.g.Header()
	return h.XLLCorner + (float64(c)+0.5)*h.ResX
}

func (x gridXYZ) Y(r int) float64 {
	h := x.g.Header()
	return h.YLLCorner + (float64(r)+0.5)*h.ResY
}

// valueRange returns the finite value range of g, widened to a unit span when
// the grid is constant or has no finite value.
func valueRange(g *raster.Grid) (lo, hi float64) {
	st := raster.Summarize(g)
	lo, hi = st.Min, st.Max
	if math.IsNaN(lo) {
		return 0, 1
	}
	if hi <= lo {
		hi = lo + 1
	}

	return lo, hi
}

// NewPlot builds the heat map plot for g without writing it.
func NewPlot(g *raster.Grid, opts Options) (*plot.Plot, error) {
	if g == nil {
		return nil, fmt.Errorf("render: nil grid")
	}
	if opts.Colors < 2 {
		opts.Colors = DefaultOptions().Colors
	}
	if opts.NaN == nil {
		opts.NaN = DefaultOptions().NaN
	}

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(gridXYZ{g: g}, cm.Palette(opts.Colors))
	hm.Min, hm.Max = valueRange(g)
	hm.NaN = opts.NaN

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Easting"
	p.Y.Label.Text = "Northing"
	p.Add(hm)

	return p, nil
}

// WritePNG renders g and saves it to path. The image format follows the
// extension of path (png, svg, pdf, ...).
func WritePNG(g *raster.Grid, path string, opts Options) error {
	p, err := NewPlot(g, opts)
	if err != nil {
		return err
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
