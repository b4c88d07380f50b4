// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/rasterdist/config"
	"github.com/katalvlaran/rasterdist/edt"
	"github.com/katalvlaran/rasterdist/raster"
	"github.com/katalvlaran/rasterdist/rasterio"
	"github.com/katalvlaran/rasterdist/render"
)

// ErrInvalidInput is returned when the job is missing or cannot run as given.
var ErrInvalidInput = errors.New("app: invalid input")

// Result describes a finished run.
type Result struct {
	Output   string
	Image    string // empty when no heat map was requested
	StoreID  string // empty when no archive was requested
	Stats    raster.Stats
	Duration time.Duration
}

// Run executes job and logs to out. Paths are resolved against the job's
// working directory before anything is read. The context is checked before
// and after the transform; a cancelled run writes nothing. The provenance
// metadata lands in the output's sidecar and in the archive.
func Run(ctx context.Context, job *config.Job, out io.Writer) (*Result, error) {
	if job == nil {
		return nil, fmt.Errorf("%w: nil job", ErrInvalidInput)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	job = job.Resolve()
	logger := newLogger(job.LogLevel, job.LogFormat, out)

	progressLevel := slog.LevelDebug
	if job.Verbose {
		progressLevel = slog.LevelInfo
	}

	logger.Info("Reading data...", "input", job.Input)
	src, err := rasterio.Open(job.Input)
	if err != nil {
		return nil, fmt.Errorf("app: read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	dist, err := edt.Transform(src,
		edt.WithLogger(logger),
		edt.WithProgress(func(stage edt.Stage, percent int) {
			logger.Log(ctx, progressLevel, "progress", "stage", stage.String(), "percent", percent)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("app: transform: %w", err)
	}
	elapsed := time.Since(start)

	dist.AddMetadata("Created by rasterdist EuclideanDistance tool")
	dist.AddMetadata("Input file: " + job.Input)
	dist.AddMetadata("Elapsed Time (excluding I/O): " + elapsed.String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("Saving data...", "output", job.Output)
	if err := rasterio.Save(job.Output, dist); err != nil {
		return nil, fmt.Errorf("app: write output: %w", err)
	}

	res := &Result{Output: job.Output, Duration: elapsed, Stats: raster.Summarize(dist)}

	if job.Render != nil {
		opts := render.DefaultOptions()
		opts.Title = job.Render.Title
		if err := render.WritePNG(dist, job.Render.Path, opts); err != nil {
			return nil, fmt.Errorf("app: render: %w", err)
		}
		res.Image = job.Render.Path
		logger.Info("Heat map written.", "path", job.Render.Path)
	}

	if job.Store != nil {
		name := job.Store.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(job.Input), filepath.Ext(job.Input))
		}
		id, err := archive(ctx, job.Store.Path, name, dist)
		if err != nil {
			return nil, fmt.Errorf("app: archive: %w", err)
		}
		res.StoreID = id
		logger.Info("Grid archived.", "store", job.Store.Path, "id", id)
	}

	logger.Info("Distance transform complete.",
		"rows", dist.Rows(),
		"cols", dist.Cols(),
		"valid", res.Stats.Valid,
		"nodata", res.Stats.NoData,
		"unreachable", res.Stats.Infinite,
		"min", res.Stats.Min,
		"max", res.Stats.Max,
		"mean", res.Stats.Mean,
		"elapsed", elapsed,
	)

	return res, nil
}

func archive(ctx context.Context, path, name string, g *raster.Grid) (string, error) {
	s, err := rasterio.OpenStore(path)
	if err != nil {
		return "", err
	}
	defer s.Close()

	return s.Save(ctx, name, g)
}
