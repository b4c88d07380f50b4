// SPDX-License-Identifier: MIT

// Package edt: functional configuration for Transform.
//
// Defaults:
//   - no progress observer;
//   - a discard logger, so the transform is silent unless a logger is injected;
//   - cell size taken from the source, (ResolutionX + ResolutionY) / 2.
//
// WithX constructors panic on nonsensical values (programmer error); they
// never affect the numeric result except WithCellSize.
package edt

import (
	"fmt"
	"log/slog"
	"math"
)

// Stage identifies one of the four passes of the transform.
type Stage int

const (
	// StageInit builds the starting squared-distance grid.
	StageInit Stage = iota
	// StageForward is the top-left → bottom-right scan.
	StageForward
	// StageBackward is the bottom-right → top-left scan.
	StageBackward
	// StageFinalize converts squared distances to ground units.
	StageFinalize
)

// String returns the progress label of the stage.
func (s Stage) String() string {
	switch s {
	case StageInit:
		return "initializing"
	case StageForward:
		return "pass 1 of 3"
	case StageBackward:
		return "pass 2 of 3"
	case StageFinalize:
		return "pass 3 of 3"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ProgressFunc observes the transform. It is called with the stage and its
// integer percentage (0..100) each time that percentage changes. It must not
// block; its return never affects the computation.
type ProgressFunc func(stage Stage, percent int)

// Option configures Transform.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	progress ProgressFunc
	logger   *slog.Logger
	cellSize float64 // 0 ⇒ derive from the source resolution
}

func defaultOptions() Options {
	return Options{logger: slog.New(slog.DiscardHandler)}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithProgress installs a progress observer. A nil fn disables reporting.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.progress = fn
	}
}

// WithLogger routes per-pass debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("edt: WithLogger(nil)")
	}

	return func(o *Options) {
		o.logger = l
	}
}

// WithCellSize overrides the ground size of one cell.
// Panics if size is not finite and > 0.
func WithCellSize(size float64) Option {
	if !(size > 0) || math.IsInf(size, 0) {
		panic(fmt.Sprintf("edt: WithCellSize(%g): must be finite and > 0", size))
	}

	return func(o *Options) {
		o.cellSize = size
	}
}
