// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rasterdist/config"
	"github.com/katalvlaran/rasterdist/internal/app"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error(), Err: err}
}

// Parse processes command-line arguments into a job. It returns the job, a
// boolean reporting that the program should exit cleanly (help or
// --describe), or an *ExitError.
//
// Values from --config are loaded first; flags given on the command line
// override them.
func Parse(args []string, output io.Writer) (*config.Job, bool, error) {
	if len(args) == 0 {
		return nil, false, usageError(fmt.Errorf("%w: tool run with no parameters", app.ErrInvalidInput))
	}

	flagSet := flag.NewFlagSet("euclidean-distance", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
euclidean-distance - Shih and Wu (2004) Euclidean distance transform.

Usage:
  euclidean-distance [options] -i=INPUT -o=OUTPUT

Every non-zero, non-NoData cell of INPUT is a target. Each cell of OUTPUT
holds the straight-line distance to its nearest target in map units.

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		inPath, outPath, wd, cfgPath string
		pngPath, storePath           string
		logLevel, logFormat          string
		verbose, describe            bool
	)
	flagSet.StringVar(&inPath, "input", "", "Input raster file.")
	flagSet.StringVar(&inPath, "i", "", "Input raster file (shorthand).")
	flagSet.StringVar(&outPath, "output", "", "Output raster file.")
	flagSet.StringVar(&outPath, "o", "", "Output raster file (shorthand).")
	flagSet.StringVar(&wd, "wd", "", "Working directory relative paths are resolved against.")
	flagSet.BoolVar(&verbose, "v", false, "Log progress at info level.")
	flagSet.StringVar(&cfgPath, "config", "", "HCL job file; flags override its values.")
	flagSet.StringVar(&pngPath, "png", "", "Write a heat map image of the output to this path.")
	flagSet.StringVar(&storePath, "store", "", "Archive the output in this SQLite database.")
	flagSet.StringVar(&logLevel, "log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.BoolVar(&describe, "describe", false, "Print the tool description as JSON and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}

	if describe {
		if err := app.Describe().WriteJSON(output); err != nil {
			return nil, false, &ExitError{Code: 1, Message: err.Error(), Err: err}
		}
		return nil, true, nil
	}

	job := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, false, usageError(err)
		}
		job = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i", "input":
			job.Input = inPath
		case "o", "output":
			job.Output = outPath
		case "wd":
			job.WorkingDir = wd
		case "v":
			job.Verbose = verbose
		case "png":
			if job.Render == nil {
				job.Render = &config.Render{}
			}
			job.Render.Path = pngPath
		case "store":
			if job.Store == nil {
				job.Store = &config.Store{}
			}
			job.Store.Path = storePath
		case "log-level":
			job.LogLevel = strings.ToLower(logLevel)
		case "log-format":
			job.LogFormat = strings.ToLower(logFormat)
		}
	})

	if err := job.Validate(); err != nil {
		return nil, false, usageError(fmt.Errorf("%w: %w", app.ErrInvalidInput, err))
	}

	return job, false, nil
}
