// SPDX-License-Identifier: MIT

// Command euclidean-distance computes the Euclidean distance from every cell
// of a raster to its nearest non-zero cell.
//
//	euclidean-distance -v --wd=/data -i=streams.asc -o=distance.asc --png=distance.png
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/rasterdist/internal/app"
	"github.com/katalvlaran/rasterdist/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, runs the job and writes logs to logW. Help and
// --describe output go to outW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	job, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	_, err = app.Run(ctx, job, logW)

	return err
}
