// SPDX-License-Identifier: MIT

// Package config loads distance-transform jobs from HCL files and resolves
// their paths against a working directory.
//
// A job file looks like:
//
//	input       = "streams.asc"
//	output      = "distance.asc"
//	working_dir = env.DATA_DIR
//	verbose     = true
//
//	render {
//	  path  = "distance.png"
//	  title = "Distance to streams"
//	}
//
//	store {
//	  path = "runs.db"
//	  name = "streams"
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrMissingInput indicates the job names no input grid.
	ErrMissingInput = errors.New("config: input grid is required")
	// ErrMissingOutput indicates the job names no output grid.
	ErrMissingOutput = errors.New("config: output grid is required")
	// ErrBadLogSetting indicates an unknown log level or format.
	ErrBadLogSetting = errors.New("config: invalid log setting")
)

// Job is one distance-transform run.
type Job struct {
	Input      string `hcl:"input,optional"`
	Output     string `hcl:"output,optional"`
	WorkingDir string `hcl:"working_dir,optional"`
	Verbose    bool   `hcl:"verbose,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFormat  string `hcl:"log_format,optional"`

	Render *Render `hcl:"render,block"`
	Store  *Store  `hcl:"store,block"`
}

// Render asks for a heat-map image of the output.
type Render struct {
	Path  string `hcl:"path"`
	Title string `hcl:"title,optional"`
}

// Store asks for the output to be archived in a SQLite database.
type Store struct {
	Path string `hcl:"path"`
	Name string `hcl:"name,optional"`
}

// Default returns a Job with the default logging settings.
func Default() *Job {
	return &Job{LogLevel: "info", LogFormat: "text"}
}

// Load parses and decodes the HCL job file at path. Unset log settings keep
// their defaults. The job is not validated; call Validate after applying
// any overrides.
func Load(path string) (*Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	job := Default()
	if diags := gohcl.DecodeBody(file.Body, evalContext(os.Environ()), job); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if job.LogLevel == "" {
		job.LogLevel = "info"
	}
	if job.LogFormat == "" {
		job.LogFormat = "text"
	}

	return job, nil
}

// evalContext exposes environ ("KEY=value" entries) as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

// Validate checks that the job can run.
func (j *Job) Validate() error {
	if j.Input == "" {
		return ErrMissingInput
	}
	if j.Output == "" {
		return ErrMissingOutput
	}
	switch j.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", j.LogLevel, ErrBadLogSetting)
	}
	switch j.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: %w", j.LogFormat, ErrBadLogSetting)
	}

	return nil
}

// Resolve returns a copy of the job whose relative paths are joined with
// WorkingDir. Absolute paths, empty paths and an empty WorkingDir leave
// paths untouched.
func (j *Job) Resolve() *Job {
	out := *j
	out.Input = resolvePath(j.WorkingDir, j.Input)
	out.Output = resolvePath(j.WorkingDir, j.Output)
	if j.Render != nil {
		r := *j.Render
		r.Path = resolvePath(j.WorkingDir, r.Path)
		out.Render = &r
	}
	if j.Store != nil {
		s := *j.Store
		s.Path = resolvePath(j.WorkingDir, s.Path)
		out.Store = &s
	}

	return &out
}

func resolvePath(dir, p string) string {
	if p == "" || dir == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
