// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rasterdist/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeHCL(t, `
input       = "streams.asc"
output      = "distance.asc"
working_dir = "/data"
verbose     = true
log_format  = "json"

render {
  path  = "distance.png"
  title = "Distance to streams"
}

store {
  path = "runs.db"
  name = "streams"
}
`)

	job, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "streams.asc", job.Input)
	assert.Equal(t, "distance.asc", job.Output)
	assert.Equal(t, "/data", job.WorkingDir)
	assert.True(t, job.Verbose)
	assert.Equal(t, "info", job.LogLevel, "unset log_level keeps the default")
	assert.Equal(t, "json", job.LogFormat)
	require.NotNil(t, job.Render)
	assert.Equal(t, "distance.png", job.Render.Path)
	assert.Equal(t, "Distance to streams", job.Render.Title)
	require.NotNil(t, job.Store)
	assert.Equal(t, "streams", job.Store.Name)
	require.NoError(t, job.Validate())
}

func TestLoad_EnvVariables(t *testing.T) {
	t.Setenv("RASTERDIST_TEST_DIR", "/srv/grids")
	path := writeHCL(t, `
input       = "in.asc"
output      = "out.asc"
working_dir = env.RASTERDIST_TEST_DIR
`)

	job, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/grids", job.WorkingDir)

	_, err = config.Load(writeHCL(t, `input = env.RASTERDIST_TEST_UNSET_VARIABLE`))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeHCL(t, `input = "a.asc"`+"\n"+`render {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = config.Load(writeHCL(t, `unknown_attr = 1`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	job := config.Default()
	assert.ErrorIs(t, job.Validate(), config.ErrMissingInput)

	job.Input = "in.asc"
	assert.ErrorIs(t, job.Validate(), config.ErrMissingOutput)

	job.Output = "out.asc"
	require.NoError(t, job.Validate())

	job.LogLevel = "loud"
	assert.ErrorIs(t, job.Validate(), config.ErrBadLogSetting)

	job.LogLevel = "debug"
	job.LogFormat = "xml"
	assert.ErrorIs(t, job.Validate(), config.ErrBadLogSetting)
}

func TestResolve(t *testing.T) {
	job := &config.Job{
		Input:      "in.asc",
		Output:     filepath.Join(string(filepath.Separator), "abs", "out.asc"),
		WorkingDir: filepath.Join("work", "dir"),
		Render:     &config.Render{Path: "map.png"},
		Store:      &config.Store{Path: "runs.db"},
	}

	r := job.Resolve()
	assert.Equal(t, filepath.Join("work", "dir", "in.asc"), r.Input)
	assert.Equal(t, job.Output, r.Output, "absolute paths are kept")
	assert.Equal(t, filepath.Join("work", "dir", "map.png"), r.Render.Path)
	assert.Equal(t, filepath.Join("work", "dir", "runs.db"), r.Store.Path)
	assert.Equal(t, "map.png", job.Render.Path, "Resolve must not mutate the receiver")

	noDir := &config.Job{Input: "in.asc"}
	assert.Equal(t, "in.asc", noDir.Resolve().Input)
}
