// SPDX-License-Identifier: MIT

package app

import (
	"encoding/json"
	"io"
)

// Parameter describes one command-line parameter of the tool.
type Parameter struct {
	Name        string   `json:"name"`
	Flags       []string `json:"flags"`
	Description string   `json:"description"`
	Type        string   `json:"parameter_type"`
	Optional    bool     `json:"optional"`
}

// Tool is the registration metadata printed by --describe.
type Tool struct {
	Name        string      `json:"name"`
	Toolbox     string      `json:"toolbox"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Example     string      `json:"example_usage"`
}

// Describe returns the metadata of the EuclideanDistance tool.
func Describe() Tool {
	return Tool{
		Name:        "EuclideanDistance",
		Toolbox:     "GIS Analysis/Distance Tools",
		Description: "Calculates the Shih and Wu (2004) Euclidean distance transform.",
		Parameters: []Parameter{
			{Name: "Input File", Flags: []string{"-i", "--input"}, Description: "Input raster file.", Type: "ExistingFile(Raster)"},
			{Name: "Output File", Flags: []string{"-o", "--output"}, Description: "Output raster file.", Type: "NewFile(Raster)"},
			{Name: "Heat Map", Flags: []string{"--png"}, Description: "Optional image of the output.", Type: "NewFile(Image)", Optional: true},
			{Name: "Archive", Flags: []string{"--store"}, Description: "Optional SQLite database the output is archived in.", Type: "File(SQLite)", Optional: true},
		},
		Example: `euclidean-distance -v --wd="/path/to/data/" -i=streams.asc -o=distance.asc`,
	}
}

// WriteJSON writes t as indented JSON.
func (t Tool) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(t)
}
