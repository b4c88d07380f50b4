// SPDX-License-Identifier: MIT

// Package cli parses command-line arguments into a config.Job and maps
// invalid usage to process exit codes.
package cli
