// SPDX-License-Identifier: MIT

package edt

import "errors"

var (
	// ErrNilSource indicates Transform was called without an input grid.
	ErrNilSource = errors.New("edt: source grid is nil")
)
