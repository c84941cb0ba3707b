// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrDimension indicates input data that is not a 3x3 matrix
	// (wrong row count, ragged rows, or a flat slice that is not length 9).
	ErrDimension = errors.New("tensor: input must be a 3x3 matrix")

	// ErrOrdering indicates an unknown eigenvalue ordering convention.
	ErrOrdering = errors.New("tensor: unknown ordering convention")
)
