// SPDX-License-Identifier: MIT

// Package orientation: sentinel errors returned by angle extraction.
package orientation

import "errors"

var (
	// ErrConvention is returned when an Euler axis convention outside
	// {zyz, zxz} is requested by name.
	ErrConvention = errors.New("orientation: unsupported euler convention")

	// ErrInvariant reports an internal consistency failure, such as an
	// eigenvalue coincidence pattern that cannot occur for a correctly
	// ordered spectrum. It indicates a bug, not bad input.
	ErrInvariant = errors.New("orientation: internal invariant violated")
)
