// SPDX-License-Identifier: MIT

// Package mat3: sentinel errors for the 3x3 kernel. Errors carry the
// "mat3: " prefix, are wrapped with %w at call sites and matched with
// errors.Is, per the global conventions.
package mat3

import "errors"

var (
	// ErrSingular indicates an inversion of a (numerically) singular matrix.
	ErrSingular = errors.New("mat3: matrix is singular")

	// ErrNotSymmetric indicates EigenSym received a non-symmetric matrix.
	ErrNotSymmetric = errors.New("mat3: matrix is not symmetric")

	// ErrEigenFailed indicates the Jacobi iteration did not reach the
	// requested off-diagonal tolerance within maxIter rotations.
	ErrEigenFailed = errors.New("mat3: eigen decomposition did not converge")
)
