// SPDX-License-Identifier: MIT

// Package mat3: Jacobi eigenvalue decomposition for symmetric 3x3 matrices.
package mat3

import (
	"fmt"
	"math"
)

const (
	// DefaultEigenTol is the relative off-diagonal convergence threshold for
	// EigenSym. The effective threshold is DefaultEigenTol * max(1, MaxAbs),
	// so matrices with Hz-scale entries (~1e6 after unit conversion) still
	// converge to their relative machine limit.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations. A symmetric
	// 3x3 matrix needs well under twenty rotations to hit 1e-12; the cap
	// only guards against NaN/Inf inputs that can never converge.
	DefaultEigenMaxIter = 128
)

// EigenSym performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues (in diagonal order, unsorted) and the matrix of
// eigenvectors Q (columns of Q, orthonormal, A = Q*diag*Q^T).
// tol specifies the convergence threshold for off-diagonal elements,
// relative to max(1, MaxAbs(m)); maxIter caps the number of rotations.
// Returns ErrNotSymmetric or ErrEigenFailed.
// Complexity: O(maxIter) rotations of fixed 3x3 cost; Memory: O(1).
func EigenSym(m Mat, tol float64, maxIter int) (Vec, Mat, error) {
	// Stage 1: Validate input.
	thr := tol * math.Max(1, m.MaxAbs()) // scale-aware threshold
	if !IsSymmetric(m, thr) {
		return Vec{}, Mat{}, fmt.Errorf("EigenSym: %w", ErrNotSymmetric)
	}

	// Stage 2: Prepare A (working copy) and Q (accumulated rotations).
	var (
		a = m          // working copy, reduced toward diagonal form
		q = Identity() // eigenvector accumulator
	)

	// Stage 3: Execute Jacobi rotations on the largest off-diagonal pivot.
	var (
		p, r          int     // pivot indices, p < r
		maxOff        float64 // largest |off-diagonal|
		theta, t      float64 // rotation parameters
		c, s          float64 // cosine and sine
		app, arr, apr float64 // pivot entries before the rotation
		aip, air      float64 // row temporaries
	)
	for iter := 0; iter <= maxIter; iter++ {
		// find largest off-diagonal |A[p][r]|
		maxOff = 0.0
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, r = i, j
				}
			}
		}
		if maxOff <= thr {
			// Stage 4: converged; the diagonal holds the eigenvalues.
			return Vec{a[0][0], a[1][1], a[2][2]}, q, nil
		}
		if iter == maxIter {
			break // rotation cap hit with off-diagonal mass remaining
		}

		// compute the rotation parameters for pivot (p, r)
		app, arr, apr = a[p][p], a[r][r], a[p][r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1) // cosine
		s = t * c                  // sine

		// apply the rotation to A, keeping symmetry explicit
		for i := 0; i < 3; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a[i][p], a[i][r]
			a[i][p], a[p][i] = c*aip-s*air, c*aip-s*air
			a[i][r], a[r][i] = s*aip+c*air, s*aip+c*air
		}
		a[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p][r], a[r][p] = 0, 0

		// accumulate into Q
		for i := 0; i < 3; i++ {
			aip, air = q[i][p], q[i][r]
			q[i][p] = c*aip - s*air
			q[i][r] = s*aip + c*air
		}
	}

	return Vec{}, Mat{}, fmt.Errorf("EigenSym: off-diagonal %g above %g: %w", maxOff, thr, ErrEigenFailed)
}
