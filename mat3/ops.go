// SPDX-License-Identifier: MIT

// Package mat3: dense 3x3 arithmetic. Every operation is closed-form and
// allocation-free; there are no loops over dynamic sizes and therefore no
// dimension errors — shape is fixed by the types.
package mat3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// detFloor scales the singularity guard in Inverse: a determinant is treated
// as zero when |det| < detFloor * max(1, MaxAbs^3), keeping the guard
// meaningful for Hz-scale inputs whose determinants grow like entries cubed.
const detFloor = 1e-12

// Mul returns the matrix product m * n.
func (m Mat) Mul(n Mat) Mat {
	var out Mat
	for i := 0; i < 3; i++ { // deterministic row-major order
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat) MulVec(v Vec) Vec {
	return Vec{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Add returns m + n.
func (m Mat) Add(n Mat) Mat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat) Sub(n Mat) Mat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] -= n[i][j]
		}
	}
	return m
}

// Scale returns k * m.
func (m Mat) Scale(k float64) Mat {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= k
		}
	}
	return m
}

// Transpose returns the transpose of m.
func (m Mat) Transpose() Mat {
	return Mat{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant of m (cofactor expansion along row 0).
func (m Mat) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// MaxAbs returns the largest absolute entry of m.
func (m Mat) MaxAbs() float64 {
	var max float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a := math.Abs(m[i][j]); a > max {
				max = a
			}
		}
	}
	return max
}

// Inverse returns m^-1 via the adjugate (transposed cofactor matrix).
// Returns ErrSingular when the determinant lies below the scale-aware floor.
func (m Mat) Inverse() (Mat, error) {
	det := m.Det()
	if math.Abs(det) < detFloor*math.Max(1, math.Pow(m.MaxAbs(), 3)) {
		return Mat{}, fmt.Errorf("Inverse: det=%g: %w", det, ErrSingular)
	}
	id := 1 / det
	return Mat{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * id,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * id,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * id,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id,
		},
	}, nil
}

// Equal reports whether a and b agree entry-wise within tol.
func Equal(a, b Mat, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(a[i][j], b[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// EqualVec reports whether a and b agree component-wise within tol.
func EqualVec(a, b Vec, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether m equals its transpose within tol.
func IsSymmetric(m Mat, tol float64) bool {
	return scalar.EqualWithinAbs(m[0][1], m[1][0], tol) &&
		scalar.EqualWithinAbs(m[0][2], m[2][0], tol) &&
		scalar.EqualWithinAbs(m[1][2], m[2][1], tol)
}
