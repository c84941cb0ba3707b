// SPDX-License-Identifier: MIT

// Package mat3: domain types of the kernel. This file contains the two value
// types, their constructors/accessors and vector arithmetic; matrix
// arithmetic lives in ops.go and the eigensolver in eigen.go, per the global
// conventions.
package mat3

import "math"

// Vec is a 3-component column vector.
type Vec [3]float64

// Mat is a 3x3 matrix in row-major order: Mat[i][j] is row i, column j.
type Mat [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat {
	return Mat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns the diagonal matrix with d on its main diagonal.
func Diag(d Vec) Mat {
	return Mat{{d[0], 0, 0}, {0, d[1], 0}, {0, 0, d[2]}}
}

// FromRows assembles a matrix from three row vectors.
func FromRows(r0, r1, r2 Vec) Mat {
	return Mat{r0, r1, r2}
}

// FromCols assembles a matrix from three column vectors.
func FromCols(c0, c1, c2 Vec) Mat {
	var m Mat
	for i := 0; i < 3; i++ { // deterministic row order
		m[i][0] = c0[i]
		m[i][1] = c1[i]
		m[i][2] = c2[i]
	}
	return m
}

// Col returns column j as a vector. j must be in [0,2].
func (m Mat) Col(j int) Vec {
	return Vec{m[0][j], m[1][j], m[2][j]}
}

// SetCol returns a copy of m with column j replaced by v. j must be in [0,2].
func (m Mat) SetCol(j int, v Vec) Mat {
	m[0][j], m[1][j], m[2][j] = v[0], v[1], v[2]
	return m
}

// Row returns row i as a vector. i must be in [0,2].
func (m Mat) Row(i int) Vec {
	return m[i]
}

// Dot returns the scalar product v . w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the vector product v x w (right-handed).
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns k * v.
func (v Vec) Scale(k float64) Vec {
	return Vec{k * v[0], k * v[1], k * v[2]}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. The zero vector is returned as-is.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}
