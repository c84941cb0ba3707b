// SPDX-License-Identifier: MIT

// Package mat3 provides the fixed-size 3x3 numeric kernel used by the
// tensor and orientation packages.
//
// The mat3 package provides:
//
//   - Value types Mat ([3][3]float64, row-major) and Vec ([3]float64) with
//     allocation-free arithmetic (Mul, MulVec, Transpose, Det, Inverse, ...).
//   - EigenSym — Jacobi eigenvalue decomposition for symmetric matrices,
//     the numerical core of every principal-axis-system computation.
//   - Tolerance-aware comparisons (Equal, EqualVec, IsSymmetric) built on
//     gonum's scalar package.
//
// All operations return new values; nothing mutates its receiver. The types
// are plain arrays, so copies are cheap and literals are readable:
//
//	m := mat3.Mat{{1, 0, 0}, {0, 2, 0}, {0, 0, -6}}
//
// Use this package directly only when composing rotations or checking
// numeric identities; tensor and orientation expose the domain API.
package mat3
