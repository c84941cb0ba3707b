// SPDX-License-Identifier: MIT

// Package tensor models a 3x3 interaction tensor and its principal axis
// system.
//
// The tensor package provides:
//
//   - Tensor — an immutable entity built from one raw 3x3 matrix. All
//     numerical work happens at construction: symmetric/antisymmetric
//     decomposition, Jacobi diagonalization of the symmetric part, and
//     eigenvalue/eigenvector caches for all four ordering conventions.
//   - Ordering — Increasing, Decreasing, Haeberlen and NQR eigenvalue
//     orderings. Every ordering-sensitive accessor takes the ordering
//     explicitly; View bundles one ordering with its tensor for callers
//     that pass the pair around.
//   - Scalar invariants (isotropy, anisotropy, reduced anisotropy,
//     asymmetry, span, skew) computed once from the Haeberlen ordering.
//   - Rotate and Scale, each returning a new entity.
//
// Entities are safe for concurrent readers: no method mutates a Tensor
// after its constructor returns.
//
// Eigenvector bases are always right-handed: after any column permutation
// the third column is recomputed as the cross product of the first two.
package tensor
