// SPDX-License-Identifier: MIT

// Package tensor: derived entities — rotation and scaling. Both return new
// tensors; the receiver is never touched.
package tensor

import "github.com/CCP-NC/pastensor/mat3"

// Rotate returns the tensor expressed through the given orthonormal basis.
//
// Passive (active=false, the frame-change sense used when expressing a
// tensor in another tensor's principal axis system):
//
//	rotated = basis^T * raw * basis
//
// Active (active=true, physically rotating the tensor):
//
//	rotated = basis * raw * basis^T
//
// The result runs through the full construction pipeline, so its ordering
// caches and invariants are consistent with its new orientation; the
// invariants themselves are unchanged by any orthonormal basis.
// Passively rotating a tensor by its own eigenvector basis diagonalizes it.
func (t *Tensor) Rotate(basis mat3.Mat, active bool) (*Tensor, error) {
	var rotated mat3.Mat
	if active {
		rotated = basis.Mul(t.raw).Mul(basis.Transpose())
	} else {
		rotated = basis.Transpose().Mul(t.raw).Mul(basis)
	}
	return fromMat(rotated, t.opts)
}

// Scale returns the tensor with every linear quantity multiplied by k —
// the engine behind unit conversions. Eigenvectors are unaffected and
// eigenvalues scale linearly, so nothing is re-diagonalized: the base cache
// is scaled (and reversed for k < 0, where ascending order flips), and the
// ordering caches and invariants are rebuilt by permutation alone.
func (t *Tensor) Scale(k float64) *Tensor {
	n := &Tensor{
		raw:  t.raw.Scale(k),
		symm: t.symm.Scale(k),
		anti: t.anti.Scale(k),
		opts: t.opts,
	}
	base := t.vals[Increasing].Scale(k)
	vecs := t.vecs[Increasing]
	if k < 0 {
		base = mat3.Vec{base[2], base[1], base[0]}
		c0, c1 := vecs.Col(2), vecs.Col(1)
		vecs = mat3.FromCols(c0, c1, c0.Cross(c1))
	}
	n.vals[Increasing], n.vecs[Increasing] = base, vecs
	n.finish()
	return n
}
