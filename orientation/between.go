// SPDX-License-Identifier: MIT

// Package orientation: relative orientation between two tensors.
package orientation

import (
	"fmt"
	"math"

	"github.com/CCP-NC/pastensor/mat3"
	"github.com/CCP-NC/pastensor/tensor"
)

// Between returns a single representative Euler triple rotating a's
// principal-axis frame onto b's under the gathered options.
//
// Identical tensors (equal spectra, eigenvectors parallel up to sign
// within tolerance) return the zero triple with AdvisoryIdentical. If
// either tensor is isotropic the relative orientation is undefined and
// the zero triple carries AdvisoryIsotropic. When both tensors are
// axially symmetric, the angle between their unique axes is recovered in
// closed form and the other two angles are fixed to zero, flagged with
// AdvisoryAxial.
func Between(a, b *tensor.Tensor, opts ...Option) (Euler, Advisories, error) {
	o := gatherOptions(opts...)

	aVals, err := a.Eigenvalues(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}
	bVals, err := b.Eigenvalues(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}
	aVecs, err := a.Eigenvectors(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}
	bVecs, err := b.Eigenvectors(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}

	var adv Advisories
	isoEither := a.Symmetry() == tensor.SymmetryIsotropic || b.Symmetry() == tensor.SymmetryIsotropic

	if identical(aVals, bVals, aVecs, bVecs, o.eps) {
		adv.add(AdvisoryIdentical)
		if isoEither {
			adv.add(AdvisoryIsotropic)
		}
		return Euler{}, adv, nil
	}
	if isoEither {
		adv.add(AdvisoryIsotropic)
		return Euler{}, adv, nil
	}

	if a.Symmetry() == tensor.SymmetryAxial && b.Symmetry() == tensor.SymmetryAxial {
		adv.add(AdvisoryAxial)
		e, err := axialBetween(aVecs, b, bVals, o)
		if err != nil {
			return Euler{}, 0, err
		}
		return fromRadians(e, o.degrees), adv, nil
	}

	fa, fb := aVecs, bVecs
	if o.passive {
		fa, fb = fa.Transpose(), fb.Transpose()
	}
	e := normalizeRad(extract(RotationBetween(fa, fb), o.conv, o.eps), o.passive, o.eps)
	return fromRadians(e, o.degrees), adv, nil
}

// RotationBetween returns the proper rotation carrying frame va onto
// frame vb, computed as vb times the inverse of va. Frames must be
// orthogonal, so the inverse is the transpose. A negative determinant is
// repaired by negating the third row, since a reflection is not a
// physical reorientation.
func RotationBetween(va, vb mat3.Mat) mat3.Mat {
	r := vb.Mul(va.Transpose())
	if r.Det() < 0 {
		r[2][0], r[2][1], r[2][2] = -r[2][0], -r[2][1], -r[2][2]
	}
	return r
}

// identical reports whether the two spectra agree within a scale-aware
// tolerance and the eigenvector columns are pairwise parallel up to sign.
func identical(aVals, bVals mat3.Vec, aVecs, bVecs mat3.Mat, eps float64) bool {
	scale := 1.0
	for i := 0; i < 3; i++ {
		scale = math.Max(scale, math.Max(math.Abs(aVals[i]), math.Abs(bVals[i])))
	}
	tol := eps * scale
	for i := 0; i < 3; i++ {
		if math.Abs(aVals[i]-bVals[i]) > tol {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if math.Abs(aVecs.Col(i).Dot(bVecs.Col(i))) < 1-eps {
			return false
		}
	}
	return true
}

// axialBetween recovers the relative orientation of two axially symmetric
// tensors: beta is the angle between the unique axes, read off b's
// eigenvalues evaluated in a's principal frame. The non-negative asin
// root is taken by convention and the remaining angles stay zero; for ZXZ
// a unique axis along x moves the angle to the leading position, since a
// rotation about x cannot tilt it.
func axialBetween(aVecs mat3.Mat, b *tensor.Tensor, bVals mat3.Vec, o Options) (Euler, error) {
	bat := aVecs.Transpose().Mul(b.Symmetric()).Mul(aVecs)

	scale := math.Max(math.Abs(bVals[0]), math.Max(math.Abs(bVals[1]), math.Abs(bVals[2])))
	tol := b.Epsilon() * math.Max(1, scale)

	switch {
	case math.Abs(bVals[1]-bVals[0]) <= tol:
		// Unique axis along z.
		beta := math.Asin(math.Sqrt(clamp((bat[2][2]-bVals[2])/(bVals[0]-bVals[2]), 0, 1)))
		return Euler{Beta: beta}, nil
	case math.Abs(bVals[2]-bVals[1]) <= tol:
		// Unique axis along x.
		beta := math.Asin(math.Sqrt(clamp((bat[0][0]-bVals[0])/(bVals[2]-bVals[0]), 0, 1)))
		if o.conv == ZXZ {
			return Euler{Alpha: beta}, nil
		}
		return Euler{Beta: beta}, nil
	default:
		return Euler{}, fmt.Errorf("%w: axial spectrum %v has no adjacent repeated pair", ErrInvariant, bVals)
	}
}
