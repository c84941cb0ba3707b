// SPDX-License-Identifier: MIT

// Package orientation: Euler-angle extraction for a single tensor.
package orientation

import (
	"fmt"
	"math"

	"github.com/CCP-NC/pastensor/mat3"
	"github.com/CCP-NC/pastensor/tensor"
)

// FromTensor returns the Euler triple carrying the laboratory frame onto
// t's principal-axis system, under the gathered convention, sense and
// eigenvalue ordering.
//
// Isotropic tensors have no orientation and return the zero triple with
// AdvisoryIsotropic. Axially symmetric tensors leave one angle free; it
// is fixed to zero, the remaining pair is recovered in closed form where
// extraction alone cannot, and AdvisoryAxial is set. The result is folded
// into canonical ranges and converted to degrees when requested.
func FromTensor(t *tensor.Tensor, opts ...Option) (Euler, Advisories, error) {
	o := gatherOptions(opts...)

	var adv Advisories
	if t.Symmetry() == tensor.SymmetryIsotropic {
		adv.add(AdvisoryIsotropic)
		return Euler{}, adv, nil
	}

	vals, err := t.Eigenvalues(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}
	vecs, err := t.Eigenvectors(o.ordering)
	if err != nil {
		return Euler{}, 0, err
	}

	// Stage 1: sense-adjusted basis. The passive basis is the inverted,
	// negated eigenvector matrix.
	u := vecs
	if o.passive {
		u = vecs.Transpose().Scale(-1)
	}

	// Stage 2: extraction guarded by the reconstruction self-check.
	e, mismatch := extractChecked(u, mat3.Diag(vals), o)
	if mismatch {
		adv.add(AdvisorySelfCheckMismatch)
	}

	// Stage 3: degenerate-case resolution.
	if t.Symmetry() == tensor.SymmetryAxial {
		adv.add(AdvisoryAxial)
		if e, err = resolveAxial(e, t, vals, o); err != nil {
			return Euler{}, 0, err
		}
	}

	// Stage 4: canonical ranges and units.
	return fromRadians(normalizeRad(e, o.passive, o.eps), o.degrees), adv, nil
}

// extractChecked extracts angles from u guarded by a reconstruction
// self-check: the active composition of the angles must reproduce
// u*D*u^T. On mismatch it retries once with the negated basis, a bounded
// workaround for eigen-solver sign ambiguity, and reports a persistent
// disagreement instead of failing. The retried angles are kept either way.
func extractChecked(u, d mat3.Mat, o Options) (Euler, bool) {
	cf := u.Mul(d).Mul(u.Transpose())
	tol := o.eps * math.Max(1, cf.MaxAbs())

	e := extract(u, o.conv, o.eps)
	if m := compose(e, o.conv); mat3.Equal(m.Mul(d).Mul(m.Transpose()), cf, tol) {
		return e, false
	}

	e = extract(u.Scale(-1), o.conv, o.eps)
	m := compose(e, o.conv)
	return e, !mat3.Equal(m.Mul(d).Mul(m.Transpose()), cf, tol)
}

// resolveAxial fixes the free angle of an axially symmetric tensor.
// vals holds the eigenvalues in the ordering in use; exactly one adjacent
// pair must coincide within the tensor's own tolerance.
func resolveAxial(e Euler, t *tensor.Tensor, vals mat3.Vec, o Options) (Euler, error) {
	scale := math.Max(math.Abs(vals[0]), math.Max(math.Abs(vals[1]), math.Abs(vals[2])))
	tol := t.Epsilon() * math.Max(1, scale)

	switch {
	case math.Abs(vals[1]-vals[0]) <= tol:
		// Repeated pair first: the unique axis sits along z of the PAS
		// and the rotation about it is the free parameter.
		if o.passive {
			e.Alpha = 0
		} else {
			e.Gamma = 0
		}
		return e, nil

	case math.Abs(vals[2]-vals[1]) <= tol:
		// Repeated pair last: the unique axis sits along x. Alpha is
		// free; beta and gamma follow in closed form from the un-rotated
		// tensor entries. Passive results reverse and negate the active
		// triple.
		act := axialUniqueX(t.Symmetric(), vals[0], vals[1], o)
		if o.passive {
			act = Euler{Alpha: -act.Gamma, Beta: -act.Beta, Gamma: -act.Alpha}
		}
		return act, nil

	default:
		// A repeated pair split across the middle value cannot occur for
		// a correctly ordered spectrum.
		return Euler{}, fmt.Errorf("%w: axial spectrum %v has no adjacent repeated pair", ErrInvariant, vals)
	}
}

// axialUniqueX recovers the active (0, beta, gamma) triple of an axially
// symmetric tensor whose unique axis lies along x of the PAS. a is the
// symmetric part in the laboratory frame, eu the unique eigenvalue and ed
// the repeated one. Gamma takes the non-negative asin root by convention.
func axialUniqueX(a mat3.Mat, eu, ed float64, o Options) Euler {
	span := eu - ed
	thr := o.eps * math.Max(1, a.MaxAbs())

	var beta, gamma float64
	if o.conv == ZXZ {
		gamma = math.Asin(math.Sqrt(clamp((eu-a[0][0])/span, 0, 1)))
		f := math.Sin(gamma) * math.Cos(gamma) * span
		if math.Abs(a[0][1]) > thr || math.Abs(a[0][2]) > thr {
			beta = math.Atan2(a[0][2]/f, a[0][1]/f)
		} else {
			beta = 0.5 * math.Atan2(2*a[1][2]/span, (a[1][1]-a[2][2])/span)
		}
	} else {
		gamma = math.Asin(math.Sqrt(clamp((a[1][1]-ed)/span, 0, 1)))
		f := math.Sin(gamma) * math.Cos(gamma) * span
		if math.Abs(a[0][1]) > thr || math.Abs(a[1][2]) > thr {
			beta = math.Atan2(-a[1][2]/f, a[0][1]/f)
		} else {
			beta = 0.5 * math.Atan2(-2*a[0][2]/span, (a[0][0]-a[2][2])/span)
		}
	}
	return Euler{Beta: beta, Gamma: gamma}
}

// Normalize folds e into canonical ranges: every angle wrapped into
// [0, 2pi), beta folded to at most a quarter turn, and the trailing angle
// reduced below pi. Each fold moves within the equivalent set of the
// rotation, so the canonical triple describes the same physical
// orientation. Input and output honor WithDegrees.
func Normalize(e Euler, opts ...Option) Euler {
	o := gatherOptions(opts...)
	return fromRadians(normalizeRad(toRadians(e, o.degrees), o.passive, o.eps), o.degrees)
}

// normalizeRad is Normalize on radians.
func normalizeRad(e Euler, passive bool, eps float64) Euler {
	e = wrapEuler(e)

	// Fold 1: beta beyond a half turn reflects, shifting the leading
	// angle of the sense by a half turn.
	if e.Beta > math.Pi {
		e.Beta = 2*math.Pi - e.Beta
		if passive {
			e.Gamma = wrap2Pi(e.Gamma + math.Pi)
		} else {
			e.Alpha = wrap2Pi(e.Alpha + math.Pi)
		}
	}

	// Fold 2: beta beyond a quarter turn reflects again, mirroring the
	// roles of alpha and gamma.
	if e.Beta >= math.Pi/2-eps {
		e.Beta = math.Pi - e.Beta
		if passive {
			e.Gamma = wrap2Pi(e.Gamma + math.Pi)
			e.Alpha = wrap2Pi(math.Pi - e.Alpha)
		} else {
			e.Alpha = wrap2Pi(e.Alpha + math.Pi)
			e.Gamma = wrap2Pi(math.Pi - e.Gamma)
		}
	}

	// Fold 3: the trailing angle of the sense drops a redundant half turn.
	if passive {
		if e.Alpha >= math.Pi-eps {
			e.Alpha = wrap2Pi(e.Alpha - math.Pi)
		}
	} else if e.Gamma >= math.Pi-eps {
		e.Gamma = wrap2Pi(e.Gamma - math.Pi)
	}
	return e
}
