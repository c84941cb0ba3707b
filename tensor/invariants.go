// SPDX-License-Identifier: MIT

// Package tensor: scalar invariants, computed once at construction from the
// Haeberlen-ordered eigenvalues. The invariants never depend on an ordering
// a caller selects later.
package tensor

import "gonum.org/v1/gonum/floats"

// computeInvariants fills t.inv. Requires the ordering caches.
//
// With (ex, ey, ez) the Haeberlen-ordered eigenvalues:
//
//	isotropy          = mean(e)
//	anisotropy        = ez - (ex+ey)/2
//	reducedAnisotropy = ez - isotropy
//	asymmetry         = (ey-ex)/reducedAnisotropy   (0 when reduced = 0)
//	span              = max(e) - min(e)
//	skew              = 3*(middle-isotropy)/span    (0 when span = 0)
//
// The zero guards fire exactly for isotropic tensors: reducedAnisotropy is
// the distance of the farthest eigenvalue from the isotropy, so it only
// vanishes when all three coincide, and likewise for the span.
func (t *Tensor) computeInvariants() {
	base := t.vals[Increasing]
	h := t.vals[Haeberlen]

	iso := floats.Sum(base[:]) / 3
	red := h[2] - iso
	span := base[2] - base[0]

	t.inv = Invariants{
		Isotropy:          iso,
		Anisotropy:        h[2] - (h[0]+h[1])/2,
		ReducedAnisotropy: red,
		Span:              span,
	}
	if t.symmetry != SymmetryIsotropic && red != 0 {
		t.inv.Asymmetry = (h[1] - h[0]) / red
	}
	if t.symmetry != SymmetryIsotropic && span != 0 {
		t.inv.Skew = 3 * (base[1] - iso) / span
	}
}
