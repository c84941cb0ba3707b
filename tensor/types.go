// SPDX-License-Identifier: MIT

// Package tensor: domain types. Ordering and Symmetry enumerations and the
// Invariants record live here; the Tensor entity and its construction
// pipeline live in tensor.go, per the global conventions.
package tensor

import "fmt"

// Ordering selects the eigenvalue ordering convention of a principal axis
// system.
//
//   - Increasing   — ascending eigenvalues (the base order).
//   - Decreasing   — descending eigenvalues.
//   - Haeberlen    — |e - isotropy| ascending, then the first two entries
//     swapped, so that |ezz-iso| >= |exx-iso| >= |eyy-iso|.
//   - NQR          — |e - isotropy| ascending, no swap.
//
// Isotropic tensors keep the identity permutation under every convention:
// sorting on differences that sit below the coincidence tolerance would be
// numerically meaningless.
type Ordering int

const (
	// Increasing sorts eigenvalues ascending. Zero value and default.
	Increasing Ordering = iota
	// Decreasing sorts eigenvalues descending.
	Decreasing
	// Haeberlen sorts by distance from the isotropy and swaps the first two,
	// the convention under which the scalar invariants are defined.
	Haeberlen
	// NQR sorts by distance from the isotropy without the swap.
	NQR

	numOrderings = iota
)

// String returns the lower-case convention name used by data files.
func (o Ordering) String() string {
	switch o {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	case Haeberlen:
		return "haeberlen"
	case NQR:
		return "nqr"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

// Valid reports whether o names a known convention.
func (o Ordering) Valid() bool {
	return o >= Increasing && o < numOrderings
}

// ParseOrdering maps a convention name ("increasing", "decreasing",
// "haeberlen", "nqr") to its Ordering. Returns ErrOrdering for anything else.
func ParseOrdering(name string) (Ordering, error) {
	switch name {
	case "increasing":
		return Increasing, nil
	case "decreasing":
		return Decreasing, nil
	case "haeberlen":
		return Haeberlen, nil
	case "nqr":
		return NQR, nil
	default:
		return 0, fmt.Errorf("ParseOrdering(%q): %w", name, ErrOrdering)
	}
}

// Symmetry counts the eigenvalue coincidences of a tensor, judged over
// adjacent pairs of the ascending eigenvalues within the tensor's tolerance.
type Symmetry int

const (
	// SymmetryNone — all three eigenvalues distinct.
	SymmetryNone Symmetry = iota
	// SymmetryAxial — exactly two eigenvalues coincide.
	SymmetryAxial
	// SymmetryIsotropic — all three eigenvalues coincide; no orientation
	// information remains.
	SymmetryIsotropic
)

// String returns a short label for the symmetry class.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "none"
	case SymmetryAxial:
		return "axial"
	case SymmetryIsotropic:
		return "isotropic"
	default:
		return fmt.Sprintf("symmetry(%d)", int(s))
	}
}

// Invariants bundles the convention-independent scalars of a tensor.
// All six are fixed by the Haeberlen-ordered eigenvalues (ex, ey, ez) and
// the ascending eigenvalues, regardless of any ordering a caller selects.
type Invariants struct {
	// Isotropy is the eigenvalue mean, trace/3.
	Isotropy float64
	// Anisotropy is ez - (ex+ey)/2.
	Anisotropy float64
	// ReducedAnisotropy is ez - isotropy.
	ReducedAnisotropy float64
	// Asymmetry is (ey-ex)/ReducedAnisotropy, 0 for isotropic tensors.
	Asymmetry float64
	// Span is the largest minus the smallest eigenvalue.
	Span float64
	// Skew is 3*(middle-isotropy)/Span, 0 when the span vanishes.
	Skew float64
}
