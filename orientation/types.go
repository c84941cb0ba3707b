// SPDX-License-Identifier: MIT

// Package orientation: core types shared by the extraction operations.
package orientation

import (
	"fmt"
	"strings"
)

// Convention selects the axis sequence of the three elemental rotations
// composing an Euler triple.
type Convention uint8

const (
	// ZYZ composes Rz(alpha)*Ry(beta)*Rz(gamma). Standard in NMR.
	ZYZ Convention = iota
	// ZXZ composes Rz(alpha)*Rx(beta)*Rz(gamma). Standard in crystallography.
	ZXZ

	numConventions = iota
)

// String returns the lowercase name of the convention.
func (c Convention) String() string {
	switch c {
	case ZYZ:
		return "zyz"
	case ZXZ:
		return "zxz"
	default:
		return fmt.Sprintf("convention(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the defined conventions.
func (c Convention) Valid() bool { return c < numConventions }

// ParseConvention maps a case-insensitive name to a Convention.
// Unknown names return ErrConvention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zyz":
		return ZYZ, nil
	case "zxz":
		return ZXZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrConvention, s)
	}
}

// Euler is an angle triple (alpha, beta, gamma) in radians, or in degrees
// when produced under WithDegrees.
type Euler struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Advisory is a non-fatal diagnostic attached to a best-effort result.
// Advisories never interrupt computation; callers decide whether to
// surface, log or ignore them.
type Advisory uint8

const (
	// AdvisoryIsotropic: the tensor has no orientation; the zero triple
	// was returned by convention.
	AdvisoryIsotropic Advisory = 1 << iota
	// AdvisoryAxial: the tensor is axially symmetric, so the result is
	// ambiguous up to rotation about the unique axis; the free angle was
	// fixed to zero.
	AdvisoryAxial
	// AdvisoryIdentical: the two tensors coincide within tolerance; the
	// relative orientation is the zero triple.
	AdvisoryIdentical
	// AdvisorySelfCheckMismatch: the reconstruction self-check still
	// disagreed after the negated-basis retry; the retried angles were
	// kept as a best-effort result.
	AdvisorySelfCheckMismatch
)

// String returns a short name for a single advisory code.
func (a Advisory) String() string {
	switch a {
	case AdvisoryIsotropic:
		return "isotropic"
	case AdvisoryAxial:
		return "axial"
	case AdvisoryIdentical:
		return "identical"
	case AdvisorySelfCheckMismatch:
		return "self-check mismatch"
	default:
		return fmt.Sprintf("advisory(%d)", uint8(a))
	}
}

// Advisories is a set of Advisory codes.
type Advisories uint8

// Has reports whether the set contains a.
func (s Advisories) Has(a Advisory) bool { return uint8(s)&uint8(a) != 0 }

// add folds a code into the set.
func (s *Advisories) add(a Advisory) { *s |= Advisories(a) }

// String lists the contained codes separated by "|", or "none".
func (s Advisories) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, a := range []Advisory{AdvisoryIsotropic, AdvisoryAxial, AdvisoryIdentical, AdvisorySelfCheckMismatch} {
		if s.Has(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, "|")
}
