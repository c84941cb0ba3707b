// SPDX-License-Identifier: MIT

// Package nmr: physical constants behind the unit conversions.
package nmr

import "math"

// CODATA 2018 values. Planck and the elementary charge are exact by
// definition of the SI.
const (
	// Planck is the Planck constant in J s.
	Planck = 6.62607015e-34

	// ElementaryCharge is the elementary charge in C.
	ElementaryCharge = 1.602176634e-19

	// EFGAtomicUnit is the atomic unit of electric field gradient,
	// Eh/(e*a0^2), in V/m^2.
	EFGAtomicUnit = 9.7173624424e21

	// Millibarn is 1 mb in m^2.
	Millibarn = 1e-31
)

const (
	// EFGHzPerMillibarn converts an electric field gradient in atomic
	// units to a quadrupolar coupling frequency in Hz per millibarn of
	// nuclear quadrupole moment: e*Q*V/h with Q = 1 mb. About 2.3496e5.
	EFGHzPerMillibarn = ElementaryCharge * Millibarn * EFGAtomicUnit / Planck

	// ISCHzFactor converts a reduced indirect spin-spin coupling in
	// 10^19 T^2/J to a J-coupling in Hz per product of the two
	// gyromagnetic ratios in rad/s/T: h*1e19/(4 pi^2). About 1.6784e-16.
	ISCHzFactor = Planck * 1e19 / (4 * math.Pi * math.Pi)
)
