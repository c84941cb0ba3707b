// SPDX-License-Identifier: MIT

// Package nmr: unit conversions for interaction tensors.
package nmr

import (
	"fmt"

	"github.com/CCP-NC/pastensor/tensor"
)

// EFGToHz converts an electric field gradient tensor in atomic units to
// a quadrupolar coupling tensor in Hz, for a nucleus with quadrupole
// moment q in millibarn. The conversion is a pure scaling: eigenvectors
// and orientation are unchanged.
func EFGToHz(t *tensor.Tensor, q float64) *tensor.Tensor {
	return t.Scale(EFGHzPerMillibarn * q)
}

// EFGToHzIsotope is EFGToHz with the quadrupole moment resolved from an
// isotope symbol such as "17O".
func EFGToHzIsotope(t *tensor.Tensor, isotope string) (*tensor.Tensor, error) {
	iso, err := LookupIsotope(isotope)
	if err != nil {
		return nil, fmt.Errorf("EFGToHzIsotope: %w", err)
	}
	return EFGToHz(t, iso.Quadrupole), nil
}

// ISCToHz converts a reduced indirect spin-spin coupling tensor in
// 10^19 T^2/J to a J-coupling tensor in Hz, for two nuclei with
// gyromagnetic ratios g1 and g2 in rad/s/T.
func ISCToHz(t *tensor.Tensor, g1, g2 float64) *tensor.Tensor {
	return t.Scale(ISCHzFactor * g1 * g2)
}

// ISCToHzIsotopes is ISCToHz with both gyromagnetic ratios resolved from
// isotope symbols such as "1H" and "13C".
func ISCToHzIsotopes(t *tensor.Tensor, iso1, iso2 string) (*tensor.Tensor, error) {
	a, err := LookupIsotope(iso1)
	if err != nil {
		return nil, fmt.Errorf("ISCToHzIsotopes: %w", err)
	}
	b, err := LookupIsotope(iso2)
	if err != nil {
		return nil, fmt.Errorf("ISCToHzIsotopes: %w", err)
	}
	return ISCToHz(t, a.Gamma, b.Gamma), nil
}
