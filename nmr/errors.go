// SPDX-License-Identifier: MIT

package nmr

import "errors"

var (
	// ErrUnknownElement is returned when an element symbol is not in the
	// periodic table data.
	ErrUnknownElement = errors.New("nmr: unknown element symbol")

	// ErrUnknownIsotope is returned when an isotope symbol names a mass
	// number that does not occur naturally, or omits the mass number.
	ErrUnknownIsotope = errors.New("nmr: unknown isotope")
)
