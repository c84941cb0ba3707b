// SPDX-License-Identifier: MIT

// Package nmr: periodic table data for the common NMR nuclei.
package nmr

import (
	"fmt"
	"strconv"
	"strings"
)

// Isotope is one naturally occurring isotope. Spin-inactive isotopes
// carry a zero Gamma and Quadrupole.
type Isotope struct {
	A          int     // mass number
	Mass       float64 // atomic mass in u
	Abundance  float64 // natural abundance in percent
	Spin       float64 // nuclear spin in hbar units
	Gamma      float64 // gyromagnetic ratio in rad/s/T
	Quadrupole float64 // electric quadrupole moment in millibarn
}

// Element groups the naturally occurring isotopes of one element with
// the default mass-number selectors: the most abundant isotope overall,
// the most abundant spin-active one, and the most abundant
// quadrupole-active one. A selector is zero when no isotope qualifies.
type Element struct {
	Symbol   string
	Z        int
	Isotopes []Isotope // ascending mass number

	MaxIso    int
	MaxIsoNMR int
	MaxIsoQ   int
}

// Isotope returns the isotope of e with mass number a.
func (e Element) Isotope(a int) (Isotope, error) {
	for _, iso := range e.Isotopes {
		if iso.A == a {
			return iso, nil
		}
	}
	return Isotope{}, fmt.Errorf("%s-%d: %w", e.Symbol, a, ErrUnknownIsotope)
}

// LookupElement returns the element with the given chemical symbol.
func LookupElement(symbol string) (Element, error) {
	el, ok := periodic[strings.TrimSpace(symbol)]
	if !ok {
		return Element{}, fmt.Errorf("LookupElement(%q): %w", symbol, ErrUnknownElement)
	}
	el.Isotopes = append([]Isotope(nil), el.Isotopes...)
	return el, nil
}

// LookupIsotope resolves a mass-number-prefixed isotope symbol such as
// "13C" or "1H", the form structure-file data uses.
func LookupIsotope(symbol string) (Isotope, error) {
	s := strings.TrimSpace(symbol)
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n == len(s) {
		return Isotope{}, fmt.Errorf("LookupIsotope(%q): need <mass number><symbol>: %w", symbol, ErrUnknownIsotope)
	}
	a, err := strconv.Atoi(s[:n])
	if err != nil {
		return Isotope{}, fmt.Errorf("LookupIsotope(%q): %w", symbol, ErrUnknownIsotope)
	}
	el, err := LookupElement(s[n:])
	if err != nil {
		return Isotope{}, fmt.Errorf("LookupIsotope(%q): %w", symbol, err)
	}
	iso, err := el.Isotope(a)
	if err != nil {
		return Isotope{}, fmt.Errorf("LookupIsotope(%q): %w", symbol, err)
	}
	return iso, nil
}

// periodic holds the elements this package knows about. Gyromagnetic
// ratios and quadrupole moments follow the IUPAC 2001 recommendations;
// isotopes with zero natural abundance are omitted.
var periodic = map[string]Element{
	"H": {
		Symbol: "H", Z: 1,
		Isotopes: []Isotope{
			{A: 1, Mass: 1.0078250319, Abundance: 99.9885, Spin: 0.5, Gamma: 2.6752218744e8},
			{A: 2, Mass: 2.0141017779, Abundance: 0.0115, Spin: 1, Gamma: 4.10662791e7, Quadrupole: 2.86},
		},
		MaxIso: 1, MaxIsoNMR: 1, MaxIsoQ: 2,
	},
	"C": {
		Symbol: "C", Z: 6,
		Isotopes: []Isotope{
			{A: 12, Mass: 12, Abundance: 98.93},
			{A: 13, Mass: 13.0033548352, Abundance: 1.07, Spin: 0.5, Gamma: 6.728284e7},
		},
		MaxIso: 12, MaxIsoNMR: 13,
	},
	"N": {
		Symbol: "N", Z: 7,
		Isotopes: []Isotope{
			{A: 14, Mass: 14.0030740052, Abundance: 99.636, Spin: 1, Gamma: 1.9337792e7, Quadrupole: 20.44},
			{A: 15, Mass: 15.0001088984, Abundance: 0.364, Spin: 0.5, Gamma: -2.71261804e7},
		},
		MaxIso: 14, MaxIsoNMR: 14, MaxIsoQ: 14,
	},
	"O": {
		Symbol: "O", Z: 8,
		Isotopes: []Isotope{
			{A: 16, Mass: 15.9949146221, Abundance: 99.757},
			{A: 17, Mass: 16.9991315, Abundance: 0.038, Spin: 2.5, Gamma: -3.62808e7, Quadrupole: -25.58},
			{A: 18, Mass: 17.999161, Abundance: 0.205},
		},
		MaxIso: 16, MaxIsoNMR: 17, MaxIsoQ: 17,
	},
	"F": {
		Symbol: "F", Z: 9,
		Isotopes: []Isotope{
			{A: 19, Mass: 18.9984032, Abundance: 100, Spin: 0.5, Gamma: 2.518148e8},
		},
		MaxIso: 19, MaxIsoNMR: 19,
	},
	"Na": {
		Symbol: "Na", Z: 11,
		Isotopes: []Isotope{
			{A: 23, Mass: 22.98976928, Abundance: 100, Spin: 1.5, Gamma: 7.0808493e7, Quadrupole: 104},
		},
		MaxIso: 23, MaxIsoNMR: 23, MaxIsoQ: 23,
	},
	"Al": {
		Symbol: "Al", Z: 13,
		Isotopes: []Isotope{
			{A: 27, Mass: 26.9815386, Abundance: 100, Spin: 2.5, Gamma: 6.976104e7, Quadrupole: 146.6},
		},
		MaxIso: 27, MaxIsoNMR: 27, MaxIsoQ: 27,
	},
	"Si": {
		Symbol: "Si", Z: 14,
		Isotopes: []Isotope{
			{A: 28, Mass: 27.9769265327, Abundance: 92.223},
			{A: 29, Mass: 28.9764947, Abundance: 4.685, Spin: 0.5, Gamma: -5.319e7},
			{A: 30, Mass: 29.97377017, Abundance: 3.092},
		},
		MaxIso: 28, MaxIsoNMR: 29,
	},
	"P": {
		Symbol: "P", Z: 15,
		Isotopes: []Isotope{
			{A: 31, Mass: 30.97376151, Abundance: 100, Spin: 0.5, Gamma: 1.08394e8},
		},
		MaxIso: 31, MaxIsoNMR: 31,
	},
	"Cl": {
		Symbol: "Cl", Z: 17,
		Isotopes: []Isotope{
			{A: 35, Mass: 34.96885271, Abundance: 75.76, Spin: 1.5, Gamma: 2.624198e7, Quadrupole: -81.65},
			{A: 37, Mass: 36.9659026, Abundance: 24.24, Spin: 1.5, Gamma: 2.184368e7, Quadrupole: -64.35},
		},
		MaxIso: 35, MaxIsoNMR: 35, MaxIsoQ: 35,
	},
}
