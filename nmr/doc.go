// SPDX-License-Identifier: MIT

// Package nmr carries the physical constants, isotope data and unit
// conversions that turn raw interaction tensors into spectroscopic
// observables.
//
// Electric field gradient tensors arrive in atomic units and convert to
// quadrupolar coupling frequencies in Hz through the nuclear quadrupole
// moment; reduced indirect spin-spin coupling tensors (10^19 T^2/J)
// convert to J-coupling in Hz through the two gyromagnetic ratios. Both
// conversions are pure scalings, so they preserve eigenvectors and
// orientation and simply stretch the spectrum.
//
// The isotope table covers the common NMR nuclei with their mass,
// natural abundance, spin, gyromagnetic ratio and quadrupole moment,
// keyed either by element symbol or by the mass-number-prefixed isotope
// symbol ("13C") used in structure-file data.
package nmr
