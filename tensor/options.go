// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for tensor construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper (internal) that resolves defaults.
//
// No global state: every constructor resolves its own Options value, so two
// goroutines building tensors with different tolerances never interact.
package tensor

import (
	"math"

	"github.com/CCP-NC/pastensor/mat3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for eigenvalue-coincidence detection,
	// relative to max(1, |largest eigenvalue|).
	DefaultEpsilon = 1e-6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "tensor: WithEpsilon: eps must be finite and > 0"
	panicEigenTolInvalid  = "tensor: WithEigenTol: tol must be finite and > 0"
	panicEigenIterInvalid = "tensor: WithEigenMaxIter: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps          float64 // coincidence tolerance; DefaultEpsilon
	eigenTol     float64 // Jacobi off-diagonal threshold; mat3.DefaultEigenTol
	eigenMaxIter int     // Jacobi rotation cap; mat3.DefaultEigenMaxIter
}

// WithEpsilon sets the eigenvalue-coincidence tolerance.
// Panics when eps is non-finite or not positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithEigenTol sets the Jacobi off-diagonal convergence threshold
// (relative to max(1, MaxAbs) — see mat3.EigenSym).
// Panics when tol is non-finite or not positive.
func WithEigenTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}
	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter caps the number of Jacobi rotations.
// Panics when n is not positive.
func WithEigenMaxIter(n int) Option {
	if n <= 0 {
		panic(panicEigenIterInvalid)
	}
	return func(o *Options) { o.eigenMaxIter = n }
}

// gatherOptions resolves defaults, then applies the provided setters.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:          DefaultEpsilon,
		eigenTol:     mat3.DefaultEigenTol,
		eigenMaxIter: mat3.DefaultEigenMaxIter,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
