// SPDX-License-Identifier: MIT

// Package orientation: functional options shared by every operation.
package orientation

import (
	"math"

	"github.com/CCP-NC/pastensor/tensor"
)

// DefaultEpsilon is the tolerance used for gimbal-lock detection, the
// reconstruction self-check and identical-tensor comparison when no
// WithEpsilon option is given.
const DefaultEpsilon = 1e-6

// Panic messages for invalid option values (programmer errors).
const (
	panicConventionInvalid = "orientation: WithConvention requires zyz or zxz"
	panicOrderingInvalid   = "orientation: WithOrdering requires a defined tensor ordering"
	panicEpsilonInvalid    = "orientation: WithEpsilon requires a positive, finite tolerance"
)

// Options carries the resolved configuration of one operation.
// Zero value is never used directly; gatherOptions seeds the defaults.
type Options struct {
	conv     Convention
	passive  bool
	ordering tensor.Ordering
	eps      float64
	degrees  bool
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithConvention selects the Euler axis convention. Default ZYZ.
// Panics on an undefined convention value.
func WithConvention(c Convention) Option {
	if !c.Valid() {
		panic(panicConventionInvalid)
	}
	return func(o *Options) { o.conv = c }
}

// WithPassive selects between the active sense (rotate the object, false)
// and the passive sense (rotate the frame, true). Default active.
func WithPassive(passive bool) Option {
	return func(o *Options) { o.passive = passive }
}

// WithOrdering selects the eigenvalue ordering convention whose principal
// axes drive the extraction. Default tensor.Increasing.
// Panics on an undefined ordering value.
func WithOrdering(ord tensor.Ordering) Option {
	if !ord.Valid() {
		panic(panicOrderingInvalid)
	}
	return func(o *Options) { o.ordering = ord }
}

// WithEpsilon overrides DefaultEpsilon.
// Panics if eps is not a positive finite number.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithDegrees makes angle-returning operations report degrees and
// angle-consuming operations interpret their input as degrees.
// Default radians.
func WithDegrees(degrees bool) Option {
	return func(o *Options) { o.degrees = degrees }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		conv:     ZYZ,
		passive:  false,
		ordering: tensor.Increasing,
		eps:      DefaultEpsilon,
		degrees:  false,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
