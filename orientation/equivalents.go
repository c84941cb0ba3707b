// SPDX-License-Identifier: MIT

// Package orientation: discrete families of equivalent Euler triples.
package orientation

import (
	"math"

	"github.com/CCP-NC/pastensor/mat3"
	"github.com/CCP-NC/pastensor/tensor"
)

// EquivalentSet returns the four Euler triples, the input included, that
// describe physically indistinguishable orientations of a symmetric
// tensor: a half turn about each principal axis composed with the
// original frame. The triples follow the axis order identity, z, y, x and
// are wrapped into [0, 2pi) without canonical folding.
func EquivalentSet(e Euler, opts ...Option) [4]Euler {
	o := gatherOptions(opts...)
	r := toRadians(e, o.degrees)
	pi := math.Pi

	var set [4]Euler
	if o.passive {
		set = [4]Euler{
			r,
			{Alpha: r.Alpha + pi, Beta: r.Beta, Gamma: r.Gamma},
			{Alpha: pi - r.Alpha, Beta: pi - r.Beta, Gamma: r.Gamma + pi},
			{Alpha: 2*pi - r.Alpha, Beta: pi - r.Beta, Gamma: r.Gamma + pi},
		}
	} else {
		set = [4]Euler{
			r,
			{Alpha: r.Alpha, Beta: r.Beta, Gamma: r.Gamma + pi},
			{Alpha: r.Alpha + pi, Beta: pi - r.Beta, Gamma: pi - r.Gamma},
			{Alpha: r.Alpha + pi, Beta: pi - r.Beta, Gamma: 2*pi - r.Gamma},
		}
	}
	for i := range set {
		set[i] = fromRadians(wrapEuler(set[i]), o.degrees)
	}
	return set
}

// EquivalentBetween returns every group-symmetric expression of the
// relative orientation between a and b: a half turn about each principal
// axis on either side, 16 triples in total. The triple at index i*4+j
// composes a's i-th half turn with b's j-th, both in the order identity,
// z, y, x, so index 0 matches the general path of Between before
// canonical folding. Triples are wrapped into [0, 2pi) without folding.
//
// If either tensor is isotropic the relative orientation is undefined and
// a single zero triple is returned with AdvisoryIsotropic. Axial symmetry
// on either side sets AdvisoryAxial, since the family is then a sample of
// a continuum.
func EquivalentBetween(a, b *tensor.Tensor, opts ...Option) ([]Euler, Advisories, error) {
	o := gatherOptions(opts...)

	var adv Advisories
	if a.Symmetry() == tensor.SymmetryIsotropic || b.Symmetry() == tensor.SymmetryIsotropic {
		adv.add(AdvisoryIsotropic)
		return []Euler{{}}, adv, nil
	}
	if a.Symmetry() == tensor.SymmetryAxial || b.Symmetry() == tensor.SymmetryAxial {
		adv.add(AdvisoryAxial)
	}

	fa, err := a.Eigenvectors(o.ordering)
	if err != nil {
		return nil, 0, err
	}
	fb, err := b.Eigenvectors(o.ordering)
	if err != nil {
		return nil, 0, err
	}
	if o.passive {
		fa, fb = fa.Transpose(), fb.Transpose()
	}

	set := make([]Euler, 0, len(halfTurns)*len(halfTurns))
	for _, si := range halfTurns {
		fai := equivFrame(fa, si, o.passive)
		for _, sj := range halfTurns {
			r := RotationBetween(fai, equivFrame(fb, sj, o.passive))
			set = append(set, fromRadians(wrapEuler(extract(r, o.conv, o.eps)), o.degrees))
		}
	}
	return set, adv, nil
}

// equivFrame composes a half turn with a frame on the side matching the
// sense: right for active frames, left for passive ones.
func equivFrame(f, s mat3.Mat, passive bool) mat3.Mat {
	if passive {
		return s.Mul(f)
	}
	return f.Mul(s)
}
