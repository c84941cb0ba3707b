// SPDX-License-Identifier: MIT

// Package tensor: ordering caches and the View wrapper.
package tensor

import (
	"fmt"
	"math"
	"sort"

	"github.com/CCP-NC/pastensor/mat3"
)

// orderedFromBase permutes the base (ascending) eigenpairs by perm and
// re-fixes the third eigenvector column, keeping the basis right-handed.
func (t *Tensor) orderedFromBase(perm [3]int) (mat3.Vec, mat3.Mat) {
	bv, bq := t.vals[Increasing], t.vecs[Increasing]
	c0, c1 := bq.Col(perm[0]), bq.Col(perm[1])
	return mat3.Vec{bv[perm[0]], bv[perm[1]], bv[perm[2]]},
		mat3.FromCols(c0, c1, c0.Cross(c1))
}

// buildOrderings fills the Decreasing, Haeberlen and NQR caches from the
// base cache. Isotropic tensors keep the identity permutation under every
// convention: sorting on sub-tolerance differences is numerically
// meaningless and would make the cached bases input-noise dependent.
func (t *Tensor) buildOrderings() {
	if t.symmetry == SymmetryIsotropic {
		for ord := Decreasing; ord < numOrderings; ord++ {
			t.vals[ord], t.vecs[ord] = t.vals[Increasing], t.vecs[Increasing]
		}
		return
	}

	t.vals[Decreasing], t.vecs[Decreasing] = t.orderedFromBase([3]int{2, 1, 0})

	// Distance-from-isotropy orderings. Ties keep ascending order (stable),
	// so an axial pair always lands in the leading two slots.
	base := t.vals[Increasing]
	iso := (base[0] + base[1] + base[2]) / 3
	dist := [3]float64{
		math.Abs(base[0] - iso),
		math.Abs(base[1] - iso),
		math.Abs(base[2] - iso),
	}
	p := [3]int{0, 1, 2}
	sort.SliceStable(p[:], func(i, j int) bool { return dist[p[i]] < dist[p[j]] })
	t.vals[NQR], t.vecs[NQR] = t.orderedFromBase(p)
	p[0], p[1] = p[1], p[0]
	t.vals[Haeberlen], t.vecs[Haeberlen] = t.orderedFromBase(p)
}

// View pairs a Tensor with one ordering convention, for call sites that
// would otherwise thread the (tensor, ordering) pair through every call.
// A View is as immutable as its Tensor.
type View struct {
	t   *Tensor
	ord Ordering
}

// View returns an ordered view of t. Returns ErrOrdering for unknown
// conventions.
func (t *Tensor) View(ord Ordering) (*View, error) {
	if !ord.Valid() {
		return nil, fmt.Errorf("View(%v): %w", ord, ErrOrdering)
	}
	return &View{t: t, ord: ord}, nil
}

// Ordering returns the view's convention.
func (v *View) Ordering() Ordering { return v.ord }

// Tensor returns the underlying entity.
func (v *View) Tensor() *Tensor { return v.t }

// Eigenvalues returns the eigenvalues under the view's convention.
func (v *View) Eigenvalues() mat3.Vec { return v.t.vals[v.ord] }

// Eigenvectors returns the eigenvector basis under the view's convention.
func (v *View) Eigenvectors() mat3.Mat { return v.t.vecs[v.ord] }
