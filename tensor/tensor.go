// SPDX-License-Identifier: MIT

// Package tensor: the Tensor entity and its construction pipeline.
package tensor

import (
	"fmt"
	"math"
	"sort"

	"github.com/CCP-NC/pastensor/mat3"
)

// Tensor is an immutable 3x3 interaction tensor with its derived state.
//
// Construction decomposes the raw matrix into symmetric and antisymmetric
// parts, diagonalizes the symmetric part and caches sorted eigenvalues and
// right-handed eigenvector bases for all four ordering conventions, the
// symmetry class, and the scalar invariants. Accessors only read.
type Tensor struct {
	raw  mat3.Mat
	symm mat3.Mat
	anti mat3.Mat

	opts Options

	// vals/vecs are indexed by Ordering; vecs columns are unit eigenvectors,
	// column k pairing with vals[k], third column = cross of the first two.
	vals [numOrderings]mat3.Vec
	vecs [numOrderings]mat3.Mat

	symmetry Symmetry
	inv      Invariants
}

// New builds a Tensor from a row-major 3x3 slice.
// Returns ErrDimension unless rows is exactly 3x3.
//
// The heavy lifting — decomposition, diagonalization, ordering caches,
// invariants — happens here; every accessor afterwards is a read.
func New(rows [][]float64, opts ...Option) (*Tensor, error) {
	if len(rows) != 3 {
		return nil, fmt.Errorf("New: %d rows: %w", len(rows), ErrDimension)
	}
	var m mat3.Mat
	for i, r := range rows {
		if len(r) != 3 {
			return nil, fmt.Errorf("New: row %d has %d columns: %w", i, len(r), ErrDimension)
		}
		copy(m[i][:], r)
	}
	return FromMat(m, opts...)
}

// FromFlat builds a Tensor from 9 row-major components, the layout used by
// structure-file loaders. Returns ErrDimension unless len(data) == 9.
func FromFlat(data []float64, opts ...Option) (*Tensor, error) {
	if len(data) != 9 {
		return nil, fmt.Errorf("FromFlat: %d components: %w", len(data), ErrDimension)
	}
	var m mat3.Mat
	for i := 0; i < 3; i++ {
		copy(m[i][:], data[3*i:3*i+3])
	}
	return FromMat(m, opts...)
}

// FromMat builds a Tensor from a kernel matrix value.
func FromMat(m mat3.Mat, opts ...Option) (*Tensor, error) {
	return fromMat(m, gatherOptions(opts...))
}

// fromMat is the shared pipeline behind the constructors and Rotate:
// resolved options in, fully derived entity out.
func fromMat(m mat3.Mat, o Options) (*Tensor, error) {
	symm := m.Add(m.Transpose()).Scale(0.5)
	vals, vecs, err := mat3.EigenSym(symm, o.eigenTol, o.eigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("FromMat: %w", err)
	}
	t := &Tensor{raw: m, symm: symm, anti: m.Sub(symm), opts: o}
	t.setBase(vals, vecs)
	t.finish()
	return t, nil
}

// Clone returns an independent copy. Tensors are immutable, so the copy is
// indistinguishable from the original; Clone exists for callers that keep
// per-site entities alive while mutating their own bookkeeping around them.
func (t *Tensor) Clone() *Tensor {
	c := *t
	return &c
}

// setBase installs the ascending (Increasing) eigenvalue cache from a raw
// eigen decomposition, permuting eigenvector columns alongside the values
// and re-fixing the third column so the basis stays right-handed.
// Coinciding eigenvalues keep their diagonal order (stable sort), keeping
// the pipeline deterministic.
func (t *Tensor) setBase(vals mat3.Vec, vecs mat3.Mat) {
	p := [3]int{0, 1, 2}
	sort.SliceStable(p[:], func(i, j int) bool { return vals[p[i]] < vals[p[j]] })
	c0, c1 := vecs.Col(p[0]), vecs.Col(p[1])
	t.vals[Increasing] = mat3.Vec{vals[p[0]], vals[p[1]], vals[p[2]]}
	t.vecs[Increasing] = mat3.FromCols(c0, c1, c0.Cross(c1))
}

// finish derives everything downstream of the base cache: symmetry class,
// the remaining ordering caches, and the scalar invariants. Split from the
// constructors because Scale re-enters here without re-diagonalizing.
func (t *Tensor) finish() {
	t.classify()
	t.buildOrderings()
	t.computeInvariants()
}

// coincidenceTol is the effective tolerance for eigenvalue coincidence:
// eps relative to the eigenvalue magnitude, floored at eps itself so
// near-zero tensors are judged absolutely.
func (t *Tensor) coincidenceTol() float64 {
	base := t.vals[Increasing]
	scale := math.Max(math.Abs(base[0]), math.Abs(base[2]))
	return t.opts.eps * math.Max(1, scale)
}

// classify counts adjacent eigenvalue coincidences of the ascending order:
// 0 distinct, 1 axial, 2 isotropic.
func (t *Tensor) classify() {
	base := t.vals[Increasing]
	tol := t.coincidenceTol()
	n := 0
	if base[1]-base[0] <= tol {
		n++
	}
	if base[2]-base[1] <= tol {
		n++
	}
	t.symmetry = Symmetry(n)
}

// Raw returns the raw tensor as constructed.
func (t *Tensor) Raw() mat3.Mat { return t.raw }

// Symmetric returns the symmetric part (raw + raw^T)/2.
func (t *Tensor) Symmetric() mat3.Mat { return t.symm }

// Antisymmetric returns the antisymmetric remainder raw - symmetric.
func (t *Tensor) Antisymmetric() mat3.Mat { return t.anti }

// Epsilon returns the coincidence tolerance the tensor was built with.
func (t *Tensor) Epsilon() float64 { return t.opts.eps }

// Symmetry returns the eigenvalue-coincidence class.
func (t *Tensor) Symmetry() Symmetry { return t.symmetry }

// Eigenvalues returns the eigenvalues of the symmetric part under ord.
func (t *Tensor) Eigenvalues(ord Ordering) (mat3.Vec, error) {
	if !ord.Valid() {
		return mat3.Vec{}, fmt.Errorf("Eigenvalues(%v): %w", ord, ErrOrdering)
	}
	return t.vals[ord], nil
}

// Eigenvectors returns the right-handed eigenvector basis under ord;
// column k is the unit eigenvector of Eigenvalues(ord)[k].
func (t *Tensor) Eigenvectors(ord Ordering) (mat3.Mat, error) {
	if !ord.Valid() {
		return mat3.Mat{}, fmt.Errorf("Eigenvectors(%v): %w", ord, ErrOrdering)
	}
	return t.vecs[ord], nil
}

// Isotropy returns the eigenvalue mean.
func (t *Tensor) Isotropy() float64 { return t.inv.Isotropy }

// Anisotropy returns ez - (ex+ey)/2 in the Haeberlen order.
func (t *Tensor) Anisotropy() float64 { return t.inv.Anisotropy }

// ReducedAnisotropy returns ez - isotropy in the Haeberlen order.
func (t *Tensor) ReducedAnisotropy() float64 { return t.inv.ReducedAnisotropy }

// Asymmetry returns (ey-ex)/reducedAnisotropy, 0 for isotropic tensors.
func (t *Tensor) Asymmetry() float64 { return t.inv.Asymmetry }

// Span returns the eigenvalue range.
func (t *Tensor) Span() float64 { return t.inv.Span }

// Skew returns 3*(middle - isotropy)/span, 0 when the span vanishes.
func (t *Tensor) Skew() float64 { return t.inv.Skew }

// Invariants returns all six scalar invariants at once.
func (t *Tensor) Invariants() Invariants { return t.inv }
