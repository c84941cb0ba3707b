// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CCP-NC/pastensor/mat3"
	"github.com/CCP-NC/pastensor/tensor"
)

// rotZ builds an elemental rotation about z for transform tests.
func rotZ(theta float64) mat3.Mat {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat3.Mat{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

func TestRotate_PassiveByOwnBasisDiagonalizes(t *testing.T) {
	t.Parallel()

	tt := mustTensor(t, [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}})
	basis, err := tt.Eigenvectors(tensor.Increasing)
	require.NoError(t, err)

	diag, err := tt.Rotate(basis, false)
	require.NoError(t, err)

	vals, err := tt.Eigenvalues(tensor.Increasing)
	require.NoError(t, err)
	assert.True(t, mat3.Equal(diag.Raw(), mat3.Diag(vals), 1e-9),
		"passive rotation by the eigenvector basis should diagonalize")
}

func TestRotate_RoundTripAndInvariance(t *testing.T) {
	t.Parallel()

	tt := mustTensor(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, -6}})
	r := rotZ(0.7)

	rotated, err := tt.Rotate(r, true)
	require.NoError(t, err)

	// Invariants survive any orthonormal change of frame.
	inv, rot := tt.Invariants(), rotated.Invariants()
	assert.InDelta(t, inv.Isotropy, rot.Isotropy, 1e-9)
	assert.InDelta(t, inv.Anisotropy, rot.Anisotropy, 1e-9)
	assert.InDelta(t, inv.ReducedAnisotropy, rot.ReducedAnisotropy, 1e-9)
	assert.InDelta(t, inv.Asymmetry, rot.Asymmetry, 1e-9)
	assert.InDelta(t, inv.Span, rot.Span, 1e-9)
	assert.InDelta(t, inv.Skew, rot.Skew, 1e-9)

	// Active then passive with the same basis is the identity.
	back, err := rotated.Rotate(r, false)
	require.NoError(t, err)
	assert.True(t, mat3.Equal(back.Raw(), tt.Raw(), 1e-9), "rotate round-trip should restore the raw tensor")
}

func TestScale_PositiveFactor(t *testing.T) {
	t.Parallel()

	tt := mustTensor(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, -6}})
	k := 2.5
	scaled := tt.Scale(k)

	origVals := eigs(t, tt, tensor.Increasing)
	gotVals := eigs(t, scaled, tensor.Increasing)
	assert.True(t, mat3.EqualVec(gotVals, origVals.Scale(k), 1e-12), "eigenvalues scale linearly")
	assert.InDelta(t, k*tt.Isotropy(), scaled.Isotropy(), 1e-12, "isotropy scales linearly")

	origVecs, err := tt.Eigenvectors(tensor.Increasing)
	require.NoError(t, err)
	gotVecs, err := scaled.Eigenvectors(tensor.Increasing)
	require.NoError(t, err)
	assert.Equal(t, origVecs, gotVecs, "eigenvectors are unaffected by scaling")

	assert.True(t, mat3.Equal(scaled.Raw(), tt.Raw().Scale(k), 1e-12))
	assert.Equal(t, tt.Symmetry(), scaled.Symmetry(), "symmetry class survives scaling")
}

func TestScale_NegativeFactorReordersAscending(t *testing.T) {
	t.Parallel()

	tt := mustTensor(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, -6}})
	scaled := tt.Scale(-1)

	assert.Equal(t, mat3.Vec{-2, -1, 6}, eigs(t, scaled, tensor.Increasing),
		"negated eigenvalues must be re-sorted ascending")
	vecs, err := scaled.Eigenvectors(tensor.Increasing)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, vecs.Det(), 1e-12, "reordered basis stays right-handed")

	// Odd invariants flip sign; even ones are preserved.
	assert.InDelta(t, -tt.Isotropy(), scaled.Isotropy(), 1e-12)
	assert.InDelta(t, -tt.Anisotropy(), scaled.Anisotropy(), 1e-12)
	assert.InDelta(t, -tt.ReducedAnisotropy(), scaled.ReducedAnisotropy(), 1e-12)
	assert.InDelta(t, -tt.Skew(), scaled.Skew(), 1e-12)
	assert.InDelta(t, tt.Asymmetry(), scaled.Asymmetry(), 1e-12)
	assert.InDelta(t, tt.Span(), scaled.Span(), 1e-12)
}

func TestScale_ZeroGivesIsotropicZeroTensor(t *testing.T) {
	t.Parallel()

	tt := mustTensor(t, [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}})
	z := tt.Scale(0)

	assert.Equal(t, tensor.SymmetryIsotropic, z.Symmetry())
	assert.Equal(t, mat3.Vec{0, 0, 0}, eigs(t, z, tensor.Increasing))
	assert.Zero(t, z.Isotropy())
	assert.Zero(t, z.Span())
}

func TestScale_MatchesFreshConstruction(t *testing.T) {
	t.Parallel()

	// The no-rediagonalization fast path must agree with a full rebuild.
	tt := mustTensor(t, [][]float64{{4, 1, -2}, {1, 5, 3}, {-2, 3, 6}})
	k := 2.349647e5
	fast := tt.Scale(k)
	full := mustTensor(t, [][]float64{
		{4 * k, 1 * k, -2 * k},
		{1 * k, 5 * k, 3 * k},
		{-2 * k, 3 * k, 6 * k},
	})

	fastVals := eigs(t, fast, tensor.Haeberlen)
	fullVals := eigs(t, full, tensor.Haeberlen)
	for i := 0; i < 3; i++ {
		assert.InDeltaf(t, fullVals[i], fastVals[i], 1e-4, "haeberlen eigenvalue %d", i)
	}
	assert.InDelta(t, full.Isotropy(), fast.Isotropy(), 1e-6)
}
