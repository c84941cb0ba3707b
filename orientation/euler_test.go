// SPDX-License-Identifier: MIT

package orientation_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CCP-NC/pastensor/mat3"
	"github.com/CCP-NC/pastensor/orientation"
	"github.com/CCP-NC/pastensor/tensor"
)

// mustFromMat wraps tensor.FromMat for fixtures that cannot fail.
func mustFromMat(t *testing.T, m mat3.Mat) *tensor.Tensor {
	t.Helper()
	tt, err := tensor.FromMat(m)
	require.NoError(t, err)
	return tt
}

// rotatedDiag builds r * diag(d) * r^T.
func rotatedDiag(r mat3.Mat, d mat3.Vec) mat3.Mat {
	return r.Mul(mat3.Diag(d)).Mul(r.Transpose())
}

// reconstruct builds m * diag(vals) * m^T.
func reconstruct(m mat3.Mat, vals mat3.Vec) mat3.Mat {
	return m.Mul(mat3.Diag(vals)).Mul(m.Transpose())
}

// --- FromTensor: reconstruction invariant ---

// TestFromTensor_Reconstruction sweeps conventions, senses and orderings
// over representative tensors: composing the extracted triple back into a
// rotation must reproduce the symmetric part from the ordered eigenvalues.
func TestFromTensor_Reconstruction(t *testing.T) {
	t.Parallel()

	r0 := orientation.Rz(0.4).Mul(orientation.Ry(0.3)).Mul(orientation.Rz(0.2))
	fixtures := map[string]mat3.Mat{
		"diagonal":  mat3.Diag(mat3.Vec{1, 2, -6}),
		"generic":   rotatedDiag(r0, mat3.Vec{1, 2, 7}),
		"axial":     rotatedDiag(r0, mat3.Vec{5, 5, 1}),
		"isotropic": mat3.Diag(mat3.Vec{3, 3, 3}),
	}

	for name, m := range fixtures {
		tt := mustFromMat(t, m)
		for _, conv := range []orientation.Convention{orientation.ZYZ, orientation.ZXZ} {
			for _, passive := range []bool{false, true} {
				for ord := tensor.Increasing; ord <= tensor.NQR; ord++ {
					label := fmt.Sprintf("%s/%s/passive=%v/%s", name, conv, passive, ord)
					opts := []orientation.Option{
						orientation.WithConvention(conv),
						orientation.WithPassive(passive),
						orientation.WithOrdering(ord),
					}

					e, adv, err := orientation.FromTensor(tt, opts...)
					require.NoError(t, err, label)
					assert.False(t, adv.Has(orientation.AdvisorySelfCheckMismatch),
						"self-check should settle after the retry: %s", label)

					vals, err := tt.Eigenvalues(ord)
					require.NoError(t, err, label)
					got := reconstruct(orientation.Matrix(e, opts...), vals)
					assert.Truef(t, mat3.Equal(got, tt.Symmetric(), 1e-8),
						"reconstruction drifted: %s\ngot %v\nwant %v", label, got, tt.Symmetric())
				}
			}
		}
	}
}

// --- FromTensor: pinned scenarios ---

func TestFromTensor_IncreasingDiagonal(t *testing.T) {
	t.Parallel()

	tt := mustFromMat(t, mat3.Diag(mat3.Vec{1, 2, -6}))

	e, adv, err := orientation.FromTensor(tt, orientation.WithOrdering(tensor.Increasing))
	require.NoError(t, err)
	assert.Zero(t, adv, "three distinct eigenvalues carry no advisory")
	assert.InDelta(t, 3*math.Pi/2, e.Alpha, 1e-9)
	assert.InDelta(t, math.Pi/2, e.Beta, 1e-9)
	assert.InDelta(t, 0, e.Gamma, 1e-9)

	deg, _, err := orientation.FromTensor(tt,
		orientation.WithOrdering(tensor.Increasing), orientation.WithDegrees(true))
	require.NoError(t, err)
	assert.InDelta(t, 270, deg.Alpha, 1e-9)
	assert.InDelta(t, 90, deg.Beta, 1e-9)
	assert.InDelta(t, 0, deg.Gamma, 1e-9)
}

func TestFromTensor_AlignedTensorIsZero(t *testing.T) {
	t.Parallel()

	// Ascending diagonal entries mean the principal frame is the lab frame.
	tt := mustFromMat(t, mat3.Diag(mat3.Vec{1, 2, 7}))
	e, adv, err := orientation.FromTensor(tt)
	require.NoError(t, err)
	assert.Zero(t, adv)
	assert.Equal(t, orientation.Euler{}, e)
}

func TestFromTensor_IsotropicAllConventions(t *testing.T) {
	t.Parallel()

	tt := mustFromMat(t, mat3.Diag(mat3.Vec{2, 2, 2}))
	for _, conv := range []orientation.Convention{orientation.ZYZ, orientation.ZXZ} {
		for _, passive := range []bool{false, true} {
			for ord := tensor.Increasing; ord <= tensor.NQR; ord++ {
				e, adv, err := orientation.FromTensor(tt,
					orientation.WithConvention(conv),
					orientation.WithPassive(passive),
					orientation.WithOrdering(ord))
				require.NoError(t, err)
				assert.Equal(t, orientation.Euler{}, e, "isotropic tensors have no orientation")
				assert.True(t, adv.Has(orientation.AdvisoryIsotropic))
			}
		}
	}
}

// --- FromTensor: axial degeneracy ---

func TestFromTensor_AxialUniqueZFixesFreeAngle(t *testing.T) {
	t.Parallel()

	// Under Haeberlen ordering the repeated pair of diag(5,5,1) comes
	// first, so the unique axis is z and the free angle must be zeroed:
	// gamma in the active sense, alpha in the passive one.
	tt := mustFromMat(t, mat3.Diag(mat3.Vec{5, 5, 1}))

	act, adv, err := orientation.FromTensor(tt, orientation.WithOrdering(tensor.Haeberlen))
	require.NoError(t, err)
	assert.True(t, adv.Has(orientation.AdvisoryAxial))
	assert.Zero(t, act.Gamma)

	pas, adv, err := orientation.FromTensor(tt,
		orientation.WithOrdering(tensor.Haeberlen), orientation.WithPassive(true))
	require.NoError(t, err)
	assert.True(t, adv.Has(orientation.AdvisoryAxial))
	assert.Zero(t, pas.Alpha)
}

func TestFromTensor_AxialUniqueXClosedFormZYZ(t *testing.T) {
	t.Parallel()

	// An axial tensor with the unique eigenvalue first under increasing
	// ordering, rotated by Ry(0.4)*Rz(0.3): alpha is the free angle and
	// beta, gamma come back in closed form.
	r := orientation.Ry(0.4).Mul(orientation.Rz(0.3))
	tt := mustFromMat(t, rotatedDiag(r, mat3.Vec{1, 5, 5}))

	e, adv, err := orientation.FromTensor(tt, orientation.WithOrdering(tensor.Increasing))
	require.NoError(t, err)
	assert.True(t, adv.Has(orientation.AdvisoryAxial))
	assert.InDelta(t, 0, e.Alpha, 1e-9)
	assert.InDelta(t, 0.4, e.Beta, 1e-9)
	assert.InDelta(t, 0.3, e.Gamma, 1e-9)
}

func TestFromTensor_AxialUniqueXClosedFormZXZ(t *testing.T) {
	t.Parallel()

	r := orientation.Rx(0.4).Mul(orientation.Rz(0.3))
	tt := mustFromMat(t, rotatedDiag(r, mat3.Vec{1, 5, 5}))

	e, adv, err := orientation.FromTensor(tt,
		orientation.WithOrdering(tensor.Increasing),
		orientation.WithConvention(orientation.ZXZ))
	require.NoError(t, err)
	assert.True(t, adv.Has(orientation.AdvisoryAxial))
	assert.InDelta(t, 0, e.Alpha, 1e-9)
	assert.InDelta(t, 0.4, e.Beta, 1e-9)
	assert.InDelta(t, 0.3, e.Gamma, 1e-9)
}

// --- option validation ---

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { orientation.WithConvention(orientation.Convention(9)) })
	assert.Panics(t, func() { orientation.WithOrdering(tensor.Ordering(9)) })
	assert.Panics(t, func() { orientation.WithEpsilon(0) })
	assert.Panics(t, func() { orientation.WithEpsilon(math.NaN()) })
}

func TestParseConvention(t *testing.T) {
	t.Parallel()

	c, err := orientation.ParseConvention(" ZXZ ")
	require.NoError(t, err)
	assert.Equal(t, orientation.ZXZ, c)

	_, err = orientation.ParseConvention("xyz")
	assert.ErrorIs(t, err, orientation.ErrConvention)
}
