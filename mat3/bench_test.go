// SPDX-License-Identifier: MIT

package mat3_test

import (
	"testing"

	"github.com/CCP-NC/pastensor/mat3"
)

// BenchmarkEigenSym measures a full Jacobi decomposition of a dense
// symmetric matrix (the dominant cost of tensor construction).
func BenchmarkEigenSym(b *testing.B) {
	m := mat3.Mat{{4, 1, -2}, {1, 5, 3}, {-2, 3, 6}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mat3.EigenSym(m, mat3.DefaultEigenTol, mat3.DefaultEigenMaxIter); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMul measures the closed-form 3x3 product.
func BenchmarkMul(b *testing.B) {
	m := mat3.Mat{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	n := mat3.Mat{{2, 0, 1}, {0, 1, 0}, {1, 0, 2}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Mul(n)
	}
}
