// Package pastensor is your in-memory toolkit for decomposing, orienting,
// and converting symmetric 3×3 interaction tensors, from raw matrices to
// Euler angles, equivalent rotations and NMR-ready frequencies.
//
// 🚀 What is pastensor?
//
//	A small, convention-explicit library that brings together:
//		• Core primitives: 3×3 matrices & vectors, products, norms, determinants
//		• Decomposition: isotropic + symmetric + antisymmetric parts, cyclic Jacobi
//		• Eigenvalue orderings: Increasing, Decreasing, Haeberlen, NQR
//		• Scalar invariants: isotropy, anisotropy, asymmetry, span & skew
//		• Euler angles: ZYZ & ZXZ, active & passive, quaternions, degenerate cases
//		• Equivalent orientations: 4-member sets & 16-member relative grids
//		• NMR helpers: EFG → Hz, J-coupling → Hz, periodic isotope table
//
// ✨ Why choose pastensor?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid conventions – right-handed frames, documented angle ranges
//   - Pure Go – no cgo; numerics lean on gonum
//   - Extensible – functional options (WithOrdering, WithConvention, WithDegrees…)
//
// Under the hood, everything is organized under four subpackages:
//
//	mat3/        — fixed-size 3×3 matrix & vector kernel: products, Jacobi sweeps
//	tensor/      — symmetric tensors: decomposition, orderings, invariants
//	orientation/ — Euler angles (ZYZ/ZXZ), quaternions, equivalent & relative rotations
//	nmr/         — EFG and J-coupling unit conversions + isotope reference data
//
// Quick picture:
//
//	    ⎡ s_xx s_xy s_xz ⎤
//	S = ⎢ s_xy s_yy s_yz ⎥ = V · diag(λ1, λ2, λ3) · Vᵀ
//	    ⎣ s_xz s_yz s_zz ⎦
//
//	splits a symmetric interaction into three principal values and a
//	right-handed rotation V, the principal axis system.
//
// Next up: CSA convention helpers, powder-pattern moments and beyond.
// Dive into the subpackage docs for worked examples and the full table of
// angle conventions.
//
//	go get github.com/CCP-NC/pastensor
package pastensor
