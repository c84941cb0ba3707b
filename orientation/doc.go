// SPDX-License-Identifier: MIT

// Package orientation extracts Euler angles from symmetric 3x3 tensors and
// relates the principal-axis frames of tensor pairs.
//
// What it computes:
//
//   - FromTensor: the Euler triple carrying the laboratory frame onto a
//     tensor's principal-axis system, under a chosen axis convention
//     (ZYZ or ZXZ) and rotation sense (active or passive).
//   - Between: a single representative triple rotating one tensor's
//     principal frame onto another's.
//   - EquivalentSet / EquivalentBetween: the discrete families of angle
//     triples that describe physically indistinguishable orientations
//     (4 for a single tensor, up to 16 for a pair).
//   - Matrix / Quaternion / FromBasis: conversions between angle triples,
//     rotation matrices and unit quaternions.
//
// Conventions:
//
// An active triple (alpha, beta, gamma) composes as Rz(alpha)*Rm(beta)*Rz(gamma),
// where the middle axis m is y for ZYZ and x for ZXZ, and rotates the object
// within a fixed frame. The passive matrix is the transpose of the active
// composition and rotates the frame instead. Angles are radians unless
// WithDegrees is set.
//
// Degenerate tensors:
//
// An isotropic tensor has no orientation; operations return the zero triple
// with AdvisoryIsotropic. An axially symmetric tensor leaves one angle free;
// the free angle is fixed to zero and the remaining pair is recovered in
// closed form from the tensor entries, flagged with AdvisoryAxial where the
// result is ambiguous up to rotation about the unique axis. These fallbacks
// are documented conventions, not failures.
//
// Results are best-effort: a reconstruction self-check guards the extraction,
// retrying once with the negated basis to absorb eigenvector sign ambiguity,
// and reports AdvisorySelfCheckMismatch instead of failing when the retry
// still disagrees.
package orientation
