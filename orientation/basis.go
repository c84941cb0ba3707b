// SPDX-License-Identifier: MIT

// Package orientation: elemental rotations and conversions between Euler
// triples, rotation matrices and quaternions.
package orientation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/CCP-NC/pastensor/mat3"
)

const degPerRad = 180 / math.Pi

// Rz returns the elemental rotation by theta radians about the z axis.
func Rz(theta float64) mat3.Mat {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat3.Mat{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Ry returns the elemental rotation by theta radians about the y axis.
func Ry(theta float64) mat3.Mat {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat3.Mat{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// Rx returns the elemental rotation by theta radians about the x axis.
func Rx(theta float64) mat3.Mat {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat3.Mat{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// halfTurns are the exact half rotations about the coordinate axes, in
// the order identity, z, y, x. They generate the discrete symmetry group
// of a diagonal tensor.
var halfTurns = [4]mat3.Mat{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
}

// compose builds the active composition Rz(alpha)*Rmid(beta)*Rz(gamma)
// for the convention, with e in radians.
func compose(e Euler, conv Convention) mat3.Mat {
	mid := Ry(e.Beta)
	if conv == ZXZ {
		mid = Rx(e.Beta)
	}
	return Rz(e.Alpha).Mul(mid).Mul(Rz(e.Gamma))
}

// Matrix returns the rotation matrix of e under the gathered convention
// and sense. The passive matrix is the transpose of the active
// composition. Input angles honor WithDegrees.
func Matrix(e Euler, opts ...Option) mat3.Mat {
	o := gatherOptions(opts...)
	m := compose(toRadians(e, o.degrees), o.conv)
	if o.passive {
		return m.Transpose()
	}
	return m
}

// Quaternion returns the unit quaternion equivalent to Matrix(e, opts...).
// The passive sense yields the conjugate of the active composition.
func Quaternion(e Euler, opts ...Option) quat.Number {
	o := gatherOptions(opts...)
	r := toRadians(e, o.degrees)
	q := quat.Mul(quat.Mul(axisZQuat(r.Alpha), midQuat(r.Beta, o.conv)), axisZQuat(r.Gamma))
	if o.passive {
		return quat.Conj(q)
	}
	return q
}

func axisZQuat(theta float64) quat.Number {
	return quat.Number{Real: math.Cos(theta / 2), Kmag: math.Sin(theta / 2)}
}

func midQuat(theta float64, conv Convention) quat.Number {
	if conv == ZXZ {
		return quat.Number{Real: math.Cos(theta / 2), Imag: math.Sin(theta / 2)}
	}
	return quat.Number{Real: math.Cos(theta / 2), Jmag: math.Sin(theta / 2)}
}

// FromBasis extracts the Euler triple whose active composition equals the
// orthonormal basis matrix u (columns = rotated axes), wrapped into
// [0, 2pi) without canonical folding. Output honors WithDegrees.
func FromBasis(u mat3.Mat, opts ...Option) Euler {
	o := gatherOptions(opts...)
	return fromRadians(wrapEuler(extract(u, o.conv, o.eps)), o.degrees)
}

// extract reads the active-composition angles out of u. Angles are
// radians in the native atan2/acos ranges; callers wrap or fold.
func extract(u mat3.Mat, conv Convention, eps float64) Euler {
	beta := math.Acos(clamp(u[2][2], -1, 1))
	if math.Abs(u[2][2]-1) < eps {
		// Gimbal lock: beta ~ 0 couples alpha and gamma; gamma is fixed
		// to zero by convention.
		return Euler{Alpha: math.Acos(clamp(u[0][0], -1, 1)), Beta: beta}
	}
	var alpha, gamma float64
	switch conv {
	case ZXZ:
		alpha = math.Atan2(u[0][2], -u[1][2])
		gamma = math.Atan2(u[2][0], u[2][1])
	default:
		alpha = math.Atan2(u[1][2], u[0][2])
		gamma = math.Atan2(u[2][1], -u[2][0])
	}
	return Euler{Alpha: alpha, Beta: beta, Gamma: gamma}
}

// wrap2Pi maps an angle into [0, 2pi).
func wrap2Pi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

func wrapEuler(e Euler) Euler {
	return Euler{Alpha: wrap2Pi(e.Alpha), Beta: wrap2Pi(e.Beta), Gamma: wrap2Pi(e.Gamma)}
}

func toRadians(e Euler, degrees bool) Euler {
	if !degrees {
		return e
	}
	return Euler{Alpha: e.Alpha / degPerRad, Beta: e.Beta / degPerRad, Gamma: e.Gamma / degPerRad}
}

func fromRadians(e Euler, degrees bool) Euler {
	if !degrees {
		return e
	}
	return Euler{Alpha: e.Alpha * degPerRad, Beta: e.Beta * degPerRad, Gamma: e.Gamma * degPerRad}
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
