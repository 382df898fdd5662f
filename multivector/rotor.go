package multivector

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"

	"multivector3d/internal/mathutil"
)

// RotorFromAxisAngle returns the unit rotor turning vectors counter-clockwise
// by angle radians about axis (right-hand rule):
//
//	R = cos(θ/2) - sin(θ/2)·n̂·I
//
// A zero axis yields the identity rotor.
func RotorFromAxisAngle(axis Vec3, angle float64) Multivector {
	n := axis.Normalize()
	if n.IsZero() {
		return Scalar(1)
	}
	s, c := math.Sincos(angle / 2)
	return Multivector{Scalar: c, Bivector: n.Scale(-s)}
}

// RotorFromEuler returns the rotor that turns about X by rx, then Y by ry,
// then Z by rz (radians).
func RotorFromEuler(rx, ry, rz float64) Multivector {
	return FromQuat(mathutil.EulerToQuat(rx, ry, rz))
}

// Rotate applies the sandwich product a·b·a.Reverse(). For a unit rotor a
// this rotates every grade of b; a non-unit a also scales by a.NormSquared().
func (a Multivector) Rotate(b Multivector) Multivector {
	return a.Mul(b).Mul(a.Reverse())
}

// Reflect mirrors a in the plane through the origin with normal n, using
// n̂·â·n̂ where â is the grade involution of a. Vectors are mirrored as
// points, bivectors as oriented planes, scalars are unchanged and the
// pseudoscalar changes sign. A zero normal yields the zero multivector.
func Reflect(a Multivector, n Vec3) Multivector {
	u := Multivector{Vector: n.Normalize()}
	return u.Mul(a.Involute()).Mul(u)
}

// RotationMatrix returns the row-major matrix of v ↦ a.Rotate(v) restricted
// to vectors.
func (a Multivector) RotationMatrix() f64.Mat3 {
	return mathutil.Mat3FromColumns(
		a.Rotate(E1).Vector,
		a.Rotate(E2).Vector,
		a.Rotate(E3).Vector,
	).F64()
}

// RotorFromMatrix returns a unit rotor whose RotationMatrix is m. Matrices
// that are not orthogonal within DefaultTolerance, or that include a
// reflection, return ErrNotRotation. The sign of the rotor is arbitrary
// since r and -r describe the same rotation.
func RotorFromMatrix(m f64.Mat3) (Multivector, error) {
	r := mathutil.Mat3(m)
	if !mathutil.Mat3Mul(r, r.Transpose()).ApproxEqual(mathutil.Mat3Identity(), DefaultTolerance) {
		return Multivector{}, fmt.Errorf("multivector: rotor from matrix: not orthogonal: %w", ErrNotRotation)
	}
	if r.Det() < 0 {
		return Multivector{}, fmt.Errorf("multivector: rotor from matrix: determinant %g: %w", r.Det(), ErrNotRotation)
	}
	return FromQuat(mathutil.Mat3ToQuat(r)), nil
}

// FromQuat maps a quaternion onto the even subalgebra with
// i = -e2e3, j = -e3e1, k = -e1e2. Unit quaternions map to rotors
// describing the same rotation.
func FromQuat(q quat.Number) Multivector {
	return Multivector{Scalar: q.Real, Bivector: Vec3{-q.Imag, -q.Jmag, -q.Kmag}}
}

// Quat returns the even part of a as a quaternion. The vector and
// pseudoscalar parts are ignored.
func (a Multivector) Quat() quat.Number {
	return quat.Number{Real: a.Scalar, Imag: -a.Bivector[0], Jmag: -a.Bivector[1], Kmag: -a.Bivector[2]}
}

func FromF64(v f64.Vec3) Multivector {
	return Multivector{Vector: Vec3(v)}
}

// VectorF64 returns the grade-1 part of a.
func (a Multivector) VectorF64() f64.Vec3 {
	return a.Vector.F64()
}
