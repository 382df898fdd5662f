package multivector

import "math"

// Grade returns the grade-k part of a. Grades outside 0..3 are zero.
func (a Multivector) Grade(k int) Multivector {
	switch k {
	case 0:
		return Multivector{Scalar: a.Scalar}
	case 1:
		return Multivector{Vector: a.Vector}
	case 2:
		return Multivector{Bivector: a.Bivector}
	case 3:
		return Multivector{Pscalar: a.Pscalar}
	}
	return Multivector{}
}

// Even returns the scalar and bivector parts of a.
func (a Multivector) Even() Multivector {
	return Multivector{Scalar: a.Scalar, Bivector: a.Bivector}
}

// Odd returns the vector and pseudoscalar parts of a.
func (a Multivector) Odd() Multivector {
	return Multivector{Vector: a.Vector, Pscalar: a.Pscalar}
}

// Reverse reverses the order of every basis blade, negating grades 2 and 3.
// (ab).Reverse() == b.Reverse()·a.Reverse().
func (a Multivector) Reverse() Multivector {
	return Multivector{Scalar: a.Scalar, Vector: a.Vector, Bivector: a.Bivector.Neg(), Pscalar: -a.Pscalar}
}

// Involute returns the grade involution, negating grades 1 and 3.
func (a Multivector) Involute() Multivector {
	return Multivector{Scalar: a.Scalar, Vector: a.Vector.Neg(), Bivector: a.Bivector, Pscalar: -a.Pscalar}
}

// Conjugate returns the Clifford conjugate, negating grades 1 and 2.
func (a Multivector) Conjugate() Multivector {
	return Multivector{Scalar: a.Scalar, Vector: a.Vector.Neg(), Bivector: a.Bivector.Neg(), Pscalar: a.Pscalar}
}

// NormSquared returns the scalar part of a·a.Reverse(), which is the sum
// of the squares of all eight components. It overflows for components
// beyond about 1e154; Norm does not.
func (a Multivector) NormSquared() float64 {
	return a.Scalar*a.Scalar + a.Vector.Dot(a.Vector) + a.Bivector.Dot(a.Bivector) + a.Pscalar*a.Pscalar
}

// Norm returns sqrt(a.NormSquared()), computed without squaring the
// components so that very large and very small values stay finite and
// non-zero.
func (a Multivector) Norm() float64 {
	return math.Hypot(math.Hypot(a.Scalar, a.Pscalar), math.Hypot(a.Vector.Len(), a.Bivector.Len()))
}

// Normalize returns a scaled to unit norm. The zero multivector is returned
// unchanged.
func (a Multivector) Normalize() Multivector {
	n := a.Norm()
	if n == 0 {
		return a
	}
	// Divide rather than scale by 1/n, which overflows for subnormal n.
	return Multivector{
		Scalar:   a.Scalar / n,
		Vector:   Vec3{a.Vector[0] / n, a.Vector[1] / n, a.Vector[2] / n},
		Bivector: Vec3{a.Bivector[0] / n, a.Bivector[1] / n, a.Bivector[2] / n},
		Pscalar:  a.Pscalar / n,
	}
}
