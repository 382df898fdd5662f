package multivector

import "gonum.org/v1/gonum/floats/scalar"

// DefaultTolerance is the absolute per-component tolerance used when
// comparing results of floating-point products.
const DefaultTolerance = 1e-9

// Equal reports whether every component of a and b is exactly equal.
func (a Multivector) Equal(b Multivector) bool {
	return a == b
}

// ApproxEqual reports whether every component of a and b differs by at
// most tol.
func (a Multivector) ApproxEqual(b Multivector, tol float64) bool {
	return scalar.EqualWithinAbs(a.Scalar, b.Scalar, tol) &&
		a.Vector.ApproxEqual(b.Vector, tol) &&
		a.Bivector.ApproxEqual(b.Bivector, tol) &&
		scalar.EqualWithinAbs(a.Pscalar, b.Pscalar, tol)
}

func (a Multivector) IsZero() bool {
	return a.Scalar == 0 && a.IsScalar()
}

// IsScalar reports whether the vector, bivector and pseudoscalar parts are
// all exactly zero.
func (a Multivector) IsScalar() bool {
	return a.Vector.IsZero() && a.Bivector.IsZero() && a.Pscalar == 0
}

// grades lists the grades with a non-zero part.
func (a Multivector) grades() []int {
	var g []int
	if a.Scalar != 0 {
		g = append(g, 0)
	}
	if !a.Vector.IsZero() {
		g = append(g, 1)
	}
	if !a.Bivector.IsZero() {
		g = append(g, 2)
	}
	if a.Pscalar != 0 {
		g = append(g, 3)
	}
	return g
}
