package multivector

import (
	"fmt"

	"multivector3d/internal/mathutil"
)

// Vec3 is an ordered triple of reals, used for the vector and bivector parts.
type Vec3 = mathutil.Vec3

// Multivector is an element of the geometric algebra of ℝ³.
// The zero value is the zero multivector.
type Multivector struct {
	Scalar   float64 // grade 0
	Vector   Vec3    // grade 1: e1, e2, e3
	Bivector Vec3    // grade 2: e2e3, e3e1, e1e2
	Pscalar  float64 // grade 3: e1e2e3
}

// Basis elements.
var (
	E1 = Multivector{Vector: Vec3{1, 0, 0}}
	E2 = Multivector{Vector: Vec3{0, 1, 0}}
	E3 = Multivector{Vector: Vec3{0, 0, 1}}

	E23 = Multivector{Bivector: Vec3{1, 0, 0}}
	E31 = Multivector{Bivector: Vec3{0, 1, 0}}
	E12 = Multivector{Bivector: Vec3{0, 0, 1}}

	// I is the unit pseudoscalar e1e2e3. I·I = -1 and I commutes with
	// every multivector.
	I = Multivector{Pscalar: 1}
)

// New builds a multivector from its four graded parts.
func New(scalar float64, vector, bivector Vec3, pscalar float64) Multivector {
	return Multivector{Scalar: scalar, Vector: vector, Bivector: bivector, Pscalar: pscalar}
}

func Scalar(s float64) Multivector { return Multivector{Scalar: s} }

func Vector(x, y, z float64) Multivector { return Multivector{Vector: Vec3{x, y, z}} }

// Bivector returns yz·e2e3 + zx·e3e1 + xy·e1e2.
func Bivector(yz, zx, xy float64) Multivector { return Multivector{Bivector: Vec3{yz, zx, xy}} }

func Pseudoscalar(p float64) Multivector { return Multivector{Pscalar: p} }

// Add returns the component-wise sum a + b.
func (a Multivector) Add(b Multivector) Multivector {
	return Multivector{
		Scalar:   a.Scalar + b.Scalar,
		Vector:   a.Vector.Add(b.Vector),
		Bivector: a.Bivector.Add(b.Bivector),
		Pscalar:  a.Pscalar + b.Pscalar,
	}
}

// Sub returns the component-wise difference a - b.
func (a Multivector) Sub(b Multivector) Multivector {
	return Multivector{
		Scalar:   a.Scalar - b.Scalar,
		Vector:   a.Vector.Sub(b.Vector),
		Bivector: a.Bivector.Sub(b.Bivector),
		Pscalar:  a.Pscalar - b.Pscalar,
	}
}

func (a Multivector) Neg() Multivector {
	return Multivector{
		Scalar:   -a.Scalar,
		Vector:   a.Vector.Neg(),
		Bivector: a.Bivector.Neg(),
		Pscalar:  -a.Pscalar,
	}
}

// Scale multiplies every part of a by the real k.
func (a Multivector) Scale(k float64) Multivector {
	return Multivector{
		Scalar:   a.Scalar * k,
		Vector:   a.Vector.Scale(k),
		Bivector: a.Bivector.Scale(k),
		Pscalar:  a.Pscalar * k,
	}
}

// ScaleBy returns k·a. Real scalars commute with every multivector, so this
// is always equal to a.Scale(k).
func ScaleBy(k float64, a Multivector) Multivector {
	return a.Scale(k)
}

// Mul returns the geometric product a·b.
//
// The product is associative and distributive over Add but not commutative.
func (a Multivector) Mul(b Multivector) Multivector {
	return Multivector{
		Scalar: a.Scalar*b.Scalar - a.Pscalar*b.Pscalar +
			a.Vector.Dot(b.Vector) - a.Bivector.Dot(b.Bivector),
		Vector: b.Vector.Scale(a.Scalar).
			Add(a.Vector.Scale(b.Scalar)).
			Sub(b.Bivector.Scale(a.Pscalar)).
			Sub(a.Bivector.Scale(b.Pscalar)).
			Sub(a.Vector.Cross(b.Bivector)).
			Add(b.Vector.Cross(a.Bivector)),
		Bivector: b.Bivector.Scale(a.Scalar).
			Add(a.Bivector.Scale(b.Scalar)).
			Add(a.Vector.Scale(b.Pscalar)).
			Add(b.Vector.Scale(a.Pscalar)).
			Add(a.Vector.Cross(b.Vector)).
			Sub(a.Bivector.Cross(b.Bivector)),
		Pscalar: a.Scalar*b.Pscalar + a.Pscalar*b.Scalar +
			a.Vector.Dot(b.Bivector) + a.Bivector.Dot(b.Vector),
	}
}

// Div returns a / k. Dividing by zero returns ErrDivisionByZero.
func (a Multivector) Div(k float64) (Multivector, error) {
	if k == 0 {
		return Multivector{}, fmt.Errorf("multivector: divide: %w", ErrDivisionByZero)
	}
	return a.Scale(1 / k), nil
}

// Dot returns the symmetric part of the geometric product, (ab + ba) / 2.
// For two vectors it is the Euclidean inner product as a pure scalar.
func (a Multivector) Dot(b Multivector) Multivector {
	return a.Mul(b).Add(b.Mul(a)).Scale(0.5)
}

// Wedge returns the antisymmetric part of the geometric product,
// (ab - ba) / 2. For two vectors the bivector part equals their cross
// product.
func (a Multivector) Wedge(b Multivector) Multivector {
	return a.Mul(b).Sub(b.Mul(a)).Scale(0.5)
}

// Dual returns a·I. It maps scalars to pseudoscalars and vectors to
// bivectors with the same components. Applying Dual twice negates a.
func (a Multivector) Dual() Multivector {
	return a.Mul(I)
}

// String renders the four graded parts on labeled lines. It is meant for
// debugging and is not a parseable format.
func (a Multivector) String() string {
	return fmt.Sprintf("scalar: %g\nvector: %v\nbivector: %v\npscalar: %g",
		fmtZero(a.Scalar), fmtVec(a.Vector), fmtVec(a.Bivector), fmtZero(a.Pscalar))
}

// fmtZero maps -0 to 0 so that negated zero parts print as 0.
func fmtZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

func fmtVec(v Vec3) [3]float64 {
	return [3]float64{fmtZero(v[0]), fmtZero(v[1]), fmtZero(v[2])}
}
