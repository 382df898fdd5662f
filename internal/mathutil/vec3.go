package mathutil

import (
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// Copies never share storage, so a Vec3 field is safe to pass around by value.
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b in a right-handed frame.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the Euclidean length without overflow or underflow in the
// intermediate squares.
func (v Vec3) Len() float64 {
	return math.Hypot(math.Hypot(v[0], v[1]), v[2])
}

// Normalize returns v scaled to unit length, or the zero vector when v is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func (a Vec3) ApproxEqual(b Vec3, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// F64 converts v to the x/image math type.
func (v Vec3) F64() f64.Vec3 {
	return f64.Vec3(v)
}
