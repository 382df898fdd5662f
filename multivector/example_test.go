package multivector_test

import (
	"errors"
	"fmt"
	"math"

	"multivector3d/multivector"
)

func Example() {
	a := multivector.Multivector{Scalar: 1, Vector: multivector.Vec3{1, 0, 0}}
	b := multivector.Multivector{Vector: multivector.Vec3{0, 1, 0}}
	fmt.Println(a.Mul(b))

	// Output:
	// scalar: 0
	// vector: [0 1 0]
	// bivector: [0 0 1]
	// pscalar: 0
}

func Example_dotWedge() {
	u := multivector.Vector(1, 2, 3)
	v := multivector.Vector(4, 5, 6)
	fmt.Println(u.Dot(v).Scalar)
	fmt.Println(u.Wedge(v).Bivector)

	// Output:
	// 32
	// [-3 6 -3]
}

func Example_dual() {
	fmt.Println(multivector.E1.Dual().Bivector)
	fmt.Println(multivector.E1.Dual().Dual().Vector)

	// Output:
	// [1 0 0]
	// [-1 0 0]
}

func Example_rotate() {
	// Quarter turn about e3.
	r := multivector.RotorFromAxisAngle(multivector.Vec3{0, 0, 1}, math.Pi/2)
	v := r.Rotate(multivector.E1).Vector
	for i := range v {
		v[i] = math.Round(v[i]*1000)/1000 + 0
	}
	fmt.Println(v)

	// Output:
	// [0 1 0]
}

func Example_errors() {
	_, err := multivector.E1.Div(0)
	fmt.Println(errors.Is(err, multivector.ErrDivisionByZero))

	_, err = multivector.E1.Over(multivector.E2)
	fmt.Println(errors.Is(err, multivector.ErrUnsupportedDivisor))

	_, err = multivector.E1.Times("two")
	fmt.Println(err)

	// Output:
	// true
	// true
	// multivector: multiply by string: invalid operand type
}
