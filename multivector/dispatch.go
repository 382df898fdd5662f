package multivector

import (
	"fmt"
	"reflect"
)

// Times multiplies a by x, choosing the operation from the dynamic type of x.
// Values of any Go integer or float kind scale a; a Multivector or *Multivector is
// multiplied with the geometric product. Any other operand, including a nil
// *Multivector, returns ErrInvalidOperand.
func (a Multivector) Times(x any) (Multivector, error) {
	if b, ok := operand(x); ok {
		return a.Mul(b), nil
	}
	if k, ok := asReal(x); ok {
		return a.Scale(k), nil
	}
	return Multivector{}, fmt.Errorf("multivector: multiply by %T: %w", x, ErrInvalidOperand)
}

// Over divides a by x. Real divisors go through Div. A multivector divisor
// is accepted only when it is a pure scalar; any other multivector returns
// ErrUnsupportedDivisor.
func (a Multivector) Over(x any) (Multivector, error) {
	b, ok := operand(x)
	if !ok {
		k, ok := asReal(x)
		if !ok {
			return Multivector{}, fmt.Errorf("multivector: divide by %T: %w", x, ErrInvalidOperand)
		}
		return a.Div(k)
	}
	if !b.IsScalar() {
		return Multivector{}, fmt.Errorf("multivector: divide by multivector with grades %v: %w", b.grades(), ErrUnsupportedDivisor)
	}
	return a.Div(b.Scalar)
}

// asReal reports the value of x when its kind is a Go integer or float,
// including named types such as time.Duration.
func asReal(x any) (float64, bool) {
	v := reflect.ValueOf(x)
	switch {
	case v.CanFloat():
		return v.Float(), true
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	}
	return 0, false
}

func operand(x any) (Multivector, bool) {
	switch v := x.(type) {
	case Multivector:
		return v, true
	case *Multivector:
		if v == nil {
			return Multivector{}, false
		}
		return *v, true
	}
	return Multivector{}, false
}
