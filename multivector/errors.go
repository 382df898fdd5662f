package multivector

import "errors"

var (
	// ErrInvalidOperand is returned when an operand is neither a real
	// number nor a multivector.
	ErrInvalidOperand = errors.New("invalid operand type")

	// ErrDivisionByZero is returned when dividing by a real zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedDivisor is returned when dividing by a multivector
	// with non-zero vector, bivector or pseudoscalar parts.
	ErrUnsupportedDivisor = errors.New("unsupported divisor: only scalars can divide a multivector")

	// ErrNotRotation is returned when a matrix is not orthogonal with
	// determinant +1.
	ErrNotRotation = errors.New("matrix is not a rotation")
)
