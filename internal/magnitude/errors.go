package magnitude

import "errors"

var (
	ErrNotNumeric          = errors.New("magnitude: value is not numeric")
	ErrEmptyVector         = errors.New("magnitude: empty vector")
	ErrShapeMismatch       = errors.New("magnitude: vector length mismatch")
	ErrDivisionByZero      = errors.New("magnitude: division by zero")
	ErrNotScalar           = errors.New("magnitude: value is not a scalar")
	ErrOperationNotAllowed = errors.New("magnitude: operation not allowed")
)
