package axiom

import "errors"

var (
	ErrZeroDivisor     = errors.New("derive divisor has zero multiplier")
	ErrInvalidFactor   = errors.New("unsupported derive factor")
	ErrMissingContext  = errors.New("context value missing and no default")
	ErrZeroScaleFactor = errors.New("scale factor is zero")
	ErrInvalidBound    = errors.New("invalid bound")
)
