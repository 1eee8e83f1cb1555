package unit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnitNotFound          = errors.New("unit not found")
	ErrAmbiguousUnit         = errors.New("ambiguous unit")
	ErrDimensionMismatch     = errors.New("dimension mismatch")
	ErrAxiomViolation        = errors.New("axiom violation")
	ErrConversion            = errors.New("conversion error")
	ErrConflictingDescriptor = errors.New("conflicting descriptor")
	ErrSignatureConflict     = errors.New("signature already recorded for another dimension")
	ErrNoBaseUnit            = errors.New("dimension has no base unit")
	ErrNilDescriptor         = errors.New("descriptor is nil")
	ErrInvalidDefinition     = errors.New("invalid unit definition")
)

// UnitNotFoundError reports an alias with no registered candidate.
type UnitNotFoundError struct {
	Alias string
}

func (e UnitNotFoundError) Error() string {
	return fmt.Sprintf("unit %q is not recognized in the registry", e.Alias)
}

func (e UnitNotFoundError) Is(target error) bool { return target == ErrUnitNotFound }

// AmbiguousUnitError reports an alias that matches several dimensions
// and no expected dimension to pick one.
type AmbiguousUnitError struct {
	Alias      string
	Dimensions []string
}

func (e AmbiguousUnitError) Error() string {
	return fmt.Sprintf(
		"ambiguous unit %q: matches dimensions [%s]; pass an expected dimension or a more specific alias",
		e.Alias,
		strings.Join(e.Dimensions, ", "),
	)
}

func (e AmbiguousUnitError) Is(target error) bool { return target == ErrAmbiguousUnit }

// DimensionMismatchError reports an operation across incompatible dimensions.
type DimensionMismatchError struct {
	Expected string
	Received string
	Context  string
}

func (e DimensionMismatchError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("dimension mismatch: expected %q, got %q", e.Expected, e.Received)
	}
	return fmt.Sprintf("dimension mismatch (%s): expected %q, got %q", e.Context, e.Expected, e.Received)
}

func (e DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// AxiomViolationError reports a magnitude outside a declared physical bound.
type AxiomViolationError struct {
	Unit    string
	Message string
}

func (e AxiomViolationError) Error() string {
	if e.Unit == "" {
		return "axiom violation: " + e.Message
	}
	return fmt.Sprintf("axiom violation (%s): %s", e.Unit, e.Message)
}

func (e AxiomViolationError) Is(target error) bool { return target == ErrAxiomViolation }

// ConversionError reports procedural misuse: missing target, unknown
// mode or output, failed context resolution.
type ConversionError struct {
	Op     string
	Reason string
	Err    error
}

func (e ConversionError) Error() string {
	msg := "conversion error"
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e ConversionError) Is(target error) bool { return target == ErrConversion }

func (e ConversionError) Unwrap() error { return e.Err }

func mismatch(expected, received *Descriptor, context string) error {
	return DimensionMismatchError{
		Expected: expected.DimensionLabel(),
		Received: received.DimensionLabel(),
		Context:  context,
	}
}

// CheckSameDimension fails with DimensionMismatchError unless a and b share a dimension.
func CheckSameDimension(a, b *Descriptor, context string) error {
	if SameDimension(a, b) {
		return nil
	}
	return mismatch(a, b, context)
}
