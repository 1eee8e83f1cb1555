package axiom

import (
	"errors"

	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

type ShiftOp uint8

const (
	ShiftAdd ShiftOp = iota
	ShiftSub
)

func (op ShiftOp) String() string {
	if op == ShiftSub {
		return "sub"
	}
	return "add"
}

type shift struct {
	src Source
	op  ShiftOp
}

// Shift adds (or subtracts) a context value on the way to the base and
// reverses it on the way back. A context key with no value and no
// default shifts by zero.
func Shift(src Source, op ShiftOp) unit.Option {
	return unit.WithStage(shift{src: src, op: op})
}

func (shift) Kind() unit.StageKind { return unit.StageShift }

func (shift) Check(magnitude.Value, *unit.Descriptor) error { return nil }

func (s shift) ToBase(v magnitude.Value, ctx unit.Context) (magnitude.Value, error) {
	by, err := s.resolve(ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	if s.op == ShiftSub {
		return magnitude.Sub(v, by)
	}
	return magnitude.Add(v, by)
}

func (s shift) FromBase(v magnitude.Value, ctx unit.Context) (magnitude.Value, error) {
	by, err := s.resolve(ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	if s.op == ShiftSub {
		return magnitude.Add(v, by)
	}
	return magnitude.Sub(v, by)
}

func (s shift) resolve(ctx unit.Context) (magnitude.Value, error) {
	v, err := s.src.Resolve(ctx)
	if missingKey(s.src, err) {
		return magnitude.Int(0), nil
	}
	if err != nil {
		return magnitude.Value{}, unit.ConversionError{Op: "shift", Reason: s.src.String(), Err: err}
	}
	return v, nil
}

type scale struct {
	src Source
}

// Scale multiplies by a context factor on the way to the base and
// divides on the way back. A missing key with no default scales by one.
func Scale(src Source) unit.Option {
	return unit.WithStage(scale{src: src})
}

func (scale) Kind() unit.StageKind { return unit.StageScale }

func (scale) Check(magnitude.Value, *unit.Descriptor) error { return nil }

func (s scale) ToBase(v magnitude.Value, ctx unit.Context) (magnitude.Value, error) {
	f, err := s.factor(ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	return magnitude.Mul(v, f)
}

func (s scale) FromBase(v magnitude.Value, ctx unit.Context) (magnitude.Value, error) {
	f, err := s.factor(ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	return magnitude.Div(v, f)
}

func (s scale) factor(ctx unit.Context) (magnitude.Value, error) {
	f, err := s.src.Resolve(ctx)
	if missingKey(s.src, err) {
		return magnitude.Int(1), nil
	}
	if err != nil {
		return magnitude.Value{}, unit.ConversionError{Op: "scale", Reason: s.src.String(), Err: err}
	}
	zero := false
	f.Each(func(_ int, x float64) { zero = zero || x == 0 })
	if zero {
		return magnitude.Value{}, unit.ConversionError{Op: "scale", Reason: s.src.String(), Err: ErrZeroScaleFactor}
	}
	return f, nil
}

// missingKey reports a plain key lookup that found neither a context
// value nor a default. Formula failures are never masked.
func missingKey(src Source, err error) bool {
	return src.Formula == nil && errors.Is(err, ErrMissingContext)
}
