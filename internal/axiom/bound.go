package axiom

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/observability"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

// VectorTolerance is the absolute slack allowed when checking vector
// elements against a bound.
const VectorTolerance = 1e-12

type bound struct {
	limits unit.Bounds
	msg    string
}

// Bound rejects magnitudes outside [min, max] at construction. A nil
// side is open. Both ends are inclusive.
func Bound(min, max any, msg string) unit.Option {
	return func(b *unit.Builder) error {
		var limits unit.Bounds
		var err error
		if limits.Min, err = nullable(min); err != nil {
			return fmt.Errorf("%w: min: %v", ErrInvalidBound, err)
		}
		if limits.Max, err = nullable(max); err != nil {
			return fmt.Errorf("%w: max: %v", ErrInvalidBound, err)
		}
		if limits.IsZero() {
			return fmt.Errorf("%w: min or max is required", ErrInvalidBound)
		}
		if limits.Min.Valid && limits.Max.Valid && limits.Min.Decimal.GreaterThan(limits.Max.Decimal) {
			return fmt.Errorf("%w: min %s above max %s", ErrInvalidBound, limits.Min.Decimal, limits.Max.Decimal)
		}
		return unit.WithStage(bound{limits: limits, msg: msg})(b)
	}
}

func Min(x any) unit.Option { return Bound(x, nil, "") }

func Max(x any) unit.Option { return Bound(nil, x, "") }

func nullable(raw any) (decimal.NullDecimal, error) {
	if raw == nil {
		return decimal.NullDecimal{}, nil
	}
	v, err := magnitude.Parse(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	d, err := v.Decimal()
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func (bound) Kind() unit.StageKind { return unit.StageBound }

func (s bound) Limits() unit.Bounds { return s.limits }

// Check compares exact scalars exactly and vector elements in float64
// with VectorTolerance.
func (s bound) Check(v magnitude.Value, d *unit.Descriptor) error {
	if v.IsExact() {
		x, _ := v.Decimal()
		if s.limits.Min.Valid && x.LessThan(s.limits.Min.Decimal) {
			return s.violation(d, x.String(), "below")
		}
		if s.limits.Max.Valid && x.GreaterThan(s.limits.Max.Decimal) {
			return s.violation(d, x.String(), "above")
		}
		return nil
	}
	var err error
	v.Each(func(i int, x float64) {
		if err != nil {
			return
		}
		if s.limits.Min.Valid && x < s.limits.Min.Decimal.InexactFloat64()-VectorTolerance {
			err = s.violation(d, fmt.Sprintf("element %d (%g)", i, x), "below")
		} else if s.limits.Max.Valid && x > s.limits.Max.Decimal.InexactFloat64()+VectorTolerance {
			err = s.violation(d, fmt.Sprintf("element %d (%g)", i, x), "above")
		}
	})
	return err
}

func (s bound) violation(d *unit.Descriptor, value, side string) error {
	observability.RecordAxiomViolation(d.Dimension())
	msg := s.msg
	if msg == "" {
		limit := s.limits.Min.Decimal
		if side == "above" {
			limit = s.limits.Max.Decimal
		}
		edge := "minimum"
		if side == "above" {
			edge = "maximum"
		}
		msg = fmt.Sprintf("%s %s is %s the %s of %s", d.Dimension(), value, side, edge, limit.String())
	}
	return unit.AxiomViolationError{Unit: d.Symbol(), Message: msg}
}

func (bound) ToBase(v magnitude.Value, _ unit.Context) (magnitude.Value, error) { return v, nil }
func (bound) FromBase(v magnitude.Value, _ unit.Context) (magnitude.Value, error) { return v, nil }
