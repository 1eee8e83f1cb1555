package unit

import (
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/shopspring/decimal"
)

type StageKind string

const (
	StageBound StageKind = "bound"
	StageShift StageKind = "shift"
	StageScale StageKind = "scale"
)

// Stage is one transform attached to a descriptor. Stages run in
// attachment order on the way to the base value and in reverse order on
// the way back, so a later stage wraps an earlier one.
type Stage interface {
	Kind() StageKind
	// Check validates a magnitude at construction time.
	Check(v magnitude.Value, d *Descriptor) error
	ToBase(v magnitude.Value, ctx Context) (magnitude.Value, error)
	FromBase(v magnitude.Value, ctx Context) (magnitude.Value, error)
}

// Bounds is the declared physical range of a descriptor. Either side may be open.
type Bounds struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// IsZero reports an unbounded range.
func (b Bounds) IsZero() bool { return !b.Min.Valid && !b.Max.Valid }

// Contains reports whether f lies inside the range within tol.
func (b Bounds) Contains(f, tol float64) bool {
	if b.Min.Valid && f < b.Min.Decimal.InexactFloat64()-tol {
		return false
	}
	if b.Max.Valid && f > b.Max.Decimal.InexactFloat64()+tol {
		return false
	}
	return true
}

// Limiter is implemented by stages that declare bounds.
type Limiter interface {
	Limits() Bounds
}

func (b Bounds) tighten(o Bounds) Bounds {
	if o.Min.Valid && (!b.Min.Valid || o.Min.Decimal.GreaterThan(b.Min.Decimal)) {
		b.Min = o.Min
	}
	if o.Max.Valid && (!b.Max.Valid || o.Max.Decimal.LessThan(b.Max.Decimal)) {
		b.Max = o.Max
	}
	return b
}
