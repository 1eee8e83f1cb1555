package quantity

import (
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// Add sums base values and expresses the result in q's descriptor. The
// merged context prefers q's keys.
func (q *Quantity) Add(other *Quantity) (*Quantity, error) {
	return q.combine(other, "add", magnitude.Add)
}

func (q *Quantity) Sub(other *Quantity) (*Quantity, error) {
	return q.combine(other, "subtract", magnitude.Sub)
}

func (q *Quantity) combine(other *Quantity, op string, fn func(a, b magnitude.Value) (magnitude.Value, error)) (*Quantity, error) {
	if other == nil {
		return nil, unit.ConversionError{Op: op, Reason: "missing operand"}
	}
	if err := unit.CheckSameDimension(q.unit, other.unit, op); err != nil {
		return nil, err
	}
	a, err := q.BaseValue()
	if err != nil {
		return nil, err
	}
	b, err := other.BaseValue()
	if err != nil {
		return nil, err
	}
	sum, err := fn(a, b)
	if err != nil {
		return nil, unit.ConversionError{Op: op, Err: err}
	}
	ctx := q.ctx.Merge(other.ctx)
	v, err := q.unit.FromBase(sum, ctx)
	if err != nil {
		return nil, err
	}
	return q.derive(v, q.unit, ctx)
}

// Mul multiplies raw magnitudes; the descriptor comes from the registry
// algebra, so the product converts correctly later.
func (q *Quantity) Mul(other *Quantity) (*Quantity, error) {
	return q.cross(other, "mul", magnitude.Mul, (*unit.Registry).Multiply)
}

func (q *Quantity) Div(other *Quantity) (*Quantity, error) {
	return q.cross(other, "div", magnitude.Div, (*unit.Registry).Divide)
}

func (q *Quantity) cross(
	other *Quantity,
	op string,
	fn func(a, b magnitude.Value) (magnitude.Value, error),
	algebra func(r *unit.Registry, a, b *unit.Descriptor) (*unit.Descriptor, error),
) (*Quantity, error) {
	if other == nil {
		return nil, unit.ConversionError{Op: op, Reason: "missing operand"}
	}
	reg := q.registryWith(other)
	if reg == nil {
		return nil, unit.ConversionError{Op: op, Reason: "no registry bound for unit algebra"}
	}
	d, err := algebra(reg, q.unit, other.unit)
	if err != nil {
		return nil, err
	}
	v, err := fn(q.mag, other.mag)
	if err != nil {
		return nil, unit.ConversionError{Op: op, Err: err}
	}
	return New(v, d, WithContext(q.ctx), WithContext(other.ctx), WithRegistry(reg))
}

func (q *Quantity) registryWith(other *Quantity) *unit.Registry {
	if q.reg != nil {
		return q.reg
	}
	return other.reg
}

// Pow raises the raw magnitude and the descriptor to n.
func (q *Quantity) Pow(n int) (*Quantity, error) {
	if q.reg == nil {
		return nil, unit.ConversionError{Op: "pow", Reason: "no registry bound for unit algebra"}
	}
	d, err := q.reg.Power(q.unit, n)
	if err != nil {
		return nil, err
	}
	v, err := magnitude.Pow(q.mag, n)
	if err != nil {
		return nil, unit.ConversionError{Op: "pow", Err: err}
	}
	return q.derive(v, d, q.ctx)
}

// MulScalar scales the magnitude by a bare number or vector.
func (q *Quantity) MulScalar(factor any) (*Quantity, error) {
	return q.scalar("mul", factor, magnitude.Mul)
}

func (q *Quantity) DivScalar(divisor any) (*Quantity, error) {
	return q.scalar("div", divisor, magnitude.Div)
}

func (q *Quantity) scalar(op string, raw any, fn func(a, b magnitude.Value) (magnitude.Value, error)) (*Quantity, error) {
	f, err := magnitude.Parse(raw)
	if err != nil {
		return nil, unit.ConversionError{Op: op, Err: err}
	}
	v, err := fn(q.mag, f)
	if err != nil {
		return nil, unit.ConversionError{Op: op, Err: err}
	}
	return q.derive(v, q.unit, q.ctx)
}

func (q *Quantity) Neg() (*Quantity, error) {
	return q.derive(magnitude.Neg(q.mag), q.unit, q.ctx)
}

func (q *Quantity) Abs() (*Quantity, error) {
	return q.derive(magnitude.Abs(q.mag), q.unit, q.ctx)
}

// Round rounds the magnitude half-to-even at places decimals.
func (q *Quantity) Round(places int32) (*Quantity, error) {
	return q.derive(magnitude.Round(q.mag, places), q.unit, q.ctx)
}
