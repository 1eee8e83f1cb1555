package quantity

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// Quantity is a magnitude expressed in a descriptor. The magnitude's
// representation is fixed at construction.
type Quantity struct {
	mag  magnitude.Value
	unit *unit.Descriptor
	ctx  unit.Context
	reg  *unit.Registry
}

type Option func(*Quantity)

// WithContext merges ctx into the quantity's context. Earlier options win
// on key collisions.
func WithContext(ctx unit.Context) Option {
	return func(q *Quantity) { q.ctx = q.ctx.Merge(ctx) }
}

// WithRegistry binds the registry used for alias targets and algebra.
func WithRegistry(reg *unit.Registry) Option {
	return func(q *Quantity) { q.reg = reg }
}

// New parses value and runs the descriptor's construction checks.
func New(value any, d *unit.Descriptor, opts ...Option) (*Quantity, error) {
	if d == nil {
		return nil, unit.ErrNilDescriptor
	}
	v, err := magnitude.Parse(value)
	if err != nil {
		return nil, unit.ConversionError{Op: "new", Reason: d.Symbol(), Err: err}
	}
	q := &Quantity{mag: v, unit: d, ctx: unit.Context{}}
	for _, opt := range opts {
		opt(q)
	}
	if err := d.Check(v); err != nil {
		return nil, err
	}
	return q, nil
}

// Parse resolves alias in reg and constructs the quantity bound to reg.
func Parse(reg *unit.Registry, value any, alias string, ctx unit.Context) (*Quantity, error) {
	d, err := reg.Resolve(alias, "")
	if err != nil {
		return nil, err
	}
	return New(value, d, WithContext(ctx), WithRegistry(reg))
}

func MustNew(value any, d *unit.Descriptor, opts ...Option) *Quantity {
	q, err := New(value, d, opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// derive builds a sibling quantity sharing the registry.
func (q *Quantity) derive(v magnitude.Value, d *unit.Descriptor, ctx unit.Context) (*Quantity, error) {
	return New(v, d, WithContext(ctx), WithRegistry(q.reg))
}

// Magnitude is the arithmetic-safe native form: float64 or []float64.
func (q *Quantity) Magnitude() any { return q.mag.Native() }

// Exact is the lossless magnitude.
func (q *Quantity) Exact() magnitude.Value { return q.mag }

func (q *Quantity) Float() (float64, error) { return q.mag.Float64() }

func (q *Quantity) Floats() []float64 { return q.mag.Floats() }

func (q *Quantity) IsVector() bool { return q.mag.IsVector() }

func (q *Quantity) Unit() *unit.Descriptor { return q.unit }

func (q *Quantity) Dimension() string { return q.unit.Dimension() }

func (q *Quantity) Registry() *unit.Registry { return q.reg }

// Context returns a copy of the environment.
func (q *Quantity) Context() unit.Context { return q.ctx.Clone() }

func (q *Quantity) String() string {
	return q.mag.String() + " " + q.unit.Symbol()
}

// BaseValue expresses the magnitude in the dimension's base descriptor.
func (q *Quantity) BaseValue() (magnitude.Value, error) {
	v, err := q.unit.ToBase(q.mag, q.ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	return v, nil
}

// To converts to target, a descriptor or an alias resolved within the
// quantity's dimension through the bound registry.
func (q *Quantity) To(target any) (*Quantity, error) {
	switch t := target.(type) {
	case *unit.Descriptor:
		return q.to(t)
	case string:
		if q.reg == nil {
			return nil, unit.ConversionError{Op: "to", Reason: fmt.Sprintf("no registry bound to resolve %q", t)}
		}
		return q.ToAlias(q.reg, t)
	case nil:
		return nil, unit.ConversionError{Op: "to", Reason: "missing target unit"}
	default:
		return nil, unit.ConversionError{Op: "to", Reason: fmt.Sprintf("unsupported target %T", target)}
	}
}

// ToAlias resolves alias in reg, hinted with the quantity's dimension.
func (q *Quantity) ToAlias(reg *unit.Registry, alias string) (*Quantity, error) {
	d, err := reg.Resolve(alias, q.unit.Dimension())
	if err != nil {
		return nil, err
	}
	return q.to(d)
}

func (q *Quantity) to(target *unit.Descriptor) (*Quantity, error) {
	if target == nil {
		return nil, unit.ConversionError{Op: "to", Reason: "missing target unit"}
	}
	if err := unit.CheckSameDimension(q.unit, target, "to "+target.Symbol()); err != nil {
		return nil, err
	}
	if target == q.unit {
		return q, nil
	}
	base, err := q.BaseValue()
	if err != nil {
		return nil, err
	}
	v, err := target.FromBase(base, q.ctx)
	if err != nil {
		return nil, err
	}
	return q.derive(v, target, q.ctx)
}
