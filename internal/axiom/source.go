package axiom

import (
	"fmt"
	"math"

	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

// Formula computes a value from the context.
type Formula interface {
	Eval(ctx unit.Context) (magnitude.Value, error)
}

type FormulaFunc func(ctx unit.Context) (magnitude.Value, error)

func (f FormulaFunc) Eval(ctx unit.Context) (magnitude.Value, error) { return f(ctx) }

// Source supplies the operand of a shift or scale stage. Resolution
// order is Formula, then the context Key, then Default.
type Source struct {
	Formula Formula
	Key     string
	Default any
}

// FromContext reads key from the context, falling back to def when absent.
func FromContext(key string, def any) Source {
	return Source{Key: key, Default: def}
}

func FromFormula(f Formula) Source {
	return Source{Formula: f}
}

// Static always yields v.
func Static(v any) Source {
	return Source{Default: v}
}

func (s Source) Resolve(ctx unit.Context) (magnitude.Value, error) {
	if s.Formula != nil {
		return s.Formula.Eval(ctx)
	}
	if s.Key != "" {
		v, ok, err := ctx.Lookup(s.Key)
		if err != nil {
			return magnitude.Value{}, err
		}
		if ok {
			return v, nil
		}
	}
	if s.Default != nil {
		return unit.Reduce(s.Default)
	}
	return magnitude.Value{}, fmt.Errorf("%w: %q", ErrMissingContext, s.Key)
}

func (s Source) String() string {
	switch {
	case s.Formula != nil:
		return "formula"
	case s.Key != "":
		return fmt.Sprintf("ctx(%s, default=%v)", s.Key, s.Default)
	default:
		return fmt.Sprintf("%v", s.Default)
	}
}

// Expr is a composable formula over context values and constants.
type Expr struct {
	eval func(ctx unit.Context) (magnitude.Value, error)
}

// Ctx reads key from the context with a default for when it is absent.
func Ctx(key string, def any) Expr {
	src := FromContext(key, def)
	return Expr{eval: src.Resolve}
}

func Const(v any) Expr {
	return Expr{eval: func(unit.Context) (magnitude.Value, error) { return unit.Reduce(v) }}
}

func (e Expr) Eval(ctx unit.Context) (magnitude.Value, error) { return e.eval(ctx) }

func (e Expr) Add(other any) Expr { return e.binary(other, magnitude.Add) }
func (e Expr) Sub(other any) Expr { return e.binary(other, magnitude.Sub) }
func (e Expr) Mul(other any) Expr { return e.binary(other, magnitude.Mul) }
func (e Expr) Div(other any) Expr { return e.binary(other, magnitude.Div) }

func (e Expr) Pow(n int) Expr {
	return Expr{eval: func(ctx unit.Context) (magnitude.Value, error) {
		v, err := e.eval(ctx)
		if err != nil {
			return magnitude.Value{}, err
		}
		return magnitude.Pow(v, n)
	}}
}

// Sqrt takes the square root element-wise. Exact inputs are rounded
// through float64.
func (e Expr) Sqrt() Expr {
	return Expr{eval: func(ctx unit.Context) (magnitude.Value, error) {
		v, err := e.eval(ctx)
		if err != nil {
			return magnitude.Value{}, err
		}
		return sqrt(v)
	}}
}

// AtLeast clamps the expression from below.
func (e Expr) AtLeast(floor any) Expr {
	return e.binary(floor, func(a, b magnitude.Value) (magnitude.Value, error) {
		return magnitude.Apply(string(magnitude.OpMaximum), a, b)
	})
}

func (e Expr) binary(other any, op func(a, b magnitude.Value) (magnitude.Value, error)) Expr {
	rhs := asExpr(other)
	return Expr{eval: func(ctx unit.Context) (magnitude.Value, error) {
		a, err := e.eval(ctx)
		if err != nil {
			return magnitude.Value{}, err
		}
		b, err := rhs.eval(ctx)
		if err != nil {
			return magnitude.Value{}, err
		}
		return op(a, b)
	}}
}

func asExpr(v any) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case Formula:
		return Expr{eval: x.Eval}
	default:
		return Const(v)
	}
}

func sqrt(v magnitude.Value) (magnitude.Value, error) {
	if v.IsExact() {
		d, _ := v.Decimal()
		f := d.InexactFloat64()
		if f < 0 {
			return magnitude.Value{}, fmt.Errorf("%w: sqrt of %s", magnitude.ErrNotNumeric, d)
		}
		return magnitude.Exact(decimal.NewFromFloat(math.Sqrt(f))), nil
	}
	xs := v.Floats()
	for i, x := range xs {
		xs[i] = math.Sqrt(x)
	}
	if v.IsScalar() {
		return magnitude.Float(xs[0]), nil
	}
	return magnitude.Vector(xs), nil
}
