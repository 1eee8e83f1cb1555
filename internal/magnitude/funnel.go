package magnitude

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// Align coerces a and b to one representation. If either side is in the
// vector domain the other is downcast to float64; otherwise both stay
// exact. Two 1-d vectors must have equal length.
func Align(a, b Value) (Value, Value, error) {
	if a.kind == KindExact && b.kind == KindExact {
		return a, b, nil
	}
	a, b = a.toFloat(), b.toFloat()
	if !a.scalar && !b.scalar && len(a.vec) != len(b.vec) {
		return Value{}, Value{}, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(a.vec), len(b.vec))
	}
	return a, b, nil
}

func Add(a, b Value) (Value, error) {
	a, b, err := Align(a, b)
	if err != nil {
		return Value{}, err
	}
	if a.kind == KindExact {
		return Exact(a.exact.Add(b.exact)), nil
	}
	return broadcast(a, b,
		func(dst, s []float64) { floats.Add(dst, s) },
		func(dst []float64, c float64) { floats.AddConst(c, dst) },
		func(c float64, dst []float64) { floats.AddConst(c, dst) }), nil
}

func Sub(a, b Value) (Value, error) {
	a, b, err := Align(a, b)
	if err != nil {
		return Value{}, err
	}
	if a.kind == KindExact {
		return Exact(a.exact.Sub(b.exact)), nil
	}
	return broadcast(a, b,
		func(dst, s []float64) { floats.Sub(dst, s) },
		func(dst []float64, c float64) { floats.AddConst(-c, dst) },
		func(c float64, dst []float64) {
			floats.Scale(-1, dst)
			floats.AddConst(c, dst)
		}), nil
}

func Mul(a, b Value) (Value, error) {
	a, b, err := Align(a, b)
	if err != nil {
		return Value{}, err
	}
	if a.kind == KindExact {
		return Exact(a.exact.Mul(b.exact)), nil
	}
	return broadcast(a, b,
		func(dst, s []float64) { floats.Mul(dst, s) },
		func(dst []float64, c float64) { floats.Scale(c, dst) },
		func(c float64, dst []float64) { floats.Scale(c, dst) }), nil
}

// Div divides a by b. Exact division by zero fails; float division
// follows IEEE 754.
func Div(a, b Value) (Value, error) {
	a, b, err := Align(a, b)
	if err != nil {
		return Value{}, err
	}
	if a.kind == KindExact {
		if b.exact.IsZero() {
			return Value{}, ErrDivisionByZero
		}
		return Exact(Quo(a.exact, b.exact)), nil
	}
	return broadcast(a, b,
		func(dst, s []float64) { floats.Div(dst, s) },
		func(dst []float64, c float64) { floats.Scale(1/c, dst) },
		func(c float64, dst []float64) {
			for i, x := range dst {
				dst[i] = c / x
			}
		}), nil
}

// Compare returns the sign of a-b per element. Scalars yield one sign.
func Compare(a, b Value) ([]int, error) {
	a, b, err := Align(a, b)
	if err != nil {
		return nil, err
	}
	if a.kind == KindExact {
		return []int{a.exact.Cmp(b.exact)}, nil
	}
	n := len(a.vec)
	if len(b.vec) > n {
		n = len(b.vec)
	}
	out := make([]int, n)
	for i := range out {
		x, y := at(a, i), at(b, i)
		switch {
		case x < y:
			out[i] = -1
		case x > y:
			out[i] = 1
		}
	}
	return out, nil
}

// Pow raises v to an integer power. Negative exponents divide.
func Pow(v Value, n int) (Value, error) {
	if v.kind == KindExact {
		if n == 0 {
			return Int(1), nil
		}
		exp := n
		if exp < 0 {
			exp = -exp
		}
		acc := decimal.NewFromInt(1)
		for i := 0; i < exp; i++ {
			acc = acc.Mul(v.exact)
		}
		if n < 0 {
			if acc.IsZero() {
				return Value{}, ErrDivisionByZero
			}
			acc = Quo(decimal.NewFromInt(1), acc)
		}
		return Exact(acc), nil
	}
	out := v.clone()
	for i, x := range out.vec {
		out.vec[i] = ipow(x, n)
	}
	return out, nil
}

func ipow(x float64, n int) float64 {
	neg := n < 0
	if neg {
		n = -n
	}
	acc := 1.0
	for i := 0; i < n; i++ {
		acc *= x
	}
	if neg {
		return 1 / acc
	}
	return acc
}

func Neg(v Value) Value {
	if v.kind == KindExact {
		return Exact(v.exact.Neg())
	}
	out := v.clone()
	floats.Scale(-1, out.vec)
	return out
}

func (v Value) clone() Value {
	out := Value{kind: v.kind, exact: v.exact, scalar: v.scalar}
	if v.vec != nil {
		out.vec = make([]float64, len(v.vec))
		copy(out.vec, v.vec)
	}
	return out
}

func at(v Value, i int) float64 {
	if v.scalar {
		return v.vec[0]
	}
	return v.vec[i]
}

// broadcast applies an element-wise kernel over aligned float values.
// vv handles vector⊗vector, vs vector⊗scalar, sv scalar⊗vector.
func broadcast(a, b Value, vv func(dst, s []float64), vs func(dst []float64, c float64), sv func(c float64, dst []float64)) Value {
	switch {
	case a.scalar && b.scalar:
		out := a.clone()
		vv(out.vec, b.vec)
		return out
	case b.scalar:
		out := a.clone()
		vs(out.vec, b.vec[0])
		return out
	case a.scalar:
		out := b.clone()
		sv(a.vec[0], out.vec)
		return out
	default:
		out := a.clone()
		vv(out.vec, b.vec)
		return out
	}
}
