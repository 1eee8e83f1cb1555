package magnitude

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Op names an allow-listed element-wise or reduction operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMaximum  Op = "maximum"
	OpMinimum  Op = "minimum"
	OpAbs      Op = "abs"
	OpNegative Op = "negative"
	OpSum      Op = "sum"
	OpMean     Op = "mean"
	OpMedian   Op = "median"
	OpStd      Op = "std"
	OpMax      Op = "max"
	OpMin      Op = "min"
	OpRound    Op = "round"
)

var allowed = map[Op]int{
	OpAdd:      1,
	OpSubtract: 1,
	OpMaximum:  1,
	OpMinimum:  1,
	OpAbs:      0,
	OpNegative: 0,
	OpSum:      0,
	OpMean:     0,
	OpMedian:   0,
	OpStd:      0,
	OpMax:      0,
	OpMin:      0,
	OpRound:    1,
}

// Allowed reports whether op is on the allow-list.
func Allowed(op string) bool {
	_, ok := allowed[Op(strings.ToLower(strings.TrimSpace(op)))]
	return ok
}

// AllowedOps lists the allow-list in sorted order.
func AllowedOps() []string {
	out := make([]string, 0, len(allowed))
	for op := range allowed {
		out = append(out, string(op))
	}
	sort.Strings(out)
	return out
}

// Apply runs an allow-listed operation. Binary operations and round take
// one argument; everything else takes none.
func Apply(op string, v Value, args ...Value) (Value, error) {
	name := Op(strings.ToLower(strings.TrimSpace(op)))
	arity, ok := allowed[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrOperationNotAllowed, op)
	}
	if len(args) != arity {
		return Value{}, fmt.Errorf("magnitude: %s takes %d argument(s), got %d", name, arity, len(args))
	}
	switch name {
	case OpAdd:
		return Add(v, args[0])
	case OpSubtract:
		return Sub(v, args[0])
	case OpMaximum:
		return extremum(v, args[0], 1)
	case OpMinimum:
		return extremum(v, args[0], -1)
	case OpAbs:
		return Abs(v), nil
	case OpNegative:
		return Neg(v), nil
	case OpRound:
		places, err := args[0].Float64()
		if err != nil {
			return Value{}, err
		}
		return Round(v, int32(places)), nil
	default:
		return reduce(name, v)
	}
}

func Abs(v Value) Value {
	if v.kind == KindExact {
		return Exact(v.exact.Abs())
	}
	out := v.clone()
	for i, x := range out.vec {
		out.vec[i] = math.Abs(x)
	}
	return out
}

// Round uses banker's rounding on both representations.
func Round(v Value, places int32) Value {
	if v.kind == KindExact {
		return Exact(v.exact.RoundBank(places))
	}
	out := v.clone()
	scale := math.Pow(10, float64(places))
	for i, x := range out.vec {
		out.vec[i] = math.RoundToEven(x*scale) / scale
	}
	return out
}

func extremum(a, b Value, sign int) (Value, error) {
	cmp, err := Compare(a, b)
	if err != nil {
		return Value{}, err
	}
	a, b, _ = Align(a, b)
	if a.kind == KindExact {
		if cmp[0]*sign >= 0 {
			return a, nil
		}
		return b, nil
	}
	out := make([]float64, len(cmp))
	for i, c := range cmp {
		if c*sign >= 0 {
			out[i] = at(a, i)
		} else {
			out[i] = at(b, i)
		}
	}
	if a.scalar && b.scalar {
		return Float(out[0]), nil
	}
	return Value{kind: KindVector, vec: out}, nil
}

func reduce(op Op, v Value) (Value, error) {
	if v.kind == KindExact {
		switch op {
		case OpStd:
			return Exact(decimal.Zero), nil
		default:
			return v, nil
		}
	}
	xs := v.vec
	var r float64
	switch op {
	case OpSum:
		r = floats.Sum(xs)
	case OpMean:
		r = stat.Mean(xs, nil)
	case OpMedian:
		r = median(xs)
	case OpStd:
		_, r = stat.PopMeanStdDev(xs, nil)
	case OpMax:
		r = floats.Max(xs)
	case OpMin:
		r = floats.Min(xs)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrOperationNotAllowed, op)
	}
	return Float(r), nil
}

func median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
