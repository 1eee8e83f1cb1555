package magnitude

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of significant digits kept by exact
// division. Set it during startup, before any arithmetic runs.
var DivisionPrecision int32 = 32

// SignificantDigits bounds the precision of exact conversion results.
// Rounding residue from repeating multipliers such as 5/9 is dropped.
var SignificantDigits int32 = 28

type Kind uint8

const (
	KindExact Kind = iota
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Value is the tagged union. The zero Value is exact zero.
type Value struct {
	kind   Kind
	exact  decimal.Decimal
	vec    []float64
	scalar bool
}

// Exact wraps a decimal scalar.
func Exact(d decimal.Decimal) Value {
	return Value{kind: KindExact, exact: d}
}

// Int returns an exact integer scalar.
func Int(i int64) Value {
	return Exact(decimal.NewFromInt(i))
}

// MustDecimal parses a decimal literal and panics on failure. Used for constants.
func MustDecimal(s string) Value {
	return Exact(decimal.RequireFromString(s))
}

// Vector copies xs into a 1-d float64 value.
func Vector(xs []float64) Value {
	out := make([]float64, len(xs))
	copy(out, xs)
	return Value{kind: KindVector, vec: out}
}

// Float returns a 0-d value in the vectorized float domain.
func Float(f float64) Value {
	return Value{kind: KindVector, vec: []float64{f}, scalar: true}
}

// Parse chooses the representation from the shape of raw.
// Scalars become exact decimals; slices become vectors.
func Parse(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case decimal.Decimal:
		return Exact(v), nil
	case *decimal.Decimal:
		if v == nil {
			return Value{}, fmt.Errorf("%w: nil decimal", ErrNotNumeric)
		}
		return Exact(*v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Exact(fromUint64(uint64(v))), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return Exact(fromUint64(v)), nil
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return parseString(v)
	case []float64:
		if len(v) == 0 {
			return Value{}, ErrEmptyVector
		}
		return Vector(v), nil
	case []float32:
		if len(v) == 0 {
			return Value{}, ErrEmptyVector
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return Value{kind: KindVector, vec: out}, nil
	case []int:
		if len(v) == 0 {
			return Value{}, ErrEmptyVector
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return Value{kind: KindVector, vec: out}, nil
	case []decimal.Decimal:
		if len(v) == 0 {
			return Value{}, ErrEmptyVector
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = x.InexactFloat64()
		}
		return Value{kind: KindVector, vec: out}, nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil", ErrNotNumeric)
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrNotNumeric, raw)
	}
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrNotNumeric, f)
	}
	return Exact(decimal.NewFromFloat(f)), nil
}

func parseString(s string) (Value, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return Exact(d), nil
}

func (v Value) Kind() Kind { return v.kind }

// IsVector reports the vectorized float domain, including 0-d floats.
func (v Value) IsVector() bool { return v.kind == KindVector }

func (v Value) IsExact() bool { return v.kind == KindExact }

// IsScalar is true for exact values and 0-d floats.
func (v Value) IsScalar() bool { return v.kind == KindExact || v.scalar }

// Len is the element count; scalars have length 1.
func (v Value) Len() int {
	if v.kind == KindExact {
		return 1
	}
	return len(v.vec)
}

// Decimal returns the exact scalar. 0-d floats are upcast; vectors fail.
func (v Value) Decimal() (decimal.Decimal, error) {
	switch {
	case v.kind == KindExact:
		return v.exact, nil
	case v.scalar:
		return decimal.NewFromFloat(v.vec[0]), nil
	default:
		return decimal.Zero, ErrNotScalar
	}
}

// Float64 returns the scalar as float64, possibly losing precision.
func (v Value) Float64() (float64, error) {
	switch {
	case v.kind == KindExact:
		return v.exact.InexactFloat64(), nil
	case v.scalar:
		return v.vec[0], nil
	default:
		return 0, ErrNotScalar
	}
}

// Floats returns a copy of the elements as float64.
func (v Value) Floats() []float64 {
	if v.kind == KindExact {
		return []float64{v.exact.InexactFloat64()}
	}
	out := make([]float64, len(v.vec))
	copy(out, v.vec)
	return out
}

// Native is the arithmetic-safe form: float64 for scalars, []float64 for vectors.
func (v Value) Native() any {
	if v.IsScalar() {
		f, _ := v.Float64()
		return f
	}
	return v.Floats()
}

// IsZero reports whether every element equals zero.
func (v Value) IsZero() bool {
	if v.kind == KindExact {
		return v.exact.IsZero()
	}
	for _, x := range v.vec {
		if x != 0 {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	switch {
	case v.kind == KindExact:
		return v.exact.String()
	case v.scalar:
		return strconv.FormatFloat(v.vec[0], 'g', -1, 64)
	default:
		parts := make([]string, len(v.vec))
		for i, x := range v.vec {
			parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}

// Each calls fn for every element in float64 form.
func (v Value) Each(fn func(i int, x float64)) {
	if v.kind == KindExact {
		fn(0, v.exact.InexactFloat64())
		return
	}
	for i, x := range v.vec {
		fn(i, x)
	}
}

func (v Value) toFloat() Value {
	if v.kind == KindVector {
		return v
	}
	return Float(v.exact.InexactFloat64())
}

// Quo divides a by b keeping DivisionPrecision significant digits,
// whatever the scale of the quotient. b must not be zero.
func Quo(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	lead := (int32(a.NumDigits()) + a.Exponent()) - (int32(b.NumDigits()) + b.Exponent())
	places := DivisionPrecision - lead + 1
	if places < 0 {
		places = 0
	}
	return a.DivRound(b, places)
}

// Normalize rounds exact values to SignificantDigits significant digits.
// Vector values are returned unchanged.
func Normalize(v Value) Value {
	if v.kind != KindExact || v.exact.IsZero() {
		return v
	}
	lead := int32(v.exact.NumDigits()) + v.exact.Exponent()
	return Exact(v.exact.Round(SignificantDigits - lead))
}
