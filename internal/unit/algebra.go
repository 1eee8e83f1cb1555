package unit

import (
	"strconv"
	"strings"

	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/observability"
	"github.com/shopspring/decimal"
)

// MultiplierTolerance is the relative tolerance used when matching a
// synthesized multiplier against registered descriptors.
var MultiplierTolerance = decimal.New(1, -9)

const (
	opMul = "mul"
	opDiv = "div"
	opPow = "pow"

	resultCanonical = "canonical"
	resultCached    = "cached"
	resultMinted    = "minted"
)

// Multiply combines two descriptors: exponents add, multipliers multiply.
func (r *Registry) Multiply(a, b *Descriptor) (*Descriptor, error) {
	if a == nil || b == nil {
		return nil, ErrNilDescriptor
	}
	sym := a.symbol + "·" + wrap(b.symbol, "/")
	return r.synthesize(opMul, sym, a.signature.Mul(b.signature), a.multiplier.Mul(b.multiplier))
}

// Divide combines two descriptors: exponents subtract, multipliers divide.
func (r *Registry) Divide(a, b *Descriptor) (*Descriptor, error) {
	if a == nil || b == nil {
		return nil, ErrNilDescriptor
	}
	sym := a.symbol + "/" + wrap(b.symbol, "·/")
	m := magnitude.Quo(a.multiplier, b.multiplier)
	return r.synthesize(opDiv, sym, a.signature.Div(b.signature), m)
}

// Power raises a descriptor to an integer exponent.
func (r *Registry) Power(a *Descriptor, n int) (*Descriptor, error) {
	if a == nil {
		return nil, ErrNilDescriptor
	}
	if n == 1 {
		return a, nil
	}
	m, err := magnitude.Pow(magnitude.Exact(a.multiplier), n)
	if err != nil {
		return nil, ConversionError{Op: opPow, Reason: a.symbol, Err: err}
	}
	mult, _ := m.Decimal()
	sym := wrap(a.symbol, "·/^") + "^" + strconv.Itoa(n)
	return r.synthesize(opPow, sym, a.signature.Pow(n), mult)
}

func wrap(sym, ops string) string {
	if strings.ContainsAny(sym, ops) {
		return "(" + sym + ")"
	}
	return sym
}

// synthesize returns the canonical registered descriptor for sig and
// mult when one exists. Otherwise it returns an unregistered descriptor,
// interned so repeated identical algebra yields the same pointer.
func (r *Registry) synthesize(op, sym string, sig dimension.Signature, mult decimal.Decimal) (*Descriptor, error) {
	if mult.IsZero() {
		return nil, ConversionError{Op: op, Reason: sym, Err: ErrInvalidDefinition}
	}
	dim := r.ResolveSignature(sig)
	if dim != dimension.Anonymous {
		if d := r.canonical(dim, mult); d != nil {
			observability.RecordAlgebra(op, resultCanonical)
			return d, nil
		}
	}

	key := sig.Key() + "|" + mult.String() + "|" + sym + "|" + dim
	if d, ok := r.synth.Get(key); ok {
		observability.RecordAlgebra(op, resultCached)
		return d, nil
	}
	d := &Descriptor{
		symbol:     sym,
		dimension:  dim,
		multiplier: mult,
		signature:  sig,
		derived:    true,
		synthetic:  true,
	}
	r.synth.Add(key, d)
	observability.RecordAlgebra(op, resultMinted)
	return d, nil
}

// canonical finds the first registered, linear descriptor of dim whose
// multiplier matches mult within MultiplierTolerance.
func (r *Registry) canonical(dim string, mult decimal.Decimal) *Descriptor {
	for _, d := range r.DescriptorsIn(dim) {
		if !d.offset.IsZero() || d.IsContextual() {
			continue
		}
		if closeTo(d.multiplier, mult) {
			return d
		}
	}
	return nil
}

func closeTo(a, b decimal.Decimal) bool {
	scale := decimal.Max(a.Abs(), b.Abs())
	return a.Sub(b).Abs().LessThanOrEqual(scale.Mul(MultiplierTolerance))
}
