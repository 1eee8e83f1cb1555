package axiom

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

// Derive computes the multiplier as the product of mul factors over the
// product of div factors, and the signature likewise. Factors are
// descriptors or plain numbers. The offset is forced to zero. Purely
// numeric factors leave the signature untouched.
func Derive(mul, div []any) unit.Option {
	return func(b *unit.Builder) error {
		mult := decimal.NewFromInt(1)
		sig := dimension.Signature{}
		for _, f := range mul {
			m, s, err := factor(f)
			if err != nil {
				return err
			}
			mult = mult.Mul(m)
			sig = sig.Mul(s)
		}
		for _, f := range div {
			m, s, err := factor(f)
			if err != nil {
				return err
			}
			if m.IsZero() {
				return fmt.Errorf("%w: %v", ErrZeroDivisor, f)
			}
			mult = magnitude.Quo(mult, m)
			sig = sig.Div(s)
		}
		b.Multiplier = mult
		b.Offset = decimal.Zero
		b.Derived = true
		if len(sig) > 0 {
			b.Signature = sig
		}
		return nil
	}
}

// DeriveFrom copies multiplier and signature from a descriptor produced
// by the registry algebra.
func DeriveFrom(expr *unit.Descriptor) unit.Option {
	return func(b *unit.Builder) error {
		if expr == nil {
			return unit.ErrNilDescriptor
		}
		b.Multiplier = expr.Multiplier()
		b.Offset = decimal.Zero
		b.Signature = expr.Signature()
		b.Derived = true
		return nil
	}
}

func factor(f any) (decimal.Decimal, dimension.Signature, error) {
	switch x := f.(type) {
	case *unit.Descriptor:
		if x == nil {
			return decimal.Zero, nil, unit.ErrNilDescriptor
		}
		return x.Multiplier(), x.Signature(), nil
	default:
		v, err := magnitude.Parse(f)
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("%w: %T", ErrInvalidFactor, f)
		}
		d, err := v.Decimal()
		if err != nil {
			return decimal.Zero, nil, fmt.Errorf("%w: %v", ErrInvalidFactor, err)
		}
		return d, dimension.Signature{}, nil
	}
}
