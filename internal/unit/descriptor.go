package unit

import (
	"fmt"
	"strings"

	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/shopspring/decimal"
)

// Descriptor is an immutable unit definition: a scale within a dimension.
type Descriptor struct {
	symbol     string
	aliases    []string
	dimension  string
	multiplier decimal.Decimal
	offset     decimal.Decimal
	signature  dimension.Signature
	stages     []Stage
	bounds     Bounds
	derived    bool
	synthetic  bool
}

// Builder is the mutable draft an Option edits before New freezes it.
type Builder struct {
	Symbol     string
	Aliases    []string
	Dimension  string
	Multiplier decimal.Decimal
	Offset     decimal.Decimal
	Signature  dimension.Signature
	Stages     []Stage
	Derived    bool
}

type Option func(*Builder) error

// New builds a descriptor. Multiplier defaults to 1, offset to 0 and the
// signature to the dimension itself treated as a base dimension.
func New(symbol, dim string, opts ...Option) (*Descriptor, error) {
	b := &Builder{
		Symbol:     strings.TrimSpace(symbol),
		Dimension:  strings.ToLower(strings.TrimSpace(dim)),
		Multiplier: decimal.NewFromInt(1),
	}
	if b.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidDefinition)
	}
	if b.Dimension == "" {
		return nil, fmt.Errorf("%w: %s: dimension is required", ErrInvalidDefinition, b.Symbol)
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("unit %s: %w", b.Symbol, err)
		}
	}
	return b.build()
}

// MustNew is New for package-level catalogs; it panics on error.
func MustNew(symbol, dim string, opts ...Option) *Descriptor {
	d, err := New(symbol, dim, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *Builder) build() (*Descriptor, error) {
	if b.Multiplier.IsZero() {
		return nil, fmt.Errorf("%w: %s: base multiplier must not be zero", ErrInvalidDefinition, b.Symbol)
	}
	sig := b.Signature
	if sig == nil {
		if b.Dimension == dimension.Anonymous {
			return nil, fmt.Errorf("%w: %s: anonymous descriptors need a signature", ErrInvalidDefinition, b.Symbol)
		}
		sig = dimension.Base(b.Dimension)
	}
	d := &Descriptor{
		symbol:     b.Symbol,
		aliases:    append([]string(nil), b.Aliases...),
		dimension:  b.Dimension,
		multiplier: b.Multiplier,
		offset:     b.Offset,
		signature:  sig.Clone(),
		stages:     append([]Stage(nil), b.Stages...),
		derived:    b.Derived,
	}
	for _, s := range d.stages {
		if l, ok := s.(Limiter); ok {
			d.bounds = d.bounds.tighten(l.Limits())
		}
	}
	return d, nil
}

func Aliases(aliases ...string) Option {
	return func(b *Builder) error {
		b.Aliases = append(b.Aliases, aliases...)
		return nil
	}
}

// Multiplier sets the base multiplier from any exact scalar input.
func Multiplier(raw any) Option {
	return func(b *Builder) error {
		d, err := exactScalar(raw)
		if err != nil {
			return fmt.Errorf("multiplier: %w", err)
		}
		b.Multiplier = d
		return nil
	}
}

// Offset sets the base offset, applied before the multiplier on the way in.
func Offset(raw any) Option {
	return func(b *Builder) error {
		d, err := exactScalar(raw)
		if err != nil {
			return fmt.Errorf("offset: %w", err)
		}
		b.Offset = d
		return nil
	}
}

func Signature(sig dimension.Signature) Option {
	return func(b *Builder) error {
		b.Signature = sig.Clone()
		return nil
	}
}

// WithStage appends a transform stage.
func WithStage(s Stage) Option {
	return func(b *Builder) error {
		if s == nil {
			return fmt.Errorf("%w: nil stage", ErrInvalidDefinition)
		}
		b.Stages = append(b.Stages, s)
		return nil
	}
}

func exactScalar(raw any) (decimal.Decimal, error) {
	v, err := magnitude.Parse(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Decimal()
}

func (d *Descriptor) Symbol() string { return d.symbol }

func (d *Descriptor) Aliases() []string { return append([]string(nil), d.aliases...) }

func (d *Descriptor) Dimension() string { return d.dimension }

func (d *Descriptor) Multiplier() decimal.Decimal { return d.multiplier }

func (d *Descriptor) Offset() decimal.Decimal { return d.offset }

func (d *Descriptor) Signature() dimension.Signature { return d.signature.Clone() }

func (d *Descriptor) Stages() []Stage { return append([]Stage(nil), d.stages...) }

// Bounds returns the tightest range declared by bound stages.
func (d *Descriptor) Bounds() Bounds { return d.bounds }

// IsDerived reports a multiplier computed by derivation rather than declared.
func (d *Descriptor) IsDerived() bool { return d.derived }

// IsAnonymous reports a signature no registered dimension claims.
func (d *Descriptor) IsAnonymous() bool { return d.dimension == dimension.Anonymous }

// IsSynthetic reports a descriptor minted by the algebra. Synthetic
// descriptors are never in the alias table.
func (d *Descriptor) IsSynthetic() bool { return d.synthetic }

// IsBase reports multiplier 1 and offset 0.
func (d *Descriptor) IsBase() bool {
	return d.multiplier.Equal(decimal.NewFromInt(1)) && d.offset.IsZero()
}

// IsContextual reports whether conversion depends on the context.
func (d *Descriptor) IsContextual() bool {
	for _, s := range d.stages {
		if k := s.Kind(); k == StageShift || k == StageScale {
			return true
		}
	}
	return false
}

// DimensionLabel is the dimension name, with the signature for anonymous descriptors.
func (d *Descriptor) DimensionLabel() string {
	if d.IsAnonymous() {
		return dimension.Anonymous + "(" + d.signature.String() + ")"
	}
	return d.dimension
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s [%s ×%s]", d.symbol, d.DimensionLabel(), d.multiplier.String())
}

// Keys returns the normalized lookup strings: symbol first, then aliases.
func (d *Descriptor) Keys() []string {
	seen := make(map[string]struct{}, len(d.aliases)+1)
	keys := make([]string, 0, len(d.aliases)+1)
	for _, raw := range append([]string{d.symbol}, d.aliases...) {
		k := NormalizeAlias(raw)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Identical compares the defining scale, ignoring aliases and stages.
func (d *Descriptor) Identical(o *Descriptor) bool {
	return d.symbol == o.symbol &&
		d.dimension == o.dimension &&
		d.multiplier.Equal(o.multiplier) &&
		d.offset.Equal(o.offset) &&
		d.signature.Equal(o.signature)
}

// SameDimension is true when both descriptors measure the same thing.
// Anonymous descriptors match only on equal signatures.
func SameDimension(a, b *Descriptor) bool {
	if a == nil || b == nil {
		return false
	}
	if a.dimension != b.dimension {
		return false
	}
	if a.IsAnonymous() {
		return a.signature.Equal(b.signature)
	}
	return true
}

// Check runs the construction-time stages.
func (d *Descriptor) Check(v magnitude.Value) error {
	for _, s := range d.stages {
		if err := s.Check(v, d); err != nil {
			return err
		}
	}
	return nil
}

// ToBase computes (v + offset) * multiplier, then applies stages in
// attachment order. Exact results go through magnitude.Normalize.
func (d *Descriptor) ToBase(v magnitude.Value, ctx Context) (magnitude.Value, error) {
	out, err := magnitude.Add(v, magnitude.Exact(d.offset))
	if err != nil {
		return magnitude.Value{}, err
	}
	out, err = magnitude.Mul(out, magnitude.Exact(d.multiplier))
	if err != nil {
		return magnitude.Value{}, err
	}
	for _, s := range d.stages {
		if out, err = s.ToBase(out, ctx); err != nil {
			return magnitude.Value{}, err
		}
	}
	return magnitude.Normalize(out), nil
}

// FromBase undoes stages in reverse order, then computes v / multiplier - offset.
func (d *Descriptor) FromBase(v magnitude.Value, ctx Context) (magnitude.Value, error) {
	out := v
	var err error
	for i := len(d.stages) - 1; i >= 0; i-- {
		if out, err = d.stages[i].FromBase(out, ctx); err != nil {
			return magnitude.Value{}, err
		}
	}
	out, err = magnitude.Div(out, magnitude.Exact(d.multiplier))
	if err != nil {
		return magnitude.Value{}, err
	}
	out, err = magnitude.Sub(out, magnitude.Exact(d.offset))
	if err != nil {
		return magnitude.Value{}, err
	}
	return magnitude.Normalize(out), nil
}

// NormalizeAlias lower-cases and trims a lookup string.
func NormalizeAlias(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
