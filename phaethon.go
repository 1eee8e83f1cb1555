// Package phaethon is a dimensional-algebra engine: quantities bound to
// unit descriptors, dimension-checked arithmetic, axiom overlays and a
// fluent conversion builder over a built-in unit catalog.
//
// The implementation lives under internal/; this package re-exports the
// surface external callers need.
package phaethon

import (
	"sync"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/config"
	"github.com/rannd1nt/phaethon/internal/convert"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/rs/zerolog"
)

type (
	Registry   = unit.Registry
	Descriptor = unit.Descriptor
	UnitOption = unit.Option
	Context    = unit.Context
	Signature  = dimension.Signature
	Value      = magnitude.Value
	Quantity   = quantity.Quantity
	Engine     = convert.Engine
	Builder    = convert.Builder
	Result     = convert.Result
	Option     = convert.Option
	Guard      = axiom.Guard
	Args       = axiom.Args
	Source     = axiom.Source
	Config     = config.Config

	UnitNotFoundError      = unit.UnitNotFoundError
	AmbiguousUnitError     = unit.AmbiguousUnitError
	DimensionMismatchError = unit.DimensionMismatchError
	AxiomViolationError    = unit.AxiomViolationError
	ConversionError        = unit.ConversionError
)

var (
	ErrUnitNotFound        = unit.ErrUnitNotFound
	ErrAmbiguousUnit       = unit.ErrAmbiguousUnit
	ErrDimensionMismatch   = unit.ErrDimensionMismatch
	ErrAxiomViolation      = unit.ErrAxiomViolation
	ErrConversion          = unit.ErrConversion
	ErrOperationNotAllowed = magnitude.ErrOperationNotAllowed
)

var (
	defaultOnce   sync.Once
	defaultReg    *unit.Registry
	defaultEngine *convert.Engine
)

// Default is the process-wide registry holding the built-in catalog.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = catalog.MustNew()
		defaultEngine = convert.New(defaultReg)
	})
	return defaultReg
}

// NewRegistry returns a registry preloaded with the built-in catalog.
func NewRegistry() (*Registry, error) { return catalog.New() }

// LoadRegistry builds a registry from a definitions file.
func LoadRegistry(path string) (*Registry, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Build(cfg, zerolog.Nop())
}

// Convert starts a conversion against the default registry.
func Convert(value any, source string) *Builder {
	Default()
	return defaultEngine.Convert(value, source)
}

func NewEngine(reg *Registry) *Engine { return convert.New(reg) }

// Q builds a quantity by alias from the default registry.
func Q(value any, alias string, ctx Context) (*Quantity, error) {
	return quantity.Parse(Default(), value, alias, ctx)
}

// NewQuantity binds value to d.
func NewQuantity(value any, d *Descriptor, ctx Context) (*Quantity, error) {
	return quantity.New(value, d, quantity.WithContext(ctx), quantity.WithRegistry(Default()))
}

// NewUnit builds a descriptor; axioms attach through opts.
func NewUnit(symbol, dim string, opts ...UnitOption) (*Descriptor, error) {
	return unit.New(symbol, dim, opts...)
}

func Aliases(aliases ...string) UnitOption { return unit.Aliases(aliases...) }

func Multiplier(raw any) UnitOption { return unit.Multiplier(raw) }

func Offset(raw any) UnitOption { return unit.Offset(raw) }

func Bound(min, max any, msg string) UnitOption { return axiom.Bound(min, max, msg) }

func Shift(src Source, subtract bool) UnitOption {
	op := axiom.ShiftAdd
	if subtract {
		op = axiom.ShiftSub
	}
	return axiom.Shift(src, op)
}

func Scale(src Source) UnitOption { return axiom.Scale(src) }

func Derive(mul, div []any) UnitOption { return axiom.Derive(mul, div) }

func DeriveFrom(expr *Descriptor) UnitOption { return axiom.DeriveFrom(expr) }

func FromContext(key string, def any) Source { return axiom.FromContext(key, def) }

// Require guards a function body on the dimensions of named arguments.
func Require(dims map[string]string) *Guard {
	c := make(map[string]axiom.Constraint, len(dims))
	for param, dim := range dims {
		c[param] = axiom.Dimension(dim)
	}
	return axiom.Require(c)
}

// Prepare converts named arguments to the given descriptors before the
// body runs.
func Prepare(targets map[string]*Descriptor) *Guard { return axiom.Prepare(targets) }
