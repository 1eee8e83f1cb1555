package axiom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// Measured is a value bound to a descriptor that can reduce itself to
// base value. Quantities satisfy it.
type Measured interface {
	Unit() *unit.Descriptor
	BaseValue() (magnitude.Value, error)
	Context() unit.Context
}

// Constraint validates one named argument.
type Constraint interface {
	Check(param string, arg any) error
}

type dimensionConstraint string

// Dimension accepts any argument measured in the named dimension.
func Dimension(name string) Constraint {
	return dimensionConstraint(strings.ToLower(strings.TrimSpace(name)))
}

func (c dimensionConstraint) Check(param string, arg any) error {
	m, ok := arg.(Measured)
	if !ok {
		return unit.DimensionMismatchError{Expected: string(c), Received: fmt.Sprintf("%T", arg), Context: "argument " + param}
	}
	if got := m.Unit().Dimension(); got != string(c) {
		return unit.DimensionMismatchError{Expected: string(c), Received: m.Unit().DimensionLabel(), Context: "argument " + param}
	}
	return nil
}

type exactConstraint struct {
	d *unit.Descriptor
}

// Exactly accepts only arguments expressed in d itself.
func Exactly(d *unit.Descriptor) Constraint {
	return exactConstraint{d: d}
}

func (c exactConstraint) Check(param string, arg any) error {
	m, ok := arg.(Measured)
	if !ok {
		return unit.DimensionMismatchError{Expected: c.d.Symbol(), Received: fmt.Sprintf("%T", arg), Context: "argument " + param}
	}
	if m.Unit() != c.d {
		return unit.DimensionMismatchError{Expected: c.d.Symbol(), Received: m.Unit().Symbol(), Context: "argument " + param}
	}
	return nil
}

// Args are the named arguments of a guarded call.
type Args map[string]any

// Body is the function a guard wraps.
type Body func(args Args) (any, error)

// Guard validates and adapts named arguments before running a body.
// Typed Go callers should prefer typed signatures; guards serve calls
// assembled at runtime.
type Guard struct {
	require map[string]Constraint
	prepare map[string]*unit.Descriptor
}

// Require builds a guard checking each named argument against its constraint.
func Require(constraints map[string]Constraint) *Guard {
	return (&Guard{}).Require(constraints)
}

// Prepare builds a guard converting each named quantity argument to its
// target descriptor and passing the plain magnitude to the body.
func Prepare(targets map[string]*unit.Descriptor) *Guard {
	return (&Guard{}).Prepare(targets)
}

func (g *Guard) Require(constraints map[string]Constraint) *Guard {
	out := g.clone()
	for k, c := range constraints {
		out.require[k] = c
	}
	return out
}

func (g *Guard) Prepare(targets map[string]*unit.Descriptor) *Guard {
	out := g.clone()
	for k, d := range targets {
		out.prepare[k] = d
	}
	return out
}

func (g *Guard) clone() *Guard {
	out := &Guard{
		require: make(map[string]Constraint, len(g.require)),
		prepare: make(map[string]*unit.Descriptor, len(g.prepare)),
	}
	for k, v := range g.require {
		out.require[k] = v
	}
	for k, v := range g.prepare {
		out.prepare[k] = v
	}
	return out
}

// Call checks constraints in parameter order, converts prepared
// arguments, then invokes body with a fresh argument map. Absent
// arguments are left to the body.
func (g *Guard) Call(args Args, body Body) (any, error) {
	for _, name := range sortedKeys(g.require) {
		arg, ok := args[name]
		if !ok {
			continue
		}
		if err := g.require[name].Check(name, arg); err != nil {
			return nil, err
		}
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = v
	}
	for _, name := range sortedKeys(g.prepare) {
		arg, ok := args[name]
		if !ok {
			continue
		}
		m, ok := arg.(Measured)
		if !ok {
			continue
		}
		v, err := convert(name, m, g.prepare[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return body(out)
}

func convert(param string, m Measured, target *unit.Descriptor) (magnitude.Value, error) {
	if err := unit.CheckSameDimension(target, m.Unit(), "argument "+param); err != nil {
		return magnitude.Value{}, err
	}
	base, err := m.BaseValue()
	if err != nil {
		return magnitude.Value{}, err
	}
	return target.FromBase(base, m.Context())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
