package axiom_test

import (
	"errors"
	"testing"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/rannd1nt/phaethon/internal/unit"
)

func speedGuard() *axiom.Guard {
	return axiom.Require(map[string]axiom.Constraint{
		"distance": axiom.Dimension("Length"),
		"elapsed":  axiom.Dimension("time"),
	}).Prepare(map[string]*unit.Descriptor{
		"distance": catalog.Meter,
		"elapsed":  catalog.Second,
	})
}

func speedBody(args axiom.Args) (any, error) {
	d := args["distance"].(magnitude.Value)
	s := args["elapsed"].(magnitude.Value)
	return magnitude.Div(d, s)
}

func TestGuardPreparesMagnitudes(t *testing.T) {
	testlog.Start(t)
	out, err := speedGuard().Call(axiom.Args{
		"distance": quantity.MustNew(3, catalog.Kilometer),
		"elapsed":  quantity.MustNew(5, catalog.Minute),
	}, speedBody)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := mustFloat(t, out.(magnitude.Value)); got != 10 {
		t.Fatalf("speed: got %v m/s want 10", got)
	}
}

func TestGuardRejectsWrongDimension(t *testing.T) {
	testlog.Start(t)
	called := false
	_, err := speedGuard().Call(axiom.Args{
		"distance": quantity.MustNew(3, catalog.Second),
		"elapsed":  quantity.MustNew(5, catalog.Minute),
	}, func(axiom.Args) (any, error) {
		called = true
		return nil, nil
	})
	var dm unit.DimensionMismatchError
	if !errors.As(err, &dm) {
		t.Fatalf("expected DimensionMismatchError, got %v", err)
	}
	if dm.Expected != "length" || dm.Received != "time" || dm.Context != "argument distance" {
		t.Fatalf("mismatch: %+v", dm)
	}
	if called {
		t.Fatalf("body ran despite a failed constraint")
	}

	_, err = speedGuard().Call(axiom.Args{"distance": 3}, speedBody)
	if !errors.As(err, &dm) || dm.Received != "int" {
		t.Fatalf("bare number: expected mismatch naming int, got %v", err)
	}
}

func TestGuardSkipsAbsentAndPassesPlainArguments(t *testing.T) {
	testlog.Start(t)
	g := axiom.Prepare(map[string]*unit.Descriptor{"temp": catalog.Kelvin, "label": catalog.Kelvin})
	out, err := g.Call(axiom.Args{
		"temp":  quantity.MustNew(25, catalog.Celsius),
		"label": "ambient",
	}, func(args axiom.Args) (any, error) {
		if _, ok := args["missing"]; ok {
			t.Fatalf("unexpected argument")
		}
		if args["label"] != "ambient" {
			t.Fatalf("plain argument changed: %v", args["label"])
		}
		return args["temp"], nil
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := out.(magnitude.Value).String(); got != "298.15" {
		t.Fatalf("prepared temp: got %s want 298.15", got)
	}

	_, err = g.Call(axiom.Args{"temp": quantity.MustNew(1, catalog.Meter)}, speedBody)
	if !errors.Is(err, unit.ErrDimensionMismatch) {
		t.Fatalf("prepare across dimensions: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestGuardExactly(t *testing.T) {
	testlog.Start(t)
	g := axiom.Require(map[string]axiom.Constraint{"t": axiom.Exactly(catalog.Kelvin)})
	body := func(axiom.Args) (any, error) { return "ok", nil }
	if _, err := g.Call(axiom.Args{"t": quantity.MustNew(300, catalog.Kelvin)}, body); err != nil {
		t.Fatalf("kelvin: %v", err)
	}
	_, err := g.Call(axiom.Args{"t": quantity.MustNew(27, catalog.Celsius)}, body)
	var dm unit.DimensionMismatchError
	if !errors.As(err, &dm) || dm.Expected != "K" || dm.Received != "°C" {
		t.Fatalf("celsius: expected K/°C mismatch, got %v", err)
	}
}

func TestGuardChainingCopies(t *testing.T) {
	testlog.Start(t)
	base := axiom.Require(map[string]axiom.Constraint{"a": axiom.Dimension("length")})
	_ = base.Require(map[string]axiom.Constraint{"b": axiom.Dimension("mass")})
	args := axiom.Args{
		"a": quantity.MustNew(1, catalog.Meter),
		"b": quantity.MustNew(1, catalog.Meter),
	}
	if _, err := base.Call(args, func(axiom.Args) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("extending a guard modified the original: %v", err)
	}
}

func TestGuardUsesArgumentContext(t *testing.T) {
	testlog.Start(t)
	g := axiom.Prepare(map[string]*unit.Descriptor{"p": catalog.Pascal})
	q := quantity.MustNew(0, catalog.KPaGauge, quantity.WithContext(unit.Context{catalog.AtmosphericPressureKey: 90000}))
	out, err := g.Call(axiom.Args{"p": q}, func(args axiom.Args) (any, error) { return args["p"], nil })
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := mustFloat(t, out.(magnitude.Value)); got != 90000 {
		t.Fatalf("absolute: got %v want 90000", got)
	}
}
