package axiom_test

import (
	"errors"
	"testing"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/rannd1nt/phaethon/internal/unit"
)

var (
	meter    = unit.MustNew("m", "length")
	foot     = unit.MustNew("ft", "length", unit.Multiplier("0.3048"))
	kilogram = unit.MustNew("kg", "mass")
	second   = unit.MustNew("s", "time")
	minute   = unit.MustNew("min", "time", unit.Multiplier(60))
)

func TestDeriveMultiplierAndSignature(t *testing.T) {
	testlog.Start(t)
	n, err := unit.New("N", "force", axiom.Derive([]any{kilogram, meter}, []any{second, second}))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !n.IsDerived() || n.Multiplier().String() != "1" || !n.Offset().IsZero() {
		t.Fatalf("newton: derived=%v multiplier=%s offset=%s", n.IsDerived(), n.Multiplier(), n.Offset())
	}
	want := dimension.Of("mass", 1, "length", 1, "time", -2)
	if !n.Signature().Equal(want) {
		t.Fatalf("signature: got %s want %s", n.Signature(), want)
	}

	fpm, err := unit.New("ft/min", "speed", axiom.Derive([]any{foot}, []any{minute}))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got := fpm.Multiplier().String(); got != "0.00508" {
		t.Fatalf("ft/min multiplier: got %s want 0.00508", got)
	}
}

func TestDeriveNumericFactorsKeepBaseSignature(t *testing.T) {
	testlog.Start(t)
	dozen, err := unit.New("dozen", "count", axiom.Derive([]any{12}, nil))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !dozen.Signature().Equal(dimension.Base("count")) {
		t.Fatalf("signature: got %s", dozen.Signature())
	}
	ha, err := unit.New("ha", "area", axiom.Derive([]any{100, meter, 100, meter}, nil))
	if err != nil || ha.Multiplier().String() != "10000" {
		t.Fatalf("hectare: got %v, %v", ha, err)
	}
}

func TestDeriveRejectsBadFactors(t *testing.T) {
	testlog.Start(t)
	if _, err := unit.New("x", "speed", axiom.Derive([]any{meter}, []any{0})); !errors.Is(err, axiom.ErrZeroDivisor) {
		t.Fatalf("expected ErrZeroDivisor, got %v", err)
	}
	if _, err := unit.New("x", "speed", axiom.Derive([]any{"fast"}, nil)); !errors.Is(err, axiom.ErrInvalidFactor) {
		t.Fatalf("expected ErrInvalidFactor, got %v", err)
	}
	var nilDesc *unit.Descriptor
	if _, err := unit.New("x", "speed", axiom.Derive([]any{nilDesc}, nil)); !errors.Is(err, unit.ErrNilDescriptor) {
		t.Fatalf("expected ErrNilDescriptor, got %v", err)
	}
	if _, err := unit.New("x", "speed", axiom.Derive([]any{0}, nil)); !errors.Is(err, unit.ErrInvalidDefinition) {
		t.Fatalf("zero multiplier: expected ErrInvalidDefinition, got %v", err)
	}
}

func TestDeriveFromAlgebra(t *testing.T) {
	testlog.Start(t)
	reg := unit.NewRegistry()
	reg.MustRegister(meter, second)
	expr, err := reg.Divide(meter, second)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	mps, err := unit.New("m/s", "speed", axiom.DeriveFrom(expr), unit.Aliases("mps"))
	if err != nil {
		t.Fatalf("derive from: %v", err)
	}
	if !mps.IsDerived() || mps.Multiplier().String() != "1" {
		t.Fatalf("m/s: derived=%v multiplier=%s", mps.IsDerived(), mps.Multiplier())
	}
	if !mps.Signature().Equal(dimension.Of("length", 1, "time", -1)) {
		t.Fatalf("signature: got %s", mps.Signature())
	}
	if err := reg.Register(mps); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := reg.ResolveSignature(expr.Signature()); got != "speed" {
		t.Fatalf("dna: got %q want speed", got)
	}
	if _, err := unit.New("x", "speed", axiom.DeriveFrom(nil)); !errors.Is(err, unit.ErrNilDescriptor) {
		t.Fatalf("expected ErrNilDescriptor, got %v", err)
	}
}

func TestDeriveTinyMultiplier(t *testing.T) {
	testlog.Start(t)
	d, err := unit.New("yoctounit", "count", axiom.Derive([]any{1}, []any{"1e40"}))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got := d.Multiplier().String(); got != "0.0000000000000000000000000000000000000001" {
		t.Fatalf("multiplier: got %s want 1e-40", got)
	}
}
