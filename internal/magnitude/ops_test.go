package magnitude

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
)

func TestReductions(t *testing.T) {
	testlog.Start(t)
	v := Vector([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	cases := map[string]float64{
		"sum":    40,
		"mean":   5,
		"median": 4.5,
		"std":    2,
		"max":    9,
		"min":    2,
	}
	for op, want := range cases {
		got, err := Apply(op, v)
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
		f, err := got.Float64()
		if err != nil {
			t.Fatalf("%s: reduction must be scalar: %v", op, err)
		}
		if math.Abs(f-want) > 1e-12 {
			t.Fatalf("%s: got=%v want=%v", op, f, want)
		}
		if !got.IsVector() {
			t.Fatalf("%s: reduction left the float domain", op)
		}
	}
}

func TestReductionsOnExactScalar(t *testing.T) {
	testlog.Start(t)
	v := MustDecimal("1.5")
	got, _ := Apply("mean", v)
	if !got.IsExact() || got.String() != "1.5" {
		t.Fatalf("exact mean: %v", got)
	}
	got, _ = Apply("std", v)
	if !got.IsZero() {
		t.Fatalf("exact std: %v", got)
	}
}

func TestElementwiseOps(t *testing.T) {
	testlog.Start(t)
	v := Vector([]float64{-1.25, 2.5, -3})
	abs, _ := Apply("abs", v)
	if !reflect.DeepEqual(abs.Floats(), []float64{1.25, 2.5, 3}) {
		t.Fatalf("abs: %v", abs.Floats())
	}
	neg, _ := Apply("negative", v)
	if !reflect.DeepEqual(neg.Floats(), []float64{1.25, -2.5, 3}) {
		t.Fatalf("negative: %v", neg.Floats())
	}
	maxed, _ := Apply("maximum", v, Int(0))
	if !reflect.DeepEqual(maxed.Floats(), []float64{0, 2.5, 0}) {
		t.Fatalf("maximum: %v", maxed.Floats())
	}
	rounded, _ := Apply("round", Vector([]float64{2.5, 3.5, 1.26}), Int(0))
	if !reflect.DeepEqual(rounded.Floats(), []float64{2, 4, 1}) {
		t.Fatalf("round: %v", rounded.Floats())
	}
}

func TestApplyRejectsUnlistedOps(t *testing.T) {
	testlog.Start(t)
	for _, op := range []string{"power", "square", "sqrt", "exp", "log"} {
		if _, err := Apply(op, Vector([]float64{1, 2})); !errors.Is(err, ErrOperationNotAllowed) {
			t.Fatalf("%s: expected ErrOperationNotAllowed, got %v", op, err)
		}
		if Allowed(op) {
			t.Fatalf("%s must not be allowed", op)
		}
	}
	if _, err := Apply("add", Int(1)); err == nil {
		t.Fatalf("expected arity error")
	}
}
