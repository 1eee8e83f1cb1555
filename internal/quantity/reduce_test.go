package quantity

import (
	"errors"
	"testing"

	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/rannd1nt/phaethon/internal/unit"
)

func TestReductions(t *testing.T) {
	testlog.Start(t)
	q := MustNew([]float64{2, 4, 4, 4, 5, 5, 7, 9}, catalog.Meter)

	cases := []struct {
		name string
		fn   func() (*Quantity, error)
		want float64
	}{
		{"sum", q.Sum, 40},
		{"mean", q.Mean, 5},
		{"median", q.Median, 4.5},
		{"std", q.Std, 2},
		{"max", q.Max, 9},
		{"min", q.Min, 2},
	}
	for _, tc := range cases {
		r, err := tc.fn()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if r.Unit() != catalog.Meter {
			t.Fatalf("%s: unit %s", tc.name, r.Unit())
		}
		if got := mustFloat(t, r); !near(got, tc.want, 1e-12) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestElementwiseExtremaConvertOperand(t *testing.T) {
	testlog.Start(t)
	q := MustNew([]float64{1, 5}, catalog.Meter)
	other := MustNew([]float64{0.002, 0.003}, catalog.Kilometer)

	hi, err := q.Maximum(other)
	if err != nil {
		t.Fatalf("maximum: %v", err)
	}
	got := hi.Floats()
	if !near(got[0], 2, 1e-12) || !near(got[1], 5, 1e-12) {
		t.Fatalf("maximum: got %v want [2 5]", got)
	}
	lo, err := q.Minimum(other)
	if err != nil {
		t.Fatalf("minimum: %v", err)
	}
	got = lo.Floats()
	if !near(got[0], 1, 1e-12) || !near(got[1], 3, 1e-12) {
		t.Fatalf("minimum: got %v want [1 3]", got)
	}
	if _, err := q.Maximum(MustNew(1, catalog.Second)); !errors.Is(err, unit.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestApplyGatesOnAllowList(t *testing.T) {
	testlog.Start(t)
	q := MustNew(3, catalog.Meter)
	_, err := q.Apply("power", 2)
	if !errors.Is(err, magnitude.ErrOperationNotAllowed) || !errors.Is(err, unit.ErrConversion) {
		t.Fatalf("expected not-allowed conversion error, got %v", err)
	}
	r, err := q.Apply("Round", 0)
	if err != nil || r.Exact().String() != "3" {
		t.Fatalf("round: got %v, %v", r, err)
	}
	added, err := q.Apply("add", MustNew(2, catalog.Kilometer))
	if err != nil || added.Exact().String() != "2003" {
		t.Fatalf("add quantity: got %v, %v", added, err)
	}
}
