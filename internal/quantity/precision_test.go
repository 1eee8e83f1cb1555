package quantity

import (
	"testing"

	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/shopspring/decimal"
)

func TestSmallEnergiesKeepPrecision(t *testing.T) {
	testlog.Start(t)
	q := MustNew("0.000001", catalog.ElectronVolt)
	gj, err := q.To(catalog.Gigajoule)
	if err != nil {
		t.Fatalf("to GJ: %v", err)
	}
	got, err := gj.Exact().Decimal()
	if err != nil {
		t.Fatalf("decimal: %v", err)
	}
	if want := decimal.RequireFromString("1.602176634e-34"); !got.Equal(want) {
		t.Fatalf("µeV in GJ: got %s want %s", got, want)
	}
	back, err := gj.To(catalog.ElectronVolt)
	if err != nil {
		t.Fatalf("back to eV: %v", err)
	}
	if s := back.Exact().String(); s != "0.000001" {
		t.Fatalf("return trip: got %s want 0.000001", s)
	}
}

func TestElectronVoltRoundTripIsExact(t *testing.T) {
	testlog.Start(t)
	mj, err := MustNew(7, catalog.ElectronVolt).To(catalog.Megajoule)
	if err != nil {
		t.Fatalf("to MJ: %v", err)
	}
	back, err := mj.To(catalog.ElectronVolt)
	if err != nil {
		t.Fatalf("back to eV: %v", err)
	}
	if s := back.Exact().String(); s != "7" {
		t.Fatalf("7 eV via MJ: got %s want 7", s)
	}
}
