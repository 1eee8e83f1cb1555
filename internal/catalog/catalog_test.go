package catalog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/rannd1nt/phaethon/internal/unit"
)

func TestCatalogRegisters(t *testing.T) {
	testlog.Start(t)
	reg, err := catalog.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if reg.Len() != len(catalog.All()) {
		t.Fatalf("len: got %d want %d", reg.Len(), len(catalog.All()))
	}
	if err := catalog.Register(reg); err != nil {
		t.Fatalf("re-registering the catalog should be idempotent: %v", err)
	}
	if got := len(reg.Dimensions()); got != 14 {
		t.Fatalf("dimensions: got %d want 14 (%v)", got, reg.Dimensions())
	}
}

func TestEveryDimensionHasBase(t *testing.T) {
	testlog.Start(t)
	reg := catalog.MustNew()
	want := map[string]*unit.Descriptor{
		catalog.Length:      catalog.Meter,
		catalog.Mass:        catalog.Kilogram,
		catalog.Time:        catalog.Second,
		catalog.Temperature: catalog.Celsius,
		catalog.Area:        catalog.SquareMeter,
		catalog.Volume:      catalog.CubicMeter,
		catalog.Density:     catalog.KilogramPerCubicMeter,
		catalog.Speed:       catalog.MeterPerSecond,
		catalog.Force:       catalog.Newton,
		catalog.Energy:      catalog.Joule,
		catalog.Power:       catalog.Watt,
		catalog.Pressure:    catalog.Pascal,
		catalog.Data:        catalog.Byte,
		catalog.Frequency:   catalog.Hertz,
	}
	for dim, d := range want {
		got, err := reg.BaseOf(dim)
		if err != nil {
			t.Fatalf("%s: %v", dim, err)
		}
		if got != d {
			t.Fatalf("%s: base got %s want %s", dim, got, d)
		}
	}
}

func TestSignatureTable(t *testing.T) {
	testlog.Start(t)
	reg := catalog.MustNew()
	cases := []struct {
		sig  dimension.Signature
		want string
	}{
		{dimension.Of("mass", 1, "length", 1, "time", -2), catalog.Force},
		{dimension.Of("length", 1, "time", -1), catalog.Speed},
		{dimension.Of("mass", 1, "length", -1, "time", -2), catalog.Pressure},
		{dimension.Of("mass", 1, "length", 2, "time", -2), catalog.Energy},
		{dimension.Of("mass", 1, "length", 2, "time", -3), catalog.Power},
		{dimension.Of("mass", 1, "length", -3), catalog.Density},
		{dimension.Of("length", 3), catalog.Volume},
		{dimension.Of("time", -1), catalog.Frequency},
		{dimension.Of("length", 1, "mass", 1), dimension.Anonymous},
	}
	for _, tc := range cases {
		if got := reg.ResolveSignature(tc.sig); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.sig, got, tc.want)
		}
	}
}

func TestAliasCollisions(t *testing.T) {
	testlog.Start(t)
	reg := catalog.MustNew()
	for _, alias := range []string{"m", "c", "w", "kn"} {
		if _, err := reg.Resolve(alias, ""); !errors.Is(err, unit.ErrAmbiguousUnit) {
			t.Fatalf("%s: expected ErrAmbiguousUnit, got %v", alias, err)
		}
	}
	cases := []struct {
		alias, dim string
		want       *unit.Descriptor
	}{
		{"m", catalog.Length, catalog.Meter},
		{"m", catalog.Time, catalog.Month},
		{"C", catalog.Temperature, catalog.Celsius},
		{"c", catalog.Speed, catalog.SpeedOfLightUnit},
		{"w", catalog.Power, catalog.Watt},
		{"W", catalog.Time, catalog.Week},
		{"kn", catalog.Speed, catalog.Knot},
		{"mW", "", catalog.Milliwatt},
		{"MW", "", catalog.Megawatt},
		{"KB", "", catalog.Kilobyte},
		{"Kb", "", catalog.Kilobit},
		{"kB", "", catalog.Kilobyte},
		{"Degrees Celsius", "", catalog.Celsius},
	}
	for _, tc := range cases {
		got, err := reg.Resolve(tc.alias, tc.dim)
		if err != nil {
			t.Fatalf("%s (%s): %v", tc.alias, tc.dim, err)
		}
		if got != tc.want {
			t.Fatalf("%s (%s): got %s want %s", tc.alias, tc.dim, got, tc.want)
		}
	}
}

func TestKnownConversions(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		value any
		from  *unit.Descriptor
		to    *unit.Descriptor
		want  float64
	}{
		{1, catalog.Mile, catalog.Kilometer, 1.609344},
		{1, catalog.Pound, catalog.Gram, 453.59237},
		{1, catalog.Atmosphere, catalog.PSI, 14.695948775513449},
		{0, catalog.Fahrenheit, catalog.Celsius, -17.77777777777778},
		{0, catalog.Rankine, catalog.Kelvin, 0},
		{80, catalog.Reaumur, catalog.Celsius, 100},
		{1, catalog.KilowattHour, catalog.Joule, 3600000},
		{1, catalog.Horsepower, catalog.Watt, 745.6998715822702},
		{1, catalog.MetricHorsepower, catalog.Watt, 735.49875},
		{1, catalog.Gibibyte, catalog.Byte, 1073741824},
		{8, catalog.Bit, catalog.Byte, 1},
		{1, catalog.Knot, catalog.KilometerPerHour, 1.852},
		{60, catalog.RPM, catalog.Hertz, 1},
		{1, catalog.Liter, catalog.Milliliter, 1000},
		{1, catalog.Year, catalog.Day, 365.25},
		{1, catalog.GramPerCubicCentimeter, catalog.KilogramPerCubicMeter, 1000},
		{1, catalog.Hectare, catalog.SquareMeter, 10000},
	}
	for _, tc := range cases {
		q, err := quantity.New(tc.value, tc.from)
		if err != nil {
			t.Fatalf("%v %s: %v", tc.value, tc.from, err)
		}
		out, err := q.To(tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: %v", tc.from, tc.to, err)
		}
		got, _ := out.Float()
		if math.Abs(got-tc.want) > 1e-9*math.Max(1, math.Abs(tc.want)) {
			t.Fatalf("%v %s -> %s: got %v want %v", tc.value, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPhysicalFloors(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		value any
		d     *unit.Descriptor
		ok    bool
	}{
		{"-459.67", catalog.Fahrenheit, true},
		{"-459.68", catalog.Fahrenheit, false},
		{"-218.52", catalog.Reaumur, true},
		{-1, catalog.Rankine, false},
		{-1, catalog.Pascal, false},
		{-1, catalog.PSIG, true},
		{-1, catalog.Byte, false},
		{-1, catalog.Mach, false},
	}
	for _, tc := range cases {
		_, err := quantity.New(tc.value, tc.d)
		if tc.ok && err != nil {
			t.Fatalf("%v %s: unexpected error %v", tc.value, tc.d, err)
		}
		if !tc.ok && !errors.Is(err, unit.ErrAxiomViolation) {
			t.Fatalf("%v %s: expected ErrAxiomViolation, got %v", tc.value, tc.d, err)
		}
	}
}

func TestFlexHierarchy(t *testing.T) {
	testlog.Start(t)
	spans := catalog.FlexHierarchy()
	if spans[0].Name != "millennium" || spans[len(spans)-1].Name != "second" {
		t.Fatalf("order: got %s..%s", spans[0].Name, spans[len(spans)-1].Name)
	}
	for i := 1; i < len(spans); i++ {
		if !spans[i-1].Seconds.GreaterThan(spans[i].Seconds) {
			t.Fatalf("%s should be longer than %s", spans[i-1].Name, spans[i].Name)
		}
	}
	if got := spans[3].Seconds.String(); got != "31557600" {
		t.Fatalf("julian year: got %s", got)
	}
}

func TestContextualUnits(t *testing.T) {
	testlog.Start(t)
	for _, d := range []*unit.Descriptor{catalog.PSIG, catalog.BarGauge, catalog.KPaGauge, catalog.Mach} {
		if !d.IsContextual() {
			t.Fatalf("%s should be contextual", d)
		}
	}
	if catalog.PSI.IsContextual() || catalog.Kelvin.IsContextual() {
		t.Fatalf("absolute units should not be contextual")
	}
}
