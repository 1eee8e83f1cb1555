package unit

import (
	"testing"

	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/shopspring/decimal"
)

// addStage shifts by a fixed amount; it stands in for context stages.
type addStage struct {
	kind StageKind
	by   magnitude.Value
}

func (s addStage) Kind() StageKind { return s.kind }

func (s addStage) Check(magnitude.Value, *Descriptor) error { return nil }

func (s addStage) ToBase(v magnitude.Value, _ Context) (magnitude.Value, error) {
	return magnitude.Add(v, s.by)
}

func (s addStage) FromBase(v magnitude.Value, _ Context) (magnitude.Value, error) {
	return magnitude.Sub(v, s.by)
}

type limitStage struct {
	bounds Bounds
}

func (s limitStage) Kind() StageKind { return StageBound }

func (s limitStage) Limits() Bounds { return s.bounds }

func (s limitStage) Check(v magnitude.Value, d *Descriptor) error {
	var err error
	v.Each(func(_ int, x float64) {
		if err == nil && !s.bounds.Contains(x, 0) {
			err = AxiomViolationError{Unit: d.Symbol(), Message: "out of range"}
		}
	})
	return err
}

func (s limitStage) ToBase(v magnitude.Value, _ Context) (magnitude.Value, error) { return v, nil }
func (s limitStage) FromBase(v magnitude.Value, _ Context) (magnitude.Value, error) { return v, nil }

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

type fixture struct {
	reg                   *Registry
	m, km, s, h, kg, g, n *Descriptor
	month                 *Descriptor
	celsius, kelvin       *Descriptor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	force := dimension.Of("mass", 1, "length", 1, "time", -2)
	f := fixture{
		reg:     NewRegistry(WithAnonymousCache(8)),
		m:       MustNew("m", "length", Aliases("meter", "metre")),
		km:      MustNew("km", "length", Aliases("kilometer"), Multiplier(1000)),
		s:       MustNew("s", "time", Aliases("second", "sec")),
		h:       MustNew("h", "time", Aliases("hour"), Multiplier(3600)),
		month:   MustNew("mo", "time", Aliases("month", "m"), Multiplier("2629800")),
		kg:      MustNew("kg", "mass", Aliases("kilogram")),
		g:       MustNew("g", "mass", Aliases("gram"), Multiplier("0.001")),
		n:       MustNew("N", "force", Aliases("newton"), Signature(force)),
		celsius: MustNew("°C", "temperature", Aliases("c", "celsius"), WithStage(limitStage{bounds: Bounds{Min: nullDec("-273.15")}})),
		kelvin:  MustNew("K", "temperature", Aliases("kelvin"), Offset("-273.15")),
	}
	f.reg.MustRegister(f.m, f.km, f.s, f.h, f.month, f.kg, f.g, f.n, f.celsius, f.kelvin)
	return f
}
