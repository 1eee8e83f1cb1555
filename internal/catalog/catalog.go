package catalog

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/unit"
)

const (
	Length      = "length"
	Mass        = "mass"
	Time        = "time"
	Temperature = "temperature"
	Area        = "area"
	Volume      = "volume"
	Density     = "density"
	Speed       = "speed"
	Force       = "force"
	Energy      = "energy"
	Power       = "power"
	Pressure    = "pressure"
	Data        = "data"
	Frequency   = "frequency"
)

// AtmosphericPressureKey is the context key read by gauge pressure units.
const AtmosphericPressureKey = "atmospheric_pressure"

var (
	speedSignature    = dimension.Of(Length, 1, Time, -1)
	pressureSignature = dimension.Of(Mass, 1, Length, -1, Time, -2)
)

// All returns every built-in descriptor in registration order. Base
// descriptors precede the units derived from them.
func All() []*unit.Descriptor {
	groups := [][]*unit.Descriptor{
		lengthUnits(), massUnits(), timeUnits(), temperatureUnits(),
		areaUnits(), volumeUnits(), densityUnits(), speedUnits(),
		forceUnits(), energyUnits(), powerUnits(), pressureUnits(),
		dataUnits(), frequencyUnits(),
	}
	var out []*unit.Descriptor
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Register adds every built-in descriptor to reg.
func Register(reg *unit.Registry) error {
	for _, d := range All() {
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

// New returns a registry holding the built-in catalog.
func New(opts ...unit.RegistryOption) (*unit.Registry, error) {
	reg := unit.NewRegistry(opts...)
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func MustNew(opts ...unit.RegistryOption) *unit.Registry {
	reg, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return reg
}

func nonNegative(what string) unit.Option {
	return axiom.Bound(0, nil, what+" cannot be negative")
}

// linear defines a plain scaled unit carrying the dimension's default bound.
func linear(dim, what string, symbol string, mult any, aliases ...string) *unit.Descriptor {
	return unit.MustNew(symbol, dim, unit.Multiplier(mult), unit.Aliases(aliases...), nonNegative(what))
}

// derived defines a unit from mul/div factors.
func derived(dim, what string, symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return unit.MustNew(symbol, dim, axiom.Derive(mul, div), unit.Aliases(aliases...), nonNegative(what))
}

func factors(fs ...any) []any { return fs }
