package catalog

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

// temperature defines an affine scale floored at absolute zero. Celsius
// is the base: multiplier 1, offset 0.
func temperature(symbol string, offset, mult, floor decimal.Decimal, aliases ...string) *unit.Descriptor {
	return unit.MustNew(symbol, Temperature,
		unit.Offset(offset),
		unit.Multiplier(mult),
		unit.Aliases(aliases...),
		axiom.Bound(floor, nil, fmt.Sprintf("temperature cannot drop below absolute zero (%s %s)", floor, symbol)),
	)
}

var (
	Celsius = temperature("°C", decimal.Zero, num(1), AbsoluteZeroC,
		"C", "celsius", "celcius", "°c", "degC", "deg C", "degree C", "degrees C", "degree celsius", "degrees celsius")
	Kelvin = temperature("K", AbsoluteZeroC, num(1), decimal.Zero,
		"kelvin", "kelvins", "°K", "degK", "deg K", "degree K", "degrees K")
	Fahrenheit = temperature("°F", FahrenheitOffset.Neg(), FiveNinths, AbsoluteZeroF,
		"F", "fahrenheit", "°f", "degF", "deg F", "degree F", "degrees F", "degree fahrenheit", "degrees fahrenheit")
	Rankine = temperature("°R", RankineOffset.Neg(), FiveNinths, decimal.Zero,
		"R", "Ra", "rankine", "°Ra", "degR", "deg R", "degree R", "degrees R")
	Reaumur = temperature("°Re", decimal.Zero, dec("1.25"), AbsoluteZeroRe,
		"Re", "reaumur", "réaumur", "°ré", "degRe", "deg Re", "degree Re", "degrees Re")
)

func temperatureUnits() []*unit.Descriptor {
	return []*unit.Descriptor{Celsius, Kelvin, Fahrenheit, Rankine, Reaumur}
}
