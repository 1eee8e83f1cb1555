package catalog

import (
	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

func speed(symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return derived(Speed, "speed", symbol, mul, div, aliases...)
}

var (
	MeterPerSecond   = speed("m/s", factors(Meter), factors(Second), "meter per second", "meters per second", "mps")
	MeterPerMinute   = speed("m/min", factors(Meter), factors(Minute), "meter per minute", "meters per minute")
	KilometerPerHour = speed("km/h", factors(Kilometer), factors(Hour), "kph", "kmh", "kilometer per hour", "kilometers per hour")
	CentimeterPerSec = speed("cm/s", factors(Centimeter), factors(Second), "centimeter per second")
	MillimeterPerSec = speed("mm/s", factors(Millimeter), factors(Second), "millimeter per second")
	MilePerHour      = speed("mi/h", factors(Mile), factors(Hour), "mph", "mile per hour", "miles per hour")
	FootPerSecond    = speed("ft/s", factors(Foot), factors(Second), "fps", "foot per second", "feet per second")
	FootPerMinute    = speed("ft/min", factors(Foot), factors(Minute), "fpm", "foot per minute", "feet per minute")
	InchPerSecond    = speed("in/s", factors(Inch), factors(Second), "inch per second", "inches per second")
	Knot             = speed("kt", factors(NauticalMile), factors(Hour), "knot", "knots", "kn")
	SpeedOfLightUnit = speed("c", factors(SpeedOfLight, Meter), factors(Second), "speed of light", "lightspeed")
)

// Mach scales by the speed of sound resolved from the context.
var Mach = unit.MustNew("mach", Speed,
	unit.Signature(speedSignature),
	unit.Aliases("ma"),
	nonNegative("speed"),
	axiom.Scale(axiom.FromFormula(SpeedOfSound)),
)

func speedUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		MeterPerSecond, MeterPerMinute, KilometerPerHour, CentimeterPerSec,
		MillimeterPerSec, MilePerHour, FootPerSecond, FootPerMinute, InchPerSecond,
		Knot, SpeedOfLightUnit, Mach,
	}
}

// SpeedOfSound is the local speed of sound in m/s. A speed_of_sound_m_s
// context value wins; otherwise it follows 331.3·sqrt(1 + T/273.15) with
// T read from temp_c, temp_k, temp_f, temp_r or temp_re (first present),
// 15 °C by default and clamped at absolute zero.
var SpeedOfSound axiom.Formula = axiom.FormulaFunc(func(ctx unit.Context) (magnitude.Value, error) {
	if v, ok, err := ctx.Lookup("speed_of_sound_m_s"); ok || err != nil {
		return v, err
	}
	return soundFromTemperature.Eval(ctx)
})

var soundFromTemperature = axiom.Const(1).
	Add(ambientCelsius).
	Sqrt().
	Mul(SpeedOfSoundAt0C)

var ambientCelsius = axiom.FormulaFunc(func(ctx unit.Context) (magnitude.Value, error) {
	t, err := ambientTemperature(ctx)
	if err != nil {
		return magnitude.Value{}, err
	}
	t, err = magnitude.Apply(string(magnitude.OpMaximum), t, magnitude.Exact(AbsoluteZeroC))
	if err != nil {
		return magnitude.Value{}, err
	}
	return magnitude.Div(t, magnitude.Exact(AbsoluteZeroC.Neg()))
})

// ambientTemperature converts the first temperature key present to °C.
func ambientTemperature(ctx unit.Context) (magnitude.Value, error) {
	scales := []struct {
		key    string
		offset magnitude.Value
		mult   magnitude.Value
	}{
		{"temp_c", magnitude.Int(0), magnitude.Int(1)},
		{"temp_k", magnitude.Exact(AbsoluteZeroC), magnitude.Int(1)},
		{"temp_f", magnitude.Exact(FahrenheitOffset.Neg()), magnitude.Exact(FiveNinths)},
		{"temp_r", magnitude.Exact(RankineOffset.Neg()), magnitude.Exact(FiveNinths)},
		{"temp_re", magnitude.Int(0), magnitude.Exact(dec("1.25"))},
	}
	for _, s := range scales {
		v, ok, err := ctx.Lookup(s.key)
		if err != nil {
			return magnitude.Value{}, err
		}
		if !ok {
			continue
		}
		if v, err = magnitude.Add(v, s.offset); err != nil {
			return magnitude.Value{}, err
		}
		return magnitude.Mul(v, s.mult)
	}
	return magnitude.Exact(DefaultTemperature), nil
}

func force(symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return derived(Force, "force", symbol, mul, div, aliases...)
}

var (
	Newton        = force("N", factors(Kilogram, Meter), factors(Second, Second), "newton", "newtons")
	Kilonewton    = force("kN", factors(1000, Newton), nil, "kilonewton", "kilonewtons")
	Meganewton    = force("MN", factors(1_000_000, Newton), nil, "meganewton", "meganewtons")
	Dyne          = force("dyn", factors(Gram, Centimeter), factors(Second, Second), "dyne", "dynes")
	KilogramForce = force("kgf", factors(Kilogram, StandardGravity, Meter), factors(Second, Second), "kilogram-force", "kilopond", "kp")
	GramForce     = force("gf", factors(Gram, StandardGravity, Meter), factors(Second, Second), "gram-force", "pond")
	TonneForce    = force("tf", factors(Tonne, StandardGravity, Meter), factors(Second, Second), "tonne-force", "ton-force")
	PoundForce    = force("lbf", factors(Pound, StandardGravity, Meter), factors(Second, Second), "pound-force", "pounds-force")
	OunceForce    = force("ozf", factors(Ounce, StandardGravity, Meter), factors(Second, Second), "ounce-force")
	Poundal       = force("pdl", factors(Pound, Foot), factors(Second, Second), "poundal", "poundals")
)

func forceUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Newton, Kilonewton, Meganewton, Dyne, KilogramForce, GramForce,
		TonneForce, PoundForce, OunceForce, Poundal,
	}
}

func energy(symbol string, mul []any, aliases ...string) *unit.Descriptor {
	return derived(Energy, "energy", symbol, mul, nil, aliases...)
}

var (
	Joule        = energy("J", factors(Newton, Meter), "joule", "joules")
	Kilojoule    = energy("kJ", factors(1000, Joule), "kilojoule", "kilojoules")
	Megajoule    = energy("MJ", factors(1_000_000, Joule), "megajoule", "megajoules")
	Gigajoule    = energy("GJ", factors(1_000_000_000, Joule), "gigajoule", "gigajoules")
	Calorie      = energy("cal", factors(CalorieToJoule, Joule), "calorie", "calories", "gram calorie")
	Kilocalorie  = energy("kcal", factors(CalorieToJoule, 1000, Joule), "kilocalorie", "kilocalories", "food calorie")
	WattHour     = energy("Wh", factors(HourToSecond, Joule), "watt-hour", "watthour", "watt hours")
	KilowattHour = energy("kWh", factors(HourToSecond, 1000, Joule), "kilowatt-hour", "kilowatt hour", "kilowatt hours")
	MegawattHour = energy("MWh", factors(HourToSecond, 1_000_000, Joule), "megawatt-hour", "megawatt hour")
	BTU          = energy("BTU", factors(BTUToJoule, Joule), "british thermal unit")
	FootPound    = energy("ft-lbf", factors(PoundForce, Foot), "foot-pound", "foot-pounds", "ft·lbf", "ftlbf")
	ElectronVolt = energy("eV", factors(ElectronVoltToJoule, Joule), "electronvolt", "electronvolts")
)

func energyUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Joule, Kilojoule, Megajoule, Gigajoule, Calorie, Kilocalorie, WattHour,
		KilowattHour, MegawattHour, BTU, FootPound, ElectronVolt,
	}
}

func power(symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return derived(Power, "power", symbol, mul, div, aliases...)
}

var (
	Watt             = power("W", factors(Joule), factors(Second), "watt", "watts", "j/s", "joule per second")
	Milliwatt        = power("mW", factors(dec("0.001"), Watt), nil, "milliwatt", "milliwatts")
	Kilowatt         = power("kW", factors(1000, Watt), nil, "kilowatt", "kilowatts")
	Megawatt         = power("MW", factors(1_000_000, Watt), nil, "megawatt", "megawatts")
	Gigawatt         = power("GW", factors(1_000_000_000, Watt), nil, "gigawatt", "gigawatts")
	Horsepower       = power("hp", factors(550, FootPound), factors(Second), "horsepower", "mechanical horsepower")
	MetricHorsepower = power("PS", factors(75, KilogramForce, Meter), factors(Second), "metric horsepower", "pferdestarke")
	BTUPerHour       = power("BTU/h", factors(BTU), factors(Hour), "btuh", "btu per hour", "btu/hr")
	TonRefrigeration = power("TR", factors(12000, BTUPerHour), nil, "ton of refrigeration", "refrigeration ton")
)

func powerUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Watt, Milliwatt, Kilowatt, Megawatt, Gigawatt, Horsepower,
		MetricHorsepower, BTUPerHour, TonRefrigeration,
	}
}

// absolute pressure is referenced to vacuum and bounded at zero.
func absolute(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return unit.MustNew(symbol, Pressure,
		unit.Signature(pressureSignature),
		unit.Multiplier(mult),
		unit.Aliases(aliases...),
		axiom.Bound(0, nil, "absolute pressure cannot drop below a perfect vacuum (0 Pa)"),
	)
}

// gauge pressure is shifted by the local atmospheric pressure.
func gauge(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return unit.MustNew(symbol, Pressure,
		unit.Signature(pressureSignature),
		unit.Multiplier(mult),
		unit.Aliases(aliases...),
		axiom.Shift(axiom.FromContext(AtmosphericPressureKey, StandardAtmosphere), axiom.ShiftAdd),
	)
}

var (
	Pascal      = absolute("Pa", 1, "pascal", "pascals")
	Hectopascal = absolute("hPa", 100, "hectopascal", "hectopascals")
	Kilopascal  = absolute("kPa", 1000, "kilopascal", "kilopascals")
	Megapascal  = absolute("MPa", 1_000_000, "megapascal", "megapascals")
	Gigapascal  = absolute("GPa", 1_000_000_000, "gigapascal", "gigapascals")
	Bar         = absolute("bar", 100_000, "bars", "bara")
	Millibar    = absolute("mbar", 100, "millibar", "millibars")
	Atmosphere  = absolute("atm", StandardAtmosphere, "atmosphere", "atmospheres")
	Torr        = absolute("torr", TorrToPascal, "mmhg", "millimeter of mercury")
	InchMercury = absolute("inHg", InHgToPascal, "inch of mercury", "inches of mercury")
	PSI         = absolute("psi", PSIToPascal, "psia", "pound per square inch", "pounds per square inch")
	KSI         = absolute("ksi", PSIToPascal.Mul(num(1000)), "kip per square inch")
	Barye       = absolute("Ba", dec("0.1"), "barye", "dyne/cm2")
	PSIG        = gauge("psig", PSIToPascal, "psi gauge")
	BarGauge    = gauge("barg", 100_000, "bar gauge")
	KPaGauge    = gauge("kPag", 1000, "kpa gauge")
)

func pressureUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Pascal, Hectopascal, Kilopascal, Megapascal, Gigapascal, Bar, Millibar,
		Atmosphere, Torr, InchMercury, PSI, KSI, Barye, PSIG, BarGauge, KPaGauge,
	}
}
