package catalog

import "github.com/rannd1nt/phaethon/internal/unit"

func length(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return linear(Length, "length", symbol, mult, aliases...)
}

var (
	Meter        = length("m", 1, "meter", "meters", "metre", "metres")
	Kilometer    = length("km", 1000, "kilometer", "kilometers", "kilometre")
	Decimeter    = length("dm", dec("0.1"), "decimeter", "decimeters")
	Centimeter   = length("cm", dec("0.01"), "centimeter", "centimeters", "centimetre")
	Millimeter   = length("mm", dec("0.001"), "millimeter", "millimeters", "millimetre")
	Micrometer   = length("µm", dec("1e-6"), "um", "micrometer", "micrometers", "micron")
	Nanometer    = length("nm", dec("1e-9"), "nanometer", "nanometers")
	Picometer    = length("pm", dec("1e-12"), "picometer", "picometers")
	Angstrom     = length("Å", dec("1e-10"), "angstrom", "angstroms")
	LightYear    = length("ly", LightYearMeter, "lightyear", "lightyears", "light year")
	AU           = length("au", AstronomicalUnit, "astronomical unit", "astronomicalunit")
	Parsec       = length("pc", ParsecMeter, "parsec", "parsecs")
	Inch         = length("in", InchToMeter, "inch", "inches")
	Foot         = length("ft", FootToMeter, "foot", "feet")
	Yard         = length("yd", FootToMeter.Mul(num(3)), "yard", "yards")
	Mile         = length("mi", MileToMeter, "mile", "miles")
	NauticalMile = length("nmi", NauticalMileMeter, "nautical mile", "nauticalmile", "nauticalmiles")
	Mil          = length("mil", ratio(InchToMeter, num(1000)), "thou")
	Hand         = length("hand", InchToMeter.Mul(num(4)), "hands")
	Chain        = length("chain", FootToMeter.Mul(num(66)), "chains")
	Furlong      = length("furlong", FootToMeter.Mul(num(660)), "furlongs")
	League       = length("league", MileToMeter.Mul(num(3)), "leagues")
	Point        = length("pt", ratio(InchToMeter, num(72)), "point", "points")
)

func lengthUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Meter, Kilometer, Decimeter, Centimeter, Millimeter, Micrometer, Nanometer,
		Picometer, Angstrom, LightYear, AU, Parsec, Inch, Foot, Yard, Mile,
		NauticalMile, Mil, Hand, Chain, Furlong, League, Point,
	}
}

func mass(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return linear(Mass, "mass", symbol, mult, aliases...)
}

var (
	Kilogram  = mass("kg", 1, "kilogram", "kilograms")
	Gram      = mass("g", dec("0.001"), "gram", "grams")
	Milligram = mass("mg", dec("1e-6"), "milligram", "milligrams")
	Microgram = mass("µg", dec("1e-9"), "ug", "microgram", "micrograms")
	Tonne     = mass("t", 1000, "tonne", "tonnes", "metric ton", "metricton")
	Pound     = mass("lb", PoundToKg, "lbs", "pound", "pounds")
	Ounce     = mass("oz", OunceToKg, "ounce", "ounces")
	TroyOunce = mass("oz_t", TroyOunceToKg, "ozt", "troy ounce", "troy ounces")
	Stone     = mass("st", StoneToKg, "stone", "stones")
	Slug      = mass("slug", SlugToKg, "slugs")
	Carat     = mass("carat", CaratToKg, "carats", "ct")
	Grain     = mass("grain", GrainToKg, "grains", "gr")
	ShortTon  = mass("shortton", PoundToKg.Mul(num(2000)), "short ton", "us ton")
	LongTon   = mass("longton", PoundToKg.Mul(num(2240)), "long ton", "imperial ton")
)

func massUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Kilogram, Gram, Milligram, Microgram, Tonne, Pound, Ounce, TroyOunce,
		Stone, Slug, Carat, Grain, ShortTon, LongTon,
	}
}

func area(symbol string, mul []any, aliases ...string) *unit.Descriptor {
	return derived(Area, "area", symbol, mul, nil, aliases...)
}

var (
	SquareMeter      = area("m²", factors(Meter, Meter), "m2", "m^2", "sqm", "square meter", "square meters")
	SquareCentimeter = area("cm²", factors(Centimeter, Centimeter), "cm2", "cm^2", "square centimeter")
	SquareMillimeter = area("mm²", factors(Millimeter, Millimeter), "mm2", "mm^2", "square millimeter")
	SquareKilometer  = area("km²", factors(Kilometer, Kilometer), "km2", "km^2", "square kilometer")
	SquareInch       = area("sq_in", factors(Inch, Inch), "in²", "in2", "square inch", "square inches")
	SquareFoot       = area("sq_ft", factors(Foot, Foot), "ft²", "ft2", "square foot", "square feet")
	SquareYard       = area("sq_yd", factors(Yard, Yard), "yd²", "yd2", "square yard", "square yards")
	SquareMile       = area("sq_mi", factors(Mile, Mile), "mi²", "mi2", "square mile", "square miles")
	Hectare          = area("ha", factors(100, Meter, 100, Meter), "hectare", "hectares")
	Are              = area("a", factors(10, Meter, 10, Meter), "are", "ares")
	Acre             = area("ac", factors(AcreToSquareMeter, Meter, Meter), "acre", "acres")
)

func areaUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		SquareMeter, SquareCentimeter, SquareMillimeter, SquareKilometer, SquareInch,
		SquareFoot, SquareYard, SquareMile, Hectare, Are, Acre,
	}
}

func volume(symbol string, mul []any, aliases ...string) *unit.Descriptor {
	return derived(Volume, "volume", symbol, mul, nil, aliases...)
}

func cube(d *unit.Descriptor) []any { return factors(d, d, d) }

var (
	CubicMeter      = volume("m³", cube(Meter), "m3", "m^3", "cubic meter", "cubic meters")
	CubicDecimeter  = volume("dm³", cube(Decimeter), "dm3", "cubic decimeter")
	CubicCentimeter = volume("cm³", cube(Centimeter), "cm3", "cc", "cubic centimeter", "cubic centimeters")
	CubicMillimeter = volume("mm³", cube(Millimeter), "mm3", "cubic millimeter")
	CubicKilometer  = volume("km³", cube(Kilometer), "km3", "cubic kilometer")
	CubicInch       = volume("in³", cube(Inch), "in3", "cubic inch", "cubic inches")
	CubicFoot       = volume("ft³", cube(Foot), "ft3", "cubic foot", "cubic feet")
	CubicYard       = volume("yd³", cube(Yard), "yd3", "cubic yard", "cubic yards")
	Liter           = volume("l", factors(LiterToCubicMeter, CubicMeter), "L", "liter", "liters", "litre", "litres")
	Milliliter      = volume("ml", factors(dec("0.001"), Liter), "mL", "milliliter", "milliliters")
	Centiliter      = volume("cl", factors(dec("0.01"), Liter), "centiliter", "centiliters")
	Deciliter       = volume("dl", factors(dec("0.1"), Liter), "deciliter", "deciliters")
	Hectoliter      = volume("hl", factors(100, Liter), "hectoliter", "hectoliters")
	USGallon        = volume("gal", factors(USGallonCubicMeter, CubicMeter), "gallon", "gallons", "us gal")
	USQuart         = volume("qt", factors(dec("0.25"), USGallon), "quart", "quarts")
	USPint          = volume("pint", factors(dec("0.125"), USGallon), "pints")
	USCup           = volume("cup", factors(dec("0.0625"), USGallon), "cups")
	USFluidOunce    = volume("floz", factors(ratio(num(1), num(128)), USGallon), "fl oz", "fluid ounce", "fluid ounces")
	Tablespoon      = volume("tbsp", factors(ratio(num(1), num(256)), USGallon), "tablespoon", "tablespoons")
	Teaspoon        = volume("tsp", factors(ratio(num(1), num(768)), USGallon), "teaspoon", "teaspoons")
	UKGallon        = volume("uk gal", factors(UKGallonCubicMeter, CubicMeter), "imperial gallon", "imperial gallons")
	OilBarrel       = volume("bbl", factors(42, USGallon), "barrel", "barrels", "oil barrel")
)

func volumeUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		CubicMeter, CubicDecimeter, CubicCentimeter, CubicMillimeter, CubicKilometer,
		CubicInch, CubicFoot, CubicYard, Liter, Milliliter, Centiliter, Deciliter,
		Hectoliter, USGallon, USQuart, USPint, USCup, USFluidOunce, Tablespoon,
		Teaspoon, UKGallon, OilBarrel,
	}
}

func density(symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return derived(Density, "density", symbol, mul, div, aliases...)
}

var (
	KilogramPerCubicMeter  = density("kg/m³", factors(Kilogram), factors(CubicMeter), "kg/m3", "kg/m^3", "kilogram per cubic meter")
	GramPerCubicCentimeter = density("g/cm³", factors(Gram), factors(CubicCentimeter), "g/cm3", "g/cc", "gram per cubic centimeter")
	GramPerMilliliter      = density("g/ml", factors(Gram), factors(Milliliter), "g/mL", "gram per milliliter")
	KilogramPerLiter       = density("kg/l", factors(Kilogram), factors(Liter), "kg/L", "kilogram per liter")
	PoundPerCubicFoot      = density("lb/ft³", factors(Pound), factors(CubicFoot), "lb/ft3", "pound per cubic foot")
	PoundPerGallon         = density("lb/gal", factors(Pound), factors(USGallon), "pound per gallon")
)

func densityUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		KilogramPerCubicMeter, GramPerCubicCentimeter, GramPerMilliliter,
		KilogramPerLiter, PoundPerCubicFoot, PoundPerGallon,
	}
}
