package catalog

import (
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func num(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func ratio(a, b decimal.Decimal) decimal.Decimal {
	return magnitude.Quo(a, b)
}

var (
	StandardGravity    = dec("9.80665")
	StandardAtmosphere = dec("101325")
	AbsoluteZeroC      = dec("-273.15")
	AbsoluteZeroF      = dec("-459.67")
	AbsoluteZeroRe     = dec("-218.52")
	FahrenheitOffset   = dec("32")
	RankineOffset      = dec("491.67")
	FiveNinths         = ratio(num(5), num(9))

	InchToMeter        = dec("0.0254")
	FootToMeter        = dec("0.3048")
	MileToMeter        = dec("1609.344")
	NauticalMileMeter  = dec("1852")
	LightYearMeter     = dec("9460730472580800")
	AstronomicalUnit   = dec("149597870700")
	ParsecMeter        = dec("30856775814913673")
	PoundToKg          = dec("0.45359237")
	OunceToKg          = ratio(PoundToKg, num(16))
	StoneToKg          = PoundToKg.Mul(num(14))
	TroyOunceToKg      = dec("0.0311034768")
	SlugToKg           = dec("14.5939029372")
	CaratToKg          = dec("0.0002")
	GrainToKg          = ratio(PoundToKg, num(7000))
	AcreToSquareMeter  = dec("4046.8564224")
	LiterToCubicMeter  = dec("0.001")
	USGallonCubicMeter = dec("0.003785411784")
	UKGallonCubicMeter = dec("0.00454609")

	MinuteToSecond  = num(60)
	HourToSecond    = num(3600)
	DayToSecond     = num(86400)
	WeekToSecond    = num(604800)
	JulianYearToSec = DayToSecond.Mul(dec("365.25"))
	JulianMonthSec  = ratio(JulianYearToSec, num(12))

	PSIToPascal  = ratio(PoundToKg.Mul(StandardGravity), InchToMeter.Mul(InchToMeter))
	TorrToPascal = ratio(StandardAtmosphere, num(760))
	InHgToPascal = dec("3386.389")

	CalorieToJoule      = dec("4.184")
	BTUToJoule          = dec("1055.05585262")
	ElectronVoltToJoule = dec("1.602176634e-19")

	SpeedOfLight       = dec("299792458")
	SpeedOfSoundAt0C   = dec("331.3")
	DefaultTemperature = dec("15")

	BytesPerBit = dec("0.125")
	IECBase     = num(1024)
)
