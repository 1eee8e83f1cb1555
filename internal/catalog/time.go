package catalog

import (
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

func duration(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return linear(Time, "elapsed time", symbol, mult, aliases...)
}

var (
	Second      = duration("s", 1, "sec", "secs", "second", "seconds")
	Millisecond = duration("ms", dec("0.001"), "millisecond", "milliseconds", "millis")
	Microsecond = duration("µs", dec("1e-6"), "us", "μs", "microsecond", "microseconds")
	Nanosecond  = duration("ns", dec("1e-9"), "nanosecond", "nanoseconds")
	Minute      = duration("min", MinuteToSecond, "minute", "minutes")
	Hour        = duration("h", HourToSecond, "hr", "hrs", "hour", "hours")
	Day         = duration("d", DayToSecond, "day", "days")
	Week        = duration("w", WeekToSecond, "wk", "week", "weeks")
	Month       = duration("mo", JulianMonthSec, "m", "month", "months")
	Quarter     = duration("quarter", JulianMonthSec.Mul(num(3)), "quarters", "trimester")
	Semester    = duration("semester", JulianMonthSec.Mul(num(6)), "semesters")
	Year        = duration("y", JulianYearToSec, "yr", "year", "years")
	Decade      = duration("decade", JulianYearToSec.Mul(num(10)), "decades")
	Century     = duration("century", JulianYearToSec.Mul(num(100)), "centuries")
	Millennium  = duration("millennium", JulianYearToSec.Mul(num(1000)), "millennia")
)

func timeUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Second, Millisecond, Microsecond, Nanosecond, Minute, Hour, Day, Week,
		Month, Quarter, Semester, Year, Decade, Century, Millennium,
	}
}

// Span is one step of the natural-language duration breakdown.
type Span struct {
	Name    string
	Seconds decimal.Decimal
}

// FlexHierarchy lists the breakdown steps from largest to smallest.
func FlexHierarchy() []Span {
	return []Span{
		{"millennium", JulianYearToSec.Mul(num(1000))},
		{"century", JulianYearToSec.Mul(num(100))},
		{"decade", JulianYearToSec.Mul(num(10))},
		{"year", JulianYearToSec},
		{"month", JulianMonthSec},
		{"week", WeekToSecond},
		{"day", DayToSecond},
		{"hour", HourToSecond},
		{"minute", MinuteToSecond},
		{"second", num(1)},
	}
}
