package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxQuantizePlaces caps precision rounding; beyond it the value is kept as is.
const maxQuantizePlaces = 50

func roundDecimal(d decimal.Decimal, places int32, r Rounding) decimal.Decimal {
	if r == RoundHalfUp {
		return d.Round(places)
	}
	return d.RoundBank(places)
}

// adjusted is the power of ten of the most significant digit.
func adjusted(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	return int32(d.NumDigits()) + d.Exponent() - 1
}

// withPrecision keeps prec significant digits.
func withPrecision(d decimal.Decimal, prec int, r Rounding) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := int32(prec) - (adjusted(d) + 1)
	if places < 0 || places > maxQuantizePlaces {
		return d
	}
	return roundDecimal(d, places, r)
}

func withSigFigs(d decimal.Decimal, sig int, r Rounding) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	return roundDecimal(d, int32(sig)-adjusted(d)-1, r)
}

func roundFloat(f float64, places int, r Rounding) float64 {
	scale := math.Pow10(places)
	scaled := f * scale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return f
	}
	if r == RoundHalfUp {
		return math.Round(scaled) / scale
	}
	return math.RoundToEven(scaled) / scale
}

func floatSigFigs(f float64, sig int, r Rounding) float64 {
	if f == 0 {
		return 0
	}
	places := -int(math.Floor(math.Log10(math.Abs(f)))) + sig - 1
	return roundFloat(f, places, r)
}

// scientific renders d as mantissa with digits fraction digits and a
// signed exponent, e.g. 1.500E+3.
func scientific(d decimal.Decimal, digits int, r Rounding) string {
	exp := adjusted(d)
	mant := roundDecimal(d.Shift(-exp), int32(digits), r)
	if mant.Abs().GreaterThanOrEqual(decimal.NewFromInt(10)) {
		exp++
		mant = roundDecimal(d.Shift(-exp), int32(digits), r)
	}
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return mant.StringFixed(int32(digits)) + "E" + sign + strconv.Itoa(int(exp))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// group inserts sep between thousands of the integer part.
func group(s, sep string) string {
	if sep == "" {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

func fixedFloat(f float64) string {
	return trimZeros(strconv.FormatFloat(f, 'f', -1, 64))
}
