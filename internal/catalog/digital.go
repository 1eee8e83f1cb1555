package catalog

import "github.com/rannd1nt/phaethon/internal/unit"

func data(symbol string, mult any, aliases ...string) *unit.Descriptor {
	return linear(Data, "data size", symbol, mult, aliases...)
}

var (
	Byte     = data("B", 1, "byte", "bytes", "octet")
	Bit      = data("bit", BytesPerBit, "bits")
	Nibble   = data("nibble", dec("0.5"), "nibbles", "nybble")
	Kilobyte = data("KB", 1000, "kB", "kilobyte", "kilobytes")
	Megabyte = data("MB", 1_000_000, "megabyte", "megabytes")
	Gigabyte = data("GB", 1_000_000_000, "gigabyte", "gigabytes")
	Terabyte = data("TB", num(1_000_000_000_000), "terabyte", "terabytes")
	Petabyte = data("PB", num(1_000_000_000_000_000), "petabyte", "petabytes")
	Kibibyte = data("KiB", IECBase, "kibibyte", "kibibytes")
	Mebibyte = data("MiB", IECBase.Pow(num(2)), "mebibyte", "mebibytes")
	Gibibyte = data("GiB", IECBase.Pow(num(3)), "gibibyte", "gibibytes")
	Tebibyte = data("TiB", IECBase.Pow(num(4)), "tebibyte", "tebibytes")
	Pebibyte = data("PiB", IECBase.Pow(num(5)), "pebibyte", "pebibytes")
	Kilobit  = data("kbit", BytesPerBit.Mul(num(1000)), "Kb", "kilobit", "kilobits")
	Megabit  = data("Mbit", BytesPerBit.Mul(num(1_000_000)), "Mb", "megabit", "megabits")
	Gigabit  = data("Gbit", BytesPerBit.Mul(num(1_000_000_000)), "Gb", "gigabit", "gigabits")
	Terabit  = data("Tbit", BytesPerBit.Mul(num(1_000_000_000_000)), "Tb", "terabit", "terabits")
)

func dataUnits() []*unit.Descriptor {
	return []*unit.Descriptor{
		Byte, Bit, Nibble, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte,
		Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte, Kilobit, Megabit,
		Gigabit, Terabit,
	}
}

func frequency(symbol string, mul, div []any, aliases ...string) *unit.Descriptor {
	return derived(Frequency, "frequency", symbol, mul, div, aliases...)
}

var (
	Hertz     = frequency("Hz", nil, factors(Second), "hertz", "cycles per second", "cps")
	Kilohertz = frequency("kHz", factors(1000, Hertz), nil, "kilohertz")
	Megahertz = frequency("MHz", factors(1_000_000, Hertz), nil, "megahertz")
	Gigahertz = frequency("GHz", factors(1_000_000_000, Hertz), nil, "gigahertz")
	RPM       = frequency("rpm", factors(Hertz), factors(60), "RPM", "r/min", "rev/min", "revolutions per minute")
	BPM       = frequency("bpm", factors(Hertz), factors(60), "BPM", "beats per minute")
)

func frequencyUnits() []*unit.Descriptor {
	return []*unit.Descriptor{Hertz, Kilohertz, Megahertz, Gigahertz, RPM, BPM}
}
