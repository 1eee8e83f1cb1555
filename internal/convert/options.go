package convert

import (
	"fmt"
	"strings"

	"github.com/rannd1nt/phaethon/internal/unit"
)

type Mode string

const (
	ModeDecimal Mode = "decimal"
	ModeFloat   Mode = "float64"
)

type Output string

const (
	// OutputRaw renders the bare number.
	OutputRaw Output = "raw"
	// OutputExact skips precision rounding and renders every digit.
	OutputExact   Output = "exact"
	OutputTag     Output = "tag"
	OutputVerbose Output = "verbose"
)

type Rounding string

const (
	RoundHalfEven Rounding = "half_even"
	RoundHalfUp   Rounding = "half_up"
)

const (
	DefaultPrecision = 9
	DefaultDelimiter = ","
)

// Options control computation and rendering. Precision counts
// significant digits in decimal mode and decimal places in float64 mode.
type Options struct {
	Mode               Mode
	Output             Output
	Rounding           Rounding
	Precision          int
	SignificantFigures int
	ScientificNotation bool
	Delimiter          string

	sigfigsSet bool
	delimSet   bool
}

// Defaults are decimal mode, raw output, half-even rounding and nine
// significant digits.
func Defaults() Options {
	return Options{
		Mode:      ModeDecimal,
		Output:    OutputRaw,
		Rounding:  RoundHalfEven,
		Precision: DefaultPrecision,
	}
}

type Option func(*Options)

func WithMode(m Mode) Option { return func(o *Options) { o.Mode = m } }

func WithOutput(out Output) Option { return func(o *Options) { o.Output = out } }

func WithRounding(r Rounding) Option { return func(o *Options) { o.Rounding = r } }

func WithPrecision(n int) Option { return func(o *Options) { o.Precision = n } }

// WithSignificantFigures enforces n significant figures on the result.
// n must be positive.
func WithSignificantFigures(n int) Option {
	return func(o *Options) {
		o.SignificantFigures = n
		o.sigfigsSet = true
	}
}

func WithScientificNotation(on bool) Option {
	return func(o *Options) { o.ScientificNotation = on }
}

// WithDelimiter sets the thousands separator. An empty separator turns
// grouping off.
func WithDelimiter(sep string) Option {
	return func(o *Options) {
		o.Delimiter = sep
		o.delimSet = true
	}
}

// Delimit toggles thousands grouping with DefaultDelimiter.
func Delimit(on bool) Option {
	if on {
		return WithDelimiter(DefaultDelimiter)
	}
	return WithDelimiter("")
}

// Apply returns o with opts applied in order.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// normalized folds accepted spellings onto the canonical names.
func (o Options) normalized() Options {
	o.Mode = Mode(strings.ToLower(strings.TrimSpace(string(o.Mode))))
	switch o.Mode {
	case "dec":
		o.Mode = ModeDecimal
	case "float":
		o.Mode = ModeFloat
	}
	o.Output = Output(strings.ToLower(strings.TrimSpace(string(o.Output))))
	o.Rounding = Rounding(strings.ToLower(strings.TrimSpace(string(o.Rounding))))
	return o
}

// Validate reports the first unusable option as a ConversionError.
func (o Options) Validate() error {
	o = o.normalized()
	switch o.Mode {
	case ModeDecimal, ModeFloat:
	default:
		return unit.ConversionError{Op: "options", Reason: fmt.Sprintf("computation mode %q is not recognized; use decimal or float64", o.Mode)}
	}
	switch o.Output {
	case OutputRaw, OutputExact, OutputTag, OutputVerbose:
	default:
		return unit.ConversionError{Op: "options", Reason: fmt.Sprintf("output %q is not recognized; use raw, exact, tag or verbose", o.Output)}
	}
	switch o.Rounding {
	case RoundHalfEven, RoundHalfUp:
	default:
		return unit.ConversionError{Op: "options", Reason: fmt.Sprintf("rounding %q is not recognized; use half_even or half_up", o.Rounding)}
	}
	if o.Precision < 0 {
		return unit.ConversionError{Op: "options", Reason: fmt.Sprintf("precision must not be negative, got %d", o.Precision)}
	}
	if o.SignificantFigures < 0 || (o.sigfigsSet && o.SignificantFigures == 0) {
		return unit.ConversionError{Op: "options", Reason: fmt.Sprintf("significant figures must be a positive integer, got %d", o.SignificantFigures)}
	}
	return nil
}
