package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/rannd1nt/phaethon/internal/logging"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/observability"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Engine starts conversions against one registry.
type Engine struct {
	reg      *unit.Registry
	defaults Options
	logger   *zerolog.Logger
}

type EngineOption func(*Engine)

// WithDefaults replaces the options every builder starts from.
func WithDefaults(o Options) EngineOption {
	return func(e *Engine) { e.defaults = o }
}

func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) { e.logger = &logger }
}

func New(reg *unit.Registry, opts ...EngineOption) *Engine {
	e := &Engine{reg: reg, defaults: Defaults()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Registry() *unit.Registry { return e.reg }

func (e *Engine) Defaults() Options { return e.defaults }

func (e *Engine) log() zerolog.Logger {
	if e.logger != nil {
		return *e.logger
	}
	return logging.Component("convert")
}

// Convert begins a conversion of value expressed in the source alias.
func (e *Engine) Convert(value any, source string) *Builder {
	return &Builder{
		engine: e,
		value:  value,
		source: strings.TrimSpace(source),
		opts:   e.defaults,
		ctx:    unit.Context{},
	}
}

// Builder accumulates target, options and context until Resolve. A
// builder is not safe for concurrent mutation; Resolve does not modify it.
type Builder struct {
	engine *Engine
	value  any
	source string
	target string
	opts   Options
	ctx    unit.Context
}

func (b *Builder) To(target string) *Builder {
	b.target = strings.TrimSpace(target)
	return b
}

func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = b.opts.Apply(opts...)
	return b
}

// WithContext merges ctx into the conversion context; later calls win.
func (b *Builder) WithContext(ctx unit.Context) *Builder {
	b.ctx = ctx.Merge(b.ctx)
	return b
}

func (b *Builder) Options() Options { return b.opts }

func (b *Builder) String() string {
	if b.target == "" {
		return fmt.Sprintf("pending %v %s -> ?", b.value, b.source)
	}
	r, err := b.Resolve()
	if err != nil {
		return "error: " + err.Error()
	}
	return r.Text
}

// Result is a resolved conversion.
type Result struct {
	Source *unit.Descriptor
	Target *unit.Descriptor
	// Converted is the unrounded magnitude in the target unit.
	Converted magnitude.Value
	// Value is Converted after precision and significant-figure rounding.
	Value   magnitude.Value
	Text    string
	Options Options
}

func (r Result) String() string { return r.Text }

func (r Result) Float() (float64, error) { return r.Value.Float64() }

func (r Result) Decimal() (decimal.Decimal, error) { return r.Value.Decimal() }

// Resolve runs the conversion and renders it per the builder's options.
func (b *Builder) Resolve() (res Result, err error) {
	start := time.Now()
	opts := b.opts.normalized()
	dim := "unknown"
	defer func() {
		elapsed := time.Since(start)
		observability.RecordConversion(dim, string(opts.Mode), elapsed, err)
		observability.LogConversion(b.engine.log(), observability.ConversionEvent{
			Source:    b.source,
			Target:    b.target,
			Dimension: dim,
			Mode:      string(opts.Mode),
			Duration:  elapsed,
			Err:       err,
		})
	}()

	if err = opts.Validate(); err != nil {
		return Result{}, err
	}
	if b.target == "" {
		return Result{}, unit.ConversionError{Op: "resolve", Reason: "target unit missing; call To before Resolve"}
	}
	src, dst, err := b.engine.pair(b.source, b.target)
	if err != nil {
		return Result{}, err
	}
	dim = src.Dimension()

	converted, err := b.compute(src, dst, opts.Mode)
	if err != nil {
		return Result{}, err
	}
	value := converted
	if opts.Output != OutputExact {
		value = round(converted, opts)
	}
	return Result{
		Source:    src,
		Target:    dst,
		Converted: converted,
		Value:     value,
		Text:      b.render(value, opts),
		Options:   opts,
	}, nil
}

// compute converts a scalar; float64 mode moves the input to the float
// domain before any arithmetic.
func (b *Builder) compute(src, dst *unit.Descriptor, mode Mode) (magnitude.Value, error) {
	v, err := magnitude.Parse(b.value)
	if err != nil {
		return magnitude.Value{}, unit.ConversionError{Op: "resolve", Reason: fmt.Sprintf("invalid input %v", b.value), Err: err}
	}
	if !v.IsScalar() {
		return magnitude.Value{}, unit.ConversionError{Op: "resolve", Reason: "the conversion builder takes a scalar; use quantity.Quantity for vectors"}
	}
	if mode == ModeFloat {
		f, err := v.Float64()
		if err != nil {
			return magnitude.Value{}, unit.ConversionError{Op: "resolve", Err: err}
		}
		v = magnitude.Float(f)
	}
	q, err := quantity.New(v, src, quantity.WithContext(b.ctx), quantity.WithRegistry(b.engine.reg))
	if err != nil {
		return magnitude.Value{}, err
	}
	out, err := q.To(dst)
	if err != nil {
		return magnitude.Value{}, err
	}
	return out.Exact(), nil
}

func round(v magnitude.Value, opts Options) magnitude.Value {
	if v.IsExact() {
		d, _ := v.Decimal()
		d = withPrecision(d, opts.Precision, opts.Rounding)
		if opts.SignificantFigures > 0 {
			d = withSigFigs(d, opts.SignificantFigures, opts.Rounding)
		}
		return magnitude.Exact(d)
	}
	f, _ := v.Float64()
	f = roundFloat(f, opts.Precision, opts.Rounding)
	if opts.SignificantFigures > 0 {
		f = floatSigFigs(f, opts.SignificantFigures, opts.Rounding)
	}
	return magnitude.Float(f)
}

func (b *Builder) render(v magnitude.Value, opts Options) string {
	text := number(v, opts)
	if !opts.ScientificNotation {
		text = group(text, opts.Delimiter)
	}
	switch opts.Output {
	case OutputTag:
		return text + " " + b.target
	case OutputVerbose:
		return input(b.value, opts.Delimiter) + " " + b.source + " = " + text + " " + b.target
	default:
		return text
	}
}

func number(v magnitude.Value, opts Options) string {
	d, _ := v.Decimal()
	if opts.ScientificNotation {
		digits := opts.Precision
		if opts.SignificantFigures > 0 {
			digits = opts.SignificantFigures - 1
		}
		return scientific(d, digits, opts.Rounding)
	}
	if !v.IsExact() {
		f, _ := v.Float64()
		return fixedFloat(f)
	}
	if opts.SignificantFigures > 0 {
		places := int32(opts.SignificantFigures) - (adjusted(d) + 1)
		if places < 0 {
			places = 0
		}
		return trimZeros(d.StringFixed(places))
	}
	return trimZeros(d.String())
}

func input(raw any, sep string) string {
	v, err := magnitude.Parse(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}
	return group(v.String(), sep)
}
