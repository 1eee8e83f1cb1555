package convert

import (
	"fmt"
	"strings"

	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/shopspring/decimal"
)

var flexEpsilon = decimal.RequireFromString("0.0001")

// Flex renders the source duration in natural language, e.g.
// "1 year 2 months 5 days". lower names the largest span emitted and
// upper the smallest; empty means unbounded. Counts use the builder's
// delimiter, a comma unless one was set. Only the time dimension is
// supported.
func (b *Builder) Flex(lower, upper string) (string, error) {
	if b.engine.reg == nil {
		return "", unit.ConversionError{Op: "flex", Reason: "no registry configured"}
	}
	src, err := b.engine.reg.Resolve(b.source, catalog.Time)
	if err != nil {
		if _, other := b.engine.reg.Resolve(b.source, ""); other == nil {
			return "", unit.ConversionError{Op: "flex", Reason: fmt.Sprintf("unit %q is not a time unit; flex is exclusive to the time dimension", b.source)}
		}
		return "", err
	}

	spans := catalog.FlexHierarchy()
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}
	from, to := 0, len(spans)-1
	if lower != "" {
		if from = lookupSpan(names, lower); from < 0 {
			return "", unit.ConversionError{Op: "flex", Reason: fmt.Sprintf("unknown span %q", lower)}
		}
	}
	if upper != "" {
		if to = lookupSpan(names, upper); to < 0 {
			return "", unit.ConversionError{Op: "flex", Reason: fmt.Sprintf("unknown span %q", upper)}
		}
	}
	if from > to {
		return "", unit.ConversionError{Op: "flex", Reason: fmt.Sprintf("invalid range: %s is shorter than %s", lower, upper)}
	}

	v, err := magnitude.Parse(b.value)
	if err != nil {
		return "", unit.ConversionError{Op: "flex", Err: err}
	}
	if !v.IsScalar() {
		return "", unit.ConversionError{Op: "flex", Reason: "flex takes a scalar duration"}
	}
	q, err := quantity.New(v, src, quantity.WithContext(b.ctx))
	if err != nil {
		return "", err
	}
	base, err := q.BaseValue()
	if err != nil {
		return "", err
	}
	remaining, err := base.Decimal()
	if err != nil {
		return "", unit.ConversionError{Op: "flex", Err: err}
	}

	sep := DefaultDelimiter
	if b.opts.delimSet {
		sep = b.opts.Delimiter
	}
	var parts []string
	for _, s := range spans[from : to+1] {
		count := magnitude.Quo(remaining, s.Seconds).Floor()
		if count.IsPositive() {
			name := s.Name
			if count.GreaterThan(decimal.NewFromInt(1)) {
				name = plural(name)
			}
			parts = append(parts, group(count.String(), sep)+" "+name)
			remaining = remaining.Sub(count.Mul(s.Seconds))
		}
		if remaining.LessThan(flexEpsilon) {
			break
		}
	}
	if len(parts) == 0 {
		return "0 seconds", nil
	}
	return strings.Join(parts, " "), nil
}

func plural(name string) string {
	switch name {
	case "century":
		return "centuries"
	case "millennium":
		return "millennia"
	default:
		return name + "s"
	}
}
