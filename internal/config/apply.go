package config

import (
	"fmt"
	"strings"

	"github.com/rannd1nt/phaethon/internal/axiom"
	"github.com/rannd1nt/phaethon/internal/catalog"
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/rs/zerolog"
)

// Build creates a registry from cfg: the built-in catalog unless the
// engine disables it, then the custom definitions. The division
// precision is applied process-wide.
func Build(cfg Config, logger zerolog.Logger) (*unit.Registry, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	magnitude.DivisionPrecision = cfg.Engine.DivisionPrecision
	reg := unit.NewRegistry(
		unit.WithAnonymousCache(cfg.Engine.AnonymousCache),
		unit.WithLogger(logger),
	)
	if cfg.Engine.builtin() {
		if err := catalog.Register(reg); err != nil {
			return nil, err
		}
	}
	if err := Apply(cfg, reg); err != nil {
		return nil, err
	}
	logger.Info().
		Int("descriptors", reg.Len()).
		Int("custom_units", len(cfg.Units)).
		Int("custom_dimensions", len(cfg.Dimensions)).
		Msg("registry built")
	return reg, nil
}

// Apply records the custom dimensions and registers the custom units in
// file order, so a derive may reference units defined above it.
func Apply(cfg Config, reg *unit.Registry) error {
	for i, d := range cfg.Dimensions {
		if err := reg.RecordSignature(signatureOf(d), d.Name); err != nil {
			return fmt.Errorf("dimension[%d] %s: %w", i, d.Name, err)
		}
	}
	for i, u := range cfg.Units {
		d, err := BuildUnit(u, reg)
		if err != nil {
			return fmt.Errorf("unit[%d]: %w", i, err)
		}
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("unit[%d]: %w", i, err)
		}
	}
	return nil
}

// BuildUnit turns one [[unit]] table into a descriptor. Derive factors
// are resolved against reg; a factor written "alias@dimension" is
// resolved within that dimension.
func BuildUnit(u UnitConfig, reg *unit.Registry) (*unit.Descriptor, error) {
	var opts []unit.Option
	if len(u.Aliases) > 0 {
		opts = append(opts, unit.Aliases(u.Aliases...))
	}
	if u.Derive != nil {
		mul, err := factors(u.Derive.Mul, reg)
		if err != nil {
			return nil, fmt.Errorf("%s: derive mul: %w", u.Symbol, err)
		}
		div, err := factors(u.Derive.Div, reg)
		if err != nil {
			return nil, fmt.Errorf("%s: derive div: %w", u.Symbol, err)
		}
		opts = append(opts, axiom.Derive(mul, div))
	} else {
		if sig, ok := reg.SignatureFor(u.Dimension); ok {
			opts = append(opts, unit.Signature(sig))
		}
		if u.Multiplier != nil {
			opts = append(opts, unit.Multiplier(u.Multiplier))
		}
		if u.Offset != nil {
			opts = append(opts, unit.Offset(u.Offset))
		}
	}
	if u.Bound != nil {
		opts = append(opts, axiom.Bound(u.Bound.Min, u.Bound.Max, u.Bound.Message))
	}
	if u.Shift != nil {
		op := axiom.ShiftAdd
		if strings.EqualFold(strings.TrimSpace(u.Shift.Op), "sub") {
			op = axiom.ShiftSub
		}
		opts = append(opts, axiom.Shift(source(u.Shift), op))
	}
	if u.Scale != nil {
		opts = append(opts, axiom.Scale(source(u.Scale)))
	}
	return unit.New(u.Symbol, u.Dimension, opts...)
}

func source(s *SourceConfig) axiom.Source {
	return axiom.FromContext(strings.TrimSpace(s.Key), s.Default)
}

func factors(raw []any, reg *unit.Registry) ([]any, error) {
	out := make([]any, 0, len(raw))
	for _, f := range raw {
		alias, ok := f.(string)
		if !ok {
			out = append(out, f)
			continue
		}
		if _, err := magnitude.Parse(alias); err == nil {
			out = append(out, alias)
			continue
		}
		hint := ""
		if at := strings.LastIndex(alias, "@"); at > 0 {
			alias, hint = alias[:at], alias[at+1:]
		}
		d, err := reg.Resolve(alias, hint)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
