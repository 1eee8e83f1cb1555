package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rannd1nt/phaethon/internal/convert"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// Config is a definitions file: engine defaults plus custom dimensions
// and units layered over the built-in catalog.
type Config struct {
	Engine     EngineConfig      `toml:"engine"`
	Dimensions []DimensionConfig `toml:"dimension"`
	Units      []UnitConfig      `toml:"unit"`
}

type EngineConfig struct {
	Precision          int    `toml:"precision"`
	SignificantFigures int    `toml:"significant_figures"`
	Rounding           string `toml:"rounding"`
	Mode               string `toml:"mode"`
	Output             string `toml:"output"`
	Delimiter          string `toml:"delimiter"`
	DivisionPrecision  int32  `toml:"division_precision"`
	AnonymousCache     int    `toml:"anonymous_cache"`
	// Builtin toggles registration of the built-in catalog. Nil means on.
	Builtin *bool `toml:"builtin"`
}

type DimensionConfig struct {
	Name      string         `toml:"name"`
	Signature map[string]int `toml:"signature"`
}

type UnitConfig struct {
	Symbol     string        `toml:"symbol"`
	Aliases    []string      `toml:"aliases"`
	Dimension  string        `toml:"dimension"`
	Multiplier any           `toml:"multiplier"`
	Offset     any           `toml:"offset"`
	Derive     *DeriveConfig `toml:"derive"`
	Bound      *BoundConfig  `toml:"bound"`
	Shift      *SourceConfig `toml:"shift"`
	Scale      *SourceConfig `toml:"scale"`
}

// DeriveConfig lists factors by alias (strings) or as plain numbers.
type DeriveConfig struct {
	Mul []any `toml:"mul"`
	Div []any `toml:"div"`
}

type BoundConfig struct {
	Min     any    `toml:"min"`
	Max     any    `toml:"max"`
	Message string `toml:"message"`
}

type SourceConfig struct {
	Key     string `toml:"key"`
	Default any    `toml:"default"`
	// Op is "add" (default) or "sub"; shift only.
	Op string `toml:"op"`
}

func Default() Config {
	return Config{Engine: EngineConfig{
		Precision:         convert.DefaultPrecision,
		Rounding:          string(convert.RoundHalfEven),
		Mode:              string(convert.ModeDecimal),
		Output:            string(convert.OutputRaw),
		DivisionPrecision: 32,
		AnonymousCache:    unit.DefaultAnonymousCache,
	}}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Decode parses raw TOML over Default and validates the result. Keys the
// schema does not know are rejected.
func Decode(raw string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(raw, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if err := ValidateEngine(cfg.Engine); err != nil {
		return fmt.Errorf("engine invalid: %w", err)
	}
	dims := make(map[string]bool, len(cfg.Dimensions))
	for i, d := range cfg.Dimensions {
		if err := ValidateDimension(d); err != nil {
			return fmt.Errorf("dimension[%d] invalid: %w", i, err)
		}
		name := strings.ToLower(strings.TrimSpace(d.Name))
		if dims[name] {
			return fmt.Errorf("dimension[%d] invalid: duplicate name %q", i, d.Name)
		}
		dims[name] = true
	}
	for i, u := range cfg.Units {
		if err := ValidateUnit(u); err != nil {
			return fmt.Errorf("unit[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func ValidateEngine(e EngineConfig) error {
	if _, err := e.Options(); err != nil {
		return err
	}
	if e.DivisionPrecision <= 0 {
		return fmt.Errorf("division_precision must be positive")
	}
	if e.AnonymousCache <= 0 {
		return fmt.Errorf("anonymous_cache must be positive")
	}
	return nil
}

func ValidateDimension(d DimensionConfig) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(d.Signature) == 0 {
		return fmt.Errorf("signature is required")
	}
	for base, exp := range d.Signature {
		if strings.TrimSpace(base) == "" {
			return fmt.Errorf("signature has an empty base name")
		}
		if exp == 0 {
			return fmt.Errorf("signature exponent for %q is zero", base)
		}
	}
	return nil
}

func ValidateUnit(u UnitConfig) error {
	if strings.TrimSpace(u.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if strings.TrimSpace(u.Dimension) == "" {
		return fmt.Errorf("dimension is required")
	}
	if u.Derive != nil {
		if u.Multiplier != nil || u.Offset != nil {
			return fmt.Errorf("derive excludes multiplier and offset")
		}
		if len(u.Derive.Mul) == 0 && len(u.Derive.Div) == 0 {
			return fmt.Errorf("derive needs mul or div factors")
		}
	}
	if u.Bound != nil && u.Bound.Min == nil && u.Bound.Max == nil {
		return fmt.Errorf("bound needs min or max")
	}
	for name, src := range map[string]*SourceConfig{"shift": u.Shift, "scale": u.Scale} {
		if src == nil {
			continue
		}
		if strings.TrimSpace(src.Key) == "" && src.Default == nil {
			return fmt.Errorf("%s needs a key or a default", name)
		}
	}
	if u.Shift != nil {
		switch strings.ToLower(strings.TrimSpace(u.Shift.Op)) {
		case "", "add", "sub":
		default:
			return fmt.Errorf("shift op must be add or sub, got %q", u.Shift.Op)
		}
	}
	if u.Scale != nil && u.Scale.Op != "" {
		return fmt.Errorf("scale does not take an op")
	}
	return nil
}

// Options maps the engine section onto conversion defaults.
func (e EngineConfig) Options() (convert.Options, error) {
	opts := convert.Defaults()
	set := []convert.Option{
		convert.WithPrecision(e.Precision),
	}
	if e.Mode != "" {
		set = append(set, convert.WithMode(convert.Mode(e.Mode)))
	}
	if e.Rounding != "" {
		set = append(set, convert.WithRounding(convert.Rounding(e.Rounding)))
	}
	if e.Output != "" {
		set = append(set, convert.WithOutput(convert.Output(e.Output)))
	}
	if e.SignificantFigures != 0 {
		set = append(set, convert.WithSignificantFigures(e.SignificantFigures))
	}
	if e.Delimiter != "" {
		set = append(set, convert.WithDelimiter(e.Delimiter))
	}
	opts = opts.Apply(set...)
	if err := opts.Validate(); err != nil {
		return convert.Options{}, err
	}
	return opts, nil
}

func (e EngineConfig) builtin() bool {
	return e.Builtin == nil || *e.Builtin
}

func signatureOf(d DimensionConfig) dimension.Signature {
	sig := dimension.Signature{}
	for base, exp := range d.Signature {
		sig = sig.Mul(dimension.Of(base, exp))
	}
	return sig
}
