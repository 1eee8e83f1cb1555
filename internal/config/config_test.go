package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rannd1nt/phaethon/internal/convert"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/quantity"
	"github.com/rannd1nt/phaethon/internal/testutil/testlog"
	"github.com/rannd1nt/phaethon/internal/unit"
	"github.com/rs/zerolog"
)

func buildTemplate(t *testing.T) *unit.Registry {
	t.Helper()
	cfg, err := Decode(Template())
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}
	reg, err := Build(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build template: %v", err)
	}
	return reg
}

func convertTo(t *testing.T, reg *unit.Registry, value any, from, to string) *quantity.Quantity {
	t.Helper()
	q, err := quantity.Parse(reg, value, from, nil)
	if err != nil {
		t.Fatalf("parse %v %s: %v", value, from, err)
	}
	out, err := q.To(to)
	if err != nil {
		t.Fatalf("%s -> %s: %v", from, to, err)
	}
	return out
}

func TestTemplateDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := Decode(Template())
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}
	if cfg.Engine.Precision != 9 || cfg.Engine.DivisionPrecision != 32 || cfg.Engine.AnonymousCache != 1024 {
		t.Fatalf("unexpected engine: %+v", cfg.Engine)
	}
	if len(cfg.Dimensions) != 1 || cfg.Dimensions[0].Name != "flow_rate" {
		t.Fatalf("unexpected dimensions: %+v", cfg.Dimensions)
	}
	if len(cfg.Units) != 4 {
		t.Fatalf("unexpected units: %d", len(cfg.Units))
	}
	if cfg.Units[1].Derive == nil || len(cfg.Units[1].Derive.Mul) != 1 {
		t.Fatalf("unexpected derive: %+v", cfg.Units[1].Derive)
	}
}

func TestTemplateBuildsWorkingUnits(t *testing.T) {
	testlog.Start(t)
	reg := buildTemplate(t)

	if got := convertTo(t, reg, 60, "lpm", "m3/s").Exact().String(); got != "0.001" {
		t.Fatalf("60 lpm: got %s want 0.001", got)
	}
	if got := convertTo(t, reg, 1500, "mK", "K").Exact().String(); got != "1.5" {
		t.Fatalf("1500 mK: got %s want 1.5", got)
	}
	if got := convertTo(t, reg, 1, "atg", "Pa").Exact().String(); got != "199391.5" {
		t.Fatalf("1 atg: got %s want 199391.5", got)
	}
	if got := reg.ResolveSignature(dimension.Of("length", 3, "time", -1)); got != "flow_rate" {
		t.Fatalf("flow signature: got %q", got)
	}
	base, err := reg.BaseOf("flow_rate")
	if err != nil || base.Symbol() != "m3/s" {
		t.Fatalf("flow base: got %v err=%v", base, err)
	}
}

func TestTemplateBoundRejects(t *testing.T) {
	testlog.Start(t)
	reg := buildTemplate(t)
	_, err := quantity.Parse(reg, -1, "millikelvin", nil)
	if !errors.Is(err, unit.ErrAxiomViolation) {
		t.Fatalf("expected axiom violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "millikelvin cannot be negative") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTemplateShiftReadsContext(t *testing.T) {
	testlog.Start(t)
	reg := buildTemplate(t)
	q, err := quantity.Parse(reg, 0, "atg", unit.Context{"atmospheric_pressure": 90000})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pa, err := q.To("Pa")
	if err != nil {
		t.Fatalf("to Pa: %v", err)
	}
	if got := pa.Exact().String(); got != "90000" {
		t.Fatalf("0 atg at 90000: got %s", got)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	testlog.Start(t)
	_, err := Decode("[engine]\nprecison = 3\n")
	if err == nil || !strings.Contains(err.Error(), "engine.precison") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bad mode", "[engine]\nmode = \"fixed\"\n", "engine invalid"},
		{"bad rounding", "[engine]\nrounding = \"up\"\n", "engine invalid"},
		{"negative precision", "[engine]\nprecision = -1\n", "engine invalid"},
		{"zero division precision", "[engine]\ndivision_precision = 0\n", "division_precision"},
		{"zero cache", "[engine]\nanonymous_cache = 0\n", "anonymous_cache"},
		{"dimension without name", "[[dimension]]\nsignature = { length = 1 }\n", "name is required"},
		{"dimension without signature", "[[dimension]]\nname = \"x\"\n", "signature is required"},
		{"zero exponent", "[[dimension]]\nname = \"x\"\nsignature = { length = 0 }\n", "is zero"},
		{"duplicate dimension", "[[dimension]]\nname = \"x\"\nsignature = { a = 1 }\n[[dimension]]\nname = \"X\"\nsignature = { a = 1 }\n", "duplicate"},
		{"unit without symbol", "[[unit]]\ndimension = \"length\"\n", "symbol is required"},
		{"unit without dimension", "[[unit]]\nsymbol = \"x\"\n", "dimension is required"},
		{"derive with multiplier", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\nmultiplier = 2\n[unit.derive]\nmul = [\"m@length\"]\n", "excludes"},
		{"empty derive", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\n[unit.derive]\nmul = []\n", "needs mul or div"},
		{"open bound", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\n[unit.bound]\nmessage = \"m\"\n", "bound needs"},
		{"empty shift", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\n[unit.shift]\nop = \"add\"\n", "shift needs"},
		{"bad shift op", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\n[unit.shift]\nkey = \"k\"\nop = \"mul\"\n", "add or sub"},
		{"scale with op", "[[unit]]\nsymbol = \"x\"\ndimension = \"length\"\n[unit.scale]\nkey = \"k\"\nop = \"sub\"\n", "does not take an op"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.raw)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("got %v want error containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyResolvesDeriveFactors(t *testing.T) {
	testlog.Start(t)
	raw := `
[engine]
builtin = false

[[unit]]
symbol = "m"
dimension = "length"

[[unit]]
symbol = "s"
dimension = "time"

[[unit]]
symbol = "m/s"
dimension = "speed"
[unit.derive]
mul = ["m"]
div = ["s"]

[[unit]]
symbol = "dam/s"
dimension = "speed"
[unit.derive]
mul = [10, "m"]
div = ["s"]
`
	cfg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	reg, err := Build(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if reg.Len() != 4 {
		t.Fatalf("registry len: got %d want 4", reg.Len())
	}
	d, err := reg.Resolve("dam/s", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if d.Multiplier().String() != "10" || !d.IsDerived() {
		t.Fatalf("unexpected descriptor: mult=%s derived=%v", d.Multiplier(), d.IsDerived())
	}
	if got := d.Signature().Key(); got != dimension.Of("length", 1, "time", -1).Key() {
		t.Fatalf("signature: got %s", got)
	}
}

func TestApplyReportsAmbiguousFactor(t *testing.T) {
	testlog.Start(t)
	raw := `
[[unit]]
symbol = "m/mo"
dimension = "creep"
[unit.derive]
mul = ["m"]
div = ["mo"]
`
	cfg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err = Build(cfg, zerolog.Nop())
	if !errors.Is(err, unit.ErrAmbiguousUnit) {
		t.Fatalf("expected ambiguous unit, got %v", err)
	}
}

func TestApplyRejectsSignatureConflict(t *testing.T) {
	testlog.Start(t)
	raw := `
[[dimension]]
name = "speed"
signature = { length = 2 }
`
	cfg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, err = Build(cfg, zerolog.Nop())
	if !errors.Is(err, unit.ErrSignatureConflict) {
		t.Fatalf("expected signature conflict, got %v", err)
	}
}

func TestEngineOptions(t *testing.T) {
	testlog.Start(t)
	cfg, err := Decode("[engine]\nmode = \"float64\"\nprecision = 3\nrounding = \"half_up\"\noutput = \"tag\"\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	opts, err := cfg.Engine.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Mode != convert.ModeFloat || opts.Precision != 3 || opts.Rounding != convert.RoundHalfUp || opts.Output != convert.OutputTag {
		t.Fatalf("unexpected options: %+v", opts)
	}

	bad := Default().Engine
	bad.Rounding = "ceiling"
	if _, err := bad.Options(); !errors.Is(err, unit.ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
}

func TestLoadWrapsErrors(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("expected load failure, got %v", err)
	}
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("[engine\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config parse failed") {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

func TestWriteTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "units.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil || !strings.Contains(err.Error(), "config already exists") {
		t.Fatalf("expected refusal, got %v", err)
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode: got %v want 0600", info.Mode().Perm())
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("load written template: %v", err)
	}
}
