package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rannd1nt/phaethon/internal/config"
	"github.com/rannd1nt/phaethon/internal/convert"
	"github.com/rannd1nt/phaethon/internal/logging"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// errUsage marks bad invocations; main exits 2 for them.
var errUsage = errors.New("usage")

// contextFlag collects repeated -ctx key=value pairs.
type contextFlag unit.Context

func (c contextFlag) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, c[k]))
	}
	return strings.Join(parts, ",")
}

func (c contextFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("context must be key=value, got %q", raw)
	}
	c[key] = strings.TrimSpace(value)
	return nil
}

type options struct {
	configPath string
	template   string
	force      bool
	validate   string
	list       bool
	dimension  string

	value  string
	from   string
	to     string
	flex   string
	mode   string
	output string
	round  string
	prec   int
	sig    int
	sci    bool
	delim  string
	ctx    contextFlag
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{ctx: contextFlag{}}
	fs := flag.NewFlagSet("unitctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "definitions file (TOML) layered over the built-in catalog")
	fs.StringVar(&opts.template, "template", "", "write a sample definitions file to this path")
	fs.BoolVar(&opts.force, "force", false, "overwrite an existing file with -template")
	fs.StringVar(&opts.validate, "validate", "", "validate a definitions file and build its registry")
	fs.BoolVar(&opts.list, "list", false, "list dimensions, or the units of -dimension")
	fs.StringVar(&opts.dimension, "dimension", "", "dimension for -list")
	fs.StringVar(&opts.value, "value", "", "magnitude to convert")
	fs.StringVar(&opts.from, "from", "", "source unit alias")
	fs.StringVar(&opts.to, "to", "", "target unit alias")
	fs.StringVar(&opts.flex, "flex", "", "render a time value as words between two units, e.g. year:second")
	fs.StringVar(&opts.mode, "mode", "", "computation mode: decimal|float64")
	fs.StringVar(&opts.output, "output", "", "output format: raw|exact|tag|verbose")
	fs.StringVar(&opts.round, "rounding", "", "rounding: half_even|half_up")
	fs.IntVar(&opts.prec, "precision", -1, "precision (significant digits in decimal mode, places in float64 mode)")
	fs.IntVar(&opts.sig, "sigfigs", 0, "significant figures")
	fs.BoolVar(&opts.sci, "sci", false, "scientific notation")
	fs.StringVar(&opts.delim, "delim", "", "thousands separator")
	fs.Var(opts.ctx, "ctx", "context value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	return opts, nil
}

func (o options) builderOptions() []convert.Option {
	var set []convert.Option
	if o.mode != "" {
		set = append(set, convert.WithMode(convert.Mode(o.mode)))
	}
	if o.output != "" {
		set = append(set, convert.WithOutput(convert.Output(o.output)))
	}
	if o.round != "" {
		set = append(set, convert.WithRounding(convert.Rounding(o.round)))
	}
	if o.prec >= 0 {
		set = append(set, convert.WithPrecision(o.prec))
	}
	if o.sig != 0 {
		set = append(set, convert.WithSignificantFigures(o.sig))
	}
	if o.sci {
		set = append(set, convert.WithScientificNotation(true))
	}
	if o.delim != "" {
		set = append(set, convert.WithDelimiter(o.delim))
	}
	return set
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := logging.Component("unitctl")

	if opts.template != "" {
		if err := config.WriteTemplate(opts.template, opts.force); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", opts.template)
		return nil
	}
	if opts.validate != "" {
		cfg, err := config.Load(opts.validate)
		if err != nil {
			return err
		}
		reg, err := config.Build(cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "valid: %d dimensions, %d units, %d descriptors\n",
			len(cfg.Dimensions), len(cfg.Units), reg.Len())
		return nil
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	reg, err := config.Build(cfg, logger)
	if err != nil {
		return err
	}

	if opts.list {
		return list(stdout, reg, opts.dimension)
	}

	if opts.value == "" || opts.from == "" {
		return fmt.Errorf("%w: -value and -from are required", errUsage)
	}
	defaults, err := cfg.Engine.Options()
	if err != nil {
		return err
	}
	engine := convert.New(reg, convert.WithDefaults(defaults), convert.WithLogger(logger))
	b := engine.Convert(opts.value, opts.from).
		WithOptions(opts.builderOptions()...).
		WithContext(unit.Context(opts.ctx))

	if opts.flex != "" {
		lower, upper, ok := strings.Cut(opts.flex, ":")
		if !ok {
			return fmt.Errorf("%w: -flex must be lower:upper", errUsage)
		}
		text, err := b.Flex(lower, upper)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, text)
		return nil
	}
	if opts.to == "" {
		return fmt.Errorf("%w: -to is required", errUsage)
	}
	res, err := b.To(opts.to).Resolve()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Text)
	return nil
}

func list(w io.Writer, reg *unit.Registry, dim string) error {
	if dim == "" {
		for _, d := range reg.Dimensions() {
			sig, _ := reg.SignatureFor(d)
			fmt.Fprintf(w, "%-14s %s\n", d, sig.Key())
		}
		return nil
	}
	base, err := reg.BaseOf(dim)
	if err != nil {
		return err
	}
	for _, d := range reg.DescriptorsIn(dim) {
		marker := " "
		if d == base {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-10s %s\n", marker, d.Symbol(), strings.Join(d.Aliases(), ", "))
	}
	return nil
}

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "unitctl: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
