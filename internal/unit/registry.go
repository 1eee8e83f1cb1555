package unit

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rannd1nt/phaethon/internal/dimension"
	"github.com/rannd1nt/phaethon/internal/logging"
	"github.com/rannd1nt/phaethon/internal/observability"
	"github.com/rs/zerolog"
)

// DefaultAnonymousCache bounds the interned algebra results per registry.
const DefaultAnonymousCache = 1024

// Registry is the catalog of descriptors. Registration is expected during
// startup; lookups are safe from any goroutine.
type Registry struct {
	mu      sync.RWMutex
	aliases map[string][]*Descriptor
	byDim   map[string][]*Descriptor
	dna     map[string]string
	sigs    map[string]dimension.Signature
	count   int

	synth  *lru.Cache[string, *Descriptor]
	logger *zerolog.Logger
}

type RegistryOption func(*registryConfig)

type registryConfig struct {
	cacheSize int
	logger    *zerolog.Logger
}

// WithAnonymousCache sets the capacity of the synthesized-descriptor cache.
func WithAnonymousCache(size int) RegistryOption {
	return func(c *registryConfig) { c.cacheSize = size }
}

func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(c *registryConfig) { c.logger = &logger }
}

func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{cacheSize: DefaultAnonymousCache}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize <= 0 {
		cfg.cacheSize = DefaultAnonymousCache
	}
	cache, err := lru.New[string, *Descriptor](cfg.cacheSize)
	if err != nil {
		panic(err)
	}
	return &Registry{
		aliases: make(map[string][]*Descriptor),
		byDim:   make(map[string][]*Descriptor),
		dna:     make(map[string]string),
		sigs:    make(map[string]dimension.Signature),
		synth:   cache,
		logger:  cfg.logger,
	}
}

func (r *Registry) log() zerolog.Logger {
	if r.logger != nil {
		return *r.logger
	}
	return logging.Component("registry")
}

// Register indexes d under its symbol and every alias. Registering the
// same descriptor, or an identical definition, twice is a no-op.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if d.IsAnonymous() || d.synthetic {
		return fmt.Errorf("%w: %s: synthesized descriptors cannot be registered", ErrInvalidDefinition, d.symbol)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	logger := r.log()
	if sig, ok := r.sigs[d.dimension]; ok && !sig.Equal(d.signature) {
		logger.Error().
			Str("unit", d.symbol).
			Str("dimension", d.dimension).
			Str("recorded", sig.Key()).
			Str("received", d.signature.Key()).
			Msg("signature conflict")
		return fmt.Errorf("%w: %s: dimension %q is %s, descriptor declares %s",
			ErrSignatureConflict, d.symbol, d.dimension, sig.Key(), d.signature.Key())
	}
	for _, existing := range r.byDim[d.dimension] {
		if existing == d {
			return nil
		}
		if existing.symbol != d.symbol {
			continue
		}
		if existing.Identical(d) {
			return nil
		}
		logger.Error().Str("unit", d.symbol).Str("dimension", d.dimension).Msg("conflicting descriptor")
		return fmt.Errorf("%w: %s already defined in %s with multiplier %s",
			ErrConflictingDescriptor, d.symbol, d.dimension, existing.multiplier.String())
	}

	if _, ok := r.sigs[d.dimension]; !ok {
		r.sigs[d.dimension] = d.signature.Clone()
		r.recordLocked(d.signature, d.dimension)
	}
	r.byDim[d.dimension] = append(r.byDim[d.dimension], d)
	for _, key := range d.Keys() {
		if !contains(r.aliases[key], d) {
			r.aliases[key] = append(r.aliases[key], d)
		}
	}
	r.count++
	observability.SetRegistrySize(r.count)
	logger.Debug().Str("unit", d.symbol).Str("dimension", d.dimension).Int("aliases", len(d.aliases)).Msg("registered")
	return nil
}

// MustRegister registers every descriptor and panics on the first error.
func (r *Registry) MustRegister(ds ...*Descriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

func contains(list []*Descriptor, d *Descriptor) bool {
	for _, x := range list {
		if x == d {
			return true
		}
	}
	return false
}

// Resolve looks up alias. With an expected dimension the first candidate
// in registration order whose dimension matches wins; without one an
// alias spanning several dimensions is ambiguous. Within one dimension a
// case-exact symbol or alias beats a case-folded match.
func (r *Registry) Resolve(alias, expected string) (*Descriptor, error) {
	key := NormalizeAlias(alias)
	expected = strings.ToLower(strings.TrimSpace(expected))

	r.mu.RLock()
	candidates := r.aliases[key]
	r.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, UnitNotFoundError{Alias: alias}
	}
	if expected != "" {
		var matching []*Descriptor
		for _, d := range candidates {
			if d.dimension == expected {
				matching = append(matching, d)
			}
		}
		if len(matching) == 0 {
			return nil, DimensionMismatchError{
				Expected: expected,
				Received: strings.Join(dimensionsOf(candidates), "|"),
				Context:  "resolve " + alias,
			}
		}
		return preferExact(matching, alias), nil
	}
	if dims := dimensionsOf(candidates); len(dims) > 1 {
		return nil, AmbiguousUnitError{Alias: alias, Dimensions: dims}
	}
	return preferExact(candidates, alias), nil
}

// Candidates returns every descriptor reachable from alias, in
// registration order.
func (r *Registry) Candidates(alias string) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Descriptor(nil), r.aliases[NormalizeAlias(alias)]...)
}

func preferExact(list []*Descriptor, alias string) *Descriptor {
	raw := strings.TrimSpace(alias)
	for _, d := range list {
		if d.symbol == raw {
			return d
		}
		for _, a := range d.aliases {
			if strings.TrimSpace(a) == raw {
				return d
			}
		}
	}
	return list[0]
}

func dimensionsOf(list []*Descriptor) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, d := range list {
		if _, ok := seen[d.dimension]; ok {
			continue
		}
		seen[d.dimension] = struct{}{}
		out = append(out, d.dimension)
	}
	return out
}

// BaseOf returns the descriptor of dim with multiplier 1 and offset 0.
func (r *Registry) BaseOf(dim string) (*Descriptor, error) {
	dim = strings.ToLower(strings.TrimSpace(dim))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.byDim[dim] {
		if d.IsBase() {
			return d, nil
		}
	}
	return nil, ConversionError{Op: "base", Reason: dim, Err: ErrNoBaseUnit}
}

// Dimensions lists registered dimension names, sorted.
func (r *Registry) Dimensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byDim))
	for name := range r.byDim {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// UnitsIn lists the primary symbols of dim, sorted.
func (r *Registry) UnitsIn(dim string) []string {
	ds := r.DescriptorsIn(dim)
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.symbol
	}
	sort.Strings(out)
	return out
}

// DescriptorsIn returns the descriptors of dim in registration order.
func (r *Registry) DescriptorsIn(dim string) []*Descriptor {
	dim = strings.ToLower(strings.TrimSpace(dim))
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Descriptor(nil), r.byDim[dim]...)
}

// AliasesIn lists every normalized lookup key that reaches dim, sorted.
func (r *Registry) AliasesIn(dim string) []string {
	seen := make(map[string]struct{})
	for _, d := range r.DescriptorsIn(dim) {
		for _, k := range d.Keys() {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Unit is implemented by values bound to a descriptor.
type Unit interface {
	Unit() *Descriptor
}

// DimensionOf reports the dimension of an alias string, a descriptor or
// any value bound to a descriptor.
func (r *Registry) DimensionOf(ref any) (string, error) {
	switch v := ref.(type) {
	case string:
		d, err := r.Resolve(v, "")
		if err != nil {
			return "", err
		}
		return d.dimension, nil
	case *Descriptor:
		if v == nil {
			return "", ErrNilDescriptor
		}
		return v.dimension, nil
	case Unit:
		d := v.Unit()
		if d == nil {
			return "", ErrNilDescriptor
		}
		return d.dimension, nil
	default:
		return "", ConversionError{Op: "dimension", Reason: fmt.Sprintf("unsupported reference %T", ref)}
	}
}

// SignatureFor returns the recorded signature of dim.
func (r *Registry) SignatureFor(dim string) (dimension.Signature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sig, ok := r.sigs[strings.ToLower(strings.TrimSpace(dim))]
	return sig.Clone(), ok
}

// ResolveSignature names the dimension recorded for sig, or "anonymous".
func (r *Registry) ResolveSignature(sig dimension.Signature) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.dna[sig.Key()]; ok {
		return name
	}
	return dimension.Anonymous
}

// RecordSignature maps sig to name. Re-recording the same pair is a
// no-op; mapping either side to something else fails.
func (r *Registry) RecordSignature(sig dimension.Signature, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == dimension.Anonymous {
		return fmt.Errorf("%w: cannot record signature %s as %q", ErrInvalidDefinition, sig.Key(), name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.dna[sig.Key()]; ok && existing != name {
		return fmt.Errorf("%w: %s is %q, not %q", ErrSignatureConflict, sig.Key(), existing, name)
	}
	if existing, ok := r.sigs[name]; ok && !existing.Equal(sig) {
		return fmt.Errorf("%w: %q is %s, not %s", ErrSignatureConflict, name, existing.Key(), sig.Key())
	}
	r.sigs[name] = sig.Clone()
	r.recordLocked(sig, name)
	return nil
}

// recordLocked keeps the first dimension mapped to a signature.
func (r *Registry) recordLocked(sig dimension.Signature, name string) {
	key := sig.Key()
	logger := r.log()
	if existing, ok := r.dna[key]; ok {
		if existing != name {
			logger.Debug().Str("signature", key).Str("kept", existing).Str("alias", name).Msg("signature shared by dimensions")
		}
		return
	}
	r.dna[key] = name
	logger.Debug().Str("signature", key).Str("dimension", name).Msg("dna recorded")
}

// Bounds returns the declared range of the unit alias resolves to.
func (r *Registry) Bounds(alias, expected string) (Bounds, error) {
	d, err := r.Resolve(alias, expected)
	if err != nil {
		return Bounds{}, err
	}
	return d.Bounds(), nil
}

// Len is the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
