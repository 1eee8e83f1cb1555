package unit

import (
	"fmt"

	"github.com/rannd1nt/phaethon/internal/magnitude"
)

// Context is the string-keyed environment consumed by context-dependent stages.
type Context map[string]any

// BaseValuer is implemented by values that reduce to a base magnitude,
// such as quantities placed inside a context.
type BaseValuer interface {
	BaseValue() (magnitude.Value, error)
}

func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Merge returns a new context with c's keys taking priority over other's.
func (c Context) Merge(other Context) Context {
	out := make(Context, len(c)+len(other))
	for k, v := range other {
		out[k] = v
	}
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Lookup resolves key to a magnitude. Quantities are reduced to their
// base value first. ok is false when the key is absent.
func (c Context) Lookup(key string) (magnitude.Value, bool, error) {
	raw, ok := c[key]
	if !ok {
		return magnitude.Value{}, false, nil
	}
	v, err := Reduce(raw)
	if err != nil {
		return magnitude.Value{}, true, fmt.Errorf("context key %q: %w", key, err)
	}
	return v, true, nil
}

// Reduce turns a raw context or formula value into a magnitude.
func Reduce(raw any) (magnitude.Value, error) {
	if bv, ok := raw.(BaseValuer); ok {
		return bv.BaseValue()
	}
	return magnitude.Parse(raw)
}
