package dimension

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Anonymous names any signature that has no registered dimension.
const Anonymous = "anonymous"

// Signature maps a base dimension name to its integer exponent.
// Zero exponents are never stored.
type Signature map[string]int

// Of builds a signature from alternating name/exponent pairs.
//
//	Of("mass", 1, "length", 1, "time", -2)
func Of(pairs ...any) Signature {
	if len(pairs)%2 != 0 {
		panic("dimension.Of: odd number of arguments")
	}
	sig := make(Signature, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("dimension.Of: argument %d must be a string", i))
		}
		exp, ok := pairs[i+1].(int)
		if !ok {
			panic(fmt.Sprintf("dimension.Of: argument %d must be an int", i+1))
		}
		sig.add(name, exp)
	}
	return sig
}

// Base returns the signature of a fundamental dimension.
func Base(name string) Signature {
	return Signature{normalize(name): 1}
}

func (s Signature) add(name string, exp int) {
	name = normalize(name)
	if name == "" || exp == 0 {
		return
	}
	next := s[name] + exp
	if next == 0 {
		delete(s, name)
		return
	}
	s[name] = next
}

// Clone returns an independent copy.
func (s Signature) Clone() Signature {
	out := make(Signature, len(s))
	for k, v := range s {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// Mul adds exponents per base dimension.
func (s Signature) Mul(other Signature) Signature {
	out := s.Clone()
	for k, v := range other {
		out.add(k, v)
	}
	return out
}

// Div subtracts exponents per base dimension.
func (s Signature) Div(other Signature) Signature {
	out := s.Clone()
	for k, v := range other {
		out.add(k, -v)
	}
	return out
}

// Pow scales every exponent by n.
func (s Signature) Pow(n int) Signature {
	out := make(Signature, len(s))
	if n == 0 {
		return out
	}
	for k, v := range s {
		if v != 0 {
			out[k] = v * n
		}
	}
	return out
}

// Equal reports whether both signatures carry the same exponents.
func (s Signature) Equal(other Signature) bool {
	return s.Key() == other.Key()
}

// IsDimensionless reports an empty signature.
func (s Signature) IsDimensionless() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Key returns the canonical form used as a map key, e.g. "length^1*mass^1*time^-2".
func (s Signature) Key() string {
	names := make([]string, 0, len(s))
	for k, v := range s {
		if v != 0 {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(name)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(s[name]))
	}
	return b.String()
}

func (s Signature) String() string {
	if s.IsDimensionless() {
		return "dimensionless"
	}
	return s.Key()
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (Signature, error) {
	sig := Signature{}
	key = strings.TrimSpace(key)
	if key == "" || key == "dimensionless" {
		return sig, nil
	}
	for _, part := range strings.Split(key, "*") {
		name, rawExp, ok := strings.Cut(part, "^")
		if !ok {
			sig.add(name, 1)
			continue
		}
		exp, err := strconv.Atoi(strings.TrimSpace(rawExp))
		if err != nil {
			return nil, fmt.Errorf("dimension: invalid exponent in %q: %w", part, err)
		}
		sig.add(name, exp)
	}
	return sig, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
