package convert

import (
	"strings"

	"github.com/rannd1nt/phaethon/internal/unit"
)

// pair resolves source and target together. An alias that is ambiguous
// on its own is settled by the dimension it shares with the other side.
func (e *Engine) pair(source, target string) (*unit.Descriptor, *unit.Descriptor, error) {
	if e.reg == nil {
		return nil, nil, unit.ConversionError{Op: "resolve", Reason: "no registry configured"}
	}
	srcCands := e.reg.Candidates(source)
	if len(srcCands) == 0 {
		return nil, nil, unit.UnitNotFoundError{Alias: source}
	}
	dstCands := e.reg.Candidates(target)
	if len(dstCands) == 0 {
		return nil, nil, unit.UnitNotFoundError{Alias: target}
	}

	shared := sharedDimensions(srcCands, dstCands)
	switch len(shared) {
	case 0:
		src, err := e.reg.Resolve(source, "")
		if err != nil {
			return nil, nil, err
		}
		_, err = e.reg.Resolve(target, src.Dimension())
		return nil, nil, err
	case 1:
		src, err := e.reg.Resolve(source, shared[0])
		if err != nil {
			return nil, nil, err
		}
		dst, err := e.reg.Resolve(target, shared[0])
		if err != nil {
			return nil, nil, err
		}
		return src, dst, nil
	default:
		return nil, nil, unit.AmbiguousUnitError{Alias: source + " -> " + target, Dimensions: shared}
	}
}

func sharedDimensions(a, b []*unit.Descriptor) []string {
	in := make(map[string]struct{}, len(b))
	for _, d := range b {
		in[d.Dimension()] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, d := range a {
		dim := d.Dimension()
		if _, ok := in[dim]; !ok {
			continue
		}
		if _, dup := seen[dim]; dup {
			continue
		}
		seen[dim] = struct{}{}
		out = append(out, dim)
	}
	return out
}

// lookupSpan finds name in the flex hierarchy, case-insensitively and
// accepting plurals.
func lookupSpan(names []string, name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if key == n || key == n+"s" || (n == "century" && key == "centuries") || (n == "millennium" && key == "millennia") {
			return i
		}
	}
	return -1
}
