package assembly

import (
	"github.com/viselabs/vise/internal/design"
)

// RootIndex is the reserved address of the root component. The root is
// never part of the 0..N-1 occurrence range.
const RootIndex = -1

// Flatten walks the design's occurrence tree in deterministic pre-order
// depth-first order and returns the occurrences in visitation order.
// The result is a snapshot: it stays consistent for the duration of one
// command, and nothing is cached beyond it. Callers re-flatten on every
// command, so indices silently shift if the tree is mutated in between.
func Flatten(d *design.Design) []*design.Occurrence {
	var out []*design.Occurrence
	var walk func(occs []*design.Occurrence)
	walk = func(occs []*design.Occurrence) {
		for _, occ := range occs {
			out = append(out, occ)
			walk(occ.Children())
		}
	}
	walk(d.Occurrences())
	return out
}

// Index is a single-command lookup over a flattened occurrence snapshot.
type Index struct {
	occs []*design.Occurrence
}

// NewIndex flattens the design for one command invocation.
func NewIndex(d *design.Design) *Index {
	return &Index{occs: Flatten(d)}
}

// Len returns the number of occurrences in the snapshot.
func (x *Index) Len() int { return len(x.occs) }

// All returns the occurrences in traversal order.
func (x *Index) All() []*design.Occurrence { return x.occs }

// ByIndex resolves a zero-based global index, reporting the valid range
// on failure.
func (x *Index) ByIndex(i int) (*design.Occurrence, error) {
	n := len(x.occs)
	if n == 0 {
		return nil, Validationf("no occurrences in design")
	}
	if i < 0 || i >= n {
		return nil, Validationf("invalid occurrence index %d: design has %d occurrences (0-%d)", i, n, n-1)
	}
	return x.occs[i], nil
}

// ByName resolves the first occurrence, in traversal order, whose own
// name or owning-component name equals name. Duplicate names resolve to
// the first match.
func (x *Index) ByName(name string) (*design.Occurrence, error) {
	if len(x.occs) == 0 {
		return nil, Validationf("no occurrences in design")
	}
	for _, occ := range x.occs {
		if occ.Name == name || occ.Component.Name == name {
			return occ, nil
		}
	}
	return nil, Resolutionf("no occurrence found with name %q", name)
}
