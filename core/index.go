package core

import (
	"fmt"
	"sync"
)

// Index is the single plugin boundary for label-based indexes. An
// implementation binds an ordered PositionLookup to one dimension and
// translates selection keys into positions. Implementations must be
// immutable; ReplaceLookup returns a new Index and never mutates the
// receiver.
type Index interface {
	// Dim returns the indexed dimension name.
	Dim() string
	// Lookup returns the underlying position lookup.
	Lookup() *PositionLookup
	// SelectPositions translates selection keys into array positions.
	// A key absent from the lookup is an error (wrapping ErrKeyNotFound).
	SelectPositions(keys []uint64) ([]int, error)
	// Equal reports whether two indexes are interchangeable for alignment.
	Equal(other Index) bool
	// ReplaceLookup returns a new Index of the same kind and
	// configuration over a substituted lookup.
	ReplaceLookup(lookup *PositionLookup) Index
	// InlineRepr renders a short one-line summary, preferring forms
	// that fit maxWidth but never truncating mid-token.
	InlineRepr(maxWidth int) string
}

// IndexBuilder constructs an Index from a set of candidate variables
// and builder-specific options.
type IndexBuilder func(vars map[string]*Variable, opts map[string]any) (Index, error)

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]IndexBuilder)
)

// RegisterIndexBuilder makes an index kind available to SetIndex.
// Intended to be called from the implementing package's init.
// Panics if kind is empty, build is nil, or kind is already taken.
func RegisterIndexBuilder(kind string, build IndexBuilder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	if kind == "" {
		panic("core: RegisterIndexBuilder with empty kind")
	}
	if build == nil {
		panic("core: RegisterIndexBuilder with nil builder")
	}
	if _, dup := builders[kind]; dup {
		panic("core: RegisterIndexBuilder called twice for kind " + kind)
	}
	builders[kind] = build
}

func indexBuilder(kind string) (IndexBuilder, error) {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("core: index kind %q: %w", kind, ErrUnknownIndexKind)
	}
	return build, nil
}

// selectAlong resolves indexers to positions per dimension using the
// registered indexes. Shared by Dataset.Sel and DataArray.Sel.
func selectAlong(indexes map[string]Index, indexers map[string][]uint64) (map[string][]int, error) {
	positions := make(map[string][]int, len(indexers))
	for dim, keys := range indexers {
		idx, ok := indexes[dim]
		if !ok {
			return nil, fmt.Errorf("core: dim %q: %w", dim, ErrNoIndex)
		}
		pos, err := idx.SelectPositions(keys)
		if err != nil {
			return nil, err
		}
		positions[dim] = pos
	}
	return positions, nil
}

// reindex rebuilds the affected indexes over the selected positions.
func reindex(indexes map[string]Index, positions map[string][]int) (map[string]Index, error) {
	out := make(map[string]Index, len(indexes))
	for dim, idx := range indexes {
		pos, selected := positions[dim]
		if !selected {
			out[dim] = idx
			continue
		}
		lookup, err := idx.Lookup().Take(pos)
		if err != nil {
			return nil, err
		}
		out[dim] = idx.ReplaceLookup(lookup)
	}
	return out, nil
}
