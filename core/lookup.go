package core

import (
	"fmt"
	"slices"
)

// PositionLookup maps cell-id keys to their integer positions within
// an ordered sequence along one dimension. Duplicate keys are allowed;
// resolving a duplicated key yields every matching position in order.
// The lookup is immutable after construction.
type PositionLookup struct {
	dim   string
	keys  []uint64
	byKey map[uint64][]int
}

// NewPositionLookup builds a lookup over keys indexed along dim, with
// keys[i] resolving to position i. Keys are copied.
// Returns ErrEmptyDim when dim is empty.
// Complexity: O(len(keys)) time and memory.
func NewPositionLookup(keys []uint64, dim string) (*PositionLookup, error) {
	if dim == "" {
		return nil, ErrEmptyDim
	}
	byKey := make(map[uint64][]int, len(keys))
	for i, k := range keys {
		byKey[k] = append(byKey[k], i)
	}
	return &PositionLookup{
		dim:   dim,
		keys:  slices.Clone(keys),
		byKey: byKey,
	}, nil
}

// Dim returns the indexed dimension name.
func (pl *PositionLookup) Dim() string { return pl.dim }

// Len returns the number of positions (including duplicates).
func (pl *PositionLookup) Len() int { return len(pl.keys) }

// Keys returns a copy of the keys in position order.
func (pl *PositionLookup) Keys() []uint64 { return slices.Clone(pl.keys) }

// Positions returns every position holding key, in ascending order,
// and whether the key is present.
func (pl *PositionLookup) Positions(key uint64) ([]int, bool) {
	pos, ok := pl.byKey[key]
	return slices.Clone(pos), ok
}

// Resolve translates keys into the concatenation of their positions.
// Returns ErrKeyNotFound naming the first absent key. An empty key
// slice resolves to an empty, non-nil position slice.
func (pl *PositionLookup) Resolve(keys []uint64) ([]int, error) {
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		pos, ok := pl.byKey[k]
		if !ok {
			return nil, fmt.Errorf("core: key %#x along %q: %w", k, pl.dim, ErrKeyNotFound)
		}
		out = append(out, pos...)
	}
	return out, nil
}

// Take returns a new lookup over the keys at the given positions, in
// order, preserving the dimension name.
// Returns ErrPositionRange on an invalid position.
func (pl *PositionLookup) Take(positions []int) (*PositionLookup, error) {
	keys := make([]uint64, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(pl.keys) {
			return nil, fmt.Errorf("core: position %d of %d keys: %w", p, len(pl.keys), ErrPositionRange)
		}
		keys[i] = pl.keys[p]
	}
	return NewPositionLookup(keys, pl.dim)
}

// Equal reports whether both lookups index the same dimension and hold
// the same keys in the same order. Equality is order-sensitive.
func (pl *PositionLookup) Equal(other *PositionLookup) bool {
	if other == nil {
		return false
	}
	return pl.dim == other.dim && slices.Equal(pl.keys, other.keys)
}
