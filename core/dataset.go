package core

import (
	"fmt"
	"sort"
	"strings"
)

// Dataset is a collection of named Variables sharing dimensions, plus
// the label indexes attached to those dimensions (at most one per
// dimension). Like Variable it is immutable; every mutating operation
// returns a new Dataset.
type Dataset struct {
	vars    map[string]*Variable
	indexes map[string]Index
}

// NewDataset constructs a Dataset from named variables. Dimension
// sizes must agree across variables; disagreement is ErrShapeMismatch.
func NewDataset(vars map[string]*Variable) (*Dataset, error) {
	sizes := make(map[string]int)
	for name, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("core: variable %q is nil: %w", name, ErrShapeMismatch)
		}
		dims := v.Dims()
		shape := v.Shape()
		for i, d := range dims {
			if prev, seen := sizes[d]; seen && prev != shape[i] {
				return nil, fmt.Errorf("core: dim %q sized %d and %d: %w", d, prev, shape[i], ErrShapeMismatch)
			}
			sizes[d] = shape[i]
		}
	}
	return &Dataset{vars: cloneVars(vars), indexes: map[string]Index{}}, nil
}

// Variable returns the named variable, if present.
func (d *Dataset) Variable(name string) (*Variable, bool) {
	v, ok := d.vars[name]
	return v, ok
}

// VarNames returns the variable names in sorted order.
func (d *Dataset) VarNames() []string {
	names := make([]string, 0, len(d.vars))
	for name := range d.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Indexes returns a copy of the index registry, keyed by dimension.
func (d *Dataset) Indexes() map[string]Index {
	return cloneIndexes(d.indexes)
}

// SizeOf returns the size of the named dimension.
// Returns ErrDimNotFound when no variable carries it.
func (d *Dataset) SizeOf(dim string) (int, error) {
	for _, v := range d.vars {
		if v.HasDim(dim) {
			return v.SizeOf(dim)
		}
	}
	return 0, fmt.Errorf("core: dim %q: %w", dim, ErrDimNotFound)
}

// SetIndex builds an index of the registered kind from the dataset's
// variables and attaches it under the index's dimension, replacing any
// previous index there. Returns a new Dataset.
// Returns ErrUnknownIndexKind for an unregistered kind; builder
// failures propagate unchanged.
func (d *Dataset) SetIndex(kind string, opts map[string]any) (*Dataset, error) {
	build, err := indexBuilder(kind)
	if err != nil {
		return nil, err
	}
	idx, err := build(cloneVars(d.vars), opts)
	if err != nil {
		return nil, err
	}
	return d.WithIndex(idx)
}

// WithIndex attaches a pre-built index under its dimension, replacing
// any previous index there. Returns a new Dataset.
// Returns ErrDimNotFound when no variable carries the index dimension
// and ErrShapeMismatch when the lookup length disagrees with it.
func (d *Dataset) WithIndex(idx Index) (*Dataset, error) {
	size, err := d.SizeOf(idx.Dim())
	if err != nil {
		return nil, err
	}
	if idx.Lookup().Len() != size {
		return nil, fmt.Errorf("core: index holds %d keys, dim %q has %d positions: %w",
			idx.Lookup().Len(), idx.Dim(), size, ErrShapeMismatch)
	}
	out := &Dataset{vars: d.vars, indexes: cloneIndexes(d.indexes)}
	out.indexes[idx.Dim()] = idx
	return out, nil
}

// Sel selects by label along indexed dimensions. Each entry maps a
// dimension to the cell-id keys to keep; keys resolve to positions
// through that dimension's index. A key absent from an index is an
// error (the engine's missing-key policy, wrapping ErrKeyNotFound).
// Returns a new Dataset with variables and indexes subset accordingly.
func (d *Dataset) Sel(indexers map[string][]uint64) (*Dataset, error) {
	positions, err := selectAlong(d.indexes, indexers)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]*Variable, len(d.vars))
	for name, v := range d.vars {
		selected := v
		for dim, pos := range positions {
			if !selected.HasDim(dim) {
				continue
			}
			selected, err = selected.Isel(dim, pos)
			if err != nil {
				return nil, err
			}
		}
		vars[name] = selected
	}
	indexes, err := reindex(d.indexes, positions)
	if err != nil {
		return nil, err
	}
	return &Dataset{vars: vars, indexes: indexes}, nil
}

// AssignCoords returns a new Dataset with an additional (or replaced)
// one-dimensional float64 coordinate variable along dim. The receiver
// is untouched.
// Returns ErrDimNotFound for an unknown dim and ErrShapeMismatch when
// the value count disagrees with the dimension size.
func (d *Dataset) AssignCoords(name, dim string, values []float64) (*Dataset, error) {
	size, err := d.SizeOf(dim)
	if err != nil {
		return nil, err
	}
	if len(values) != size {
		return nil, fmt.Errorf("core: %d values for dim %q of size %d: %w", len(values), dim, size, ErrShapeMismatch)
	}
	coord, err := NewVector(dim, Float64s(values), nil)
	if err != nil {
		return nil, err
	}
	vars := cloneVars(d.vars)
	vars[name] = coord
	return &Dataset{vars: vars, indexes: d.indexes}, nil
}

// String renders a terse multi-line summary: variables with their
// dimensions, then one line per attached index.
func (d *Dataset) String() string {
	var b strings.Builder
	b.WriteString("Dataset:\n")
	for _, name := range d.VarNames() {
		v := d.vars[name]
		fmt.Fprintf(&b, "  %s %v %v\n", name, v.Dims(), v.Shape())
	}
	dims := make([]string, 0, len(d.indexes))
	for dim := range d.indexes {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	for _, dim := range dims {
		fmt.Fprintf(&b, "  index[%s]: %s\n", dim, d.indexes[dim].InlineRepr(70))
	}
	return b.String()
}

func cloneVars(vars map[string]*Variable) map[string]*Variable {
	out := make(map[string]*Variable, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}

func cloneIndexes(indexes map[string]Index) map[string]Index {
	out := make(map[string]Index, len(indexes))
	for k, v := range indexes {
		out[k] = v
	}
	return out
}
