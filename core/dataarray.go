package core

import (
	"fmt"
	"sort"
	"strings"
)

// DataArray is a single named Variable plus its coordinate variables
// and the label indexes attached to its dimensions. The second of the
// two container shapes the accessor adapts to; semantics mirror
// Dataset.
type DataArray struct {
	name     string
	variable *Variable
	coords   map[string]*Variable
	indexes  map[string]Index
}

// NewDataArray constructs a DataArray. Every coordinate must range
// over dimensions of the main variable with matching sizes; a foreign
// dimension is ErrDimNotFound, a size disagreement ErrShapeMismatch.
func NewDataArray(name string, variable *Variable, coords map[string]*Variable) (*DataArray, error) {
	if variable == nil {
		return nil, fmt.Errorf("core: data array %q has nil variable: %w", name, ErrShapeMismatch)
	}
	for cname, c := range coords {
		if c == nil {
			return nil, fmt.Errorf("core: coordinate %q is nil: %w", cname, ErrShapeMismatch)
		}
		dims := c.Dims()
		shape := c.Shape()
		for i, dim := range dims {
			if !variable.HasDim(dim) {
				return nil, fmt.Errorf("core: coordinate %q over foreign dim %q: %w", cname, dim, ErrDimNotFound)
			}
			size, err := variable.SizeOf(dim)
			if err != nil {
				return nil, err
			}
			if shape[i] != size {
				return nil, fmt.Errorf("core: coordinate %q sized %d along dim %q of size %d: %w",
					cname, shape[i], dim, size, ErrShapeMismatch)
			}
		}
	}
	return &DataArray{
		name:     name,
		variable: variable,
		coords:   cloneVars(coords),
		indexes:  map[string]Index{},
	}, nil
}

// Name returns the array name.
func (da *DataArray) Name() string { return da.name }

// Variable returns the main variable.
func (da *DataArray) Variable() *Variable { return da.variable }

// Coord returns the named coordinate variable, if present.
func (da *DataArray) Coord(name string) (*Variable, bool) {
	c, ok := da.coords[name]
	return c, ok
}

// CoordNames returns the coordinate names in sorted order.
func (da *DataArray) CoordNames() []string {
	names := make([]string, 0, len(da.coords))
	for name := range da.coords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Indexes returns a copy of the index registry, keyed by dimension.
func (da *DataArray) Indexes() map[string]Index {
	return cloneIndexes(da.indexes)
}

// SetIndex builds an index of the registered kind from the array's
// coordinate variables and attaches it under the index's dimension.
// Returns a new DataArray.
func (da *DataArray) SetIndex(kind string, opts map[string]any) (*DataArray, error) {
	build, err := indexBuilder(kind)
	if err != nil {
		return nil, err
	}
	idx, err := build(cloneVars(da.coords), opts)
	if err != nil {
		return nil, err
	}
	return da.WithIndex(idx)
}

// WithIndex attaches a pre-built index under its dimension, replacing
// any previous index there. Returns a new DataArray.
func (da *DataArray) WithIndex(idx Index) (*DataArray, error) {
	if !da.variable.HasDim(idx.Dim()) {
		return nil, fmt.Errorf("core: dim %q: %w", idx.Dim(), ErrDimNotFound)
	}
	size, err := da.variable.SizeOf(idx.Dim())
	if err != nil {
		return nil, err
	}
	if idx.Lookup().Len() != size {
		return nil, fmt.Errorf("core: index holds %d keys, dim %q has %d positions: %w",
			idx.Lookup().Len(), idx.Dim(), size, ErrShapeMismatch)
	}
	out := &DataArray{name: da.name, variable: da.variable, coords: da.coords, indexes: cloneIndexes(da.indexes)}
	out.indexes[idx.Dim()] = idx
	return out, nil
}

// Sel selects by label along indexed dimensions, mirroring
// Dataset.Sel: keys resolve through the dimension's index, a missing
// key is an error wrapping ErrKeyNotFound. Returns a new DataArray.
func (da *DataArray) Sel(indexers map[string][]uint64) (*DataArray, error) {
	positions, err := selectAlong(da.indexes, indexers)
	if err != nil {
		return nil, err
	}
	variable := da.variable
	for dim, pos := range positions {
		if !variable.HasDim(dim) {
			continue
		}
		variable, err = variable.Isel(dim, pos)
		if err != nil {
			return nil, err
		}
	}
	coords := make(map[string]*Variable, len(da.coords))
	for name, c := range da.coords {
		selected := c
		for dim, pos := range positions {
			if !selected.HasDim(dim) {
				continue
			}
			selected, err = selected.Isel(dim, pos)
			if err != nil {
				return nil, err
			}
		}
		coords[name] = selected
	}
	indexes, err := reindex(da.indexes, positions)
	if err != nil {
		return nil, err
	}
	return &DataArray{name: da.name, variable: variable, coords: coords, indexes: indexes}, nil
}

// AssignCoords returns a new DataArray with an additional (or
// replaced) one-dimensional float64 coordinate along dim.
func (da *DataArray) AssignCoords(name, dim string, values []float64) (*DataArray, error) {
	if !da.variable.HasDim(dim) {
		return nil, fmt.Errorf("core: dim %q: %w", dim, ErrDimNotFound)
	}
	size, err := da.variable.SizeOf(dim)
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
	coords := cloneVars(da.coords)
	coords[name] = coord
	return &DataArray{name: da.name, variable: da.variable, coords: coords, indexes: da.indexes}, nil
}

// String renders a terse summary of the array, its coordinates, and
// any attached indexes.
func (da *DataArray) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DataArray %q %v %v\n", da.name, da.variable.Dims(), da.variable.Shape())
	for _, name := range da.CoordNames() {
		c := da.coords[name]
		fmt.Fprintf(&b, "  coord %s %v %v\n", name, c.Dims(), c.Shape())
	}
	dims := make([]string, 0, len(da.indexes))
	for dim := range da.indexes {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	for _, dim := range dims {
		fmt.Fprintf(&b, "  index[%s]: %s\n", dim, da.indexes[dim].InlineRepr(70))
	}
	return b.String()
}
