package core

import (
	"fmt"
	"slices"
)

// Variable is an n-dimensional array with named dimensions, a flat
// row-major Data payload, and an attribute map. It is immutable once
// built; Isel returns a new Variable.
type Variable struct {
	dims  []string
	shape []int
	data  Data
	attrs map[string]any
}

// NewVariable constructs a Variable from dimension names, a shape, a
// flat row-major payload, and optional attributes. Dims, shape and
// attrs are copied; the payload is stored as given and must not be
// mutated by the caller afterwards.
// Returns ErrEmptyDim on an empty dimension name and ErrShapeMismatch
// when len(dims) != len(shape) or the payload length does not equal
// the shape product.
func NewVariable(dims []string, shape []int, data Data, attrs map[string]any) (*Variable, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("core: %d dims vs %d shape entries: %w", len(dims), len(shape), ErrShapeMismatch)
	}
	size := 1
	for i, d := range dims {
		if d == "" {
			return nil, ErrEmptyDim
		}
		if shape[i] < 0 {
			return nil, fmt.Errorf("core: negative size %d for dim %q: %w", shape[i], d, ErrShapeMismatch)
		}
		size *= shape[i]
	}
	if data == nil || data.Len() != size {
		got := 0
		if data != nil {
			got = data.Len()
		}
		return nil, fmt.Errorf("core: payload length %d, shape wants %d: %w", got, size, ErrShapeMismatch)
	}
	return &Variable{
		dims:  slices.Clone(dims),
		shape: slices.Clone(shape),
		data:  data,
		attrs: cloneAttrs(attrs),
	}, nil
}

// NewVector constructs a one-dimensional Variable along dim.
func NewVector(dim string, data Data, attrs map[string]any) (*Variable, error) {
	length := 0
	if data != nil {
		length = data.Len()
	}
	return NewVariable([]string{dim}, []int{length}, data, attrs)
}

// Dims returns a copy of the dimension names.
func (v *Variable) Dims() []string { return slices.Clone(v.dims) }

// Shape returns a copy of the per-dimension sizes.
func (v *Variable) Shape() []int { return slices.Clone(v.shape) }

// Data returns the flat payload. Callers must treat it as read-only.
func (v *Variable) Data() Data { return v.data }

// Attrs returns a copy of the attribute map.
func (v *Variable) Attrs() map[string]any { return cloneAttrs(v.attrs) }

// HasDim reports whether the variable carries the named dimension.
func (v *Variable) HasDim(dim string) bool { return slices.Contains(v.dims, dim) }

// SizeOf returns the size along the named dimension.
// Returns ErrDimNotFound when the dimension is absent.
func (v *Variable) SizeOf(dim string) (int, error) {
	for i, d := range v.dims {
		if d == dim {
			return v.shape[i], nil
		}
	}
	return 0, fmt.Errorf("core: dim %q: %w", dim, ErrDimNotFound)
}

// Isel selects positions along one named dimension and returns a new
// Variable; other dimensions are untouched. Positions may repeat and
// need not be sorted. Returns ErrDimNotFound for an unknown dimension
// and ErrPositionRange for an invalid position.
// Complexity: O(len(result)) gather over the flat payload.
func (v *Variable) Isel(dim string, positions []int) (*Variable, error) {
	axis := slices.Index(v.dims, dim)
	if axis < 0 {
		return nil, fmt.Errorf("core: dim %q: %w", dim, ErrDimNotFound)
	}
	axisSize := v.shape[axis]
	for _, p := range positions {
		if p < 0 || p >= axisSize {
			return nil, fmt.Errorf("core: position %d along %q (size %d): %w", p, dim, axisSize, ErrPositionRange)
		}
	}
	// Row-major flat layout: outer blocks before the axis, inner run after it.
	inner := 1
	for _, s := range v.shape[axis+1:] {
		inner *= s
	}
	outer := 1
	for _, s := range v.shape[:axis] {
		outer *= s
	}
	flat := make([]int, 0, outer*len(positions)*inner)
	for o := 0; o < outer; o++ {
		for _, p := range positions {
			base := (o*axisSize + p) * inner
			for i := 0; i < inner; i++ {
				flat = append(flat, base+i)
			}
		}
	}
	data, err := v.data.Take(flat)
	if err != nil {
		return nil, err
	}
	shape := slices.Clone(v.shape)
	shape[axis] = len(positions)
	return &Variable{
		dims:  slices.Clone(v.dims),
		shape: shape,
		data:  data,
		attrs: cloneAttrs(v.attrs),
	}, nil
}

func cloneAttrs(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, val := range attrs {
		out[k] = val
	}
	return out
}
