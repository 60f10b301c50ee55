package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dggs/core"
)

// fakeIndex is a minimal Index implementation exercising the plugin
// boundary without pulling in a grid system.
type fakeIndex struct {
	lookup *core.PositionLookup
}

func (f *fakeIndex) Dim() string                    { return f.lookup.Dim() }
func (f *fakeIndex) Lookup() *core.PositionLookup   { return f.lookup }
func (f *fakeIndex) InlineRepr(maxWidth int) string { return "fake" }

func (f *fakeIndex) SelectPositions(keys []uint64) ([]int, error) {
	return f.lookup.Resolve(keys)
}

func (f *fakeIndex) Equal(other core.Index) bool {
	o, ok := other.(*fakeIndex)
	return ok && f.lookup.Equal(o.lookup)
}

func (f *fakeIndex) ReplaceLookup(lookup *core.PositionLookup) core.Index {
	return &fakeIndex{lookup: lookup}
}

func init() {
	core.RegisterIndexBuilder("fake", func(vars map[string]*core.Variable, opts map[string]any) (core.Index, error) {
		v, ok := vars["labels"]
		if !ok {
			return nil, errors.New("fake: no labels variable")
		}
		keys, ok := v.Data().(core.Uint64s)
		if !ok {
			return nil, core.ErrDTypeMismatch
		}
		lookup, err := core.NewPositionLookup(keys, v.Dims()[0])
		if err != nil {
			return nil, err
		}
		return &fakeIndex{lookup: lookup}, nil
	})
}

func newTestDataset(t *testing.T) *core.Dataset {
	t.Helper()
	labels, err := core.NewVector("cells", core.Uint64s{11, 22, 33}, nil)
	require.NoError(t, err)
	temp, err := core.NewVector("cells", core.Float64s{1.5, 2.5, 3.5}, nil)
	require.NoError(t, err)
	ds, err := core.NewDataset(map[string]*core.Variable{"labels": labels, "temp": temp})
	require.NoError(t, err)
	return ds
}

// TestNewDataset_ShapeMismatch rejects variables disagreeing on a
// shared dimension size.
func TestNewDataset_ShapeMismatch(t *testing.T) {
	a, _ := core.NewVector("cells", core.Uint64s{1, 2}, nil)
	b, _ := core.NewVector("cells", core.Float64s{1, 2, 3}, nil)
	_, err := core.NewDataset(map[string]*core.Variable{"a": a, "b": b})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

// TestDataset_SetIndex covers the builder registry path.
func TestDataset_SetIndex(t *testing.T) {
	ds := newTestDataset(t)

	_, err := ds.SetIndex("nope", nil)
	require.ErrorIs(t, err, core.ErrUnknownIndexKind)

	indexed, err := ds.SetIndex("fake", nil)
	require.NoError(t, err)
	require.Len(t, indexed.Indexes(), 1)
	require.Empty(t, ds.Indexes(), "SetIndex must not mutate the receiver")
}

// TestDataset_Sel selects by label and checks variables and index are
// subset together.
func TestDataset_Sel(t *testing.T) {
	ds := newTestDataset(t)
	indexed, err := ds.SetIndex("fake", nil)
	require.NoError(t, err)

	sub, err := indexed.Sel(map[string][]uint64{"cells": {33, 11}})
	require.NoError(t, err)

	labels, ok := sub.Variable("labels")
	require.True(t, ok)
	require.Equal(t, core.Uint64s{33, 11}, labels.Data())

	temp, ok := sub.Variable("temp")
	require.True(t, ok)
	require.Equal(t, core.Float64s{3.5, 1.5}, temp.Data())

	idx := sub.Indexes()["cells"]
	require.NotNil(t, idx)
	require.Equal(t, []uint64{33, 11}, idx.Lookup().Keys())

	// Missing keys propagate; nothing is masked at this layer.
	_, err = indexed.Sel(map[string][]uint64{"cells": {44}})
	require.ErrorIs(t, err, core.ErrKeyNotFound)

	// Selection without an index on the dimension is rejected.
	_, err = ds.Sel(map[string][]uint64{"cells": {11}})
	require.ErrorIs(t, err, core.ErrNoIndex)
}

// TestDataset_AssignCoords checks coordinate attachment and the
// immutability of the receiver.
func TestDataset_AssignCoords(t *testing.T) {
	ds := newTestDataset(t)

	out, err := ds.AssignCoords("latitude", "cells", []float64{1, 2, 3})
	require.NoError(t, err)

	coord, ok := out.Variable("latitude")
	require.True(t, ok)
	require.Equal(t, core.Float64s{1, 2, 3}, coord.Data())

	_, ok = ds.Variable("latitude")
	require.False(t, ok, "AssignCoords must not mutate the receiver")

	_, err = ds.AssignCoords("latitude", "cells", []float64{1})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
	_, err = ds.AssignCoords("latitude", "zones", []float64{1})
	require.ErrorIs(t, err, core.ErrDimNotFound)
}

// TestDataset_WithIndex validates dimension and length agreement.
func TestDataset_WithIndex(t *testing.T) {
	ds := newTestDataset(t)

	short, err := core.NewPositionLookup([]uint64{11}, "cells")
	require.NoError(t, err)
	_, err = ds.WithIndex(&fakeIndex{lookup: short})
	require.ErrorIs(t, err, core.ErrShapeMismatch)

	foreign, err := core.NewPositionLookup([]uint64{1, 2, 3}, "zones")
	require.NoError(t, err)
	_, err = ds.WithIndex(&fakeIndex{lookup: foreign})
	require.ErrorIs(t, err, core.ErrDimNotFound)
}

// TestDataArray_Sel mirrors Dataset.Sel on the other container shape.
func TestDataArray_Sel(t *testing.T) {
	labels, err := core.NewVector("cells", core.Uint64s{7, 8, 9}, nil)
	require.NoError(t, err)
	payload, err := core.NewVector("cells", core.Float64s{0.7, 0.8, 0.9}, nil)
	require.NoError(t, err)

	da, err := core.NewDataArray("speed", payload, map[string]*core.Variable{"labels": labels})
	require.NoError(t, err)

	lookup, err := core.NewPositionLookup([]uint64{7, 8, 9}, "cells")
	require.NoError(t, err)
	indexed, err := da.WithIndex(&fakeIndex{lookup: lookup})
	require.NoError(t, err)

	sub, err := indexed.Sel(map[string][]uint64{"cells": {9}})
	require.NoError(t, err)
	require.Equal(t, core.Float64s{0.9}, sub.Variable().Data())

	coord, ok := sub.Coord("labels")
	require.True(t, ok)
	require.Equal(t, core.Uint64s{9}, coord.Data())
}

// TestNewDataArray_Errors rejects foreign or missized coordinates.
func TestNewDataArray_Errors(t *testing.T) {
	payload, _ := core.NewVector("cells", core.Float64s{1, 2, 3}, nil)

	foreign, _ := core.NewVector("zones", core.Uint64s{1}, nil)
	_, err := core.NewDataArray("x", payload, map[string]*core.Variable{"labels": foreign})
	require.ErrorIs(t, err, core.ErrDimNotFound)

	short, _ := core.NewVector("cells", core.Uint64s{1, 2}, nil)
	_, err = core.NewDataArray("x", payload, map[string]*core.Variable{"labels": short})
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}
