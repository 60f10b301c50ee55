package accessor_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dggs/accessor"
	"github.com/katalvlaran/dggs/cellindex"
	"github.com/katalvlaran/dggs/core"
	"github.com/katalvlaran/dggs/h3"
)

var (
	galleryCells = []uint64{0x832830FFFFFFFFF, 0x832831FFFFFFFFF, 0x832832FFFFFFFFF}
	galleryLat   = []float64{38.19320895, 38.63853196, 38.82387033}
	galleryLon   = []float64{-122.19619676, -123.43390346, -121.00991811}
)

// newIndexedDataset builds a dataset with the gallery cells on dim
// "cells", a float payload, and a cell index attached.
func newIndexedDataset(t *testing.T) *core.Dataset {
	t.Helper()
	ids, err := core.NewVector("cells", core.Uint64s(galleryCells),
		map[string]any{"grid_name": "h3", "resolution": 3})
	require.NoError(t, err)
	temp, err := core.NewVector("cells", core.Float64s{11, 22, 33}, nil)
	require.NoError(t, err)
	ds, err := core.NewDataset(map[string]*core.Variable{"cell_ids": ids, "temp": temp})
	require.NoError(t, err)
	indexed, err := ds.SetIndex(cellindex.Kind, nil)
	require.NoError(t, err)
	return indexed
}

// TestForDataset_Discovery covers the zero / one / many index cases.
func TestForDataset_Discovery(t *testing.T) {
	// Zero: a dataset with no index at all.
	plain, err := core.NewDataset(map[string]*core.Variable{})
	require.NoError(t, err)
	_, err = accessor.ForDataset(plain)
	require.ErrorIs(t, err, accessor.ErrNoIndex)

	// One: discovery returns the attached index.
	indexed := newIndexedDataset(t)
	acc, err := accessor.ForDataset(indexed)
	require.NoError(t, err)
	require.Equal(t, "cells", acc.Index().Dim())

	// Many: a second cell index on another dimension is rejected with
	// a distinct ambiguity error.
	zoneIDs, err := core.NewVector("zones", core.Uint64s{1, 2}, nil)
	require.NoError(t, err)
	zoneVals, err := core.NewVector("zones", core.Float64s{5, 6}, nil)
	require.NoError(t, err)
	cellIDs, err := core.NewVector("cells", core.Uint64s(galleryCells),
		map[string]any{"grid_name": "h3", "resolution": 3})
	require.NoError(t, err)
	ds, err := core.NewDataset(map[string]*core.Variable{
		"cell_ids": cellIDs, "zone_ids": zoneIDs, "zone_vals": zoneVals,
	})
	require.NoError(t, err)

	info, err := h3.NewInfo(3)
	require.NoError(t, err)
	first, err := cellindex.New(galleryCells, "cells", info)
	require.NoError(t, err)
	second, err := cellindex.New([]uint64{1, 2}, "zones", info)
	require.NoError(t, err)
	ds, err = ds.WithIndex(first)
	require.NoError(t, err)
	ds, err = ds.WithIndex(second)
	require.NoError(t, err)

	_, err = accessor.ForDataset(ds)
	require.ErrorIs(t, err, accessor.ErrMultipleIndexes)
	require.ErrorContains(t, err, "cells, zones")
}

// TestSelLatLon selects the containing cells for known centers and
// propagates misses.
func TestSelLatLon(t *testing.T) {
	acc, err := accessor.ForDataset(newIndexedDataset(t))
	require.NoError(t, err)

	// The last two gallery centers, reversed.
	sub, err := acc.SelLatLon(
		[]float64{galleryLat[2], galleryLat[1]},
		[]float64{galleryLon[2], galleryLon[1]},
	)
	require.NoError(t, err)

	ids, ok := sub.Variable("cell_ids")
	require.True(t, ok)
	require.Equal(t, core.Uint64s{galleryCells[2], galleryCells[1]}, ids.Data())
	temp, ok := sub.Variable("temp")
	require.True(t, ok)
	require.Equal(t, core.Float64s{33, 22}, temp.Data())

	// A point whose containing cell is not in the domain: the engine's
	// missing-key policy applies, nothing is masked.
	_, err = acc.SelLatLon([]float64{0}, []float64{0})
	require.ErrorIs(t, err, core.ErrKeyNotFound)
}

// TestQuery masks candidates outside the domain instead of failing.
func TestQuery(t *testing.T) {
	acc, err := accessor.ForDataset(newIndexedDataset(t))
	require.NoError(t, err)

	// A bound around all three centers covers far more resolution-3
	// cells than the domain holds; everything absent is dropped.
	bound := orb.Bound{Min: orb.Point{-124.0, 37.9}, Max: orb.Point{-120.5, 39.1}}
	sub, err := acc.Query(bound)
	require.NoError(t, err)

	size, err := sub.SizeOf("cells")
	require.NoError(t, err)
	require.Equal(t, 3, size)

	ids, ok := sub.Variable("cell_ids")
	require.True(t, ok)
	require.ElementsMatch(t, galleryCells, []uint64(ids.Data().(core.Uint64s)))
}

// TestQuery_EmptyCover: a region covering no domain cell yields a
// zero-length subset, not an error.
func TestQuery_EmptyCover(t *testing.T) {
	acc, err := accessor.ForDataset(newIndexedDataset(t))
	require.NoError(t, err)

	// Far from the domain; whatever cells this covers, none are held.
	bound := orb.Bound{Min: orb.Point{10.0, 10.0}, Max: orb.Point{10.5, 10.5}}
	sub, err := acc.Query(bound)
	require.NoError(t, err)

	size, err := sub.SizeOf("cells")
	require.NoError(t, err)
	require.Zero(t, size)
}

// TestAssignLatLonCoords attaches center coordinates and leaves the
// original untouched.
func TestAssignLatLonCoords(t *testing.T) {
	indexed := newIndexedDataset(t)
	acc, err := accessor.ForDataset(indexed)
	require.NoError(t, err)

	out, err := acc.AssignLatLonCoords()
	require.NoError(t, err)

	lat, ok := out.Variable(accessor.LatitudeCoord)
	require.True(t, ok)
	require.True(t, floats.EqualApprox(galleryLat, []float64(lat.Data().(core.Float64s)), 1e-6))
	lon, ok := out.Variable(accessor.LongitudeCoord)
	require.True(t, ok)
	require.True(t, floats.EqualApprox(galleryLon, []float64(lon.Data().(core.Float64s)), 1e-6))

	_, ok = indexed.Variable(accessor.LatitudeCoord)
	require.False(t, ok, "AssignLatLonCoords must not mutate the original")
}

// TestForDataArray exercises the second container shape end to end.
func TestForDataArray(t *testing.T) {
	ids, err := core.NewVector("cells", core.Uint64s(galleryCells),
		map[string]any{"grid_name": "h3", "resolution": 3})
	require.NoError(t, err)
	payload, err := core.NewVector("cells", core.Float64s{0.1, 0.2, 0.3}, nil)
	require.NoError(t, err)

	da, err := core.NewDataArray("speed", payload, map[string]*core.Variable{"cell_ids": ids})
	require.NoError(t, err)

	_, err = accessor.ForDataArray(da)
	require.ErrorIs(t, err, accessor.ErrNoIndex)

	indexed, err := da.SetIndex(cellindex.Kind, nil)
	require.NoError(t, err)
	acc, err := accessor.ForDataArray(indexed)
	require.NoError(t, err)

	sub, err := acc.SelLatLon(galleryLat[:1], galleryLon[:1])
	require.NoError(t, err)
	require.Equal(t, core.Float64s{0.1}, sub.Variable().Data())

	withCoords, err := acc.AssignLatLonCoords()
	require.NoError(t, err)
	latCoord, ok := withCoords.Coord(accessor.LatitudeCoord)
	require.True(t, ok)
	require.True(t, floats.EqualApprox(galleryLat, []float64(latCoord.Data().(core.Float64s)), 1e-6))
}
