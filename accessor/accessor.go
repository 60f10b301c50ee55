package accessor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/dggs/cellindex"
	"github.com/katalvlaran/dggs/core"
)

// Coordinate names assigned by AssignLatLonCoords.
const (
	LatitudeCoord  = "latitude"
	LongitudeCoord = "longitude"
)

// Sentinel errors for index discovery.
var (
	// ErrNoIndex indicates a container without a cell index.
	ErrNoIndex = errors.New("accessor: no cell index found on this object")
	// ErrMultipleIndexes indicates more than one cell index on one container.
	ErrMultipleIndexes = errors.New("accessor: only one cell index per object is supported")
)

// discover scans an index registry for exactly one CellIndex.
func discover(indexes map[string]core.Index) (*cellindex.CellIndex, error) {
	dims := make([]string, 0, len(indexes))
	for dim, idx := range indexes {
		if _, ok := idx.(*cellindex.CellIndex); ok {
			dims = append(dims, dim)
		}
	}
	switch len(dims) {
	case 0:
		return nil, ErrNoIndex
	case 1:
		return indexes[dims[0]].(*cellindex.CellIndex), nil
	default:
		sort.Strings(dims)
		return nil, fmt.Errorf("accessor: cell indexes on dims %s: %w", strings.Join(dims, ", "), ErrMultipleIndexes)
	}
}

// shared implements the query logic both adapters delegate to.
type shared struct {
	index *cellindex.CellIndex
}

// pointKeys translates (lat, lon) pairs into cell-id selection keys at
// the index resolution.
func (s shared) pointKeys(lat, lon []float64) ([]uint64, error) {
	return s.index.LatLonToCell(lat, lon)
}

// regionKeys translates a region into the candidate cell ids present
// in the index domain. Candidates outside the domain are dropped; an
// empty result is valid.
func (s shared) regionKeys(geom orb.Geometry) ([]uint64, error) {
	candidates, err := s.index.GeomToCells(geom)
	if err != nil {
		return nil, err
	}
	lookup := s.index.Lookup()
	keys := make([]uint64, 0, len(candidates))
	for _, id := range candidates {
		if _, present := lookup.Positions(id); present {
			keys = append(keys, id)
		}
	}
	return keys, nil
}

// DatasetAccessor adapts the accessor to the Dataset container shape.
type DatasetAccessor struct {
	shared
	obj *core.Dataset
}

// ForDataset discovers the cell index on a Dataset and returns an
// accessor bound to it. Fails with ErrNoIndex or ErrMultipleIndexes.
func ForDataset(ds *core.Dataset) (*DatasetAccessor, error) {
	idx, err := discover(ds.Indexes())
	if err != nil {
		return nil, err
	}
	return &DatasetAccessor{shared: shared{index: idx}, obj: ds}, nil
}

// Index returns the discovered cell index.
func (a *DatasetAccessor) Index() *cellindex.CellIndex { return a.index }

// SelCells selects by raw cell ids along the index dimension.
func (a *DatasetAccessor) SelCells(ids []uint64) (*core.Dataset, error) {
	return a.obj.Sel(map[string][]uint64{a.index.Dim(): ids})
}

// SelLatLon selects the cells containing the given points. A point in
// a cell absent from the index domain fails with the engine's
// missing-key error (core.ErrKeyNotFound), propagated unchanged.
func (a *DatasetAccessor) SelLatLon(lat, lon []float64) (*core.Dataset, error) {
	keys, err := a.pointKeys(lat, lon)
	if err != nil {
		return nil, err
	}
	return a.SelCells(keys)
}

// Query selects the cells covered by a region. Candidate cells outside
// the index domain are masked out; the result may have zero positions
// along the index dimension.
func (a *DatasetAccessor) Query(geom orb.Geometry) (*core.Dataset, error) {
	keys, err := a.regionKeys(geom)
	if err != nil {
		return nil, err
	}
	return a.SelCells(keys)
}

// AssignLatLonCoords returns a new Dataset with latitude and longitude
// coordinates holding the cell centers along the index dimension. The
// original Dataset is untouched.
func (a *DatasetAccessor) AssignLatLonCoords() (*core.Dataset, error) {
	lat, lon, err := a.index.CellCenters()
	if err != nil {
		return nil, err
	}
	dim := a.index.Dim()
	out, err := a.obj.AssignCoords(LatitudeCoord, dim, lat)
	if err != nil {
		return nil, err
	}
	return out.AssignCoords(LongitudeCoord, dim, lon)
}

// DataArrayAccessor adapts the accessor to the DataArray container
// shape; semantics mirror DatasetAccessor.
type DataArrayAccessor struct {
	shared
	obj *core.DataArray
}

// ForDataArray discovers the cell index on a DataArray and returns an
// accessor bound to it. Fails with ErrNoIndex or ErrMultipleIndexes.
func ForDataArray(da *core.DataArray) (*DataArrayAccessor, error) {
	idx, err := discover(da.Indexes())
	if err != nil {
		return nil, err
	}
	return &DataArrayAccessor{shared: shared{index: idx}, obj: da}, nil
}

// Index returns the discovered cell index.
func (a *DataArrayAccessor) Index() *cellindex.CellIndex { return a.index }

// SelCells selects by raw cell ids along the index dimension.
func (a *DataArrayAccessor) SelCells(ids []uint64) (*core.DataArray, error) {
	return a.obj.Sel(map[string][]uint64{a.index.Dim(): ids})
}

// SelLatLon selects the cells containing the given points, propagating
// missing-key errors.
func (a *DataArrayAccessor) SelLatLon(lat, lon []float64) (*core.DataArray, error) {
	keys, err := a.pointKeys(lat, lon)
	if err != nil {
		return nil, err
	}
	return a.SelCells(keys)
}

// Query selects the cells covered by a region, masking candidates
// outside the index domain.
func (a *DataArrayAccessor) Query(geom orb.Geometry) (*core.DataArray, error) {
	keys, err := a.regionKeys(geom)
	if err != nil {
		return nil, err
	}
	return a.SelCells(keys)
}

// AssignLatLonCoords returns a new DataArray with latitude and
// longitude coordinates holding the cell centers along the index
// dimension.
func (a *DataArrayAccessor) AssignLatLonCoords() (*core.DataArray, error) {
	lat, lon, err := a.index.CellCenters()
	if err != nil {
		return nil, err
	}
	dim := a.index.Dim()
	out, err := a.obj.AssignCoords(LatitudeCoord, dim, lat)
	if err != nil {
		return nil, err
	}
	return out.AssignCoords(LongitudeCoord, dim, lon)
}
