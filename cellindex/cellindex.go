package cellindex

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/dggs/core"
	"github.com/katalvlaran/dggs/grid"
)

// CellIndex maps cell ids to positions along one dimension of a
// labeled array. Immutable after construction; ReplaceLookup returns a
// new index.
type CellIndex struct {
	lookup *core.PositionLookup
	grid   grid.Info
}

var _ core.Index = (*CellIndex)(nil)

// New builds a CellIndex over cellIDs indexed along dim, configured by
// info, with cellIDs[i] resolving to position i (all matching
// positions for duplicated ids). Ids are not validated against the
// grid here; transforms do that.
// Complexity: O(len(cellIDs)) time and memory.
func New(cellIDs []uint64, dim string, info grid.Info) (*CellIndex, error) {
	if info == nil {
		return nil, fmt.Errorf("cellindex: nil grid info: %w", grid.ErrUnknownGrid)
	}
	lookup, err := core.NewPositionLookup(cellIDs, dim)
	if err != nil {
		return nil, err
	}
	return &CellIndex{lookup: lookup, grid: info}, nil
}

// Dim returns the indexed dimension name.
func (ci *CellIndex) Dim() string { return ci.lookup.Dim() }

// Lookup returns the underlying position lookup.
func (ci *CellIndex) Lookup() *core.PositionLookup { return ci.lookup }

// GridInfo returns the grid configuration.
func (ci *CellIndex) GridInfo() grid.Info { return ci.grid }

// CellIDs returns a copy of the held cell ids in position order.
func (ci *CellIndex) CellIDs() []uint64 { return ci.lookup.Keys() }

// SelectPositions translates cell-id selection keys into positions.
// Pass-through key translation: cell ids are already the lookup's
// native key type. A key absent from the index wraps
// core.ErrKeyNotFound.
func (ci *CellIndex) SelectPositions(keys []uint64) ([]int, error) {
	return ci.lookup.Resolve(keys)
}

// Equal reports whether other is a CellIndex over the same dimension,
// an equal grid configuration, and an equal (order-sensitive) lookup.
func (ci *CellIndex) Equal(other core.Index) bool {
	o, ok := other.(*CellIndex)
	if !ok {
		return false
	}
	return ci.grid.Equal(o.grid) && ci.lookup.Equal(o.lookup)
}

// ReplaceLookup returns a new CellIndex preserving the grid
// configuration over the substituted lookup. The receiver is
// untouched; the engine's alignment and reindex machinery relies on
// this.
func (ci *CellIndex) ReplaceLookup(lookup *core.PositionLookup) core.Index {
	return &CellIndex{lookup: lookup, grid: ci.grid}
}

// CellToLatLon returns the center of each given cell id via the grid.
// Pure transform, no relationship to the held ids. Ids outside the
// configured resolution's domain fail with grid.ErrInvalidCellID.
func (ci *CellIndex) CellToLatLon(ids []uint64) (lat, lon []float64, err error) {
	return ci.grid.CellToLatLon(ids)
}

// LatLonToCell maps coordinate pairs to containing cell ids at the
// index's resolution. The result is a selection key, not guaranteed to
// match any id held by this index.
func (ci *CellIndex) LatLonToCell(lat, lon []float64) ([]uint64, error) {
	return ci.grid.LatLonToCell(lat, lon)
}

// GeomToCells converts a region to candidate cell ids via the grid.
// An empty cover is an empty slice, not an error.
func (ci *CellIndex) GeomToCells(geom orb.Geometry) ([]uint64, error) {
	return ci.grid.GeomToCells(geom)
}

// CellCenters returns the center of every held cell id, in index
// order; the data behind assigned latitude/longitude coordinates.
func (ci *CellIndex) CellCenters() (lat, lon []float64, err error) {
	return ci.grid.CellCenters(ci.lookup.Keys())
}

// CellBoundaries returns the boundary polygon of every held cell id,
// in index order.
func (ci *CellIndex) CellBoundaries() ([]orb.Polygon, error) {
	return ci.grid.CellBoundaries(ci.lookup.Keys())
}

// InlineRepr renders a one-line summary. The full form names the grid
// and resolution; when it exceeds maxWidth the grid name is dropped.
// The result always carries the resolution and is never cut mid-token,
// even when still wider than maxWidth.
func (ci *CellIndex) InlineRepr(maxWidth int) string {
	full := fmt.Sprintf("CellIndex(grid_name=%s, resolution=%d)", ci.grid.Name(), ci.grid.Resolution())
	if len(full) <= maxWidth {
		return full
	}
	return fmt.Sprintf("CellIndex(resolution=%d)", ci.grid.Resolution())
}
