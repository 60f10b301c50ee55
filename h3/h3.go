package h3

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	h3lib "github.com/uber/h3-go/v4"

	"github.com/katalvlaran/dggs/grid"
)

// GridName is the registered grid system name.
const GridName = "h3"

// MaxResolution is the deepest subdivision level H3 supports.
const MaxResolution = 15

// ErrUnsupportedGeometry indicates a region query with a geometry type
// the H3 polyfill cannot take.
var ErrUnsupportedGeometry = errors.New("h3: unsupported geometry type for region query")

func init() {
	grid.Register(GridName, func(mapping map[string]any) (grid.Info, error) {
		return InfoFromMap(mapping)
	})
}

// Info is an immutable H3 grid configuration. The zero value is not
// valid; use NewInfo or InfoFromMap.
type Info struct {
	resolution int
}

var _ grid.Info = (*Info)(nil)

// NewInfo constructs an H3 configuration at the given resolution.
// Returns grid.ErrResolution when resolution is outside [0, 15];
// out-of-range values are rejected, never clamped.
func NewInfo(resolution int) (*Info, error) {
	if resolution < 0 || resolution > MaxResolution {
		return nil, fmt.Errorf("h3: resolution must be an integer between 0 and %d, got %d: %w",
			MaxResolution, resolution, grid.ErrResolution)
	}
	return &Info{resolution: resolution}, nil
}

// InfoFromMap constructs an H3 configuration from a serialized
// mapping. The resolution key is required; a grid_name key, when
// present, must be "h3". The deprecated grid_type key is ignored.
func InfoFromMap(mapping map[string]any) (*Info, error) {
	if raw, ok := mapping[grid.AttrGridName]; ok {
		name, isString := raw.(string)
		if !isString || name != GridName {
			return nil, fmt.Errorf("h3: grid_name %v: %w", raw, grid.ErrUnknownGrid)
		}
	}
	resolution, err := grid.ResolutionFromMap(mapping)
	if err != nil {
		return nil, err
	}
	return NewInfo(resolution)
}

// Name returns "h3".
func (i *Info) Name() string { return GridName }

// Resolution returns the configured subdivision level.
func (i *Info) Resolution() int { return i.resolution }

// MaxResolution returns 15.
func (i *Info) MaxResolution() int { return MaxResolution }

// ToMap serializes the configuration as {grid_name: "h3", resolution}.
// grid.FromMap(i.ToMap()) reconstructs an equal Info.
func (i *Info) ToMap() map[string]any {
	return map[string]any{
		grid.AttrGridName:   GridName,
		grid.AttrResolution: i.resolution,
	}
}

// Equal reports whether other is an H3 configuration at the same
// resolution.
func (i *Info) Equal(other grid.Info) bool {
	o, ok := other.(*Info)
	return ok && o.resolution == i.resolution
}

// validate rejects any id that is not a valid H3 cell at the
// configured resolution.
func (i *Info) validate(ids []uint64) error {
	for _, id := range ids {
		c := h3lib.Cell(id)
		if !c.IsValid() || c.Resolution() != i.resolution {
			return fmt.Errorf("h3: cell %#x at resolution %d: %w", id, i.resolution, grid.ErrInvalidCellID)
		}
	}
	return nil
}

// CellToLatLon returns the center of each cell id, in order, degrees.
// Returns grid.ErrInvalidCellID naming the first offending id.
func (i *Info) CellToLatLon(ids []uint64) (lat, lon []float64, err error) {
	if err = i.validate(ids); err != nil {
		return nil, nil, err
	}
	lat = make([]float64, len(ids))
	lon = make([]float64, len(ids))
	for k, id := range ids {
		center := h3lib.CellToLatLng(h3lib.Cell(id))
		lat[k] = center.Lat
		lon[k] = center.Lng
	}
	return lat, lon, nil
}

// CellCenters is CellToLatLon under its conventional name.
func (i *Info) CellCenters(ids []uint64) (lat, lon []float64, err error) {
	return i.CellToLatLon(ids)
}

// LatLonToCell maps each (lat, lon) pair, degrees, to its containing
// cell id at the configured resolution. The ids are valid H3 cells but
// carry no relationship to any index domain.
// Returns grid.ErrCoordLength when the slices differ in length.
func (i *Info) LatLonToCell(lat, lon []float64) ([]uint64, error) {
	if len(lat) != len(lon) {
		return nil, fmt.Errorf("h3: %d latitudes vs %d longitudes: %w", len(lat), len(lon), grid.ErrCoordLength)
	}
	ids := make([]uint64, len(lat))
	for k := range lat {
		c := h3lib.LatLngToCell(h3lib.LatLng{Lat: lat[k], Lng: lon[k]}, i.resolution)
		ids[k] = uint64(c)
	}
	return ids, nil
}

// CellBoundaries returns one polygon per cell id: a single closed
// exterior ring in (lon, lat) vertex order, first vertex repeated
// last. Hexagons yield 7 ring points, the twelve pentagons 6.
func (i *Info) CellBoundaries(ids []uint64) ([]orb.Polygon, error) {
	if err := i.validate(ids); err != nil {
		return nil, err
	}
	polygons := make([]orb.Polygon, len(ids))
	for k, id := range ids {
		boundary := h3lib.CellToBoundary(h3lib.Cell(id))
		ring := make(orb.Ring, 0, len(boundary)+1)
		for _, vertex := range boundary {
			ring = append(ring, orb.Point{vertex.Lng, vertex.Lat})
		}
		ring = append(ring, ring[0])
		polygons[k] = orb.Polygon{ring}
	}
	return polygons, nil
}
