package grid

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
)

// Mapping keys of the serialized grid configuration.
const (
	// AttrGridName holds the grid system name ("h3").
	AttrGridName = "grid_name"
	// AttrResolution holds the integer subdivision level.
	AttrResolution = "resolution"
)

// Sentinel errors for grid configuration and transforms.
var (
	// ErrUnknownGrid indicates an unregistered grid name.
	ErrUnknownGrid = errors.New("grid: unrecognized grid name")
	// ErrMissingGridName indicates a mapping without the grid_name key.
	ErrMissingGridName = errors.New("grid: missing grid_name key")
	// ErrMissingResolution indicates a mapping without the resolution key.
	ErrMissingResolution = errors.New("grid: missing resolution key")
	// ErrResolution indicates a resolution outside the grid's valid range.
	ErrResolution = errors.New("grid: resolution out of range")
	// ErrInvalidCellID indicates a cell id outside the valid domain for
	// the configured resolution.
	ErrInvalidCellID = errors.New("grid: invalid cell id for configured resolution")
	// ErrCoordLength indicates latitude/longitude slices of differing length.
	ErrCoordLength = errors.New("grid: latitude and longitude lengths differ")
)

// Info is one immutable grid configuration. Implementations must be
// safe for concurrent readers and must validate resolution bounds at
// construction, never clamping.
//
// Latitudes and longitudes are degrees. Boundary polygons use
// (lon, lat) vertex order with a closed exterior ring, as produced by
// the underlying grid library.
type Info interface {
	// Name returns the grid system name.
	Name() string
	// Resolution returns the configured subdivision level.
	Resolution() int
	// MaxResolution returns the deepest level the grid system supports.
	MaxResolution() int
	// ToMap serializes the configuration as {grid_name, resolution}.
	// FromMap(ToMap()) reconstructs an equal Info (round-trip law).
	ToMap() map[string]any
	// Equal reports configuration equality by value.
	Equal(other Info) bool

	// CellToLatLon returns the representative (center) point of each
	// cell id, in order. Fails with ErrInvalidCellID on any id outside
	// the configured resolution's domain.
	CellToLatLon(ids []uint64) (lat, lon []float64, err error)
	// LatLonToCell maps each coordinate pair to its containing cell id
	// at the configured resolution. The result need not belong to any
	// particular index domain.
	LatLonToCell(lat, lon []float64) ([]uint64, error)
	// CellCenters is CellToLatLon under its conventional name.
	CellCenters(ids []uint64) (lat, lon []float64, err error)
	// CellBoundaries returns one closed polygon per cell id. No caching.
	CellBoundaries(ids []uint64) ([]orb.Polygon, error)
	// GeomToCells converts a geometric region to the cell ids it covers
	// at the configured resolution. A region covering no cell yields an
	// empty slice, not an error.
	GeomToCells(geom orb.Geometry) ([]uint64, error)
}

// Factory constructs an Info from a serialized mapping. The mapping's
// grid_name, when present, must agree with the factory's grid.
type Factory func(mapping map[string]any) (Info, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a grid system available by name. Intended to be
// called from the implementing package's init.
// Panics if name is empty, factory is nil, or name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if name == "" {
		panic("grid: Register with empty name")
	}
	if factory == nil {
		panic("grid: Register with nil factory")
	}
	if _, dup := registry[name]; dup {
		panic("grid: Register called twice for name " + name)
	}
	registry[name] = factory
}

// New constructs an Info for the named grid from a mapping.
// Returns ErrUnknownGrid for an unregistered name.
func New(name string, mapping map[string]any) (Info, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("grid: %q: %w", name, ErrUnknownGrid)
	}
	return factory(mapping)
}

// FromMap constructs an Info from a serialized mapping, dispatching on
// its grid_name key. Returns ErrMissingGridName when the key is absent
// or not a string.
func FromMap(mapping map[string]any) (Info, error) {
	raw, ok := mapping[AttrGridName]
	if !ok {
		return nil, ErrMissingGridName
	}
	name, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("grid: grid_name %v (%T): %w", raw, raw, ErrMissingGridName)
	}
	return New(name, mapping)
}

// ResolutionFromMap extracts the required integer resolution key from
// a mapping, accepting any integral numeric representation (whole
// floats included, for mappings decoded from JSON and friends).
// Returns ErrMissingResolution when absent or non-integral.
func ResolutionFromMap(mapping map[string]any) (int, error) {
	raw, ok := mapping[AttrResolution]
	if !ok {
		return 0, ErrMissingResolution
	}
	res, ok := IntValue(raw)
	if !ok {
		return 0, fmt.Errorf("grid: resolution %v (%T) is not an integer: %w", raw, raw, ErrMissingResolution)
	}
	return res, nil
}

// IntValue converts an integral numeric value of any common Go type to
// int, reporting whether the conversion was exact.
func IntValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		if float32(int(n)) == n {
			return int(n), true
		}
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	}
	return 0, false
}
