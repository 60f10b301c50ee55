// Package h3 implements grid.Info for Uber's H3 hierarchical hexagonal
// grid, delegating all cell math to the uber/h3-go binding of the H3 C
// library.
//
// What:
//
//   - Info: an immutable H3 configuration (grid name "h3" plus a
//     resolution in [0, 15]).
//   - Cell centers, closed boundary polygons, lat/lon ↔ cell id
//     transforms, and polygon/region polyfill at the configured
//     resolution.
//   - Registers itself with the grid factory registry under "h3" at
//     init, so grid.FromMap({"grid_name": "h3", ...}) resolves here.
//
// Why:
//
//   - H3 is the grid system the cell index currently targets; the
//     package is the sole boundary to the external grid oracle.
//
// Errors:
//
//   - grid.ErrResolution: resolution outside [0, 15] at construction.
//   - grid.ErrMissingResolution: mapping without an integer resolution.
//   - grid.ErrUnknownGrid: mapping naming a grid other than "h3".
//   - grid.ErrInvalidCellID: transform input that is not a valid H3
//     cell at the configured resolution.
//   - ErrUnsupportedGeometry: region query with a geometry type the
//     polyfill cannot take (only Polygon, MultiPolygon, and Bound are
//     accepted).
//
// A lat/lon → cell → lat/lon round trip is lossy by design: the
// coordinates snap to the containing cell's center.
package h3
