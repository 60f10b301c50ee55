// Package cellindex binds DGGS cell identifiers to labeled-array
// positions: one cell id per position along one dimension, resolved
// through an ordered position lookup, configured by an immutable
// grid.Info.
//
// What:
//
//   - CellIndex implements core.Index and is registered with the core
//     index-builder registry under Kind ("dggs").
//   - Construction: New from raw cell ids, or FromVariables, which
//     extracts the cell-id variable from a candidate set by name
//     precedence (cell_ids, zonal_ids, zone_ids) and reads the grid
//     configuration from its attributes.
//   - Coordinate transforms delegated to the grid: CellToLatLon,
//     LatLonToCell, CellCenters, CellBoundaries, GeomToCells.
//   - Alignment primitives: order-sensitive Equal and non-mutating
//     ReplaceLookup, as the engine's reindex machinery requires.
//   - InlineRepr: a width-aware one-line summary naming the grid and
//     resolution.
//
// Why:
//
//   - Selection by cell id, by point, or by region all reduce to cell
//     ids looked up in this index's position table.
//
// Errors:
//
//   - ErrNoCellVariable: no candidate variable matched.
//   - ErrAmbiguousCells: candidates on more than one dimension.
//   - ErrNotOneDim: the candidate variable is not one-dimensional.
//   - ErrCellDType: the candidate's payload is not uint64.
//   - grid.* errors propagate from configuration and transforms.
//
// Cell ids are not validated at construction; transforms validate
// against the configured resolution and fail with
// grid.ErrInvalidCellID. Duplicate cell ids are permitted — selecting
// a duplicated id yields all matching positions.
package cellindex
