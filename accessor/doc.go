// Package accessor is the user-facing façade over labeled arrays
// carrying a cell index: discover the index, select by point or by
// region, and materialize cell-center coordinates.
//
// What:
//
//   - ForDataset / ForDataArray: one adapter per container shape, both
//     delegating to the same underlying implementation. Construction
//     scans the container's index registry for exactly one
//     cellindex.CellIndex and caches it.
//   - SelLatLon: translate points to cell ids at the index resolution
//     and select; a point whose cell is absent from the index domain
//     propagates the engine's missing-key error.
//   - Query: translate a region to candidate cell ids, silently drop
//     the ids absent from the index domain (deliberate masking, not an
//     error), and select — possibly down to a zero-length subset.
//   - SelCells: select by raw cell ids.
//   - AssignLatLonCoords: attach latitude/longitude coordinates holding
//     the cell centers along the index dimension, returning a new
//     container.
//
// Why:
//
//   - One discovery point and one query surface regardless of the
//     container shape.
//
// Errors:
//
//   - ErrNoIndex: the container carries no cell index.
//   - ErrMultipleIndexes: more than one cell index on one container —
//     detected and rejected, never resolved by precedence.
//
// Note the asymmetry, preserved on purpose: point selection propagates
// missing keys, region queries mask them.
package accessor
