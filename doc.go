// Package dggs indexes labeled arrays by discrete global grid system
// (DGGS) cell identifiers — select data by cell id, by lat/lon point,
// or by geometric region.
//
// 🚀 What is dggs?
//
//	A small, synchronous, in-memory library that brings together:
//		• grid/      — grid-system abstraction: name + resolution, mapping round-trips
//		• h3/        — H3 implementation of grid.Info over uber/h3-go
//		• core/      — minimal labeled-array engine: variables, datasets,
//		               ordered position lookups, and the index plugin registry
//		• cellindex/ — the cell index: cell-id ↔ lat/lon transforms,
//		               selection-key translation, alignment-safe replacement
//		• accessor/  — façade over Dataset/DataArray: point queries,
//		               polygon queries, coordinate assignment
//
// ✨ Why choose dggs?
//
//   - Deterministic – every operation is a pure computation with explicit errors
//   - Immutable – indexes and containers are replaced, never mutated in place
//   - Extensible – register new grid systems and index kinds by name
//   - Pure API – no I/O, no goroutines, no hidden state
//
// Data flows one way: a raw cell-id variable plus its grid attributes
// become a cellindex.CellIndex, the index is registered on the owning
// Dataset or DataArray, and the accessor translates points and polygons
// into cell ids that the index resolves to array positions.
//
// Start with package accessor for the user-facing surface.
//
//	go get github.com/katalvlaran/dggs
package dggs
