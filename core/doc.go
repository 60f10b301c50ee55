// Package core provides the minimal labeled-array machinery the cell
// index plugs into: typed data columns, named-dimension variables,
// ordered position lookups, Dataset/DataArray containers, and the
// Index plugin registry.
//
// What:
//
//   - Data: a typed, flat column (Uint64s for cell ids, Float64s for
//     coordinates) selectable by position.
//   - Variable: an n-dimensional array with named dimensions, a flat
//     Data payload, and an attribute map; selected along one axis with
//     Isel.
//   - PositionLookup: an ordered cell-id → position(s) table over one
//     dimension; duplicate keys resolve to all matching positions.
//   - Index: the single plugin boundary for label-based indexes.
//     Builders register by kind; Dataset.SetIndex constructs and
//     attaches them.
//   - Dataset / DataArray: immutable-by-replacement containers with
//     Sel (label selection through indexes) and AssignCoords.
//
// Why:
//
//   - Label selection: translate cell-id keys into array positions.
//   - Alignment: order-sensitive lookup equality and index replacement
//     without mutation.
//   - Extensibility: new index kinds attach through the registry, no
//     other dispatch boundary exists.
//
// Complexity:
//
//   - PositionLookup construction: O(n) time and memory.
//   - Resolve: O(k) for k keys (amortized, map-backed).
//   - Variable.Isel: O(len(result)) gather.
//
// Errors:
//
//   - ErrShapeMismatch: data length or dimension sizes disagree.
//   - ErrDimNotFound: a named dimension is absent.
//   - ErrEmptyDim: a dimension name is empty.
//   - ErrPositionRange: a position is outside the valid range.
//   - ErrNoIndex: label selection requested on a dimension without an index.
//   - ErrKeyNotFound: a selection key is absent from the lookup.
//   - ErrUnknownIndexKind: no builder registered under the requested kind.
//   - ErrDTypeMismatch: a Data value has an unexpected concrete type.
//
// All containers are treated as immutable after construction; every
// mutating operation returns a new value.
package core
