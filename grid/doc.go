// Package grid abstracts a discrete global grid system (DGGS)
// configuration: a grid name plus a subdivision resolution, with the
// coordinate and geometry transforms that configuration implies.
//
// What:
//
//   - Info describes one immutable grid configuration and exposes the
//     cell-id ↔ lat/lon transforms, cell centers and boundaries, and
//     region-to-cells conversion for that configuration.
//   - A process-wide factory registry maps grid names to Info
//     constructors; implementations (package h3) register themselves
//     in init.
//   - FromMap / Info.ToMap round-trip the flat serialized layout
//     {grid_name, resolution} attached as attributes on cell-id
//     variables.
//
// Why:
//
//   - One boundary for grid math: everything grid-system specific is
//     delegated to the registered implementation, treated as an oracle.
//   - Persisted configuration must survive save/reload bit-for-bit;
//     the mapping layout is the only serialized form.
//
// Errors:
//
//   - ErrUnknownGrid: grid name not registered.
//   - ErrMissingGridName: mapping lacks the grid_name key.
//   - ErrMissingResolution: mapping lacks the resolution key.
//   - ErrResolution: resolution outside [0, max] — rejected, never clamped.
//   - ErrInvalidCellID: a cell id outside the valid domain for the
//     configured resolution was passed to a transform.
//   - ErrCoordLength: latitude and longitude slices of differing length.
//
// The deprecated grid_type key is ignored entirely; grid_name is
// canonical.
package grid
