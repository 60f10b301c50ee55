// Package core defines the foundational types and sentinel errors for
// the labeled-array engine: Data columns, Variables, PositionLookup,
// and the Index plugin contract.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core labeled-array operations.
var (
	// ErrShapeMismatch indicates data length or dimension sizes disagree.
	ErrShapeMismatch = errors.New("core: shape mismatch")
	// ErrDimNotFound indicates a named dimension is absent.
	ErrDimNotFound = errors.New("core: dimension not found")
	// ErrEmptyDim indicates an empty dimension name.
	ErrEmptyDim = errors.New("core: dimension name is empty")
	// ErrPositionRange indicates a position outside the valid range.
	ErrPositionRange = errors.New("core: position out of range")
	// ErrNoIndex indicates label selection on a dimension without an index.
	ErrNoIndex = errors.New("core: no index for dimension")
	// ErrKeyNotFound indicates a selection key absent from the lookup.
	ErrKeyNotFound = errors.New("core: key not found in index")
	// ErrUnknownIndexKind indicates no registered builder for an index kind.
	ErrUnknownIndexKind = errors.New("core: unknown index kind")
	// ErrDTypeMismatch indicates a Data value of an unexpected concrete type.
	ErrDTypeMismatch = errors.New("core: unexpected data type")
)

// Data is a typed, flat column of values. Implementations are value
// types; Take never aliases the receiver's storage.
type Data interface {
	// Len returns the number of stored values.
	Len() int
	// Take returns a new Data holding the values at the given flat
	// positions, in order. Returns ErrPositionRange on an invalid position.
	Take(positions []int) (Data, error)
	// Equal reports value equality with another column of the same
	// concrete type; differing types are never equal.
	Equal(other Data) bool
}

// Uint64s is an unsigned 64-bit integer column, the native cell-id dtype.
type Uint64s []uint64

// Len returns the number of stored values.
func (u Uint64s) Len() int { return len(u) }

// Take returns the values at the given positions as a new Uint64s.
func (u Uint64s) Take(positions []int) (Data, error) {
	out := make(Uint64s, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(u) {
			return nil, fmt.Errorf("core: position %d of %d values: %w", p, len(u), ErrPositionRange)
		}
		out[i] = u[p]
	}
	return out, nil
}

// Equal reports element-wise equality with another Uint64s.
func (u Uint64s) Equal(other Data) bool {
	o, ok := other.(Uint64s)
	if !ok || len(o) != len(u) {
		return false
	}
	for i := range u {
		if u[i] != o[i] {
			return false
		}
	}
	return true
}

// Float64s is a 64-bit floating point column, used for coordinates.
type Float64s []float64

// Len returns the number of stored values.
func (f Float64s) Len() int { return len(f) }

// Take returns the values at the given positions as a new Float64s.
func (f Float64s) Take(positions []int) (Data, error) {
	out := make(Float64s, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(f) {
			return nil, fmt.Errorf("core: position %d of %d values: %w", p, len(f), ErrPositionRange)
		}
		out[i] = f[p]
	}
	return out, nil
}

// Equal reports element-wise equality with another Float64s.
// NaN is not equal to NaN, matching the == semantics of float64.
func (f Float64s) Equal(other Data) bool {
	o, ok := other.(Float64s)
	if !ok || len(o) != len(f) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}
