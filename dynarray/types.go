// SPDX-License-Identifier: MIT

// Package dynarray: domain types.
// This file declares the read-only Sequence contract and the Array container.
// Errors, options and validators live in dedicated files.

package dynarray

import "fmt"

// Sequence is the read-only, index-based view shared by sequence containers.
// Complexity notes: both methods are expected O(1).
type Sequence[T any] interface {
	// Get returns the element at i or ErrOutOfRange if i ∉ [0, Size()).
	Get(i int) (T, error)

	// Size returns the number of logically present elements.
	Size() int
}

// Array is a resizable, indexable sequence with value semantics.
//   - store is the owned backing buffer; len(store) is the capacity.
//   - length counts the live elements in store[0:length).
//   - cfg carries the reporting options (see options.go).
//
// The zero value is an empty Array with capacity 0, ready to use.
type Array[T any] struct {
	store  []T    // fixed-length slot buffer, never shared with another Array
	length int    // live elements, 0 ≤ length ≤ len(store)
	cfg    config // reporting options, inherited by derived arrays
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Sequence[int] = (*Array[int])(nil)
	_ fmt.Stringer  = (*Array[int])(nil)
)
