// SPDX-License-Identifier: MIT

// Package dynarray - Array storage, growth & element accessors.
//
// Purpose:
//   - Own a fixed-length slot buffer and track size separately from capacity.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Grow by doubling so that n appends cost O(n) element moves in total.
//
// Complexity quicksheet:
//   - New: O(c) zero-init; Get/Set/Size/Cap: O(1); Add: O(1) amortized;
//     AddAt/Remove: O(n-i); Clone/Values: O(n).

package dynarray

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// New creates an empty Array able to hold initialCapacity elements before
// its first reallocation.
// MAIN DESCRIPTION:
//   - Public constructor with strict capacity validation.
//
// Implementation:
//   - Stage 1: validate initialCapacity ≥ 0; else ErrInvalidArgument.
//   - Stage 2: apply options.
//   - Stage 3: allocate a zero-filled slot buffer of exactly initialCapacity.
//
// Behavior highlights:
//   - Size() == 0 and Cap() == initialCapacity on success.
//   - No partial object on failure.
//
// Errors:
//   - ErrInvalidArgument (negative capacity).
//
// Complexity:
//   - Time O(c), Space O(c).
func New[T any](initialCapacity int, opts ...Option) (*Array[T], error) {
	if initialCapacity < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, initialCapacity, ErrInvalidArgument)
	}

	return &Array[T]{
		store: make([]T, initialCapacity),
		cfg:   newConfig(opts),
	}, nil
}

// Of builds an Array holding values in order, with capacity == len(values).
// The values slice is copied; later writes to it are not observed.
// Complexity: O(n).
func Of[T any](values ...T) *Array[T] {
	store := make([]T, len(values))
	copy(store, values)

	return &Array[T]{store: store, length: len(values)}
}

// Copy returns a deep-independent duplicate of other (see Clone).
// A nil other yields an empty Array.
func Copy[T any](other *Array[T]) *Array[T] {
	if other == nil {
		return &Array[T]{}
	}

	return other.Clone()
}

// Clone returns a deep copy: new buffer, same size, elements, capacity and options.
// MAIN DESCRIPTION:
//   - Produce an independent Array; mutations on either side are not observed by the other.
//
// Implementation:
//   - Stage 1: allocate a buffer of len(store).
//   - Stage 2: copy the live prefix [0,length); spare slots stay zero.
//
// Complexity:
//   - Time O(c), Space O(c).
func (a *Array[T]) Clone() *Array[T] {
	store := make([]T, len(a.store))
	copy(store, a.store[:a.length])

	return &Array[T]{store: store, length: a.length, cfg: a.cfg}
}

// Size returns the number of live elements.
// Complexity: O(1).
func (a *Array[T]) Size() int { return a.length }

// Cap returns the number of allocated slots. Cap() ≥ Size() always.
// Complexity: O(1).
func (a *Array[T]) Cap() int { return len(a.store) }

// Get returns the element at i or ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	if err := checkElement(i, a.length); err != nil {
		var zero T
		return zero, indexErrorf(ctxGet, i, a.length, err)
	}

	return a.store[i], nil
}

// Set stores v at i and returns the element it replaced.
// On ErrOutOfRange the receiver is left untouched.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) (T, error) {
	if err := checkElement(i, a.length); err != nil {
		var zero T
		return zero, indexErrorf(ctxSet, i, a.length, err)
	}
	prev := a.store[i]
	a.store[i] = v

	return prev, nil
}

// AddAt inserts v at position i, shifting [i, Size()) right by one.
// MAIN DESCRIPTION:
//   - In-place positional insert with amortized doubling growth.
//
// Implementation:
//   - Stage 1: validate 0 ≤ i ≤ Size(); else ErrOutOfRange (receiver unchanged).
//   - Stage 2: grow when Size() == Cap().
//   - Stage 3: shift the tail right by one slot and write v.
//
// Behavior highlights:
//   - i == Size() appends.
//   - Growth happens before the shift so each element moves at most twice.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0, Size()].
//
// Complexity:
//   - Time O(n-i) plus amortized O(1) growth, Space O(1) amortized.
func (a *Array[T]) AddAt(i int, v T) error {
	if err := checkBoundary(i, a.length); err != nil {
		return indexErrorf(ctxAddAt, i, a.length, err)
	}
	if a.length == len(a.store) {
		a.grow()
	}
	copy(a.store[i+1:a.length+1], a.store[i:a.length])
	a.store[i] = v
	a.length++

	return nil
}

// Add appends v. It cannot fail.
// Complexity: O(1) amortized.
func (a *Array[T]) Add(v T) {
	if a.length == len(a.store) {
		a.grow()
	}
	a.store[a.length] = v
	a.length++
}

// Remove deletes and returns the element at i, shifting [i+1, Size()) left.
// The vacated trailing slot is cleared so it no longer retains the value;
// capacity is unchanged.
// Complexity: O(n-i).
func (a *Array[T]) Remove(i int) (T, error) {
	var zero T
	if err := checkElement(i, a.length); err != nil {
		return zero, indexErrorf(ctxRemove, i, a.length, err)
	}
	removed := a.store[i]
	copy(a.store[i:a.length-1], a.store[i+1:a.length])
	a.length--
	a.store[a.length] = zero

	return removed, nil
}

// Values returns a fresh slice holding the live elements in order.
// Complexity: O(n).
func (a *Array[T]) Values() []T {
	out := make([]T, a.length)
	copy(out, a.store[:a.length])

	return out
}

// String renders the live elements as "[e0 e1 ...]" using %v per element.
// Intended for diagnostics; not for hot paths.
// Complexity: O(n).
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < a.length; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, a.store[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// grow reallocates the slot buffer to max(2*cap, cap+1) and copies the live prefix.
// Capacity 0 grows to 1.
func (a *Array[T]) grow() {
	from := len(a.store)
	to := from * 2
	if to < from+1 {
		to = from + 1
	}
	store := make([]T, to)
	copy(store, a.store[:a.length])
	a.store = store

	a.cfg.reportGrow(GrowEvent{From: from, To: to, Moved: a.length})
}

// derive allocates an empty result of exactly n slots that inherits a's options.
func (a *Array[T]) derive(n int) *Array[T] {
	return &Array[T]{store: make([]T, n), cfg: a.cfg}
}

// fill appends the parts into a without growth; a must have room for all of them.
func (a *Array[T]) fill(parts ...[]T) *Array[T] {
	for _, p := range parts {
		a.length += copy(a.store[a.length:], p)
	}

	return a
}

// live returns the read-only window over the live elements of a.
// A nil receiver yields an empty window so nil operands behave as empty arrays.
func (a *Array[T]) live() []T {
	if a == nil {
		return nil
	}

	return a.store[:a.length]
}
