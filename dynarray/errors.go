// SPDX-License-Identifier: MIT
// Package dynarray: sentinel error set.
// Public methods return these sentinels (possibly wrapped with call context)
// and tests match them via errors.Is. No public method panics on user input.

package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by New when the requested initial
	// capacity is negative. No array is produced.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrOutOfRange indicates an index outside the bounds accepted by the
	// operation ([0,size) for element access, [0,size] for boundaries).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrInvalidRange indicates a two-index operation where from > to while
	// both indices are individually within [0,size].
	ErrInvalidRange = errors.New("dynarray: invalid range")
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxGet         = "Get"
	ctxSet         = "Set"
	ctxAddAt       = "AddAt"
	ctxRemove      = "Remove"
	ctxInsert      = "Insert"
	ctxSplitPrefix = "SplitPrefix"
	ctxSplitSuffix = "SplitSuffix"
	ctxDelete      = "Delete"
	ctxExtract     = "Extract"
)

// indexErrorf wraps err with the method tag, the offending index and the size
// observed at the call site: "Array.Get(6) [size=6]: dynarray: index out of range".
func indexErrorf(method string, i, size int, err error) error {
	return fmt.Errorf("Array.%s(%d) [size=%d]: %w", method, i, size, err)
}

// rangeErrorf is the two-index sibling of indexErrorf.
func rangeErrorf(method string, from, to, size int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d) [size=%d]: %w", method, from, to, size, err)
}
