// SPDX-License-Identifier: MIT

// Package dynarray - whole-array operations.
//
// Purpose:
//   - Build new, independent arrays from slices of the receiver and an operand.
//   - Never mutate either operand; size each result exactly (Cap() == Size()).
//
// Behavior highlights:
//   - Every index equal to Size() is a valid boundary.
//   - A nil operand is treated as an empty array.
//   - Self-referential calls (a.Append(a), a.Insert(i, a)) read the operand
//     before anything is written, and only the fresh result is written.
//   - Results inherit the receiver's options.
//
// Complexity quicksheet:
//   - All operations: Time O(result size), Space O(result size).

package dynarray

// Append returns this ++ other. Neither operand is modified.
func (a *Array[T]) Append(other *Array[T]) *Array[T] {
	head, tail := a.live(), other.live()

	return a.derive(len(head) + len(tail)).fill(head, tail)
}

// Insert returns this[0,i) ++ other ++ this[i,n).
// MAIN DESCRIPTION:
//   - Positional splice of a whole sequence into a copy of the receiver.
//
// Implementation:
//   - Stage 1: validate 0 ≤ i ≤ Size(); else ErrOutOfRange.
//   - Stage 2: allocate the exact result and copy the three parts in order.
//
// Behavior highlights:
//   - i == 0 prepends, i == Size() appends.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0, Size()].
//
// Complexity:
//   - Time O(n+m), Space O(n+m).
func (a *Array[T]) Insert(i int, other *Array[T]) (*Array[T], error) {
	if err := checkBoundary(i, a.length); err != nil {
		return nil, indexErrorf(ctxInsert, i, a.length, err)
	}
	src, mid := a.live(), other.live()

	return a.derive(len(src)+len(mid)).fill(src[:i], mid, src[i:]), nil
}

// SplitPrefix returns this[0,i).
// Errors: ErrOutOfRange when i ∉ [0, Size()].
func (a *Array[T]) SplitPrefix(i int) (*Array[T], error) {
	if err := checkBoundary(i, a.length); err != nil {
		return nil, indexErrorf(ctxSplitPrefix, i, a.length, err)
	}

	return a.derive(i).fill(a.store[:i]), nil
}

// SplitSuffix returns this[i,n).
// Errors: ErrOutOfRange when i ∉ [0, Size()].
func (a *Array[T]) SplitSuffix(i int) (*Array[T], error) {
	if err := checkBoundary(i, a.length); err != nil {
		return nil, indexErrorf(ctxSplitSuffix, i, a.length, err)
	}

	return a.derive(a.length - i).fill(a.store[i:a.length]), nil
}

// Delete returns this[0,from) ++ this[to,n); from == to yields an unchanged copy.
// MAIN DESCRIPTION:
//   - Range removal producing a new array; the receiver keeps all elements.
//
// Errors:
//   - ErrOutOfRange when from or to ∉ [0, Size()].
//   - ErrInvalidRange when from > to.
//
// Complexity:
//   - Time O(n-(to-from)), Space O(n-(to-from)).
func (a *Array[T]) Delete(from, to int) (*Array[T], error) {
	if err := checkRange(from, to, a.length); err != nil {
		return nil, rangeErrorf(ctxDelete, from, to, a.length, err)
	}

	return a.derive(a.length-(to-from)).fill(a.store[:from], a.store[to:a.length]), nil
}

// Extract returns this[from,to); from == to yields an empty array.
// Errors: ErrOutOfRange when from or to ∉ [0, Size()]; ErrInvalidRange when from > to.
// Complexity: Time O(to-from), Space O(to-from).
func (a *Array[T]) Extract(from, to int) (*Array[T], error) {
	if err := checkRange(from, to, a.length); err != nil {
		return nil, rangeErrorf(ctxExtract, from, to, a.length, err)
	}

	return a.derive(to - from).fill(a.store[from:to]), nil
}

// Concat returns parts[0] ++ parts[1] ++ ... as a new array of exact size.
// Nil parts count as empty. The result inherits the options of the first
// non-nil part; with no non-nil part the result is an empty Array.
func Concat[T any](parts ...*Array[T]) *Array[T] {
	var (
		total int
		first *Array[T]
		views = make([][]T, 0, len(parts))
	)
	for _, p := range parts {
		if p == nil {
			continue
		}
		if first == nil {
			first = p
		}
		total += p.length
		views = append(views, p.live())
	}
	if first == nil {
		return &Array[T]{}
	}

	return first.derive(total).fill(views...)
}
