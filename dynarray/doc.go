// SPDX-License-Identifier: MIT

// Package dynarray provides Array[T], a resizable, indexable sequence
// container with explicit capacity tracking and value semantics.
//
// Storage model:
//
//	store    [ e0 | e1 | ... | e(n-1) | _ | _ | _ ]
//	          <------- size n -------> <- spare ->
//	          <------------ capacity ------------->
//
//   - Elements occupy slots [0, Size()) contiguously, in logical order.
//   - Slots [Size(), Cap()) are spare and never observable through the API.
//   - Capacity only grows: AddAt/Add reallocate to max(2*cap, cap+1) when full;
//     Remove clears the vacated slot but keeps capacity.
//
// Element operations (mutate the receiver):
//
//	Get(i)        O(1)   0 ≤ i < Size()
//	Set(i, v)     O(1)   0 ≤ i < Size(), returns the previous element
//	AddAt(i, v)   O(n)   0 ≤ i ≤ Size(), amortized O(1) at i == Size()
//	Add(v)        O(1)†  append
//	Remove(i)     O(n)   0 ≤ i < Size()
//
// Whole-array operations (never mutate either operand, always return a new
// array whose capacity equals its size):
//
//	Append(other)        this ++ other
//	Insert(i, other)     this[0,i) ++ other ++ this[i,n)
//	SplitPrefix(i)       this[0,i)
//	SplitSuffix(i)       this[i,n)
//	Delete(from, to)     this[0,from) ++ this[to,n)
//	Extract(from, to)    this[from,to)
//
// Index == Size() is a valid boundary for every operation in the second
// table and for AddAt. Self-referential calls such as a.Append(a) are safe.
//
// Errors:
//
//	ErrInvalidArgument – negative initial capacity
//	ErrOutOfRange      – index outside the operation's bounds
//	ErrInvalidRange    – from > to for Delete/Extract
//
// Concurrency: Array is not synchronized. Concurrent readers are safe as long
// as nobody mutates the same instance; whole-array operations only read.
//
// † amortized: n appends perform O(n) element moves in total.
package dynarray
