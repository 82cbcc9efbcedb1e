// Package seqkit is a small, zero-surprise home for sequence containers
// with explicit capacity, index and ownership semantics.
//
// What lives here?
//
//	dynarray/ — Array[T]: a resizable, indexable sequence with amortized
//	            O(1) append, bounds-checked access that returns errors
//	            instead of panicking, and whole-array operations
//	            (Append, Insert, SplitPrefix, SplitSuffix, Delete, Extract)
//	            that always build a new, independent array.
//
// Why seqkit?
//
//   - Value semantics – no result ever aliases an operand's backing store
//   - Typed failures – sentinel errors matched with errors.Is
//   - Predictable cost – doubling growth, exact-size results
//   - Pure Go – generics, no cgo
//
// Quick example:
//
//	a := dynarray.Of('a', 'b', 'c', 'd')
//	mid, _ := a.Extract(1, 3) // [b c]
//	both := a.Append(a)       // [a b c d a b c d], a unchanged
//
//	go get github.com/katalvlaran/seqkit/dynarray
package seqkit
