// SPDX-License-Identifier: MIT

package dynarray

// Equal reports whether a and b hold the same elements in the same order.
// Capacity is ignored; nil compares equal to any empty array.
// Complexity: O(n).
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	xs, ys := a.live(), b.live()
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !eq(xs[i], ys[i]) {
			return false
		}
	}

	return true
}
