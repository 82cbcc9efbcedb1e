// SPDX-License-Identifier: MIT

// Package dynarray - index validators.
//
// Purpose:
//   - Single source of truth for the three bound shapes used by the API:
//     element index [0,n), boundary index [0,n], and range 0 ≤ from ≤ to ≤ n.
//   - Return bare sentinels; callers wrap them with method context.

package dynarray

// checkElement reports ErrOutOfRange unless 0 ≤ i < n.
// Complexity: O(1).
func checkElement(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// checkBoundary reports ErrOutOfRange unless 0 ≤ i ≤ n.
// Complexity: O(1).
func checkBoundary(i, n int) error {
	if i < 0 || i > n {
		return ErrOutOfRange
	}

	return nil
}

// checkRange validates a half-open range [from,to) against size n.
// Implementation:
//   - Stage 1: both ends must be boundaries of n, else ErrOutOfRange.
//   - Stage 2: from ≤ to, else ErrInvalidRange.
//
// The order matters: (-1, 5) is out of range, (2, 1) is an invalid range.
// Complexity: O(1).
func checkRange(from, to, n int) error {
	if err := checkBoundary(from, n); err != nil {
		return err
	}
	if err := checkBoundary(to, n); err != nil {
		return err
	}
	if from > to {
		return ErrInvalidRange
	}

	return nil
}
