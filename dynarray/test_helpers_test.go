// SPDX-License-Identifier: MIT
// Package dynarray_test contains test helpers
//
// Purpose:
//   - Build small, deterministic rune fixtures ("abcdef", "wxyz", "", "s").
//   - Compare arrays against strings element by element.

package dynarray_test

import (
	"testing"

	"github.com/katalvlaran/seqkit/dynarray"
	"github.com/stretchr/testify/require"
)

// fixtures mirrors the classic a1/a2/empty/s quartet.
type fixtures struct {
	a1, a2, empty, s *dynarray.Array[rune]
}

// newFixtures returns fresh fixtures; each test gets its own so mutations never leak.
func newFixtures(t *testing.T) fixtures {
	t.Helper()

	return fixtures{
		a1:    fromString(t, "abcdef"),
		a2:    fromString(t, "wxyz"),
		empty: fromString(t, ""),
		s:     fromString(t, "s"),
	}
}

// fromString BUILDS an Array[rune] with capacity == rune count by positional AddAt.
// Fatal on any error so callers can assume a well-formed fixture.
func fromString(t testing.TB, s string) *dynarray.Array[rune] {
	t.Helper()
	rs := []rune(s)
	a, err := dynarray.New[rune](len(rs))
	if err != nil {
		t.Fatalf("New(%d): %v", len(rs), err)
	}
	for i, r := range rs {
		if err = a.AddAt(i, r); err != nil {
			t.Fatalf("AddAt(%d,%q): %v", i, r, err)
		}
	}

	return a
}

// requireElems asserts arr holds exactly the runes of want, in order.
func requireElems(t *testing.T, arr *dynarray.Array[rune], want string) {
	t.Helper()
	require.NotNil(t, arr)
	require.Equal(t, len([]rune(want)), arr.Size(), "[%s] sizes differ", want)
	require.Equal(t, want, string(arr.Values()), "[%s] elements differ", want)
	require.GreaterOrEqual(t, arr.Cap(), arr.Size(), "[%s] capacity below size", want)
}

// ints returns 0..n-1 as an Array[int] with exact capacity.
func ints(n int) *dynarray.Array[int] {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}

	return dynarray.Of(vals...)
}
