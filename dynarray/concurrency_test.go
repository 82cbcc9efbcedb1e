// Package dynarray_test verifies that concurrent readers of an unmutated
// Array observe consistent values; run with -race.
package dynarray_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/seqkit/dynarray"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/lotsa"
)

// TestConcurrentReaders runs Get and whole-array operations from many goroutines.
func TestConcurrentReaders(t *testing.T) {
	const n = 256
	a := ints(n)
	var bad int64

	lotsa.Ops(4096, 8, func(i, _ int) {
		k := i % n
		v, err := a.Get(k)
		if err != nil || v != k {
			atomic.AddInt64(&bad, 1)
		}
		ext, err := a.Extract(k, n)
		if err != nil || ext.Size() != n-k {
			atomic.AddInt64(&bad, 1)
		}
		if a.Append(a).Size() != 2*n {
			atomic.AddInt64(&bad, 1)
		}
	})

	require.Zero(t, atomic.LoadInt64(&bad))
	require.True(t, dynarray.Equal(ints(n), a))
}
