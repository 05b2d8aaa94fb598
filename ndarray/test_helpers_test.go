// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities.
//   • Compare arrays structurally (Equal) instead of via reflect, so nil and
//     empty child slices are treated alike.

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/octave/ndarray"
	"github.com/stretchr/testify/require"
)

// mustNested builds an Array from a Go literal or fails the test.
func mustNested(t *testing.T, v any) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromNested(v)
	require.NoError(t, err)

	return a
}

// requireArray fails unless got is structurally equal to want.
func requireArray(t *testing.T, want, got *ndarray.Array) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

// magic3 returns [[1,2,3],[4,5,6],[7,8,9]].
func magic3(t *testing.T) *ndarray.Array {
	t.Helper()

	return mustNested(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

// sequential returns an array of shape dims whose leaves are 0,1,2,... in row-major order.
func sequential(t *testing.T, dims ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.Zeros(dims...)
	require.NoError(t, err)

	// Leaves are written through WriteSlice one point at a time so the fixture
	// does not depend on package internals.
	next := 0.0
	shape := ndarray.ShapeOf(a)
	idx := make([]ndarray.IndexSpec, len(shape))
	var walk func(axis int)
	walk = func(axis int) {
		if axis == len(shape) {
			require.NoError(t, ndarray.WriteSlice(a, idx, ndarray.Scalar(next)))
			next++
			return
		}
		for i := 0; i < shape[axis]; i++ {
			idx[axis] = ndarray.Point(i)
			walk(axis + 1)
		}
	}
	walk(0)

	return a
}

// leafAt returns the scalar at the given coordinates.
func leafAt(t *testing.T, a *ndarray.Array, coords ...int) float64 {
	t.Helper()
	cur := a
	for _, c := range coords {
		var err error
		cur, err = cur.Elem(c)
		require.NoError(t, err)
	}
	v, err := cur.Value()
	require.NoError(t, err)

	return v
}
