package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/octave/ndarray"
	"github.com/stretchr/testify/require"
)

// TestTransposeMatrix checks the 2×3 → 3×2 case.
func TestTransposeMatrix(t *testing.T) {
	m := mustNested(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	got, err := ndarray.Transpose(m)
	require.NoError(t, err)
	requireArray(t, mustNested(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), got)
}

// TestTransposeVectors checks the row/column asymmetry.
func TestTransposeVectors(t *testing.T) {
	col, err := ndarray.Transpose(ndarray.Vector(1, 2, 3))
	require.NoError(t, err)
	requireArray(t, mustNested(t, [][]float64{{1}, {2}, {3}}), col) // row → column nests

	row, err := ndarray.T(col)
	require.NoError(t, err)
	requireArray(t, ndarray.Vector(1, 2, 3), row) // column → row flattens
}

// TestTransposeRoundTrip checks T(T(M)) == M for matrices with rows, cols > 1.
func TestTransposeRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 5}, {4, 3}} {
		m := sequential(t, dims[0], dims[1])
		once, err := ndarray.Transpose(m)
		require.NoError(t, err)
		require.Equal(t, ndarray.Shape{dims[1], dims[0]}, ndarray.ShapeOf(once))

		twice, err := ndarray.Transpose(once)
		require.NoError(t, err)
		requireArray(t, m, twice)
	}
}

// TestTransposeDegenerate covers scalars, empty input and a 1×1 matrix.
func TestTransposeDegenerate(t *testing.T) {
	s, err := ndarray.Transpose(ndarray.Scalar(4))
	require.NoError(t, err)
	requireArray(t, ndarray.Scalar(4), s)

	e, err := ndarray.Transpose(ndarray.Vector())
	require.NoError(t, err)
	require.Equal(t, 0, e.Len())

	one, err := ndarray.Transpose(mustNested(t, [][]float64{{7}}))
	require.NoError(t, err)
	requireArray(t, ndarray.Vector(7), one) // 1×1 is a column vector
}

// TestTransposeDoesNotAlias checks the input is untouched and unshared.
func TestTransposeDoesNotAlias(t *testing.T) {
	m := magic3(t)
	got, err := ndarray.Transpose(m)
	require.NoError(t, err)

	require.NoError(t, ndarray.WriteSlice(got, nil, ndarray.Scalar(0)))
	requireArray(t, magic3(t), m)
}

// TestTransposeErrors covers nil, rank 3, ragged and mixed inputs.
func TestTransposeErrors(t *testing.T) {
	_, err := ndarray.Transpose(nil)
	require.ErrorIs(t, err, ndarray.ErrNilArray)

	cube, err := ndarray.Zeros(2, 2, 2)
	require.NoError(t, err)
	_, err = ndarray.Transpose(cube)
	require.ErrorIs(t, err, ndarray.ErrUnsupportedRank)

	_, err = ndarray.Transpose(mustNested(t, []any{[]float64{1, 2}, []float64{3}}))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.Transpose(mustNested(t, []any{1.0, []float64{2}}))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}
