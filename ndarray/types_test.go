// Package ndarray_test contains unit tests for Array, Shape and IndexSpec.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/octave/ndarray"
	"github.com/stretchr/testify/require"
)

// TestShapeOf covers leaves, empty sequences and nested arrays.
func TestShapeOf(t *testing.T) {
	require.Equal(t, ndarray.Shape{}, ndarray.ShapeOf(ndarray.Scalar(3)))  // leaf has no axes
	require.Equal(t, ndarray.Shape{}, ndarray.ShapeOf(nil))                // nil probes like a leaf
	require.Equal(t, ndarray.Shape{0}, ndarray.ShapeOf(ndarray.Vector()))  // empty sequence
	require.Equal(t, ndarray.Shape{3}, ndarray.ShapeOf(ndarray.Vector(1, 2, 3)))
	require.Equal(t, ndarray.Shape{3, 3}, ndarray.ShapeOf(magic3(t)))
	require.Equal(t, 2, ndarray.Rank(magic3(t)))
	require.Equal(t, 0, ndarray.Rank(ndarray.Scalar(1)))
}

// TestShapeOfRaggedProbesFirstSlice documents that ShapeOf is not a validator.
func TestShapeOfRaggedProbesFirstSlice(t *testing.T) {
	ragged := mustNested(t, []any{[]float64{1, 2}, []float64{3}})
	require.Equal(t, ndarray.Shape{2, 2}, ndarray.ShapeOf(ragged))
}

// TestShapeHelpers covers NumElements, Validate, Equal and Clone.
func TestShapeHelpers(t *testing.T) {
	s := ndarray.Shape{2, 3, 4}
	require.Equal(t, 24, s.NumElements())
	require.Equal(t, 1, ndarray.Shape{}.NumElements())
	require.Equal(t, 3, s.Rank())
	require.NoError(t, s.Validate())
	require.ErrorIs(t, ndarray.Shape{}.Validate(), ndarray.ErrInvalidDimensions)
	require.ErrorIs(t, ndarray.Shape{2, 0}.Validate(), ndarray.ErrInvalidDimensions)

	c := s.Clone()
	require.True(t, s.Equal(c))
	c[0] = 9
	require.False(t, s.Equal(c))
	require.False(t, s.Equal(ndarray.Shape{2, 3}))
}

// TestFromNested converts the supported Go literal forms.
func TestFromNested(t *testing.T) {
	a := mustNested(t, []any{[]int{1, 2}, []float64{3, 4}})
	requireArray(t, ndarray.FromRows([][]float64{{1, 2}, {3, 4}}), a)

	s := mustNested(t, 5)
	v, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	p := mustNested(t, []*ndarray.Array{ndarray.Vector(1), ndarray.Vector(2)})
	require.Equal(t, "[[1], [2]]", p.String())

	_, err = ndarray.FromNested("nope")
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.FromNested([]*ndarray.Array{nil})
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestAccessors covers Value, Elem, Len, IsLeaf on both node kinds.
func TestAccessors(t *testing.T) {
	m := magic3(t)
	require.False(t, m.IsLeaf())
	require.Equal(t, 3, m.Len())

	row, err := m.Elem(1)
	require.NoError(t, err)
	requireArray(t, ndarray.Vector(4, 5, 6), row)

	_, err = m.Elem(3)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
	_, err = m.Value()
	require.ErrorIs(t, err, ndarray.ErrNotLeaf)

	leaf := ndarray.Scalar(1)
	require.True(t, leaf.IsLeaf())
	require.Equal(t, 0, leaf.Len())
	_, err = leaf.Elem(0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)

	var nilArr *ndarray.Array
	_, err = nilArr.Value()
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestCloneIndependence ensures Clone returns a deep copy that shares no storage.
func TestCloneIndependence(t *testing.T) {
	m := magic3(t)
	c := m.Clone()
	requireArray(t, m, c)

	require.NoError(t, ndarray.Set(c, ndarray.Scalar(0), ndarray.Point(0), ndarray.Point(0)))
	require.Equal(t, 1.0, leafAt(t, m, 0, 0)) // original unchanged
	require.Equal(t, 0.0, leafAt(t, c, 0, 0))
}

// TestEqualAndConversions covers Equal edge cases, Flatten, ToNested and String.
func TestEqualAndConversions(t *testing.T) {
	require.False(t, ndarray.Scalar(1).Equal(ndarray.Vector(1)))
	require.False(t, ndarray.Vector(1, 2).Equal(ndarray.Vector(1)))
	require.True(t, (&ndarray.Array{}).Equal(ndarray.Vector()))

	m := magic3(t)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Flatten())
	require.Equal(t, []any{1.0, 2.5}, ndarray.Vector(1, 2.5).ToNested())
	require.Equal(t, "[[1, 2, 3], [4, 5, 6], [7, 8, 9]]", m.String())
	require.Equal(t, "0.25", ndarray.Scalar(0.25).String())
}

// TestIndexSpecString checks the colon rendering used in error messages.
func TestIndexSpecString(t *testing.T) {
	require.Equal(t, ":", ndarray.All().String())
	require.Equal(t, ":", ndarray.IndexSpec{}.String()) // zero value selects all
	require.Equal(t, "0", ndarray.Point(0).String())
	require.Equal(t, "1:3", ndarray.Range(1, 3).String())
	require.Equal(t, "2:", ndarray.From(2).String())
	require.Equal(t, ":4", ndarray.To(4).String())
	require.True(t, ndarray.Point(0).IsPoint())
	require.True(t, ndarray.IndexSpec{}.IsAll())
}
