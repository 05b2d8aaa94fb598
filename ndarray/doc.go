// Package ndarray provides nested N-dimensional arrays with Octave/MATLAB
// style construction, introspection, slicing, transpose and tiling.
//
// The package provides:
//
//   - Array, a recursive node: a leaf holds one float64, a sequence holds
//     rank-(k-1) children. Shapes are probed, not enforced.
//   - MakeArray with a FillPolicy (Constant or Random), plus the Zeros, Ones,
//     Full and Rand facades.
//   - ShapeOf / Size returning the dimension vector.
//   - ReadSlice and WriteSlice driven by an index vector of IndexSpec values
//     (All, Point, Range, From, To), resolved per axis by ResolveAxis.
//   - Transpose for rank ≤ 2 (flat rows become columns, columns become flat rows).
//   - Tile / Repmat for rank ≤ 2.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrShapeMismatch,
// ErrIndexOutOfRange, ErrNilArray, ErrUnsupportedRank, ErrNotLeaf), wrapped
// with operation context; match them with errors.Is.
//
// Only WriteSlice mutates its input, and it validates the whole selection
// before writing anything. Nothing in the package is safe for concurrent
// mutation of the same Array.
//
// See example_test.go for usage patterns.
package ndarray
