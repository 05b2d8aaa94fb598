// Package octave is a small toolbox of Octave/MATLAB-style array utilities
// for numeric Go code that wants array ergonomics without a tensor library.
//
// What is inside?
//
//	• zeros / ones / rand / full - construct N-dimensional arrays
//	• size                       - dimension vector of an array
//	• A(i, j:k, :)               - read slicing along every axis
//	• A(i, j:k, :) = v           - in-place write slicing with broadcast
//	• A'                         - 2-D transpose with row/column vector handling
//	• repmat                     - block tiling of vectors and matrices
//
// Everything lives in one subpackage:
//
//	ndarray/ - Array, Shape, IndexSpec and the operations above
//
// Quick example:
//
//	M, _ := ndarray.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	col, _ := ndarray.Get(M, ndarray.All(), ndarray.Point(1)) // [[2], [5]]
//	Mt, _ := ndarray.T(M)                                     // [[1, 4], [2, 5], [3, 6]]
//
//	go get github.com/katalvlaran/octave/ndarray
package octave
