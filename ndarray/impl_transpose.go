// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_transpose.go - rank ≤ 2 transpose with vector-orientation handling.
//
// Contract:
//   - scalar          → copy of the scalar
//   - flat row [N]    → column N×1 (each value becomes a singleton row)
//   - column M×1      → flat row [M]
//   - matrix M×N      → N×M with out[j][i] = a[i][j]
//
// The asymmetry (row → column nests, column → row flattens) is what makes
// flat rows round-trip: T(T(v)) == v for any flat v.

package ndarray

import "fmt"

const opTranspose = "Transpose"

// Transpose returns a new array holding the transpose of a.
//
// Errors:
//   - ErrNilArray, ErrUnsupportedRank (rank > 2), ErrShapeMismatch (ragged/mixed).
//
// Complexity: O(rows*cols).
func Transpose(a *Array) (*Array, error) {
	f, err := validateMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}

	var i, j int
	switch {
	case f.rank == 0:
		return Scalar(a.value), nil

	case f.flat:
		// Row vector: every value becomes a singleton row.
		out := &Array{items: make([]*Array, f.cols)}
		for j = 0; j < f.cols; j++ {
			out.items[j] = Vector(f.at(a, 0, j))
		}
		return out, nil

	case f.cols == 1:
		// Column vector collapses to a flat row.
		out := &Array{items: make([]*Array, f.rows)}
		for i = 0; i < f.rows; i++ {
			out.items[i] = Scalar(f.at(a, i, 0))
		}
		return out, nil
	}

	out := &Array{items: make([]*Array, f.cols)}
	for j = 0; j < f.cols; j++ {
		row := &Array{items: make([]*Array, f.rows)}
		for i = 0; i < f.rows; i++ {
			row.items[i] = Scalar(f.at(a, i, j))
		}
		out.items[j] = row
	}

	return out, nil
}
