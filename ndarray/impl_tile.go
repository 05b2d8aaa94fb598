// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_tile.go - block replication (repmat) of rank ≤ 2 arrays.
//
// Contract:
//   - R×C matrix → (R·rowRep)×(C·colRep) with out[i][j] = a[i%R][j%C].
//   - A flat row is a 1×C matrix; a scalar is 1×1 (Tile(s, 1, 1) is s itself).
//   - When the source is flat (or scalar) and rowRep == 1 the result stays a
//     flat row, matching the row-vector convention used by Transpose.
//   - rowRep, colRep ≥ 1; the source must hold at least one value.

package ndarray

import (
	"fmt"
	"math"
)

const opTile = "Tile"

// Tile replicates a rowRep times along rows and colRep times along columns.
//
// Errors:
//   - ErrInvalidDimensions: non-positive factors, empty flat input, zero columns,
//     or a result whose element count overflows int.
//   - ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch: see Transpose.
//
// Complexity: O(R·rowRep·C·colRep).
func Tile(a *Array, rowRep, colRep int) (*Array, error) {
	if err := ValidateRepeat(rowRep, colRep); err != nil {
		return nil, fmt.Errorf("%s: %w", opTile, err)
	}
	f, err := validateMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTile, err)
	}
	if f.cols == 0 {
		return nil, fmt.Errorf("%s: source has %d×%d values: %w", opTile, f.rows, f.cols, ErrInvalidDimensions)
	}

	if f.rank == 0 && rowRep == 1 && colRep == 1 {
		return Scalar(a.value), nil
	}

	if rowRep > math.MaxInt/f.rows || colRep > math.MaxInt/f.cols ||
		f.rows*rowRep > math.MaxInt/(f.cols*colRep) {
		return nil, fmt.Errorf("%s: %d×%d tiled %d×%d overflows int: %w",
			opTile, f.rows, f.cols, rowRep, colRep, ErrInvalidDimensions)
	}
	rows, cols := f.rows*rowRep, f.cols*colRep
	var i, j int

	if f.rank < 2 && rowRep == 1 {
		out := &Array{items: make([]*Array, cols)}
		for j = 0; j < cols; j++ {
			out.items[j] = Scalar(f.at(a, 0, j%f.cols))
		}
		return out, nil
	}

	out := &Array{items: make([]*Array, rows)}
	for i = 0; i < rows; i++ {
		row := &Array{items: make([]*Array, cols)}
		for j = 0; j < cols; j++ {
			row.items[j] = Scalar(f.at(a, i%f.rows, j%f.cols))
		}
		out.items[i] = row
	}

	return out, nil
}
