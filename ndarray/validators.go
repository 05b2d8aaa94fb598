// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Provide a single source of truth for the guards shared by kernels.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap them once more with their own operation tag.
//
// Note:
//   - Validators never mutate their inputs and allocate nothing on success.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateDims ensures dims is non-empty and every entry is > 0.
func ValidateDims(dims []int) error {
	if err := Shape(dims).Validate(); err != nil {
		return validatorErrorf("ValidateDims", err)
	}

	return nil
}

// ValidateRepeat ensures both tiling factors are positive.
func ValidateRepeat(rowRep, colRep int) error {
	if rowRep <= 0 || colRep <= 0 {
		return validatorErrorf(
			fmt.Sprintf("ValidateRepeat(%d,%d)", rowRep, colRep), ErrInvalidDimensions)
	}

	return nil
}

// matrixForm is the rank ≤ 2 view shared by Transpose and Tile.
//   - rank 0: a scalar, rows = cols = 1, flat = false.
//   - rank 1: a flat row, rows = 1, cols = len, flat = true.
//   - rank 2: rows×cols sequence of sequences of leaves.
type matrixForm struct {
	rank       int
	rows, cols int
	flat       bool
}

// at returns the leaf value at (i, j) of a validated rank ≤ 2 array.
func (f matrixForm) at(a *Array, i, j int) float64 {
	switch f.rank {
	case 0:
		return a.value
	case 1:
		return a.items[j].value
	default:
		return a.items[i].items[j].value
	}
}

// validateMatrix checks that a is a uniform array of rank ≤ 2 and reports its form.
//
// Errors:
//   - ErrNilArray for nil input or nil children.
//   - ErrUnsupportedRank when any row contains a sequence.
//   - ErrShapeMismatch for mixed leaf/sequence children or ragged rows.
func validateMatrix(a *Array) (matrixForm, error) {
	if err := ValidateNotNil(a); err != nil {
		return matrixForm{}, validatorErrorf("validateMatrix", err)
	}
	if a.leaf {
		return matrixForm{rank: 0, rows: 1, cols: 1}, nil
	}
	if len(a.items) == 0 {
		return matrixForm{rank: 1, rows: 1, cols: 0, flat: true}, nil
	}

	first := a.items[0]
	if first == nil {
		return matrixForm{}, validatorErrorf("validateMatrix: row 0", ErrNilArray)
	}
	if first.leaf {
		for i, e := range a.items {
			if e == nil {
				return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: [%d]", i), ErrNilArray)
			}
			if !e.leaf {
				return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: [%d] mixed", i), ErrShapeMismatch)
			}
		}
		return matrixForm{rank: 1, rows: 1, cols: len(a.items), flat: true}, nil
	}

	cols := len(first.items)
	for i, row := range a.items {
		if row == nil {
			return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: row %d", i), ErrNilArray)
		}
		if row.leaf {
			return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: row %d mixed", i), ErrShapeMismatch)
		}
		if len(row.items) != cols {
			return matrixForm{}, validatorErrorf(
				fmt.Sprintf("validateMatrix: row %d has %d cols, want %d", i, len(row.items), cols), ErrShapeMismatch)
		}
		for j, e := range row.items {
			if e == nil {
				return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: (%d,%d)", i, j), ErrNilArray)
			}
			if !e.leaf {
				return matrixForm{}, validatorErrorf(fmt.Sprintf("validateMatrix: (%d,%d)", i, j), ErrUnsupportedRank)
			}
		}
	}

	return matrixForm{rank: 2, rows: len(a.items), cols: cols}, nil
}
