// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_read.go - axis-wise read slicing.
//
// Contract:
//   - idx[0] restricts the outermost axis, idx[1] the next one, and so on.
//   - Recursion stops once idx is exhausted; deeper axes are copied whole.
//   - The input is never mutated and no node of the result is shared with it.
//   - An index vector deeper than the array: ErrIndexOutOfRange.
//
// Complexity:
//   - Time/space O(selected leaves + selected nodes).

package ndarray

import "fmt"

const opReadSlice = "ReadSlice"

// ReadSlice returns a new array holding the region of a selected by idx.
//
// Example (M = [[1,2,3],[4,5,6],[7,8,9]]):
//
//	ReadSlice(M, []IndexSpec{All(), Range(1, 2)})        // [[2], [5], [8]]
//	ReadSlice(M, []IndexSpec{Range(1, 2), Range(1, 2)})  // [[5]]
func ReadSlice(a *Array, idx []IndexSpec, opts ...Option) (*Array, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadSlice, err)
	}
	o := gatherOptions(opts...)

	out, err := readAxis(a, idx, 0, o)
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", opReadSlice, idx, err)
	}

	return out, nil
}

// readAxis slices node along axis and recurses into every selected child.
func readAxis(node *Array, idx []IndexSpec, axis int, o Options) (*Array, error) {
	if len(idx) == 0 {
		return node.Clone(), nil
	}
	if node == nil {
		return nil, fmt.Errorf("axis %d: %w", axis, ErrNilArray)
	}
	if node.leaf {
		return nil, fmt.Errorf("axis %d: index vector deeper than array: %w", axis, ErrIndexOutOfRange)
	}

	lo, hi, err := resolveAxis(len(node.items), idx[0], o)
	if err != nil {
		return nil, fmt.Errorf("axis %d: %w", axis, err)
	}

	out := &Array{items: make([]*Array, 0, hi-lo)}
	for i := lo; i < hi; i++ {
		child, err := readAxis(node.items[i], idx[1:], axis+1, o)
		if err != nil {
			return nil, err
		}
		out.items = append(out.items, child)
	}

	return out, nil
}
