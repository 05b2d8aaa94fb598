// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_factory.go - recursive construction of filled arrays.
//
// Contract:
//   - len(dims) ≥ 1 and every d > 0 (else ErrInvalidDimensions).
//   - ShapeOf(result) == dims.
//   - Every leaf is its own node; Random draws once per leaf in row-major order.
//
// Determinism:
//   - Constant fills are pure. Random fills are reproducible under WithSeed
//     because leaves are visited in a fixed order.

package ndarray

import "fmt"

const opMakeArray = "MakeArray"

// MakeArray builds an array of shape dims filled according to fill.
// Complexity: O(Π dims) time and space.
func MakeArray(fill FillPolicy, dims []int, opts ...Option) (*Array, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("%s(%v): %w", opMakeArray, dims, err)
	}
	o := gatherOptions(opts...)

	return buildFilled(fill, dims, o), nil
}

// buildFilled constructs along dims[0] and recurses over the remaining axes.
// At the last axis every slot receives a fresh leaf.
func buildFilled(fill FillPolicy, dims []int, o Options) *Array {
	out := &Array{items: make([]*Array, dims[0])}
	if len(dims) == 1 {
		for i := range out.items {
			out.items[i] = Scalar(fill.next(o))
		}
		return out
	}

	rest := dims[1:]
	for i := range out.items {
		out.items[i] = buildFilled(fill, rest, o)
	}

	return out
}
