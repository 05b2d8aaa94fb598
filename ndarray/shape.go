// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Shape is a dimension vector: the i-th entry is the length of axis i.
type Shape []int

// ShapeOf returns the dimension vector of a by taking the length of the
// outermost sequence and descending into its first element until a leaf is
// reached. A leaf (or nil) yields an empty Shape; an empty sequence yields [0].
//
// Notes:
//   - This is a structural probe, not a validator: for a ragged array the
//     result describes the first slice only.
//
// Complexity: O(rank).
func ShapeOf(a *Array) Shape {
	dims := Shape{}
	for cur := a; cur != nil && !cur.leaf; {
		dims = append(dims, len(cur.items))
		if len(cur.items) == 0 {
			break
		}
		cur = cur.items[0]
	}

	return dims
}

// Rank returns the number of axes of a (0 for a scalar).
func Rank(a *Array) int {
	return len(ShapeOf(a))
}

// NumElements returns the number of leaves a uniform array of this shape holds.
// An empty shape is a scalar and holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Rank returns len(s).
func (s Shape) Rank() int { return len(s) }

// Validate checks that s is non-empty and every dimension is > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("Shape.Validate: no dimensions: %w", ErrInvalidDimensions)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("Shape.Validate: axis %d has size %d: %w", i, d, ErrInvalidDimensions)
		}
	}

	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}
