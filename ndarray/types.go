// SPDX-License-Identifier: MIT

// Package ndarray - recursive nested storage & safe accessors.
//
// Purpose:
//   - Represent an N-dimensional array as a tree of nodes: a leaf holds one
//     float64, a sequence holds rank-(k-1) children.
//   - Keep the public surface safe: accessors return errors instead of panicking.
//   - Give every library result its own nodes; only WriteSlice mutates.
//
// AI-Hints:
//   - Use FromNested in tests and examples to build fixtures from Go literals.
//   - Sibling uniformity is the caller's contract; ShapeOf only probes element 0.
//
// Complexity quicksheet:
//   - Scalar/Seq: O(1) + len; Clone/Equal/Flatten/String: O(nodes).

package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxElem       = "Elem"
	ctxValue      = "Value"
	ctxFromNested = "FromNested"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// arrayErrorf wraps an error with a uniform Array method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is one node of a nested N-dimensional array.
//   - leaf == true: rank 0, the scalar lives in value, items is nil.
//   - leaf == false: rank k > 0, items holds the rank-(k-1) children in order.
//
// The zero value is an empty sequence (shape [0]).
type Array struct {
	leaf  bool     // scalar node marker
	value float64  // scalar payload (leaf only)
	items []*Array // ordered children (sequence only)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// Scalar returns a rank-0 leaf holding v.
func Scalar(v float64) *Array {
	return &Array{leaf: true, value: v}
}

// Seq returns a sequence node over elems. The slice is copied; the element
// nodes are adopted as-is (no deep copy), so callers hand over ownership.
func Seq(elems ...*Array) *Array {
	items := make([]*Array, len(elems))
	copy(items, elems)

	return &Array{items: items}
}

// Vector returns a rank-1 array (a "row vector") whose leaves are vs.
func Vector(vs ...float64) *Array {
	items := make([]*Array, len(vs))
	for i, v := range vs {
		items[i] = Scalar(v)
	}

	return &Array{items: items}
}

// FromRows returns a rank-2 array with one sequence per row.
// Row lengths are taken as given; ragged input produces a ragged array.
func FromRows(rows [][]float64) *Array {
	items := make([]*Array, len(rows))
	for i, r := range rows {
		items[i] = Vector(r...)
	}

	return &Array{items: items}
}

// FromNested converts a Go literal into an Array.
// Accepted inputs: float64, float32, int, int64, []float64, [][]float64,
// []int, []any (recursively), []*Array and *Array (deep-copied).
//
// Errors:
//   - ErrNilArray for a nil *Array anywhere in the input.
//   - ErrShapeMismatch for any other type.
func FromNested(v any) (*Array, error) {
	a, err := fromNested(v)
	if err != nil {
		return nil, arrayErrorf(ctxFromNested, err)
	}

	return a, nil
}

func fromNested(v any) (*Array, error) {
	switch x := v.(type) {
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case int64:
		return Scalar(float64(x)), nil
	case []float64:
		return Vector(x...), nil
	case []int:
		out := &Array{items: make([]*Array, len(x))}
		for i, n := range x {
			out.items[i] = Scalar(float64(n))
		}
		return out, nil
	case [][]float64:
		return FromRows(x), nil
	case *Array:
		if x == nil {
			return nil, ErrNilArray
		}
		return x.Clone(), nil
	case []*Array:
		out := &Array{items: make([]*Array, len(x))}
		for i, e := range x {
			if e == nil {
				return nil, fmt.Errorf("[%d]: %w", i, ErrNilArray)
			}
			out.items[i] = e.Clone()
		}
		return out, nil
	case []any:
		out := &Array{items: make([]*Array, len(x))}
		for i, e := range x {
			child, err := fromNested(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out.items[i] = child
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported element type %T: %w", v, ErrShapeMismatch)
	}
}

// IsLeaf reports whether a is a rank-0 scalar node.
func (a *Array) IsLeaf() bool {
	return a != nil && a.leaf
}

// Len returns the length of the outermost axis (0 for leaves and nil).
func (a *Array) Len() int {
	if a == nil || a.leaf {
		return 0
	}

	return len(a.items)
}

// Value returns the scalar held by a leaf.
// Returns ErrNilArray for nil and ErrNotLeaf for a sequence.
func (a *Array) Value() (float64, error) {
	if a == nil {
		return 0, arrayErrorf(ctxValue, ErrNilArray)
	}
	if !a.leaf {
		return 0, arrayErrorf(ctxValue, ErrNotLeaf)
	}

	return a.value, nil
}

// Elem returns the i-th child of a sequence node (shared, not copied).
// Returns ErrNilArray for nil, and ErrIndexOutOfRange when a is a leaf or
// i is outside [0, Len()).
func (a *Array) Elem(i int) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(ctxElem, ErrNilArray)
	}
	if a.leaf || i < 0 || i >= len(a.items) {
		return nil, fmt.Errorf("Array.%s(%d): %w", ctxElem, i, ErrIndexOutOfRange)
	}

	return a.items[i], nil
}

// Elems returns a copy of the child slice (nil for leaves).
// The children themselves are shared with a.
func (a *Array) Elems() []*Array {
	if a == nil || a.leaf {
		return nil
	}
	out := make([]*Array, len(a.items))
	copy(out, a.items)

	return out
}

// Clone returns a deep copy of a; no node is shared with the original.
// Complexity: O(nodes).
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	if a.leaf {
		return Scalar(a.value)
	}
	out := &Array{items: make([]*Array, len(a.items))}
	for i, e := range a.items {
		out.items[i] = e.Clone()
	}

	return out
}

// Equal reports structural equality: same nesting, same lengths, same leaves.
// Leaves compare with ==, so NaN never equals NaN.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.leaf != b.leaf {
		return false
	}
	if a.leaf {
		return a.value == b.value
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !a.items[i].Equal(b.items[i]) {
			return false
		}
	}

	return true
}

// Flatten returns all leaves in row-major (depth-first, left-to-right) order.
func (a *Array) Flatten() []float64 {
	var out []float64
	a.walkLeaves(func(leaf *Array) { out = append(out, leaf.value) })

	return out
}

// ToNested converts a back into Go values: float64 for leaves, []any for sequences.
func (a *Array) ToNested() any {
	if a == nil {
		return nil
	}
	if a.leaf {
		return a.value
	}
	out := make([]any, len(a.items))
	for i, e := range a.items {
		out[i] = e.ToNested()
	}

	return out
}

// String renders a in bracket notation, e.g. "[[1, 2], [3, 4]]".
func (a *Array) String() string {
	var sb strings.Builder
	a.format(&sb)

	return sb.String()
}

func (a *Array) format(sb *strings.Builder) {
	switch {
	case a == nil:
		sb.WriteString("<nil>")
	case a.leaf:
		sb.WriteString(strconv.FormatFloat(a.value, 'g', -1, 64))
	default:
		sb.WriteString(_fmtOpen)
		for i, e := range a.items {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			e.format(sb)
		}
		sb.WriteString(_fmtClose)
	}
}

// walkLeaves visits every leaf under a in row-major order. Nil nodes are skipped.
func (a *Array) walkLeaves(fn func(leaf *Array)) {
	if a == nil {
		return
	}
	if a.leaf {
		fn(a)
		return
	}
	for _, e := range a.items {
		e.walkLeaves(fn)
	}
}
