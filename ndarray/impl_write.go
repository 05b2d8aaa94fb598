// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_write.go - axis-wise in-place assignment.
//
// Contract:
//   - Bounds are resolved exactly like ReadSlice (same ResolveAxis policy).
//   - value is either a leaf (broadcast to every selected position) or an
//     array whose outer length equals hi-lo wherever it is consumed per axis.
//   - At the last indexed axis, slot i receives value[i-lo] (same shape as the
//     slot, copied) or the broadcast scalar (written into every leaf of the slot).
//   - Two phases: the whole selection is validated before the first write, so
//     an error leaves the target untouched. The structure is never resized.
//
// Concurrency:
//   - No locking; callers serialize writes that may overlap.

package ndarray

import "fmt"

const opWriteSlice = "WriteSlice"

// WriteSlice assigns value into the region of a selected by idx.
// An empty idx assigns to the whole array.
//
// Errors:
//   - ErrNilArray: a or value (or a consumed part of them) is nil.
//   - ErrIndexOutOfRange: per ResolveAxis, or idx deeper than a.
//   - ErrShapeMismatch: value does not fit the selection.
func WriteSlice(a *Array, idx []IndexSpec, value *Array, opts ...Option) error {
	if err := ValidateNotNil(a); err != nil {
		return fmt.Errorf("%s: target: %w", opWriteSlice, err)
	}
	if err := ValidateNotNil(value); err != nil {
		return fmt.Errorf("%s: value: %w", opWriteSlice, err)
	}
	o := gatherOptions(opts...)

	// Phase 1: validate everything; nothing is touched yet.
	if err := checkWrite(a, idx, value, 0, o); err != nil {
		return fmt.Errorf("%s(%v): %w", opWriteSlice, idx, err)
	}

	// value may hold nodes of a (Elem, Elems, Seq adopt without copying);
	// snapshot it so every slot reads the pre-write data.
	if !value.leaf {
		value = value.Clone()
	}

	// Phase 2: mutate. Cannot fail after a successful check.
	applyWrite(a, idx, value, o)

	return nil
}

// checkWrite mirrors applyWrite without mutating.
func checkWrite(node *Array, idx []IndexSpec, value *Array, axis int, o Options) error {
	if len(idx) == 0 {
		return checkAssign(node, value, axis)
	}
	if node == nil {
		return fmt.Errorf("axis %d: %w", axis, ErrNilArray)
	}
	if node.leaf {
		return fmt.Errorf("axis %d: index vector deeper than array: %w", axis, ErrIndexOutOfRange)
	}

	lo, hi, err := resolveAxis(len(node.items), idx[0], o)
	if err != nil {
		return fmt.Errorf("axis %d: %w", axis, err)
	}
	if !value.leaf && len(value.items) != hi-lo {
		return fmt.Errorf("axis %d: value length %d, selection length %d: %w",
			axis, len(value.items), hi-lo, ErrShapeMismatch)
	}

	for i := lo; i < hi; i++ {
		sub := valueAt(value, i-lo)
		if sub == nil {
			return fmt.Errorf("axis %d: value[%d]: %w", axis, i-lo, ErrNilArray)
		}
		if err = checkWrite(node.items[i], idx[1:], sub, axis+1, o); err != nil {
			return err
		}
	}

	return nil
}

// checkAssign verifies that value can be stored into dst.
func checkAssign(dst, value *Array, axis int) error {
	if dst == nil {
		return fmt.Errorf("axis %d: target slot: %w", axis, ErrNilArray)
	}
	if value.leaf {
		if hasNil(dst) {
			return fmt.Errorf("axis %d: target slot: %w", axis, ErrNilArray)
		}
		return nil
	}
	if !sameStructure(dst, value) {
		return fmt.Errorf("axis %d: value shape %v, slot shape %v: %w",
			axis, ShapeOf(value), ShapeOf(dst), ErrShapeMismatch)
	}

	return nil
}

// applyWrite performs the assignment validated by checkWrite.
func applyWrite(node *Array, idx []IndexSpec, value *Array, o Options) {
	if len(idx) == 0 {
		assign(node, value)
		return
	}

	// checkWrite resolved this axis with the same length and options.
	lo, hi, _ := resolveAxis(len(node.items), idx[0], o)
	for i := lo; i < hi; i++ {
		applyWrite(node.items[i], idx[1:], valueAt(value, i-lo), o)
	}
}

// assign copies value into dst: a leaf value is broadcast to every leaf of dst,
// a sequence value is copied leaf-by-leaf (structures already match).
func assign(dst, value *Array) {
	if value.leaf {
		v := value.value
		dst.walkLeaves(func(leaf *Array) { leaf.value = v })
		return
	}
	for i := range dst.items {
		assign(dst.items[i], value.items[i])
	}
}

// valueAt returns the part of value that lands on selection offset k:
// the same scalar for a leaf, value[k] otherwise.
func valueAt(value *Array, k int) *Array {
	if value.leaf {
		return value
	}

	return value.items[k]
}

// sameStructure reports whether a and b nest identically (leaf for leaf,
// equal lengths at every sequence) and contain no nil nodes.
func sameStructure(a, b *Array) bool {
	if a == nil || b == nil {
		return false
	}
	if a.leaf || b.leaf {
		return a.leaf && b.leaf
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !sameStructure(a.items[i], b.items[i]) {
			return false
		}
	}

	return true
}

// hasNil reports whether any node under a is nil.
func hasNil(a *Array) bool {
	if a == nil {
		return true
	}
	for _, e := range a.items {
		if hasNil(e) {
			return true
		}
	}

	return false
}
