// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ndarray
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user input;
// panics are reserved for programmer errors in option constructors.

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for easy grepping. Operations
// wrap sentinels at the detection site with fmt.Errorf("Op: ...: %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil argument -> dimensions -> rank -> index range -> shape mismatch.

var (
	// ErrInvalidDimensions is returned when requested sizes are missing or
	// non-positive (construction, tiling factors, empty tiling input).
	ErrInvalidDimensions = errors.New("ndarray: dimensions must be > 0")

	// ErrShapeMismatch indicates that a value does not fit the region it is
	// written into, or that an operation met ragged/mixed siblings it needs uniform.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrIndexOutOfRange indicates that resolved bounds fall outside an axis
	// under the active bounds policy, or that an index vector is deeper than the array.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates that a nil *Array was passed where a value is required.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrUnsupportedRank signals that an operation limited to rank ≤ 2 got a deeper array.
	ErrUnsupportedRank = errors.New("ndarray: unsupported rank")

	// ErrNotLeaf is returned by scalar accessors called on a sequence node.
	ErrNotLeaf = errors.New("ndarray: not a scalar leaf")
)
