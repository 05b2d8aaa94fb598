// SPDX-License-Identifier: MIT
// Package: ndarray
//
// impl_resolve.go - normalization of one axis selection into [lo, hi).
//
// Contract:
//   - All        → (0, len)
//   - Range      → (lo ?? 0, hi ?? len)
//   - Point(i)   → (i, i+1)
//   - On success 0 ≤ lo ≤ hi ≤ len.
//
// Bounds policy:
//   - Point outside [0, len) and negative range endpoints: ErrIndexOutOfRange.
//   - Range endpoints past len clip to len and lo > hi collapses to an empty
//     selection, unless WithStrictBounds is set, in which case both are reported.

package ndarray

import "fmt"

const opResolveAxis = "ResolveAxis"

// ResolveAxis resolves spec against an axis of the given length.
// Complexity: O(1).
func ResolveAxis(length int, spec IndexSpec, opts ...Option) (lo, hi int, err error) {
	return resolveAxis(length, spec, gatherOptions(opts...))
}

func resolveAxis(length int, spec IndexSpec, o Options) (int, int, error) {
	switch spec.kind {
	case specAll:
		return 0, length, nil

	case specPoint:
		if spec.lo < 0 || spec.lo >= length {
			return 0, 0, fmt.Errorf("%s: point %d outside axis of length %d: %w",
				opResolveAxis, spec.lo, length, ErrIndexOutOfRange)
		}
		return spec.lo, spec.lo + 1, nil

	default:
		lo, hi := 0, length
		if spec.hasLo {
			lo = spec.lo
		}
		if spec.hasHi {
			hi = spec.hi
		}
		if lo < 0 || hi < 0 {
			return 0, 0, fmt.Errorf("%s: negative range %s: %w", opResolveAxis, spec, ErrIndexOutOfRange)
		}
		if o.strictBounds && (hi > length || lo > hi) {
			return 0, 0, fmt.Errorf("%s: range %s outside axis of length %d: %w",
				opResolveAxis, spec, length, ErrIndexOutOfRange)
		}
		hi = min(hi, length)
		lo = min(lo, hi)
		return lo, hi, nil
	}
}
