// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// specKind tags an IndexSpec variant.
type specKind uint8

const (
	specAll specKind = iota
	specPoint
	specRange
)

// IndexSpec is the per-axis selection rule: All | Point(i) | Range(lo?, hi?).
// The zero value is All(), so a zero-valued entry in an index vector selects
// the whole axis. Index 0 is a valid Point and is never confused with "omitted".
type IndexSpec struct {
	kind   specKind
	lo, hi int
	hasLo  bool
	hasHi  bool
}

// All selects the entire axis.
func All() IndexSpec { return IndexSpec{kind: specAll} }

// Point selects the single position i, i.e. the half-open range [i, i+1).
func Point(i int) IndexSpec { return IndexSpec{kind: specPoint, lo: i} }

// Range selects [lo, hi).
func Range(lo, hi int) IndexSpec {
	return IndexSpec{kind: specRange, lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// From selects [lo, len) with the upper endpoint omitted.
func From(lo int) IndexSpec { return IndexSpec{kind: specRange, lo: lo, hasLo: true} }

// To selects [0, hi) with the lower endpoint omitted.
func To(hi int) IndexSpec { return IndexSpec{kind: specRange, hi: hi, hasHi: true} }

// IsAll reports whether s selects the entire axis.
func (s IndexSpec) IsAll() bool { return s.kind == specAll }

// IsPoint reports whether s is a single-position selection.
func (s IndexSpec) IsPoint() bool { return s.kind == specPoint }

// String renders s in Octave-like colon notation: ":", "2", "1:3", "1:", ":3".
func (s IndexSpec) String() string {
	switch s.kind {
	case specPoint:
		return fmt.Sprintf("%d", s.lo)
	case specRange:
		lo, hi := "", ""
		if s.hasLo {
			lo = fmt.Sprintf("%d", s.lo)
		}
		if s.hasHi {
			hi = fmt.Sprintf("%d", s.hi)
		}
		return lo + ":" + hi
	default:
		return ":"
	}
}
