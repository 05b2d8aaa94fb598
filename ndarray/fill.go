// SPDX-License-Identifier: MIT

package ndarray

// fillKind selects how MakeArray populates leaves.
type fillKind uint8

const (
	fillConstant fillKind = iota
	fillRandom
)

// FillPolicy decides the value of every leaf created by MakeArray.
// Build one with Constant or Random; the zero value is Constant(0).
type FillPolicy struct {
	kind  fillKind
	value float64
}

// Constant fills every leaf with v. Each leaf gets its own node.
func Constant(v float64) FillPolicy {
	return FillPolicy{kind: fillConstant, value: v}
}

// Random fills every leaf with an independent draw in [0,1).
// The source is the one configured via WithSeed/WithRand, else math/rand.
func Random() FillPolicy {
	return FillPolicy{kind: fillRandom}
}

// IsRandom reports whether p draws random values.
func (p FillPolicy) IsRandom() bool { return p.kind == fillRandom }

// next produces the value for one leaf.
func (p FillPolicy) next(o Options) float64 {
	if p.kind == fillRandom {
		return o.draw()
	}

	return p.value
}
