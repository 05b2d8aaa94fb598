// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for construction and indexing.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state besides the goroutine-safe math/rand default source.
//   - Each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Bounds policy applies to range endpoints only. Point indices outside the
//     axis are always ErrIndexOutOfRange, and negative endpoints are always rejected.
//   - A *rand.Rand is not safe for concurrent use; share one across goroutines
//     only under the caller's own lock.
package ndarray

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictBounds controls whether range endpoints past the axis end
	// are reported (true) or clipped to the axis length (false).
	DefaultStrictBounds = false
)

// ---------- Internal panic messages ----------

const (
	panicRandNil = "ndarray: WithRand(nil)"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rng          *rand.Rand // nil ⇒ package-level math/rand source
	strictBounds bool       // DefaultStrictBounds
}

// WithRand attaches r as the source for Random fills. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // numeric fill, not crypto
	}
}

// WithStrictBounds reports range endpoints beyond the axis (or lo > hi) as
// ErrIndexOutOfRange instead of clipping them.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// WithClipBounds restores the default clipping of range endpoints.
func WithClipBounds() Option {
	return func(o *Options) { o.strictBounds = false }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		rng:          nil,
		strictBounds: DefaultStrictBounds,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// draw returns one value in [0,1) from the configured source.
func (o Options) draw() float64 {
	if o.rng != nil {
		return o.rng.Float64()
	}

	return rand.Float64() //nolint:gosec // numeric fill, not crypto
}
