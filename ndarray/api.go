// SPDX-License-Identifier: MIT
// Package ndarray - Octave-named facades.
//
// Purpose:
//   - Provide thin entry points named after their Octave counterparts.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Use MakeArray directly when you need options (e.g. WithSeed for Rand).
//   - Index helpers (All/Point/Range/From/To) live in index_spec.go.

package ndarray

// Zeros returns an array of shape dims filled with 0 (Octave zeros(d0, d1, ...)).
func Zeros(dims ...int) (*Array, error) { return MakeArray(Constant(0), dims) }

// Ones returns an array of shape dims filled with 1 (Octave ones(d0, d1, ...)).
func Ones(dims ...int) (*Array, error) { return MakeArray(Constant(1), dims) }

// Full returns an array of shape dims filled with v.
func Full(v float64, dims ...int) (*Array, error) { return MakeArray(Constant(v), dims) }

// Rand returns an array of shape dims with independent draws in [0,1)
// from the package-level source (Octave rand(d0, d1, ...)).
func Rand(dims ...int) (*Array, error) { return MakeArray(Random(), dims) }

// Size is an alias for ShapeOf (Octave size(a)).
func Size(a *Array) Shape { return ShapeOf(a) }

// T is an alias for Transpose (Octave a').
func T(a *Array) (*Array, error) { return Transpose(a) }

// Repmat is an alias for Tile (Octave repmat(a, r, c)).
func Repmat(a *Array, rowRep, colRep int) (*Array, error) { return Tile(a, rowRep, colRep) }

// Get is a shorthand for ReadSlice with variadic specs, e.g. Get(M, All(), Point(1)).
func Get(a *Array, idx ...IndexSpec) (*Array, error) { return ReadSlice(a, idx) }

// Set is a shorthand for WriteSlice with variadic specs, e.g. Set(M, Scalar(0), Point(0)).
func Set(a *Array, value *Array, idx ...IndexSpec) error { return WriteSlice(a, idx, value) }
