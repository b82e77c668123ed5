// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: n=3 < min=2: <sentinel>".
//   • Option constructors panic on meaningless input; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic path ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates an invalid edge count (m < 0).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates that construction could not proceed (nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
