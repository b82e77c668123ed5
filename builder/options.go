// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil inputs; constructors never panic.
//   • Determinism is explicit: seeding only via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and shuffling.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed (reproducible runs).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffle permutes the final edge list (Fisher–Yates over cfg.rng).
// BuildEdges fails with ErrNeedRandSource if no RNG is configured.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}

// WithLoops lets RandomSparse and Complete emit self-loops v→v.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}
