// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • shuffle = false
//   • loops   = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic constructors and shuffling; nil unless set.
	rng *rand.Rand
	// Permute the final edge list.
	shuffle bool
	// Allow self-loops in Complete/RandomSparse.
	loops bool
}

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
