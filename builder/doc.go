// SPDX-License-Identifier: MIT
// Package: edgesort/builder
//
// Package builder produces deterministic synthetic edge lists for tests,
// benchmarks and the edgesort command. Graph loading from files is not part of
// edgesort; builder stands in for that external collaborator.
//
// What:
//
//   - BuildEdges(opts, cons...) runs constructors in order against one EdgeList
//     and returns it. Every constructor numbers its vertices from 0, so the
//     resulting vertex count is the largest n among the constructors.
//   - Topologies: Path, Cycle, Star, Complete (directed, fixed emission order).
//   - Stochastic: RandomSparse (Bernoulli per ordered pair) and RandomEdges
//     (m uniform draws). Both need an RNG via WithSeed or WithRand.
//   - WithShuffle permutes the final edge order so sorters get real work.
//
// Determinism:
//
//	Same constructors, same order, same seed ⇒ identical EdgeList.
//
// Errors:
//
//   - ErrTooFewVertices      n below the constructor minimum
//   - ErrInvalidProbability  p outside [0,1]
//   - ErrNeedRandSource      stochastic path without RNG
//   - ErrBadSize             negative edge count
//   - ErrConstructFailed     nil constructor
package builder
