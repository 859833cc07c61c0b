// SPDX-License-Identifier: MIT

// Package eigen: result carrier types.

package eigen

import "github.com/katalvlaran/eigenkit/matrix"

// Pair is one recovered eigenvalue with its eigenvector. The vector carries
// the right direction but is not guaranteed to be unit length. Values are
// complex even for real-arithmetic methods so callers handle every method
// uniformly.
type Pair struct {
	Value  complex128
	Vector *matrix.Matrix[complex128]
}

// Result reports the outcome of one PowerMethodEigenvalues call.
//
// Convergence failure is a STATE, not an error: Pairs may still hold the
// best estimates reached, and callers decide whether a non-converged
// answer is acceptable.
type Result struct {
	// Pairs holds zero, one, or two recovered eigenpairs, dominant first.
	Pairs []Pair

	// Iterations counts every iteration step performed, including the
	// auto dispatcher's probe run.
	Iterations int

	// Converged reports whether the run settled within its iteration cap
	// with at least one acceptable eigenvector.
	Converged bool

	// History records the convergence residual after each step, probe
	// steps included, in execution order.
	History []float64
}

// outcome is the internal per-run accumulator the methods share.
type outcome struct {
	pairs     []Pair
	iters     int
	converged bool
	history   []float64
}

// result packs an outcome into the public carrier.
func (o outcome) result() Result {
	return Result{Pairs: o.pairs, Iterations: o.iters, Converged: o.converged, History: o.history}
}
