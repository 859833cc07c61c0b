// SPDX-License-Identifier: MIT

// Package matrix: scalar domain and per-scalar helpers.
// This file intentionally contains ONLY the scalar constraint and the small
// type-switch helpers that bridge float64 and complex128 where generic
// arithmetic alone is not enough (magnitudes, NaN detection).

package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the element domain of Matrix: real or complex double precision.
// The constraint is intentionally exact (no ~) so that the type-switch
// helpers below cover the full type set.
type Scalar interface {
	float64 | complex128
}

// absOf returns the magnitude of v: math.Abs for float64, cmplx.Abs for complex128.
// Complexity: O(1).
func absOf[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0 // unreachable: the type set is exactly {float64, complex128}
}

// isNaN reports whether v is NaN (either component for complex128).
// Complexity: O(1).
func isNaN[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return math.IsNaN(x)
	case complex128:
		return cmplx.IsNaN(x)
	}

	return false // unreachable
}
