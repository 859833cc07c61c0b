// SPDX-License-Identifier: MIT

// Package algebra: quadratic roots over the complex plane.

package algebra

import (
	"fmt"
	"math"
)

// SolveQuadraticEquation returns the two roots of a·x² + b·x + c = 0.
// Roots are real-valued complex numbers when the discriminant is
// non-negative and a conjugate pair otherwise; the "+" branch comes first.
//
// Errors:
//   - ErrDegenerate when a == 0 (not a quadratic).
//
// Complexity:
//   - Time O(1), Space O(1).
func SolveQuadraticEquation(a, b, c float64) (complex128, complex128, error) {
	if a == 0 {
		return 0, 0, fmt.Errorf("SolveQuadraticEquation: %w", ErrDegenerate)
	}

	d := b*b - 4*a*c
	if d >= 0 {
		s := math.Sqrt(d)
		return complex((-b+s)/(2*a), 0), complex((-b-s)/(2*a), 0), nil
	}

	s := math.Sqrt(-d)
	return complex(-b/(2*a), s/(2*a)), complex(-b/(2*a), -s/(2*a)), nil
}
