// SPDX-License-Identifier: MIT

// Package matrix: global numeric policy (epsilon + display precision).
//
// One epsilon/precision pair exists per scalar type, read by every tolerant
// comparison and convergence check for that type. The pair is process-wide
// mutable state, mutated only through SetEps; it is NOT thread-isolated —
// callers must not mutate it concurrently with in-flight computations.

package matrix

import "math"

// MachineEpsilon is the default tolerance: the distance between 1.0 and the
// next representable float64.
var MachineEpsilon = math.Nextafter(1, 2) - 1

// DefaultPrecision is the default number of fixed decimals in formatters.
const DefaultPrecision = 0

// Per-scalar-type policy state. Initialized to the machine epsilon and the
// default display precision; see SetEps.
var (
	epsFloat64     = MachineEpsilon
	precFloat64    = DefaultPrecision
	epsComplex128  = complex(MachineEpsilon, 0)
	precComplex128 = DefaultPrecision
)

// Eps returns the current epsilon tolerance for scalar type T.
// Implementation:
//   - Stage 1: dispatch on T via a pointer type switch (no conversions
//     between float64 and complex128 exist).
//
// Returns:
//   - T: the tolerance last stored by SetEps[T], or the machine epsilon.
//
// Complexity:
//   - Time O(1), Space O(1).
func Eps[T Scalar]() T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = epsFloat64
	case *complex128:
		*p = epsComplex128
	}

	return z
}

// EpsAbs returns the magnitude of the current epsilon for scalar type T.
// Convergence checks and Equal compare |a-b| against this value.
// Complexity: O(1).
func EpsAbs[T Scalar]() float64 {
	return absOf(Eps[T]())
}

// Precision returns the current display precision (fixed decimals) for T.
// Complexity: O(1).
func Precision[T Scalar]() int {
	var z T
	switch any(z).(type) {
	case float64:
		return precFloat64
	case complex128:
		return precComplex128
	}

	return DefaultPrecision // unreachable
}

// SetEps stores the epsilon tolerance and display precision for scalar type T.
//
// Behavior highlights:
//   - Affects ALL matrices of that scalar type from the next comparison on.
//   - No synchronization is provided; single-threaded (or externally
//     synchronized) use is assumed.
//
// Inputs:
//   - eps: new tolerance (compared by magnitude).
//   - precision: fixed decimals used by String/ToWolframString.
//
// Complexity:
//   - Time O(1), Space O(1).
func SetEps[T Scalar](eps T, precision int) {
	switch v := any(eps).(type) {
	case float64:
		epsFloat64, precFloat64 = v, precision
	case complex128:
		epsComplex128, precComplex128 = v, precision
	}
}
