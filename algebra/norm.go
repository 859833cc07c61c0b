// SPDX-License-Identifier: MIT

// Package algebra: Euclidean norm of vector-shaped matrices.

package algebra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigenkit/matrix"
)

// EuclideanNorm returns the 2-norm of a vector-shaped matrix: the square
// root of the sum of squared element MAGNITUDES. For complex inputs the
// result is real-valued, returned as a complex128 with zero imaginary part
// so it can divide a complex vector directly.
//
// Implementation:
//   - Stage 1: validate v is non-nil and vector-shaped (1×N or N×1).
//   - Stage 2: accumulate |v[i]|² in index order, take math.Sqrt once.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotVector.
//
// Complexity:
//   - Time O(n), Space O(1).
func EuclideanNorm[T matrix.Scalar](v *matrix.Matrix[T]) (T, error) {
	var zero T
	if v == nil {
		return zero, fmt.Errorf("EuclideanNorm: %w", matrix.ErrNilMatrix)
	}
	if !v.IsVector() {
		return zero, fmt.Errorf("EuclideanNorm: matrix of size %dx%d: %w",
			v.Rows(), v.Cols(), matrix.ErrNotVector)
	}

	n := v.Rows()
	if v.Cols() > n {
		n = v.Cols()
	}
	var (
		sum float64
		e   T
	)
	for i := 0; i < n; i++ {
		e, _ = v.AtVec(i) // bounds guaranteed by the vector check
		a := scalarAbs(e)
		sum += a * a
	}

	return scalarFromFloat[T](math.Sqrt(sum)), nil
}

// scalarAbs returns |v| for either scalar type.
func scalarAbs[T matrix.Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return math.Hypot(real(x), imag(x))
	}

	return 0 // unreachable
}

// scalarFromFloat lifts a real value into T (zero imaginary part for complex128).
func scalarFromFloat[T matrix.Scalar](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}

	return z
}
