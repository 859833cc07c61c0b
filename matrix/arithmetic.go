// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels over Matrix[T].
// All kernels perform strict fail-fast validation, never mutate their
// operands, and return fresh owning results. Loop orders are fixed for
// reproducibility; the product accumulates in i→k→j order.

package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opDiv    = "ScaleDiv"
	opDot    = "Dot"
	opEqual  = "Equal"
	opAssign = "Assign"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil. Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil returns ErrNilMatrix when m is nil.
func validateNotNil[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameSize returns ErrDimensionMismatch (with both sizes) unless a
// and b have identical logical extents. A 1×3 and a 3×1 do NOT match.
func validateSameSize[T Scalar](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("wrong matrix sizes %dx%d and %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and allocation.
// Complexity: O(r*c) time, O(r*c) space.
func addSub[T Scalar](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := validateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j int // fixed i→j order
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			res.data[i*a.cols+j] = a.at(i, j) + sign*b.at(i, j)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B as a fresh owning matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B as a fresh owning matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate operands non-nil and a.Cols == b.Rows; else
//     ErrShapeMismatch with both sizes in the message.
//   - Stage 2: triple loop in fixed i→k→j order (k as the middle loop), the
//     accumulation order that keeps floating-point results reproducible.
//     Owning operands take a flat-index fast path; views go through the
//     offset accessors.
//
// Returns:
//   - *Matrix[T]: fresh owning (a.Rows × b.Cols) product.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul, fmt.Errorf("bad matrix sizes %dx%d and %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch))
	}

	res, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j int // fixed i→k→j order
		av      T
	)
	// Fast path: both operands own their full buffer → flat indexing.
	if !a.IsView() && !b.IsView() {
		var rowA, rowB, rowR int
		for i = 0; i < a.rows; i++ {
			rowA = i * a.cols
			rowR = i * b.cols
			for k = 0; k < a.cols; k++ {
				av = a.data[rowA+k]
				rowB = k * b.cols
				for j = 0; j < b.cols; j++ {
					res.data[rowR+j] += av * b.data[rowB+j]
				}
			}
		}

		return res, nil
	}

	// View path: same order through the offset accessors.
	for i = 0; i < a.rows; i++ {
		for k = 0; k < a.cols; k++ {
			av = a.at(i, k)
			for j = 0; j < b.cols; j++ {
				res.data[i*b.cols+j] += av * b.at(k, j)
			}
		}
	}

	return res, nil
}

// Scale returns a new owning matrix whose elements are alpha * m[i,j].
// Matrix-then-scalar and scalar-then-matrix spellings both funnel here.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T Scalar](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := New[T](m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			res.data[i*m.cols+j] = m.at(i, j) * alpha
		}
	}

	return res, nil
}

// ScaleDiv returns a new owning matrix whose elements are m[i,j] / alpha.
// A zero alpha is not rejected: the division propagates Inf/NaN exactly as
// scalar division does. Errors: ErrNilMatrix. Complexity: O(r*c).
func ScaleDiv[T Scalar](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	res, err := New[T](m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			res.data[i*m.cols+j] = m.at(i, j) / alpha
		}
	}

	return res, nil
}

// Dot computes the scalar product of two vector-shaped matrices: the sum of
// element-wise products. NO conjugation is applied for complex scalars —
// this is the real dot-product contract the iteration engine relies on.
//
// Implementation:
//   - Stage 1: both operands must be vectors (1×N or N×1); else ErrNotVector
//     with both sizes in the message.
//   - Stage 2: sizes must match exactly (a 1×3 against a 3×1 is rejected);
//     else ErrDimensionMismatch.
//   - Stage 3: single fixed-order accumulation over the common length.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot[T Scalar](a, b *Matrix[T]) (T, error) {
	var zero T
	if err := validateNotNil(a); err != nil {
		return zero, matrixErrorf(opDot, err)
	}
	if err := validateNotNil(b); err != nil {
		return zero, matrixErrorf(opDot, err)
	}
	if !a.IsVector() || !b.IsVector() {
		return zero, matrixErrorf(opDot, fmt.Errorf(
			"matrices of sizes %dx%d and %dx%d are not both vectors: %w",
			a.rows, a.cols, b.rows, b.cols, ErrNotVector))
	}
	if err := validateSameSize(a, b); err != nil {
		return zero, matrixErrorf(opDot, err)
	}

	n := a.rows
	if a.cols > n {
		n = a.cols
	}
	sum := zero
	for i := 0; i < n; i++ {
		av, _ := a.AtVec(i) // bounds already guaranteed by the size checks
		bv, _ := b.AtVec(i)
		sum += av * bv
	}

	return sum, nil
}

// Equal reports whether a and b are element-wise equal under the global
// epsilon for T. Two elements DIFFER when either one is NaN (NaN is never
// equal to itself) or when |a[i,j]-b[i,j]| exceeds |Eps[T]()|.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (comparison is size-checked).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal[T Scalar](a, b *Matrix[T]) (bool, error) {
	if err := validateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := validateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := validateSameSize(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	eps := EpsAbs[T]()
	var (
		i, j   int
		av, bv T
	)
	for i = 0; i < a.rows; i++ {
		for j = 0; j < a.cols; j++ {
			av, bv = a.at(i, j), b.at(i, j)
			if isNaN(av) || isNaN(bv) || absOf(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
