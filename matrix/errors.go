// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// logical bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between operands of a
	// size-checked binary operation: Add/Sub/Equal/Dot with different shapes,
	// or Assign into a differently shaped destination.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates incompatible shapes for a matrix product,
	// i.e. lhs.Cols() != rhs.Rows().
	ErrShapeMismatch = errors.New("matrix: incompatible shapes for product")

	// ErrNotVector signals that a vector-only operation (single-index access,
	// Dot) was invoked on an operand that is neither 1×N nor N×1.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrRaggedRows signals that FromRows received rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
