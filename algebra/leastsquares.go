// SPDX-License-Identifier: MIT

// Package algebra: least squares via the normal equations.

package algebra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigenkit/matrix"
)

// MinimalSquareProblem returns the vector c minimizing ‖l·c − r‖₂ for an
// overdetermined real system: l is n×m (n ≥ m), r is n×1, the result is m×1.
//
// Implementation:
//   - Stage 1: validate shapes (l non-nil, r an n×1 column matching l's rows).
//   - Stage 2: form the normal equations (lᵀl)·c = lᵀr.
//   - Stage 3: Gaussian elimination with partial pivoting on the m×m system;
//     a zero pivot column yields ErrSingular.
//   - Stage 4: back substitution into a fresh m×1 column.
//
// Behavior highlights:
//   - Deterministic pivot choice (largest magnitude, lowest index on ties).
//   - Operands are never mutated; elimination runs on the normal-equation
//     copies only.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n·m² + m³), Space O(m²).
func MinimalSquareProblem(l, r *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if l == nil || r == nil {
		return nil, fmt.Errorf("MinimalSquareProblem: %w", matrix.ErrNilMatrix)
	}
	if r.Cols() != 1 || r.Rows() != l.Rows() {
		return nil, fmt.Errorf("MinimalSquareProblem: system %dx%d with rhs %dx%d: %w",
			l.Rows(), l.Cols(), r.Rows(), r.Cols(), matrix.ErrDimensionMismatch)
	}

	// Normal equations: g = lᵀl (m×m), b = lᵀr (m×1).
	lt := l.Transposed()
	g, err := matrix.Mul(lt, l)
	if err != nil {
		return nil, fmt.Errorf("MinimalSquareProblem: %w", err)
	}
	b, err := matrix.Mul(lt, r)
	if err != nil {
		return nil, fmt.Errorf("MinimalSquareProblem: %w", err)
	}

	m := g.Rows()
	var (
		i, j, k int     // loop iterators
		pivot   int     // pivot row index for the current column
		best    float64 // largest pivot magnitude seen
		gkj     float64 // current element g[k,j]
		factor  float64 // elimination multiplier
	)
	for k = 0; k < m; k++ {
		// Partial pivoting: pick the largest |g[i,k]| at or below row k.
		pivot, best = k, 0
		for i = k; i < m; i++ {
			gkj, _ = g.At(i, k)
			if math.Abs(gkj) > best {
				best, pivot = math.Abs(gkj), i
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("MinimalSquareProblem: column %d: %w", k, ErrSingular)
		}
		if pivot != k {
			swapRows(g, k, pivot)
			swapRows(b, k, pivot)
		}

		// Eliminate column k below the pivot.
		pv, _ := g.At(k, k)
		for i = k + 1; i < m; i++ {
			gkj, _ = g.At(i, k)
			if gkj == 0 {
				continue
			}
			factor = gkj / pv
			for j = k; j < m; j++ {
				a, _ := g.At(i, j)
				c, _ := g.At(k, j)
				_ = g.Set(i, j, a-factor*c)
			}
			a, _ := b.At(i, 0)
			c, _ := b.At(k, 0)
			_ = b.Set(i, 0, a-factor*c)
		}
	}

	// Back substitution.
	res, err := matrix.New[float64](m, 1)
	if err != nil {
		return nil, fmt.Errorf("MinimalSquareProblem: %w", err)
	}
	var sum float64
	for i = m - 1; i >= 0; i-- {
		sum, _ = b.At(i, 0)
		for j = i + 1; j < m; j++ {
			gij, _ := g.At(i, j)
			xj, _ := res.At(j, 0)
			sum -= gij * xj
		}
		pv, _ := g.At(i, i)
		_ = res.Set(i, 0, sum/pv)
	}

	return res, nil
}

// swapRows exchanges rows a and b of m in place (elimination helper).
func swapRows(m *matrix.Matrix[float64], a, b int) {
	var (
		j      int
		va, vb float64
	)
	for j = 0; j < m.Cols(); j++ {
		va, _ = m.At(a, j)
		vb, _ = m.At(b, j)
		_ = m.Set(a, j, vb)
		_ = m.Set(b, j, va)
	}
}
