// Package algebra_test contains unit tests for the norm, least-squares,
// and quadratic-root helpers.
package algebra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigenkit/algebra"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestEuclideanNormReal verifies the classic 3-4-5 triangle.
func TestEuclideanNormReal(t *testing.T) {
	v, err := matrix.FromRows([][]float64{{3}, {4}})
	require.NoError(t, err)

	n, err := algebra.EuclideanNorm(v)
	require.NoError(t, err)
	require.Equal(t, 5.0, n)
}

// TestEuclideanNormRowVector verifies 1×N inputs are accepted too.
func TestEuclideanNormRowVector(t *testing.T) {
	v, err := matrix.FromRows([][]float64{{1, 2, 2}})
	require.NoError(t, err)

	n, err := algebra.EuclideanNorm(v)
	require.NoError(t, err)
	require.Equal(t, 3.0, n)
}

// TestEuclideanNormComplexMagnitude verifies the norm sums squared
// MAGNITUDES: (1, i) has norm √2, not 0.
func TestEuclideanNormComplexMagnitude(t *testing.T) {
	v, err := matrix.FromRows([][]complex128{{1}, {1i}})
	require.NoError(t, err)

	n, err := algebra.EuclideanNorm(v)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, real(n), 1e-12)
	require.Zero(t, imag(n)) // real-valued by contract
}

// TestEuclideanNormRejectsMatrix ensures 2-D inputs are rejected.
func TestEuclideanNormRejectsMatrix(t *testing.T) {
	m, err := matrix.New[float64](2, 2)
	require.NoError(t, err)

	_, err = algebra.EuclideanNorm(m)
	require.ErrorIs(t, err, matrix.ErrNotVector)

	_, err = algebra.EuclideanNorm[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMinimalSquareProblemExact verifies a square consistent system is
// solved exactly: x + y = 3, x - y = 1 → (2, 1).
func TestMinimalSquareProblemExact(t *testing.T) {
	l, err := matrix.FromRows([][]float64{
		{1, 1},
		{1, -1},
	})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]float64{{3}, {1}})
	require.NoError(t, err)

	c, err := algebra.MinimalSquareProblem(l, r)
	require.NoError(t, err)

	x, err := c.AtVec(0)
	require.NoError(t, err)
	y, err := c.AtVec(1)
	require.NoError(t, err)
	require.InDelta(t, 2.0, x, 1e-12)
	require.InDelta(t, 1.0, y, 1e-12)
}

// TestMinimalSquareProblemOverdetermined fits a line y = a + b·x through
// (0,1), (1,3), (2,5): exact fit a=1, b=2.
func TestMinimalSquareProblemOverdetermined(t *testing.T) {
	l, err := matrix.FromRows([][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
	})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]float64{{1}, {3}, {5}})
	require.NoError(t, err)

	c, err := algebra.MinimalSquareProblem(l, r)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 1, c.Cols())

	a, err := c.AtVec(0)
	require.NoError(t, err)
	b, err := c.AtVec(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, a, 1e-12)
	require.InDelta(t, 2.0, b, 1e-12)
}

// TestMinimalSquareProblemResidual fits the best line through points that
// do NOT lie on one: (0,0), (1,1), (2,1) → a=1/6, b=1/2.
func TestMinimalSquareProblemResidual(t *testing.T) {
	l, err := matrix.FromRows([][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
	})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]float64{{0}, {1}, {1}})
	require.NoError(t, err)

	c, err := algebra.MinimalSquareProblem(l, r)
	require.NoError(t, err)

	a, err := c.AtVec(0)
	require.NoError(t, err)
	b, err := c.AtVec(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, a, 1e-12)
	require.InDelta(t, 0.5, b, 1e-12)
}

// TestMinimalSquareProblemSingular ensures linearly dependent columns
// produce ErrSingular.
func TestMinimalSquareProblemSingular(t *testing.T) {
	l, err := matrix.FromRows([][]float64{
		{1, 2},
		{2, 4}, // second column is twice the first
		{3, 6},
	})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	_, err = algebra.MinimalSquareProblem(l, r)
	require.ErrorIs(t, err, algebra.ErrSingular)
}

// TestMinimalSquareProblemBadRhs verifies rhs shape validation.
func TestMinimalSquareProblemBadRhs(t *testing.T) {
	l, _ := matrix.New[float64](3, 2)
	r, _ := matrix.New[float64](2, 1) // wrong length

	_, err := algebra.MinimalSquareProblem(l, r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = algebra.MinimalSquareProblem(nil, r)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolveQuadraticRealRoots verifies x² - 3x + 2 = 0 → 2 and 1,
// "+" branch first.
func TestSolveQuadraticRealRoots(t *testing.T) {
	r1, r2, err := algebra.SolveQuadraticEquation(1, -3, 2)
	require.NoError(t, err)
	require.Equal(t, complex(2, 0), r1)
	require.Equal(t, complex(1, 0), r2)
}

// TestSolveQuadraticConjugatePair verifies x² + 1 = 0 → ±i.
func TestSolveQuadraticConjugatePair(t *testing.T) {
	r1, r2, err := algebra.SolveQuadraticEquation(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, complex(0, 1), r1)
	require.Equal(t, complex(0, -1), r2)
}

// TestSolveQuadraticDoubleRoot verifies x² - 2x + 1 = 0 → 1 twice.
func TestSolveQuadraticDoubleRoot(t *testing.T) {
	r1, r2, err := algebra.SolveQuadraticEquation(1, -2, 1)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), r1)
	require.Equal(t, r1, r2)
}

// TestSolveQuadraticDegenerate ensures a zero leading coefficient is rejected.
func TestSolveQuadraticDegenerate(t *testing.T) {
	_, _, err := algebra.SolveQuadraticEquation(0, 2, 1)
	require.ErrorIs(t, err, algebra.ErrDegenerate)
}
