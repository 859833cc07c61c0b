// Package eigen_test contains unit tests for the power-iteration methods
// and the auto dispatcher.
package eigen_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/eigenkit/algebra"
	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/stretchr/testify/require"
)

// withTestEps pins the global tolerances to comfortable test values and
// restores the defaults afterwards.
func withTestEps(t *testing.T) {
	t.Helper()
	matrix.SetEps(1e-9, 6)
	matrix.SetEps(complex(1e-9, 0), 6)
	t.Cleanup(func() {
		matrix.SetEps(matrix.MachineEpsilon, matrix.DefaultPrecision)
		matrix.SetEps(complex(matrix.MachineEpsilon, 0), matrix.DefaultPrecision)
	})
}

// requireEigenpair asserts A·v ≈ λ·v element-wise for a recovered pair.
func requireEigenpair(t *testing.T, a *matrix.Matrix[float64], p eigen.Pair, tol float64) {
	t.Helper()
	av, err := matrix.Mul(matrix.ToComplex(a), p.Vector)
	require.NoError(t, err)
	lv, err := matrix.Scale(p.Vector, p.Value)
	require.NoError(t, err)
	diff, err := matrix.Sub(av, lv)
	require.NoError(t, err)
	n, err := algebra.EuclideanNorm(diff)
	require.NoError(t, err)
	require.Less(t, cmplx.Abs(n), tol) // residual stays under the tolerance
}

// TestPowerMethodRejectsNonSquare ensures rectangular inputs fail fast
// with the size in the message.
func TestPowerMethodRejectsNonSquare(t *testing.T) {
	a, err := matrix.New[float64](3, 2)
	require.NoError(t, err)

	_, err = eigen.PowerMethodEigenvalues(a)
	require.ErrorIs(t, err, eigen.ErrNonSquare)
	require.Contains(t, err.Error(), "3x2")

	_, err = eigen.PowerMethodEigenvalues(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDominantMethodDiagonal verifies the classic method on a diagonal
// matrix with a strictly dominant eigenvalue: diag(5,-3,1) → λ=5, v=e₀.
func TestDominantMethodDiagonal(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{5, 0, 0},
		{0, -3, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodDominant))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 1)
	require.InDelta(t, 5.0, real(res.Pairs[0].Value), 1e-9)
	require.Zero(t, imag(res.Pairs[0].Value))

	// Start vector e₀ is already the dominant eigenvector here.
	v0, err := res.Pairs[0].Vector.AtVec(0)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), v0)
	requireEigenpair(t, a, res.Pairs[0], 1e-9)
}

// TestDominantMethodOffDiagonal verifies convergence from a start vector
// that is NOT an eigenvector: [[2,1],[1,2]] has λ=3 with v ∝ (1,1).
func TestDominantMethodOffDiagonal(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodDominant))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 1)
	require.InDelta(t, 3.0, real(res.Pairs[0].Value), 1e-6)
	// The eigenvalue estimate converges quadratically in the vector error,
	// so the vector residual is held to a looser bound.
	requireEigenpair(t, a, res.Pairs[0], 1e-3)
	require.NotEmpty(t, res.History) // residual trace is recorded
}

// TestSquaredMethodPlusMinusPair verifies both members of a real ±λ pair
// are recovered: [[0,2],[2,0]] has eigenvalues ±2.
func TestSquaredMethodPlusMinusPair(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{0, 2},
		{2, 0},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodSquared))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 2)

	// Positive branch first, negative second.
	require.InDelta(t, 2.0, real(res.Pairs[0].Value), 1e-9)
	require.InDelta(t, -2.0, real(res.Pairs[1].Value), 1e-9)
	requireEigenpair(t, a, res.Pairs[0], 1e-6)
	requireEigenpair(t, a, res.Pairs[1], 1e-6)
}

// TestSquaredMethodSingleBranch verifies that a start vector lying fully
// inside one eigenspace recovers only that branch: diag(2,-2) with e₀.
func TestSquaredMethodSingleBranch(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{2, 0},
		{0, -2},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodSquared))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 1) // the -2 candidate collapses to zero and is dropped
	require.InDelta(t, 2.0, real(res.Pairs[0].Value), 1e-9)
	requireEigenpair(t, a, res.Pairs[0], 1e-9)
}

// TestComplexMethodRotation verifies the complex method on the plane
// rotation [[0,1],[-1,0]], whose eigenvalues are ±i.
func TestComplexMethodRotation(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{0, 1},
		{-1, 0},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodComplex))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 2)

	// "+" branch first: +i, then its conjugate.
	require.InDelta(t, 0.0, real(res.Pairs[0].Value), 1e-9)
	require.InDelta(t, 1.0, imag(res.Pairs[0].Value), 1e-9)
	require.InDelta(t, -1.0, imag(res.Pairs[1].Value), 1e-9)
	requireEigenpair(t, a, res.Pairs[0], 1e-6)
	requireEigenpair(t, a, res.Pairs[1], 1e-6)
}

// TestAutoDispatchSquared verifies the dispatcher resolves a real ±λ pair
// through the probe + refinement path, summing both runs' iterations.
func TestAutoDispatchSquared(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{0, 2},
		{2, 0},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 2)
	require.InDelta(t, 2.0, real(res.Pairs[0].Value), 1e-9)
	require.InDelta(t, -2.0, real(res.Pairs[1].Value), 1e-9)
	require.GreaterOrEqual(t, res.Iterations, 4) // probe run + refinement run
}

// TestAutoDispatchFallsBackToComplex verifies a conjugate spectrum defeats
// the squared probe and lands on the complex method: [[1,1],[-1,1]] has
// eigenvalues 1 ± i.
func TestAutoDispatchFallsBackToComplex(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{1, 1},
		{-1, 1},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, res.Pairs, 2)

	require.InDelta(t, 1.0, real(res.Pairs[0].Value), 1e-6)
	require.InDelta(t, 1.0, imag(res.Pairs[0].Value), 1e-6)
	require.InDelta(t, 1.0, real(res.Pairs[1].Value), 1e-6)
	require.InDelta(t, -1.0, imag(res.Pairs[1].Value), 1e-6)
	requireEigenpair(t, a, res.Pairs[0], 1e-6)
	requireEigenpair(t, a, res.Pairs[1], 1e-6)
}

// TestNonConvergenceIsAFlagNotAnError verifies exhausting the iteration
// cap reports Converged=false with a nil error.
func TestNonConvergenceIsAFlagNotAnError(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{0, 1},
		{-1, 0},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a,
		eigen.WithMethod(eigen.MethodComplex),
		eigen.WithMaxIterations(1),
	)
	require.NoError(t, err) // not an error by contract
	require.False(t, res.Converged)
	require.Greater(t, res.Iterations, 0) // the work done is still reported
}

// TestHistoryIsMonotoneOnDominant verifies the residual trace of a clean
// dominant run ends at (near) zero.
func TestHistoryIsMonotoneOnDominant(t *testing.T) {
	withTestEps(t)
	a, err := matrix.FromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	require.NoError(t, err)

	res, err := eigen.PowerMethodEigenvalues(a, eigen.WithMethod(eigen.MethodDominant))
	require.NoError(t, err)
	require.NotEmpty(t, res.History)
	require.LessOrEqual(t, res.History[len(res.History)-1], 1e-9) // last residual under tolerance
}
