// SPDX-License-Identifier: MIT

// Package eigen: the three power-iteration variants and their dispatcher.

package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/eigenkit/algebra"
	"github.com/katalvlaran/eigenkit/matrix"
)

// farPrevious seeds the "previous estimate" before the first comparison:
// far enough from any plausible eigenvalue that the loop always enters.
const farPrevious = 1e18

// PowerMethodEigenvalues extracts the dominant eigenpair(s) of the square
// real matrix a.
//
// Implementation stages:
//   - Stage 1: validate a (non-nil, square; ErrNonSquare carries the size).
//   - Stage 2: a forced method (WithMethod) runs directly on a fresh seed
//     vector e₀ and returns its outcome as-is.
//   - Stage 3: auto dispatch. A loose-tolerance MethodSquared probe runs
//     with stall detection; on probe success the SAME partially-converged
//     vector continues at full precision, so probe work is never wasted.
//     When either run fails, MethodComplex is the unconditional fallback.
//
// Behavior highlights:
//   - Non-convergence sets Result.Converged=false and returns a nil error;
//     errors are reserved for malformed input and collaborator failures.
//   - Result.Iterations on the auto path sums probe and refinement steps.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, plus wrapped algebra/matrix
//     errors from degenerate intermediate systems.
//
// Complexity:
//   - Time O(iters·n²) for the real methods, O(iters·(n² + n·m²)) for the
//     complex one (m=2 least-squares columns), Space O(n²).
func PowerMethodEigenvalues(a *matrix.Matrix[float64], opts ...Option) (Result, error) {
	if err := validateSquare(a); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	switch o.method {
	case MethodDominant:
		out, err := dominantReal(a, o.maxIterations)
		return out.result(), err
	case MethodSquared:
		y, err := seedVector(a.Rows())
		if err != nil {
			return Result{}, err
		}
		out, err := squaredPair(a, y, o.maxIterations, matrix.EpsAbs[float64](), 0)
		return out.result(), err
	case MethodComplex:
		out, err := conjugatePair(a, o.maxIterations)
		return out.result(), err
	}

	// Auto: probe the squared method cheaply before committing.
	y, err := seedVector(a.Rows())
	if err != nil {
		return Result{}, err
	}
	probe, err := squaredPair(a, y, o.probeIterations, probeTolerance, o.probeStep)
	if err != nil {
		return Result{}, err
	}
	if probe.converged {
		// y kept iterating in place during the probe; refine from there.
		tight, err := squaredPair(a, y, o.maxIterations, matrix.EpsAbs[float64](), 0)
		if err != nil {
			return Result{}, err
		}
		if tight.converged && len(tight.pairs) > 0 {
			return Result{
				Pairs:      tight.pairs,
				Iterations: probe.iters + tight.iters,
				Converged:  true,
				History:    append(probe.history, tight.history...),
			}, nil
		}
	}

	out, err := conjugatePair(a, o.maxIterations)

	return out.result(), err
}

// seedVector allocates the canonical n×1 start vector e₀.
func seedVector(n int) (*matrix.Matrix[float64], error) {
	y, err := matrix.New[float64](n, 1)
	if err != nil {
		return nil, fmt.Errorf("PowerMethodEigenvalues: %w", err)
	}
	_ = y.SetVec(0, 1) // n >= 1 after New succeeds

	return y, nil
}

// dominantStep advances one classic power-iteration step in place:
// y ← a·u, u ← y/‖y‖, and returns the Rayleigh estimate u·(a·u).
func dominantStep(a, u, y *matrix.Matrix[float64]) (float64, error) {
	au, err := matrix.Mul(a, u)
	if err != nil {
		return 0, err
	}
	if err = y.Assign(au); err != nil {
		return 0, err
	}
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return 0, err
	}
	un, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return 0, err
	}
	if err = u.Assign(un); err != nil {
		return 0, err
	}
	au, err = matrix.Mul(a, u)
	if err != nil {
		return 0, err
	}

	return matrix.Dot(u, au)
}

// dominantReal runs classic power iteration until the Rayleigh estimate
// settles under the global float64 epsilon or maxIters is exhausted.
// The single recovered pair is reported even on a non-converged run; a
// degenerate direction (‖u‖ below epsilon) clears the Converged flag.
func dominantReal(a *matrix.Matrix[float64], maxIters int) (outcome, error) {
	y, err := seedVector(a.Rows())
	if err != nil {
		return outcome{}, err
	}
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return outcome{}, err
	}
	u, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return outcome{}, err
	}
	au, err := matrix.Mul(a, u)
	if err != nil {
		return outcome{}, err
	}
	lambda, err := matrix.Dot(u, au)
	if err != nil {
		return outcome{}, err
	}

	var (
		eps     = matrix.EpsAbs[float64]()
		prev    = farPrevious
		iter    int
		history []float64
	)
	for math.Abs(prev-lambda) > eps {
		prev = lambda
		if lambda, err = dominantStep(a, u, y); err != nil {
			return outcome{}, err
		}
		history = append(history, math.Abs(prev-lambda))
		iter++
		if iter > maxIters {
			break
		}
	}

	un, err := algebra.EuclideanNorm(u)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		pairs:     []Pair{{Value: complex(lambda, 0), Vector: matrix.ToComplex(u)}},
		iters:     iter + 1,
		converged: iter < maxIters && un >= eps,
		history:   history,
	}, nil
}

// squaredStep advances one A²-iteration step in place:
// y ← a²·u, u ← y/‖y‖, and returns the λ² estimate u·(a²·u).
func squaredStep(a2, u, y *matrix.Matrix[float64]) (float64, error) {
	a2u, err := matrix.Mul(a2, u)
	if err != nil {
		return 0, err
	}
	if err = y.Assign(a2u); err != nil {
		return 0, err
	}
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return 0, err
	}
	un, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return 0, err
	}
	if err = u.Assign(un); err != nil {
		return 0, err
	}
	a2u, err = matrix.Mul(a2, u)
	if err != nil {
		return 0, err
	}

	return matrix.Dot(u, a2u)
}

// squaredPair runs power iteration on A² to tolerance tol, recovering a
// real ±λ eigenvalue pair. y is the caller's start vector and keeps
// iterating IN PLACE, so the auto dispatcher can resume a probe run at a
// tighter tolerance without restarting.
//
// A positive probeStep arms the stall detector: the run aborts (and is
// marked non-converged) once the residual recorded probeStep steps ago is
// not strictly larger than the latest one, or once the two differ by less
// than the global epsilon. probeStep == 0 disables detection.
//
// The candidate eigenvectors come from the spectral split
// v± = (A²·u ± λ·A·u) / (2λ²); a candidate is kept when its norm clears
// tol. Converged requires staying under the cap, no stall, and at least
// one kept candidate.
func squaredPair(a, y *matrix.Matrix[float64], maxIters int, tol float64, probeStep int) (outcome, error) {
	a2, err := matrix.Mul(a, a)
	if err != nil {
		return outcome{}, err
	}
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return outcome{}, err
	}
	u, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return outcome{}, err
	}
	a2u, err := matrix.Mul(a2, u)
	if err != nil {
		return outcome{}, err
	}
	sq, err := matrix.Dot(u, a2u)
	if err != nil {
		return outcome{}, err
	}

	var (
		lambda  = math.Sqrt(math.Abs(sq))
		prev    = farPrevious
		iter    int
		stalled bool
		history []float64
	)
	for math.Abs(prev-lambda) > tol {
		prev = lambda
		if sq, err = squaredStep(a2, u, y); err != nil {
			return outcome{}, err
		}
		lambda = math.Sqrt(math.Abs(sq))
		history = append(history, math.Abs(prev-lambda))
		if probeStep > 0 && len(history) >= probeStep {
			last, back := history[len(history)-1], history[len(history)-probeStep]
			if last >= back || math.Abs(last-back) <= matrix.EpsAbs[float64]() {
				stalled = true
				break
			}
		}
		iter++
		if iter > maxIters {
			break
		}
	}

	// Spectral split into the +λ and -λ directions.
	au, err := matrix.Mul(a, u)
	if err != nil {
		return outcome{}, err
	}
	a2u, err = matrix.Mul(a2, u)
	if err != nil {
		return outcome{}, err
	}
	var pairs []Pair
	for _, sign := range []float64{1, -1} {
		t, err := matrix.Scale(au, sign*lambda)
		if err != nil {
			return outcome{}, err
		}
		if t, err = matrix.Add(t, a2u); err != nil {
			return outcome{}, err
		}
		v, err := matrix.ScaleDiv(t, 2*lambda*lambda)
		if err != nil {
			return outcome{}, err
		}
		vn, err := algebra.EuclideanNorm(v)
		if err != nil {
			return outcome{}, err
		}
		if vn > tol {
			pairs = append(pairs, Pair{Value: complex(sign*lambda, 0), Vector: matrix.ToComplex(v)})
		}
	}

	return outcome{
		pairs:     pairs,
		iters:     iter + 1,
		converged: !stalled && iter < maxIters && len(pairs) > 0,
		history:   history,
	}, nil
}

// conjugateStep advances one complex-iteration step in place and returns
// the current root estimates of the characteristic quadratic.
//
// After the usual y ← A·u, u ← y/‖y‖ update, the step fits
// A²·u + c₁·(A·u) + c₀·u ≈ 0 by least squares over the REAL parts and
// solves x² + c₁·x + c₀ = 0 for the conjugate eigenvalue pair.
func conjugateStep(ca, ca2 *matrix.Matrix[complex128], y, u *matrix.Matrix[complex128]) (complex128, complex128, error) {
	au, err := matrix.Mul(ca, u)
	if err != nil {
		return 0, 0, err
	}
	if err = y.Assign(au); err != nil {
		return 0, 0, err
	}
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return 0, 0, err
	}
	un, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return 0, 0, err
	}
	if err = u.Assign(un); err != nil {
		return 0, 0, err
	}

	n := u.Rows()
	l, err := matrix.New[float64](n, 2)
	if err != nil {
		return 0, 0, err
	}
	if au, err = matrix.Mul(ca, u); err != nil {
		return 0, 0, err
	}
	a2u, err := matrix.Mul(ca2, u)
	if err != nil {
		return 0, 0, err
	}
	rhs, err := matrix.New[float64](n, 1)
	if err != nil {
		return 0, 0, err
	}
	var (
		i            int
		ue, aue, a2e complex128
	)
	for i = 0; i < n; i++ {
		ue, _ = u.AtVec(i)
		aue, _ = au.AtVec(i)
		a2e, _ = a2u.AtVec(i)
		_ = l.Set(i, 0, real(ue))
		_ = l.Set(i, 1, real(aue))
		_ = rhs.SetVec(i, -real(a2e))
	}

	c, err := algebra.MinimalSquareProblem(l, rhs)
	if err != nil {
		return 0, 0, err
	}
	c0, _ := c.AtVec(0)
	c1, _ := c.AtVec(1)

	return algebra.SolveQuadraticEquation(1, c1, c0)
}

// conjugatePair runs the fully complex iteration until BOTH root
// estimates settle under the global float64 epsilon or maxIters is
// exhausted. Eigenvectors are reconstructed from the final direction:
// v₁ = A²·u − r₂·A·u and v₂ = A·u − A²·u/r₁; a candidate is kept when
// its norm magnitude clears the complex epsilon magnitude. An empty pair
// list does NOT clear Converged (a genuinely nilpotent operator has no
// recoverable direction yet the roots are exact).
func conjugatePair(a *matrix.Matrix[float64], maxIters int) (outcome, error) {
	a2, err := matrix.Mul(a, a)
	if err != nil {
		return outcome{}, err
	}
	ca, ca2 := matrix.ToComplex(a), matrix.ToComplex(a2)

	n := a.Rows()
	y, err := matrix.New[complex128](n, 1)
	if err != nil {
		return outcome{}, err
	}
	_ = y.SetVec(0, 1)
	nrm, err := algebra.EuclideanNorm(y)
	if err != nil {
		return outcome{}, err
	}
	u, err := matrix.ScaleDiv(y, nrm)
	if err != nil {
		return outcome{}, err
	}

	var (
		eps     = matrix.EpsAbs[float64]()
		prev1   = complex(farPrevious, 0)
		prev2   = complex(farPrevious, 0)
		r1, r2  complex128
		iter    int
		history []float64
	)
	for cmplx.Abs(prev1-r1) > eps || cmplx.Abs(prev2-r2) > eps {
		prev1, prev2 = r1, r2
		if r1, r2, err = conjugateStep(ca, ca2, y, u); err != nil {
			return outcome{}, err
		}
		d1, d2 := cmplx.Abs(prev1-r1), cmplx.Abs(prev2-r2)
		history = append(history, math.Max(d1, d2))
		iter++
		if iter > maxIters {
			break
		}
	}

	// Reconstruct candidate directions from the settled roots.
	au, err := matrix.Mul(ca, u)
	if err != nil {
		return outcome{}, err
	}
	a2u, err := matrix.Mul(ca2, u)
	if err != nil {
		return outcome{}, err
	}
	v1, err := matrix.New[complex128](n, 1)
	if err != nil {
		return outcome{}, err
	}
	v2, err := matrix.New[complex128](n, 1)
	if err != nil {
		return outcome{}, err
	}
	var (
		i       int
		ae, a2e complex128
	)
	for i = 0; i < n; i++ {
		ae, _ = au.AtVec(i)
		a2e, _ = a2u.AtVec(i)
		_ = v1.SetVec(i, a2e-r2*ae)
		_ = v2.SetVec(i, ae-a2e/r1)
	}

	cEps := matrix.EpsAbs[complex128]()
	var pairs []Pair
	for _, cand := range []Pair{{Value: r1, Vector: v1}, {Value: r2, Vector: v2}} {
		vn, err := algebra.EuclideanNorm(cand.Vector)
		if err != nil {
			return outcome{}, err
		}
		if cmplx.Abs(vn) > cEps {
			pairs = append(pairs, cand)
		}
	}

	return outcome{
		pairs:     pairs,
		iters:     iter + 1,
		converged: iter < maxIters,
		history:   history,
	}, nil
}
