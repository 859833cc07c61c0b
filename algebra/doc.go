// Package algebra provides the numeric collaborators consumed by the
// power-iteration engine.
//
// The algebra package provides:
//
//   - EuclideanNorm: the 2-norm of a vector-shaped matrix (sum of squared
//     element magnitudes under a square root), returned in the vector's
//     scalar type with a zero imaginary part for complex inputs.
//   - MinimalSquareProblem: the least-squares solution of an overdetermined
//     real linear system via the normal equations.
//   - SolveQuadraticEquation: both (possibly complex) roots of
//     a·x² + b·x + c = 0.
//
// All three are pure functions with strict fail-fast validation; they reuse
// the matrix package's sentinel errors where the condition is a matrix-shape
// violation.
package algebra
