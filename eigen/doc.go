// Package eigen extracts dominant eigenvalues and eigenvectors of real
// square matrices by power iteration.
//
// Three methods are provided behind one dispatcher, PowerMethodEigenvalues:
//
//   - MethodDominant: classic power iteration with a Rayleigh-quotient
//     estimate; converges when a single real eigenvalue strictly dominates.
//   - MethodSquared: power iteration on A². When the two largest-magnitude
//     eigenvalues are a real ±λ pair, iteration on A² converges to λ²
//     regardless of sign and both eigenvectors are recovered by a
//     symmetric/antisymmetric split.
//   - MethodComplex: fully complex iteration. Each step fits the quadratic
//     recurrence A²u = c₁·(A·u) + c₀·u by least squares and reads the
//     conjugate eigenvalue pair off the characteristic quadratic's roots.
//
// The dispatcher probes MethodSquared at a loose tolerance first (cheap
// feasibility check with stall detection), refines at full precision when
// the probe converges, and otherwise falls back to MethodComplex.
//
// Non-convergence is NOT an error: each call returns a Result whose
// Converged flag must be checked. Errors are reserved for malformed input
// (non-square matrices, nil operands) and collaborator failures.
package eigen
