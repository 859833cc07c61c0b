// Package eigenkit is a compact numerical-linear-algebra toolkit built around
// a dense matrix with shared-storage views and power-iteration eigenvalue
// extraction.
//
// 🚀 What is eigenkit?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: generic over float64 and complex128, value semantics
//		  plus zero-copy sub-matrix / row / column views over shared storage
//		• Arithmetic kernels: Add, Sub, Mul, Scale, Dot, tolerant equality
//		• Power iteration: dominant real eigenvalue, the ±λ pair via A², and
//		  complex-conjugate pairs via a quadratic recurrence fit
//		• A dispatcher that probes the cheap method first and falls back to
//		  the general complex one
//
// ✨ Why choose eigenkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – fixed loop orders, one global epsilon per scalar type
//   - Pure Go – no cgo, no BLAS/LAPACK binding
//   - Honest failure – non-convergence is a flagged result, never a panic
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — the NumericMatrix container, views, kernels, factories, formatters
//	algebra/ — numeric collaborators: EuclideanNorm, MinimalSquareProblem,
//	           SolveQuadraticEquation
//	eigen/   — the three power-iteration methods and PowerMethodEigenvalues
//
// A CLI front-end lives in cmd/eigenkit: it reads a matrix from YAML, runs the
// dispatcher (or a forced method) and can plot the convergence history.
//
//	go get github.com/katalvlaran/eigenkit
package eigenkit
