// Package matrix offers a dense numeric matrix with shared-storage views.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular container generic over float64 and complex128,
//     stored row-major in one flat backing buffer.
//   - Zero-copy views (SubMatrix, Row, Col) that alias the owner's storage:
//     writes through a view are visible through the owner and vice versa.
//   - Arithmetic kernels (Add, Sub, Mul, Scale, ScaleDiv, Dot) and an
//     epsilon-tolerant Equal, all with strict fail-fast validation.
//   - Factories (Identity, Zeros, FromRows, Random, RandomInts) and two
//     formatters (aligned String, nested-list ToWolframString).
//   - One global epsilon/precision pair per scalar type, read by every
//     comparison and convergence check for that type.
//
// Storage lifetime follows Go slices: the backing buffer lives as long as any
// owner or view references it. Concurrent writers to a view and its owner are
// not synchronized; the package assumes single-threaded or externally
// synchronized use.
package matrix
