// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & shared-storage views.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula (i+offI)*dataCols + offJ + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Support zero-copy views (SubMatrix/Row/Col) aliasing the owner's buffer
//     and deep copies (Clone) for independent lifetime.
//
// Storage model:
//   - data is the full backing buffer of the OWNING instance (dataRows ×
//     dataCols elements, row-major).
//   - A view shares data and narrows the logical window to rows × cols
//     starting at (offI, offJ). An owning instance has zero offsets and
//     logical extents equal to the backing extents.
//   - The buffer is released by the garbage collector once the last owner or
//     view referencing it is gone.

package matrix

import "fmt"

// Method tags used in error wrappers (no magic strings at call sites).
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAtVec  = "AtVec"
	ctxSetVec = "SetVec"
)

// elemErrorf wraps a sentinel with a uniform method context and coordinates.
// Complexity: O(1).
func elemErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Matrix is a dense rectangular grid of Scalar values with view semantics.
//   - rows, cols are the logical extents; dataRows, dataCols the backing extents.
//   - offI, offJ locate the logical window inside the backing buffer.
//   - Invariant: rows+offI <= dataRows and cols+offJ <= dataCols.
type Matrix[T Scalar] struct {
	data     []T // shared row-major backing buffer (len == dataRows*dataCols)
	dataRows int // backing row extent
	dataCols int // backing column extent
	rows     int // logical row count
	cols     int // logical column count
	offI     int // row offset of the logical window
	offJ     int // column offset of the logical window
}

// New creates an owning rows×cols zero matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled backing buffer.
//
// Returns:
//   - *Matrix[T]: newly allocated owning instance.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New[T Scalar](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{
		data:     make([]T, rows*cols),
		dataRows: rows,
		dataCols: cols,
		rows:     rows,
		cols:     cols,
	}, nil
}

// NewFilled creates an owning rows×cols matrix with every element set to v.
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols).
func NewFilled[T Scalar](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data { // owning instance: flat fill is safe
		m.data[idx] = v
	}

	return m, nil
}

// FromRows creates an owning matrix from a nested row literal.
// Implementation:
//   - Stage 1: validate the literal is non-empty with a non-empty first row.
//   - Stage 2: validate every row length against the first; else ErrRaggedRows
//     (the offending length and the expected one are wrapped into the message).
//   - Stage 3: copy row by row into a fresh backing buffer.
//
// Errors:
//   - ErrInvalidDimensions (empty literal), ErrRaggedRows (uneven rows).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d elements instead of %d: %w",
				i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the logical row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the logical column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether the logical window is square. Complexity: O(1).
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// IsRowVector reports whether the matrix is 1×N. Complexity: O(1).
func (m *Matrix[T]) IsRowVector() bool { return m.rows == 1 }

// IsColVector reports whether the matrix is N×1. Complexity: O(1).
func (m *Matrix[T]) IsColVector() bool { return m.cols == 1 }

// IsVector reports whether the matrix is 1×N or N×1. Complexity: O(1).
func (m *Matrix[T]) IsVector() bool { return m.IsRowVector() || m.IsColVector() }

// IsView reports whether this instance aliases another instance's storage
// (non-zero offsets or a logical window smaller than the backing buffer).
// Complexity: O(1).
func (m *Matrix[T]) IsView() bool {
	return m.offI != 0 || m.offJ != 0 || m.rows != m.dataRows || m.cols != m.dataCols
}

// at reads (i,j) without bounds checks. Callers must have validated indices.
func (m *Matrix[T]) at(i, j int) T {
	return m.data[(i+m.offI)*m.dataCols+m.offJ+j]
}

// set writes (i,j) without bounds checks. Callers must have validated indices.
func (m *Matrix[T]) set(i, j int, v T) {
	m.data[(i+m.offI)*m.dataCols+m.offJ+j] = v
}

// At returns the value at (i, j) or ErrOutOfRange.
// Behavior highlights:
//   - Never panics on out-of-range; returns the sentinel wrapped with the
//     coordinates and the logical size.
//
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("indexes outside matrix of size %dx%d: %w",
			m.rows, m.cols, elemErrorf(ctxAt, i, j, ErrOutOfRange))
	}

	return m.at(i, j), nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
// Writes through a view land in the owner's buffer. Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("indexes outside matrix of size %dx%d: %w",
			m.rows, m.cols, elemErrorf(ctxSet, i, j, ErrOutOfRange))
	}
	m.set(i, j, v)

	return nil
}

// vecIndex maps a single vector index onto (row, col) coordinates.
// Returns ErrNotVector when the instance is neither 1×N nor N×1.
func (m *Matrix[T]) vecIndex(method string, i int) (int, int, error) {
	switch {
	case m.IsRowVector():
		return 0, i, nil
	case m.IsColVector():
		return i, 0, nil
	default:
		return 0, 0, fmt.Errorf("Matrix.%s(%d): single index into matrix of size %dx%d: %w",
			method, i, m.rows, m.cols, ErrNotVector)
	}
}

// AtVec returns element i of a vector-shaped matrix.
// Errors: ErrNotVector (not 1×N / N×1), ErrOutOfRange. Complexity: O(1).
func (m *Matrix[T]) AtVec(i int) (T, error) {
	r, c, err := m.vecIndex(ctxAtVec, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.At(r, c)
}

// SetVec stores v at element i of a vector-shaped matrix.
// Errors: ErrNotVector, ErrOutOfRange. Complexity: O(1).
func (m *Matrix[T]) SetVec(i int, v T) error {
	r, c, err := m.vecIndex(ctxSetVec, i)
	if err != nil {
		return err
	}

	return m.Set(r, c, v)
}

// SubMatrix returns a VIEW over the window [i:i+n, j:j+m) sharing storage
// with the receiver. n == -1 and cols == -1 mean "to the end" of the
// respective extent.
//
// Behavior highlights:
//   - Mutations through the view are visible through the owner and through
//     sibling views; no copying happens.
//   - The window itself is NOT validated; all safety lives in element access
//     (At/Set check the view's logical bounds).
//
// Complexity: O(1).
func (m *Matrix[T]) SubMatrix(i, j, n, cols int) *Matrix[T] {
	if n == -1 {
		n = m.rows - i
	}
	if cols == -1 {
		cols = m.cols - j
	}

	return &Matrix[T]{
		data:     m.data, // share storage
		dataRows: m.dataRows,
		dataCols: m.dataCols,
		rows:     n,
		cols:     cols,
		offI:     m.offI + i,
		offJ:     m.offJ + j,
	}
}

// Row returns a 1×Cols view of row i. Complexity: O(1).
func (m *Matrix[T]) Row(i int) *Matrix[T] {
	return m.SubMatrix(i, 0, 1, m.cols)
}

// Col returns a Rows×1 view of column j. Complexity: O(1).
func (m *Matrix[T]) Col(j int) *Matrix[T] {
	return m.SubMatrix(0, j, m.rows, 1)
}

// Clone returns a deep, OWNING copy of the logical window.
// The copy never aliases the receiver: mutating one never affects the other.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := &Matrix[T]{
		data:     make([]T, m.rows*m.cols),
		dataRows: m.rows,
		dataCols: m.cols,
		rows:     m.rows,
		cols:     m.cols,
	}
	var i, j int
	for i = 0; i < m.rows; i++ { // compact row-major copy through the offsets
		for j = 0; j < m.cols; j++ {
			cp.data[i*m.cols+j] = m.at(i, j)
		}
	}

	return cp
}

// Assign copies src's elements into the receiver element-wise, through the
// receiver's window (so assigning into a view mutates the owner's buffer).
// Sizes must match exactly.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrDimensionMismatch (different logical sizes).
//
// Complexity: O(rows*cols).
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if err := validateSameSize(m, src); err != nil {
		return matrixErrorf(opAssign, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			m.set(i, j, src.at(i, j))
		}
	}

	return nil
}

// Transposed returns a new OWNING matrix with rows and columns swapped.
// The result never aliases the receiver (it is not a view). Complexity: O(rows*cols).
func (m *Matrix[T]) Transposed() *Matrix[T] {
	t := &Matrix[T]{
		data:     make([]T, m.rows*m.cols),
		dataRows: m.cols,
		dataCols: m.rows,
		rows:     m.cols,
		cols:     m.rows,
	}
	var i, j int
	for i = 0; i < m.cols; i++ {
		for j = 0; j < m.rows; j++ {
			t.data[i*m.rows+j] = m.at(j, i)
		}
	}

	return t
}

// ToComplex returns a new owning complex matrix with every element of m
// promoted to complex128 (zero imaginary part for float64 sources).
// Complexity: O(rows*cols).
func ToComplex[T Scalar](m *Matrix[T]) *Matrix[complex128] {
	c := &Matrix[complex128]{
		data:     make([]complex128, m.rows*m.cols),
		dataRows: m.rows,
		dataCols: m.cols,
		rows:     m.rows,
		cols:     m.cols,
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			switch v := any(m.at(i, j)).(type) {
			case float64:
				c.data[i*m.cols+j] = complex(v, 0)
			case complex128:
				c.data[i*m.cols+j] = v
			}
		}
	}

	return c
}
