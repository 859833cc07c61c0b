// SPDX-License-Identifier: MIT

// Package matrix: human-readable and machine-readable formatters.
// Both formatters render fixed decimals driven by the global per-type
// precision (see SetEps). Intended for diagnostics and export, not hot paths.

package matrix

import (
	"strconv"
	"strings"
)

// Formatting literals.
const (
	_fmtOpen     = "["
	_fmtClose    = "]\n"
	_fmtSep      = ", "
	_fmtNestOpen = "{"
	_fmtNestEnd  = "}"
)

// formatScalar renders one element with prec fixed decimals.
// complex128 renders as "(re,im)". Complexity: O(1).
func formatScalar[T Scalar](v T, prec int) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', prec, 64)
	case complex128:
		return "(" + strconv.FormatFloat(real(x), 'f', prec, 64) +
			"," + strconv.FormatFloat(imag(x), 'f', prec, 64) + ")"
	}

	return "" // unreachable
}

// String renders the matrix as one bracketed block with column-aligned,
// fixed-precision values.
// Implementation:
//   - Stage 1: format every element once to find the widest rendering.
//   - Stage 2: emit rows padded to that width, comma-separated, one line per row.
//
// Complexity: O(r*c) time and formatting space.
func (m *Matrix[T]) String() string {
	prec := Precision[T]()
	var (
		i, j   int
		maxLen int
		s      string
	)
	cells := make([]string, m.rows*m.cols)
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			s = formatScalar(m.at(i, j), prec)
			cells[i*m.cols+j] = s
			if len(s) > maxLen {
				maxLen = len(s)
			}
		}
	}

	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i = 0; i < m.rows; i++ {
		if i != 0 {
			b.WriteByte(' ') // align continuation rows under the opening bracket
		}
		for j = 0; j < m.cols; j++ {
			s = cells[i*m.cols+j]
			b.WriteString(strings.Repeat(" ", maxLen-len(s)))
			b.WriteString(s)
			if i+1 < m.rows || j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		if i+1 < m.rows {
			b.WriteByte('\n')
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// ToWolframString renders the matrix as a machine-readable nested list,
// e.g. "{{1,2},{3,4}}\n", with fixed decimals from the global precision.
// Complexity: O(r*c).
func (m *Matrix[T]) ToWolframString() string {
	prec := Precision[T]()
	var (
		b    strings.Builder
		i, j int
	)
	b.WriteString(_fmtNestOpen)
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtNestOpen)
		for j = 0; j < m.cols; j++ {
			b.WriteString(formatScalar(m.at(i, j), prec))
			if j+1 < m.cols {
				b.WriteByte(',')
			}
		}
		b.WriteString(_fmtNestEnd)
		if i+1 < m.rows {
			b.WriteByte(',')
		}
	}
	b.WriteString(_fmtNestEnd)
	b.WriteByte('\n')

	return b.String()
}
