// SPDX-License-Identifier: MIT

// Package algebra: sentinel error set. Matched via errors.Is, never panicked.

package algebra

import "errors"

var (
	// ErrSingular is returned when the normal equations of a least-squares
	// problem have no unique solution (zero pivot under partial pivoting).
	ErrSingular = errors.New("algebra: singular normal equations")

	// ErrDegenerate is returned when a quadratic solve is requested with a
	// zero leading coefficient.
	ErrDegenerate = errors.New("algebra: leading coefficient is zero")
)
