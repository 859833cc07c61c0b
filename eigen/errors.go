// SPDX-License-Identifier: MIT

// Package eigen: sentinel error set. Matched via errors.Is, never panicked.

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eigenkit/matrix"
)

// ErrNonSquare is returned when an eigen solver receives a rectangular
// matrix. Power iteration is defined for square operators only.
var ErrNonSquare = errors.New("eigen: matrix is not square")

// validateSquare rejects nil and rectangular inputs, wrapping the actual
// size into the message. Complexity: O(1).
func validateSquare(a *matrix.Matrix[float64]) error {
	if a == nil {
		return fmt.Errorf("PowerMethodEigenvalues: %w", matrix.ErrNilMatrix)
	}
	if !a.IsSquare() {
		return fmt.Errorf("PowerMethodEigenvalues: matrix of size %dx%d: %w",
			a.Rows(), a.Cols(), ErrNonSquare)
	}

	return nil
}
