// Package matrix_test contains unit tests for the formatters.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestStringAlignment verifies the bracketed block layout with fixed
// decimals and column alignment.
func TestStringAlignment(t *testing.T) {
	matrix.SetEps(matrix.MachineEpsilon, 1)
	defer matrix.SetEps(matrix.MachineEpsilon, matrix.DefaultPrecision)

	m, err := matrix.FromRows([][]float64{
		{1, -22},
		{333, 4},
	})
	require.NoError(t, err)

	want := "[  1.0, -22.0, \n 333.0,   4.0]\n"
	require.Equal(t, want, m.String())
}

// TestStringComplex verifies complex elements render as (re,im) pairs.
func TestStringComplex(t *testing.T) {
	matrix.SetEps(complex(matrix.MachineEpsilon, 0), 0)
	defer matrix.SetEps(complex(matrix.MachineEpsilon, 0), matrix.DefaultPrecision)

	m, err := matrix.FromRows([][]complex128{{1 + 2i}})
	require.NoError(t, err)

	require.Equal(t, "[(1,2)]\n", m.String())
}

// TestToWolframString verifies the nested-list export form.
func TestToWolframString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	require.Equal(t, "{{1,2},{3,4}}\n", m.ToWolframString())
}

// TestStringOfView verifies formatting renders the logical window only.
func TestStringOfView(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	require.Equal(t, "{{5,6}}\n", m.SubMatrix(1, 1, 1, 2).ToWolframString())
}
