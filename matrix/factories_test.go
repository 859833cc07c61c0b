// Package matrix_test contains unit tests for the static factories and the
// global epsilon/precision policy.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestIdentity verifies ones on the diagonal and zeros elsewhere.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

// TestRandomBoundsAndReproducibility verifies draws stay in [min, max) and
// a forced reseed replays the exact sequence.
func TestRandomBoundsAndReproducibility(t *testing.T) {
	first, err := matrix.Random(4, 4, -2, 2, matrix.WithSeed(42), matrix.WithForceReseed())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := first.At(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, -2.0)
			require.Less(t, v, 2.0)
		}
	}

	second, err := matrix.Random(4, 4, -2, 2, matrix.WithSeed(42), matrix.WithForceReseed())
	require.NoError(t, err)
	ok, err := matrix.Equal(first, second) // same seed, same draw
	require.NoError(t, err)
	require.True(t, ok)
}

// TestRandomIntsInclusiveBounds verifies integer draws land in [min, max]
// and hold whole values.
func TestRandomIntsInclusiveBounds(t *testing.T) {
	m, err := matrix.RandomInts(5, 5, 0, 1, matrix.WithSeed(7), matrix.WithForceReseed())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Contains(t, []float64{0, 1}, v)
		}
	}
}

// TestSetEpsPerType verifies the policy is stored per scalar type.
func TestSetEpsPerType(t *testing.T) {
	matrix.SetEps(1e-9, 6)
	matrix.SetEps(complex(1e-3, 0), 2)
	defer matrix.SetEps(matrix.MachineEpsilon, matrix.DefaultPrecision)
	defer matrix.SetEps(complex(matrix.MachineEpsilon, 0), matrix.DefaultPrecision)

	require.Equal(t, 1e-9, matrix.Eps[float64]())
	require.Equal(t, 6, matrix.Precision[float64]())
	require.Equal(t, complex(1e-3, 0), matrix.Eps[complex128]())
	require.Equal(t, 2, matrix.Precision[complex128]())
	require.Equal(t, 1e-3, matrix.EpsAbs[complex128]()) // magnitude of the complex eps
}
