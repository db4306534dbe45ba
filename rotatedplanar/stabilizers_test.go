package rotatedplanar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/topoqec/pcmgen/rotatedplanar"
	"github.com/topoqec/pcmgen/symplectic"
)

// distance3PCM is the full stabilizer matrix of the distance-3 code in
// binary symplectic form: 8 generators over 9 qubits, X half then Z half.
// Rows 0–3 are the Z plaquettes, rows 4–7 the X plaquettes.
var distance3PCM = []float64{
	// columns 0–8: X half, columns 9–17: Z half
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// TestStabilizers_Distance3 pins the exact distance-3 parity-check matrix.
func TestStabilizers_Distance3(t *testing.T) {
	code, err := rotatedplanar.New(3)
	require.NoError(t, err)

	want := mat.NewDense(8, 18, distance3PCM)
	got := code.Stabilizers()
	assert.True(t, mat.Equal(want, got),
		"distance-3 PCM mismatch:\ngot:\n%v\nwant:\n%v",
		mat.Formatted(got), mat.Formatted(want))
}

// TestStabilizers_Dimensions verifies (d²−1)×2d² shape across distances.
func TestStabilizers_Dimensions(t *testing.T) {
	for _, d := range []int{3, 5, 7, 9} {
		code, err := rotatedplanar.New(d)
		require.NoError(t, err)

		rows, cols := code.Stabilizers().Dims()
		assert.Equal(t, d*d-1, rows, "d=%d rows", d)
		assert.Equal(t, 2*d*d, cols, "d=%d cols", d)
	}
}

// TestStabilizers_Deterministic verifies repeated derivation yields equal
// matrices backed by independent storage.
func TestStabilizers_Deterministic(t *testing.T) {
	code, err := rotatedplanar.New(5)
	require.NoError(t, err)

	first := code.Stabilizers()
	second := code.Stabilizers()
	require.True(t, mat.Equal(first, second), "two derivations must agree")

	// Mutating one copy must not leak into the other.
	first.Set(0, 0, 7)
	assert.False(t, mat.Equal(first, second), "copies must not share storage")
}

// TestStabilizers_Binary checks the BSF matrix validates as strictly binary.
func TestStabilizers_Binary(t *testing.T) {
	code, err := rotatedplanar.New(7)
	require.NoError(t, err)

	assert.NoError(t, symplectic.Validate(code.Stabilizers()))
}

// TestStabilizers_AllCommute verifies the defining stabilizer property:
// every pair of generators commutes.
func TestStabilizers_AllCommute(t *testing.T) {
	for _, d := range []int{3, 5, 7} {
		code, err := rotatedplanar.New(d)
		require.NoError(t, err)

		ok, err := symplectic.AllCommute(code.Stabilizers())
		require.NoError(t, err)
		assert.True(t, ok, "d=%d generators must pairwise commute", d)
	}
}

// TestLogicals verifies the logical pair commutes with every stabilizer and
// anticommutes with each other.
func TestLogicals(t *testing.T) {
	for _, d := range []int{3, 5} {
		code, err := rotatedplanar.New(d)
		require.NoError(t, err)

		stabs := code.Stabilizers()
		lx := code.LogicalXs()
		lz := code.LogicalZs()

		px, err := symplectic.Product(lx, stabs)
		require.NoError(t, err)
		pz, err := symplectic.Product(lz, stabs)
		require.NoError(t, err)
		rows, _ := stabs.Dims()
		for j := 0; j < rows; j++ {
			assert.Zero(t, px.At(0, j), "d=%d logical X vs stabilizer %d", d, j)
			assert.Zero(t, pz.At(0, j), "d=%d logical Z vs stabilizer %d", d, j)
		}

		anti, err := symplectic.Commute(lx, lz)
		require.NoError(t, err)
		assert.False(t, anti, "d=%d logical X and Z must anticommute", d)
	}
}
