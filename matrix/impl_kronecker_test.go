package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestKronecker_Reference is the 2×2 ⊗ 3×2 reference product.
func TestKronecker_Reference(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, 4}, {6, 8}})
	b := MustFromRows(t, [][]float64{{1, 3}, {5, 7}, {9, 11}})

	k, err := matrix.Kronecker(a, b)
	require.NoError(t, err)
	require.Equal(t, 6, k.Rows())
	require.Equal(t, 4, k.Cols())
	CompareExact(t, [][]float64{
		{2, 6, 4, 12},
		{10, 14, 20, 28},
		{18, 22, 36, 44},
		{6, 18, 8, 24},
		{30, 42, 40, 56},
		{54, 66, 72, 88},
	}, k)
}

// TestKronecker_IndexFormula checks K[i,j] = a[i/bR, j/bC]·b[i%bR, j%bC] on random shapes.
func TestKronecker_IndexFormula(t *testing.T) {
	a := RandFilledDense(t, 3, 2, 11)
	b := RandFilledDense(t, 2, 4, 12)
	k, err := matrix.Kronecker(hide{a}, b)
	require.NoError(t, err)

	for i := 0; i < k.Rows(); i++ {
		for j := 0; j < k.Cols(); j++ {
			want := MustAt(t, a, i/2, j/4) * MustAt(t, b, i%2, j%4)
			require.Equal(t, want, MustAt(t, k, i, j))
		}
	}

	_, err = matrix.Kronecker(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
