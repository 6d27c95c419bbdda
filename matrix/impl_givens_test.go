package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewGivens(t *testing.T) {
	g := matrix.NewGivens(3, 4)
	require.InDelta(t, 5, g.R, 1e-15)
	require.InDelta(t, 0.6, g.C, 1e-15)
	require.InDelta(t, 0.8, g.S, 1e-15)
	require.InDelta(t, 1, g.C*g.C+g.S*g.S, 1e-15)

	// b == 0 is the identity rotation.
	require.Equal(t, matrix.Givens{C: 1, S: 0, R: -2}, matrix.NewGivens(-2, 0))

	g = matrix.NewGivens(0, -7)
	require.Equal(t, 7.0, g.R)
	require.Equal(t, 0.0, g.C)
	require.Equal(t, -1.0, g.S)
}

// TestGivens_ApplyRows zeroes the lower entry of a column pair.
func TestGivens_ApplyRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{3, 1}, {4, 2}})
	g := matrix.NewGivens(3, 4)
	g.ApplyRows(m, 0, 1, 0)

	CompareRowsClose(t, [][]float64{{5, 2.2}, {0, 0.4}}, m, 1e-12)
}

// TestGivens_ApplyColsIsTransposeOfRows checks (G·A)ᵀ = Aᵀ·Gᵀ.
func TestGivens_ApplyColsIsTransposeOfRows(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 5)
	g := matrix.NewGivens(0.3, -1.1)

	rows := a.Clone().(*matrix.Dense)
	g.ApplyRows(rows, 1, 3, 0)
	cols := MustT(t, a)
	g.ApplyCols(cols, 1, 3)

	CompareClose(t, MustT(t, rows), cols, 0, 1e-14)
}

func TestQRGivens(t *testing.T) {
	lit := MustFromRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}})
	q, r, err := matrix.QRGivens(lit, matrix.WithPositiveDiagonal())
	require.NoError(t, err)
	requireQR(t, lit, q, r)
	CompareRowsClose(t, [][]float64{{14, 21, -14}, {0, 175, -70}, {0, 0, 35}}, r, tol4)

	for _, shape := range [][2]int{{1, 1}, {2, 2}, {6, 6}, {5, 2}, {2, 5}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := RandFilledDense(t, shape[0], shape[1], int64(shape[0]+7*shape[1]))
			q, r, err := matrix.QRGivens(a)
			require.NoError(t, err)
			requireQR(t, a, q, r)
		})
	}

	_, _, err = matrix.QRGivens(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestQRGivens_MatchesHouseholder checks both variants agree once signs are canonical.
func TestQRGivens_MatchesHouseholder(t *testing.T) {
	a := DiagDominant(t, 9, 9)
	_, rh, err := matrix.QR(a, matrix.WithPositiveDiagonal())
	require.NoError(t, err)
	_, rg, err := matrix.QRGivens(a, matrix.WithPositiveDiagonal())
	require.NoError(t, err)

	CompareClose(t, rh, rg, 0, 1e-9)
	require.False(t, math.Signbit(MustAt(t, rg, 8, 8)))
}
