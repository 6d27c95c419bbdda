package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// requireQR checks Q·R ≈ A, QᵀQ ≈ I and R upper triangular.
func requireQR(t *testing.T, a, q, r *matrix.Dense) {
	t.Helper()
	CompareClose(t, a, MustMul(t, q, r), 0, 1e-9)

	orth, err := matrix.IsOrthogonal(q, 1e-9)
	require.NoError(t, err)
	require.True(t, orth, "Q must be orthogonal")

	upper, err := matrix.IsUpperTriangular(r, 0)
	require.NoError(t, err)
	require.True(t, upper, "R must be upper triangular")
}

// TestQR_Classic3x3 factors [[12,-51,4],[6,167,-68],[-4,24,-41]].
// Signs depend on the reflector convention, so magnitudes are compared.
func TestQR_Classic3x3(t *testing.T) {
	a := MustFromRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}})

	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	requireQR(t, a, q, r)

	abs := r.Clone().(*matrix.Dense)
	require.NoError(t, abs.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }))
	CompareRowsClose(t, [][]float64{{14, 21, 14}, {0, 175, 70}, {0, 0, 35}}, abs, tol4)

	// alpha = -sign(x0)·‖x‖ with x0 = 12 > 0.
	require.InDelta(t, -14, MustAt(t, r, 0, 0), tol4)
}

func TestQR_PositiveDiagonal(t *testing.T) {
	a := MustFromRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}})

	q, r, err := matrix.QR(a, matrix.WithPositiveDiagonal())
	require.NoError(t, err)
	requireQR(t, a, q, r)
	CompareRowsClose(t, [][]float64{{14, 21, -14}, {0, 175, -70}, {0, 0, 35}}, r, tol4)
}

func TestQR_Random(t *testing.T) {
	for _, shape := range [][2]int{{2, 2}, {5, 5}, {16, 16}, {6, 3}, {3, 6}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := RandFilledDense(t, shape[0], shape[1], int64(shape[0]*31+shape[1]))
			q, r, err := matrix.QR(a)
			require.NoError(t, err)
			require.Equal(t, shape[0], q.Rows())
			require.Equal(t, shape[0], q.Cols())
			require.Equal(t, shape[0], r.Rows())
			require.Equal(t, shape[1], r.Cols())
			requireQR(t, a, q, r)
		})
	}
}

// TestQR_Degenerate covers the 1×1 shortcut and a zero column whose
// reflector is skipped.
func TestQR_Degenerate(t *testing.T) {
	one := MustFromRows(t, [][]float64{{-3}})
	q, r, err := matrix.QR(one)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, q)
	CompareExact(t, [][]float64{{-3}}, r)

	zeroCol := MustFromRows(t, [][]float64{{0, 0}, {0, 5}})
	q, r, err = matrix.QR(zeroCol)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, q)
	CompareExact(t, [][]float64{{0, 0}, {0, 5}}, r)

	_, _, err = matrix.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestQR_AgreesWithGonum compares |R| against gonum's QR of the same input.
func TestQR_AgreesWithGonum(t *testing.T) {
	a := RandFilledDense(t, 7, 7, 77)
	_, r, err := matrix.QR(a, matrix.WithPositiveDiagonal())
	require.NoError(t, err)

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	var gqr gonumQR
	gqr.Factorize(g)
	gr := gonumR(&gqr)

	n := 7
	for i := 0; i < n; i++ {
		sign := 1.0
		if gr.At(i, i) < 0 {
			sign = -1
		}
		for j := i; j < n; j++ {
			require.InDelta(t, sign*gr.At(i, j), MustAt(t, r, i, j), 1e-9, "R[%d,%d]", i, j)
		}
	}
}
