package matrix_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestEigenvalues_Small(t *testing.T) {
	sqrt5 := math.Sqrt(5)
	cases := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"1x1", [][]float64{{-4}}, []float64{-4}},
		{"symmetric", [][]float64{{2, 1}, {1, 3}}, []float64{(5 + sqrt5) / 2, (5 - sqrt5) / 2}},
		{"nonsymmetric", [][]float64{{4, 1}, {2, 3}}, []float64{5, 2}},
		{"block", [][]float64{{2, 0, 0}, {0, 3, 4}, {0, 4, 9}}, []float64{2, 11, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals, err := matrix.Eigenvalues(MustFromRows(t, tc.rows))
			require.NoError(t, err)
			SortedClose(t, tc.want, vals, 1e-8)
		})
	}
}

// TestEigenDecompose_UpperTriangular returns the diagonal without a sweep.
func TestEigenDecompose_UpperTriangular(t *testing.T) {
	a := MustFromRows(t, [][]float64{{6, -2, 1}, {0, 4, 3}, {0, 0, 1}})

	res, err := matrix.EigenDecompose(a)
	require.NoError(t, err)
	require.Zero(t, res.Iterations)
	require.True(t, res.Converged)
	require.Equal(t, []float64{6, 4, 1}, res.Values)
	CompareExact(t, [][]float64{{6, -2, 1}, {0, 4, 3}, {0, 0, 1}}, res.Schur)
}

// TestEigenDecompose_Hook sees every sweep with a 1-based counter.
func TestEigenDecompose_Hook(t *testing.T) {
	var iters []int
	var last float64
	hook := func(iter int, residual float64) {
		iters = append(iters, iter)
		last = residual
	}

	res, err := matrix.EigenDecompose(MustFromRows(t, [][]float64{{4, 1}, {2, 3}}), matrix.WithIterationHook(hook))
	require.NoError(t, err)
	require.Len(t, iters, res.Iterations)
	for i, it := range iters {
		require.Equal(t, i+1, it)
	}
	require.Equal(t, res.Residual, last)
	require.LessOrEqual(t, res.Residual, matrix.DefaultEpsilon)
}

// TestEigenvalues_Divergence uses a matrix with eigenvalues ±1, where the
// unshifted iteration is a fixed point.
func TestEigenvalues_Divergence(t *testing.T) {
	a := MustFromRows(t, [][]float64{{0, 1}, {1, 0}})

	res, err := matrix.EigenDecompose(a, matrix.WithMaxIterations(25))
	require.ErrorIs(t, err, matrix.ErrNumericDivergence)
	require.NotNil(t, res)
	require.False(t, res.Converged)
	require.Equal(t, 25, res.Iterations)
	require.InDelta(t, 1, res.Residual, 1e-9)
	require.Len(t, res.Values, 2)

	vals, err := matrix.Eigenvalues(a, matrix.WithMaxIterations(3))
	require.ErrorIs(t, err, matrix.ErrNumericDivergence)
	require.Len(t, vals, 2, "estimate is returned with the error")
}

// TestEigenvalues_Balanced checks that balancing keeps the spectrum and
// tightens it on a badly scaled non-normal matrix.
func TestEigenvalues_Balanced(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 1e5}, {1e-5, 2}})
	want := []float64{(3 - math.Sqrt(5)) / 2, (3 + math.Sqrt(5)) / 2}

	plain, err := matrix.Eigenvalues(a)
	require.NoError(t, err)
	SortedClose(t, want, plain, 1e-4)

	res, err := matrix.EigenDecompose(a, matrix.WithBalance())
	require.NoError(t, err)
	require.Len(t, res.Scale, 2)
	SortedClose(t, want, res.Values, 1e-8)

	require.LessOrEqual(t, maxSortedError(want, res.Values), maxSortedError(want, plain))
}

// maxSortedError is the largest |want[i]-got[i]| after sorting got ascending.
func maxSortedError(want, got []float64) float64 {
	g := append([]float64(nil), got...)
	sort.Float64s(g)
	var worst float64
	for i := range want {
		worst = math.Max(worst, math.Abs(want[i]-g[i]))
	}

	return worst
}

func TestEigenvalues_Errors(t *testing.T) {
	_, err := matrix.Eigenvalues(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Eigenvalues(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEigenvalues_AgainstGonum compares symmetric spectra with gonum.
func TestEigenvalues_AgainstGonum(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			// A = B + Bᵀ + diag(4n, 8n, ..) is symmetric with well separated eigenvalues.
			b := RandFilledDense(t, n, n, int64(n))
			a, err := matrix.Add(b, MustT(t, b))
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				MustSet(t, a, i, i, MustAt(t, a, i, i)+float64(4*(i+1)*n))
			}

			got, err := matrix.Eigenvalues(a, matrix.WithMaxIterations(20000))
			require.NoError(t, err)

			g, err := matrix.ToGonum(a)
			require.NoError(t, err)
			want, ok := gonumEigenvalues(g)
			require.True(t, ok)
			SortedClose(t, want, got, 1e-6)
		})
	}
}
