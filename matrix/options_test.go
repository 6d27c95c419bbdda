// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTol)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultMaxIterations, o.MaxIter)
	require.Equal(t, matrix.DefaultBalance, o.Balance)
	require.Equal(t, matrix.DefaultPositiveDiagonal, o.PositiveDiag)
	require.Equal(t, matrix.DefaultWorkers, o.Workers)
	require.False(t, o.HasHook)
}

// 2) TestGatherOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithBalance(), matrix.WithoutBalance())
	require.False(t, o.Balance)
	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithoutBalance(), matrix.WithBalance())
	require.True(t, o.Balance)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithEpsilon(1e-6),
		matrix.WithPivotTolerance(1e-12),
		matrix.WithMaxIterations(7),
		matrix.WithPositiveDiagonal(),
		matrix.WithWorkers(4),
		matrix.WithIterationHook(func(int, float64) {}),
		nil, // nil setters are ignored
	)
	require.Equal(t, 1e-6, o.Eps)
	require.Equal(t, 1e-12, o.PivotTol)
	require.Equal(t, 7, o.MaxIter)
	require.True(t, o.PositiveDiag)
	require.Equal(t, 4, o.Workers)
	require.True(t, o.HasHook)
	require.False(t, o.Balance, "untouched fields keep defaults")
}

// 3) TestOptionPanics checks that nonsensical parameters panic with stable messages.
func TestOptionPanics(t *testing.T) {
	ExpectPanic(t, matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(0) })
	ExpectPanic(t, matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(math.NaN()) })
	ExpectPanic(t, matrix.PanicPivotTolInvalid_TestOnly, func() { matrix.WithPivotTolerance(-1) })
	ExpectPanic(t, matrix.PanicPivotTolInvalid_TestOnly, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	ExpectPanic(t, matrix.PanicMaxIterInvalid_TestOnly, func() { matrix.WithMaxIterations(0) })
	ExpectPanic(t, matrix.PanicWorkersInvalid_TestOnly, func() { matrix.WithWorkers(-2) })
	ExpectPanic(t, matrix.PanicIterationHookNil_TestOnly, func() { matrix.WithIterationHook(nil) })
}
