// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers and a read-only view of resolved Options to
//     matrix_test only. The _test.go suffix keeps this surface out of
//     production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options. If a field is added, mirror
//     it in snapshotOf (the defaults test will catch drift).

// Panic message exports to avoid magic strings in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicPivotTolInvalid_TestOnly  = panicPivotTolInvalid
	PanicMaxIterInvalid_TestOnly   = panicMaxIterInvalid
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicIterationHookNil_TestOnly = panicIterationHookNil
)

var (
	// ExportedIsqrt exposes isqrt for boundary tests.
	ExportedIsqrt = isqrt
	// ExportedForEachRowBlock exposes the errgroup row splitter.
	ExportedForEachRowBlock = forEachRowBlock
)

// SwapRowRange_TestOnly forwards to the column-restricted row swap used by PLU.
func SwapRowRange_TestOnly(m *Dense, r1, r2, c0, c1 int) { swapRowRange(m, r1, r2, c0, c1) }

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	PivotTol       float64
	ValidateNaNInf bool
	MaxIter        int
	Balance        bool
	HasHook        bool
	PositiveDiag   bool
	Workers        int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		PivotTol:       o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
		MaxIter:        o.maxIter,
		Balance:        o.balance,
		HasHook:        o.onIteration != nil,
		PositiveDiag:   o.positiveDiag,
		Workers:        o.workers,
	}
}

// NewMatrixOptionsSnapshot_TestOnly returns the documented defaults.
func NewMatrixOptionsSnapshot_TestOnly() OptionsSnapshot {
	return snapshotOf(NewMatrixOptions())
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
