// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy is orthogonal to algorithms:
//   - validateNaNInf controls whether ingestion (NewDenseFrom, Set) rejects NaN/±Inf.
//   - pivotTol is the single zero-threshold shared by PLU pivot selection and
//     triangular substitution; the default 0 means "exactly zero".
//   - Iteration policy (eps, maxIter, balance, onIteration) is consumed only by
//     the QR eigenvalue iteration.
//   - workers > 1 enables row-block parallelism; results stay bit-identical.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the convergence tolerance of the QR eigenvalue iteration:
	// the Frobenius norm of the strictly lower triangle must drop to or below it.
	DefaultEpsilon = 1e-10

	// DefaultPivotTolerance is the magnitude at or below which a pivot (PLU) or
	// a triangular diagonal (substitution) is treated as zero.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Iteration & execution policy.
const (
	// DefaultMaxIterations is the hard cap of QR sweeps for Eigenvalues.
	DefaultMaxIterations = 1000

	// DefaultBalance controls the D⁻¹AD balancing pre-pass before QR sweeps.
	DefaultBalance = false

	// DefaultPositiveDiagonal controls sign canonicalisation of QR (diag(R) ≥ 0).
	DefaultPositiveDiagonal = false

	// DefaultWorkers is the number of goroutines used by row-parallel kernels.
	// 1 keeps every kernel strictly sequential.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, > 0"
	panicPivotTolInvalid  = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be > 0"
	panicWorkersInvalid   = "matrix: WithWorkers: n must be > 0"
	panicIterationHookNil = "matrix: WithIterationHook: fn must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// IterationHook observes the QR eigenvalue iteration after every sweep.
// iter is 1-based; residual is the strictly-lower Frobenius norm of the iterate.
type IterationHook func(iter int, residual float64)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // > 0; DefaultEpsilon
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf

	// iteration policy
	maxIter     int           // > 0; DefaultMaxIterations
	balance     bool          // DefaultBalance
	onIteration IterationHook // nil ⇒ no callback

	// factorisation shape policy
	positiveDiag bool // DefaultPositiveDiagonal

	// execution policy
	workers int // > 0; DefaultWorkers
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the convergence tolerance of the QR eigenvalue iteration.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - 1e-8..1e-12 is a good range for float64 data with entries of order 1.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the zero-threshold for PLU pivots and triangular diagonals.
// A pivot p is skipped (PLU) or rejected with ErrSingular (substitution) when |p| <= tol.
//
// Errors:
//   - Panics when tol is NaN, ±Inf or negative.
//
// Notes:
//   - The default 0 reproduces exact-zero semantics. A small positive value
//     (e.g. 1e-12 scaled by the matrix norm) turns floating residue into rank loss.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithMaxIterations caps the number of QR sweeps in Eigenvalues.
// Errors:
//   - Panics when n <= 0.
//
// AI-Hints:
//   - WithMaxIterations(A.Rows()) reproduces the one-sweep-per-dimension heuristic;
//     expect ErrNumericDivergence in that case for most inputs.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithBalance enables the D⁻¹AD balancing pre-pass before the QR sweeps.
// Balancing is a similarity transform, so eigenvalues are unchanged.
func WithBalance() Option {
	return func(o *Options) { o.balance = true }
}

// WithoutBalance disables the balancing pre-pass (default).
func WithoutBalance() Option {
	return func(o *Options) { o.balance = false }
}

// WithPositiveDiagonal canonicalises QR so that every R[k,k] ≥ 0.
// For an invertible input this makes Q and R unique.
func WithPositiveDiagonal() Option {
	return func(o *Options) { o.positiveDiag = true }
}

// WithWorkers sets the number of goroutines for row-parallel kernels (Mul, PLU elimination).
// Implementation:
//   - Stage 1: validate n > 0.
//   - Stage 2: store n; kernels split independent rows into n contiguous blocks.
//
// Behavior highlights:
//   - Every output row is owned by exactly one goroutine; elimination steps stay
//     sequential, so results are bit-identical to the sequential path.
//
// Errors:
//   - Panics when n <= 0.
//
// AI-Hints:
//   - Worth it from roughly n ≥ 256; below that goroutine overhead dominates.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithIterationHook registers a callback invoked after each QR sweep.
// Errors:
//   - Panics when fn is nil.
func WithIterationHook(fn IterationHook) Option {
	if fn == nil {
		panic(panicIterationHookNil)
	}

	return func(o *Options) { o.onIteration = fn }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Notes:
//   - This flag propagates only on creation; existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaultOptions() (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		maxIter:        DefaultMaxIterations,
		balance:        DefaultBalance,
		positiveDiag:   DefaultPositiveDiagonal,
		workers:        DefaultWorkers,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Nil setters are ignored so callers may pass optional values through.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
