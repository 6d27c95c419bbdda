// SPDX-License-Identifier: MIT

// Package matrix - eigenvalues by the unshifted QR iteration.
//
// Purpose:
//   - Repeat A ← R·Q, where Q·R = A, until A is (numerically) upper
//     triangular; the diagonal then holds the eigenvalues.
//   - Report non-convergence as ErrNumericDivergence together with the best
//     current estimate instead of failing outright.
//
// Limits:
//   - Real eigenvalues with distinct magnitudes converge linearly at rate
//     max|λ_{i+1}/λ_i|. Complex-conjugate pairs and equal magnitudes do not
//     converge; no shifts are applied.
//
// Observability:
//   - WithIterationHook receives (iteration, residual) after every sweep.
//   - EigenResult carries the final iterate, iteration count and residual.

package matrix

import "fmt"

// EigenResult is the outcome of the QR iteration.
type EigenResult struct {
	// Values is the diagonal of the final iterate, in iterate order.
	Values []float64
	// Schur is the final iterate (upper triangular when Converged).
	Schur *Dense
	// Iterations is the number of QR sweeps performed.
	Iterations int
	// Residual is the Frobenius norm of the strictly lower triangle of Schur.
	Residual float64
	// Converged reports Residual <= the configured tolerance.
	Converged bool
	// Scale holds the balancing factors D (B = D⁻¹·A·D) or nil without WithBalance.
	Scale []float64
}

// EigenDecompose runs the unshifted QR iteration on a copy of m.
// Implementation:
//   - Stage 1: validate square; A₀ = copy(m); optional balancing (WithBalance).
//   - Stage 2: while residual > eps and k < maxIter:
//     (Q, R) = qr(A_k); A_{k+1} = R·Q; residual = ‖tril(A_{k+1}, -1)‖_F;
//     notify the iteration hook.
//   - Stage 3: read the eigenvalues off the diagonal.
//
// Behavior highlights:
//   - A 1×1 input returns its single entry with Iterations = 0.
//   - An already upper-triangular input returns without any sweep.
//   - The residual bounds the strictly lower triangle, not the eigenvalue
//     error: for badly scaled non-normal input a tiny residual can still sit
//     next to eigenvalues that are off by far more than eps. WithBalance
//     shrinks that gap.
//
// Inputs:
//   - m: square real matrix.
//   - opts: WithEpsilon (default 1e-10), WithMaxIterations (default 1000),
//     WithBalance, WithIterationHook.
//
// Returns:
//   - *EigenResult, always non-nil when the input validates.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNumericDivergence (with a populated result) when maxIter is reached.
//
// Complexity:
//   - O(n³) per sweep.
//
// AI-Hints:
//   - Check errors.Is(err, ErrNumericDivergence) and inspect res.Residual
//     before discarding the estimate.
//   - Use EigenSym for symmetric input; Jacobi also returns eigenvectors.
func EigenDecompose(m Matrix, opts ...Option) (*EigenResult, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)

	res := &EigenResult{}
	if o.balance {
		res.Scale = balanceInPlace(a)
	}

	res.Residual = lowerNormDense(a)
	for a.r > 1 && res.Residual > o.eps && res.Iterations < o.maxIter {
		q := householderInPlace(a) // a now holds R
		a = mulDense(a, q)
		res.Iterations++
		res.Residual = lowerNormDense(a)
		if o.onIteration != nil {
			o.onIteration(res.Iterations, res.Residual)
		}
	}

	res.Schur = a
	res.Converged = res.Residual <= o.eps
	res.Values = make([]float64, a.r)
	for i := range res.Values {
		res.Values[i] = a.data[i*a.c+i]
	}
	if !res.Converged {
		return res, matrixErrorf(opEigen, fmt.Errorf("%d iterations, residual %g: %w",
			res.Iterations, res.Residual, ErrNumericDivergence))
	}

	return res, nil
}

// Eigenvalues returns the eigenvalue estimates of a square matrix.
// On ErrNumericDivergence the current estimate is returned alongside the error.
func Eigenvalues(m Matrix, opts ...Option) ([]float64, error) {
	res, err := EigenDecompose(m, opts...)
	if res == nil {
		return nil, err
	}

	return res.Values, err
}
