// SPDX-License-Identifier: MIT

// Package matrix - PLU decomposition (Gaussian elimination, partial pivoting).
//
// Purpose:
//   - Factor a square A into P·A = L·U with P a row permutation, L unit lower
//     triangular and U upper triangular, for the ORIGINAL A.
//   - Expose Rank so callers can detect singularity: zero pivot columns are
//     skipped, never reported as errors.
//   - Reuse one factorisation for Det, Solve and Inverse.
//
// Determinism:
//   - Pivot = first row of maximal |W[i,k]| among rows r..n-1 (strict >).
//   - WithWorkers parallelises only the per-step row updates; steps stay
//     sequential and results are bit-identical.

package matrix

import (
	"fmt"
	"math"
)

// PLU holds the factors of P·A = L·U.
type PLU struct {
	// L is unit lower triangular (n×n).
	L *Dense
	// U is upper triangular (n×n). Rows >= Rank are zero.
	U *Dense
	// Perm is the row permutation: row i of P·A is row Perm[i] of A.
	Perm Permutation
	// Rank is the number of pivots found.
	Rank int

	pivotTol float64
}

// FactorPLU computes the PLU decomposition of a square matrix.
// Implementation:
//   - Stage 1: validate (non-nil, square); W = copy(A), L = I, U = 0, perm = id, r = 0.
//   - Stage 2: for each column k:
//     a. piv = argmax_{i in r..n-1} |W[i,k]| (first maximum wins).
//     b. |W[piv,k]| <= pivotTol: skip column k, r unchanged.
//     c. swap W rows r/piv over columns k..n-1, L rows r/piv over columns
//     0..r-1, and perm[r]/perm[piv].
//     d. L[i,r] = W[i,k]/W[r,k] for i > r; U[r,k:] = W[r,k:].
//     e. W[i,j] -= L[i,r]*U[r,j] for i in r..n-1, j in k..n-1; r++.
//   - Stage 3: Rank = r.
//
// Behavior highlights:
//   - Rank-deficient input is a legitimate outcome (Rank < n), not an error.
//   - The input matrix is never mutated.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithPivotTolerance, WithWorkers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factor once and call Solve/Inverse/Det on the result; refactoring per
//     right-hand side is the costly mistake.
func FactorPLU(m Matrix, opts ...Option) (*PLU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPLU, err)
	}
	w, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opPLU, err)
	}
	o := gatherOptions(opts...)

	f, err := factorPLU(w, o)
	if err != nil {
		return nil, matrixErrorf(opPLU, err)
	}

	return f, nil
}

// factorPLU runs the elimination on w in place. w must be square and owned
// by the caller. A 0×0 w yields empty factors.
func factorPLU(w *Dense, o Options) (*PLU, error) {
	n := w.r
	L := newIdentityDense(n)
	U := newDenseLike(w, n, n)
	perm := IdentityPermutation(n)

	var (
		r, k, i, piv int
		best, mag, p float64
		uRow         []float64
	)
	for k = 0; k < n && r < n; k++ {
		// a: pivot search over the unprocessed rows only.
		piv, best = r, math.Abs(w.data[r*n+k])
		for i = r + 1; i < n; i++ {
			if mag = math.Abs(w.data[i*n+k]); mag > best {
				piv, best = i, mag
			}
		}
		// b: no usable pivot in this column.
		if best <= o.pivotTol {
			continue
		}
		// c: co-swap W (active columns), L (computed multipliers), perm.
		if piv != r {
			swapRowRange(w, r, piv, k, n)
			swapRowRange(L, r, piv, 0, r)
			perm[r], perm[piv] = perm[piv], perm[r]
		}
		// d: pivot row into U.
		p = w.data[r*n+k]
		uRow = U.data[r*n : (r+1)*n]
		copy(uRow[k:], w.data[r*n+k:(r+1)*n])

		// d+e: multipliers and elimination, row by row.
		rr, kk := r, k
		err := forEachRowBlock(o.workers, r, n, func(r0, r1 int) error {
			eliminateRows(w, L, uRow, rr, kk, p, r0, r1)
			return nil
		})
		if err != nil {
			return nil, err
		}
		r++
	}

	return &PLU{L: L, U: U, Perm: perm, Rank: r, pivotTol: o.pivotTol}, nil
}

// eliminateRows applies steps d and e of the elimination to rows [i0, i1).
// Row r itself gets L[r,r] = 1 (already set) and is zeroed over k..n-1.
func eliminateRows(w, L *Dense, uRow []float64, r, k int, pivot float64, i0, i1 int) {
	n := w.c
	var i, j int
	var lir float64
	var wRow []float64
	for i = i0; i < i1; i++ {
		if i > r {
			L.data[i*n+r] = w.data[i*n+k] / pivot
		}
		lir = L.data[i*n+r]
		wRow = w.data[i*n : (i+1)*n]
		for j = k; j < n; j++ {
			wRow[j] -= lir * uRow[j]
		}
	}
}

// PLUDecompose returns the materialised (P, L, U) with P·A = L·U.
// Errors: ErrNilMatrix, ErrNonSquare.
func PLUDecompose(m Matrix, opts ...Option) (P, L, U *Dense, err error) {
	f, err := FactorPLU(m, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return f.P(), f.L, f.U, nil
}

// N returns the order of the factored matrix.
func (f *PLU) N() int { return len(f.Perm) }

// P materialises the permutation matrix (P[i, Perm[i]] = 1).
// FactorPLU always yields a valid Perm; a caller-mutated Perm leaves the
// rows with out-of-range entries zero.
func (f *PLU) P() *Dense { return f.Perm.oneHot() }

// IsSingular reports whether fewer than n pivots were found.
func (f *PLU) IsSingular() bool { return f.Rank < f.N() }

// Det returns det(A) = sign(P) · Π U[i,i], or 0 when the matrix is singular.
func (f *PLU) Det() float64 {
	n := f.N()
	if f.IsSingular() {
		return 0
	}
	det := f.Perm.Sign()
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// Solve returns x with A·x = b using the stored factors.
// Implementation:
//   - Stage 1: refuse a rank-deficient factorisation (ErrSingular).
//   - Stage 2: y = forward(L, P·b); x = backward(U, y).
//
// Errors:
//   - ErrSingular, ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n²).
func (f *PLU) Solve(b []float64) ([]float64, error) {
	if f.IsSingular() {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rank %d < %d: %w", f.Rank, f.N(), ErrSingular))
	}
	pb, err := f.Perm.Apply(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	y, err := forwardDense(f.L, pb, f.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := backwardDense(f.U, y, f.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse returns A⁻¹ from the stored factors: one forward/backward pair per
// unit basis vector e_col, written into column col.
//
// Errors:
//   - ErrSingular.
//
// Complexity:
//   - Time O(n³) total (n solves of O(n²)), no refactorisation.
func (f *PLU) Inverse() (*Dense, error) {
	n := f.N()
	if f.IsSingular() {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", f.Rank, n, ErrSingular))
	}

	inv := newDenseLike(f.U, n, n)
	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		clear(e)
		e[col] = 1
		x, err := f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
