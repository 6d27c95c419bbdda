// SPDX-License-Identifier: MIT

// Package matrix - triangular substitution and the PLU-based solvers.
//
// Purpose:
//   - ForwardSubstitution / BackwardSubstitution solve L·x = b and U·x = b.
//     Triangularity is the caller's contract and is not re-verified.
//   - Solve, Inverse and Det compose one FactorPLU call with substitution.
//
// Numeric policy:
//   - A diagonal with |d| <= pivotTol (default: exactly zero) is ErrSingular.
//   - Inner sums use gonum floats.Dot over the already-solved part of x.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ForwardSubstitution solves L·x = b for lower-triangular L.
// Implementation:
//   - x[i] = (b[i] - Σ_{j<i} L[i,j]·x[j]) / L[i,i], i = 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n),
//     ErrSingular (|L[i,i]| <= pivotTol).
//
// Complexity:
//   - Time O(n²), Space O(n).
func ForwardSubstitution(L Matrix, b []float64, opts ...Option) ([]float64, error) {
	dl, err := triangularOperand(L, b)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	o := gatherOptions(opts...)
	x, err := forwardDense(dl, b, o.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	return x, nil
}

// BackwardSubstitution solves U·x = b for upper-triangular U.
// Implementation:
//   - x[i] = (b[i] - Σ_{j>i} U[i,j]·x[j]) / U[i,i], i = n-1..0.
//
// Errors and complexity match ForwardSubstitution.
func BackwardSubstitution(U Matrix, b []float64, opts ...Option) ([]float64, error) {
	du, err := triangularOperand(U, b)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	o := gatherOptions(opts...)
	x, err := backwardDense(du, b, o.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	return x, nil
}

// triangularOperand validates a square coefficient matrix and a matching rhs.
func triangularOperand(t Matrix, b []float64) (*Dense, error) {
	if err := ValidateSquareNonNil(t); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(b, t.Rows()); err != nil {
		return nil, err
	}

	return asDense(t)
}

func forwardDense(L *Dense, b []float64, tol float64) ([]float64, error) {
	n := L.r
	x := make([]float64, n)
	var d float64
	var row []float64
	for i := 0; i < n; i++ {
		row = L.rowSlice(i)
		d = row[i]
		if math.Abs(d) <= tol {
			return nil, fmt.Errorf("diagonal %d: %w", i, ErrSingular)
		}
		x[i] = (b[i] - floats.Dot(row[:i], x[:i])) / d
	}

	return x, nil
}

func backwardDense(U *Dense, b []float64, tol float64) ([]float64, error) {
	n := U.r
	x := make([]float64, n)
	var d float64
	var row []float64
	for i := n - 1; i >= 0; i-- {
		row = U.rowSlice(i)
		d = row[i]
		if math.Abs(d) <= tol {
			return nil, fmt.Errorf("diagonal %d: %w", i, ErrSingular)
		}
		x[i] = (b[i] - floats.Dot(row[i+1:], x[i+1:])) / d
	}

	return x, nil
}

// Solve returns x with A·x = b.
// Implementation:
//   - Stage 1: f = FactorPLU(A).
//   - Stage 2: Rank < n is ErrSingular.
//   - Stage 3: y = Forward(L, P·b); x = Backward(U, y).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³) for the factorisation plus O(n²) for the substitutions.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := FactorPLU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse returns A⁻¹, factoring A once and substituting n times.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// AI-Hints:
//   - To solve A·x = b, prefer Solve; forming A⁻¹ costs more and loses accuracy.
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	f, err := FactorPLU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Det returns the determinant of a square matrix via PLU.
// A rank-deficient matrix has determinant exactly 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Det(a Matrix, opts ...Option) (float64, error) {
	f, err := FactorPLU(a, opts...)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}
