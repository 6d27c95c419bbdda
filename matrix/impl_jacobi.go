// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
// Implementation:
//   - Stage 1: validate symmetry within tol; A = copy(m); V = I.
//   - Stage 2: repeat up to maxIter times: pick (p,q) with the largest |A[p,q]|
//     (first in i→j order), stop when it is below tol, otherwise rotate A in
//     the (p,q) plane so that A[p,q] = 0 and accumulate V ← V·J.
//   - Stage 3: eigenvalues are diag(A); column i of V is the eigenvector of
//     value i.
//
// Behavior highlights:
//   - tol is taken by magnitude; tol = 0 iterates until the off-diagonal
//     part is exactly zero or maxIter is spent.
//   - Complements Eigenvalues: slower per sweep but unconditionally convergent
//     for symmetric input, and it returns an orthonormal eigenbasis.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (tol), ErrAsymmetry.
//   - ErrMatrixEigenFailed when the largest off-diagonal entry is still >= tol
//     after maxIter rotations.
//
// Complexity:
//   - Time O(maxIter·n²) (pivot search dominates), Space O(n²).
//
// AI-Hints:
//   - tol≈1e-10 and maxIter≈n²·10 are comfortable defaults for n ≤ 128.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	n := a.r
	v := newIdentityDense(n)
	tol = math.Abs(tol)

	var (
		iter, i, p, q  int
		maxOff         float64
		app, aqq, apq  float64
		aip, aiq       float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		p, q, maxOff = largestOffDiagonal(a)
		if maxOff == 0 || maxOff < tol {
			break
		}

		app, aqq, apq = a.data[p*n+p], a.data[q*n+q], a.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+q]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = s*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			aip, aiq = v.data[i*n+p], v.data[i*n+q]
			v.data[i*n+p] = c*aip - s*aiq
			v.data[i*n+q] = s*aip + c*aiq
		}
	}

	if _, _, maxOff = largestOffDiagonal(a); maxOff > 0 && maxOff >= tol {
		return nil, nil, matrixErrorf(opEigenSym, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}
	vals, _ := Diagonal(a)

	return vals, v, nil
}

// largestOffDiagonal scans the strict upper triangle of a symmetric a.
func largestOffDiagonal(a *Dense) (p, q int, maxOff float64) {
	n := a.r
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return p, q, maxOff
}
