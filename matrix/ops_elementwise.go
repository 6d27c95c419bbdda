// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison and structure predicates shared by the public API
//     and the test-suite: AllClose, IsUpperTriangular, IsLowerTriangular,
//     IsOrthogonal.
//
// Determinism & Performance:
//   - Flat 0..n-1 or fixed i→j loops on the materialised *Dense.
//   - Early exit on the first violation; no allocations for *Dense inputs.

package matrix

import (
	"math"
)

const (
	opAllClose   = "AllClose"
	opTriangular = "IsTriangular"
	opOrthogonal = "IsOrthogonal"
)

// normalizeTol rejects non-finite tolerances and returns |tol|.
func normalizeTol(tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, ErrNaNInf
	}

	return math.Abs(tol), nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalised; NaN/Inf tolerances are ErrNaNInf.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = normalizeTol(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = normalizeTol(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, bv := range db.data {
		if math.Abs(da.data[idx]-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// AllClose reports whether a and b agree element-wise within
// |a-b| ≤ atol + rtol*|b|.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// IsUpperTriangular reports whether every entry below the main diagonal has
// magnitude ≤ tol. Works for rectangular input.
func IsUpperTriangular(m Matrix, tol float64) (bool, error) {
	d, tol, err := triangularArgs(m, tol)
	if err != nil {
		return false, err
	}
	for i := 1; i < d.r; i++ {
		for j := 0; j < min(i, d.c); j++ {
			if math.Abs(d.data[i*d.c+j]) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsLowerTriangular reports whether every entry above the main diagonal has
// magnitude ≤ tol.
func IsLowerTriangular(m Matrix, tol float64) (bool, error) {
	d, tol, err := triangularArgs(m, tol)
	if err != nil {
		return false, err
	}
	for i := 0; i < d.r; i++ {
		for j := i + 1; j < d.c; j++ {
			if math.Abs(d.data[i*d.c+j]) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

func triangularArgs(m Matrix, tol float64) (*Dense, float64, error) {
	tol, err := normalizeTol(tol)
	if err != nil {
		return nil, 0, matrixErrorf(opTriangular, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, 0, matrixErrorf(opTriangular, err)
	}

	return d, tol, nil
}

// IsOrthogonal reports whether Qᵀ·Q equals the identity within atol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (tolerance).
func IsOrthogonal(q Matrix, atol float64) (bool, error) {
	if err := ValidateSquareNonNil(q); err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	d, err := asDense(q)
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	qtq := mulDense(transposeDense(d), d)

	return ewAllClose(qtq, newIdentityDense(d.r), 0, atol)
}
