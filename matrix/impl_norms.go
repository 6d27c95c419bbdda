// SPDX-License-Identifier: MIT

// Package matrix - matrix norms used by the iterative kernels.
//
// Purpose:
//   - FrobeniusNorm, MaxAbs: whole-matrix magnitudes.
//   - LowerNorm: Frobenius norm of the strictly lower triangle, the
//     convergence residual of the QR eigenvalue iteration.
//
// Determinism:
//   - Fixed row-major traversal, no allocations for *Dense input.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opFrobenius = "FrobeniusNorm"
	opLowerNorm = "LowerNorm"
	opMaxAbs    = "MaxAbs"
)

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
func FrobeniusNorm(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	if len(d.data) == 0 {
		return 0, nil
	}

	return floats.Norm(d.data, 2), nil
}

// LowerNorm returns the Frobenius norm of the strictly lower triangle
// (entries with i > j). Zero means m is upper triangular.
func LowerNorm(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opLowerNorm, err)
	}

	return lowerNormDense(d), nil
}

func lowerNormDense(d *Dense) float64 {
	var i, j int
	var sum float64
	for i = 1; i < d.r; i++ {
		for j = 0; j < min(i, d.c); j++ {
			sum += d.data[i*d.c+j] * d.data[i*d.c+j]
		}
	}

	return math.Sqrt(sum)
}

// MaxAbs returns max |m[i,j]|.
func MaxAbs(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	if len(d.data) == 0 {
		return 0, nil
	}

	return floats.Norm(d.data, math.Inf(1)), nil
}
