// SPDX-License-Identifier: MIT

// Package matrix - Vector: a flat float64 sequence with BLAS-1 style helpers.
//
// A Vector degenerates to an n×1 Dense (AsColumn) wherever a Matrix is needed.
// Arithmetic delegates to gonum's floats package; length checks happen here
// because floats panics on mismatched lengths.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opVecDot = "Vector.Dot"
	opVecAdd = "Vector.Add"
	opVecSub = "Vector.Sub"
	opVecCol = "Vector.AsColumn"
)

// Vector is a dense column of float64 values.
type Vector []float64

// NewVector copies values into a fresh Vector.
func NewVector(values ...float64) Vector {
	v := make(Vector, len(values))
	copy(v, values)

	return v
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector { return NewVector(v...) }

// Dot returns Σ v[i]*w[i].
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("%s: len %d vs %d: %w", opVecDot, len(v), len(w), ErrDimensionMismatch)
	}

	return floats.Dot(v, w), nil
}

// Norm returns the Euclidean length ‖v‖₂.
func (v Vector) Norm() float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Add returns v + w as a new Vector.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%s: len %d vs %d: %w", opVecAdd, len(v), len(w), ErrDimensionMismatch)
	}
	out := v.Clone()
	floats.Add(out, w)

	return out, nil
}

// Sub returns v - w as a new Vector.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("%s: len %d vs %d: %w", opVecSub, len(v), len(w), ErrDimensionMismatch)
	}
	out := v.Clone()
	floats.Sub(out, w)

	return out, nil
}

// Scale returns alpha*v as a new Vector.
func (v Vector) Scale(alpha float64) Vector {
	out := v.Clone()
	floats.Scale(alpha, out)

	return out
}

// AsColumn returns v as an n×1 Dense.
// Errors: ErrInvalidDimensions for an empty vector; ErrNaNInf for non-finite entries.
func (v Vector) AsColumn() (*Dense, error) {
	d, err := NewDenseFrom(len(v), 1, v)
	if err != nil {
		return nil, matrixErrorf(opVecCol, err)
	}

	return d, nil
}
