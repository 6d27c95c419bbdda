// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and other representations:
// nested row slices and gonum's mat.Dense.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opToRows    = "ToRows"
)

// ToRows returns m as freshly allocated nested rows.
//
// Time Complexity: O(r*c)
func ToRows(m Matrix) ([][]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	out := make([][]float64, d.r)
	for i := range out {
		out[i] = make([]float64, d.c)
		copy(out[i], d.rowSlice(i))
	}

	return out, nil
}

// ToGonum copies m into a *mat.Dense. The result shares no memory with m.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if d.r == 0 || d.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// FromGonum copies any gonum mat.Matrix into a Dense.
// The default NaN/Inf policy applies: non-finite entries yield ErrNaNInf.
//
// Time Complexity: O(r*c)
// Memory: O(r*c)
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat = append(flat, g.At(i, j))
		}
	}
	d, err := NewDenseFrom(r, c, flat)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%d×%d: %w", r, c, err))
	}

	return d, nil
}
