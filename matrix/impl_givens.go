// SPDX-License-Identifier: MIT

// Package matrix - Givens rotations and the rotation-based QR.
//
// A Givens rotation G = [c s; -s c] maps (a, b) to (r, 0). Applied to a pair
// of rows it zeroes one sub-diagonal entry while leaving every other row
// alone, which makes it the tool of choice for sparse updates. QRGivens uses
// it column by column, bottom-up, and accumulates Q = G₁ᵀ·G₂ᵀ···.

package matrix

import "math"

// Givens holds the rotation parameters with c² + s² = 1.
type Givens struct {
	C, S float64
	// R is the norm of the rotated pair: G·(a, b) = (R, 0).
	R float64
}

// NewGivens returns the rotation that zeroes b against a.
// b == 0 yields the identity rotation (1, 0, a).
func NewGivens(a, b float64) Givens {
	if b == 0 {
		return Givens{C: 1, S: 0, R: a}
	}
	r := math.Hypot(a, b)

	return Givens{C: a / r, S: b / r, R: r}
}

// ApplyRows replaces rows i and k of m, over columns c0.., with
// row_i' = c·row_i + s·row_k and row_k' = -s·row_i + c·row_k.
// Indices are trusted; callers validate them.
func (g Givens) ApplyRows(m *Dense, i, k, c0 int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	var a, b float64
	for j := c0; j < m.c; j++ {
		a, b = ri[j], rk[j]
		ri[j] = g.C*a + g.S*b
		rk[j] = -g.S*a + g.C*b
	}
}

// ApplyCols right-multiplies columns i and k of m by Gᵀ:
// col_i' = c·col_i + s·col_k and col_k' = -s·col_i + c·col_k.
func (g Givens) ApplyCols(m *Dense, i, k int) {
	var a, b float64
	for row := 0; row < m.r; row++ {
		a, b = m.data[row*m.c+i], m.data[row*m.c+k]
		m.data[row*m.c+i] = g.C*a + g.S*b
		m.data[row*m.c+k] = -g.S*a + g.C*b
	}
}

// QRGivens computes A = Q·R with Givens rotations.
// Implementation:
//   - Stage 1: R = copy(A), Q = I_m.
//   - Stage 2: for each column j < min(m-1, n), for i = m-1 down to j+1:
//     rotate rows (i-1, i) to zero R[i,j]; accumulate Q ← Q·Gᵀ.
//   - Stage 3: optional sign canonicalisation (WithPositiveDiagonal).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m²·n) rotations work, Space O(m² + m·n).
func QRGivens(m Matrix, opts ...Option) (Q, R *Dense, err error) {
	r, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opGivensQR, err)
	}
	o := gatherOptions(opts...)

	rows, cols := r.r, r.c
	q := newIdentityDense(rows)
	q.validateNaNInf = r.validateNaNInf

	var i, j int
	var g Givens
	for j = 0; j < min(rows-1, cols); j++ {
		for i = rows - 1; i > j; i-- {
			b := r.data[i*cols+j]
			if b == 0 {
				continue
			}
			g = NewGivens(r.data[(i-1)*cols+j], b)
			g.ApplyRows(r, i-1, i, j)
			r.data[i*cols+j] = 0
			g.ApplyCols(q, i-1, i)
		}
	}
	if o.positiveDiag {
		makeDiagonalPositive(q, r)
	}

	return q, r, nil
}
