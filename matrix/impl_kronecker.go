// SPDX-License-Identifier: MIT

package matrix

// Kronecker returns the Kronecker product a ⊗ b.
// Implementation:
//   - Stage 1: materialise both operands.
//   - Stage 2: allocate (a.R*b.R) × (a.C*b.C).
//   - Stage 3: K[i,j] = a[i/b.R, j/b.C] * b[i%b.R, j%b.C] on zero-based indices,
//     filled block by block so every a-entry is read once.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(a.R*a.C*b.R*b.C), Space the same.
//
// Notes:
//   - Non-square operands are fine; shapes never have to agree.
func Kronecker(a, b Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	if sizeOverflows(da.r, db.r) || sizeOverflows(da.c, db.c) || sizeOverflows(da.r*db.r, da.c*db.c) {
		return nil, matrixErrorf(opKronecker, ErrInvalidDimensions)
	}
	rows, cols := da.r*db.r, da.c*db.c
	res := newDenseLike(da, rows, cols)

	var ai, aj, bi, bj, i int
	var av float64
	var dst, src []float64
	for ai = 0; ai < da.r; ai++ {
		for aj = 0; aj < da.c; aj++ {
			av = da.data[ai*da.c+aj]
			for bi = 0; bi < db.r; bi++ {
				i = ai*db.r + bi
				dst = res.data[i*cols+aj*db.c : i*cols+(aj+1)*db.c]
				src = db.rowSlice(bi)
				for bj = 0; bj < db.c; bj++ {
					dst[bj] = av * src[bj]
				}
			}
		}
	}

	return res, nil
}
