// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, the Hadamard product, matrix-vector product, diagonal and
// trace. All functions validate eagerly and return sentinel errors wrapped
// with an operation tag.
//
// Notes:
//   - Every kernel works on the flat buffer of a *Dense; foreign Matrix values
//     are materialised once through asDense.
//   - Results are freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"

	"github.com/samber/lo"
)

// ZeroSum is the initial accumulator of the MatVec dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opTransposeIP = "TransposeInPlace"
	opScale       = "Scale"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opDiagonal    = "Diagonal"
	opTrace       = "Trace"
	opKronecker   = "Kronecker"
	opPLU         = "PLU"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opDet         = "Det"
	opForward     = "ForwardSubstitution"
	opBackward    = "BackwardSubstitution"
	opQR          = "QR"
	opGivensQR    = "QRGivens"
	opEigen       = "Eigenvalues"
	opEigenSym    = "EigenSym"
	opBalance     = "Balance"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// The result formats as "<tag>: <underlying>".
//
// Notes:
//   - Call only with err != nil; wrapping nil yields a non-nil error.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialise both operands, then one flat loop 0..r*c-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors and complexity match Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: materialise operands; allocate C (A.Rows × B.Cols) filled with 0.
//   - Stage 3: for each output row i, walk k = 0..n-1 and add A[i,k]*B[k,j]
//     into C[i,j] (i→k→j, row-major friendly).
//
// Behavior highlights:
//   - Every cell starts at the additive identity and accumulates over k in
//     increasing order, which is the triple-loop contract.
//   - WithWorkers(n) splits the output rows into n blocks. A row is owned by
//     one goroutine, so the result is bit-identical to the sequential path.
//
// Inputs:
//   - A: left matrix (r × n); B: right matrix (n × c).
//   - opts: WithWorkers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - No Strassen, no tiling. For very large operands convert with ToGonum and
//     use a BLAS-backed product.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	res := newDenseLike(da, da.r, db.c)
	err = forEachRowBlock(o.workers, 0, da.r, func(r0, r1 int) error {
		mulRows(res, da, db, r0, r1)
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mulRows fills rows [r0, r1) of res = a·b. res must be zeroed on entry.
func mulRows(res, a, b *Dense, r0, r1 int) {
	var i, j, k int
	var av float64
	var rowA, rowB, rowR []float64
	for i = r0; i < r1; i++ {
		rowA = a.rowSlice(i)
		rowR = res.rowSlice(i)
		for k = 0; k < a.c; k++ {
			av = rowA[k]
			rowB = b.rowSlice(k)
			for j = 0; j < b.c; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	}
}

// mulDense is the unchecked sequential product used inside decompositions
// where shapes are already known to agree.
func mulDense(a, b *Dense) *Dense {
	res := newDenseLike(a, a.r, b.c)
	mulRows(res, a, b, 0, a.r)

	return res
}

// Transpose returns a new c×r matrix with T[j,i] = M[i,j].
// Transpose(Transpose(M)) reproduces M exactly (pure data movement).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm), nil
}

func transposeDense(dm *Dense) *Dense {
	rows, cols := dm.r, dm.c
	res := newDenseLike(dm, cols, rows)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[base+j]
		}
	}

	return res
}

// TransposeInPlace transposes a square matrix by swapping the off-diagonal
// pairs (i<j) without allocating.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func TransposeInPlace(m *Dense) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opTransposeIP, err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}

	return nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix of the same shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseLike(dm, dm.r, dm.c)
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b).
// Hadamard is not matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] * db.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return matVecDense(d, x), nil
}

func matVecDense(d *Dense, x []float64) []float64 {
	y := make([]float64, d.r)
	var i, j int
	var acc float64
	var row []float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		row = d.rowSlice(i)
		for j = 0; j < d.c; j++ {
			acc += row[j] * x[j]
		}
		y[i] = acc
	}

	return y
}

// Diagonal returns the min(rows, cols) main-diagonal entries of m.
// Non-square input is tolerated here; Trace is the square-only variant.
//
// Errors:
//   - ErrNilMatrix.
func Diagonal(m Matrix) ([]float64, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	return lo.Times(min(dm.r, dm.c), func(i int) float64 {
		return dm.data[i*dm.c+i]
	}), nil
}

// Trace returns the sum of the diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	diag, err := Diagonal(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return lo.Sum(diag), nil
}
