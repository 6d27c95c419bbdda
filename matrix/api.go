// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication: each facade delegates to one implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0.
//
// AI-Hints: neutral element for Mul; the starting Q of every QR variant.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newIdentityDense(n), nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra aliases ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// InverseOf is an alias for Inverse (PLU-based, factor once).
// Complexity: O(n³).
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// QRDecompose is an alias for QR: returns (Q, R) via Householder reflections.
// Complexity: O(n³).
func QRDecompose(m Matrix) (*Dense, *Dense, error) { return QR(m) }

// SolveSystem is an alias for Solve: x with A·x = b.
func SolveSystem(a Matrix, b []float64) ([]float64, error) { return Solve(a, b) }

// Reconstruct returns Pᵀ·L·U, which equals A for a PLU factorisation of A.
// Useful to audit a factorisation without a copy of the original.
func (f *PLU) Reconstruct() (*Dense, error) {
	inv, err := f.Perm.Inverse()
	if err != nil {
		return nil, matrixErrorf(opPLU, err)
	}

	return inv.ApplyTo(mulDense(f.L, f.U))
}
