// Package matrix offers dense float64 matrices and the classic direct and
// iterative decompositions built on them.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with checked accessors (At, Set, Row, Col),
//     plus Vector and Permutation as their O(n) companions.
//   - Element-wise and product kernels: Add, Sub, Mul, Hadamard, Scale,
//     Transpose, MatVec, Kronecker, Diagonal, Trace.
//   - Elementary row operations (RowSwap, RowScale, RowAddMultiple).
//   - PLU decomposition with partial pivoting, and the solvers built on one
//     factorisation: Solve, Inverse, Det, Forward/BackwardSubstitution.
//   - QR by Householder reflections (QR) or Givens rotations (QRGivens).
//   - Eigenvalues by the unshifted QR iteration, with optional balancing,
//     and EigenSym (Jacobi) for symmetric input.
//   - ToGonum / FromGonum for interop with gonum.org/v1/gonum/mat.
//
// Every user-facing failure is a sentinel error (ErrDimensionMismatch,
// ErrNonSquare, ErrOutOfRange, ErrSingular, ErrNumericDivergence, ...) wrapped
// with the operation name; match them with errors.Is. Functional options
// (WithPivotTolerance, WithEpsilon, WithWorkers, ...) tune the kernels.
//
// See the examples in this package for usage patterns.
package matrix
