// Package linalg is a small dense linear-algebra toolkit written in plain Go.
//
// Everything lives in the matrix subpackage:
//
//	matrix/   Dense matrices, PLU, QR and eigenvalue decompositions, solvers
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 3}})
//	x, _ := matrix.Solve(A, []float64{1, 2})
//	vals, _ := matrix.Eigenvalues(A) // ≈ [5 2]
//
//	go get github.com/katalvlaran/linalg
package linalg
