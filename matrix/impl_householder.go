// SPDX-License-Identifier: MIT

// Package matrix - QR decomposition via Householder reflections.
//
// Purpose:
//   - Factor an m×n matrix A into Q·R with Q (m×m) orthogonal and R (m×n)
//     upper triangular. Square input is the primary case; rectangular input
//     follows the same column sweep.
//   - Serve as the inner step of the QR eigenvalue iteration.
//
// Conventions:
//   - alpha = -sign(x[0])·‖x‖₂ with sign(0) = +1, where x = R[k:m, k].
//   - A reflector whose vector v = x - alpha·e₀ vanishes is the identity and
//     is skipped.
//   - Reflectors are applied to the trailing rows only and never formed as
//     full matrices; Q accumulates Q·H_k.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// QR computes A = Q·R by Householder reflections.
// Implementation:
//   - Stage 1: validate non-nil; R = copy(A), Q = I_m.
//   - Stage 2: for k in 0..min(m-1, n)-1:
//     a. x = R[k:m, k]; alpha = -sign(x[0])·‖x‖; v = x - alpha·e₀.
//     b. ‖v‖ == 0: skip; else v /= ‖v‖.
//     c. R[k:m, k:n] -= 2·v·(vᵀ·R[k:m, k:n]); R[k+1:m, k] = 0 exactly.
//     d. Q[:, k:m] -= 2·(Q[:, k:m]·v)·vᵀ.
//   - Stage 3: with WithPositiveDiagonal, flip the sign of every row of R with
//     R[k,k] < 0 and of the matching column of Q.
//
// Behavior highlights:
//   - m < 2 returns (I, copy of A).
//   - The input is never mutated.
//
// Inputs:
//   - m: any non-nil matrix.
//   - opts: WithPositiveDiagonal.
//
// Returns:
//   - Q (m×m), R (m×n).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m²·n), Space O(m² + m·n).
//
// AI-Hints:
//   - Check Q·R ≈ A and Qᵀ·Q ≈ I rather than exact signs: without
//     WithPositiveDiagonal the diagonal of R may be negative.
func QR(m Matrix, opts ...Option) (Q, R *Dense, err error) {
	r, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	o := gatherOptions(opts...)

	q := householderInPlace(r)
	if o.positiveDiag {
		makeDiagonalPositive(q, r)
	}

	return q, r, nil
}

// householderInPlace reduces r to upper triangular form and returns Q.
// r is overwritten; the caller owns it.
func householderInPlace(r *Dense) *Dense {
	m, n := r.r, r.c
	q := newIdentityDense(m)
	q.validateNaNInf = r.validateNaNInf
	if m < 2 {
		return q
	}

	v := make([]float64, m)
	steps := min(m-1, n)
	for k := 0; k < steps; k++ {
		vk := v[:m-k]
		if !householderVector(r, k, vk) {
			continue
		}
		reflectRows(r, vk, k)
		for i := k + 1; i < m; i++ {
			r.data[i*n+k] = 0
		}
		reflectCols(q, vk, k)
	}

	return q
}

// householderVector fills v (len m-k) with the unit Householder vector for
// column k of r below and including the diagonal. It reports false when the
// reflector degenerates to the identity.
func householderVector(r *Dense, k int, v []float64) bool {
	n := r.c
	for i := range v {
		v[i] = r.data[(k+i)*n+k]
	}
	normX := floats.Norm(v, 2)
	alpha := -normX
	if v[0] < 0 {
		alpha = normX
	}
	v[0] -= alpha

	normV := floats.Norm(v, 2)
	if normV == 0 {
		return false
	}
	floats.Scale(1/normV, v)

	return true
}

// reflectRows applies H = I - 2vvᵀ from the left to rows k.. of r, columns k.. .
func reflectRows(r *Dense, v []float64, k int) {
	n := r.c
	var i, j int
	var s float64
	for j = k; j < n; j++ {
		s = 0
		for i = range v {
			s += v[i] * r.data[(k+i)*n+j]
		}
		if s == 0 {
			continue
		}
		s *= 2
		for i = range v {
			r.data[(k+i)*n+j] -= s * v[i]
		}
	}
}

// reflectCols applies H from the right to columns k.. of q (q ← q·H).
func reflectCols(q *Dense, v []float64, k int) {
	var seg []float64
	for i := 0; i < q.r; i++ {
		seg = q.data[i*q.c+k : i*q.c+k+len(v)]
		if s := floats.Dot(seg, v); s != 0 {
			floats.AddScaled(seg, -2*s, v)
		}
	}
}

// makeDiagonalPositive rewrites Q·R as (Q·S)·(S·R) with S = diag(±1) chosen
// so that every R[k,k] >= 0. The product is unchanged because S·S = I.
func makeDiagonalPositive(q, r *Dense) {
	for k := 0; k < min(r.r, r.c); k++ {
		if !math.Signbit(r.data[k*r.c+k]) {
			continue
		}
		floats.Scale(-1, r.rowSlice(k))
		for i := 0; i < q.r; i++ {
			q.data[i*q.c+k] = -q.data[i*q.c+k]
		}
	}
}
