// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/linalg/matrix"
)

// Tolerance used by every approximate comparison of decomposition output.
const tol4 = 1e-4

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the materialisation path (non-*Dense operand).
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from nested rows or fails the test.
// Implementation:
//   - Stage 1: matrix.NewDenseFromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Hand-written fixtures read best as nested rows; prefer this over Set loops.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandFilledDense returns an r×c *Dense with deterministic U(-1,1) entries.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// DiagDominant returns a random n×n matrix made strictly diagonally dominant,
// hence invertible and well conditioned.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		if err := m.Set(i, i, v+float64(n)+1); err != nil {
			t.Fatalf("Set(%d,%d): %v", i, i, err)
		}
	}

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMul returns a·b or fails the test.
func MustMul(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return p
}

// MustT returns mᵀ or fails the test.
func MustT(t *testing.T, m matrix.Matrix) *matrix.Dense {
	t.Helper()
	tr, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	return tr
}

// CompareExact asserts m equals want cell by cell (no tolerance).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareRowsClose asserts m ≈ want with an absolute tolerance.
func CompareRowsClose(t *testing.T, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	got, err := matrix.ToRows(m)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("matrix mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\na=\n%v\nb=\n%v", rtol, atol, a, b)
	}
}

// SliceClose asserts two vectors agree within an absolute tolerance.
func SliceClose(t *testing.T, want, got []float64, atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("vector mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// SortedClose compares two value sets regardless of order.
func SortedClose(t *testing.T, want, got []float64, atol float64) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateApprox(0, atol),
		cmpopts.SortSlices(func(a, b float64) bool { return a < b }),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Fatalf("value set mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic fails unless fn panics with exactly msg.
func ExpectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", msg)
		}
		if s, ok := r.(string); !ok || s != msg {
			t.Fatalf("panic = %v; want %q", r, msg)
		}
	}()
	fn()
}
