// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in place).
//
// Purpose:
//   - RowSwap, RowScale and RowAddMultiple are the three Gaussian-elimination
//     primitives. They mutate the receiver matrix and report bad indices as
//     ErrOutOfRange instead of panicking.
//   - swapRowRange is the column-restricted swap PLU needs: pivoting touches W
//     over the active columns and L over the already-computed multiplier
//     columns only.
//
// Complexity:
//   - O(cols) per call; no allocations.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opRowSwap        = "RowSwap"
	opRowScale       = "RowScale"
	opRowAddMultiple = "RowAddMultiple"
)

// rowOpErrorf tags a row-operation failure with its row arguments.
func rowOpErrorf(op string, r1, r2 int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, r1, r2, err)
}

// RowSwap exchanges rows r1 and r2 of m. r1 == r2 is a no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func RowSwap(m *Dense, r1, r2 int) error {
	if err := ValidateNotNil(m); err != nil {
		return rowOpErrorf(opRowSwap, r1, r2, err)
	}
	if validateRowIndex(m, r1) != nil || validateRowIndex(m, r2) != nil {
		return rowOpErrorf(opRowSwap, r1, r2, ErrOutOfRange)
	}
	swapRowRange(m, r1, r2, 0, m.c)

	return nil
}

// RowScale multiplies every entry of row r by s.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//   - ErrNaNInf when s is non-finite and m rejects non-finite values.
func RowScale(m *Dense, r int, s float64) error {
	if err := ValidateNotNil(m); err != nil {
		return rowOpErrorf(opRowScale, r, r, err)
	}
	if err := validateRowIndex(m, r); err != nil {
		return rowOpErrorf(opRowScale, r, r, err)
	}
	if m.validateNaNInf && isNonFinite(s) {
		return rowOpErrorf(opRowScale, r, r, ErrNaNInf)
	}
	floats.Scale(s, m.rowSlice(r))

	return nil
}

// RowAddMultiple performs row[target] += s * row[source].
// target == source is allowed and yields row *= (1+s).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//   - ErrNaNInf when s is non-finite and m rejects non-finite values.
func RowAddMultiple(m *Dense, target, source int, s float64) error {
	if err := ValidateNotNil(m); err != nil {
		return rowOpErrorf(opRowAddMultiple, target, source, err)
	}
	if validateRowIndex(m, target) != nil || validateRowIndex(m, source) != nil {
		return rowOpErrorf(opRowAddMultiple, target, source, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(s) {
		return rowOpErrorf(opRowAddMultiple, target, source, ErrNaNInf)
	}
	floats.AddScaled(m.rowSlice(target), s, m.rowSlice(source))

	return nil
}

// RowAdd performs row[target] += row[source] (RowAddMultiple with s = 1).
func RowAdd(m *Dense, target, source int) error {
	return RowAddMultiple(m, target, source, 1)
}

// swapRowRange swaps m[r1, c0:c1] with m[r2, c0:c1]. Indices are trusted.
func swapRowRange(m *Dense, r1, r2, c0, c1 int) {
	if r1 == r2 || c0 >= c1 {
		return
	}
	a := m.data[r1*m.c+c0 : r1*m.c+c1]
	b := m.data[r2*m.c+c0 : r2*m.c+c1]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}
