// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold every matrix in one flat row-major buffer with offset i*cols + j.
//   - Keep the invariant len(data) == rows*cols at every observable state.
//   - Report bad indices and bad flat buffers as errors, never as panics.
//   - Offer owned row/column copies, no-copy windows (MatrixView) and
//     copy-based index selection (Induced).
//
// AI-Hints:
//   - Kernels reach the flat buffer through asDense; foreign Matrix
//     implementations are materialised once at the boundary.
//   - Column extraction is the slow path (strided reads). Transpose once
//     instead of calling Col in a loop.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom: O(r*c); At/Set: O(1); Row: O(c); Col: O(r);
//     Clone: O(r*c); View: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxApply  = "Apply"
	ctxView   = "View"
	ctxInduce = "Induced"
	ctxFrom   = "NewDenseFrom"
	ctxSquare = "NewSquareFrom"
	ctxRows   = "NewDenseFromRows"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with the Dense method name and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an rows×cols zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0, cols <= 0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 || sizeOverflows(rows, cols) {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK allows rows==0 or cols==0. Internal kernels use it for
// degenerate shapes that cannot reach the public constructors.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 || sizeOverflows(rows, cols) {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// sizeOverflows reports whether rows*cols does not fit in an int.
// Both arguments must be non-negative.
func sizeOverflows(rows, cols int) bool {
	return cols != 0 && rows > math.MaxInt/cols
}

// newDenseLike allocates a zero r×c matrix that inherits src's numeric policy.
// Shapes are trusted (callers derive them from an existing Dense).
func newDenseLike(src *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// newIdentityDense builds I_n without validation; n ≥ 0 is the caller's contract.
func newIdentityDense(n int) *Dense {
	id := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}

// NewDenseFrom builds a rows×cols matrix from a row-major flat buffer.
// MAIN DESCRIPTION:
//   - Checked constructor: the buffer length must equal rows*cols exactly.
//
// Implementation:
//   - Stage 1: validate dimensions and buffer length.
//   - Stage 2: resolve the numeric policy from opts and scan for NaN/Inf.
//   - Stage 3: copy data into a private buffer (caller keeps ownership of data).
//
// Errors:
//   - ErrInvalidDimensions for rows/cols <= 0 or an overflowing rows*cols.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the policy is on and data holds a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pass WithNoValidateNaNInf() to ingest data that may legitimately hold ±Inf.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 || sizeOverflows(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len(data)=%d: %w", ctxFrom, rows, cols, len(data), ErrDimensionMismatch)
	}

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: element %d: %w", ctxFrom, k, ErrNaNInf)
			}
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewSquareFrom builds an n×n matrix from a flat buffer whose length is n².
// A length that is not a perfect square is reported as ErrDimensionMismatch.
func NewSquareFrom(data []float64, opts ...Option) (*Dense, error) {
	n := isqrt(len(data))
	if n == 0 || n*n != len(data) {
		return nil, fmt.Errorf("%s: len(data)=%d is not a perfect square: %w", ctxSquare, len(data), ErrDimensionMismatch)
	}

	return NewDenseFrom(n, n, data, opts...)
}

// NewDenseFromRows builds a matrix from a slice of equally long rows.
// Ragged input yields ErrDimensionMismatch; an empty outer or inner slice
// yields ErrInvalidDimensions.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxRows, i, len(row), cols, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(len(rows), cols, flat, opts...)
}

// isqrt returns ⌊√n⌋ for n ≥ 0, corrected for float rounding.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}

	return s
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange (alias ErrIndexOutOfBounds) wrapped with the coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf when the instance policy rejects non-finite values.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns an owned copy of row r.
// Complexity: O(cols).
func (m *Dense) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Col returns an owned copy of column c.
// Complexity: O(rows), strided reads.
func (m *Dense) Col(c int) ([]float64, error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf(ctxCol, 0, c, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// rowSlice aliases row i of the buffer. Internal: no bounds check.
func (m *Dense) rowSlice(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy with the same numeric policy.
// The dynamic type of the result is *Dense.
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders one bracketed line per row, values formatted with %g.
// Intended for diagnostics, not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a materialised copy.
// MAIN DESCRIPTION:
//   - The single boundary where foreign Matrix implementations enter the flat
//     buffer world. Kernels never need a second, interface-based code path.
//
// Behavior highlights:
//   - The fast path aliases m; kernels that mutate must clone first.
//   - Materialisation reads every cell through At, so a misbehaving At is
//     reported instead of silently zero-filled.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// denseCopy returns an independent *Dense copy of m (working copy for
// in-place kernels).
func denseCopy(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if d == m {
		return d.cloneDense(), nil
	}

	return d, nil // already a fresh materialisation
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Behavior highlights:
//   - Writes through the view land in the base matrix and obey its NaN/Inf policy.
//   - MatrixView deliberately does not implement Matrix.
//
// Errors:
//   - ErrBadShape when the window leaves the base bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced copies the rows listed in rowsIdx and the columns listed in colsIdx
// into a new matrix. Duplicate indices are allowed. Permutation.ApplyTo uses
// it to materialise P·A without building P.
//
// Errors:
//   - ErrOutOfRange for any index outside the base bounds.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := newDenseLike(m, rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// MatrixView is a non-owning window into a Dense.
type MatrixView struct {
	base *Dense
	r0   int
	c0   int
	r    int
	c    int
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) of the view.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base matrix.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// Materialize copies the window into an independent Dense.
func (v *MatrixView) Materialize() *Dense {
	out := newDenseLike(v.base, v.r, v.c)
	for i := 0; i < v.r; i++ {
		src := (v.r0+i)*v.base.c + v.c0
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[src:src+v.c])
	}

	return out
}

// Do visits each element in row-major order; f returning false stops the walk.
// Read-only, no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
//
// Behavior highlights:
//   - Rejects a non-finite result with ErrNaNInf when the policy is on.
//   - The first error aborts; cells written before it stay updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
