// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/samber/lo"
)

const opPermutation = "Permutation"

// Permutation is a row permutation stored as an index array: row i of P·A is
// row perm[i] of A. The one-hot matrix form is materialised only on request
// (Matrix), so the common operations stay O(n).
type Permutation []int

// IdentityPermutation returns [0, 1, ..., n-1].
func IdentityPermutation(n int) Permutation {
	return Permutation(lo.Range(n))
}

// Len returns n.
func (p Permutation) Len() int { return len(p) }

// Valid reports whether p is a bijection on [0, n).
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// validate reports ErrOutOfRange when p is not a bijection on [0, n).
func (p Permutation) validate(op string) error {
	if !p.Valid() {
		return fmt.Errorf("%s.%s: %v is not a permutation of 0..%d: %w", opPermutation, op, []int(p), len(p)-1, ErrOutOfRange)
	}

	return nil
}

// Apply returns P·b, i.e. out[i] = b[p[i]].
// Errors: ErrDimensionMismatch (len(b) != n), ErrOutOfRange (p not a bijection).
func (p Permutation) Apply(b []float64) ([]float64, error) {
	if len(b) != len(p) {
		return nil, fmt.Errorf("%s.Apply: len(b)=%d, n=%d: %w", opPermutation, len(b), len(p), ErrDimensionMismatch)
	}
	if err := p.validate("Apply"); err != nil {
		return nil, err
	}

	return lo.Map(p, func(src int, _ int) float64 { return b[src] }), nil
}

// ApplyTo returns P·A as a new matrix (rows reordered, no product computed).
func (p Permutation) ApplyTo(a Matrix) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, fmt.Errorf("%s.ApplyTo: %w", opPermutation, err)
	}
	if da.r != len(p) {
		return nil, fmt.Errorf("%s.ApplyTo: rows=%d, n=%d: %w", opPermutation, da.r, len(p), ErrDimensionMismatch)
	}
	if err = p.validate("ApplyTo"); err != nil {
		return nil, err
	}

	return da.Induced(p, lo.Range(da.c))
}

// Inverse returns q with q[p[i]] = i, so that Q·(P·b) = b.
// Errors: ErrOutOfRange when p is not a bijection.
func (p Permutation) Inverse() (Permutation, error) {
	if err := p.validate("Inverse"); err != nil {
		return nil, err
	}
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q, nil
}

// Sign returns +1 for an even permutation and -1 for an odd one.
// Computed by cycle decomposition: each cycle of length L contributes L-1
// transpositions. An invalid p has Sign 0, the determinant of a one-hot
// matrix with a repeated or missing column.
func (p Permutation) Sign() float64 {
	if !p.Valid() {
		return 0
	}
	visited := make([]bool, len(p))
	sign := 1.0
	for start := range p {
		if visited[start] {
			continue
		}
		length := 0
		for j := start; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// Matrix materialises the one-hot permutation matrix with P[i, p[i]] = 1.
// An empty permutation yields a 0×0 Dense.
// Errors: ErrOutOfRange when p is not a bijection.
func (p Permutation) Matrix() (*Dense, error) {
	if err := p.validate("Matrix"); err != nil {
		return nil, err
	}

	return p.oneHot(), nil
}

// oneHot builds the one-hot matrix, leaving rows with an out-of-range entry zero.
func (p Permutation) oneHot() *Dense {
	n := len(p)
	pm := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i, v := range p {
		if v >= 0 && v < n {
			pm.data[i*n+v] = 1
		}
	}

	return pm
}
