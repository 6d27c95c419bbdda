// SPDX-License-Identifier: MIT

// Package matrix - diagonal similarity balancing (B = D⁻¹·A·D).
//
// Balancing rescales row i by 1/f and column i by f, with f a power of the
// radix 2, until every off-diagonal row norm and column norm pair is within a
// factor of 2. Powers of the radix keep the scaling exact in binary floating
// point, so the eigenvalues of B are exactly those of A up to the rounding of
// the later iteration. It is a separate pre-pass; Eigenvalues runs it only
// with WithBalance().

package matrix

import "math"

const (
	balanceRadix = 2.0
	balanceSqrdx = balanceRadix * balanceRadix
	// balanceGain is the required relative drop of (c+r) for a rescale to be applied.
	balanceGain = 0.95
)

// Balance returns B = D⁻¹·A·D and the diagonal of D.
// Implementation:
//   - Stage 1: validate square; B = copy(A); D = 1.
//   - Stage 2: sweep i = 0..n-1 until a full sweep changes nothing:
//     a. c, r = off-diagonal L1 norms of column i and row i; skip if either is 0.
//     b. f = 1; while c < r/2 { f *= 2; c *= 4 }; while c > 2r { f /= 2; c /= 4 }.
//     c. if (c+r)/f < 0.95·(c_old+r_old): row i *= 1/f, column i *= f, D[i] *= f.
//
// Behavior highlights:
//   - The diagonal of B equals the diagonal of A (row and column scalings cancel).
//   - A zero or non-finite row or column norm (e.g. a triangular corner) leaves
//     index i alone.
//   - f is clamped so that no nonzero entry of B overflows or flushes to zero
//     and every D[i] stays a finite normal number, even for inputs spanning
//     the whole float64 exponent range.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n²) per sweep; a handful of sweeps in practice.
func Balance(m Matrix) (*Dense, []float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opBalance, err)
	}
	b, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opBalance, err)
	}
	d := balanceInPlace(b)

	return b, d, nil
}

// Exponent limits of float64 as reported by math.Frexp (x = frac·2^e, frac in [0.5, 1)).
const (
	maxFrexpExp       = 1024  // largest e of a finite value
	minFrexpExp       = -1073 // e of the smallest subnormal
	minNormalFrexpExp = -1021 // e of the smallest normal value
)

// balanceInPlace balances b in place and returns the scale factors.
func balanceInPlace(b *Dense) []float64 {
	n := b.r
	scale := make([]float64, n)
	for i := range scale {
		scale[i] = 1
	}

	var (
		i, j, k int
		c, r, s float64
		done    bool
	)
	for !done {
		done = true
		for i = 0; i < n; i++ {
			c, r = 0, 0
			for j = 0; j < n; j++ {
				if j != i {
					c += math.Abs(b.data[j*n+i])
					r += math.Abs(b.data[i*n+j])
				}
			}
			if c == 0 || r == 0 || isNonFinite(c) || isNonFinite(r) {
				continue
			}

			s = c + r
			k = balanceExponent(b, i, c, r, scale[i])
			if k == 0 || math.Ldexp(c, k)+math.Ldexp(r, -k) >= balanceGain*s {
				continue
			}

			done = false
			scale[i] = math.Ldexp(scale[i], k)
			for j = 0; j < n; j++ {
				if j != i { // the diagonal is invariant
					b.data[i*n+j] = math.Ldexp(b.data[i*n+j], -k)
					b.data[j*n+i] = math.Ldexp(b.data[j*n+i], k)
				}
			}
		}
	}

	return scale
}

// balanceExponent returns k such that column i scaled by 2^k and row i scaled
// by 2^-k have comparable norms. k is clamped so that no nonzero off-diagonal
// entry overflows or flushes to zero and scale·2^k stays a normal number.
func balanceExponent(b *Dense, i int, c, r, scale float64) int {
	var (
		k, e int
		ec   = math.Log2(c)
		er   = math.Log2(r)
	)
	for ec+2*float64(k) < er-1 {
		k++
	}
	for ec+2*float64(k) > er+1 {
		k--
	}

	_, e = math.Frexp(scale)
	lo, hi := minNormalFrexpExp-e, maxFrexpExp-e
	n := b.r
	var col, row float64
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if col = b.data[j*n+i]; col != 0 {
			_, e = math.Frexp(col)
			lo, hi = max(lo, minFrexpExp-e), min(hi, maxFrexpExp-e)
		}
		if row = b.data[i*n+j]; row != 0 {
			_, e = math.Frexp(row)
			lo, hi = max(lo, e-maxFrexpExp), min(hi, e-minFrexpExp)
		}
	}
	if lo > hi {
		return 0
	}

	return min(max(k, lo), hi)
}
