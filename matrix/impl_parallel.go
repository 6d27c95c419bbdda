// SPDX-License-Identifier: MIT

// Package matrix - row-block parallelism for data-parallel kernel steps.
//
// Purpose:
//   - Split an independent row range [from, to) into contiguous strips and run
//     one goroutine per strip (errgroup), used by Mul and the PLU elimination step.
//
// Determinism:
//   - Each row belongs to exactly one strip and the per-row arithmetic is the
//     same as in the sequential loop, so results are bit-identical for any
//     worker count.
//   - Parallelism never crosses an elimination step; callers invoke this once
//     per step and the call returns only after every strip has finished.

package matrix

import "golang.org/x/sync/errgroup"

// minRowsPerStrip keeps strips large enough that goroutine start-up does not
// dominate the per-row work.
const minRowsPerStrip = 16

// forEachRowBlock calls fn(r0, r1) over contiguous strips covering [from, to).
// Implementation:
//   - Stage 1: with workers <= 1 or a short range, call fn(from, to) inline.
//   - Stage 2: otherwise cut the range into at most `workers` strips of at
//     least minRowsPerStrip rows and run them in an errgroup.
//
// Returns:
//   - the first non-nil error reported by fn.
//
// Complexity:
//   - O(workers) scheduling overhead on top of fn.
func forEachRowBlock(workers, from, to int, fn func(r0, r1 int) error) error {
	span := to - from
	if span <= 0 {
		return nil
	}
	if workers <= 1 || span < 2*minRowsPerStrip {
		return fn(from, to)
	}

	strips := min(workers, span/minRowsPerStrip)
	size := (span + strips - 1) / strips

	var g errgroup.Group
	for r0 := from; r0 < to; r0 += size {
		r0, r1 := r0, min(r0+size, to)
		g.Go(func() error { return fn(r0, r1) })
	}

	return g.Wait()
}
