// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

// SubRange is one worker's contiguous slice of the search domain.
//
// Worker indices are 1-based because they appear in console output.
// A SubRange with Start > End is empty: the worker scans nothing and
// that is a valid, silent outcome (it happens whenever the upper bound
// is smaller than the worker count).
type SubRange struct {
	Worker int
	Start  int
	End    int
}

// Empty reports whether the sub-range covers no numbers.
func (r SubRange) Empty() bool {
	return r.Start > r.End
}

// Len returns the number of integers covered by the sub-range.
func (r SubRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Partition divides [1, upperBound] into workers contiguous sub-ranges.
//
// Description:
//
//	Each sub-range has size upperBound/workers (integer division); the
//	last sub-range ends at upperBound and so absorbs the remainder,
//	making it up to workers-1 numbers larger than the others. The
//	sub-ranges are disjoint and their union is exactly [1, upperBound],
//	so no two workers ever test the same number.
//
// Inputs:
//   - upperBound: Inclusive top of the search range. Must be >= 1.
//   - workers: Number of sub-ranges to produce. Must be >= 1.
//
// Outputs:
//   - []SubRange: Exactly workers entries ordered by worker index.
//     When upperBound < workers the per-worker size is zero and all
//     but the last sub-range are empty (Start > End).
func Partition(upperBound, workers int) []SubRange {
	size := upperBound / workers

	ranges := make([]SubRange, 0, workers)
	for i := 0; i < workers; i++ {
		start := i*size + 1
		end := (i + 1) * size
		if i == workers-1 {
			end = upperBound
		}
		ranges = append(ranges, SubRange{Worker: i + 1, Start: start, End: end})
	}
	return ranges
}

// divisorChunks splits a divisor list into up to workers contiguous chunks.
//
// Description:
//
//	Chunk size is max(1, len(divisors)/workers); the last constructed
//	chunk runs to the end of the list, absorbing any remainder. The
//	construction loop stops as soon as a chunk would start past the end
//	of the list, so fewer than workers chunks may be produced, but every
//	divisor lands in exactly one chunk.
//
// Inputs:
//   - divisors: Candidate divisors, may be empty.
//   - workers: Upper bound on the number of chunks. Must be >= 1.
//
// Outputs:
//   - [][]int: Non-empty chunks that partition divisors in order.
//     Nil when divisors is empty.
func divisorChunks(divisors []int, workers int) [][]int {
	if len(divisors) == 0 {
		return nil
	}

	chunkSize := len(divisors) / workers
	if chunkSize < 1 {
		chunkSize = 1
	}

	var chunks [][]int
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		if start >= len(divisors) {
			break
		}
		end := start + chunkSize
		if i == workers-1 || end > len(divisors) {
			end = len(divisors)
		}
		chunks = append(chunks, divisors[start:end])
	}
	return chunks
}
