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

import (
	"testing"
)

// TestPartition_KnownLayout verifies the documented 30/4 split.
func TestPartition_KnownLayout(t *testing.T) {
	got := Partition(30, 4)
	want := []SubRange{
		{Worker: 1, Start: 1, End: 7},
		{Worker: 2, Start: 8, End: 14},
		{Worker: 3, Start: 15, End: 21},
		{Worker: 4, Start: 22, End: 30},
	}

	if len(got) != len(want) {
		t.Fatalf("Partition(30, 4) returned %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestPartition_CoversRangeExactlyOnce checks the no-gap/no-overlap
// property across a grid of (upperBound, workers) pairs, including the
// degenerate upperBound < workers case.
func TestPartition_CoversRangeExactlyOnce(t *testing.T) {
	bounds := []int{1, 2, 3, 7, 16, 30, 100, 101, 1000, 1023}
	workerCounts := []int{1, 2, 3, 4, 7, 16, 50}

	for _, upper := range bounds {
		for _, workers := range workerCounts {
			ranges := Partition(upper, workers)
			if len(ranges) != workers {
				t.Errorf("Partition(%d, %d) returned %d ranges, want %d",
					upper, workers, len(ranges), workers)
			}

			seen := make(map[int]int)
			for _, r := range ranges {
				for n := r.Start; n <= r.End; n++ {
					seen[n]++
				}
			}

			for n := 1; n <= upper; n++ {
				if seen[n] != 1 {
					t.Errorf("Partition(%d, %d): %d covered %d times, want 1",
						upper, workers, n, seen[n])
				}
			}
			if len(seen) != upper {
				t.Errorf("Partition(%d, %d) covered %d numbers, want %d",
					upper, workers, len(seen), upper)
			}
		}
	}
}

// TestPartition_EmptyRanges verifies upperBound < workers produces
// empty-but-valid sub-ranges rather than an error.
func TestPartition_EmptyRanges(t *testing.T) {
	ranges := Partition(1, 4)

	empties := 0
	for _, r := range ranges {
		if r.Empty() {
			empties++
			if r.Len() != 0 {
				t.Errorf("empty range %+v has Len() = %d, want 0", r, r.Len())
			}
		}
	}
	if empties == 0 {
		t.Error("Partition(1, 4) produced no empty sub-ranges")
	}

	// The last range still has to cover [1, 1].
	last := ranges[len(ranges)-1]
	if last.End != 1 {
		t.Errorf("last range ends at %d, want 1", last.End)
	}
}

// TestDivisorChunks_NoDivisorDropped checks that chunking assigns every
// divisor to exactly one chunk for a grid of list lengths and worker
// counts, covering the remainder-absorption corner cases.
func TestDivisorChunks_NoDivisorDropped(t *testing.T) {
	lengths := []int{1, 2, 3, 5, 7, 8, 16, 17, 100, 101}
	workerCounts := []int{1, 2, 3, 4, 7, 16, 50}

	for _, length := range lengths {
		for _, workers := range workerCounts {
			divisors := make([]int, length)
			for i := range divisors {
				divisors[i] = 3 + 2*i
			}

			chunks := divisorChunks(divisors, workers)

			var flattened []int
			for _, chunk := range chunks {
				if len(chunk) == 0 {
					t.Errorf("len=%d workers=%d: got an empty chunk", length, workers)
				}
				flattened = append(flattened, chunk...)
			}

			if len(flattened) != length {
				t.Fatalf("len=%d workers=%d: chunks hold %d divisors, want %d",
					length, workers, len(flattened), length)
			}
			for i, d := range flattened {
				if d != divisors[i] {
					t.Errorf("len=%d workers=%d: position %d = %d, want %d (order or coverage broken)",
						length, workers, i, d, divisors[i])
				}
			}
		}
	}
}

// TestDivisorChunks_Empty verifies an empty divisor list yields no chunks.
func TestDivisorChunks_Empty(t *testing.T) {
	if chunks := divisorChunks(nil, 4); chunks != nil {
		t.Errorf("divisorChunks(nil, 4) = %v, want nil", chunks)
	}
}

// TestDivisorChunks_49Across3 pins the scenario from the divisor-split
// design: n=49 has candidates {3, 5, 7}, split across 3 workers.
func TestDivisorChunks_49Across3(t *testing.T) {
	divisors := oddDivisorCandidates(49)
	wantDivisors := []int{3, 5, 7}
	if len(divisors) != len(wantDivisors) {
		t.Fatalf("oddDivisorCandidates(49) = %v, want %v", divisors, wantDivisors)
	}
	for i, d := range wantDivisors {
		if divisors[i] != d {
			t.Fatalf("oddDivisorCandidates(49) = %v, want %v", divisors, wantDivisors)
		}
	}

	chunks := divisorChunks(divisors, 3)
	total := 0
	for _, chunk := range chunks {
		if len(chunk) < 1 {
			t.Errorf("chunk %v smaller than 1", chunk)
		}
		total += len(chunk)
	}
	if total != 3 {
		t.Errorf("chunks cover %d divisors, want 3", total)
	}
}
