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
	"log/slog"
	"math"
	"runtime"
	"sync"
)

// IsPrime reports whether n is prime using sequential trial division.
//
// Description:
//
//	n is prime iff n >= 2 and has no divisor in [2, sqrt(n)]. Even
//	n > 2 is rejected immediately; odd n is tested against odd divisors
//	only, stepping by 2 up to floor(sqrt(n)).
//
// Thread Safety: Safe for concurrent use (pure function).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := int(math.Sqrt(float64(n)))
	for d := 3; d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// oddDivisorCandidates returns the odd candidate divisors of n in
// [3, floor(sqrt(n))]. The list is empty for n < 9.
func oddDivisorCandidates(n int) []int {
	limit := int(math.Sqrt(float64(n)))
	var divisors []int
	for d := 3; d <= limit; d += 2 {
		divisors = append(divisors, d)
	}
	return divisors
}

// compositeFlag is the shared result of one parallel divisor test.
//
// The flag has write-once-to-true semantics: any helper that finds a
// divisor sets it, nothing ever clears it. Concurrent redundant writes
// are idempotent, so helpers do not check the flag before writing; the
// mutex only protects the bool storage itself from torn access.
type compositeFlag struct {
	mu        sync.Mutex
	composite bool
}

func (f *compositeFlag) set() {
	f.mu.Lock()
	f.composite = true
	f.mu.Unlock()
}

func (f *compositeFlag) value() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.composite
}

// scanChunk tests n against each divisor in chunk and sets flag on the
// first hit. Helpers own disjoint chunks, so at most one divisor value
// is ever the first hit per chunk.
func scanChunk(n int, chunk []int, flag *compositeFlag) {
	for _, d := range chunk {
		if n%d == 0 {
			flag.set()
			return
		}
	}
}

// IsPrimeParallel reports whether n is prime by splitting the divisor
// scan for this single number across a pool of helper goroutines.
//
// Description:
//
//	Builds the odd candidate divisor list in [3, sqrt(n)]; an empty
//	list means n is prime (after the usual n < 2, n == 2, and parity
//	short-circuits). Otherwise the list is split into up to helpers
//	contiguous chunks (chunk size max(1, len/helpers), last chunk
//	absorbs the remainder) and one goroutine scans each chunk, setting
//	a shared write-once composite flag on any hit. The call blocks
//	until every helper has joined, then returns the negated flag.
//
// Inputs:
//   - n: The number under test. Any integer.
//   - helpers: Helper pool bound. Must be >= 1.
//
// Outputs:
//   - bool: true iff n is prime.
//
// Limitations:
//   - Spawns a fresh helper pool per call, so for small n this is
//     slower than IsPrime. The cost model is intentional: the scheme
//     demonstrates divisor-level division of work, and amortizes only
//     when sqrt(n) is large.
//
// Thread Safety: Safe for concurrent use; each call owns its flag and
// pool, and helpers never outlive the call.
func IsPrimeParallel(n, helpers int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	divisors := oddDivisorCandidates(n)
	if len(divisors) == 0 {
		return true
	}

	chunks := divisorChunks(divisors, helpers)

	var flag compositeFlag
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(helperID int, chunk []int) {
			defer wg.Done()

			// Panic recovery to prevent crashes - log and continue
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					m := runtime.Stack(buf, false)
					slog.Error("panic in divisor scan helper",
						slog.Int("helper_id", helperID),
						slog.Int("number", n),
						slog.Any("panic", r),
						slog.String("stack", string(buf[:m])),
					)
				}
			}()

			scanChunk(n, chunk, &flag)
		}(i, chunk)
	}
	wg.Wait()

	return !flag.value()
}
