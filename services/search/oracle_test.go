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
	"strconv"
	"testing"
)

// sieveUpTo returns primality flags for [0, n] from an independent
// Eratosthenes sieve, used as the reference oracle in tests.
func sieveUpTo(n int) []bool {
	prime := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		prime[i] = true
	}
	for i := 2; i*i <= n; i++ {
		if !prime[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			prime[j] = false
		}
	}
	return prime
}

// TestIsPrime_AgainstSieve checks sequential trial division against an
// independent sieve for every n in [0, 10000].
func TestIsPrime_AgainstSieve(t *testing.T) {
	const limit = 10000
	ref := sieveUpTo(limit)

	for n := 0; n <= limit; n++ {
		if got := IsPrime(n); got != ref[n] {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, ref[n])
		}
	}
}

// TestIsPrime_Edges pins the small-number branches.
func TestIsPrime_Edges(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{97, true},
	}
	for _, tc := range cases {
		if got := IsPrime(tc.n); got != tc.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

// TestIsPrimeParallel_AgreesWithSequential verifies the two oracle
// modes agree for every n in [1, 10000] across several helper counts.
func TestIsPrimeParallel_AgreesWithSequential(t *testing.T) {
	const limit = 10000
	ref := sieveUpTo(limit)

	for _, helpers := range []int{1, 3, 4, 16} {
		helpers := helpers
		t.Run("helpers_"+strconv.Itoa(helpers), func(t *testing.T) {
			t.Parallel()
			for n := 1; n <= limit; n++ {
				if got := IsPrimeParallel(n, helpers); got != ref[n] {
					t.Errorf("IsPrimeParallel(%d, %d) = %v, want %v", n, helpers, got, ref[n])
				}
			}
		})
	}
}

// TestIsPrimeParallel_49 pins the documented scenario: 49 under the
// divisor scheme with 3 helpers is composite (divisor 7 found).
func TestIsPrimeParallel_49(t *testing.T) {
	if IsPrimeParallel(49, 3) {
		t.Error("IsPrimeParallel(49, 3) = true, want false (7 divides 49)")
	}
}

// TestIsPrimeParallel_NoCandidates verifies numbers whose candidate
// divisor list is empty (odd n < 9) resolve without spawning helpers.
func TestIsPrimeParallel_NoCandidates(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want bool
	}{
		{3, true},
		{5, true},
		{7, true},
	} {
		if got := IsPrimeParallel(tc.n, 8); got != tc.want {
			t.Errorf("IsPrimeParallel(%d, 8) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

// TestCompositeFlag_WriteOnce verifies redundant concurrent sets are
// harmless and the flag never resets.
func TestCompositeFlag_WriteOnce(t *testing.T) {
	var flag compositeFlag

	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			flag.set()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}

	if !flag.value() {
		t.Error("flag not set after concurrent writes")
	}
}
