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
	"fmt"
	"io"
	"sync"
	"time"
)

// Sink is the single shared mutation point for the running prime list
// and the interleaved console output.
//
// # Description
//
// Sink guards two independent resources with two independent mutexes:
// the append-only prime collection and the output stream. The locks
// are never held simultaneously, so there is no lock ordering to get
// wrong. Each critical section is minimal: one append, or one
// formatted whole-line write.
//
// No read access is exposed while workers are running. Primes is
// called by the coordinator only after the join barrier, when no
// writer remains; that ordering is what lets the final read go
// unlocked on the data itself (the method still takes the collection
// lock so misuse is merely slow, not racy).
//
// # Thread Safety
//
// Record and EmitImmediate are safe for concurrent use from any number
// of workers.
type Sink struct {
	outMu sync.Mutex
	out   io.Writer

	mu     sync.Mutex
	primes []int

	// now is swapped out by tests that need deterministic timestamps.
	now func() time.Time
}

// NewSink returns a Sink that writes immediate-mode lines to out.
func NewSink(out io.Writer) *Sink {
	return &Sink{out: out, now: time.Now}
}

// Record appends a discovered prime under the collection lock.
func (s *Sink) Record(n int) {
	s.mu.Lock()
	s.primes = append(s.primes, n)
	s.mu.Unlock()
}

// EmitImmediate writes one "found prime" line under the output lock.
//
// The line is atomic with respect to other workers' lines and carries
// the 1-based worker index and a wall-clock timestamp with millisecond
// precision:
//
//	[Thread-3] [14:02:51.207] Found prime: 104729
func (s *Sink) EmitImmediate(worker, n int) {
	now := s.now()

	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, "[Thread-%d] [%s.%03d] Found prime: %d\n",
		worker, now.Format("15:04:05"), now.Nanosecond()/int(time.Millisecond), n)
}

// Primes returns a copy of the collected primes.
//
// Intended for the coordinator after the join barrier; the returned
// slice is owned by the caller and is in discovery order, not sorted.
func (s *Sink) Primes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.primes))
	copy(out, s.primes)
	return out
}

// Count returns the number of primes recorded so far.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.primes)
}
