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
	"strconv"
	"strings"
)

// summaryPrimeLimit caps how many primes the summary line shows before
// truncating with an ellipsis.
const summaryPrimeLimit = 20

// writeDeferred emits every prime in ascending order, one per line.
// This is the single point at which deferred-mode output happens.
func writeDeferred(w io.Writer, primes []int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All workers completed. Results:")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, p := range primes {
		fmt.Fprintf(w, "Prime: %d\n", p)
	}
}

// writeSummary emits the summary block: total count, elapsed seconds,
// the first summaryPrimeLimit primes, and the run's wall-clock bracket.
func writeSummary(w io.Writer, res *Result) {
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  - Total primes found: %d\n", len(res.Primes))
	fmt.Fprintf(w, "  - Execution time: %g seconds\n", res.Elapsed.Seconds())
	fmt.Fprintf(w, "  - Primes: %s\n", formatPrimeList(res.Primes))
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "START TIME: %s\n", res.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "END TIME:   %s\n", res.FinishedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// formatPrimeList joins up to summaryPrimeLimit primes with commas,
// appending "..." when the list was truncated.
func formatPrimeList(primes []int) string {
	n := len(primes)
	if n > summaryPrimeLimit {
		n = summaryPrimeLimit
	}

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.Itoa(primes[i])
	}
	joined := strings.Join(parts, ", ")
	if len(primes) > summaryPrimeLimit {
		joined += "..."
	}
	return joined
}
