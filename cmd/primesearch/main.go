// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command primesearch runs a parallel prime number search.
//
// The search range [1, N] is divided across a fixed pool of workers
// using one of two schemes: range division (each worker scans a
// contiguous sub-range) or divisibility testing (each candidate
// number's divisor list is itself split across helpers).
//
// Usage:
//
//	primesearch run                         # search with config.yaml settings
//	primesearch run --workers 8 --max 2^20 # override settings for one run
//	primesearch configure                   # interactive settings editor
//
// Settings live in config.yaml next to the binary and are created with
// defaults on first run.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
