// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements the parallel prime search engine.
//
// The engine takes an immutable Config, partitions the range [1, N]
// across a fixed pool of workers, and aggregates discovered primes
// through a mutex-guarded sink. Two division schemes are supported:
//
//   - SchemeRange: each worker scans a contiguous sub-range of [1, N]
//     with sequential trial division.
//   - SchemeDivisor: each worker still owns a sub-range, but every
//     candidate number is tested by fanning its divisor list out to a
//     nested helper pool.
//
// The divisor scheme spawns a helper pool per candidate number, which
// is slower than sequential scanning for small n. That cost profile is
// preserved on purpose; see IsPrimeParallel.
package search

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Enumerations
// =============================================================================

// PrintMode controls when discovered primes are written to the console.
type PrintMode int

const (
	// PrintImmediate emits a timestamped line the moment a worker finds
	// a prime, tagged with the worker index.
	PrintImmediate PrintMode = iota

	// PrintDeferred holds all output until the join barrier, then emits
	// every prime in ascending order.
	PrintDeferred
)

// String returns the config-file spelling of the mode.
func (m PrintMode) String() string {
	switch m {
	case PrintImmediate:
		return "immediate"
	case PrintDeferred:
		return "wait"
	default:
		return "unknown"
	}
}

// ParsePrintMode parses the config-file spelling of a print mode.
//
// Accepted values are "immediate" and "wait".
func ParsePrintMode(s string) (PrintMode, error) {
	switch s {
	case "immediate":
		return PrintImmediate, nil
	case "wait":
		return PrintDeferred, nil
	default:
		return 0, fmt.Errorf("unknown print mode %q (want \"immediate\" or \"wait\")", s)
	}
}

// Scheme selects the work-division strategy.
type Scheme int

const (
	// SchemeRange divides the search range [1, N] into contiguous
	// sub-ranges, one per worker.
	SchemeRange Scheme = iota

	// SchemeDivisor keeps the range division but tests each candidate
	// number by splitting its divisor list across a nested helper pool.
	SchemeDivisor
)

// String returns the config-file spelling of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeRange:
		return "range"
	case SchemeDivisor:
		return "divisibility"
	default:
		return "unknown"
	}
}

// ParseScheme parses the config-file spelling of a division scheme.
//
// Accepted values are "range" and "divisibility".
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "range":
		return SchemeRange, nil
	case "divisibility":
		return SchemeDivisor, nil
	default:
		return 0, fmt.Errorf("unknown division scheme %q (want \"range\" or \"divisibility\")", s)
	}
}

// =============================================================================
// Config
// =============================================================================

// searchValidate is the validator instance for search datatypes.
var searchValidate = validator.New()

// Config is the immutable input to one search run.
//
// # Description
//
// Config is produced by an external collaborator (config file or
// interactive prompt) and is read-only once the engine starts; it
// needs no synchronization. The engine rejects an invalid Config
// before dispatching any worker.
//
// # Fields
//
//   - Workers: Number of search workers to launch. Also bounds the
//     helper pool size inside a SchemeDivisor primality test, so the
//     worst-case goroutine count is Workers².
//   - UpperBound: Inclusive top of the search range [1, UpperBound].
//     Fits int32 (the configuration surface caps it at 2^30).
//   - PrintMode: Immediate (interleaved, timestamped) or Deferred
//     (sorted batch after the join barrier).
//   - Scheme: Range or divisor division, see the Scheme docs.
//
// # Validation
//
// Workers and UpperBound must both be >= 1.
type Config struct {
	Workers    int       `validate:"gte=1"`
	UpperBound int       `validate:"gte=1"`
	PrintMode  PrintMode `validate:"gte=0,lte=1"`
	Scheme     Scheme    `validate:"gte=0,lte=1"`
}

// Validate checks the Config preconditions.
//
// Returns a non-nil error if any field is out of range. Callers must
// not dispatch a run with a Config that fails validation.
func (c Config) Validate() error {
	if err := searchValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid search config: %w", err)
	}
	return nil
}
