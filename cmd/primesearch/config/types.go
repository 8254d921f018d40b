// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config reads and writes the prime search settings file.
//
// The engine itself never parses files; this package is the external
// configuration collaborator that turns a YAML settings file (or the
// interactive form) into a validated search.Config.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AleutianAI/PrimeSearch/services/search"
)

// MaxExponent caps the search bound at 2^30 so it stays inside int32.
const MaxExponent = 30

// FileConfig mirrors the on-disk settings file.
//
// MaxNumber is kept as a string because it accepts either a plain
// integer ("1048576") or a power-of-two form ("2^20"); the power form
// is preserved on save so a hand-written "2^20" survives a round trip.
type FileConfig struct {
	NumThreads     int    `yaml:"num_threads"`
	MaxNumber      string `yaml:"max_number"`
	PrintMode      string `yaml:"print_mode"`
	DivisionScheme string `yaml:"division_scheme"`
}

// Default returns the settings written on first run.
func Default() FileConfig {
	return FileConfig{
		NumThreads:     4,
		MaxNumber:      "2^20",
		PrintMode:      "wait",
		DivisionScheme: "range",
	}
}

// ParseBound parses a max_number value.
//
// # Description
//
// Accepts "2^X" with X in [1, MaxExponent], or a plain positive
// integer. The power form exists because the original settings surface
// sizes the search range in powers of two.
//
// # Outputs
//
//   - int: The resolved inclusive upper bound.
//   - error: Non-nil for malformed input, X outside [1, MaxExponent],
//     or a non-positive plain integer.
func ParseBound(s string) (int, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "2^"); ok {
		exp, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("invalid max_number %q: %w", s, err)
		}
		if exp < 1 || exp > MaxExponent {
			return 0, fmt.Errorf("invalid max_number %q: exponent must be in [1, %d]", s, MaxExponent)
		}
		return 1 << exp, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid max_number %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid max_number %q: must be >= 1", s)
	}
	return n, nil
}

// ToSearchConfig resolves the file fields into an engine config.
//
// The returned config is additionally validated, so a successful
// return is safe to dispatch.
func (f FileConfig) ToSearchConfig() (search.Config, error) {
	bound, err := ParseBound(f.MaxNumber)
	if err != nil {
		return search.Config{}, err
	}

	mode, err := search.ParsePrintMode(f.PrintMode)
	if err != nil {
		return search.Config{}, err
	}

	scheme, err := search.ParseScheme(f.DivisionScheme)
	if err != nil {
		return search.Config{}, err
	}

	cfg := search.Config{
		Workers:    f.NumThreads,
		UpperBound: bound,
		PrintMode:  mode,
		Scheme:     scheme,
	}
	if err := cfg.Validate(); err != nil {
		return search.Config{}, err
	}
	return cfg, nil
}
