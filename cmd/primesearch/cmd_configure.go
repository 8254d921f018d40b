// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/PrimeSearch/cmd/primesearch/config"
	"github.com/AleutianAI/PrimeSearch/pkg/ux"
)

// runConfigure edits the settings file through an interactive form and
// saves the result, preserving the 2^X spelling of the bound.
func runConfigure(cmd *cobra.Command, args []string) error {
	current, err := config.Load(configPath)
	if err != nil {
		return err
	}

	threads := strconv.Itoa(current.NumThreads)
	exponent := currentExponent(current.MaxNumber)
	printMode := current.PrintMode
	scheme := current.DivisionScheme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of worker threads").
				Description(fmt.Sprintf("Current: %d", current.NumThreads)).
				Value(&threads).
				Validate(validatePositiveInt),

			huh.NewInput().
				Title("Search bound exponent X (search up to 2^X)").
				Description(fmt.Sprintf("Current bound: %s", current.MaxNumber)).
				Value(&exponent).
				Validate(validateExponent),

			huh.NewSelect[string]().
				Title("Print mode").
				Options(
					huh.NewOption("Print immediately (worker ID and timestamp)", "immediate"),
					huh.NewOption("Wait until all workers are done, then print sorted", "wait"),
				).
				Value(&printMode),

			huh.NewSelect[string]().
				Title("Division scheme").
				Options(
					huh.NewOption("Range division (split the search range)", "range"),
					huh.NewOption("Divisibility testing (split each number's divisor scan)", "divisibility"),
				).
				Value(&scheme),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("configuration aborted: %w", err)
	}

	numThreads, _ := strconv.Atoi(strings.TrimSpace(threads))
	exp, _ := strconv.Atoi(strings.TrimSpace(exponent))

	updated := config.FileConfig{
		NumThreads:     numThreads,
		MaxNumber:      fmt.Sprintf("2^%d", exp),
		PrintMode:      printMode,
		DivisionScheme: scheme,
	}
	if err := config.Save(configPath, updated); err != nil {
		return err
	}

	fmt.Println(ux.Muted(fmt.Sprintf("Configuration saved to %s", configPath)))
	return nil
}

// currentExponent recovers the exponent from a "2^X" bound, falling
// back to 20 for plain-integer bounds.
func currentExponent(maxNumber string) string {
	if rest, ok := strings.CutPrefix(strings.TrimSpace(maxNumber), "2^"); ok {
		if _, err := strconv.Atoi(rest); err == nil {
			return rest
		}
	}
	return "20"
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive integer")
	}
	return nil
}

func validateExponent(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > config.MaxExponent {
		return fmt.Errorf("enter an integer between 1 and %d", config.MaxExponent)
	}
	return nil
}
