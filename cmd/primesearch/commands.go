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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/PrimeSearch/cmd/primesearch/config"
	"github.com/AleutianAI/PrimeSearch/pkg/logging"
)

// --- Global Command Variables ---
var (
	configPath   string
	workersFlag  int
	maxFlag      string // override for max_number, accepts "2^X" or plain int
	printFlag    string
	schemeFlag   string
	logLevelFlag string
	jsonLogs     bool
	traceFlag    bool

	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "primesearch",
		Short: "A parallel prime number search",
		Long: `Primesearch discovers every prime in [1, N] using a fixed pool
of worker threads and one of two work-division schemes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(logLevelFlag),
				Service: "primesearch",
				JSON:    jsonLogs,
			})
			logger.Install()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Close()
			}
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the prime search with the saved settings",
		RunE:  runSearch, // Defined in cmd_run.go
	}

	configureCmd = &cobra.Command{
		Use:   "configure",
		Short: "Interactively edit and save the search settings",
		RunE:  runConfigure, // Defined in cmd_configure.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "Path to the settings file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")

	runCmd.Flags().IntVar(&workersFlag, "workers", 0, "Override the worker count for this run")
	runCmd.Flags().StringVar(&maxFlag, "max", "", "Override the upper bound for this run (plain integer or 2^X)")
	runCmd.Flags().StringVar(&printFlag, "print", "", "Override the print mode (immediate or wait)")
	runCmd.Flags().StringVar(&schemeFlag, "scheme", "", "Override the division scheme (range or divisibility)")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "Emit spans to stderr via the stdout trace exporter")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configureCmd)
}
