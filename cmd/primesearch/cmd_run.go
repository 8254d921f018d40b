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
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/PrimeSearch/cmd/primesearch/config"
	"github.com/AleutianAI/PrimeSearch/pkg/ux"
	"github.com/AleutianAI/PrimeSearch/services/search"
)

// runSearch loads the settings, applies any per-run flag overrides,
// and executes one full search.
func runSearch(cmd *cobra.Command, args []string) error {
	if traceFlag {
		shutdown, err := initTracing()
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer shutdown()
	}

	cfg, err := loadRunConfig()
	if err != nil {
		fmt.Println(ux.Errorf(err.Error()))
		return err
	}

	coordinator := search.NewCoordinator(cfg)

	fmt.Println()
	fmt.Println(ux.Title(coordinator.BannerText()))
	fmt.Println(strings.Repeat("-", 60))

	if _, err := coordinator.Run(context.Background()); err != nil {
		fmt.Println(ux.Errorf(err.Error()))
		return err
	}
	return nil
}

// loadRunConfig resolves the settings file plus CLI overrides into a
// validated engine config.
func loadRunConfig() (search.Config, error) {
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return search.Config{}, err
	}

	if workersFlag > 0 {
		fileCfg.NumThreads = workersFlag
	}
	if maxFlag != "" {
		fileCfg.MaxNumber = maxFlag
	}
	if printFlag != "" {
		fileCfg.PrintMode = printFlag
	}
	if schemeFlag != "" {
		fileCfg.DivisionScheme = schemeFlag
	}

	return fileCfg.ToSearchConfig()
}
