// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/PrimeSearch/services/search"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "power of two", in: "2^20", want: 1 << 20},
		{name: "power of two min", in: "2^1", want: 2},
		{name: "power of two max", in: "2^30", want: 1 << 30},
		{name: "plain integer", in: "1000", want: 1000},
		{name: "whitespace tolerated", in: " 2^10 ", want: 1024},
		{name: "exponent zero", in: "2^0", wantErr: true},
		{name: "exponent too large", in: "2^31", wantErr: true},
		{name: "garbage exponent", in: "2^x", wantErr: true},
		{name: "garbage", in: "lots", wantErr: true},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-8", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBound(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileConfig_ToSearchConfig(t *testing.T) {
	t.Run("valid config resolves", func(t *testing.T) {
		cfg, err := FileConfig{
			NumThreads:     8,
			MaxNumber:      "2^16",
			PrintMode:      "immediate",
			DivisionScheme: "divisibility",
		}.ToSearchConfig()
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 1<<16, cfg.UpperBound)
		assert.Equal(t, search.PrintImmediate, cfg.PrintMode)
		assert.Equal(t, search.SchemeDivisor, cfg.Scheme)
	})

	t.Run("bad print mode rejected", func(t *testing.T) {
		_, err := FileConfig{
			NumThreads: 4, MaxNumber: "100", PrintMode: "eventually", DivisionScheme: "range",
		}.ToSearchConfig()
		assert.Error(t, err)
	})

	t.Run("bad scheme rejected", func(t *testing.T) {
		_, err := FileConfig{
			NumThreads: 4, MaxNumber: "100", PrintMode: "wait", DivisionScheme: "magic",
		}.ToSearchConfig()
		assert.Error(t, err)
	})

	t.Run("zero threads rejected by engine validation", func(t *testing.T) {
		_, err := FileConfig{
			NumThreads: 0, MaxNumber: "100", PrintMode: "wait", DivisionScheme: "range",
		}.ToSearchConfig()
		assert.Error(t, err)
	})
}

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	in := FileConfig{
		NumThreads:     7,
		MaxNumber:      "2^12",
		PrintMode:      "immediate",
		DivisionScheme: "range",
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out, "power-of-two bound must survive a round trip verbatim")
}

func TestLoad_FirstRunCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "first run should have written the default file")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_threads: [not an int\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
