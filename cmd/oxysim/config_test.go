// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2026 The OXYGEN SDK Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "sum", cfg.Plugin)
	assert.Equal(t, []uint64{1, 2}, cfg.Create)
	assert.Equal(t, 1000.0, cfg.Inputs[0].Rate)
	assert.Equal(t, "double", cfg.Inputs[1].Format)
	assert.Equal(t, "AI 2", cfg.Inputs[1].Name)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
plugin: sum
database: out/test.sqlite
acquisition:
  frequency: 100
  window: 10
  cycles: 2
inputs:
  - id: 7
    rate: 50
    format: sint16
    signal:
      shape: sawtooth
      amplitude: 100
      frequency: 2
settings:
  - channel: 0
    name: Scale
    value: 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, AcquisitionConfig{Frequency: 100, Window: 10, Cycles: 2}, cfg.Acquisition)
	require.Len(t, cfg.Inputs, 1)
	assert.Equal(t, "AI 7", cfg.Inputs[0].Name)
	assert.Equal(t, 50.0, cfg.Inputs[0].Rate)
	assert.Equal(t, "sawtooth", cfg.Inputs[0].Signal.Shape)
	assert.Equal(t, []uint64{7}, cfg.Create)
	assert.Equal(t, []Setting{{Channel: 0, Name: "Scale", Value: 3}}, cfg.Settings)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = LoadConfig(writeConfig(t, "inputs: {"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"plugin", func(c *Config) { c.Plugin = "fft" }, `unknown plugin "fft"`},
		{"frequency", func(c *Config) { c.Acquisition.Frequency = -1 }, "acquisition frequency"},
		{"cycles", func(c *Config) { c.Acquisition.Cycles = -1 }, "acquisition cycles"},
		{"no_inputs", func(c *Config) { c.Inputs = nil; c.Create = nil }, "no input channel"},
		{"duplicate", func(c *Config) { c.Inputs[1].ID = 1 }, "duplicate id"},
		{"format", func(c *Config) { c.Inputs[0].Format = "int16" }, "sample format"},
		{"complex", func(c *Config) { c.Inputs[0].Format = "complex_double" }, "unsupported sample format"},
		{"shape", func(c *Config) { c.Inputs[0].Signal.Shape = "chirp" }, "unknown signal shape"},
		{"create", func(c *Config) { c.Create = []uint64{9} }, "unknown input 9"},
		{"setting", func(c *Config) { c.Settings = []Setting{{Value: 1}} }, "empty name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
