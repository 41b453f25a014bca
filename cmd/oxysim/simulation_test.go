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
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/loader"
	"github.com/dewetron/oxygen-sdk-go/pkg/recorder"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database = filepath.Join(t.TempDir(), "sim.sqlite")
	cfg.Acquisition = AcquisitionConfig{Frequency: 100, Window: 10, Cycles: 5}
	cfg.Inputs = []InputConfig{
		{ID: 1, Signal: SignalConfig{Shape: "constant", Amplitude: 1}},
		{ID: 2, Rate: 10, Signal: SignalConfig{Shape: "constant", Amplitude: 2}},
	}
	cfg.Settings = []Setting{{Channel: 0, Name: "Scale", Value: 10}}
	cfg.Create = nil
	cfg.applyDefaults()
	require.NoError(t, cfg.Validate())

	report, err := newSimulation(cfg, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Channels, 1)
	c := report.Channels[0]
	assert.Equal(t, "Sum", c.Name)
	assert.Equal(t, telegram.LocalID(0), c.LocalID)
	assert.Equal(t, loader.OutputChannelBase, c.Channel)
	assert.Equal(t, int64(50), c.Count)
	assert.Equal(t, 30.0, c.Min)
	assert.Equal(t, 30.0, c.Max)
	assert.Equal(t, 5, report.Windows)
	// create, settings, init, start, 5 windows and stop
	assert.Equal(t, 10.0, report.Messages)
	assert.Positive(t, report.Telegrams)

	var out bytes.Buffer
	require.NoError(t, report.Print(&out))
	assert.Contains(t, out.String(), "plugin sum")
	assert.Contains(t, out.String(), "Sum")

	// the database keeps the samples
	rec, err := recorder.Open(recorder.Config{Path: cfg.Database})
	require.NoError(t, err)
	defer rec.Close()
	samples, err := rec.Samples(context.Background(), report.Run, c.Channel)
	require.NoError(t, err)
	assert.Len(t, samples, 50)
}

func TestSimulationCancelled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database = filepath.Join(t.TempDir(), "sim.sqlite")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSimulation(cfg, zap.NewNop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFlags(t *testing.T) {
	t.Setenv("OXYSIM_LOG_LEVEL", "debug")
	t.Setenv("OXYSIM_CYCLES", "3")
	var stderr bytes.Buffer
	cli, err := parseFlags([]string{"-db", "x.sqlite"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, 3, cli.Cycles)
	assert.Equal(t, "x.sqlite", cli.Database)
	assert.Equal(t, "text", cli.LogFormat)

	_, err = parseFlags([]string{"-log-level", "loud"}, &stderr)
	assert.Error(t, err)
	_, err = parseFlags([]string{"-log-format", "xml"}, &stderr)
	assert.Error(t, err)
	_, err = parseFlags([]string{"-nope"}, &stderr)
	assert.Error(t, err)

	_, err = newLogger("warn", "json")
	assert.NoError(t, err)
}
