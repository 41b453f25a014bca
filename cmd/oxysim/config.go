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
	"errors"
	"fmt"
	"os"

	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"gopkg.in/yaml.v3"
)

// Config is the simulation described by the YAML configuration file.
type Config struct {
	// Plugin is the name of a plugin of the catalog.
	Plugin string `yaml:"plugin"`
	// Init is the configuration passed to the plugin Init.
	Init        string            `yaml:"init"`
	Database    string            `yaml:"database"`
	Acquisition AcquisitionConfig `yaml:"acquisition"`
	Inputs      []InputConfig     `yaml:"inputs"`
	// Create lists the inputs selected when the channels are created. All
	// inputs are selected if it is empty.
	Create   []uint64  `yaml:"create"`
	Settings []Setting `yaml:"settings"`
}

// AcquisitionConfig describes the processing windows.
type AcquisitionConfig struct {
	// Frequency is the tick rate of the windows in Hz.
	Frequency float64 `yaml:"frequency"`
	// Window is the number of ticks per processing window.
	Window uint64 `yaml:"window"`
	Cycles int    `yaml:"cycles"`
}

// InputConfig describes a simulated input channel.
type InputConfig struct {
	ID     uint64       `yaml:"id"`
	Name   string       `yaml:"name"`
	Rate   float64      `yaml:"rate"`
	Format string       `yaml:"format"`
	Signal SignalConfig `yaml:"signal"`
}

// SignalConfig describes the waveform of an input.
type SignalConfig struct {
	Shape     string  `yaml:"shape"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Offset    float64 `yaml:"offset"`
	Seed      int64   `yaml:"seed"`
}

// Setting is a numeric configuration item of an output channel, applied
// after the channels are created.
type Setting struct {
	Channel uint32  `yaml:"channel"`
	Name    string  `yaml:"name"`
	Value   float64 `yaml:"value"`
}

// DefaultConfig returns a configuration summing two sine waves.
func DefaultConfig() *Config {
	cfg := &Config{
		Plugin:   "sum",
		Database: "oxysim.sqlite",
		Inputs: []InputConfig{
			{ID: 1, Signal: SignalConfig{Shape: "sine", Amplitude: 1, Frequency: 5}},
			{ID: 2, Signal: SignalConfig{Shape: "square", Amplitude: 0.5, Frequency: 1}},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a configuration file and fills in the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Plugin == "" {
		c.Plugin = "sum"
	}
	if c.Database == "" {
		c.Database = "oxysim.sqlite"
	}
	if c.Acquisition.Frequency == 0 {
		c.Acquisition.Frequency = 1000
	}
	if c.Acquisition.Window == 0 {
		c.Acquisition.Window = 100
	}
	if c.Acquisition.Cycles == 0 {
		c.Acquisition.Cycles = 10
	}
	for i := range c.Inputs {
		in := &c.Inputs[i]
		if in.Name == "" {
			in.Name = fmt.Sprintf("AI %d", in.ID)
		}
		if in.Rate == 0 {
			in.Rate = c.Acquisition.Frequency
		}
		if in.Format == "" {
			in.Format = telegram.FormatDouble.String()
		}
		if in.Signal.Shape == "" {
			in.Signal.Shape = "sine"
		}
	}
	if len(c.Create) == 0 {
		for _, in := range c.Inputs {
			c.Create = append(c.Create, in.ID)
		}
	}
}

// Validate returns every problem of the configuration.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := catalog[c.Plugin]; !ok {
		errs = append(errs, fmt.Errorf("unknown plugin %q", c.Plugin))
	}
	if c.Acquisition.Frequency < 0 {
		errs = append(errs, fmt.Errorf("acquisition frequency must be positive, got %g", c.Acquisition.Frequency))
	}
	if c.Acquisition.Cycles < 0 {
		errs = append(errs, fmt.Errorf("acquisition cycles must be positive, got %d", c.Acquisition.Cycles))
	}
	if len(c.Inputs) == 0 {
		errs = append(errs, errors.New("no input channel"))
	}
	ids := make(map[uint64]bool)
	for _, in := range c.Inputs {
		if ids[in.ID] {
			errs = append(errs, fmt.Errorf("input %d: duplicate id", in.ID))
		}
		ids[in.ID] = true
		if in.Rate < 0 {
			errs = append(errs, fmt.Errorf("input %d: rate must be positive", in.ID))
		}
		if f, err := telegram.ParseSampleFormat(in.Format); err != nil {
			errs = append(errs, fmt.Errorf("input %d: %w", in.ID, err))
		} else if f.Size() == 0 || f == telegram.FormatComplexFloat || f == telegram.FormatComplexDouble {
			errs = append(errs, fmt.Errorf("input %d: unsupported sample format %s", in.ID, f))
		}
		if _, ok := shapes[in.Signal.Shape]; !ok {
			errs = append(errs, fmt.Errorf("input %d: unknown signal shape %q", in.ID, in.Signal.Shape))
		}
	}
	for _, id := range c.Create {
		if !ids[id] {
			errs = append(errs, fmt.Errorf("create: unknown input %d", id))
		}
	}
	for _, s := range c.Settings {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("setting of channel %d: empty name", s.Channel))
		}
	}
	return errors.Join(errs...)
}
