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
	"math"
	"math/rand"
)

// shape returns the value of a unit waveform at phase p, in cycles.
type shape func(p float64, rnd *rand.Rand) float64

var shapes = map[string]shape{
	"sine": func(p float64, _ *rand.Rand) float64 {
		return math.Sin(2 * math.Pi * p)
	},
	"square": func(p float64, _ *rand.Rand) float64 {
		if p-math.Floor(p) < 0.5 {
			return 1
		}
		return -1
	},
	"sawtooth": func(p float64, _ *rand.Rand) float64 {
		return 2*(p-math.Floor(p)) - 1
	},
	"constant": func(float64, *rand.Rand) float64 {
		return 1
	},
	"noise": func(_ float64, rnd *rand.Rand) float64 {
		return 2*rnd.Float64() - 1
	},
}

// generator produces the samples of one input channel.
type generator struct {
	cfg   SignalConfig
	rate  float64
	shape shape
	rnd   *rand.Rand
}

func newGenerator(cfg SignalConfig, rate float64) *generator {
	return &generator{
		cfg:   cfg,
		rate:  rate,
		shape: shapes[cfg.Shape],
		rnd:   rand.New(rand.NewSource(cfg.Seed)),
	}
}

// samples returns n samples starting at tick first.
func (g *generator) samples(first uint64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		t := float64(first+uint64(i)) / g.rate
		res[i] = g.cfg.Offset + g.cfg.Amplitude*g.shape(t*g.cfg.Frequency, g.rnd)
	}
	return res
}
