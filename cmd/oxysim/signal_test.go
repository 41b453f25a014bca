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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorShapes(t *testing.T) {
	sine := newGenerator(SignalConfig{Shape: "sine", Amplitude: 2, Frequency: 1, Offset: 1}, 4)
	got := sine.samples(0, 4)
	want := []float64{1, 3, 1, -1}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}

	square := newGenerator(SignalConfig{Shape: "square", Amplitude: 1, Frequency: 1}, 4)
	assert.Equal(t, []float64{1, 1, -1, -1}, square.samples(4, 4))

	saw := newGenerator(SignalConfig{Shape: "sawtooth", Amplitude: 1, Frequency: 1}, 4)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5}, saw.samples(0, 4))

	constant := newGenerator(SignalConfig{Shape: "constant", Amplitude: 3}, 10)
	assert.Equal(t, []float64{3, 3}, constant.samples(100, 2))
}

func TestGeneratorNoiseIsSeeded(t *testing.T) {
	cfg := SignalConfig{Shape: "noise", Amplitude: 1, Seed: 42}
	a := newGenerator(cfg, 100).samples(0, 50)
	b := newGenerator(cfg, 100).samples(0, 50)
	require.Equal(t, a, b)
	for _, v := range a {
		assert.False(t, math.IsNaN(v))
		assert.LessOrEqual(t, math.Abs(v), 1.0)
	}
}
