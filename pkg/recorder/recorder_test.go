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

package recorder

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Recorder {
	r, err := Open(Config{Path: filepath.Join(t.TempDir(), "db", "run.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecorderRequiresRun(t *testing.T) {
	r := open(t)
	assert.ErrorIs(t, r.WriteSamples(0, []uint64{1}, []float64{1}), errNoRun)
	assert.ErrorIs(t, r.WriteTelegram("AddMarkers", "<AddMarkers/>"), errNoRun)
	assert.Zero(t, r.Run())

	_, err := Open(Config{})
	assert.Error(t, err)
}

func TestRecorderSamples(t *testing.T) {
	ctx := context.Background()
	r := open(t)
	run, err := r.StartRun(ctx, "sum")
	require.NoError(t, err)
	assert.Equal(t, run, r.Run())

	require.NoError(t, r.WriteSamples(1, []uint64{2, 0, 1}, []float64{3, 1, 2}))
	require.NoError(t, r.WriteSamples(2, []uint64{0, 1}, []float64{math.NaN(), 10}))
	assert.Error(t, r.WriteSamples(1, []uint64{5}, nil))
	assert.Error(t, r.WriteSamples(1, []uint64{math.MaxUint64}, []float64{1}))

	samples, err := r.Samples(ctx, run, 1)
	require.NoError(t, err)
	assert.Equal(t, []Sample{{0, 1}, {1, 2}, {2, 3}}, samples)

	samples, err = r.Samples(ctx, run, 2)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.True(t, math.IsNaN(samples[0].Value))

	summary, err := r.Summary(ctx, run)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, ChannelSummary{Channel: 1, Count: 3, Min: 1, Max: 3, Mean: 2}, summary[0])
	assert.Equal(t, int64(2), summary[1].Count)
	assert.Equal(t, 10.0, summary[1].Mean)

	// runs are separate
	next, err := r.StartRun(ctx, "sum")
	require.NoError(t, err)
	assert.NotEqual(t, run, next)
	samples, err = r.Samples(ctx, next, 1)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestRecorderTelegrams(t *testing.T) {
	ctx := context.Background()
	r := open(t)
	run, err := r.StartRun(ctx, "sum")
	require.NoError(t, err)
	require.NoError(t, r.WriteTelegram("UpdatePluginChannels", "<UpdatePluginChannels/>"))
	require.NoError(t, r.WriteTelegram("UpdateConfig", "<UpdateConfig/>"))

	telegrams, err := r.Telegrams(ctx, run)
	require.NoError(t, err)
	require.Len(t, telegrams, 2)
	assert.Equal(t, Telegram{Seq: 1, Root: "UpdatePluginChannels", Doc: "<UpdatePluginChannels/>"}, telegrams[0])
	assert.Equal(t, int64(2), telegrams[1].Seq)
}
