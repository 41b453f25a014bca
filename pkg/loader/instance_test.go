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

package loader

import (
	"context"
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk/plugins/softwarechannel"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scale writes its input multiplied by Factor.
type scale struct {
	input  *softwarechannel.ChannelIDProperty
	factor *softwarechannel.NumberProperty
	out    *softwarechannel.PluginChannel
}

func (s *scale) Create(inst *softwarechannel.Instance, req *telegram.CreateChannelsTelegram) error {
	in := property.InvalidChannelID
	if len(req.Inputs) > 0 {
		in = req.Inputs[0]
	}
	s.input = softwarechannel.NewChannelIDProperty(in)
	s.factor = softwarechannel.NewNumberProperty(2, "")
	s.out = inst.Channels().Add().
		SetDefaultName("Scaled").
		SetDataFormat(telegram.SyncScalar(telegram.FormatDouble)).
		SetSimpleTimebase(100).
		AddProperty("Input", s.input).
		AddProperty("Factor", s.factor).
		SetValid(s.input.IsSet())
	return nil
}

func (s *scale) Process(ctx *softwarechannel.ProcessContext) error {
	r, err := ctx.Reader(s.input.Value())
	if err != nil {
		return err
	}
	if !r.Valid() {
		return nil
	}
	first := r.Timestamp().Ticks
	var out []float64
	for ; r.Valid(); r.Next() {
		out = append(out, r.Value(0)*s.factor.Value())
	}
	return s.out.AddSamples(first, out)
}

func loadScale(t *testing.T) *Plugin {
	p := softwarechannel.NewPlugin(plugins.Info{
		Name:    "Scale",
		UUID:    uuid.New(),
		Version: "1.0.0",
	}, func(string) (softwarechannel.Software, error) {
		return &scale{}, nil
	})
	lp, err := Load(p)
	require.NoError(t, err)
	require.NoError(t, lp.Init(""))
	t.Cleanup(lp.Unload)
	return lp
}

func ramp(from, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(from + i)
	}
	return res
}

func TestAcquire(t *testing.T) {
	lp := loadScale(t)
	h := NewMemoryHost()
	require.NoError(t, h.AddInput(doubleInput(1, 100)))
	inst, err := lp.CreateInstance(h)
	require.NoError(t, err)

	require.NoError(t, inst.Create(1))
	info, ok := h.Channels().Channel(0)
	require.True(t, ok)
	assert.True(t, info.Valid)
	require.NoError(t, inst.SetItem(0, property.NewFloat("Factor", 3)))

	feed := func(host *MemoryHost, start, end timebase.Timestamp) error {
		return host.AppendInput(1, start.Ticks, ramp(int(start.Ticks), int(end.Ticks-start.Ticks)))
	}
	require.NoError(t, inst.Acquire(context.Background(), 100, 10, 3, feed))

	s, ok := inst.Samples(0)
	require.True(t, ok)
	require.Len(t, s.Values, 30)
	assert.Equal(t, uint64(0), s.Ticks[0])
	assert.Equal(t, uint64(29), s.Ticks[29])
	assert.Equal(t, 87.0, s.Values[29])
	// the host keeps them under the id it assigned
	_, ok = h.Samples(OutputChannelBase)
	assert.True(t, ok)
	_, ok = h.Samples(0)
	assert.False(t, ok)

	// the acquisition was stopped
	assert.Error(t, inst.Process(zeroTS(), zeroTS()))
}

func TestAcquireCancelled(t *testing.T) {
	lp := loadScale(t)
	h := NewMemoryHost()
	require.NoError(t, h.AddInput(doubleInput(1, 100)))
	inst, err := lp.CreateInstance(h)
	require.NoError(t, err)
	require.NoError(t, inst.Create(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, inst.Acquire(ctx, 100, 10, 3, nil), context.Canceled)
	assert.Error(t, inst.Acquire(context.Background(), 0, 10, 3, nil))

	// missing input data is not an error, the window is empty
	require.NoError(t, inst.Acquire(context.Background(), 100, 10, 1, nil))
	_, ok := inst.Samples(0)
	assert.False(t, ok)
}

func TestSetupRoundTrip(t *testing.T) {
	lp := loadScale(t)
	a, err := lp.CreateInstance(NewMemoryHost())
	require.NoError(t, err)
	require.NoError(t, a.Create(5))
	update := &telegram.UpdateConfigTelegram{}
	update.AddChannel(0).SetProperty(property.NewFloat("Factor", -1))
	require.NoError(t, a.Configure(update))
	setup, err := a.SaveSetup()
	require.NoError(t, err)

	h := NewMemoryHost()
	b, err := lp.CreateInstance(h)
	require.NoError(t, err)
	require.NoError(t, b.LoadSetup(setup))
	cfg, ok := h.Config().Channel(0)
	require.True(t, ok)
	factor, ok := cfg.Property("Factor")
	require.True(t, ok)
	assert.Equal(t, -1.0, factor.ScalarValue().Value)
	input, ok := cfg.Property("Input")
	require.True(t, ok)
	assert.Equal(t, property.ChannelID(5), input.ChannelIDValue())
	assert.Equal(t, 2, lp.Instances())
}
