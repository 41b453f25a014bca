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

package softwarechannel

import (
	"testing"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannels(h *fakeHost) *PluginChannels {
	return newPluginChannels(&countingWriter{host: h, samples: (&sdk.DiscardMetricFactory{}).NewCounter("samples")})
}

func TestPluginChannelsAllocation(t *testing.T) {
	p := newTestChannels(newFakeHost())
	a := p.Add()
	b := p.Add()
	assert.Equal(t, telegram.LocalID(0), a.LocalID())
	assert.Equal(t, telegram.LocalID(1), b.LocalID())

	c, err := p.AddWithID(5)
	require.NoError(t, err)
	assert.Equal(t, property.ChannelID(5), c.ChannelID())
	_, err = p.AddWithID(5)
	assert.ErrorIs(t, err, errDuplicateID)
	_, err = p.AddWithID(telegram.InvalidLocalID)
	assert.ErrorIs(t, err, errInvalidID)

	// ids in use are skipped
	p.next = 5
	assert.Equal(t, telegram.LocalID(6), p.Add().LocalID())
	assert.Equal(t, 4, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, telegram.LocalID(0), p.Add().LocalID())
}

func TestPluginChannelsRemove(t *testing.T) {
	p := newTestChannels(newFakeHost())
	root := p.Add()
	child := p.Add().SetParent(root)
	grandChild := p.Add().SetParent(child)
	other := p.Add()

	assert.Same(t, root, child.Parent())
	assert.Nil(t, root.Parent())

	removed := p.Remove(child.LocalID())
	assert.ElementsMatch(t, []telegram.LocalID{child.LocalID(), grandChild.LocalID()}, removed)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []*PluginChannel{root, other}, p.Channels())
	assert.Nil(t, p.Remove(42))
}

func TestPluginChannelsTelegrams(t *testing.T) {
	p := newTestChannels(newFakeHost())
	root := p.Add().
		SetDefaultName("Sum").
		SetDomain("math").
		SetDeletable(true).
		SetDataFormat(telegram.SyncScalar(telegram.FormatDouble)).
		SetSimpleTimebase(1000)
	gain := NewNumberProperty(1, "")
	gain.SetRange(0, 100)
	root.AddProperty("Gain", gain).AddProperty("Enabled", NewBoolProperty(true))
	child := p.Add().SetDefaultName("Sum/2").SetParent(root).SetValid(false)
	p.SetTopology(telegram.ChannelGroupInfo{Name: "Math", Children: []telegram.ChannelGroupInfo{
		{LocalID: telegram.ParentID(root.LocalID())},
	}})

	ut := p.UpdateChannelsTelegram()
	doc, err := ut.Generate()
	require.NoError(t, err)

	var back telegram.UpdateChannelsTelegram
	require.NoError(t, back.Parse(doc))
	assert.True(t, ut.Equal(&back))

	info, ok := back.Channel(child.LocalID())
	require.True(t, ok)
	assert.Equal(t, telegram.ParentID(root.LocalID()), info.Parent)
	assert.False(t, info.Valid)

	info, _ = back.Channel(root.LocalID())
	assert.Equal(t, []string{"Gain", "Enabled"}, info.Config.Properties.Names())
	require.Len(t, info.Config.ConstraintsOf("Gain"), 1)
	require.Len(t, back.Topology, 1)

	ct := p.UpdateConfigTelegram()
	assert.Equal(t, []telegram.LocalID{root.LocalID(), child.LocalID()}, ct.ChannelIDs())
	_, err = ct.Generate()
	require.NoError(t, err)

	// a cycle is reported when publishing
	root.SetParent(child)
	_, err = p.UpdateChannelsTelegram().Generate()
	assert.ErrorIs(t, err, telegram.ErrCyclicDependency)
}

func TestPluginChannelApply(t *testing.T) {
	p := newTestChannels(newFakeHost())
	gain := NewNumberProperty(1, "")
	gain.SetRange(0, 10)
	c := p.Add().AddProperty("Gain", gain)

	changed, unknown, err := c.apply(property.MakeList(
		property.NewFloat("Gain", 4),
		property.NewString("Color", "red"),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"Gain"}, changed)
	assert.Equal(t, []string{"Color"}, unknown)
	assert.Equal(t, 4.0, gain.Value())

	_, _, err = c.apply(property.MakeList(property.NewFloat("Gain", 40)))
	assert.ErrorIs(t, err, ErrInvalidProperty)
	assert.Equal(t, 4.0, gain.Value())

	assert.Panics(t, func() { c.AddProperty("", gain) })
	assert.Panics(t, func() { c.AddProperty("x", nil) })
}

func TestPluginChannelSamples(t *testing.T) {
	h := newFakeHost()
	p := newTestChannels(h)
	c := p.Add()

	require.NoError(t, c.AddSamples(10, []float64{1, 2}))
	require.NoError(t, c.AddTimedSamples([]uint64{20, 25}, []float64{3, 4}))
	assert.Error(t, c.AddTimedSamples([]uint64{30}, []float64{3, 4}))
	assert.Equal(t, []uint64{10, 11, 20, 25}, h.ticks[c.ChannelID()])
	assert.Equal(t, []float64{1, 2, 3, 4}, h.values[c.ChannelID()])

	_, err := c.AddResampled(1, []float64{1})
	assert.Error(t, err)

	c.EnableResampler(10)
	assert.Equal(t, 10.0, c.Timebase().Frequency)
	n, err := c.AddResampled(1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, uint64(9), c.Resampler().SampleCount())
}

// assigningHost gives output channels host ids of its own.
type assigningHost struct {
	*fakeHost
	assigned map[telegram.LocalID]property.ChannelID
}

func (h *assigningHost) OutputChannelID(local telegram.LocalID) (property.ChannelID, bool) {
	id, ok := h.assigned[local]
	return id, ok
}

func TestPluginChannelHostID(t *testing.T) {
	h := &assigningHost{fakeHost: newFakeHost(), assigned: map[telegram.LocalID]property.ChannelID{}}
	p := newPluginChannels(&countingWriter{host: h, samples: (&sdk.DiscardMetricFactory{}).NewCounter("samples")})
	c := p.Add()

	// not published yet
	assert.Equal(t, property.ChannelID(0), c.ChannelID())

	h.assigned[c.LocalID()] = 1000
	assert.Equal(t, property.ChannelID(1000), c.ChannelID())
	require.NoError(t, c.AddSamples(3, []float64{1, 2}))
	require.NoError(t, c.AddTimedSamples([]uint64{7}, []float64{3}))
	assert.Equal(t, []uint64{3, 4, 7}, h.ticks[1000])
	assert.Empty(t, h.ticks[0])
}
