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
	"errors"
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
)

var (
	errDuplicateID = errors.New("local id already in use")
	errInvalidID   = errors.New("invalid local id")
)

// sampleWriter is the part of sdk.Host output channels write to.
type sampleWriter interface {
	AddContiguousSamples(channel property.ChannelID, startTick uint64, values []float64) error
	AddTimedSamples(channel property.ChannelID, ticks []uint64, values []float64) error
}

// countingWriter forwards samples to the host and counts them.
type countingWriter struct {
	host    sdk.Host
	samples sdk.Counter
}

func (w *countingWriter) AddContiguousSamples(channel property.ChannelID, startTick uint64, values []float64) error {
	if err := w.host.AddContiguousSamples(channel, startTick, values); err != nil {
		return err
	}
	w.samples.Add(float64(len(values)))
	return nil
}

func (w *countingWriter) AddTimedSamples(channel property.ChannelID, ticks []uint64, values []float64) error {
	if err := w.host.AddTimedSamples(channel, ticks, values); err != nil {
		return err
	}
	w.samples.Add(float64(len(values)))
	return nil
}

func (w *countingWriter) OutputChannelID(local telegram.LocalID) (property.ChannelID, bool) {
	if r, ok := w.host.(sdk.OutputResolver); ok {
		return r.OutputChannelID(local)
	}
	return 0, false
}

// PluginChannels is the set of output channels of an instance. Local ids
// are allocated in increasing order starting from 0, and are not reused
// until Clear is called.
type PluginChannels struct {
	writer   sampleWriter
	next     telegram.LocalID
	order    []telegram.LocalID
	channels map[telegram.LocalID]*PluginChannel
	topology []telegram.ChannelGroupInfo
}

func newPluginChannels(w sampleWriter) *PluginChannels {
	return &PluginChannels{
		writer:   w,
		channels: make(map[telegram.LocalID]*PluginChannel),
	}
}

// Add creates a root channel with the next free local id.
func (p *PluginChannels) Add() *PluginChannel {
	for {
		id := p.next
		p.next++
		if _, ok := p.channels[id]; !ok {
			return p.add(id)
		}
	}
}

// AddWithID creates a root channel with the given local id.
func (p *PluginChannels) AddWithID(id telegram.LocalID) (*PluginChannel, error) {
	if id == telegram.InvalidLocalID {
		return nil, fmt.Errorf("%w: %d", errInvalidID, id)
	}
	if _, ok := p.channels[id]; ok {
		return nil, fmt.Errorf("%w: %d", errDuplicateID, id)
	}
	return p.add(id), nil
}

func (p *PluginChannels) add(id telegram.LocalID) *PluginChannel {
	c := newPluginChannel(p, id)
	p.order = append(p.order, id)
	p.channels[id] = c
	return c
}

// Channel returns the channel with the given local id.
func (p *PluginChannels) Channel(id telegram.LocalID) (*PluginChannel, bool) {
	c, ok := p.channels[id]
	return c, ok
}

// Channels returns all channels in creation order.
func (p *PluginChannels) Channels() []*PluginChannel {
	res := make([]*PluginChannel, 0, len(p.order))
	for _, id := range p.order {
		res = append(res, p.channels[id])
	}
	return res
}

// Len returns the number of channels.
func (p *PluginChannels) Len() int {
	return len(p.order)
}

// Remove deletes a channel and all its descendants. It returns the ids of
// the removed channels.
func (p *PluginChannels) Remove(id telegram.LocalID) []telegram.LocalID {
	if _, ok := p.channels[id]; !ok {
		return nil
	}
	removed := map[telegram.LocalID]bool{id: true}
	// repeat until no channel has a removed parent
	for changed := true; changed; {
		changed = false
		for _, cid := range p.order {
			par := p.channels[cid].info.Parent
			if !removed[cid] && par.Valid && removed[par.ID] {
				removed[cid] = true
				changed = true
			}
		}
	}
	var res []telegram.LocalID
	order := p.order[:0:0]
	for _, cid := range p.order {
		if removed[cid] {
			res = append(res, cid)
			delete(p.channels, cid)
			continue
		}
		order = append(order, cid)
	}
	p.order = order
	return res
}

// Clear removes every channel and restarts id allocation from 0.
func (p *PluginChannels) Clear() {
	p.order = nil
	p.channels = make(map[telegram.LocalID]*PluginChannel)
	p.topology = nil
	p.next = 0
}

// SetTopology sets the channel list tree shown by the host.
func (p *PluginChannels) SetTopology(groups ...telegram.ChannelGroupInfo) {
	p.topology = groups
}

// UpdateChannelsTelegram describes every channel with its current
// configuration.
func (p *PluginChannels) UpdateChannelsTelegram() *telegram.UpdateChannelsTelegram {
	t := &telegram.UpdateChannelsTelegram{Topology: p.topology}
	for _, c := range p.Channels() {
		*t.AddChannel(c.LocalID()) = c.channelInfo()
	}
	return t
}

// UpdateConfigTelegram holds the configuration of every channel.
func (p *PluginChannels) UpdateConfigTelegram() *telegram.UpdateConfigTelegram {
	t := &telegram.UpdateConfigTelegram{}
	for _, c := range p.Channels() {
		*t.AddChannel(c.LocalID()) = c.Config()
	}
	return t
}

// Synchronize publishes the channels and their configuration to host.
func (p *PluginChannels) Synchronize(host sdk.Host) error {
	if err := host.Send(p.UpdateChannelsTelegram()); err != nil {
		return err
	}
	return host.Send(p.UpdateConfigTelegram())
}
