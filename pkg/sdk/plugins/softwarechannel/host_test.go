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
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/stream"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

type fakeHost struct {
	infos   map[property.ChannelID]sdk.ChannelInfo
	inputs  map[property.ChannelID]*stream.Channel
	ticks   map[property.ChannelID][]uint64
	values  map[property.ChannelID][]float64
	sent    []string
	failAdd bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		infos:  make(map[property.ChannelID]sdk.ChannelInfo),
		inputs: make(map[property.ChannelID]*stream.Channel),
		ticks:  make(map[property.ChannelID][]uint64),
		values: make(map[property.ChannelID][]float64),
	}
}

// addInput registers a double SYNC input channel holding values.
func (h *fakeHost) addInput(id property.ChannelID, freq float64, firstTick uint64, values []float64) {
	f := telegram.SyncScalar(telegram.FormatDouble)
	h.infos[id] = sdk.ChannelInfo{ID: id, Name: fmt.Sprintf("AI %d", id), Format: f, Timebase: timebase.NewSimple(freq)}
	ch := stream.NewChannel(id, f, freq)
	if err := ch.AppendSamples(firstTick, values); err != nil {
		panic(err)
	}
	h.inputs[id] = ch
}

func (h *fakeHost) AddContiguousSamples(channel property.ChannelID, startTick uint64, values []float64) error {
	if h.failAdd {
		return fmt.Errorf("channel %d: full", channel)
	}
	for i, v := range values {
		h.ticks[channel] = append(h.ticks[channel], startTick+uint64(i))
		h.values[channel] = append(h.values[channel], v)
	}
	return nil
}

func (h *fakeHost) AddTimedSamples(channel property.ChannelID, ticks []uint64, values []float64) error {
	h.ticks[channel] = append(h.ticks[channel], ticks...)
	h.values[channel] = append(h.values[channel], values...)
	return nil
}

func (h *fakeHost) ChannelInfo(channel property.ChannelID) (sdk.ChannelInfo, error) {
	info, ok := h.infos[channel]
	if !ok {
		return sdk.ChannelInfo{}, fmt.Errorf("%w: %d", sdk.ErrUnknownChannel, channel)
	}
	return info, nil
}

func (h *fakeHost) ReadSamples(channel property.ChannelID, start, end timebase.Timestamp) ([]*stream.DataBlock, error) {
	ch, ok := h.inputs[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %d", sdk.ErrUnknownChannel, channel)
	}
	return ch.Blocks(), nil
}

func (h *fakeHost) Query(key string) (*sdk.Value, error) {
	return sdk.NewValue(key, nil), nil
}

func (h *fakeHost) Send(t telegram.Telegram) error {
	doc, err := t.Generate()
	if err != nil {
		return err
	}
	h.sent = append(h.sent, doc)
	return nil
}

// last parses the last telegram of the given kind sent to the host.
func (h *fakeHost) last(t telegram.Telegram) error {
	for i := len(h.sent) - 1; i >= 0; i-- {
		if err := t.Parse(h.sent[i]); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no %s telegram sent", t.RootName())
}
