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
	"github.com/dewetron/oxygen-sdk-go/pkg/stream"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

// ProcessContext is handed to Software.Process for one processing window.
// Input data is fetched from the host on first use and cached for the
// duration of the call.
type ProcessContext struct {
	inst   *Instance
	Start  timebase.Timestamp
	End    timebase.Timestamp
	inputs map[property.ChannelID]*stream.Channel
}

func newProcessContext(inst *Instance, start, end timebase.Timestamp) *ProcessContext {
	return &ProcessContext{
		inst:   inst,
		Start:  start,
		End:    end,
		inputs: make(map[property.ChannelID]*stream.Channel),
	}
}

// Instance returns the instance being processed.
func (c *ProcessContext) Instance() *Instance { return c.inst }

// Duration returns the length of the window in seconds.
func (c *ProcessContext) Duration() float64 {
	return c.End.Seconds() - c.Start.Seconds()
}

// Input returns the samples of input channel id within the window.
func (c *ProcessContext) Input(id property.ChannelID) (*stream.Channel, error) {
	if ch, ok := c.inputs[id]; ok {
		return ch, nil
	}
	info, err := c.inst.host.ChannelInfo(id)
	if err != nil {
		return nil, err
	}
	blocks, err := c.inst.host.ReadSamples(id, c.Start, c.End)
	if err != nil {
		return nil, fmt.Errorf("channel %d: %w", id, err)
	}
	ch := stream.NewChannel(id, info.Format, info.Timebase.Frequency)
	for _, b := range blocks {
		if err := ch.Append(b); err != nil {
			return nil, err
		}
	}
	c.inputs[id] = ch
	return ch, nil
}

// Reader returns a stream.Reader walking the given inputs in lockstep, the
// first one being the reference.
func (c *ProcessContext) Reader(ids ...property.ChannelID) (*stream.Reader, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("reader: no input channel")
	}
	channels := make([]*stream.Channel, 0, len(ids))
	for _, id := range ids {
		ch, err := c.Input(id)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return stream.NewReader(channels...), nil
}
