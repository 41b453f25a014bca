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

// PluginChannel is an output channel of a software channel instance.
// Setters return the channel so that calls can be chained.
type PluginChannel struct {
	owner     *PluginChannels
	info      telegram.PluginChannelInfo
	names     []string
	props     map[string]EditableProperty
	resampler *stream.Resampler
}

func newPluginChannel(owner *PluginChannels, id telegram.LocalID) *PluginChannel {
	return &PluginChannel{
		owner: owner,
		info: telegram.PluginChannelInfo{
			LocalID:    id,
			Parent:     telegram.NoParent,
			Valid:      true,
			DataFormat: telegram.InvalidDataFormat,
			Timebase:   timebase.NewNone(),
		},
		props: make(map[string]EditableProperty),
	}
}

func (c *PluginChannel) LocalID() telegram.LocalID { return c.info.LocalID }

// ChannelID returns the id used to address the channel in sdk.Host calls:
// the id the host assigned to it, or its local id while there is none.
func (c *PluginChannel) ChannelID() property.ChannelID {
	if r, ok := c.owner.writer.(sdk.OutputResolver); ok {
		if id, ok := r.OutputChannelID(c.info.LocalID); ok {
			return id
		}
	}
	return property.ChannelID(c.info.LocalID)
}

func (c *PluginChannel) DefaultName() string { return c.info.DefaultName }

func (c *PluginChannel) SetDefaultName(name string) *PluginChannel {
	c.info.DefaultName = name
	return c
}

func (c *PluginChannel) SetDomain(domain string) *PluginChannel {
	c.info.Domain = domain
	return c
}

func (c *PluginChannel) SetDeletable(deletable bool) *PluginChannel {
	c.info.Deletable = deletable
	return c
}

// Valid returns false if the channel cannot currently produce data, for
// instance because one of its inputs is missing.
func (c *PluginChannel) Valid() bool { return c.info.Valid }

func (c *PluginChannel) SetValid(valid bool) *PluginChannel {
	c.info.Valid = valid
	return c
}

func (c *PluginChannel) DataFormat() telegram.DataFormat { return c.info.DataFormat }

func (c *PluginChannel) SetDataFormat(f telegram.DataFormat) *PluginChannel {
	c.info.DataFormat = f
	return c
}

func (c *PluginChannel) Timebase() timebase.Timebase { return c.info.Timebase }

func (c *PluginChannel) SetTimebase(tb timebase.Timebase) *PluginChannel {
	c.info.Timebase = tb
	return c
}

// SetSimpleTimebase sets a timebase of the given frequency without offset.
func (c *PluginChannel) SetSimpleTimebase(freq float64) *PluginChannel {
	return c.SetTimebase(timebase.NewSimple(freq))
}

// Parent returns the parent of the channel, or nil for a root channel.
func (c *PluginChannel) Parent() *PluginChannel {
	if !c.info.Parent.Valid {
		return nil
	}
	p, _ := c.owner.Channel(c.info.Parent.ID)
	return p
}

// SetParent moves the channel below parent; a nil parent makes it a root
// channel. Cycles are reported when the channels are published.
func (c *PluginChannel) SetParent(parent *PluginChannel) *PluginChannel {
	if parent == nil {
		c.info.Parent = telegram.NoParent
	} else {
		c.info.Parent = telegram.ParentID(parent.LocalID())
	}
	return c
}

// AddProperty binds an editable configuration item to the channel. Adding
// a name twice replaces the first item.
func (c *PluginChannel) AddProperty(name string, p EditableProperty) *PluginChannel {
	if name == "" || p == nil {
		panic("oxygen-sdk-go/sdk/plugins/softwarechannel.AddProperty: name and property must be set")
	}
	if _, ok := c.props[name]; !ok {
		c.names = append(c.names, name)
	}
	c.props[name] = p
	return c
}

// Property returns the item bound under name.
func (c *PluginChannel) Property(name string) (EditableProperty, bool) {
	p, ok := c.props[name]
	return p, ok
}

// Config returns the current configuration of the channel: the value and
// the constraints of every item, in the order the items were added.
func (c *PluginChannel) Config() telegram.ChannelConfig {
	var cfg telegram.ChannelConfig
	for _, name := range c.names {
		p := c.props[name].Property()
		p.SetName(name)
		cfg.SetProperty(p)
		if cons := c.props[name].Constraints(); len(cons) > 0 {
			cfg.AddConstraint(name, cons...)
		}
	}
	return cfg
}

// Values returns the current value of every item.
func (c *PluginChannel) Values() property.List {
	cfg := c.Config()
	return cfg.Properties
}

// apply updates the items named in changes. Unknown names are returned so
// that the caller can report them.
func (c *PluginChannel) apply(changes property.List) (changed, unknown []string, err error) {
	for _, p := range changes.Properties() {
		item, ok := c.props[p.Name()]
		if !ok {
			unknown = append(unknown, p.Name())
			continue
		}
		if err := item.Update(p); err != nil {
			return changed, unknown, fmt.Errorf("channel %d, %q: %w", c.LocalID(), p.Name(), err)
		}
		changed = append(changed, p.Name())
	}
	return changed, unknown, nil
}

func (c *PluginChannel) channelInfo() telegram.PluginChannelInfo {
	info := c.info
	info.Config = c.Config()
	return info
}

// EnableResampler makes the channel emit its samples on the grid of the
// given rate, which also becomes the channel timebase.
func (c *PluginChannel) EnableResampler(rate float64) *PluginChannel {
	c.resampler = stream.NewResampler(rate)
	return c.SetSimpleTimebase(rate)
}

// Resampler returns the resampler of the channel, or nil.
func (c *PluginChannel) Resampler() *stream.Resampler { return c.resampler }

// AddSamples writes equidistant samples starting at startTick.
func (c *PluginChannel) AddSamples(startTick uint64, values []float64) error {
	return c.owner.writer.AddContiguousSamples(c.ChannelID(), startTick, values)
}

// AddTimedSamples writes samples at explicit ticks.
func (c *PluginChannel) AddTimedSamples(ticks []uint64, values []float64) error {
	if len(ticks) != len(values) {
		return fmt.Errorf("channel %d: %d ticks for %d values", c.LocalID(), len(ticks), len(values))
	}
	return c.owner.writer.AddTimedSamples(c.ChannelID(), ticks, values)
}

// AddResampled feeds a block ending at lastTimestamp seconds through the
// resampler of the channel. It returns the number of samples written.
func (c *PluginChannel) AddResampled(lastTimestamp float64, data []float64) (int, error) {
	if c.resampler == nil {
		return 0, fmt.Errorf("channel %d: resampler not enabled", c.LocalID())
	}
	return c.resampler.AddSamples(c.owner.writer, c.ChannelID(), lastTimestamp, data)
}
