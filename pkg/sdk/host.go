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

package sdk

import (
	"sync"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/stream"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

// ChannelInfo describes a channel known to the host.
type ChannelInfo struct {
	ID       property.ChannelID
	Name     string
	Format   telegram.DataFormat
	Timebase timebase.Timebase
}

// Host is the client side of the interface the host application offers to
// plugin instances. All methods are invoked from within the message
// dispatch of an instance and must not be retained for use after the
// instance has been deleted.
//
// Input channels are addressed by the id the host assigned them. Output
// channels are addressed by the id the host assigned them once they were
// published, which a host reports through OutputResolver. A host that does
// not implement OutputResolver addresses output channels by their local id
// widened to a property.ChannelID.
type Host interface {
	// AddContiguousSamples appends equidistant samples to an output
	// channel, the first of which is at startTick of the channel timebase.
	stream.SampleWriter
	//
	// AddTimedSamples appends samples with explicit ticks to an output
	// channel. len(ticks) must equal len(values).
	AddTimedSamples(channel property.ChannelID, ticks []uint64, values []float64) error
	//
	// ChannelInfo returns the description of a channel. Returns an error
	// wrapping ErrUnknownChannel for channels the host does not know.
	ChannelInfo(channel property.ChannelID) (ChannelInfo, error)
	//
	// ReadSamples returns the data blocks of an input channel overlapping
	// the time window [start, end).
	ReadSamples(channel property.ChannelID, start, end timebase.Timestamp) ([]*stream.DataBlock, error)
	//
	// Query asks the host for a named value, such as a setting or a
	// channel property. The returned Value must be closed by the caller.
	Query(key string) (*Value, error)
	//
	// Send delivers a telegram, such as an UpdateChannels or an AddMarkers
	// telegram, to the host.
	Send(t telegram.Telegram) error
}

// OutputResolver is implemented by hosts that assign their own channel ids
// to the output channels an instance publishes with an UpdateChannels
// telegram.
type OutputResolver interface {
	// OutputChannelID returns the host id of output channel local, or false
	// if the host has not assigned one yet.
	OutputChannelID(local telegram.LocalID) (property.ChannelID, bool)
}

// Value is a resource owned by the host and borrowed by a plugin. It stays
// valid until Close is called; Close must be called exactly once for every
// Value obtained, and further calls are no-ops.
type Value struct {
	m       sync.Mutex
	text    string
	release func()
	closed  bool
}

// NewValue returns a Value holding text. The release function, if not nil,
// is invoked by the first call to Close.
func NewValue(text string, release func()) *Value {
	return &Value{text: text, release: release}
}

// Text returns the content of the value, or ErrClosed if the value has
// already been released.
func (v *Value) Text() (string, error) {
	v.m.Lock()
	defer v.m.Unlock()
	if v.closed {
		return "", ErrClosed
	}
	return v.text, nil
}

// Close releases the value back to the host.
func (v *Value) Close() error {
	v.m.Lock()
	defer v.m.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true
	if v.release != nil {
		v.release()
	}
	return nil
}

// QueryText is a convenience wrapper for Host.Query that reads the value
// and releases it before returning.
func QueryText(h Host, key string) (string, error) {
	v, err := h.Query(key)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.Text()
}
