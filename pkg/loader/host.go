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
	"fmt"
	"slices"
	"sync"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/sdk"
	"github.com/dewetron/oxygen-sdk-go/pkg/stream"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"go.uber.org/zap"
)

// OutputChannelBase is the host id of the first output channel a
// MemoryHost assigns. It lies above every plugin local id, so local and
// host ids of output channels never coincide.
const OutputChannelBase property.ChannelID = 1 << 32

// Sink receives a copy of everything a plugin emits to a MemoryHost.
type Sink interface {
	WriteSamples(channel property.ChannelID, ticks []uint64, values []float64) error
	WriteTelegram(root, doc string) error
}

// Samples are the samples written to one output channel.
type Samples struct {
	Ticks  []uint64
	Values []float64
}

// SentTelegram is a telegram a plugin sent to the host.
type SentTelegram struct {
	Root string
	Doc  string
}

type input struct {
	info   sdk.ChannelInfo
	stream *stream.Channel
}

// MemoryHost is a sdk.Host keeping the input channels, the samples written
// by the plugin and the telegrams it sent in memory. Output channels get a
// host id from OutputChannelBase on when they are first published; samples
// are stored and forwarded under that id.
type MemoryHost struct {
	m         sync.Mutex
	logger    *zap.Logger
	sink      Sink
	inputs    map[property.ChannelID]*input
	outputs   map[property.ChannelID]*Samples
	assigned  map[telegram.LocalID]property.ChannelID
	locals    map[property.ChannelID]telegram.LocalID
	telegrams []SentTelegram
	channels  *telegram.UpdateChannelsTelegram
	config    *telegram.UpdateConfigTelegram
	markers   []telegram.Marker
	values    map[string]string
	open      int
}

// HostOption configures a MemoryHost.
type HostOption func(*MemoryHost)

// WithHostLogger sets the logger of the host.
func WithHostLogger(l *zap.Logger) HostOption {
	return func(h *MemoryHost) {
		h.logger = l
	}
}

// WithSink copies samples and telegrams to s.
func WithSink(s Sink) HostOption {
	return func(h *MemoryHost) {
		h.sink = s
	}
}

// NewMemoryHost returns an empty host.
func NewMemoryHost(options ...HostOption) *MemoryHost {
	h := &MemoryHost{
		logger:   zap.NewNop(),
		inputs:   make(map[property.ChannelID]*input),
		outputs:  make(map[property.ChannelID]*Samples),
		assigned: make(map[telegram.LocalID]property.ChannelID),
		locals:   make(map[property.ChannelID]telegram.LocalID),
		channels: &telegram.UpdateChannelsTelegram{},
		config:   &telegram.UpdateConfigTelegram{},
		values:   make(map[string]string),
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

// AddInput declares an input channel plugins can read from.
func (h *MemoryHost) AddInput(info sdk.ChannelInfo) error {
	h.m.Lock()
	defer h.m.Unlock()
	if _, ok := h.inputs[info.ID]; ok {
		return fmt.Errorf("input channel %d already exists", info.ID)
	}
	if info.Format.SampleSize() == 0 {
		return fmt.Errorf("input channel %d: %w", info.ID, stream.ErrUnsupportedFormat)
	}
	h.inputs[info.ID] = &input{
		info:   info,
		stream: stream.NewChannel(info.ID, info.Format, info.Timebase.Frequency),
	}
	return nil
}

func (h *MemoryHost) input(id property.ChannelID) (*input, error) {
	in, ok := h.inputs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", sdk.ErrUnknownChannel, id)
	}
	return in, nil
}

// AppendInput appends equidistant samples to an input channel.
func (h *MemoryHost) AppendInput(id property.ChannelID, firstTick uint64, values []float64) error {
	h.m.Lock()
	defer h.m.Unlock()
	in, err := h.input(id)
	if err != nil {
		return err
	}
	return in.stream.AppendSamples(firstTick, values)
}

// AppendTimedInput appends samples at explicit ticks to an input channel.
func (h *MemoryHost) AppendTimedInput(id property.ChannelID, ticks []uint64, values []float64) error {
	h.m.Lock()
	defer h.m.Unlock()
	in, err := h.input(id)
	if err != nil {
		return err
	}
	return in.stream.AppendTimedSamples(ticks, values)
}

// Inputs returns the input channels ordered by id.
func (h *MemoryHost) Inputs() []sdk.ChannelInfo {
	h.m.Lock()
	defer h.m.Unlock()
	res := make([]sdk.ChannelInfo, 0, len(h.inputs))
	for _, in := range h.inputs {
		res = append(res, in.info)
	}
	slices.SortFunc(res, func(a, b sdk.ChannelInfo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return res
}

// SetValue sets the text returned by Query for key.
func (h *MemoryHost) SetValue(key, text string) {
	h.m.Lock()
	defer h.m.Unlock()
	h.values[key] = text
}

// OpenValues returns the number of values returned by Query that have not
// been closed yet.
func (h *MemoryHost) OpenValues() int {
	h.m.Lock()
	defer h.m.Unlock()
	return h.open
}

func (h *MemoryHost) Query(key string) (*sdk.Value, error) {
	h.m.Lock()
	defer h.m.Unlock()
	text, ok := h.values[key]
	if !ok {
		return nil, fmt.Errorf("unknown query %q", key)
	}
	h.open++
	return sdk.NewValue(text, func() {
		h.m.Lock()
		defer h.m.Unlock()
		h.open--
	}), nil
}

func (h *MemoryHost) ChannelInfo(channel property.ChannelID) (sdk.ChannelInfo, error) {
	h.m.Lock()
	defer h.m.Unlock()
	in, err := h.input(channel)
	if err != nil {
		return sdk.ChannelInfo{}, err
	}
	return in.info, nil
}

// ReadSamples returns the samples of an input channel whose tick lies in
// [start, end), both converted to the channel frequency.
func (h *MemoryHost) ReadSamples(channel property.ChannelID, start, end timebase.Timestamp) ([]*stream.DataBlock, error) {
	h.m.Lock()
	defer h.m.Unlock()
	in, err := h.input(channel)
	if err != nil {
		return nil, err
	}
	freq := in.info.Timebase.Frequency
	from, to := start.Convert(freq).Ticks, end.Convert(freq).Ticks
	var res []*stream.DataBlock
	for _, b := range in.stream.Blocks() {
		w, err := window(b, from, to)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", channel, err)
		}
		if w != nil {
			res = append(res, w)
		}
	}
	return res, nil
}

// window returns the part of b within [from, to), or nil.
func window(b *stream.DataBlock, from, to uint64) (*stream.DataBlock, error) {
	if b.Len() == 0 || b.LastTick() < from || b.FirstTick >= to {
		return nil, nil
	}
	var (
		ticks []uint64
		data  []byte
	)
	for i := 0; i < b.Len(); i++ {
		if t := b.Tick(i); t >= from && t < to {
			ticks = append(ticks, t)
			data = append(data, b.Raw(i)...)
		}
	}
	if len(ticks) == 0 {
		return nil, nil
	}
	if b.Ticks == nil {
		return stream.NewSyncBlock(b.Format, ticks[0], data)
	}
	return stream.NewAsyncBlock(b.Format, ticks, data)
}

func (h *MemoryHost) AddContiguousSamples(channel property.ChannelID, startTick uint64, values []float64) error {
	ticks := make([]uint64, len(values))
	for i := range ticks {
		ticks[i] = startTick + uint64(i)
	}
	return h.addSamples(channel, ticks, values)
}

func (h *MemoryHost) AddTimedSamples(channel property.ChannelID, ticks []uint64, values []float64) error {
	if len(ticks) != len(values) {
		return fmt.Errorf("channel %d: %d ticks for %d values", channel, len(ticks), len(values))
	}
	return h.addSamples(channel, slices.Clone(ticks), values)
}

func (h *MemoryHost) addSamples(channel property.ChannelID, ticks []uint64, values []float64) error {
	if len(values) == 0 {
		return nil
	}
	h.m.Lock()
	defer h.m.Unlock()
	if _, ok := h.locals[channel]; !ok {
		h.logger.Warn("samples for an unannounced channel",
			zap.Uint64("channel_id", uint64(channel)),
			zap.Int("samples", len(values)))
	}
	out, ok := h.outputs[channel]
	if !ok {
		out = &Samples{}
		h.outputs[channel] = out
	}
	out.Ticks = append(out.Ticks, ticks...)
	out.Values = append(out.Values, values...)
	if h.sink != nil {
		return h.sink.WriteSamples(channel, ticks, values)
	}
	return nil
}

// Samples returns a copy of the samples written to the output channel with
// host id channel.
func (h *MemoryHost) Samples(channel property.ChannelID) (Samples, bool) {
	h.m.Lock()
	defer h.m.Unlock()
	out, ok := h.outputs[channel]
	if !ok {
		return Samples{}, false
	}
	return Samples{Ticks: slices.Clone(out.Ticks), Values: slices.Clone(out.Values)}, true
}

// OutputChannelID implements sdk.OutputResolver.
func (h *MemoryHost) OutputChannelID(local telegram.LocalID) (property.ChannelID, bool) {
	h.m.Lock()
	defer h.m.Unlock()
	id, ok := h.assigned[local]
	return id, ok
}

// LocalID returns the local id of the output channel with host id channel.
func (h *MemoryHost) LocalID(channel property.ChannelID) (telegram.LocalID, bool) {
	h.m.Lock()
	defer h.m.Unlock()
	local, ok := h.locals[channel]
	return local, ok
}

// Send records t. The last UpdatePluginChannels and UpdateConfig telegrams
// and every marker are also kept in decoded form.
func (h *MemoryHost) Send(t telegram.Telegram) error {
	doc, err := t.Generate()
	if err != nil {
		return fmt.Errorf("%s: %w", t.RootName(), err)
	}
	h.m.Lock()
	defer h.m.Unlock()
	switch t.(type) {
	case *telegram.UpdateChannelsTelegram:
		var c telegram.UpdateChannelsTelegram
		if err := c.Parse(doc); err != nil {
			return err
		}
		h.channels = &c
		for _, info := range c.Channels() {
			if _, ok := h.assigned[info.LocalID]; !ok {
				id := OutputChannelBase + property.ChannelID(len(h.assigned))
				h.assigned[info.LocalID] = id
				h.locals[id] = info.LocalID
			}
		}
	case *telegram.UpdateConfigTelegram:
		var c telegram.UpdateConfigTelegram
		if err := c.Parse(doc); err != nil {
			return err
		}
		h.config = &c
	case *telegram.AddMarkersTelegram:
		var m telegram.AddMarkersTelegram
		if err := m.Parse(doc); err != nil {
			return err
		}
		h.markers = append(h.markers, m.Markers...)
	default:
		h.logger.Debug("telegram", zap.String("root", t.RootName()))
	}
	h.telegrams = append(h.telegrams, SentTelegram{Root: t.RootName(), Doc: doc})
	if h.sink != nil {
		return h.sink.WriteTelegram(t.RootName(), doc)
	}
	return nil
}

// Telegrams returns every telegram sent so far.
func (h *MemoryHost) Telegrams() []SentTelegram {
	h.m.Lock()
	defer h.m.Unlock()
	return slices.Clone(h.telegrams)
}

// Channels returns the output channels last announced by the plugin.
func (h *MemoryHost) Channels() *telegram.UpdateChannelsTelegram {
	h.m.Lock()
	defer h.m.Unlock()
	return h.channels
}

// Config returns the configuration last announced by the plugin.
func (h *MemoryHost) Config() *telegram.UpdateConfigTelegram {
	h.m.Lock()
	defer h.m.Unlock()
	return h.config
}

// Markers returns the markers placed so far.
func (h *MemoryHost) Markers() []telegram.Marker {
	h.m.Lock()
	defer h.m.Unlock()
	return slices.Clone(h.markers)
}
