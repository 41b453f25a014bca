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

package stream

import (
	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

// SampleWriter receives contiguous SYNC samples for an output channel.
// values is reused after the call returns.
type SampleWriter interface {
	AddContiguousSamples(channel property.ChannelID, startTick uint64, values []float64) error
}

// Resampler re-emits input blocks of unknown exact rate on the grid of a
// nominal output rate.
//
// Each input block comes with the elapsed time at its end. The samples of a
// block are taken as evenly spaced over the time since the previous block,
// and output tick n (at n / rate seconds) is linearly interpolated from
// them. The number of output samples therefore follows elapsed time, not
// the number of input samples, which absorbs drift between the true and
// nominal rates. The output tick at the very end of the covered time is
// held back until the next block, so that it can be interpolated across
// the block boundary.
//
// A non-positive rate produces no output. A block whose timestamp does not
// advance is ignored.
type Resampler struct {
	rate float64

	primed bool
	// lastTimestamp is the end of the last accepted block.
	lastTimestamp float64
	// count is the number of samples emitted so far, which is also the
	// tick of the next sample.
	count uint64
	// prev is a copy of the previous input block; its sample i lies at
	// prevStart + i*prevSpacing.
	prev        []float64
	prevStart   float64
	prevSpacing float64

	out []float64
}

// NewResampler returns a resampler for the given output rate in Hz.
func NewResampler(rate float64) *Resampler {
	return &Resampler{rate: rate}
}

// Rate returns the nominal output rate.
func (r *Resampler) Rate() float64 {
	return r.rate
}

// SampleCount returns the number of samples emitted since the last Reset.
func (r *Resampler) SampleCount() uint64 {
	return r.count
}

// Reset returns the resampler to its initial state.
func (r *Resampler) Reset() {
	r.primed = false
	r.lastTimestamp = 0
	r.count = 0
	r.prev = r.prev[:0]
	r.prevStart = 0
	r.prevSpacing = 0
	r.out = r.out[:0]
}

// AddSamples resamples data, whose last sample ends lastTimestamp seconds
// after the acquisition start, and writes the new output samples of channel
// to w. It returns the number of samples written.
func (r *Resampler) AddSamples(w SampleWriter, channel property.ChannelID, lastTimestamp float64, data []float64) (int, error) {
	if !(r.rate > 0) || len(data) == 0 || lastTimestamp <= r.lastTimestamp {
		return 0, nil
	}
	start := r.lastTimestamp
	spacing := (lastTimestamp - start) / float64(len(data))

	end := timebase.TimeToTickAtOrBefore(lastTimestamp, r.rate)
	r.out = r.out[:0]
	for tick := r.count; tick+1 < end; tick++ {
		r.out = append(r.out, r.interpolate(timebase.TickToTime(tick, r.rate), start, spacing, data))
	}

	r.primed = true
	r.lastTimestamp = lastTimestamp
	r.prev = append(r.prev[:0], data...)
	r.prevStart = start
	r.prevSpacing = spacing

	if len(r.out) == 0 {
		return 0, nil
	}
	if err := w.AddContiguousSamples(channel, r.count, r.out); err != nil {
		return 0, err
	}
	r.count += uint64(len(r.out))
	return len(r.out), nil
}

// interpolate returns the value at time t from the block whose sample i lies
// at start + i*spacing. Times before the block fall back to the previous
// block, times past its end hold the last sample.
func (r *Resampler) interpolate(t, start, spacing float64, data []float64) float64 {
	pos := (t - start) / spacing
	if pos >= 0 {
		return lerp(data, pos)
	}
	if !r.primed || len(r.prev) == 0 {
		return data[0]
	}
	prevPos := (t - r.prevStart) / r.prevSpacing
	last := len(r.prev) - 1
	if prevPos < float64(last) {
		return lerp(r.prev, prevPos)
	}
	// between the last sample of the previous block and the first of this one
	tailTime := r.prevStart + float64(last)*r.prevSpacing
	f := (t - tailTime) / (start - tailTime)
	return r.prev[last] + f*(data[0]-r.prev[last])
}

// lerp interpolates data at fractional index pos, clamping to its ends.
func lerp(data []float64, pos float64) float64 {
	if pos <= 0 {
		return data[0]
	}
	i := int(pos)
	if i >= len(data)-1 {
		return data[len(data)-1]
	}
	f := pos - float64(i)
	return data[i] + f*(data[i+1]-data[i])
}
