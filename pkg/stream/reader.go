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
	"math"

	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

// Reader walks several channels in lockstep. The first channel is the
// reference: the reader visits each of its samples, and every other channel
// reports its latest sample at or before the reference timestamp (sample
// and hold). A channel without such a sample reports NaN.
type Reader struct {
	ref    *Iterator
	others []*Iterator
	held   []float64
}

// NewReader returns a reader over channels. It panics if no channel is given.
func NewReader(channels ...*Channel) *Reader {
	if len(channels) == 0 {
		panic("oxygen-sdk-go/stream.NewReader: at least one channel is required")
	}
	r := &Reader{ref: channels[0].Iterator()}
	for _, c := range channels[1:] {
		r.others = append(r.others, c.Iterator())
		r.held = append(r.held, math.NaN())
	}
	r.align()
	return r
}

// SetSkipGaps forwards to the reference iterator.
func (r *Reader) SetSkipGaps(skip bool) {
	r.ref.SetSkipGaps(skip)
}

// Valid returns false once the reference channel is exhausted.
func (r *Reader) Valid() bool {
	return r.ref.Valid()
}

// Timestamp returns the timestamp of the current reference sample.
func (r *Reader) Timestamp() timebase.Timestamp {
	return r.ref.Timestamp()
}

// Value returns the value of channel i at the current timestamp.
func (r *Reader) Value(i int) float64 {
	if i == 0 {
		return r.ref.Value()
	}
	return r.held[i-1]
}

// Values appends the values of all channels to dst and returns it.
func (r *Reader) Values(dst []float64) []float64 {
	dst = append(dst, r.ref.Value())
	return append(dst, r.held...)
}

// Next advances to the next reference sample.
func (r *Reader) Next() {
	r.ref.Next()
	r.align()
}

func (r *Reader) align() {
	if !r.ref.Valid() {
		return
	}
	seconds := r.ref.Timestamp().Seconds()
	for i, it := range r.others {
		limit := timebase.TimeToTickAtOrBefore(seconds, it.ch.Frequency)
		for it.Valid() && it.Tick() <= limit {
			if !it.InGap() {
				r.held[i] = it.Value()
			}
			it.Next()
		}
	}
}
