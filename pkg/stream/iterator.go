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

	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
)

// Iterator walks the samples of a Channel in tick order.
//
// By default the ticks missing between two SYNC blocks are skipped. With
// SetSkipGaps(false) every missing tick is visited as a virtual sample whose
// value is NaN, so the cursor advances one tick per step.
type Iterator struct {
	ch       *Channel
	block    int
	index    int
	skipGaps bool
	// gapTick is the current virtual sample while inGap is set.
	gapTick uint64
	inGap   bool
}

func newIterator(c *Channel) *Iterator {
	return &Iterator{ch: c, skipGaps: true}
}

// SetSkipGaps selects whether gaps between SYNC blocks are skipped. It may
// be called at any position.
func (it *Iterator) SetSkipGaps(skip bool) {
	it.skipGaps = skip
	if skip {
		it.inGap = false
	}
}

// Valid returns false once the cursor has moved past the last sample.
func (it *Iterator) Valid() bool {
	return it.block < len(it.ch.blocks)
}

// InGap reports whether the cursor is on a virtual gap sample.
func (it *Iterator) InGap() bool {
	return it.inGap
}

// Tick returns the tick of the current sample.
func (it *Iterator) Tick() uint64 {
	if it.inGap {
		return it.gapTick
	}
	return it.ch.blocks[it.block].Tick(it.index)
}

// Timestamp returns the tick of the current sample with the channel
// frequency.
func (it *Iterator) Timestamp() timebase.Timestamp {
	return timebase.Timestamp{Ticks: it.Tick(), Frequency: it.ch.Frequency}
}

// Value returns the first element of the current sample, or NaN on a gap.
func (it *Iterator) Value() float64 {
	return it.Element(0)
}

// Element returns element j of the current sample, or NaN on a gap.
func (it *Iterator) Element(j int) float64 {
	if it.inGap {
		return math.NaN()
	}
	return it.ch.blocks[it.block].Element(it.index, j)
}

// Next advances the cursor by one sample.
func (it *Iterator) Next() {
	if !it.Valid() {
		return
	}
	if it.inGap {
		it.gapTick++
		if it.gapTick >= it.ch.blocks[it.block].FirstTick {
			it.inGap = false
		}
		return
	}
	cur := it.ch.blocks[it.block]
	if it.index+1 < cur.Len() {
		it.index++
		return
	}
	last := cur.LastTick()
	it.block++
	it.index = 0
	if it.skipGaps || !it.Valid() || it.ch.Format.Occurrence != telegram.OccurrenceSync {
		return
	}
	if next := it.ch.blocks[it.block].FirstTick; next > last+1 {
		it.inGap = true
		it.gapTick = last + 1
	}
}

// Number is a type samples can be converted to.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ValueAs returns the current sample of it converted to T. It returns
// false, and the zero T, on a gap sample or past the end, since a gap has
// no value in an integer type.
func ValueAs[T Number](it *Iterator) (T, bool) {
	if it.inGap || !it.Valid() {
		var zero T
		return zero, false
	}
	return T(it.Value()), true
}
