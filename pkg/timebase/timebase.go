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

// Package timebase converts between channel ticks and seconds since the
// start of an acquisition.
package timebase

import (
	"fmt"
	"math"
)

// Type selects how ticks of a channel relate to acquisition time.
type Type int

const (
	// None marks a channel without a time axis (for example a single value).
	None Type = iota
	// Simple maps tick n to n / Frequency seconds.
	Simple
	// WithOffset maps tick n to Offset + n / Frequency seconds.
	WithOffset
)

var typeNames = [...]string{
	None:       "NONE",
	Simple:     "SIMPLE",
	WithOffset: "TIMEBASE_WITH_OFFSET",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Timebase describes the time axis of a channel. Frequency is NaN if and
// only if Type is None; the constructors maintain this.
type Timebase struct {
	Type      Type
	Frequency float64
	Offset    float64
}

// NewNone returns a timebase without time axis.
func NewNone() Timebase {
	return Timebase{Type: None, Frequency: math.NaN()}
}

// NewSimple returns a timebase of the given frequency in Hz. A
// non-positive or NaN frequency yields NewNone.
func NewSimple(freq float64) Timebase {
	if !(freq > 0) {
		return NewNone()
	}
	return Timebase{Type: Simple, Frequency: freq}
}

// NewWithOffset returns a timebase whose tick 0 lies offset seconds after
// the acquisition start.
func NewWithOffset(freq, offset float64) Timebase {
	if !(freq > 0) {
		return NewNone()
	}
	return Timebase{Type: WithOffset, Frequency: freq, Offset: offset}
}

// IsValid reports whether t honors the NaN frequency rule.
func (t Timebase) IsValid() bool {
	if t.Type == None {
		return math.IsNaN(t.Frequency)
	}
	return t.Frequency > 0
}

// Equal compares two timebases. Two None timebases are equal; the offset is
// only relevant for WithOffset.
func (t Timebase) Equal(o Timebase) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case None:
		return math.IsNaN(t.Frequency) == math.IsNaN(o.Frequency)
	case Simple:
		return t.Frequency == o.Frequency
	}
	return t.Frequency == o.Frequency && t.Offset == o.Offset
}

// TickToTime converts a tick of this timebase to seconds. It returns NaN
// for a None timebase.
func (t Timebase) TickToTime(tick uint64) float64 {
	if t.Type == None {
		return math.NaN()
	}
	s := TickToTime(tick, t.Frequency)
	if t.Type == WithOffset {
		s += t.Offset
	}
	return s
}

// TimeToTick converts seconds to the nearest tick of this timebase.
func (t Timebase) TimeToTick(seconds float64) uint64 {
	if t.Type == None {
		return 0
	}
	if t.Type == WithOffset {
		seconds -= t.Offset
	}
	return TimeToTickNearest(seconds, t.Frequency)
}

func (t Timebase) String() string {
	switch t.Type {
	case None:
		return "none"
	case WithOffset:
		return fmt.Sprintf("%g Hz%+gs", t.Frequency, t.Offset)
	}
	return fmt.Sprintf("%g Hz", t.Frequency)
}
