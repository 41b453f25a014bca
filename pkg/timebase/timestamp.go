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

package timebase

import "fmt"

// Timestamp is a tick count together with the frequency it counts at.
type Timestamp struct {
	Ticks     uint64
	Frequency float64
}

// FromSeconds returns the timestamp nearest to seconds at frequency freq.
func FromSeconds(seconds, freq float64) Timestamp {
	return Timestamp{Ticks: TimeToTickNearest(seconds, freq), Frequency: freq}
}

// Seconds returns the timestamp as seconds since the acquisition start.
func (ts Timestamp) Seconds() float64 {
	return TickToTime(ts.Ticks, ts.Frequency)
}

// Before reports whether ts lies strictly before o.
func (ts Timestamp) Before(o Timestamp) bool {
	if ts.Frequency == o.Frequency {
		return ts.Ticks < o.Ticks
	}
	return ts.Seconds() < o.Seconds()
}

// Convert returns ts expressed at frequency freq, rounded to the nearest
// tick.
func (ts Timestamp) Convert(freq float64) Timestamp {
	if ts.Frequency == freq {
		return ts
	}
	return FromSeconds(ts.Seconds(), freq)
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%d@%gHz", ts.Ticks, ts.Frequency)
}
