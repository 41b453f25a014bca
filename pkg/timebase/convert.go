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

import "math"

// snapULPs bounds the rounding error of a tick to time round trip: the
// division and the multiplication each add at most one ulp. A product that
// close to an integer is treated as that integer.
const snapULPs = 4

// TickToTime returns the time in seconds of tick at frequency freq.
func TickToTime(tick uint64, freq float64) float64 {
	return float64(tick) / freq
}

// TimeToTickAtOrAfter returns the first tick whose time is not before
// seconds.
func TimeToTickAtOrAfter(seconds, freq float64) uint64 {
	return toTick(seconds*freq, math.Ceil)
}

// TimeToTickAtOrBefore returns the last tick whose time is not after
// seconds.
func TimeToTickAtOrBefore(seconds, freq float64) uint64 {
	return toTick(seconds*freq, math.Floor)
}

// TimeToTickNearest returns the tick closest to seconds.
func TimeToTickNearest(seconds, freq float64) uint64 {
	return toTick(seconds*freq, math.Round)
}

func toTick(x float64, direction func(float64) float64) uint64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	r := math.Round(x)
	if math.Abs(x-r) > snapULPs*ulp(math.Max(1, x)) {
		r = direction(x)
	}
	if r >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(r)
}

// ulp returns the distance from x to the next larger float64.
func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}
