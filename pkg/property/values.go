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

package property

import (
	"fmt"
	"math"
)

// ChannelID is a host-global channel identifier.
type ChannelID uint64

// InvalidChannelID marks a channel id that has not been assigned.
const InvalidChannelID ChannelID = math.MaxUint64

// Scalar is a number with a unit.
type Scalar struct {
	Value float64
	Unit  string
}

func (s Scalar) String() string {
	if s.Unit == "" {
		return fmt.Sprint(s.Value)
	}
	return fmt.Sprintf("%v %s", s.Value, s.Unit)
}

// Range is a closed interval whose bounds may carry different units.
type Range struct {
	Min     float64
	Max     float64
	MinUnit string
	MaxUnit string
}

// Contains returns true if v lies inside r.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Rational is a fraction with a unit.
type Rational struct {
	Numerator   int64
	Denominator int64
	Unit        string
}

// Float returns the value of r as a floating point number.
func (r Rational) Float() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

// DecoratedNumber is a number displayed with a prefix and a suffix.
type DecoratedNumber struct {
	Value  float64
	Prefix string
	Suffix string
}

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// GeoCoordinate is a WGS84 position.
type GeoCoordinate struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}
