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

// Package property implements the configuration value model exchanged
// between plugins and the host: a tagged Property holding exactly one typed
// value, the ordered name-keyed List (PropertyList), the composite value
// types (Scalar, Range, Rational, DecoratedNumber, Point, GeoCoordinate) and
// the XML grammar each value type uses on the wire.
//
// Properties are values. Composite payloads (lists, nested property lists)
// are copied when set and when read, so two Property values never alias
// mutable state.
package property
