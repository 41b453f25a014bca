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

// Type is the type tag of a Property.
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeUnsignedInteger
	TypeUnsignedInteger64
	TypeInteger64
	TypeFloat
	TypeBoolean
	TypeColor
	TypeDate
	TypeDateTime
	TypeRange
	TypeEnum
	TypePropertyList
	TypeScalar
	TypeStringList
	TypePointList
	TypeDecoratedNumber
	TypeChannelID
	TypeFloatList
	TypeRational
	TypeGeoCoordinate
	TypePoint
	TypeChannelIDList
	TypeUnknown
)

var typeNames = [...]string{
	TypeString:            "STRING",
	TypeInteger:           "INTEGER",
	TypeUnsignedInteger:   "UNSIGNED_INTEGER",
	TypeUnsignedInteger64: "UNSIGNED_INTEGER64",
	TypeInteger64:         "INTEGER64",
	TypeFloat:             "FLOATING_POINT_NUMBER",
	TypeBoolean:           "BOOLEAN",
	TypeColor:             "COLOR",
	TypeDate:              "DATE",
	TypeDateTime:          "DATETIME",
	TypeRange:             "RANGE",
	TypeEnum:              "ENUM",
	TypePropertyList:      "PROPERTY_LIST",
	TypeScalar:            "SCALAR",
	TypeStringList:        "STRING_LIST",
	TypePointList:         "POINT_LIST",
	TypeDecoratedNumber:   "DECORATED_NUMBER",
	TypeChannelID:         "CHANNEL_ID",
	TypeFloatList:         "FLOATING_POINT_NUMBER_LIST",
	TypeRational:          "RATIONAL",
	TypeGeoCoordinate:     "GEO_COORDINATE",
	TypePoint:             "POINT",
	TypeChannelIDList:     "CHANNEL_ID_LIST",
	TypeUnknown:           "UNKNOWN",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = Type(t)
	}
	return m
}()

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeUnknown]
	}
	return typeNames[t]
}

// ParseType returns the Type named s, or TypeUnknown.
func ParseType(s string) Type {
	if t, ok := typesByName[s]; ok {
		return t
	}
	return TypeUnknown
}

// IsComposite returns true for types whose value is a structured payload
// rather than a single textual value.
func (t Type) IsComposite() bool {
	switch t {
	case TypeRange, TypePropertyList, TypeScalar, TypeStringList, TypePointList,
		TypeDecoratedNumber, TypeFloatList, TypeRational, TypeGeoCoordinate,
		TypePoint, TypeChannelIDList:
		return true
	}
	return false
}
