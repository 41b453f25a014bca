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
	"slices"
	"strings"
)

// TypeMismatchError is the panic value raised when a Property is read
// through an accessor that does not match its type.
type TypeMismatchError struct {
	Name     string
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("property %q: requested %s value, property holds %s", e.Name, e.Expected, e.Actual)
}

// Property is a named, typed configuration value. The zero value is an
// unnamed property of type UNKNOWN.
//
// Each setter fully replaces type and payload. Each getter panics with a
// *TypeMismatchError when the property does not hold the requested type.
type Property struct {
	name     string
	typ      Type
	enumType string
	value    interface{}
	// raw holds the value element of an UNKNOWN property read from XML.
	raw string
}

// New returns a property with the given name and no value.
func New(name string) Property {
	return Property{name: name, typ: TypeUnknown}
}

func NewString(name, v string) Property {
	p := New(name)
	p.SetString(v)
	return p
}

func NewInt(name string, v int32) Property {
	p := New(name)
	p.SetInt(v)
	return p
}

func NewUint(name string, v uint32) Property {
	p := New(name)
	p.SetUint(v)
	return p
}

func NewUint64(name string, v uint64) Property {
	p := New(name)
	p.SetUint64(v)
	return p
}

func NewInt64(name string, v int64) Property {
	p := New(name)
	p.SetInt64(v)
	return p
}

func NewFloat(name string, v float64) Property {
	p := New(name)
	p.SetFloat(v)
	return p
}

func NewBool(name string, v bool) Property {
	p := New(name)
	p.SetBool(v)
	return p
}

func NewEnum(name, v, enumType string) Property {
	p := New(name)
	p.SetEnum(v, enumType)
	return p
}

func NewScalar(name string, v Scalar) Property {
	p := New(name)
	p.SetScalar(v)
	return p
}

func NewRange(name string, v Range) Property {
	p := New(name)
	p.SetRange(v)
	return p
}

func NewList(name string, v List) Property {
	p := New(name)
	p.SetList(v)
	return p
}

func NewChannelID(name string, v ChannelID) Property {
	p := New(name)
	p.SetChannelID(v)
	return p
}

// Name returns the name of the property.
func (p Property) Name() string {
	return p.name
}

// SetName renames the property.
func (p *Property) SetName(name string) {
	p.name = name
}

// Type returns the type tag of the property.
func (p Property) Type() Type {
	if p.value == nil {
		return TypeUnknown
	}
	return p.typ
}

// EnumType returns the enum type name of an ENUM property, or "".
func (p Property) EnumType() string {
	return p.enumType
}

// IsValid returns true if the property holds a value. An ENUM without an
// enum type is not valid.
func (p Property) IsValid() bool {
	if p.Type() == TypeUnknown {
		return false
	}
	return p.typ != TypeEnum || p.enumType != ""
}

// RawValue returns the value element of an UNKNOWN property as it was read
// from XML, or "" if there is none.
func (p Property) RawValue() string {
	if p.Type() != TypeUnknown {
		return ""
	}
	return p.raw
}

// Value returns a copy of the payload, or nil for an UNKNOWN property.
func (p Property) Value() interface{} {
	return copyPayload(p.value)
}

func (p *Property) set(t Type, v interface{}) {
	p.typ = t
	p.enumType = ""
	p.value = v
	p.raw = ""
}

func (p Property) get(t Type) interface{} {
	if p.Type() != t {
		panic(&TypeMismatchError{Name: p.name, Expected: t, Actual: p.Type()})
	}
	return p.value
}

func (p *Property) SetString(v string) { p.set(TypeString, v) }
func (p *Property) SetInt(v int32) { p.set(TypeInteger, v) }
func (p *Property) SetUint(v uint32) { p.set(TypeUnsignedInteger, v) }
func (p *Property) SetUint64(v uint64) { p.set(TypeUnsignedInteger64, v) }
func (p *Property) SetInt64(v int64) { p.set(TypeInteger64, v) }
func (p *Property) SetFloat(v float64) { p.set(TypeFloat, v) }
func (p *Property) SetBool(v bool) { p.set(TypeBoolean, v) }
func (p *Property) SetColor(v string) { p.set(TypeColor, v) }
func (p *Property) SetDate(v string) { p.set(TypeDate, v) }
func (p *Property) SetDateTime(v string) { p.set(TypeDateTime, v) }
func (p *Property) SetRange(v Range) { p.set(TypeRange, v) }
func (p *Property) SetScalar(v Scalar) { p.set(TypeScalar, v) }
func (p *Property) SetDecoratedNumber(v DecoratedNumber) { p.set(TypeDecoratedNumber, v) }
func (p *Property) SetChannelID(v ChannelID) { p.set(TypeChannelID, v) }
func (p *Property) SetRational(v Rational) { p.set(TypeRational, v) }
func (p *Property) SetGeoCoordinate(v GeoCoordinate) { p.set(TypeGeoCoordinate, v) }
func (p *Property) SetPoint(v Point) { p.set(TypePoint, v) }

// SetEnum sets an ENUM value of the given enum type.
func (p *Property) SetEnum(v, enumType string) {
	p.set(TypeEnum, v)
	p.enumType = enumType
}

// SetList stores a copy of l.
func (p *Property) SetList(l List) { p.set(TypePropertyList, l.Clone()) }

// SetStringList stores a copy of v.
func (p *Property) SetStringList(v []string) { p.set(TypeStringList, cloneSlice(v)) }

// SetPointList stores a copy of v.
func (p *Property) SetPointList(v []Point) { p.set(TypePointList, cloneSlice(v)) }

// SetFloatList stores a copy of v.
func (p *Property) SetFloatList(v []float64) { p.set(TypeFloatList, cloneSlice(v)) }

// SetChannelIDList stores a copy of v.
func (p *Property) SetChannelIDList(v []ChannelID) { p.set(TypeChannelIDList, cloneSlice(v)) }

func (p Property) StringValue() string { return p.get(TypeString).(string) }
func (p Property) IntValue() int32 { return p.get(TypeInteger).(int32) }
func (p Property) UintValue() uint32 { return p.get(TypeUnsignedInteger).(uint32) }
func (p Property) Uint64Value() uint64 { return p.get(TypeUnsignedInteger64).(uint64) }
func (p Property) Int64Value() int64 { return p.get(TypeInteger64).(int64) }
func (p Property) FloatValue() float64 { return p.get(TypeFloat).(float64) }
func (p Property) BoolValue() bool { return p.get(TypeBoolean).(bool) }
func (p Property) ColorValue() string { return p.get(TypeColor).(string) }
func (p Property) DateValue() string { return p.get(TypeDate).(string) }
func (p Property) DateTimeValue() string { return p.get(TypeDateTime).(string) }
func (p Property) EnumValue() string { return p.get(TypeEnum).(string) }
func (p Property) RangeValue() Range { return p.get(TypeRange).(Range) }
func (p Property) ScalarValue() Scalar { return p.get(TypeScalar).(Scalar) }
func (p Property) RationalValue() Rational { return p.get(TypeRational).(Rational) }
func (p Property) PointValue() Point { return p.get(TypePoint).(Point) }
func (p Property) ChannelIDValue() ChannelID { return p.get(TypeChannelID).(ChannelID) }

func (p Property) DecoratedNumberValue() DecoratedNumber {
	return p.get(TypeDecoratedNumber).(DecoratedNumber)
}

func (p Property) GeoCoordinateValue() GeoCoordinate {
	return p.get(TypeGeoCoordinate).(GeoCoordinate)
}

// ListValue returns a copy of the nested property list.
func (p Property) ListValue() List { return p.get(TypePropertyList).(List).Clone() }

// StringListValue returns a copy of the string list.
func (p Property) StringListValue() []string { return cloneSlice(p.get(TypeStringList).([]string)) }

// PointListValue returns a copy of the point list.
func (p Property) PointListValue() []Point { return cloneSlice(p.get(TypePointList).([]Point)) }

// FloatListValue returns a copy of the number list.
func (p Property) FloatListValue() []float64 { return cloneSlice(p.get(TypeFloatList).([]float64)) }

// ChannelIDListValue returns a copy of the channel id list.
func (p Property) ChannelIDListValue() []ChannelID {
	return cloneSlice(p.get(TypeChannelIDList).([]ChannelID))
}

// AsFloat converts numeric properties to float64. The second return value is
// false for non-numeric types.
func (p Property) AsFloat() (float64, bool) {
	switch v := p.value.(type) {
	case int32:
		return float64(v), true
	case uint32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	case Scalar:
		return v.Value, true
	case DecoratedNumber:
		return v.Value, true
	case Rational:
		return v.Float(), true
	}
	return 0, false
}

// Equal compares name, type, enum type and the full payload.
func (p Property) Equal(o Property) bool {
	if p.name != o.name || p.Type() != o.Type() || p.enumType != o.enumType || p.raw != o.raw {
		return false
	}
	return payloadEqual(p.value, o.value)
}

// EqualValue compares type, enum type and payload, ignoring names.
func (p Property) EqualValue(o Property) bool {
	if p.Type() != o.Type() || p.enumType != o.enumType || p.raw != o.raw {
		return false
	}
	return payloadEqual(p.value, o.value)
}

func (p Property) String() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString("=")
	switch v := p.value.(type) {
	case nil:
		b.WriteString("<unknown>")
	case string:
		fmt.Fprintf(&b, "%q", v)
	case List:
		b.WriteString("{")
		for i, c := range v.props {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("}")
	default:
		fmt.Fprint(&b, v)
	}
	return b.String()
}

func payloadEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case List:
		bv, ok := b.(List)
		return ok && av.Equal(bv)
	case []string:
		bv, ok := b.([]string)
		return ok && slices.Equal(av, bv)
	case []float64:
		bv, ok := b.([]float64)
		return ok && slices.Equal(av, bv)
	case []Point:
		bv, ok := b.([]Point)
		return ok && slices.Equal(av, bv)
	case []ChannelID:
		bv, ok := b.([]ChannelID)
		return ok && slices.Equal(av, bv)
	}
	return a == b
}

func copyPayload(v interface{}) interface{} {
	switch pv := v.(type) {
	case List:
		return pv.Clone()
	case []string:
		return cloneSlice(pv)
	case []float64:
		return cloneSlice(pv)
	case []Point:
		return cloneSlice(pv)
	case []ChannelID:
		return cloneSlice(pv)
	}
	return v
}

// cloneSlice always returns a non-nil slice so that empty lists compare and
// serialize the same way regardless of how they were built.
func cloneSlice[T any](s []T) []T {
	c := make([]T, len(s))
	copy(c, s)
	return c
}
