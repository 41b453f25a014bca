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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	for typ := TypeString; typ <= TypeUnknown; typ++ {
		assert.Equal(t, typ, ParseType(typ.String()))
	}
	assert.Equal(t, "FLOATING_POINT_NUMBER_LIST", TypeFloatList.String())
	assert.Equal(t, TypeUnknown, ParseType("NOT_A_TYPE"))
	assert.Equal(t, "UNKNOWN", Type(-3).String())
}

func TestZeroProperty(t *testing.T) {
	var p Property
	assert.Equal(t, TypeUnknown, p.Type())
	assert.False(t, p.IsValid())
	assert.Nil(t, p.Value())
	assert.True(t, p.Equal(New("")))
}

func TestSetterReplacesType(t *testing.T) {
	p := NewEnum("Mode", "Fast", "FilterMode")
	assert.Equal(t, TypeEnum, p.Type())
	assert.Equal(t, "FilterMode", p.EnumType())

	p.SetFloat(2.5)
	assert.Equal(t, TypeFloat, p.Type())
	assert.Equal(t, "", p.EnumType())
	assert.Equal(t, 2.5, p.FloatValue())
	assert.Equal(t, "Mode", p.Name())
}

func TestTypeMismatchPanics(t *testing.T) {
	p := NewString("Unit", "V")
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*TypeMismatchError)
		require.True(t, ok)
		assert.Equal(t, TypeFloat, err.Expected)
		assert.Equal(t, TypeString, err.Actual)
		assert.Contains(t, err.Error(), `"Unit"`)
	}()
	p.FloatValue()
}

func TestGettersPanicOnUnknown(t *testing.T) {
	p := New("x")
	assert.Panics(t, func() { p.StringValue() })
	assert.Panics(t, func() { p.ListValue() })
	assert.Panics(t, func() { p.ChannelIDListValue() })
}

func TestEnumWithoutTypeIsInvalid(t *testing.T) {
	p := NewEnum("Mode", "Fast", "")
	assert.Equal(t, TypeEnum, p.Type())
	assert.False(t, p.IsValid())
}

func TestEqualIsDeep(t *testing.T) {
	a := NewRange("R", Range{Min: 1, Max: 2, MinUnit: "V", MaxUnit: "V"})
	b := NewRange("R", Range{Min: 1, Max: 3, MinUnit: "V", MaxUnit: "V"})
	assert.False(t, a.Equal(b))

	la := NewList("L", MakeList(NewInt("a", 1), NewInt("b", 2)))
	lb := NewList("L", MakeList(NewInt("a", 1), NewInt("b", 3)))
	lc := NewList("L", MakeList(NewInt("a", 1), NewInt("b", 2)))
	assert.False(t, la.Equal(lb))
	assert.True(t, la.Equal(lc))

	var s1, s2 Property
	s1.SetStringList([]string{"a"})
	s2.SetStringList([]string{"b"})
	assert.False(t, s1.EqualValue(s2))

	assert.False(t, NewInt("a", 1).Equal(NewInt64("a", 1)))
	assert.False(t, NewEnum("e", "x", "T1").Equal(NewEnum("e", "x", "T2")))
	assert.True(t, NewInt("a", 1).EqualValue(NewInt("b", 1)))
}

func TestPayloadIsNotAliased(t *testing.T) {
	values := []float64{1, 2, 3}
	var p Property
	p.SetFloatList(values)
	values[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, p.FloatListValue())

	out := p.FloatListValue()
	out[1] = 200
	assert.Equal(t, []float64{1, 2, 3}, p.FloatListValue())

	inner := MakeList(NewInt("a", 1))
	outer := NewList("outer", inner)
	inner.Set(NewInt("b", 2))
	assert.Equal(t, 1, outer.ListValue().Len())

	copied := outer
	l := copied.ListValue()
	l.Set(NewInt("c", 3))
	copied.SetList(l)
	assert.Equal(t, 1, outer.ListValue().Len())
	assert.Equal(t, 2, copied.ListValue().Len())
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		p    Property
		want float64
		ok   bool
	}{
		{NewInt("a", -3), -3, true},
		{NewUint64("a", 7), 7, true},
		{NewScalar("a", Scalar{Value: 1.5, Unit: "V"}), 1.5, true},
		{NewFloat("a", math.Pi), math.Pi, true},
		{NewString("a", "1"), 0, false},
	}
	for _, tt := range tests {
		v, ok := tt.p.AsFloat()
		assert.Equal(t, tt.ok, ok, tt.p.String())
		assert.Equal(t, tt.want, v, tt.p.String())
	}

	var r Property
	r.SetRational(Rational{Numerator: -1, Denominator: 4})
	v, ok := r.AsFloat()
	assert.True(t, ok)
	assert.Equal(t, -0.25, v)
}

func TestString(t *testing.T) {
	assert.Equal(t, `Unit="V"`, NewString("Unit", "V").String())
	assert.Equal(t, `L={a=1, b=true}`, NewList("L", MakeList(NewInt("a", 1), NewBool("b", true))).String())
	assert.Equal(t, "x=<unknown>", New("x").String())
}
