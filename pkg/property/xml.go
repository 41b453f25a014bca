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
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

const (
	// PropertyTag is the element wrapping a named property.
	PropertyTag = "Property"
	// ConstraintsTag is the optional element following a property value.
	ConstraintsTag = "Constraints"

	nameAttr = "name"
	enumAttr = "enum"
)

// ErrUnknownValue is returned by ReadValue for an element that is not a
// known value element.
var ErrUnknownValue = errors.New("unknown property value element")

// valueCodec describes the XML grammar of one property type.
type valueCodec struct {
	typ   Type
	tag   string
	write func(el *etree.Element, p Property)
	read  func(el *etree.Element, p *Property) error
}

var valueCodecs = []valueCodec{
	{TypeString, "StringValue",
		func(el *etree.Element, p Property) { el.SetText(quote(p.StringValue())) },
		func(el *etree.Element, p *Property) error {
			p.SetString(unquote(el.Text()))
			return nil
		}},
	{TypeInteger, "SignedValue",
		func(el *etree.Element, p Property) { el.SetText(strconv.FormatInt(int64(p.IntValue()), 10)) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseInt(el.Text(), 32)
			p.SetInt(int32(v))
			return err
		}},
	{TypeUnsignedInteger, "UnsignedValue",
		func(el *etree.Element, p Property) { el.SetText(strconv.FormatUint(uint64(p.UintValue()), 10)) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseUint(el.Text(), 32)
			p.SetUint(uint32(v))
			return err
		}},
	{TypeUnsignedInteger64, "UnsignedInt64",
		func(el *etree.Element, p Property) { el.SetText(strconv.FormatUint(p.Uint64Value(), 10)) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseUint(el.Text(), 64)
			p.SetUint64(v)
			return err
		}},
	{TypeInteger64, "SignedInt64",
		func(el *etree.Element, p Property) { el.SetText(strconv.FormatInt(p.Int64Value(), 10)) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseInt(el.Text(), 64)
			p.SetInt64(v)
			return err
		}},
	{TypeFloat, "DoubleValue",
		func(el *etree.Element, p Property) { el.SetText(xmlcodec.FormatFloat(p.FloatValue())) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseFloat(el.Text())
			p.SetFloat(v)
			return err
		}},
	{TypeBoolean, "BooleanValue",
		func(el *etree.Element, p Property) { el.SetText(xmlcodec.FormatBool(p.BoolValue())) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseBool(el.Text())
			p.SetBool(v)
			return err
		}},
	{TypeColor, "ColorValue",
		func(el *etree.Element, p Property) { el.SetText(p.ColorValue()) },
		func(el *etree.Element, p *Property) error {
			p.SetColor(el.Text())
			return nil
		}},
	{TypeDate, "DateValue",
		func(el *etree.Element, p Property) { el.SetText(p.DateValue()) },
		func(el *etree.Element, p *Property) error {
			p.SetDate(el.Text())
			return nil
		}},
	{TypeDateTime, "DateTimeValue",
		func(el *etree.Element, p Property) { el.SetText(p.DateTimeValue()) },
		func(el *etree.Element, p *Property) error {
			p.SetDateTime(el.Text())
			return nil
		}},
	{TypeRange, "RangeValue", writeRange, readRange},
	{TypeEnum, "EnumValue",
		func(el *etree.Element, p Property) {
			el.CreateAttr(enumAttr, p.EnumType())
			el.SetText(p.EnumValue())
		},
		func(el *etree.Element, p *Property) error {
			enumType := el.SelectAttrValue(enumAttr, "")
			if enumType == "" {
				return fmt.Errorf("%w: enum value without enum type", xmlcodec.ErrInvalidValue)
			}
			p.SetEnum(el.Text(), enumType)
			return nil
		}},
	{TypePropertyList, "PropertyListValue",
		func(el *etree.Element, p Property) { p.ListValue().AppendTo(el) },
		func(el *etree.Element, p *Property) error {
			var l List
			if err := l.ReadFrom(el); err != nil {
				return err
			}
			p.SetList(l)
			return nil
		}},
	{TypeScalar, "ScalarValue", writeScalar, readScalar},
	{TypeStringList, "StringListValue",
		func(el *etree.Element, p Property) {
			list := el.CreateElement("StringList")
			for _, s := range p.StringListValue() {
				xmlcodec.AddText(list, "Item", quote(s))
			}
		},
		func(el *etree.Element, p *Property) error {
			list, err := xmlcodec.Child(el, "StringList")
			if err != nil {
				return err
			}
			items := list.SelectElements("Item")
			v := make([]string, len(items))
			for i, item := range items {
				v[i] = unquote(item.Text())
			}
			p.SetStringList(v)
			return nil
		}},
	{TypePointList, "PointListValue",
		func(el *etree.Element, p Property) {
			list := el.CreateElement("PointList")
			for _, pt := range p.PointListValue() {
				writePoint(list.CreateElement("Point"), pt)
			}
		},
		func(el *etree.Element, p *Property) error {
			list, err := xmlcodec.Child(el, "PointList")
			if err != nil {
				return err
			}
			items := list.SelectElements("Point")
			v := make([]Point, len(items))
			for i, item := range items {
				if v[i], err = readPoint(item); err != nil {
					return err
				}
			}
			p.SetPointList(v)
			return nil
		}},
	{TypeDecoratedNumber, "DecoratedNumber", writeDecoratedNumber, readDecoratedNumber},
	{TypeChannelID, "ChannelID",
		func(el *etree.Element, p Property) { el.SetText(strconv.FormatUint(uint64(p.ChannelIDValue()), 10)) },
		func(el *etree.Element, p *Property) error {
			v, err := xmlcodec.ParseUint(el.Text(), 64)
			p.SetChannelID(ChannelID(v))
			return err
		}},
	{TypeFloatList, "DoubleListValue",
		func(el *etree.Element, p Property) {
			list := el.CreateElement("DoubleList")
			for _, f := range p.FloatListValue() {
				xmlcodec.AddText(list, "Item", xmlcodec.FormatFloat(f))
			}
		},
		func(el *etree.Element, p *Property) error {
			list, err := xmlcodec.Child(el, "DoubleList")
			if err != nil {
				return err
			}
			items := list.SelectElements("Item")
			v := make([]float64, len(items))
			for i, item := range items {
				if v[i], err = xmlcodec.ParseFloat(item.Text()); err != nil {
					return err
				}
			}
			p.SetFloatList(v)
			return nil
		}},
	{TypeRational, "RationalValue", writeRational, readRational},
	{TypeGeoCoordinate, "GeoCoordinateValue", writeGeoCoordinate, readGeoCoordinate},
	{TypePoint, "Point",
		func(el *etree.Element, p Property) { writePoint(el, p.PointValue()) },
		func(el *etree.Element, p *Property) error {
			v, err := readPoint(el)
			p.SetPoint(v)
			return err
		}},
	{TypeChannelIDList, "ChannelIDList",
		func(el *etree.Element, p Property) {
			list := el.CreateElement("ChannelIDList")
			for _, id := range p.ChannelIDListValue() {
				xmlcodec.AddText(list, "ChannelID", strconv.FormatUint(uint64(id), 10))
			}
		},
		func(el *etree.Element, p *Property) error {
			list, err := xmlcodec.Child(el, "ChannelIDList")
			if err != nil {
				return err
			}
			items := list.SelectElements("ChannelID")
			v := make([]ChannelID, len(items))
			for i, item := range items {
				id, err := xmlcodec.ParseUint(item.Text(), 64)
				if err != nil {
					return err
				}
				v[i] = ChannelID(id)
			}
			p.SetChannelIDList(v)
			return nil
		}},
}

var (
	codecsByType = map[Type]*valueCodec{}
	codecsByTag  = map[string]*valueCodec{}
)

func init() {
	for i := range valueCodecs {
		c := &valueCodecs[i]
		codecsByType[c.typ] = c
		codecsByTag[c.tag] = c
	}
}

// ValueTag returns the XML element name used for values of type t, or ""
// for TypeUnknown.
func ValueTag(t Type) string {
	if c, ok := codecsByType[t]; ok {
		return c.tag
	}
	return ""
}

// AppendValue appends the value element of p to parent and returns it. An
// UNKNOWN property writes back the element it was read from, if any, and
// otherwise appends nothing and returns nil.
func (p Property) AppendValue(parent *etree.Element) *etree.Element {
	c, ok := codecsByType[p.Type()]
	if !ok {
		if raw := p.RawValue(); raw != "" {
			el, err := xmlcodec.AppendRaw(parent, raw)
			if err == nil {
				return el
			}
		}
		return nil
	}
	el := parent.CreateElement(c.tag)
	c.write(el, p)
	return el
}

// ReadValue replaces the value of p with the one encoded by the value
// element el. The name of p is kept. ReadValue returns an error wrapping
// ErrUnknownValue if el is not a value element.
func (p *Property) ReadValue(el *etree.Element) error {
	c, ok := codecsByTag[el.Tag]
	if !ok {
		return fmt.Errorf("%w: <%s>", ErrUnknownValue, el.Tag)
	}
	v := New(p.name)
	if err := c.read(el, &v); err != nil {
		return fmt.Errorf("reading <%s> of property %q: %w", el.Tag, p.name, err)
	}
	*p = v
	return nil
}

// AppendTo appends a <Property name=".."> element holding the value of p
// and returns it.
func (p Property) AppendTo(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(PropertyTag)
	el.CreateAttr(nameAttr, p.name)
	p.AppendValue(el)
	return el
}

// ReadFrom replaces p with the property encoded by a <Property> element.
// A nested <Constraints> element is skipped. A value element of an unknown
// kind yields an UNKNOWN property that keeps the element, not an error.
func (p *Property) ReadFrom(el *etree.Element) error {
	if el.Tag != PropertyTag {
		return fmt.Errorf("%w: expected <%s>, found <%s>", xmlcodec.ErrMissingElement, PropertyTag, el.Tag)
	}
	name, err := xmlcodec.Attr(el, nameAttr)
	if err != nil {
		return err
	}
	v := New(name)
	if valueEl := valueElement(el); valueEl != nil {
		if err := v.ReadValue(valueEl); errors.Is(err, ErrUnknownValue) {
			v.raw = xmlcodec.Canonical(valueEl)
		} else if err != nil {
			return err
		}
	}
	*p = v
	return nil
}

// AppendTo appends one <Property> element per entry to parent.
func (l List) AppendTo(parent *etree.Element) {
	for _, p := range l.props {
		p.AppendTo(parent)
	}
}

// ReadFrom replaces the content of l with every <Property> child of parent.
// Other child elements are ignored.
func (l *List) ReadFrom(parent *etree.Element) error {
	l.Clear()
	var out List
	for _, el := range parent.SelectElements(PropertyTag) {
		var p Property
		if err := p.ReadFrom(el); err != nil {
			return err
		}
		if p.name == "" {
			return fmt.Errorf("%w: property without name in <%s>", xmlcodec.ErrInvalidValue, parent.Tag)
		}
		out.Set(p)
	}
	*l = out
	return nil
}

func valueElement(el *etree.Element) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag != ConstraintsTag {
			return c
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}

// unquote strips exactly one pair of enclosing quotes. Text written without
// quotes is returned unchanged.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func writeRange(el *etree.Element, p Property) {
	r := p.RangeValue()
	xmlcodec.AddText(el, "RangeMin", xmlcodec.FormatFloat(r.Min))
	xmlcodec.AddText(el, "RangeMinUnit", r.MinUnit)
	xmlcodec.AddText(el, "RangeMax", xmlcodec.FormatFloat(r.Max))
	xmlcodec.AddText(el, "RangeMaxUnit", r.MaxUnit)
}

func readRange(el *etree.Element, p *Property) error {
	var r Range
	var err error
	if r.Min, err = childFloat(el, "RangeMin"); err != nil {
		return err
	}
	if r.Max, err = childFloat(el, "RangeMax"); err != nil {
		return err
	}
	r.MinUnit = xmlcodec.OptionalChildText(el, "RangeMinUnit", "")
	r.MaxUnit = xmlcodec.OptionalChildText(el, "RangeMaxUnit", "")
	p.SetRange(r)
	return nil
}

func writeScalar(el *etree.Element, p Property) {
	s := p.ScalarValue()
	xmlcodec.AddText(el, "Value", xmlcodec.FormatFloat(s.Value))
	xmlcodec.AddText(el, "Unit", s.Unit)
}

func readScalar(el *etree.Element, p *Property) error {
	v, err := childFloat(el, "Value")
	if err != nil {
		return err
	}
	p.SetScalar(Scalar{Value: v, Unit: xmlcodec.OptionalChildText(el, "Unit", "")})
	return nil
}

func writeRational(el *etree.Element, p Property) {
	r := p.RationalValue()
	xmlcodec.AddText(el, "Numerator", strconv.FormatInt(r.Numerator, 10))
	xmlcodec.AddText(el, "Denominator", strconv.FormatInt(r.Denominator, 10))
	xmlcodec.AddText(el, "Unit", r.Unit)
}

func readRational(el *etree.Element, p *Property) error {
	var r Rational
	var err error
	if r.Numerator, err = childInt64(el, "Numerator"); err != nil {
		return err
	}
	if r.Denominator, err = childInt64(el, "Denominator"); err != nil {
		return err
	}
	r.Unit = xmlcodec.OptionalChildText(el, "Unit", "")
	p.SetRational(r)
	return nil
}

func writeDecoratedNumber(el *etree.Element, p Property) {
	d := p.DecoratedNumberValue()
	if d.Prefix != "" {
		xmlcodec.AddText(el, "Prefix", quote(d.Prefix))
	}
	xmlcodec.AddText(el, "Value", xmlcodec.FormatFloat(d.Value))
	if d.Suffix != "" {
		xmlcodec.AddText(el, "Suffix", quote(d.Suffix))
	}
}

func readDecoratedNumber(el *etree.Element, p *Property) error {
	v, err := childFloat(el, "Value")
	if err != nil {
		return err
	}
	p.SetDecoratedNumber(DecoratedNumber{
		Value:  v,
		Prefix: unquote(xmlcodec.OptionalChildText(el, "Prefix", "")),
		Suffix: unquote(xmlcodec.OptionalChildText(el, "Suffix", "")),
	})
	return nil
}

func writeGeoCoordinate(el *etree.Element, p Property) {
	g := p.GeoCoordinateValue()
	xmlcodec.AddText(el, "Latitude", xmlcodec.FormatFloat(g.Latitude))
	xmlcodec.AddText(el, "Longitude", xmlcodec.FormatFloat(g.Longitude))
	xmlcodec.AddText(el, "Altitude", xmlcodec.FormatFloat(g.Altitude))
}

func readGeoCoordinate(el *etree.Element, p *Property) error {
	var g GeoCoordinate
	var err error
	if g.Latitude, err = childFloat(el, "Latitude"); err != nil {
		return err
	}
	if g.Longitude, err = childFloat(el, "Longitude"); err != nil {
		return err
	}
	if g.Altitude, err = childFloat(el, "Altitude"); err != nil {
		return err
	}
	p.SetGeoCoordinate(g)
	return nil
}

func writePoint(el *etree.Element, pt Point) {
	el.CreateAttr("x", xmlcodec.FormatFloat(pt.X))
	el.CreateAttr("y", xmlcodec.FormatFloat(pt.Y))
}

func readPoint(el *etree.Element) (Point, error) {
	x, err := xmlcodec.AttrFloat(el, "x")
	if err != nil {
		return Point{}, err
	}
	y, err := xmlcodec.AttrFloat(el, "y")
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func childFloat(el *etree.Element, tag string) (float64, error) {
	s, err := xmlcodec.ChildText(el, tag)
	if err != nil {
		return 0, err
	}
	return xmlcodec.ParseFloat(s)
}

func childInt64(el *etree.Element, tag string) (int64, error) {
	s, err := xmlcodec.ChildText(el, tag)
	if err != nil {
		return 0, err
	}
	return xmlcodec.ParseInt(s, 64)
}
