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

package telegram

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// ConstraintType is the kind of a Constraint.
type ConstraintType int

const (
	ConstraintUnknown ConstraintType = iota
	ConstraintOptions
	ConstraintRange
	ConstraintRegex
	ConstraintArbitraryString
	ConstraintChannelIDs
	ConstraintVisibility
	ConstraintFilePath
	ConstraintItemHint
)

var constraintTypeNames = newEnumTable("constraint type", map[ConstraintType]string{
	ConstraintUnknown:         "UNKNOWN",
	ConstraintOptions:         "OPTIONS",
	ConstraintRange:           "RANGE",
	ConstraintRegex:           "REGEX",
	ConstraintArbitraryString: "ARBITRARY_STRING",
	ConstraintChannelIDs:      "CHANNEL_IDS",
	ConstraintVisibility:      "VISIBILITY",
	ConstraintFilePath:        "FILE_PATH",
	ConstraintItemHint:        "ITEM_HINT",
})

func (t ConstraintType) String() string { return constraintTypeNames.name(t) }

// Visibility of a configuration item in the host user interface.
type Visibility int

const (
	Public Visibility = iota
	Hidden
)

var visibilities = newEnumTable("visibility", map[Visibility]string{
	Public: "PUBLIC",
	Hidden: "HIDDEN",
})

func (v Visibility) String() string { return visibilities.name(v) }

// FilePathType selects the kind of file dialog offered for a path property.
type FilePathType int

const (
	OpenFile FilePathType = iota
	SaveFile
	Directory
)

var filePathTypes = newEnumTable("file path type", map[FilePathType]string{
	OpenFile:  "OPEN_FILE",
	SaveFile:  "SAVE_FILE",
	Directory: "DIRECTORY",
})

func (t FilePathType) String() string { return filePathTypes.name(t) }

// FilePathOptions configure the file dialog of a FILE_PATH constraint.
type FilePathOptions struct {
	Type        FilePathType
	Title       string
	DefaultPath string
	NameFilters []string
	MultiSelect bool
}

// Constraint is a user interface and validation hint attached to a
// configuration property. Only the fields belonging to Type are meaningful:
//
//	RANGE        Min, Max (same property type)
//	OPTIONS      Option (one allowed value per constraint)
//	REGEX        Pattern
//	CHANNEL_IDS  MaxItems, MaxDimension, ChannelType
//	VISIBILITY   Visibility
//	FILE_PATH    FilePath
//	ITEM_HINT    Hint
//	UNKNOWN      Tag, the element name that was not recognized, and Raw,
//	             the element itself
type Constraint struct {
	Type ConstraintType

	Min    property.Property
	Max    property.Property
	Option property.Property

	Pattern string

	MaxItems     uint32
	MaxDimension uint32
	ChannelType  string

	Visibility Visibility
	FilePath   FilePathOptions
	Hint       string
	Tag        string
	Raw        string
}

// MakeRange returns a RANGE constraint. Bounds of different types yield an
// UNKNOWN constraint, which IsValid reports as invalid.
func MakeRange(minv, maxv property.Property) Constraint {
	if minv.Type() != maxv.Type() || minv.Type() == property.TypeUnknown {
		return Constraint{}
	}
	return Constraint{Type: ConstraintRange, Min: minv, Max: maxv}
}

// MakeFloatRange returns a RANGE constraint with floating point bounds.
func MakeFloatRange(minv, maxv float64) Constraint {
	return MakeRange(property.NewFloat("", minv), property.NewFloat("", maxv))
}

// MakeOption returns an OPTIONS constraint allowing v.
func MakeOption(v property.Property) Constraint {
	return Constraint{Type: ConstraintOptions, Option: v}
}

// MakeStringOptions returns one OPTIONS constraint per string.
func MakeStringOptions(options ...string) []Constraint {
	out := make([]Constraint, len(options))
	for i, o := range options {
		out[i] = MakeOption(property.NewString("", o))
	}
	return out
}

func MakeRegex(pattern string) Constraint {
	return Constraint{Type: ConstraintRegex, Pattern: pattern}
}

func MakeArbitraryString() Constraint {
	return Constraint{Type: ConstraintArbitraryString}
}

// MakeChannelIDs restricts a channel list property to at most maxItems
// channels of at most maxDimension samples each. An empty channelType
// accepts every channel.
func MakeChannelIDs(maxItems, maxDimension uint32, channelType string) Constraint {
	return Constraint{Type: ConstraintChannelIDs, MaxItems: maxItems, MaxDimension: maxDimension, ChannelType: channelType}
}

func MakeVisibility(v Visibility) Constraint {
	return Constraint{Type: ConstraintVisibility, Visibility: v}
}

func MakeFilePath(o FilePathOptions) Constraint {
	o.NameFilters = slices.Clone(o.NameFilters)
	return Constraint{Type: ConstraintFilePath, FilePath: o}
}

func MakeItemHint(hint string) Constraint {
	return Constraint{Type: ConstraintItemHint, Hint: hint}
}

// IsValid returns false for UNKNOWN constraints.
func (c Constraint) IsValid() bool {
	return c.Type != ConstraintUnknown
}

// Equal compares the fields relevant to the constraint type.
func (c Constraint) Equal(o Constraint) bool {
	if c.Type != o.Type {
		return false
	}
	switch c.Type {
	case ConstraintRange:
		return c.Min.EqualValue(o.Min) && c.Max.EqualValue(o.Max)
	case ConstraintOptions:
		return c.Option.EqualValue(o.Option)
	case ConstraintRegex:
		return c.Pattern == o.Pattern
	case ConstraintChannelIDs:
		return c.MaxItems == o.MaxItems && c.MaxDimension == o.MaxDimension && c.ChannelType == o.ChannelType
	case ConstraintVisibility:
		return c.Visibility == o.Visibility
	case ConstraintFilePath:
		a, b := c.FilePath, o.FilePath
		return a.Type == b.Type && a.Title == b.Title && a.DefaultPath == b.DefaultPath &&
			a.MultiSelect == b.MultiSelect && slices.Equal(a.NameFilters, b.NameFilters)
	case ConstraintItemHint:
		return c.Hint == o.Hint
	case ConstraintUnknown:
		return c.Tag == o.Tag && c.Raw == o.Raw
	}
	return true
}

func (c Constraint) String() string {
	switch c.Type {
	case ConstraintRange:
		return fmt.Sprintf("RANGE[%v, %v]", c.Min.Value(), c.Max.Value())
	case ConstraintOptions:
		return fmt.Sprintf("OPTIONS(%v)", c.Option.Value())
	case ConstraintRegex:
		return fmt.Sprintf("REGEX(%s)", c.Pattern)
	case ConstraintUnknown:
		return fmt.Sprintf("UNKNOWN(<%s>)", c.Tag)
	}
	return c.Type.String()
}

// constraintCodec describes the XML grammar of one constraint kind.
type constraintCodec struct {
	typ   ConstraintType
	tag   string
	write func(el *etree.Element, c Constraint)
	read  func(el *etree.Element) (Constraint, error)
}

var constraintCodecs = []constraintCodec{
	{ConstraintRange, "DoubleRangeConstraint",
		func(el *etree.Element, c Constraint) {
			c.Min.AppendValue(el.CreateElement("Min"))
			c.Max.AppendValue(el.CreateElement("Max"))
		},
		func(el *etree.Element) (Constraint, error) {
			minv, err := readBound(el, "Min")
			if err != nil {
				return Constraint{}, err
			}
			maxv, err := readBound(el, "Max")
			if err != nil {
				return Constraint{}, err
			}
			c := MakeRange(minv, maxv)
			if !c.IsValid() {
				return c, fmt.Errorf("%w: range bounds of type %s and %s", xmlcodec.ErrInvalidValue, minv.Type(), maxv.Type())
			}
			return c, nil
		}},
	{ConstraintOptions, "OptionConstraint",
		func(el *etree.Element, c Constraint) { c.Option.AppendValue(el) },
		func(el *etree.Element) (Constraint, error) {
			var v property.Property
			children := el.ChildElements()
			if len(children) == 0 {
				return Constraint{}, fmt.Errorf("%w: empty <%s>", xmlcodec.ErrMissingElement, el.Tag)
			}
			if err := v.ReadValue(children[0]); err != nil {
				return Constraint{}, err
			}
			return MakeOption(v), nil
		}},
	{ConstraintArbitraryString, "StringConstraint",
		func(el *etree.Element, c Constraint) {},
		func(el *etree.Element) (Constraint, error) { return MakeArbitraryString(), nil }},
	{ConstraintRegex, "RegularExpressionConstraint",
		func(el *etree.Element, c Constraint) { el.SetText(c.Pattern) },
		func(el *etree.Element) (Constraint, error) { return MakeRegex(el.Text()), nil }},
	{ConstraintChannelIDs, "ChannelIdsConstraint",
		func(el *etree.Element, c Constraint) {
			el.CreateAttr("max_items", strconv.FormatUint(uint64(c.MaxItems), 10))
			el.CreateAttr("max_dimension", strconv.FormatUint(uint64(c.MaxDimension), 10))
			el.CreateAttr("channel_type", c.ChannelType)
		},
		func(el *etree.Element) (Constraint, error) {
			maxItems, err := xmlcodec.AttrUint32(el, "max_items")
			if err != nil {
				return Constraint{}, err
			}
			maxDim, err := xmlcodec.AttrUint32(el, "max_dimension")
			if err != nil {
				return Constraint{}, err
			}
			return MakeChannelIDs(maxItems, maxDim, el.SelectAttrValue("channel_type", "")), nil
		}},
	{ConstraintVisibility, "VisibilityConstraint",
		func(el *etree.Element, c Constraint) { el.SetText(c.Visibility.String()) },
		func(el *etree.Element) (Constraint, error) {
			v, err := visibilities.parse(el.Text())
			return MakeVisibility(v), err
		}},
	{ConstraintFilePath, "FilePathConstraint",
		func(el *etree.Element, c Constraint) {
			o := c.FilePath
			el.CreateAttr("type", o.Type.String())
			el.CreateAttr("title", o.Title)
			el.CreateAttr("default_path", o.DefaultPath)
			el.CreateAttr("multi_select", xmlcodec.FormatBool(o.MultiSelect))
			for _, f := range o.NameFilters {
				xmlcodec.AddText(el, "NameFilter", f)
			}
		},
		func(el *etree.Element) (Constraint, error) {
			var o FilePathOptions
			var err error
			if o.Type, err = filePathTypes.parse(el.SelectAttrValue("type", OpenFile.String())); err != nil {
				return Constraint{}, err
			}
			if o.MultiSelect, err = xmlcodec.OptionalAttrBool(el, "multi_select", false); err != nil {
				return Constraint{}, err
			}
			o.Title = el.SelectAttrValue("title", "")
			o.DefaultPath = el.SelectAttrValue("default_path", "")
			for _, f := range el.SelectElements("NameFilter") {
				o.NameFilters = append(o.NameFilters, f.Text())
			}
			return MakeFilePath(o), nil
		}},
	{ConstraintItemHint, "ItemHintConstraint",
		func(el *etree.Element, c Constraint) { el.SetText(c.Hint) },
		func(el *etree.Element) (Constraint, error) { return MakeItemHint(el.Text()), nil }},
}

var (
	constraintsByType = map[ConstraintType]*constraintCodec{}
	constraintsByTag  = map[string]*constraintCodec{}
)

func init() {
	for i := range constraintCodecs {
		c := &constraintCodecs[i]
		constraintsByType[c.typ] = c
		constraintsByTag[c.tag] = c
	}
}

// AppendTo appends the element of c to parent. An UNKNOWN constraint
// writes back the element it was read from, if any.
func (c Constraint) AppendTo(parent *etree.Element) {
	codec, ok := constraintsByType[c.Type]
	if !ok {
		if c.Raw != "" {
			_, _ = xmlcodec.AppendRaw(parent, c.Raw)
		}
		return
	}
	codec.write(parent.CreateElement(codec.tag), c)
}

// ConstraintFromXML reads a constraint element. Elements of an unknown kind
// produce an UNKNOWN constraint and no error.
func ConstraintFromXML(el *etree.Element) (Constraint, error) {
	codec, ok := constraintsByTag[el.Tag]
	if !ok {
		return Constraint{Type: ConstraintUnknown, Tag: el.Tag, Raw: xmlcodec.Canonical(el)}, nil
	}
	c, err := codec.read(el)
	if err != nil {
		return Constraint{}, fmt.Errorf("reading <%s>: %w", el.Tag, err)
	}
	return c, nil
}

func readBound(parent *etree.Element, tag string) (property.Property, error) {
	el, err := xmlcodec.Child(parent, tag)
	if err != nil {
		return property.Property{}, err
	}
	children := el.ChildElements()
	if len(children) == 0 {
		return property.Property{}, fmt.Errorf("%w: empty <%s>", xmlcodec.ErrMissingElement, tag)
	}
	var p property.Property
	err = p.ReadValue(children[0])
	return p, err
}

func (c Constraint) clone() Constraint {
	c.FilePath.NameFilters = slices.Clone(c.FilePath.NameFilters)
	return c
}
