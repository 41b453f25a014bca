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

package xmlcodec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	True  = "True"
	False = "False"
)

// FormatBool renders b as the capitalized literal used on the wire.
func FormatBool(b bool) string {
	if b {
		return True
	}
	return False
}

// ParseBool accepts "True"/"False" and, for documents written by older
// hosts, their lower case spelling.
func ParseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case True, "true":
		return true, nil
	case False, "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: boolean %q", ErrInvalidValue, s)
}

// FormatFloat renders f with the shortest representation that parses back
// to the same value.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseFloat parses a floating point number.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, s)
	}
	return f, nil
}

// ParseInt parses a signed integer of the given bit size.
func ParseInt(s string, bits int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrInvalidValue, s)
	}
	return v, nil
}

// ParseUint parses an unsigned integer of the given bit size.
func ParseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: unsigned integer %q", ErrInvalidValue, s)
	}
	return v, nil
}

// Attr returns the value of a required attribute.
func Attr(el *etree.Element, key string) (string, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return "", fmt.Errorf("%w: %s@%s", ErrMissingAttribute, el.Tag, key)
	}
	return a.Value, nil
}

// AttrUint32 returns a required unsigned 32 bit attribute.
func AttrUint32(el *etree.Element, key string) (uint32, error) {
	s, err := Attr(el, key)
	if err != nil {
		return 0, err
	}
	v, err := ParseUint(s, 32)
	return uint32(v), err
}

// AttrUint64 returns a required unsigned 64 bit attribute.
func AttrUint64(el *etree.Element, key string) (uint64, error) {
	s, err := Attr(el, key)
	if err != nil {
		return 0, err
	}
	return ParseUint(s, 64)
}

// AttrFloat returns a required floating point attribute.
func AttrFloat(el *etree.Element, key string) (float64, error) {
	s, err := Attr(el, key)
	if err != nil {
		return 0, err
	}
	return ParseFloat(s)
}

// AttrBool returns a required boolean attribute.
func AttrBool(el *etree.Element, key string) (bool, error) {
	s, err := Attr(el, key)
	if err != nil {
		return false, err
	}
	return ParseBool(s)
}

// OptionalAttrBool returns a boolean attribute or dflt when it is absent.
func OptionalAttrBool(el *etree.Element, key string, dflt bool) (bool, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return dflt, nil
	}
	return ParseBool(a.Value)
}

// OptionalAttrFloat returns a floating point attribute or dflt when it is
// absent.
func OptionalAttrFloat(el *etree.Element, key string, dflt float64) (float64, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return dflt, nil
	}
	return ParseFloat(a.Value)
}

// OptionalAttrUint64 returns an unsigned attribute or dflt when it is absent.
func OptionalAttrUint64(el *etree.Element, key string, dflt uint64) (uint64, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return dflt, nil
	}
	return ParseUint(a.Value, 64)
}

// Child returns the first child element named tag.
func Child(el *etree.Element, tag string) (*etree.Element, error) {
	c := el.SelectElement(tag)
	if c == nil {
		return nil, fmt.Errorf("%w: <%s> in <%s>", ErrMissingElement, tag, el.Tag)
	}
	return c, nil
}

// ChildText returns the text content of the first child element named tag.
func ChildText(el *etree.Element, tag string) (string, error) {
	c, err := Child(el, tag)
	if err != nil {
		return "", err
	}
	return c.Text(), nil
}

// OptionalChildText returns the text content of the first child named tag,
// or dflt when there is none.
func OptionalChildText(el *etree.Element, tag string, dflt string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return dflt
}

// AddText appends a child element named tag holding text.
func AddText(parent *etree.Element, tag, text string) *etree.Element {
	c := parent.CreateElement(tag)
	c.SetText(text)
	return c
}

// SetFloatAttr writes f as an attribute; NaN is written as "nan".
func SetFloatAttr(el *etree.Element, key string, f float64) {
	if math.IsNaN(f) {
		el.CreateAttr(key, "nan")
		return
	}
	el.CreateAttr(key, FormatFloat(f))
}

// Canonical serializes el and its subtree without indentation. Elements
// that are not understood are kept in this form so they can be written
// back unchanged.
func Canonical(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	doc.Unindent()
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// AppendRaw parses raw, as returned by Canonical, and appends its root
// element to parent.
func AppendRaw(parent *etree.Element, raw string) (*etree.Element, error) {
	el, err := ParseRoot(raw)
	if err != nil {
		return nil, err
	}
	parent.AddChild(el)
	return el, nil
}
