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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// VersionAttr is the name of the root attribute holding the protocol version.
const VersionAttr = "protocol_version"

var (
	ErrMalformed        = errors.New("malformed xml document")
	ErrUnexpectedRoot   = errors.New("unexpected root element")
	ErrVersionMismatch  = errors.New("protocol version mismatch")
	ErrMissingAttribute = errors.New("missing attribute")
	ErrMissingElement   = errors.New("missing element")
	ErrInvalidValue     = errors.New("invalid value")
)

// Version is a telegram protocol version.
type Version struct {
	Major uint32
	Minor uint32
}

// DefaultVersion is assumed when a document carries no protocol_version.
var DefaultVersion = Version{Major: 1, Minor: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "<major>.<minor>" version string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return Version{}, fmt.Errorf("%w: version %q", ErrInvalidValue, s)
	}
	major, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("%w: version %q", ErrInvalidValue, s)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("%w: version %q", ErrInvalidValue, s)
	}
	return Version{Major: uint32(major), Minor: uint32(minor)}, nil
}

// Document is a telegram under construction.
type Document struct {
	doc  *etree.Document
	root *etree.Element
}

// NewDocument creates a document whose root element is named root and
// carries the given protocol version.
func NewDocument(root string, v Version) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	r := doc.CreateElement(root)
	r.CreateAttr(VersionAttr, v.String())
	return &Document{doc: doc, root: r}
}

// Root returns the root element of the document.
func (d *Document) Root() *etree.Element {
	return d.root
}

// String serializes the document.
func (d *Document) String() (string, error) {
	d.doc.Indent(2)
	return d.doc.WriteToString()
}

// Parse reads data and checks that its root element is named root and that
// its protocol version equals v. A missing protocol_version attribute is
// read as DefaultVersion.
func Parse(data string, root string, v Version) (*etree.Element, error) {
	r, err := ParseRoot(data)
	if err != nil {
		return nil, err
	}
	if r.Tag != root {
		return nil, fmt.Errorf("%w: expected <%s>, found <%s>", ErrUnexpectedRoot, root, r.Tag)
	}
	found := DefaultVersion
	if a := r.SelectAttr(VersionAttr); a != nil {
		if found, err = ParseVersion(a.Value); err != nil {
			return nil, err
		}
	}
	if found != v {
		return nil, fmt.Errorf("%w: expected %s, found %s", ErrVersionMismatch, v, found)
	}
	return r, nil
}

// ParseRoot reads data and returns its root element without any check on
// its name or version.
func ParseRoot(data string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err.Error())
	}
	r := doc.Root()
	if r == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return r, nil
}
