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
	"strconv"

	"github.com/beevik/etree"

	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

const timebaseTag = "Timebase"

var timebaseTypes = newEnumTable("timebase type", map[timebase.Type]string{
	timebase.None:       "none",
	timebase.Simple:     "simple",
	timebase.WithOffset: "timebase_with_offset",
})

func appendTimebase(parent *etree.Element, tb timebase.Timebase) {
	el := parent.CreateElement(timebaseTag)
	el.CreateAttr("type", timebaseTypes.name(tb.Type))
	if tb.Type == timebase.None {
		return
	}
	xmlcodec.SetFloatAttr(el, "frequency", tb.Frequency)
	if tb.Type == timebase.WithOffset {
		xmlcodec.SetFloatAttr(el, "offset", tb.Offset)
	}
}

func readTimebase(el *etree.Element) (timebase.Timebase, error) {
	s, err := xmlcodec.Attr(el, "type")
	if err != nil {
		return timebase.Timebase{}, err
	}
	typ, err := timebaseTypes.parse(s)
	if err != nil {
		return timebase.Timebase{}, err
	}
	if typ == timebase.None {
		return timebase.NewNone(), nil
	}
	freq, err := xmlcodec.AttrFloat(el, "frequency")
	if err != nil {
		return timebase.Timebase{}, err
	}
	tb := timebase.NewSimple(freq)
	if typ == timebase.WithOffset {
		offset, err := xmlcodec.OptionalAttrFloat(el, "offset", 0)
		if err != nil {
			return timebase.Timebase{}, err
		}
		tb = timebase.NewWithOffset(freq, offset)
	}
	return tb, nil
}

func appendTimestamp(parent *etree.Element, tag string, ts timebase.Timestamp) {
	el := parent.CreateElement(tag)
	el.CreateAttr("ticks", strconv.FormatUint(ts.Ticks, 10))
	xmlcodec.SetFloatAttr(el, "frequency", ts.Frequency)
}

func readTimestamp(parent *etree.Element, tag string) (timebase.Timestamp, error) {
	el, err := xmlcodec.Child(parent, tag)
	if err != nil {
		return timebase.Timestamp{}, err
	}
	ticks, err := xmlcodec.AttrUint64(el, "ticks")
	if err != nil {
		return timebase.Timestamp{}, err
	}
	freq, err := xmlcodec.AttrFloat(el, "frequency")
	if err != nil {
		return timebase.Timestamp{}, err
	}
	return timebase.Timestamp{Ticks: ticks, Frequency: freq}, nil
}
