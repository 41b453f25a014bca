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

	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// AddMarkersRoot is the root element of an AddMarkersTelegram.
const AddMarkersRoot = "AddMarkers"

// MarkerType is the kind of a marker placed on the time axis.
type MarkerType int

const (
	MarkerEvent MarkerType = iota
	MarkerStart
	MarkerStop
	MarkerTrigger
	MarkerKey
	MarkerVoice
	MarkerDisplay
)

var markerTypes = newEnumTable("marker type", map[MarkerType]string{
	MarkerEvent:   "event",
	MarkerStart:   "start",
	MarkerStop:    "stop",
	MarkerTrigger: "trigger",
	MarkerKey:     "key",
	MarkerVoice:   "voice",
	MarkerDisplay: "display",
})

func (m MarkerType) String() string { return markerTypes.name(m) }

// ParseMarkerType returns the marker type spelled s. Unknown spellings map
// to MarkerEvent.
func ParseMarkerType(s string) MarkerType {
	return markerTypes.lookup(s, MarkerEvent)
}

// Marker is a labelled point in time of the acquisition.
type Marker struct {
	Type        MarkerType
	Time        timebase.Timestamp
	Label       string
	Description string
	GroupID     uint64
}

// AddMarkersTelegram asks the host to place markers.
type AddMarkersTelegram struct {
	Markers []Marker
}

func (t *AddMarkersTelegram) RootName() string { return AddMarkersRoot }

func (t *AddMarkersTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(AddMarkersRoot, Version)
	for _, m := range t.Markers {
		el := doc.Root().CreateElement("Marker")
		el.CreateAttr("type", m.Type.String())
		el.CreateAttr("label", m.Label)
		el.CreateAttr("group_id", strconv.FormatUint(m.GroupID, 10))
		appendTimestamp(el, "Time", m.Time)
		if m.Description != "" {
			xmlcodec.AddText(el, "Description", m.Description)
		}
	}
	return doc.String()
}

func (t *AddMarkersTelegram) Parse(data string) error {
	*t = AddMarkersTelegram{}
	root, err := xmlcodec.Parse(data, AddMarkersRoot, Version)
	if err != nil {
		return err
	}
	var out AddMarkersTelegram
	for _, el := range root.SelectElements("Marker") {
		m := Marker{
			Type:        ParseMarkerType(el.SelectAttrValue("type", "")),
			Label:       el.SelectAttrValue("label", ""),
			Description: xmlcodec.OptionalChildText(el, "Description", ""),
		}
		if m.GroupID, err = xmlcodec.OptionalAttrUint64(el, "group_id", 0); err != nil {
			return err
		}
		if m.Time, err = readTimestamp(el, "Time"); err != nil {
			return err
		}
		out.Markers = append(out.Markers, m)
	}
	*t = out
	return nil
}
