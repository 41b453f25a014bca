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

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

const (
	ValidateExportSettingsRoot         = "ValidateExportSettings"
	ValidateExportSettingsResponseRoot = "ValidateExportSettingsResponse"
	StartExportRoot                    = "StartExport"

	exportPropertiesTag = "ExportProperties"
	exportChannelsTag   = "ExportChannels"
)

// ExportProperties are the settings of a data export plugin, together with
// the host channels selected for export.
type ExportProperties struct {
	Properties property.List
	Channels   []property.ChannelID
}

func (e *ExportProperties) appendTo(parent *etree.Element) {
	props := parent.CreateElement(exportPropertiesTag)
	e.Properties.AppendTo(props)
	channels := parent.CreateElement(exportChannelsTag)
	for _, id := range e.Channels {
		xmlcodec.AddText(channels, "ChannelID", strconv.FormatUint(uint64(id), 10))
	}
}

func (e *ExportProperties) readFrom(parent *etree.Element) error {
	var out ExportProperties
	if props := parent.SelectElement(exportPropertiesTag); props != nil {
		if err := out.Properties.ReadFrom(props); err != nil {
			return err
		}
	}
	if channels := parent.SelectElement(exportChannelsTag); channels != nil {
		for _, el := range channels.SelectElements("ChannelID") {
			id, err := xmlcodec.ParseUint(el.Text(), 64)
			if err != nil {
				return err
			}
			out.Channels = append(out.Channels, property.ChannelID(id))
		}
	}
	*e = out
	return nil
}

// Equal compares settings and channel selection.
func (e *ExportProperties) Equal(o *ExportProperties) bool {
	if !e.Properties.Equal(o.Properties) || len(e.Channels) != len(o.Channels) {
		return false
	}
	for i := range e.Channels {
		if e.Channels[i] != o.Channels[i] {
			return false
		}
	}
	return true
}

// ValidateExportSettingsTelegram asks an export plugin whether it accepts
// the given settings.
type ValidateExportSettingsTelegram struct {
	Export ExportProperties
}

func (t *ValidateExportSettingsTelegram) RootName() string { return ValidateExportSettingsRoot }

func (t *ValidateExportSettingsTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(ValidateExportSettingsRoot, Version)
	t.Export.appendTo(doc.Root())
	return doc.String()
}

func (t *ValidateExportSettingsTelegram) Parse(data string) error {
	*t = ValidateExportSettingsTelegram{}
	root, err := xmlcodec.Parse(data, ValidateExportSettingsRoot, Version)
	if err != nil {
		return err
	}
	return t.Export.readFrom(root)
}

// ValidateExportSettingsResponse is the answer of an export plugin to a
// ValidateExportSettingsTelegram.
type ValidateExportSettingsResponse struct {
	Valid    bool
	Messages []string
}

func (t *ValidateExportSettingsResponse) RootName() string { return ValidateExportSettingsResponseRoot }

func (t *ValidateExportSettingsResponse) Generate() (string, error) {
	doc := xmlcodec.NewDocument(ValidateExportSettingsResponseRoot, Version)
	doc.Root().CreateAttr("valid", xmlcodec.FormatBool(t.Valid))
	for _, m := range t.Messages {
		xmlcodec.AddText(doc.Root(), "Message", m)
	}
	return doc.String()
}

func (t *ValidateExportSettingsResponse) Parse(data string) error {
	*t = ValidateExportSettingsResponse{}
	root, err := xmlcodec.Parse(data, ValidateExportSettingsResponseRoot, Version)
	if err != nil {
		return err
	}
	var out ValidateExportSettingsResponse
	if out.Valid, err = xmlcodec.AttrBool(root, "valid"); err != nil {
		return err
	}
	for _, el := range root.SelectElements("Message") {
		out.Messages = append(out.Messages, el.Text())
	}
	*t = out
	return nil
}

// StartExportTelegram starts an export of the time window [Start, End].
type StartExportTelegram struct {
	Export ExportProperties
	Start  timebase.Timestamp
	End    timebase.Timestamp
}

func (t *StartExportTelegram) RootName() string { return StartExportRoot }

func (t *StartExportTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(StartExportRoot, Version)
	t.Export.appendTo(doc.Root())
	appendTimestamp(doc.Root(), "Start", t.Start)
	appendTimestamp(doc.Root(), "End", t.End)
	return doc.String()
}

func (t *StartExportTelegram) Parse(data string) error {
	*t = StartExportTelegram{}
	root, err := xmlcodec.Parse(data, StartExportRoot, Version)
	if err != nil {
		return err
	}
	var out StartExportTelegram
	if err := out.Export.readFrom(root); err != nil {
		return err
	}
	if out.Start, err = readTimestamp(root, "Start"); err != nil {
		return err
	}
	if out.End, err = readTimestamp(root, "End"); err != nil {
		return err
	}
	*t = out
	return nil
}
