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
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// RegisterSoftwareChannelRoot is the root element of a
// RegisterSoftwareChannelTelegram.
const RegisterSoftwareChannelRoot = "RegisterSoftwareChannel"

// RegisterSoftwareChannelTelegram announces a plugin to the host so that it
// is offered in the software channel menus.
type RegisterSoftwareChannelTelegram struct {
	ServiceName  string
	DisplayName  string
	DisplayGroup string
	Description  string
	// AnalysisCapable plugins can be run on recorded data.
	AnalysisCapable bool
	// AcquisitionCapable plugins can be run during a live measurement.
	AcquisitionCapable bool
	// UIItem optionally names a custom configuration page.
	UIItem string
}

func (t *RegisterSoftwareChannelTelegram) RootName() string { return RegisterSoftwareChannelRoot }

func (t *RegisterSoftwareChannelTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(RegisterSoftwareChannelRoot, Version)
	root := doc.Root()
	xmlcodec.AddText(root, "ServiceName", t.ServiceName)
	xmlcodec.AddText(root, "DisplayName", t.DisplayName)
	xmlcodec.AddText(root, "DisplayGroup", t.DisplayGroup)
	xmlcodec.AddText(root, "Description", t.Description)
	xmlcodec.AddText(root, "AnalysisCapable", xmlcodec.FormatBool(t.AnalysisCapable))
	xmlcodec.AddText(root, "AcquisitionCapable", xmlcodec.FormatBool(t.AcquisitionCapable))
	if t.UIItem != "" {
		xmlcodec.AddText(root, "UIItem", t.UIItem)
	}
	return doc.String()
}

func (t *RegisterSoftwareChannelTelegram) Parse(data string) error {
	*t = RegisterSoftwareChannelTelegram{}
	root, err := xmlcodec.Parse(data, RegisterSoftwareChannelRoot, Version)
	if err != nil {
		return err
	}
	var out RegisterSoftwareChannelTelegram
	if out.ServiceName, err = xmlcodec.ChildText(root, "ServiceName"); err != nil {
		return err
	}
	out.DisplayName = xmlcodec.OptionalChildText(root, "DisplayName", "")
	out.DisplayGroup = xmlcodec.OptionalChildText(root, "DisplayGroup", "")
	out.Description = xmlcodec.OptionalChildText(root, "Description", "")
	out.UIItem = xmlcodec.OptionalChildText(root, "UIItem", "")
	if out.AnalysisCapable, err = xmlcodec.ParseBool(xmlcodec.OptionalChildText(root, "AnalysisCapable", xmlcodec.False)); err != nil {
		return err
	}
	if out.AcquisitionCapable, err = xmlcodec.ParseBool(xmlcodec.OptionalChildText(root, "AcquisitionCapable", xmlcodec.True)); err != nil {
		return err
	}
	*t = out
	return nil
}
