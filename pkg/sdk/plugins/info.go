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

package plugins

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
	"github.com/google/uuid"
)

// ManifestRoot is the root element of a plugin manifest.
const ManifestRoot = "PluginManifest"

var (
	errNoName    = errors.New("plugin name must not be empty")
	errNoUUID    = errors.New("plugin uuid must not be nil")
	errNoVersion = errors.New("plugin version must not be empty")
)

// Info is the static description of a plugin.
type Info struct {
	// Name is the unique name of the plugin, as returned by
	// dwGetPluginName.
	Name string
	// UUID identifies the plugin independently of its name.
	UUID        uuid.UUID
	Version     string
	Description string
	Vendor      string
	// InitSchema is an optional JSON schema describing the configuration
	// accepted by Plugin.Init.
	InitSchema string
	// Service optionally registers the plugin as a software channel
	// provider.
	Service *telegram.RegisterSoftwareChannelTelegram
}

// Validate returns an error if the info misses a required field.
func (i *Info) Validate() error {
	var errs []error
	if i.Name == "" {
		errs = append(errs, errNoName)
	}
	if i.UUID == uuid.Nil {
		errs = append(errs, errNoUUID)
	}
	if i.Version == "" {
		errs = append(errs, errNoVersion)
	}
	if i.Service != nil && i.Service.ServiceName == "" {
		errs = append(errs, errors.New("service name must not be empty"))
	}
	return errors.Join(errs...)
}

// Manifest returns the XML manifest of the plugin, as returned by
// dwGetPluginManifest.
func (i *Info) Manifest() (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}
	doc := xmlcodec.NewDocument(ManifestRoot, telegram.Version)
	root := doc.Root()
	root.CreateAttr("uuid", i.UUID.String())
	xmlcodec.AddText(root, "Name", i.Name)
	xmlcodec.AddText(root, "Version", i.Version)
	xmlcodec.AddText(root, "Description", i.Description)
	xmlcodec.AddText(root, "Vendor", i.Vendor)
	if i.Service != nil {
		appendService(root, i.Service)
	}
	return doc.String()
}

func appendService(parent *etree.Element, s *telegram.RegisterSoftwareChannelTelegram) {
	el := parent.CreateElement("Service")
	el.CreateAttr("name", s.ServiceName)
	el.CreateAttr("analysis", xmlcodec.FormatBool(s.AnalysisCapable))
	el.CreateAttr("acquisition", xmlcodec.FormatBool(s.AcquisitionCapable))
	xmlcodec.AddText(el, "DisplayName", s.DisplayName)
	xmlcodec.AddText(el, "DisplayGroup", s.DisplayGroup)
	xmlcodec.AddText(el, "Description", s.Description)
	if s.UIItem != "" {
		xmlcodec.AddText(el, "UIItem", s.UIItem)
	}
}

func readService(el *etree.Element) (*telegram.RegisterSoftwareChannelTelegram, error) {
	s := &telegram.RegisterSoftwareChannelTelegram{}
	var err error
	if s.ServiceName, err = xmlcodec.Attr(el, "name"); err != nil {
		return nil, err
	}
	if s.AnalysisCapable, err = xmlcodec.OptionalAttrBool(el, "analysis", false); err != nil {
		return nil, err
	}
	if s.AcquisitionCapable, err = xmlcodec.OptionalAttrBool(el, "acquisition", true); err != nil {
		return nil, err
	}
	s.DisplayName = xmlcodec.OptionalChildText(el, "DisplayName", "")
	s.DisplayGroup = xmlcodec.OptionalChildText(el, "DisplayGroup", "")
	s.Description = xmlcodec.OptionalChildText(el, "Description", "")
	s.UIItem = xmlcodec.OptionalChildText(el, "UIItem", "")
	return s, nil
}

// ParseManifest reads the info of a plugin back from its manifest. The
// init schema is not part of the manifest and is left empty.
func ParseManifest(data string) (*Info, error) {
	root, err := xmlcodec.Parse(data, ManifestRoot, telegram.Version)
	if err != nil {
		return nil, err
	}
	id, err := xmlcodec.Attr(root, "uuid")
	if err != nil {
		return nil, err
	}
	res := &Info{}
	if res.UUID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: uuid %q", xmlcodec.ErrInvalidValue, id)
	}
	if res.Name, err = xmlcodec.ChildText(root, "Name"); err != nil {
		return nil, err
	}
	if res.Version, err = xmlcodec.ChildText(root, "Version"); err != nil {
		return nil, err
	}
	res.Description = xmlcodec.OptionalChildText(root, "Description", "")
	res.Vendor = xmlcodec.OptionalChildText(root, "Vendor", "")
	if el := root.SelectElement("Service"); el != nil {
		if res.Service, err = readService(el); err != nil {
			return nil, err
		}
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
