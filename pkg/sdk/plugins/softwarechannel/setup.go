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

package softwarechannel

import (
	"fmt"
	"strconv"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// SetupRoot is the root element of the document an instance returns on
// SETUP_SAVE and reads back on SETUP_LOAD.
const SetupRoot = "SoftwareChannelSetup"

// generateSetup writes the creation request of an instance and the
// configuration values of its channels. Constraints are not saved: they
// are rebuilt when the channels are created again.
func generateSetup(create *telegram.CreateChannelsTelegram, channels *PluginChannels) (string, error) {
	doc := xmlcodec.NewDocument(SetupRoot, telegram.Version)
	root := doc.Root()
	inputs := root.CreateElement("Inputs")
	for _, id := range create.Inputs {
		xmlcodec.AddText(inputs, "ChannelID", strconv.FormatUint(uint64(id), 10))
	}
	create.Properties.AppendTo(root.CreateElement("Options"))
	for _, c := range channels.Channels() {
		el := root.CreateElement("Channel")
		el.CreateAttr("local_id", c.LocalID().String())
		c.Values().AppendTo(el)
	}
	return doc.String()
}

// parseSetup reads a document written by generateSetup.
func parseSetup(data string) (*telegram.CreateChannelsTelegram, *telegram.UpdateConfigTelegram, error) {
	root, err := xmlcodec.Parse(data, SetupRoot, telegram.Version)
	if err != nil {
		return nil, nil, err
	}
	create := &telegram.CreateChannelsTelegram{}
	if inputs := root.SelectElement("Inputs"); inputs != nil {
		for _, el := range inputs.SelectElements("ChannelID") {
			id, err := xmlcodec.ParseUint(el.Text(), 64)
			if err != nil {
				return nil, nil, err
			}
			create.Inputs = append(create.Inputs, property.ChannelID(id))
		}
	}
	if opts := root.SelectElement("Options"); opts != nil {
		if err := create.Properties.ReadFrom(opts); err != nil {
			return nil, nil, err
		}
	}
	configs := &telegram.UpdateConfigTelegram{}
	for _, el := range root.SelectElements("Channel") {
		id, err := xmlcodec.AttrUint32(el, "local_id")
		if err != nil {
			return nil, nil, err
		}
		cfg := configs.AddChannel(telegram.LocalID(id))
		if err := cfg.Properties.ReadFrom(el); err != nil {
			return nil, nil, fmt.Errorf("channel %d: %w", id, err)
		}
	}
	return create, configs, nil
}
