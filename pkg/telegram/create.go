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

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// CreateChannelsRoot is the root element of a CreateChannelsTelegram.
const CreateChannelsRoot = "CreateChannels"

// CreateChannelsTelegram is sent by the host when the user adds a new
// software channel. It names the input channels the user selected and
// optional creation parameters.
type CreateChannelsTelegram struct {
	Inputs     []property.ChannelID
	Properties property.List
}

func (t *CreateChannelsTelegram) RootName() string { return CreateChannelsRoot }

func (t *CreateChannelsTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(CreateChannelsRoot, Version)
	inputs := doc.Root().CreateElement("Inputs")
	for _, id := range t.Inputs {
		xmlcodec.AddText(inputs, "ChannelID", fmt.Sprint(uint64(id)))
	}
	t.Properties.AppendTo(doc.Root().CreateElement("Properties"))
	return doc.String()
}

func (t *CreateChannelsTelegram) Parse(data string) error {
	*t = CreateChannelsTelegram{}
	root, err := xmlcodec.Parse(data, CreateChannelsRoot, Version)
	if err != nil {
		return err
	}
	var out CreateChannelsTelegram
	if inputs := root.SelectElement("Inputs"); inputs != nil {
		for _, el := range inputs.SelectElements("ChannelID") {
			id, err := xmlcodec.ParseUint(el.Text(), 64)
			if err != nil {
				return err
			}
			out.Inputs = append(out.Inputs, property.ChannelID(id))
		}
	}
	if props := root.SelectElement("Properties"); props != nil {
		if err := out.Properties.ReadFrom(props); err != nil {
			return err
		}
	}
	*t = out
	return nil
}

// Equal compares both telegrams.
func (t *CreateChannelsTelegram) Equal(o *CreateChannelsTelegram) bool {
	if len(t.Inputs) != len(o.Inputs) || !t.Properties.Equal(o.Properties) {
		return false
	}
	for i := range t.Inputs {
		if t.Inputs[i] != o.Inputs[i] {
			return false
		}
	}
	return true
}
