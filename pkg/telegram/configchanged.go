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

// ChannelConfigChangedRoot is the root element of a
// ChannelConfigChangedTelegram.
const ChannelConfigChangedRoot = "ChannelConfigChanged"

// ChannelConfigChangedTelegram is sent by the host when the user edits
// configuration items of a plugin channel.
type ChannelConfigChangedTelegram struct {
	LocalID LocalID
	Changes property.List
}

func (t *ChannelConfigChangedTelegram) RootName() string { return ChannelConfigChangedRoot }

func (t *ChannelConfigChangedTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(ChannelConfigChangedRoot, Version)
	doc.Root().CreateAttr(localIDAttr, t.LocalID.String())
	t.Changes.AppendTo(doc.Root())
	return doc.String()
}

func (t *ChannelConfigChangedTelegram) Parse(data string) error {
	*t = ChannelConfigChangedTelegram{}
	root, err := xmlcodec.Parse(data, ChannelConfigChangedRoot, Version)
	if err != nil {
		return err
	}
	var out ChannelConfigChangedTelegram
	if out.LocalID, err = readLocalID(root, localIDAttr); err != nil {
		return err
	}
	if err := out.Changes.ReadFrom(root); err != nil {
		return fmt.Errorf("channel %d: %w", out.LocalID, err)
	}
	*t = out
	return nil
}

// Equal compares both telegrams.
func (t *ChannelConfigChangedTelegram) Equal(o *ChannelConfigChangedTelegram) bool {
	return t.LocalID == o.LocalID && t.Changes.Equal(o.Changes)
}
