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

package sdk

import "fmt"

// MessageID identifies a message sent by the host to a plugin instance.
type MessageID uint32

const (
	ConfigCreateNew MessageID = iota + 1
	ConfigItemChanged
	ConfigUpdate
	SetupLoad
	SetupSave
	AcquisitionInit
	AcquisitionStart
	AcquisitionProcess
	AcquisitionStop
	ValidateExportSettings
	StartExport
	messageEnd
)

var messageNames = [...]string{
	ConfigCreateNew:        "CONFIG_CREATE_NEW",
	ConfigItemChanged:      "CONFIG_ITEM_CHANGED",
	ConfigUpdate:           "CONFIG_UPDATE",
	SetupLoad:              "SETUP_LOAD",
	SetupSave:              "SETUP_SAVE",
	AcquisitionInit:        "ACQUISITION_INIT",
	AcquisitionStart:       "ACQUISITION_START",
	AcquisitionProcess:     "ACQUISITION_PROCESS",
	AcquisitionStop:        "ACQUISITION_STOP",
	ValidateExportSettings: "VALIDATE_EXPORT_SETTINGS",
	StartExport:            "START_EXPORT",
}

var messageIDs = func() map[string]MessageID {
	m := make(map[string]MessageID, len(messageNames))
	for id := ConfigCreateNew; id < messageEnd; id++ {
		m[messageNames[id]] = id
	}
	return m
}()

// IsValid returns true if m is a known message identifier.
func (m MessageID) IsValid() bool {
	return m >= ConfigCreateNew && m < messageEnd
}

func (m MessageID) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("MESSAGE(%d)", uint32(m))
	}
	return messageNames[m]
}

// ParseMessageID returns the identifier of the message named s.
func ParseMessageID(s string) (MessageID, error) {
	if id, ok := messageIDs[s]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMessage, s)
}

// MessageIDs returns all known message identifiers in ascending order.
func MessageIDs() []MessageID {
	ids := make([]MessageID, 0, len(messageIDs))
	for id := ConfigCreateNew; id < messageEnd; id++ {
		ids = append(ids, id)
	}
	return ids
}
