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

// Package telegram implements the XML telegrams a plugin exchanges with the
// host application: channel topology updates, channel configuration with
// constraints, configuration change notifications, software channel
// registration, export validation, markers and acquisition processing
// windows.
//
// Every telegram has a Generate method producing the XML document and a
// Parse method that clears the receiver before reading, so a failed Parse
// never leaves partially read data behind.
package telegram

import "github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"

// Telegram is implemented by every telegram type of this package.
type Telegram interface {
	// RootName returns the name of the root element of the telegram.
	RootName() string
	Generate() (string, error)
	Parse(data string) error
}

// Version is the protocol version written and expected by every telegram
// of this package.
var Version = xmlcodec.DefaultVersion
