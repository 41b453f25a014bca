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
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// AcquisitionTaskProcessRoot is the root element of an
// AcquisitionTaskProcessTelegram.
const AcquisitionTaskProcessRoot = "AcquisitionTaskProcess"

// AcquisitionTaskProcessTelegram tells a plugin which time window of input
// data is available for the current processing call.
type AcquisitionTaskProcessTelegram struct {
	Start timebase.Timestamp
	End   timebase.Timestamp
}

func (t *AcquisitionTaskProcessTelegram) RootName() string { return AcquisitionTaskProcessRoot }

func (t *AcquisitionTaskProcessTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(AcquisitionTaskProcessRoot, Version)
	appendTimestamp(doc.Root(), "StartTimestamp", t.Start)
	appendTimestamp(doc.Root(), "EndTimestamp", t.End)
	return doc.String()
}

func (t *AcquisitionTaskProcessTelegram) Parse(data string) error {
	*t = AcquisitionTaskProcessTelegram{}
	root, err := xmlcodec.Parse(data, AcquisitionTaskProcessRoot, Version)
	if err != nil {
		return err
	}
	var out AcquisitionTaskProcessTelegram
	if out.Start, err = readTimestamp(root, "StartTimestamp"); err != nil {
		return err
	}
	if out.End, err = readTimestamp(root, "EndTimestamp"); err != nil {
		return err
	}
	*t = out
	return nil
}
