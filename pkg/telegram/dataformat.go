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

	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// SampleFormat is the binary representation of one sample element.
type SampleFormat int

const (
	FormatInvalid SampleFormat = iota
	FormatNone
	FormatSint8
	FormatUint8
	FormatSint16
	FormatUint16
	FormatSint32
	FormatUint32
	FormatSint64
	FormatUint64
	FormatFloat
	FormatDouble
	FormatComplexFloat
	FormatComplexDouble
	FormatVideoRawFrame
	FormatUTF8String
	FormatCANMessage
	FormatFlexRayMessage
)

var sampleFormats = newEnumTable("sample format", map[SampleFormat]string{
	FormatInvalid:        "invalid",
	FormatNone:           "none",
	FormatSint8:          "sint8",
	FormatUint8:          "uint8",
	FormatSint16:         "sint16",
	FormatUint16:         "uint16",
	FormatSint32:         "sint32",
	FormatUint32:         "uint32",
	FormatSint64:         "sint64",
	FormatUint64:         "uint64",
	FormatFloat:          "float",
	FormatDouble:         "double",
	FormatComplexFloat:   "complex_float",
	FormatComplexDouble:  "complex_double",
	FormatVideoRawFrame:  "video_raw_frame",
	FormatUTF8String:     "utf8_string",
	FormatCANMessage:     "can_message",
	FormatFlexRayMessage: "flexray_message",
})

func (f SampleFormat) String() string { return sampleFormats.name(f) }

// ParseSampleFormat returns the sample format spelled s on the wire.
func ParseSampleFormat(s string) (SampleFormat, error) {
	return sampleFormats.parse(s)
}

// Size returns the size in bytes of one sample element, or 0 for formats
// without a fixed size.
func (f SampleFormat) Size() int {
	switch f {
	case FormatSint8, FormatUint8:
		return 1
	case FormatSint16, FormatUint16:
		return 2
	case FormatSint32, FormatUint32, FormatFloat:
		return 4
	case FormatSint64, FormatUint64, FormatDouble, FormatComplexFloat:
		return 8
	case FormatComplexDouble:
		return 16
	}
	return 0
}

// SampleValueType is the shape of one sample.
type SampleValueType int

const (
	ValueScalar SampleValueType = iota
	ValueVector
	ValueComplexVector
	ValueVideo
	ValueString
	ValueCANMessage
	ValueFlexRayMessage
	ValueInvalid
)

var sampleValueTypes = newEnumTable("sample value type", map[SampleValueType]string{
	ValueScalar:         "scalar",
	ValueVector:         "vector",
	ValueComplexVector:  "complex_vector",
	ValueVideo:          "video",
	ValueString:         "string",
	ValueCANMessage:     "can_message",
	ValueFlexRayMessage: "flexray_message",
	ValueInvalid:        "invalid",
})

func (v SampleValueType) String() string { return sampleValueTypes.name(v) }

// SampleOccurrence tells how samples of a channel are spaced in time.
type SampleOccurrence int

const (
	OccurrenceSync SampleOccurrence = iota
	OccurrenceAsync
	OccurrenceSingleValue
	OccurrenceNever
	OccurrenceInvalid
)

var sampleOccurrences = newEnumTable("sample occurrence", map[SampleOccurrence]string{
	OccurrenceSync:        "SYNC",
	OccurrenceAsync:       "ASYNC",
	OccurrenceSingleValue: "SINGLE_VALUE",
	OccurrenceNever:       "NEVER",
	OccurrenceInvalid:     "INVALID",
})

func (o SampleOccurrence) String() string { return sampleOccurrences.name(o) }

// DataFormat describes the wire layout of the samples of a channel. A
// SampleDimension of 0 marks samples of dynamic size, such as video frames.
type DataFormat struct {
	Format     SampleFormat
	ValueType  SampleValueType
	Dimension  uint32
	Occurrence SampleOccurrence
}

// SyncScalar returns the format of a SYNC channel of scalar samples.
func SyncScalar(f SampleFormat) DataFormat {
	return DataFormat{Format: f, ValueType: ValueScalar, Dimension: 1, Occurrence: OccurrenceSync}
}

// AsyncScalar returns the format of an ASYNC channel of scalar samples.
func AsyncScalar(f SampleFormat) DataFormat {
	return DataFormat{Format: f, ValueType: ValueScalar, Dimension: 1, Occurrence: OccurrenceAsync}
}

// InvalidDataFormat is the format of a channel without data.
var InvalidDataFormat = DataFormat{
	Format:     FormatInvalid,
	ValueType:  ValueInvalid,
	Occurrence: OccurrenceInvalid,
}

// SampleSize returns the size in bytes of one complete sample, or 0 for
// samples of dynamic size.
func (d DataFormat) SampleSize() int {
	return d.Format.Size() * int(d.Dimension)
}

const dataFormatTag = "DataFormat"

func (d DataFormat) appendTo(parent *etree.Element) {
	el := parent.CreateElement(dataFormatTag)
	el.CreateAttr("sample_occurrence", d.Occurrence.String())
	el.CreateAttr("sample_format", d.Format.String())
	el.CreateAttr("sample_value", d.ValueType.String())
	el.CreateAttr("sample_dimension", strconv.FormatUint(uint64(d.Dimension), 10))
}

func (d *DataFormat) readFrom(el *etree.Element) error {
	var out DataFormat
	s, err := xmlcodec.Attr(el, "sample_occurrence")
	if err != nil {
		return err
	}
	if out.Occurrence, err = sampleOccurrences.parse(s); err != nil {
		return err
	}
	if s, err = xmlcodec.Attr(el, "sample_format"); err != nil {
		return err
	}
	if out.Format, err = sampleFormats.parse(s); err != nil {
		return err
	}
	if out.ValueType, err = sampleValueTypes.parse(el.SelectAttrValue("sample_value", "scalar")); err != nil {
		return err
	}
	if out.Dimension, err = xmlcodec.AttrUint32(el, "sample_dimension"); err != nil {
		return err
	}
	*d = out
	return nil
}
