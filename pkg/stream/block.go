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

package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrShortBlock        = errors.New("sample block too short")
)

// DataBlock is one contiguous block of samples of a channel. SYNC blocks
// hold consecutive ticks starting at FirstTick; ASYNC blocks carry one tick
// per sample in Ticks. Data holds the samples in little endian byte order.
type DataBlock struct {
	Format    telegram.DataFormat
	FirstTick uint64
	Ticks     []uint64
	Data      []byte
	count     int
}

// NewSyncBlock returns a block of consecutive samples starting at firstTick.
func NewSyncBlock(format telegram.DataFormat, firstTick uint64, data []byte) (*DataBlock, error) {
	b := &DataBlock{Format: format, FirstTick: firstTick, Data: data}
	return b, b.init()
}

// NewAsyncBlock returns a block whose sample i lies at ticks[i].
func NewAsyncBlock(format telegram.DataFormat, ticks []uint64, data []byte) (*DataBlock, error) {
	b := &DataBlock{Format: format, Ticks: ticks, Data: data}
	if err := b.init(); err != nil {
		return nil, err
	}
	if b.count != len(ticks) {
		return nil, fmt.Errorf("%w: %d ticks for %d samples", ErrShortBlock, len(ticks), b.count)
	}
	if len(ticks) > 0 {
		b.FirstTick = ticks[0]
	}
	return b, nil
}

func (b *DataBlock) init() error {
	size := b.Format.SampleSize()
	if size == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, b.Format.Format)
	}
	if len(b.Data)%size != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortBlock, len(b.Data), size)
	}
	b.count = len(b.Data) / size
	return nil
}

// Len returns the number of samples.
func (b *DataBlock) Len() int {
	return b.count
}

// Tick returns the tick of sample i.
func (b *DataBlock) Tick(i int) uint64 {
	if b.Ticks != nil {
		return b.Ticks[i]
	}
	return b.FirstTick + uint64(i)
}

// LastTick returns the tick of the last sample. It must not be called on an
// empty block.
func (b *DataBlock) LastTick() uint64 {
	return b.Tick(b.count - 1)
}

// Value returns the first element of sample i.
func (b *DataBlock) Value(i int) float64 {
	return b.Element(i, 0)
}

// Element returns element j of sample i converted to float64.
func (b *DataBlock) Element(i, j int) float64 {
	elem := b.Format.Format.Size()
	off := i*b.Format.SampleSize() + j*elem
	return decode(b.Format.Format, b.Data[off:off+elem])
}

// Raw returns the bytes of sample i.
func (b *DataBlock) Raw(i int) []byte {
	size := b.Format.SampleSize()
	return b.Data[i*size : (i+1)*size]
}

func decode(f telegram.SampleFormat, p []byte) float64 {
	le := binary.LittleEndian
	switch f {
	case telegram.FormatSint8:
		return float64(int8(p[0]))
	case telegram.FormatUint8:
		return float64(p[0])
	case telegram.FormatSint16:
		return float64(int16(le.Uint16(p)))
	case telegram.FormatUint16:
		return float64(le.Uint16(p))
	case telegram.FormatSint32:
		return float64(int32(le.Uint32(p)))
	case telegram.FormatUint32:
		return float64(le.Uint32(p))
	case telegram.FormatSint64:
		return float64(int64(le.Uint64(p)))
	case telegram.FormatUint64:
		return float64(le.Uint64(p))
	case telegram.FormatFloat, telegram.FormatComplexFloat:
		return float64(math.Float32frombits(le.Uint32(p)))
	case telegram.FormatDouble, telegram.FormatComplexDouble:
		return math.Float64frombits(le.Uint64(p))
	}
	return math.NaN()
}

// Encode converts values to the little endian representation of format f.
// Values are truncated towards zero for integer formats.
func Encode(f telegram.SampleFormat, values []float64) ([]byte, error) {
	size := f.Size()
	if size == 0 || f == telegram.FormatComplexFloat || f == telegram.FormatComplexDouble {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	le := binary.LittleEndian
	out := make([]byte, len(values)*size)
	for i, v := range values {
		p := out[i*size:]
		switch f {
		case telegram.FormatSint8:
			p[0] = byte(int8(v))
		case telegram.FormatUint8:
			p[0] = uint8(v)
		case telegram.FormatSint16:
			le.PutUint16(p, uint16(int16(v)))
		case telegram.FormatUint16:
			le.PutUint16(p, uint16(v))
		case telegram.FormatSint32:
			le.PutUint32(p, uint32(int32(v)))
		case telegram.FormatUint32:
			le.PutUint32(p, uint32(v))
		case telegram.FormatSint64:
			le.PutUint64(p, uint64(int64(v)))
		case telegram.FormatUint64:
			le.PutUint64(p, uint64(v))
		case telegram.FormatFloat:
			le.PutUint32(p, math.Float32bits(float32(v)))
		case telegram.FormatDouble:
			le.PutUint64(p, math.Float64bits(v))
		}
	}
	return out, nil
}
