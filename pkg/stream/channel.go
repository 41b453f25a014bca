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
	"fmt"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
)

// Channel collects the sample blocks of one input channel received during
// a processing call.
type Channel struct {
	ID        property.ChannelID
	Format    telegram.DataFormat
	Frequency float64
	blocks    []*DataBlock
}

// NewChannel returns an empty channel.
func NewChannel(id property.ChannelID, format telegram.DataFormat, freq float64) *Channel {
	return &Channel{ID: id, Format: format, Frequency: freq}
}

// Append adds a block. Blocks must be appended in increasing tick order and
// must match the channel format.
func (c *Channel) Append(b *DataBlock) error {
	if b.Format != c.Format {
		return fmt.Errorf("channel %d: block format %s does not match %s", c.ID, b.Format.Format, c.Format.Format)
	}
	if b.Len() == 0 {
		return nil
	}
	if n := len(c.blocks); n > 0 && b.FirstTick <= c.blocks[n-1].LastTick() {
		return fmt.Errorf("channel %d: block at tick %d overlaps previous block ending at %d",
			c.ID, b.FirstTick, c.blocks[n-1].LastTick())
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// AppendSamples encodes values in the channel format and appends them as a
// SYNC block starting at firstTick.
func (c *Channel) AppendSamples(firstTick uint64, values []float64) error {
	data, err := Encode(c.Format.Format, values)
	if err != nil {
		return err
	}
	b, err := NewSyncBlock(c.Format, firstTick, data)
	if err != nil {
		return err
	}
	return c.Append(b)
}

// AppendTimedSamples encodes values in the channel format and appends them
// as an ASYNC block.
func (c *Channel) AppendTimedSamples(ticks []uint64, values []float64) error {
	data, err := Encode(c.Format.Format, values)
	if err != nil {
		return err
	}
	b, err := NewAsyncBlock(c.Format, ticks, data)
	if err != nil {
		return err
	}
	return c.Append(b)
}

// Blocks returns the blocks in order.
func (c *Channel) Blocks() []*DataBlock {
	return c.blocks
}

// Len returns the number of real samples held.
func (c *Channel) Len() int {
	n := 0
	for _, b := range c.blocks {
		n += b.Len()
	}
	return n
}

// Clear drops all blocks.
func (c *Channel) Clear() {
	c.blocks = nil
}

// Iterator returns a cursor positioned on the first sample.
func (c *Channel) Iterator() *Iterator {
	return newIterator(c)
}
