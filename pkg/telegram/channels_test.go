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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// threeLevels builds the forest 1 -> 2 -> 3 and 4 -> 5, inserting children
// before their parents.
func threeLevels() *UpdateChannelsTelegram {
	var t UpdateChannelsTelegram

	c3 := t.AddChannel(3)
	c3.Parent = ParentID(2)
	c3.DefaultName = "Leaf"
	c3.DataFormat = AsyncScalar(FormatFloat)
	c3.Timebase = timebase.NewWithOffset(1e6, 0.5)

	c5 := t.AddChannel(5)
	c5.Parent = ParentID(4)
	c5.DefaultName = "Other leaf"
	c5.DataFormat = SyncScalar(FormatSint32)
	c5.Timebase = timebase.NewSimple(100)

	c2 := t.AddChannel(2)
	c2.Parent = ParentID(1)
	c2.DefaultName = "Middle"
	c2.Domain = "Sum"
	c2.Deletable = true
	c2.DataFormat = SyncScalar(FormatDouble)
	c2.Timebase = timebase.NewSimple(1000)
	c2.Config.SetProperty(property.NewFloat("Gain", 2))
	c2.Config.AddConstraint("Gain", MakeFloatRange(0, 10))

	c1 := t.AddChannel(1)
	c1.DefaultName = "Group"

	c4 := t.AddChannel(4)
	c4.DefaultName = "Second group"
	c4.Valid = false

	t.Topology = []ChannelGroupInfo{
		{Name: "Outputs", Children: []ChannelGroupInfo{
			{Name: "Middle", LocalID: ParentID(2)},
			{Name: "Dangling", LocalID: ParentID(99)},
		}},
	}
	return &t
}

func emittedOrder(t *testing.T, doc string) []LocalID {
	t.Helper()
	root, err := xmlcodec.Parse(doc, UpdateChannelsRoot, Version)
	require.NoError(t, err)
	var ids []LocalID
	for _, el := range root.FindElements("Channels/Channel") {
		id, err := readLocalID(el, localIDAttr)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestUpdateChannelsParentsFirst(t *testing.T) {
	tel := threeLevels()
	doc, err := tel.Generate()
	require.NoError(t, err)
	assert.Equal(t, []LocalID{1, 2, 3, 4, 5}, emittedOrder(t, doc))
}

func TestUpdateChannelsRoundTrip(t *testing.T) {
	tel := threeLevels()
	doc, err := tel.Generate()
	require.NoError(t, err)

	var parsed UpdateChannelsTelegram
	require.NoError(t, parsed.Parse(doc))
	assert.True(t, tel.Equal(&parsed))
	assert.Equal(t, 5, parsed.Len())

	c2, ok := parsed.Channel(2)
	require.True(t, ok)
	assert.Equal(t, ParentID(1), c2.Parent)
	assert.True(t, c2.Deletable)
	assert.Equal(t, SyncScalar(FormatDouble), c2.DataFormat)
	gain, ok := c2.Config.Property("Gain")
	require.True(t, ok)
	assert.Equal(t, 2.0, gain.FloatValue())
	require.Len(t, c2.Config.ConstraintsOf("Gain"), 1)

	c4, _ := parsed.Channel(4)
	assert.False(t, c4.Valid)
	c1, _ := parsed.Channel(1)
	assert.True(t, c1.Timebase.Equal(timebase.NewNone()))

	require.Len(t, parsed.Topology, 1)
	assert.Equal(t, ParentID(99), parsed.Topology[0].Children[1].LocalID)
	assert.False(t, parsed.Topology[0].LocalID.Valid)
}

func TestUpdateChannelsRootsAndChildren(t *testing.T) {
	tel := threeLevels()
	assert.Equal(t, []LocalID{1, 4}, tel.RootChannels())

	direct, err := tel.ChildrenOfChannel(1, false)
	require.NoError(t, err)
	assert.Equal(t, []LocalID{2}, direct)

	all, err := tel.ChildrenOfChannel(1, true)
	require.NoError(t, err)
	assert.Equal(t, []LocalID{2, 3}, all)

	none, err := tel.ChildrenOfChannel(3, true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateChannelsCycle(t *testing.T) {
	var tel UpdateChannelsTelegram
	tel.AddChannel(1)
	tel.AddChannel(2).Parent = ParentID(5)
	tel.AddChannel(5).Parent = ParentID(2)

	_, err := tel.ChildrenOfChannel(2, true)
	assert.ErrorIs(t, err, ErrCyclicDependency)

	_, err = tel.Generate()
	assert.ErrorIs(t, err, ErrCyclicDependency)

	var self UpdateChannelsTelegram
	self.AddChannel(7).Parent = ParentID(7)
	_, err = self.Generate()
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestUpdateChannelsMissingParentIsRoot(t *testing.T) {
	var tel UpdateChannelsTelegram
	tel.AddChannel(2).Parent = ParentID(1)
	tel.AddChannel(3).Parent = ParentID(2)
	doc, err := tel.Generate()
	require.NoError(t, err)
	assert.Equal(t, []LocalID{2, 3}, emittedOrder(t, doc))
}

func TestUpdateChannelsDuplicateReplaces(t *testing.T) {
	var tel UpdateChannelsTelegram
	tel.AddChannel(1).DefaultName = "first"
	tel.AddChannel(2)
	tel.AddChannel(1).DefaultName = "second"

	assert.Equal(t, 2, tel.Len())
	chans := tel.Channels()
	assert.Equal(t, LocalID(1), chans[0].LocalID)
	assert.Equal(t, "second", chans[0].DefaultName)
}

func TestUpdateChannelsParseErrors(t *testing.T) {
	var tel UpdateChannelsTelegram
	tel.AddChannel(1)

	err := tel.Parse(`<UpdateConfig/>`)
	assert.ErrorIs(t, err, xmlcodec.ErrUnexpectedRoot)
	assert.Equal(t, 0, tel.Len())

	err = tel.Parse(`<UpdatePluginChannels protocol_version="2.0"/>`)
	assert.ErrorIs(t, err, xmlcodec.ErrVersionMismatch)

	err = tel.Parse(`<UpdatePluginChannels><Channels>
  <Channel local_id="4294967295"><DataFormat sample_occurrence="SYNC" sample_format="double" sample_dimension="1"/></Channel>
</Channels></UpdatePluginChannels>`)
	assert.ErrorIs(t, err, xmlcodec.ErrInvalidValue)

	err = tel.Parse(`<UpdatePluginChannels><Channels><Channel local_id="1"/></Channels></UpdatePluginChannels>`)
	assert.ErrorIs(t, err, xmlcodec.ErrMissingElement)

	err = tel.Parse(`<UpdatePluginChannels><Channels>
  <Channel local_id="1"><DataFormat sample_occurrence="SOMETIMES" sample_format="double" sample_dimension="1"/></Channel>
</Channels></UpdatePluginChannels>`)
	assert.ErrorIs(t, err, xmlcodec.ErrInvalidValue)
	assert.Equal(t, 0, tel.Len())
}

func TestUpdateChannelsAddInvalidPanics(t *testing.T) {
	var tel UpdateChannelsTelegram
	assert.Panics(t, func() { tel.AddChannel(InvalidLocalID) })
}

func TestDataFormatAttributes(t *testing.T) {
	var tel UpdateChannelsTelegram
	tel.AddChannel(1).DataFormat = SyncScalar(FormatDouble)
	doc, err := tel.Generate()
	require.NoError(t, err)

	root, err := xmlcodec.ParseRoot(doc)
	require.NoError(t, err)
	df := root.FindElement("Channels/Channel/DataFormat")
	require.NotNil(t, df)
	assert.Equal(t, "SYNC", df.SelectAttrValue("sample_occurrence", ""))
	assert.Equal(t, "double", df.SelectAttrValue("sample_format", ""))
	assert.Equal(t, "1", df.SelectAttrValue("sample_dimension", ""))
	ch := root.FindElement("Channels/Channel")
	assert.Equal(t, "4294967295", ch.SelectAttrValue("local_parent_id", ""))
	assert.Equal(t, "True", ch.SelectAttrValue("valid", ""))
	assert.Equal(t, 8, SyncScalar(FormatDouble).SampleSize())
}

func TestParseSampleFormat(t *testing.T) {
	f, err := ParseSampleFormat("sint16")
	require.NoError(t, err)
	assert.Equal(t, FormatSint16, f)
	assert.Equal(t, 2, f.Size())
	_, err = ParseSampleFormat("int16")
	assert.ErrorIs(t, err, xmlcodec.ErrInvalidValue)
}
