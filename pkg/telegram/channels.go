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
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dewetron/oxygen-sdk-go/pkg/timebase"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// UpdateChannelsRoot is the root element of an UpdateChannelsTelegram.
const UpdateChannelsRoot = "UpdatePluginChannels"

const (
	channelsTag    = "Channels"
	channelTag     = "Channel"
	configTag      = "Config"
	topologyTag    = "ListTopology"
	groupTag       = "Group"
	localIDAttr    = "local_id"
	parentIDAttr   = "local_parent_id"
	defaultNameKey = "default_name"
)

// ErrCyclicDependency is returned when the parent links of a channel set
// form a cycle.
var ErrCyclicDependency = errors.New("cyclic dependency between channels")

// LocalID identifies a channel within one plugin instance.
type LocalID uint32

// InvalidLocalID is the wire value of an unassigned local id. It also marks
// a root channel in the local_parent_id attribute.
const InvalidLocalID LocalID = math.MaxUint32

func (id LocalID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// OptionalLocalID is a local id that may be absent.
type OptionalLocalID struct {
	ID    LocalID
	Valid bool
}

// NoParent is the parent of a root channel.
var NoParent = OptionalLocalID{}

// ParentID returns an OptionalLocalID holding id.
func ParentID(id LocalID) OptionalLocalID {
	return OptionalLocalID{ID: id, Valid: true}
}

func (o OptionalLocalID) wire() string {
	if !o.Valid {
		return InvalidLocalID.String()
	}
	return o.ID.String()
}

func optionalFromWire(id LocalID) OptionalLocalID {
	if id == InvalidLocalID {
		return NoParent
	}
	return ParentID(id)
}

// PluginChannelInfo describes one channel published by a plugin.
type PluginChannelInfo struct {
	LocalID     LocalID
	Parent      OptionalLocalID
	DefaultName string
	Domain      string
	Deletable   bool
	Valid       bool
	DataFormat  DataFormat
	Timebase    timebase.Timebase
	// Config is the initial configuration of the channel.
	Config ChannelConfig
}

// Equal compares every field of both channels.
func (c *PluginChannelInfo) Equal(o *PluginChannelInfo) bool {
	return c.LocalID == o.LocalID &&
		c.Parent == o.Parent &&
		c.DefaultName == o.DefaultName &&
		c.Domain == o.Domain &&
		c.Deletable == o.Deletable &&
		c.Valid == o.Valid &&
		c.DataFormat == o.DataFormat &&
		c.Timebase.Equal(o.Timebase) &&
		c.Config.Equal(&o.Config)
}

// ChannelGroupInfo is a node of the channel list tree shown to the user.
// Nodes are not validated against the channels of the telegram.
type ChannelGroupInfo struct {
	Name     string
	LocalID  OptionalLocalID
	Children []ChannelGroupInfo
}

// Equal compares two trees recursively.
func (g ChannelGroupInfo) Equal(o ChannelGroupInfo) bool {
	if g.Name != o.Name || g.LocalID != o.LocalID || len(g.Children) != len(o.Children) {
		return false
	}
	for i := range g.Children {
		if !g.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// UpdateChannelsTelegram publishes the output channels of a plugin instance:
// their topology, data format, timebase and initial configuration.
type UpdateChannelsTelegram struct {
	order    []LocalID
	channels map[LocalID]*PluginChannelInfo
	// Topology is the optional channel list tree.
	Topology []ChannelGroupInfo
}

func (t *UpdateChannelsTelegram) RootName() string { return UpdateChannelsRoot }

// AddChannel adds a root channel with the given id and returns it for
// further setup. Adding an id twice replaces the first channel with a fresh
// one in the same position. It panics if id is InvalidLocalID.
func (t *UpdateChannelsTelegram) AddChannel(id LocalID) *PluginChannelInfo {
	if id == InvalidLocalID {
		panic("oxygen-sdk-go/telegram.AddChannel: local id must not be InvalidLocalID")
	}
	if t.channels == nil {
		t.channels = make(map[LocalID]*PluginChannelInfo)
	}
	if _, ok := t.channels[id]; !ok {
		t.order = append(t.order, id)
	}
	c := &PluginChannelInfo{
		LocalID:    id,
		Valid:      true,
		DataFormat: InvalidDataFormat,
		Timebase:   timebase.NewNone(),
	}
	t.channels[id] = c
	return c
}

// Channel returns the channel with the given id.
func (t *UpdateChannelsTelegram) Channel(id LocalID) (*PluginChannelInfo, bool) {
	c, ok := t.channels[id]
	return c, ok
}

// Channels returns all channels in insertion order.
func (t *UpdateChannelsTelegram) Channels() []*PluginChannelInfo {
	out := make([]*PluginChannelInfo, len(t.order))
	for i, id := range t.order {
		out[i] = t.channels[id]
	}
	return out
}

// Len returns the number of channels.
func (t *UpdateChannelsTelegram) Len() int {
	return len(t.order)
}

// Clear removes all channels and the topology.
func (t *UpdateChannelsTelegram) Clear() {
	t.order = nil
	t.channels = nil
	t.Topology = nil
}

// RootChannels returns the ids of the channels without parent, in insertion
// order.
func (t *UpdateChannelsTelegram) RootChannels() []LocalID {
	var out []LocalID
	for _, id := range t.order {
		if !t.channels[id].Parent.Valid {
			out = append(out, id)
		}
	}
	return out
}

// ChildrenOfChannel returns the direct children of channel id or, when
// recursive is set, all of its descendants in breadth first order. It
// returns ErrCyclicDependency once more descendants are found than the
// telegram has channels.
func (t *UpdateChannelsTelegram) ChildrenOfChannel(id LocalID, recursive bool) ([]LocalID, error) {
	children := t.directChildren()
	if !recursive {
		return append([]LocalID(nil), children[id]...), nil
	}
	var out []LocalID
	queue := []LocalID{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range children[cur] {
			out = append(out, c)
			if len(out) > len(t.order) {
				return nil, fmt.Errorf("%w: descendants of channel %d", ErrCyclicDependency, id)
			}
			queue = append(queue, c)
		}
	}
	return out, nil
}

// directChildren maps each parent id to its children in insertion order.
func (t *UpdateChannelsTelegram) directChildren() map[LocalID][]LocalID {
	children := make(map[LocalID][]LocalID)
	for _, id := range t.order {
		if p := t.channels[id].Parent; p.Valid {
			children[p.ID] = append(children[p.ID], id)
		}
	}
	return children
}

// sorted returns the channels so that every parent precedes its children.
// Roots are emitted in insertion order, each followed by its subtree in
// depth first order. A channel whose parent is not part of the telegram is
// treated as a root.
func (t *UpdateChannelsTelegram) sorted() ([]*PluginChannelInfo, error) {
	children := t.directChildren()
	out := make([]*PluginChannelInfo, 0, len(t.order))
	emitted := make(map[LocalID]bool, len(t.order))

	var visit func(id LocalID)
	visit = func(id LocalID) {
		emitted[id] = true
		out = append(out, t.channels[id])
		for _, c := range children[id] {
			if !emitted[c] {
				visit(c)
			}
		}
	}
	for _, id := range t.order {
		p := t.channels[id].Parent
		if !p.Valid {
			visit(id)
		} else if _, ok := t.channels[p.ID]; !ok {
			visit(id)
		}
	}
	if len(out) != len(t.order) {
		var missing []LocalID
		for _, id := range t.order {
			if !emitted[id] {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: channels %v are not reachable from a root", ErrCyclicDependency, missing)
	}
	return out, nil
}

// Generate writes the telegram with every parent channel ahead of its
// children. It fails with ErrCyclicDependency if the parent links contain a
// cycle and with ErrOrphanedConstraint if a channel configuration does.
func (t *UpdateChannelsTelegram) Generate() (string, error) {
	channels, err := t.sorted()
	if err != nil {
		return "", err
	}
	doc := xmlcodec.NewDocument(UpdateChannelsRoot, Version)
	list := doc.Root().CreateElement(channelsTag)
	for _, c := range channels {
		if err := c.Config.Validate(); err != nil {
			return "", fmt.Errorf("channel %d: %w", c.LocalID, err)
		}
		el := list.CreateElement(channelTag)
		el.CreateAttr(localIDAttr, c.LocalID.String())
		el.CreateAttr(parentIDAttr, c.Parent.wire())
		el.CreateAttr(defaultNameKey, c.DefaultName)
		el.CreateAttr("domain", c.Domain)
		el.CreateAttr("deletable", xmlcodec.FormatBool(c.Deletable))
		el.CreateAttr("valid", xmlcodec.FormatBool(c.Valid))
		c.DataFormat.appendTo(el)
		appendTimebase(el, c.Timebase)
		c.Config.AppendTo(el.CreateElement(configTag))
	}
	if len(t.Topology) > 0 {
		top := doc.Root().CreateElement(topologyTag)
		for _, g := range t.Topology {
			appendGroup(top, g)
		}
	}
	return doc.String()
}

// Parse replaces the content of t with the telegram in data.
func (t *UpdateChannelsTelegram) Parse(data string) error {
	t.Clear()
	root, err := xmlcodec.Parse(data, UpdateChannelsRoot, Version)
	if err != nil {
		return err
	}
	var out UpdateChannelsTelegram
	if list := root.SelectElement(channelsTag); list != nil {
		for _, el := range list.SelectElements(channelTag) {
			if err := out.readChannel(el); err != nil {
				return err
			}
		}
	}
	if top := root.SelectElement(topologyTag); top != nil {
		for _, el := range top.SelectElements(groupTag) {
			g, err := readGroup(el)
			if err != nil {
				return err
			}
			out.Topology = append(out.Topology, g)
		}
	}
	*t = out
	return nil
}

func (t *UpdateChannelsTelegram) readChannel(el *etree.Element) error {
	id, err := readLocalID(el, localIDAttr)
	if err != nil {
		return err
	}
	parent, err := xmlcodec.OptionalAttrUint64(el, parentIDAttr, uint64(InvalidLocalID))
	if err != nil {
		return err
	}
	if parent > uint64(InvalidLocalID) {
		return fmt.Errorf("%w: %s %d", xmlcodec.ErrInvalidValue, parentIDAttr, parent)
	}
	c := t.AddChannel(id)
	c.Parent = optionalFromWire(LocalID(parent))
	c.DefaultName = el.SelectAttrValue(defaultNameKey, "")
	c.Domain = el.SelectAttrValue("domain", "")
	if c.Deletable, err = xmlcodec.OptionalAttrBool(el, "deletable", false); err != nil {
		return err
	}
	if c.Valid, err = xmlcodec.OptionalAttrBool(el, "valid", true); err != nil {
		return err
	}
	df, err := xmlcodec.Child(el, dataFormatTag)
	if err != nil {
		return err
	}
	if err := c.DataFormat.readFrom(df); err != nil {
		return fmt.Errorf("channel %d: %w", id, err)
	}
	if tb := el.SelectElement(timebaseTag); tb != nil {
		if c.Timebase, err = readTimebase(tb); err != nil {
			return fmt.Errorf("channel %d: %w", id, err)
		}
	}
	if cfg := el.SelectElement(configTag); cfg != nil {
		if err := c.Config.ReadFrom(cfg); err != nil {
			return fmt.Errorf("channel %d: %w", id, err)
		}
	}
	return nil
}

// Equal compares the channels by id, ignoring their order, and the
// topology trees.
func (t *UpdateChannelsTelegram) Equal(o *UpdateChannelsTelegram) bool {
	if len(t.channels) != len(o.channels) || len(t.Topology) != len(o.Topology) {
		return false
	}
	for id, c := range t.channels {
		other, ok := o.channels[id]
		if !ok || !c.Equal(other) {
			return false
		}
	}
	for i := range t.Topology {
		if !t.Topology[i].Equal(o.Topology[i]) {
			return false
		}
	}
	return true
}

func appendGroup(parent *etree.Element, g ChannelGroupInfo) {
	el := parent.CreateElement(groupTag)
	el.CreateAttr("name", g.Name)
	if g.LocalID.Valid {
		el.CreateAttr(localIDAttr, g.LocalID.ID.String())
	}
	for _, c := range g.Children {
		appendGroup(el, c)
	}
}

func readGroup(el *etree.Element) (ChannelGroupInfo, error) {
	g := ChannelGroupInfo{Name: el.SelectAttrValue("name", "")}
	if el.SelectAttr(localIDAttr) != nil {
		id, err := readLocalID(el, localIDAttr)
		if err != nil {
			return g, err
		}
		g.LocalID = ParentID(id)
	}
	for _, c := range el.SelectElements(groupTag) {
		child, err := readGroup(c)
		if err != nil {
			return g, err
		}
		g.Children = append(g.Children, child)
	}
	return g, nil
}

// readLocalID reads a required local id attribute. The unassigned sentinel
// is rejected.
func readLocalID(el *etree.Element, key string) (LocalID, error) {
	v, err := xmlcodec.AttrUint32(el, key)
	if err != nil {
		return 0, err
	}
	if LocalID(v) == InvalidLocalID {
		return 0, fmt.Errorf("%w: %s@%s is the invalid local id", xmlcodec.ErrInvalidValue, el.Tag, key)
	}
	return LocalID(v), nil
}
