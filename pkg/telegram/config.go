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
	"sort"

	"github.com/beevik/etree"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/xmlcodec"
)

// UpdateConfigRoot is the root element of an UpdateConfigTelegram.
const UpdateConfigRoot = "UpdateConfig"

// ErrOrphanedConstraint is returned when a constraint refers to a property
// that is not part of the same ChannelConfig.
var ErrOrphanedConstraint = errors.New("constraint without matching property")

// ChannelConfig holds the configuration properties of one channel together
// with the constraints attached to them, keyed by property name.
type ChannelConfig struct {
	Properties  property.List
	Constraints map[string][]Constraint
}

// SetProperty stores p, replacing any property with the same name.
func (c *ChannelConfig) SetProperty(p property.Property) {
	c.Properties.Set(p)
}

// Property returns the property named name.
func (c *ChannelConfig) Property(name string) (property.Property, bool) {
	return c.Properties.Get(name)
}

// AddConstraint appends a constraint for the property named name.
func (c *ChannelConfig) AddConstraint(name string, cons ...Constraint) {
	if c.Constraints == nil {
		c.Constraints = make(map[string][]Constraint)
	}
	c.Constraints[name] = append(c.Constraints[name], cons...)
}

// ConstraintsOf returns the constraints attached to the property named name.
func (c *ChannelConfig) ConstraintsOf(name string) []Constraint {
	return c.Constraints[name]
}

// Validate returns an error wrapping ErrOrphanedConstraint if a constraint
// refers to a property that is not present.
func (c *ChannelConfig) Validate() error {
	var orphans []string
	for name, cons := range c.Constraints {
		if len(cons) > 0 && !c.Properties.Has(name) {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return fmt.Errorf("%w: %q", ErrOrphanedConstraint, orphans)
	}
	return nil
}

// Clone returns a copy of c that shares no mutable state with it.
func (c *ChannelConfig) Clone() ChannelConfig {
	out := ChannelConfig{Properties: c.Properties.Clone()}
	for name, cons := range c.Constraints {
		for _, cn := range cons {
			out.AddConstraint(name, cn.clone())
		}
	}
	return out
}

// Equal compares the properties in order and the constraints per property
// in order.
func (c *ChannelConfig) Equal(o *ChannelConfig) bool {
	if !c.Properties.Equal(o.Properties) {
		return false
	}
	if countConstraints(c.Constraints) != countConstraints(o.Constraints) {
		return false
	}
	for name, cons := range c.Constraints {
		other := o.Constraints[name]
		if len(cons) != len(other) {
			return false
		}
		for i := range cons {
			if !cons[i].Equal(other[i]) {
				return false
			}
		}
	}
	return true
}

// Clear removes every property and constraint.
func (c *ChannelConfig) Clear() {
	c.Properties.Clear()
	c.Constraints = nil
}

// AppendTo appends every property to parent, each followed by a nested
// <Constraints> element when it has constraints.
func (c *ChannelConfig) AppendTo(parent *etree.Element) {
	for _, p := range c.Properties.Properties() {
		el := p.AppendTo(parent)
		cons := c.Constraints[p.Name()]
		if len(cons) == 0 {
			continue
		}
		ce := el.CreateElement(property.ConstraintsTag)
		for _, cn := range cons {
			cn.AppendTo(ce)
		}
	}
}

// ReadFrom replaces c with the properties and constraints found in parent.
func (c *ChannelConfig) ReadFrom(parent *etree.Element) error {
	c.Clear()
	var out ChannelConfig
	for _, el := range parent.SelectElements(property.PropertyTag) {
		var p property.Property
		if err := p.ReadFrom(el); err != nil {
			return err
		}
		if p.Name() == "" {
			return fmt.Errorf("%w: property without name", xmlcodec.ErrInvalidValue)
		}
		out.Properties.Set(p)
		delete(out.Constraints, p.Name())

		ce := el.SelectElement(property.ConstraintsTag)
		if ce == nil {
			continue
		}
		for _, consEl := range ce.ChildElements() {
			cn, err := ConstraintFromXML(consEl)
			if err != nil {
				return fmt.Errorf("constraint of property %q: %w", p.Name(), err)
			}
			out.AddConstraint(p.Name(), cn)
		}
	}
	*c = out
	return nil
}

func countConstraints(m map[string][]Constraint) int {
	n := 0
	for _, cons := range m {
		n += len(cons)
	}
	return n
}

// UpdateConfigTelegram carries the configuration of several channels.
type UpdateConfigTelegram struct {
	order   []LocalID
	configs map[LocalID]*ChannelConfig
}

func (t *UpdateConfigTelegram) RootName() string { return UpdateConfigRoot }

// AddChannel adds an empty configuration for channel id and returns it. An
// existing configuration for id is replaced and keeps its position.
func (t *UpdateConfigTelegram) AddChannel(id LocalID) *ChannelConfig {
	if t.configs == nil {
		t.configs = make(map[LocalID]*ChannelConfig)
	}
	if _, ok := t.configs[id]; !ok {
		t.order = append(t.order, id)
	}
	cfg := &ChannelConfig{}
	t.configs[id] = cfg
	return cfg
}

// Channel returns the configuration of channel id.
func (t *UpdateConfigTelegram) Channel(id LocalID) (*ChannelConfig, bool) {
	cfg, ok := t.configs[id]
	return cfg, ok
}

// ChannelIDs returns the ids of all channels in insertion order.
func (t *UpdateConfigTelegram) ChannelIDs() []LocalID {
	return append([]LocalID(nil), t.order...)
}

// Len returns the number of channels.
func (t *UpdateConfigTelegram) Len() int {
	return len(t.order)
}

// Clear removes all channels.
func (t *UpdateConfigTelegram) Clear() {
	t.order = nil
	t.configs = nil
}

// Update overwrites, in place, every property of t that is also present in
// the same channel of updates. Channels and properties missing from t are
// ignored.
func (t *UpdateConfigTelegram) Update(updates *UpdateConfigTelegram) {
	for _, id := range updates.order {
		cfg, ok := t.configs[id]
		if !ok {
			continue
		}
		for _, p := range updates.configs[id].Properties.Properties() {
			cfg.Properties.Replace(p)
		}
	}
}

// Generate writes the telegram. It fails with ErrOrphanedConstraint if a
// channel carries a constraint for a property it does not have.
func (t *UpdateConfigTelegram) Generate() (string, error) {
	doc := xmlcodec.NewDocument(UpdateConfigRoot, Version)
	for _, id := range t.order {
		cfg := t.configs[id]
		if err := cfg.Validate(); err != nil {
			return "", fmt.Errorf("channel %d: %w", id, err)
		}
		el := doc.Root().CreateElement(channelTag)
		el.CreateAttr(localIDAttr, id.String())
		cfg.AppendTo(el)
	}
	return doc.String()
}

// Parse replaces the content of t with the telegram in data.
func (t *UpdateConfigTelegram) Parse(data string) error {
	t.Clear()
	root, err := xmlcodec.Parse(data, UpdateConfigRoot, Version)
	if err != nil {
		return err
	}
	var out UpdateConfigTelegram
	for _, el := range root.SelectElements(channelTag) {
		id, err := readLocalID(el, localIDAttr)
		if err != nil {
			return err
		}
		if err := out.AddChannel(id).ReadFrom(el); err != nil {
			return fmt.Errorf("channel %d: %w", id, err)
		}
	}
	*t = out
	return nil
}

// Equal compares both telegrams channel by channel, ignoring channel order.
func (t *UpdateConfigTelegram) Equal(o *UpdateConfigTelegram) bool {
	if len(t.configs) != len(o.configs) {
		return false
	}
	for id, cfg := range t.configs {
		other, ok := o.configs[id]
		if !ok || !cfg.Equal(other) {
			return false
		}
	}
	return true
}
