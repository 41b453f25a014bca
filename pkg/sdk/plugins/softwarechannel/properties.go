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

package softwarechannel

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/dewetron/oxygen-sdk-go/pkg/property"
	"github.com/dewetron/oxygen-sdk-go/pkg/telegram"
)

// ErrInvalidProperty is returned when the host sends a value that an
// editable property does not accept.
var ErrInvalidProperty = errors.New("invalid property value")

// EditableProperty is a channel configuration item the user can edit in
// the host. The framework writes Property and Constraints into the channel
// configuration sent to the host, and calls Update when the user changes
// the item.
type EditableProperty interface {
	// Property returns the current value. Its name is ignored.
	Property() property.Property
	Constraints() []telegram.Constraint
	// Update applies a value received from the host. On error, the
	// current value is left unchanged.
	Update(p property.Property) error
}

// decoration holds the constraints shared by every editable property.
type decoration struct {
	hidden bool
	hint   string
}

// SetHidden hides the property from the user.
func (d *decoration) SetHidden(hidden bool) {
	d.hidden = hidden
}

// SetHint sets the hint shown next to the property.
func (d *decoration) SetHint(hint string) {
	d.hint = hint
}

func (d *decoration) constraints() []telegram.Constraint {
	var res []telegram.Constraint
	if d.hidden {
		res = append(res, telegram.MakeVisibility(telegram.Hidden))
	}
	if d.hint != "" {
		res = append(res, telegram.MakeItemHint(d.hint))
	}
	return res
}

func mismatch(p property.Property, want property.Type) error {
	return fmt.Errorf("%w: expected %s, found %s", ErrInvalidProperty, want, p.Type())
}

// StringProperty is a free text item, with optional suggestions and an
// optional pattern the text must match.
type StringProperty struct {
	decoration
	value       string
	suggestions []string
	pattern     *regexp.Regexp
}

func NewStringProperty(v string) *StringProperty {
	return &StringProperty{value: v}
}

func (s *StringProperty) Value() string { return s.value }

func (s *StringProperty) Set(v string) { s.value = v }

// AddSuggestions adds values offered to the user, who can still type any
// other text.
func (s *StringProperty) AddSuggestions(v ...string) {
	s.suggestions = append(s.suggestions, v...)
}

// SetPattern restricts the accepted text to the given regular expression.
func (s *StringProperty) SetPattern(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	s.pattern = re
	return nil
}

func (s *StringProperty) Property() property.Property {
	return property.NewString("", s.value)
}

func (s *StringProperty) Constraints() []telegram.Constraint {
	var res []telegram.Constraint
	if len(s.suggestions) > 0 {
		res = append(res, telegram.MakeStringOptions(s.suggestions...)...)
		res = append(res, telegram.MakeArbitraryString())
	}
	if s.pattern != nil {
		res = append(res, telegram.MakeRegex(s.pattern.String()))
	}
	return append(res, s.decoration.constraints()...)
}

func (s *StringProperty) Update(p property.Property) error {
	if p.Type() != property.TypeString {
		return mismatch(p, property.TypeString)
	}
	v := p.StringValue()
	if s.pattern != nil && !s.pattern.MatchString(v) {
		return fmt.Errorf("%w: %q does not match %s", ErrInvalidProperty, v, s.pattern)
	}
	s.value = v
	return nil
}

// SelectorProperty is an item whose value is one of a fixed set of
// options.
type SelectorProperty struct {
	decoration
	value   string
	options []string
}

// NewSelectorProperty returns a selector holding v. If v is not among the
// options, it is added as the first option.
func NewSelectorProperty(v string, options ...string) *SelectorProperty {
	opts := slices.Clone(options)
	if !slices.Contains(opts, v) {
		opts = append([]string{v}, opts...)
	}
	return &SelectorProperty{value: v, options: opts}
}

func (s *SelectorProperty) Value() string { return s.value }

// Options returns the accepted values in display order.
func (s *SelectorProperty) Options() []string { return slices.Clone(s.options) }

func (s *SelectorProperty) Property() property.Property {
	return property.NewString("", s.value)
}

func (s *SelectorProperty) Constraints() []telegram.Constraint {
	return append(telegram.MakeStringOptions(s.options...), s.decoration.constraints()...)
}

func (s *SelectorProperty) Update(p property.Property) error {
	if p.Type() != property.TypeString {
		return mismatch(p, property.TypeString)
	}
	v := p.StringValue()
	if !slices.Contains(s.options, v) {
		return fmt.Errorf("%w: %q is not an option", ErrInvalidProperty, v)
	}
	s.value = v
	return nil
}

// NumberProperty is a numeric item with a unit and an optional range.
type NumberProperty struct {
	decoration
	value    float64
	unit     string
	hasRange bool
	min, max float64
	options  []float64
}

func NewNumberProperty(v float64, unit string) *NumberProperty {
	return &NumberProperty{value: v, unit: unit}
}

func (n *NumberProperty) Value() float64 { return n.value }

func (n *NumberProperty) Unit() string { return n.unit }

func (n *NumberProperty) Set(v float64) { n.value = v }

// SetRange restricts the accepted values to [minv, maxv].
func (n *NumberProperty) SetRange(minv, maxv float64) {
	n.hasRange, n.min, n.max = true, minv, maxv
}

// AddOptions adds values offered to the user.
func (n *NumberProperty) AddOptions(v ...float64) {
	n.options = append(n.options, v...)
}

func (n *NumberProperty) Property() property.Property {
	return property.NewScalar("", property.Scalar{Value: n.value, Unit: n.unit})
}

func (n *NumberProperty) Constraints() []telegram.Constraint {
	var res []telegram.Constraint
	if n.hasRange {
		res = append(res, telegram.MakeFloatRange(n.min, n.max))
	}
	for _, o := range n.options {
		res = append(res, telegram.MakeOption(property.NewScalar("", property.Scalar{Value: o, Unit: n.unit})))
	}
	return append(res, n.decoration.constraints()...)
}

// Update accepts any numeric property. The unit of a scalar is ignored.
func (n *NumberProperty) Update(p property.Property) error {
	v, ok := p.AsFloat()
	if !ok {
		return mismatch(p, property.TypeScalar)
	}
	if n.hasRange && (v < n.min || v > n.max) {
		return fmt.Errorf("%w: %v outside [%v, %v]", ErrInvalidProperty, v, n.min, n.max)
	}
	n.value = v
	return nil
}

// BoolProperty is an on/off item.
type BoolProperty struct {
	decoration
	value bool
}

func NewBoolProperty(v bool) *BoolProperty {
	return &BoolProperty{value: v}
}

func (b *BoolProperty) Value() bool { return b.value }

func (b *BoolProperty) Set(v bool) { b.value = v }

func (b *BoolProperty) Property() property.Property {
	return property.NewBool("", b.value)
}

func (b *BoolProperty) Constraints() []telegram.Constraint {
	return b.decoration.constraints()
}

func (b *BoolProperty) Update(p property.Property) error {
	if p.Type() != property.TypeBoolean {
		return mismatch(p, property.TypeBoolean)
	}
	b.value = p.BoolValue()
	return nil
}

// ChannelIDProperty references a channel of the host, typically an input
// of the software channel. property.InvalidChannelID means no channel.
type ChannelIDProperty struct {
	decoration
	value        property.ChannelID
	maxDimension uint32
	channelType  string
}

func NewChannelIDProperty(v property.ChannelID) *ChannelIDProperty {
	return &ChannelIDProperty{value: v, maxDimension: 1}
}

func (c *ChannelIDProperty) Value() property.ChannelID { return c.value }

func (c *ChannelIDProperty) Set(v property.ChannelID) { c.value = v }

// IsSet returns true if the property references a channel.
func (c *ChannelIDProperty) IsSet() bool { return c.value != property.InvalidChannelID }

// SetFilter restricts the channels the user can pick.
func (c *ChannelIDProperty) SetFilter(maxDimension uint32, channelType string) {
	c.maxDimension, c.channelType = maxDimension, channelType
}

func (c *ChannelIDProperty) Property() property.Property {
	return property.NewChannelID("", c.value)
}

func (c *ChannelIDProperty) Constraints() []telegram.Constraint {
	res := []telegram.Constraint{telegram.MakeChannelIDs(1, c.maxDimension, c.channelType)}
	return append(res, c.decoration.constraints()...)
}

func (c *ChannelIDProperty) Update(p property.Property) error {
	switch p.Type() {
	case property.TypeChannelID:
		c.value = p.ChannelIDValue()
	case property.TypeChannelIDList:
		ids := p.ChannelIDListValue()
		if len(ids) > 1 {
			return fmt.Errorf("%w: %d channels for a single reference", ErrInvalidProperty, len(ids))
		}
		c.value = property.InvalidChannelID
		if len(ids) == 1 {
			c.value = ids[0]
		}
	default:
		return mismatch(p, property.TypeChannelID)
	}
	return nil
}

// FilePathProperty is a path picked through a file dialog of the host.
type FilePathProperty struct {
	decoration
	value   string
	options telegram.FilePathOptions
}

func NewFilePathProperty(v string, options telegram.FilePathOptions) *FilePathProperty {
	return &FilePathProperty{value: v, options: options}
}

func (f *FilePathProperty) Value() string { return f.value }

func (f *FilePathProperty) Property() property.Property {
	return property.NewString("", f.value)
}

func (f *FilePathProperty) Constraints() []telegram.Constraint {
	return append([]telegram.Constraint{telegram.MakeFilePath(f.options)}, f.decoration.constraints()...)
}

func (f *FilePathProperty) Update(p property.Property) error {
	if p.Type() != property.TypeString {
		return mismatch(p, property.TypeString)
	}
	f.value = p.StringValue()
	return nil
}
