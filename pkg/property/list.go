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

package property

// List is an ordered collection of properties with unique names. Set
// replaces an existing entry by removing it and appending the new one, so
// the most recently written property is always last.
//
// Mutating methods never write into a backing array that another copy of
// the List may share, so plain assignment of a List is a safe copy.
type List struct {
	props []Property
}

// MakeList builds a list by calling Set for every property in order.
func MakeList(props ...Property) List {
	var l List
	for _, p := range props {
		l.Set(p)
	}
	return l
}

// Set stores p, removing any existing property with the same name first.
// It panics if p has no name.
func (l *List) Set(p Property) {
	if p.name == "" {
		panic("oxygen-sdk-go/property.List.Set: property name must not be empty")
	}
	props := make([]Property, 0, len(l.props)+1)
	for _, q := range l.props {
		if q.name != p.name {
			props = append(props, q)
		}
	}
	l.props = append(props, p)
}

// Get returns the property named name.
func (l List) Get(name string) (Property, bool) {
	if i := l.index(name); i >= 0 {
		return l.props[i], true
	}
	return Property{}, false
}

// Has returns true if the list contains a property named name.
func (l List) Has(name string) bool {
	return l.index(name) >= 0
}

// Replace overwrites the value of an existing property in place, keeping
// its position. It returns false if there is no property named p.Name().
func (l *List) Replace(p Property) bool {
	i := l.index(p.name)
	if i < 0 {
		return false
	}
	props := cloneSlice(l.props)
	props[i] = p
	l.props = props
	return true
}

// Remove deletes the property named name and reports whether it existed.
func (l *List) Remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	props := make([]Property, 0, len(l.props)-1)
	props = append(props, l.props[:i]...)
	l.props = append(props, l.props[i+1:]...)
	return true
}

// Len returns the number of properties.
func (l List) Len() int {
	return len(l.props)
}

// At returns the i-th property.
func (l List) At(i int) Property {
	return l.props[i]
}

// Properties returns the properties in order.
func (l List) Properties() []Property {
	return cloneSlice(l.props)
}

// Names returns the property names in order.
func (l List) Names() []string {
	names := make([]string, len(l.props))
	for i, p := range l.props {
		names[i] = p.name
	}
	return names
}

// Clear removes all properties.
func (l *List) Clear() {
	l.props = nil
}

// Clone returns an independent copy of l.
func (l List) Clone() List {
	if l.props == nil {
		return List{}
	}
	return List{props: cloneSlice(l.props)}
}

// Equal compares both lists property by property, in order.
func (l List) Equal(o List) bool {
	if len(l.props) != len(o.props) {
		return false
	}
	for i := range l.props {
		if !l.props[i].Equal(o.props[i]) {
			return false
		}
	}
	return true
}

func (l List) index(name string) int {
	for i, p := range l.props {
		if p.name == name {
			return i
		}
	}
	return -1
}
