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

package loader

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var errDuplicatePlugin = errors.New("plugin already registered")

// Registry holds loaded plugins by UUID.
type Registry struct {
	m       sync.RWMutex
	plugins map[uuid.UUID]*Plugin
}

func NewRegistry() *Registry {
	return &Registry{plugins: make(map[uuid.UUID]*Plugin)}
}

// Add registers a validated plugin.
func (r *Registry) Add(p *Plugin) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()
	id := p.Info().UUID
	if _, ok := r.plugins[id]; ok {
		return fmt.Errorf("%w: %s", errDuplicatePlugin, id)
	}
	r.plugins[id] = p
	return nil
}

func (r *Registry) Get(id uuid.UUID) (*Plugin, bool) {
	r.m.RLock()
	defer r.m.RUnlock()
	p, ok := r.plugins[id]
	return p, ok
}

// Find returns the plugin with the given name, compared case-insensitively.
func (r *Registry) Find(name string) (*Plugin, bool) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, p := range r.plugins {
		if strings.EqualFold(p.Info().Name, name) {
			return p, true
		}
	}
	return nil, false
}

// List returns the plugins sorted by name.
func (r *Registry) List() []*Plugin {
	r.m.RLock()
	defer r.m.RUnlock()
	res := make([]*Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b *Plugin) int {
		return strings.Compare(a.Info().Name, b.Info().Name)
	})
	return res
}

// Remove unloads and forgets the plugin with the given UUID.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.m.Lock()
	p, ok := r.plugins[id]
	delete(r.plugins, id)
	r.m.Unlock()
	if ok {
		p.Unload()
	}
	return ok
}

// Close unloads every plugin.
func (r *Registry) Close() {
	for _, p := range r.List() {
		r.Remove(p.Info().UUID)
	}
}
